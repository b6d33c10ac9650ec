package repository

import (
	"context"
	"dsa_platform_backend/internal/model"

	"gorm.io/gorm"
)

type UserRepository struct {
	DB *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{DB: db}
}

func (r *UserRepository) Create(ctx context.Context, user *model.User) error {
	return r.DB.WithContext(ctx).Create(user).Error
}

func (r *UserRepository) FindByID(ctx context.Context, id uint) (*model.User, error) {
	var user model.User
	err := r.DB.WithContext(ctx).First(&user, id).Error
	return &user, err
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	var user model.User
	err := r.DB.WithContext(ctx).Where("email = ?", email).First(&user).Error
	return &user, err
}

func (r *UserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var count int64
	err := r.DB.WithContext(ctx).Model(&model.User{}).Where("email = ?", email).Count(&count).Error
	return count > 0, err
}

// FindTopBySolved 按完成题数排行，LEFT JOIN 保证零完成的用户也在榜上，同分按用户 ID 升序
func (r *UserRepository) FindTopBySolved(ctx context.Context, limit int) ([]model.LeaderboardEntry, error) {
	entries := make([]model.LeaderboardEntry, 0, limit)
	err := r.DB.WithContext(ctx).
		Table("users AS u").
		Select("u.id AS id, u.username AS username, COUNT(p.id) AS total_solved").
		Joins("LEFT JOIN user_progress p ON p.user_id = u.id AND p.is_completed = ?", true).
		Group("u.id, u.username").
		Order("total_solved DESC, u.id ASC").
		Limit(limit).
		Scan(&entries).Error
	return entries, err
}
