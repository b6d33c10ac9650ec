package repository

import (
	"context"
	"dsa_platform_backend/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ProfileRepository struct {
	DB *gorm.DB
}

func NewProfileRepository(db *gorm.DB) *ProfileRepository {
	return &ProfileRepository{DB: db}
}

// Upsert 每个用户只有一行，冲突时整行覆盖
func (r *ProfileRepository) Upsert(ctx context.Context, profile *model.UserProfile) error {
	return r.DB.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}},
			DoUpdates: clause.AssignmentColumns(model.ProfileMutableColumns),
		}).
		Create(profile).Error
}

// FindByUserID 不存在时返回 nil, nil
func (r *ProfileRepository) FindByUserID(ctx context.Context, userID uint) (*model.UserProfile, error) {
	var profile model.UserProfile
	result := r.DB.WithContext(ctx).Where("user_id = ?", userID).Limit(1).Find(&profile)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, nil
	}
	return &profile, nil
}
