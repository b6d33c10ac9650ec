package repository

import (
	"context"
	"dsa_platform_backend/internal/model"

	"gorm.io/gorm"
)

type BookmarkRepository struct {
	DB *gorm.DB
}

func NewBookmarkRepository(db *gorm.DB) *BookmarkRepository {
	return &BookmarkRepository{DB: db}
}

func (r *BookmarkRepository) Create(ctx context.Context, bookmark *model.Bookmark) error {
	return r.DB.WithContext(ctx).Create(bookmark).Error
}

func (r *BookmarkRepository) CountByUser(ctx context.Context, userID uint) (int64, error) {
	var count int64
	err := r.DB.WithContext(ctx).Model(&model.Bookmark{}).Where("user_id = ?", userID).Count(&count).Error
	return count, err
}
