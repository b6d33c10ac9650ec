package repository

import (
	"context"
	"dsa_platform_backend/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// AttemptRepository 尝试记录（progress 表），与完成记录互不影响
type AttemptRepository struct {
	DB *gorm.DB
}

func NewAttemptRepository(db *gorm.DB) *AttemptRepository {
	return &AttemptRepository{DB: db}
}

// Record 同一用户同一题只保留一行，重复尝试时覆盖 topic_slug
func (r *AttemptRepository) Record(ctx context.Context, attempt *model.Attempt) error {
	return r.DB.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "question_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"topic_slug", "updated_at"}),
		}).
		Create(attempt).Error
}

func (r *AttemptRepository) CountByTopic(ctx context.Context, userID uint) ([]model.TopicCount, error) {
	var rows []model.TopicCount
	err := r.DB.WithContext(ctx).
		Model(&model.Attempt{}).
		Select("topic_slug, COUNT(*) AS total").
		Where("user_id = ?", userID).
		Group("topic_slug").
		Order("topic_slug ASC").
		Scan(&rows).Error
	return rows, err
}

// FindByUser 按写入顺序返回
func (r *AttemptRepository) FindByUser(ctx context.Context, userID uint) ([]model.AttemptedQuestion, error) {
	var rows []model.AttemptedQuestion
	err := r.DB.WithContext(ctx).
		Model(&model.Attempt{}).
		Select("question_id, topic_slug").
		Where("user_id = ?", userID).
		Order("id ASC").
		Scan(&rows).Error
	return rows, err
}
