package repository

import (
	"context"
	"dsa_platform_backend/internal/model"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ProgressRepository 完成记录（user_progress 表）
type ProgressRepository struct {
	DB *gorm.DB
}

func NewProgressRepository(db *gorm.DB) *ProgressRepository {
	return &ProgressRepository{DB: db}
}

// MarkCompleted 重复提交时置为已完成并刷新 solved_at
func (r *ProgressRepository) MarkCompleted(ctx context.Context, userID uint, topicSlug string, questionID uint, solvedAt time.Time) error {
	row := &model.UserProgress{
		UserID:      userID,
		TopicSlug:   topicSlug,
		QuestionID:  questionID,
		IsCompleted: true,
		SolvedAt:    solvedAt,
	}

	return r.DB.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "user_id"}, {Name: "topic_slug"}, {Name: "question_id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"is_completed", "solved_at", "updated_at",
			}),
		}).
		Create(row).Error
}

func (r *ProgressRepository) CountCompletedByTopic(ctx context.Context, userID uint) ([]model.TopicCount, error) {
	var rows []model.TopicCount
	err := r.DB.WithContext(ctx).
		Model(&model.UserProgress{}).
		Select("topic_slug, COUNT(*) AS total").
		Where("user_id = ? AND is_completed = ?", userID, true).
		Group("topic_slug").
		Order("topic_slug ASC").
		Scan(&rows).Error
	return rows, err
}

func (r *ProgressRepository) CountCompleted(ctx context.Context, userID uint) (int64, error) {
	var count int64
	err := r.DB.WithContext(ctx).
		Model(&model.UserProgress{}).
		Where("user_id = ? AND is_completed = ?", userID, true).
		Count(&count).Error
	return count, err
}

func (r *ProgressRepository) CountCompletedByDifficulty(ctx context.Context, userID uint, difficulty model.Difficulty) (int64, error) {
	var count int64
	err := r.DB.WithContext(ctx).
		Model(&model.UserProgress{}).
		Joins("JOIN questions ON questions.id = user_progress.question_id").
		Where("user_progress.user_id = ? AND user_progress.is_completed = ? AND questions.difficulty = ?",
			userID, true, difficulty).
		Count(&count).Error
	return count, err
}
