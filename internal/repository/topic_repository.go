package repository

import (
	"context"
	"dsa_platform_backend/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type TopicRepository struct {
	DB *gorm.DB
}

func NewTopicRepository(db *gorm.DB) *TopicRepository {
	return &TopicRepository{DB: db}
}

func (r *TopicRepository) Create(ctx context.Context, topic *model.Topic) error {
	return r.DB.WithContext(ctx).Create(topic).Error
}

func (r *TopicRepository) FindAll(ctx context.Context) ([]model.Topic, error) {
	topics := make([]model.Topic, 0)
	err := r.DB.WithContext(ctx).Order("id ASC").Find(&topics).Error
	return topics, err
}

// UpsertExplanation 以 topic_slug 为键整体覆盖五个文本字段（包括 NULL）
func (r *TopicRepository) UpsertExplanation(ctx context.Context, explanation *model.Explanation) error {
	return r.DB.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "topic_slug"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"definition", "discussion", "example", "types", "visual", "updated_at",
			}),
		}).
		Create(explanation).Error
}

// FindExplanation 不存在时返回 nil, nil
func (r *TopicRepository) FindExplanation(ctx context.Context, topicSlug string) (*model.Explanation, error) {
	var explanation model.Explanation
	result := r.DB.WithContext(ctx).Where("topic_slug = ?", topicSlug).Limit(1).Find(&explanation)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, nil
	}
	return &explanation, nil
}
