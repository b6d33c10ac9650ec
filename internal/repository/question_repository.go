package repository

import (
	"context"
	"dsa_platform_backend/internal/model"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// QuestionFilter SortBy 必须是已校验过的列名
type QuestionFilter struct {
	Search string
	SortBy string
	Desc   bool
	Offset int
	Limit  int
}

type QuestionRepository struct {
	DB *gorm.DB
}

func NewQuestionRepository(db *gorm.DB) *QuestionRepository {
	return &QuestionRepository{DB: db}
}

func (r *QuestionRepository) Create(ctx context.Context, question *model.Question) error {
	return r.DB.WithContext(ctx).Create(question).Error
}

// FindPage total 是过滤后、分页前的总数
func (r *QuestionRepository) FindPage(ctx context.Context, filter QuestionFilter) ([]model.Question, int64, error) {
	var total int64
	questions := make([]model.Question, 0)

	query := r.DB.WithContext(ctx).Model(&model.Question{})
	if filter.Search != "" {
		query = query.Where("LOWER(title) LIKE ?", "%"+strings.ToLower(filter.Search)+"%")
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query = query.Order(clause.OrderByColumn{Column: clause.Column{Name: filter.SortBy}, Desc: filter.Desc})
	if filter.SortBy != "id" {
		// 排序键相同时保持分页稳定
		query = query.Order("id ASC")
	}

	err := query.Offset(filter.Offset).Limit(filter.Limit).Find(&questions).Error
	if err != nil {
		return nil, 0, err
	}

	return questions, total, nil
}

func (r *QuestionRepository) FindByTopic(ctx context.Context, topicSlug string) ([]model.Question, error) {
	questions := make([]model.Question, 0)
	err := r.DB.WithContext(ctx).
		Where("topic_slug = ?", topicSlug).
		Order("id ASC").
		Find(&questions).Error
	return questions, err
}

func (r *QuestionRepository) CountByTopic(ctx context.Context) ([]model.TopicCount, error) {
	var rows []model.TopicCount
	err := r.DB.WithContext(ctx).
		Model(&model.Question{}).
		Select("topic_slug, COUNT(*) AS total").
		Group("topic_slug").
		Scan(&rows).Error
	return rows, err
}
