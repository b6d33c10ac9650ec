package service

import (
	"context"
	"dsa_platform_backend/internal/model"
	"dsa_platform_backend/internal/repository"
	"dsa_platform_backend/internal/util"
	"math"
	"strings"
)

// 允许排序的列，其他值一律按 id 排序
var questionSortColumns = map[string]bool{
	"id":         true,
	"title":      true,
	"difficulty": true,
}

type QuestionListParams struct {
	Search string
	SortBy string
	Order  string
	Page   int
	Limit  int
}

type QuestionService struct {
	QuestionRepo *repository.QuestionRepository
}

func NewQuestionService(questionRepo *repository.QuestionRepository) *QuestionService {
	return &QuestionService{QuestionRepo: questionRepo}
}

// NormalizeSort 非法的 sort_by 回退到 id，非法的 order 回退到 asc，不报错
func NormalizeSort(sortBy, order string) (string, bool) {
	if !questionSortColumns[sortBy] {
		sortBy = "id"
	}
	return sortBy, strings.EqualFold(order, "desc")
}

func (s *QuestionService) List(ctx context.Context, params QuestionListParams) (*model.QuestionPage, error) {
	if params.Page <= 0 || params.Limit <= 0 {
		return nil, util.ErrInvalidPagination
	}
	// offset 溢出 int 时同样视为非法分页
	if params.Page-1 > math.MaxInt/params.Limit {
		return nil, util.ErrInvalidPagination
	}

	sortBy, desc := NormalizeSort(params.SortBy, params.Order)
	questions, total, err := s.QuestionRepo.FindPage(ctx, repository.QuestionFilter{
		Search: strings.TrimSpace(params.Search),
		SortBy: sortBy,
		Desc:   desc,
		Offset: (params.Page - 1) * params.Limit,
		Limit:  params.Limit,
	})
	if err != nil {
		return nil, err
	}

	return &model.QuestionPage{
		Questions: questions,
		Total:     total,
		Page:      params.Page,
		Limit:     params.Limit,
	}, nil
}

func (s *QuestionService) ListByTopic(ctx context.Context, topicSlug string) ([]model.Question, error) {
	return s.QuestionRepo.FindByTopic(ctx, topicSlug)
}

func (s *QuestionService) CountByTopic(ctx context.Context) (map[string]int64, error) {
	rows, err := s.QuestionRepo.CountByTopic(ctx)
	if err != nil {
		return nil, err
	}

	counts := make(map[string]int64, len(rows))
	for _, row := range rows {
		counts[row.TopicSlug] = row.Total
	}
	return counts, nil
}
