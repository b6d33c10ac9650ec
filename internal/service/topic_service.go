package service

import (
	"context"
	"dsa_platform_backend/internal/model"
	"dsa_platform_backend/internal/repository"
)

type TopicService struct {
	TopicRepo *repository.TopicRepository
}

func NewTopicService(topicRepo *repository.TopicRepository) *TopicService {
	return &TopicService{TopicRepo: topicRepo}
}

func (s *TopicService) List(ctx context.Context) ([]model.Topic, error) {
	return s.TopicRepo.FindAll(ctx)
}

// SaveExplanation 字段原样写入，nil 保持为 NULL
func (s *TopicService) SaveExplanation(ctx context.Context, topicSlug string, explanation *model.Explanation) error {
	explanation.TopicSlug = topicSlug
	return s.TopicRepo.UpsertExplanation(ctx, explanation)
}

func (s *TopicService) GetExplanation(ctx context.Context, topicSlug string) (*model.Explanation, error) {
	return s.TopicRepo.FindExplanation(ctx, topicSlug)
}
