package service

import (
	"context"
	"dsa_platform_backend/internal/model"
	"dsa_platform_backend/internal/repository"
	"dsa_platform_backend/pkg/monitoring"
	"sort"
	"time"
)

// ProgressService 负责完成记录和尝试记录；两张表独立写入，只在读取时按专题合并
type ProgressService struct {
	ProgressRepo *repository.ProgressRepository
	AttemptRepo  *repository.AttemptRepository
	now          func() time.Time
}

func NewProgressService(progressRepo *repository.ProgressRepository, attemptRepo *repository.AttemptRepository) *ProgressService {
	return &ProgressService{
		ProgressRepo: progressRepo,
		AttemptRepo:  attemptRepo,
		now:          time.Now,
	}
}

func (s *ProgressService) MarkCompleted(ctx context.Context, userID uint, topicSlug string, questionID uint) error {
	if err := s.ProgressRepo.MarkCompleted(ctx, userID, topicSlug, questionID, s.now()); err != nil {
		return err
	}
	monitoring.ProgressWrites.WithLabelValues(monitoring.ProgressLogCompletion).Inc()
	return nil
}

func (s *ProgressService) RecordAttempt(ctx context.Context, userID uint, topicSlug string, questionID uint) error {
	err := s.AttemptRepo.Record(ctx, &model.Attempt{
		UserID:     userID,
		QuestionID: questionID,
		TopicSlug:  topicSlug,
	})
	if err != nil {
		return err
	}
	monitoring.ProgressWrites.WithLabelValues(monitoring.ProgressLogAttempt).Inc()
	return nil
}

func (s *ProgressService) SolvedByTopic(ctx context.Context, userID uint) ([]model.TopicSolvedCount, error) {
	rows, err := s.ProgressRepo.CountCompletedByTopic(ctx, userID)
	if err != nil {
		return nil, err
	}

	result := make([]model.TopicSolvedCount, 0, len(rows))
	for _, row := range rows {
		result = append(result, model.TopicSolvedCount{TopicSlug: row.TopicSlug, SolvedCount: row.Total})
	}
	return result, nil
}

// AttemptedQuestions 专题 -> 尝试过的题目 ID，题目顺序即写入顺序
func (s *ProgressService) AttemptedQuestions(ctx context.Context, userID uint) (map[string][]uint, error) {
	rows, err := s.AttemptRepo.FindByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	grouped := make(map[string][]uint)
	for _, row := range rows {
		grouped[row.TopicSlug] = append(grouped[row.TopicSlug], row.QuestionID)
	}
	return grouped, nil
}

// Summary 两次查询之间没有事务，并发写入时可能读到不一致的快照
func (s *ProgressService) Summary(ctx context.Context, userID uint) ([]model.TopicProgress, error) {
	completed, err := s.ProgressRepo.CountCompletedByTopic(ctx, userID)
	if err != nil {
		return nil, err
	}

	attempted, err := s.AttemptRepo.CountByTopic(ctx, userID)
	if err != nil {
		return nil, err
	}

	return MergeTopicProgress(completed, attempted), nil
}

// MergeTopicProgress 取两边专题的并集，缺失的一侧计 0，结果按 topic_slug 排序
func MergeTopicProgress(completed, attempted []model.TopicCount) []model.TopicProgress {
	byTopic := make(map[string]*model.TopicProgress, len(completed)+len(attempted))
	entry := func(slug string) *model.TopicProgress {
		p, ok := byTopic[slug]
		if !ok {
			p = &model.TopicProgress{TopicSlug: slug}
			byTopic[slug] = p
		}
		return p
	}

	for _, c := range completed {
		entry(c.TopicSlug).Completed += c.Total
	}
	for _, a := range attempted {
		entry(a.TopicSlug).Attempted += a.Total
	}

	summary := make([]model.TopicProgress, 0, len(byTopic))
	for _, p := range byTopic {
		summary = append(summary, *p)
	}
	sort.Slice(summary, func(i, j int) bool {
		return summary[i].TopicSlug < summary[j].TopicSlug
	})
	return summary
}
