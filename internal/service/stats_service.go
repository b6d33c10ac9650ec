package service

import (
	"context"
	"dsa_platform_backend/internal/config"
	"dsa_platform_backend/internal/model"
	"dsa_platform_backend/internal/repository"
	"dsa_platform_backend/pkg/logger"
	"dsa_platform_backend/pkg/monitoring"
	"encoding/json"
	"fmt"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

const leaderboardCacheKey = "dsa:leaderboard:top:%d"

type StatsService struct {
	UserRepo     *repository.UserRepository
	ProgressRepo *repository.ProgressRepository
	BookmarkRepo *repository.BookmarkRepository
	Redis        *redis.Client
	Cfg          *config.Config
}

func NewStatsService(
	userRepo *repository.UserRepository,
	progressRepo *repository.ProgressRepository,
	bookmarkRepo *repository.BookmarkRepository,
	rdb *redis.Client,
	cfg *config.Config,
) *StatsService {
	return &StatsService{
		UserRepo:     userRepo,
		ProgressRepo: progressRepo,
		BookmarkRepo: bookmarkRepo,
		Redis:        rdb,
		Cfg:          cfg,
	}
}

// UserStats 三个计数分别查询，不在同一事务内；AvgTime 取配置中的占位值
func (s *StatsService) UserStats(ctx context.Context, userID uint) (*model.UserStats, error) {
	totalSolved, err := s.ProgressRepo.CountCompleted(ctx, userID)
	if err != nil {
		return nil, err
	}

	totalBookmarked, err := s.BookmarkRepo.CountByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	hardSolved, err := s.ProgressRepo.CountCompletedByDifficulty(ctx, userID, model.DifficultyHard)
	if err != nil {
		return nil, err
	}

	return &model.UserStats{
		TotalSolved:     totalSolved,
		TotalBookmarked: totalBookmarked,
		HardSolved:      hardSolved,
		AvgTime:         s.Cfg.Stats.DefaultAvgTime,
	}, nil
}

func (s *StatsService) cacheEnabled() bool {
	return s.Redis != nil && s.Cfg.Leaderboard.CacheTTL() > 0
}

// Leaderboard 配置了 Redis 且 TTL > 0 时走缓存，缓存读写失败直接查库
func (s *StatsService) Leaderboard(ctx context.Context) ([]model.LeaderboardEntry, error) {
	limit := s.Cfg.Leaderboard.Limit
	key := fmt.Sprintf(leaderboardCacheKey, limit)

	if s.cacheEnabled() {
		cached, err := s.Redis.Get(ctx, key).Bytes()
		switch {
		case err == nil:
			var entries []model.LeaderboardEntry
			if err := json.Unmarshal(cached, &entries); err == nil {
				monitoring.LeaderboardCache.WithLabelValues(monitoring.CacheHit).Inc()
				return entries, nil
			}
			logger.Log.Warn("Leaderboard cache entry is corrupt", zap.String("key", key))
			monitoring.LeaderboardCache.WithLabelValues(monitoring.CacheError).Inc()
		case err == redis.Nil:
			monitoring.LeaderboardCache.WithLabelValues(monitoring.CacheMiss).Inc()
		default:
			logger.Log.Warn("Leaderboard cache read failed", zap.Error(err))
			monitoring.LeaderboardCache.WithLabelValues(monitoring.CacheError).Inc()
		}
	}

	entries, err := s.UserRepo.FindTopBySolved(ctx, limit)
	if err != nil {
		return nil, err
	}

	if s.cacheEnabled() {
		payload, err := json.Marshal(entries)
		if err == nil {
			err = s.Redis.Set(ctx, key, payload, s.Cfg.Leaderboard.CacheTTL()).Err()
		}
		if err != nil {
			logger.Log.Warn("Leaderboard cache write failed", zap.Error(err))
		}
	}

	return entries, nil
}
