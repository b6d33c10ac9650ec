package service

import (
	"context"
	"dsa_platform_backend/internal/model"
	"dsa_platform_backend/internal/repository"
	"dsa_platform_backend/internal/testutil"
	"dsa_platform_backend/pkg/monitoring"
	"encoding/json"
	"fmt"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	promtest "github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type statsFixture struct {
	db    *gorm.DB
	ada   *model.User
	bob   *model.User
	easy  *model.Question
	hard  *model.Question
	hard2 *model.Question
}

func newStatsFixture(t *testing.T) *statsFixture {
	db := testutil.NewDB(t)
	testutil.CreateTopic(t, db, "array")
	return &statsFixture{
		db:    db,
		ada:   testutil.CreateUser(t, db, "ada"),
		bob:   testutil.CreateUser(t, db, "bob"),
		easy:  testutil.CreateQuestion(t, db, "Two Sum", model.DifficultyEasy, "array"),
		hard:  testutil.CreateQuestion(t, db, "Trapping Rain Water", model.DifficultyHard, "array"),
		hard2: testutil.CreateQuestion(t, db, "Median of Two Sorted Arrays", model.DifficultyHard, "array"),
	}
}

func newStatsService(f *statsFixture, rdb *redis.Client, ttl time.Duration) *StatsService {
	cfg := testutil.NewConfig()
	cfg.Leaderboard.CacheTTLSeconds = int(ttl / time.Second)
	return NewStatsService(
		repository.NewUserRepository(f.db),
		repository.NewProgressRepository(f.db),
		repository.NewBookmarkRepository(f.db),
		rdb,
		cfg,
	)
}

func TestStatsService_UserStats(t *testing.T) {
	f := newStatsFixture(t)
	ctx := context.Background()
	progress := repository.NewProgressRepository(f.db)
	bookmarks := repository.NewBookmarkRepository(f.db)
	now := time.Now()

	require.NoError(t, progress.MarkCompleted(ctx, f.ada.ID, "array", f.easy.ID, now))
	require.NoError(t, progress.MarkCompleted(ctx, f.ada.ID, "array", f.hard.ID, now))
	require.NoError(t, bookmarks.Create(ctx, &model.Bookmark{UserID: f.ada.ID, QuestionID: f.hard2.ID}))

	svc := newStatsService(f, nil, 0)
	stats, err := svc.UserStats(ctx, f.ada.ID)
	require.NoError(t, err)
	assert.Equal(t, &model.UserStats{TotalSolved: 2, TotalBookmarked: 1, HardSolved: 1, AvgTime: 15}, stats)

	empty, err := svc.UserStats(ctx, f.bob.ID)
	require.NoError(t, err)
	assert.Equal(t, &model.UserStats{AvgTime: 15}, empty)
}

func TestStatsService_AvgTimeFromConfig(t *testing.T) {
	f := newStatsFixture(t)
	svc := newStatsService(f, nil, 0)
	svc.Cfg.Stats.DefaultAvgTime = 20

	stats, err := svc.UserStats(context.Background(), f.ada.ID)
	require.NoError(t, err)
	assert.Equal(t, 20, stats.AvgTime)
}

func TestStatsService_LeaderboardWithoutCache(t *testing.T) {
	f := newStatsFixture(t)
	ctx := context.Background()
	require.NoError(t, repository.NewProgressRepository(f.db).MarkCompleted(ctx, f.bob.ID, "array", f.easy.ID, time.Now()))

	entries, err := newStatsService(f, nil, time.Minute).Leaderboard(ctx)
	require.NoError(t, err)
	assert.Equal(t, []model.LeaderboardEntry{
		{ID: f.bob.ID, Username: "bob", TotalSolved: 1},
		{ID: f.ada.ID, Username: "ada", TotalSolved: 0},
	}, entries)
}

func TestStatsService_LeaderboardCache(t *testing.T) {
	f := newStatsFixture(t)
	ctx := context.Background()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { rdb.Close() })

	svc := newStatsService(f, rdb, 30*time.Second)
	key := fmt.Sprintf(leaderboardCacheKey, 50)
	hits := promtest.ToFloat64(monitoring.LeaderboardCache.WithLabelValues(monitoring.CacheHit))
	misses := promtest.ToFloat64(monitoring.LeaderboardCache.WithLabelValues(monitoring.CacheMiss))

	first, err := svc.Leaderboard(ctx)
	require.NoError(t, err)
	require.True(t, mr.Exists(key))
	assert.Equal(t, 30*time.Second, mr.TTL(key))

	var cached []model.LeaderboardEntry
	raw, err := mr.Get(key)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal([]byte(raw), &cached))
	assert.Equal(t, first, cached)

	// 缓存未过期时不会看到新的完成记录
	require.NoError(t, repository.NewProgressRepository(f.db).MarkCompleted(ctx, f.bob.ID, "array", f.easy.ID, time.Now()))
	second, err := svc.Leaderboard(ctx)
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Equal(t, misses+1, promtest.ToFloat64(monitoring.LeaderboardCache.WithLabelValues(monitoring.CacheMiss)))
	assert.Equal(t, hits+1, promtest.ToFloat64(monitoring.LeaderboardCache.WithLabelValues(monitoring.CacheHit)))

	mr.FastForward(31 * time.Second)
	third, err := svc.Leaderboard(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, third)
	assert.Equal(t, f.bob.ID, third[0].ID)
	assert.Equal(t, int64(1), third[0].TotalSolved)
}

func TestStatsService_LeaderboardFallsBackWhenCacheDown(t *testing.T) {
	f := newStatsFixture(t)
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr(), MaxRetries: -1})
	t.Cleanup(func() { rdb.Close() })
	mr.Close()

	entries, err := newStatsService(f, rdb, 30*time.Second).Leaderboard(context.Background())
	require.NoError(t, err)
	assert.Len(t, entries, 2)
}

func TestStatsService_LeaderboardIgnoresCorruptCache(t *testing.T) {
	f := newStatsFixture(t)
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { rdb.Close() })
	require.NoError(t, mr.Set(fmt.Sprintf(leaderboardCacheKey, 50), "not json"))

	entries, err := newStatsService(f, rdb, 30*time.Second).Leaderboard(context.Background())
	require.NoError(t, err)
	assert.Len(t, entries, 2)
}
