package service

import (
	"context"
	"dsa_platform_backend/internal/model"
	"dsa_platform_backend/internal/repository"
	"dsa_platform_backend/internal/testutil"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMergeTopicProgress(t *testing.T) {
	completed := []model.TopicCount{{TopicSlug: "array", Total: 3}}
	attempted := []model.TopicCount{
		{TopicSlug: "graph", Total: 2},
		{TopicSlug: "array", Total: 5},
	}

	assert.Equal(t, []model.TopicProgress{
		{TopicSlug: "array", Completed: 3, Attempted: 5},
		{TopicSlug: "graph", Completed: 0, Attempted: 2},
	}, MergeTopicProgress(completed, attempted))
}

func TestMergeTopicProgress_Empty(t *testing.T) {
	merged := MergeTopicProgress(nil, nil)
	assert.NotNil(t, merged)
	assert.Empty(t, merged)

	assert.Equal(t, []model.TopicProgress{{TopicSlug: "stack", Completed: 1}},
		MergeTopicProgress([]model.TopicCount{{TopicSlug: "stack", Total: 1}}, nil))
}

func TestProgressService_ReadsAndWrites(t *testing.T) {
	db := testutil.NewDB(t)
	testutil.CreateTopic(t, db, "array")
	testutil.CreateTopic(t, db, "graph")
	user := testutil.CreateUser(t, db, "ada")
	q1 := testutil.CreateQuestion(t, db, "Two Sum", model.DifficultyEasy, "array")
	q2 := testutil.CreateQuestion(t, db, "3Sum", model.DifficultyMedium, "array")
	q3 := testutil.CreateQuestion(t, db, "Clone Graph", model.DifficultyMedium, "graph")

	svc := NewProgressService(repository.NewProgressRepository(db), repository.NewAttemptRepository(db))
	fixed := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return fixed }
	ctx := context.Background()

	require.NoError(t, svc.MarkCompleted(ctx, user.ID, "array", q1.ID))
	require.NoError(t, svc.MarkCompleted(ctx, user.ID, "array", q1.ID))
	require.NoError(t, svc.RecordAttempt(ctx, user.ID, "array", q2.ID))
	require.NoError(t, svc.RecordAttempt(ctx, user.ID, "graph", q3.ID))
	require.NoError(t, svc.RecordAttempt(ctx, user.ID, "array", q1.ID))

	solved, err := svc.SolvedByTopic(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, []model.TopicSolvedCount{{TopicSlug: "array", SolvedCount: 1}}, solved)

	attempted, err := svc.AttemptedQuestions(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, map[string][]uint{
		"array": {q2.ID, q1.ID},
		"graph": {q3.ID},
	}, attempted)

	summary, err := svc.Summary(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, []model.TopicProgress{
		{TopicSlug: "array", Completed: 1, Attempted: 2},
		{TopicSlug: "graph", Completed: 0, Attempted: 1},
	}, summary)

	var row model.UserProgress
	require.NoError(t, db.Where("user_id = ?", user.ID).First(&row).Error)
	assert.True(t, row.SolvedAt.Equal(fixed))
}

func TestProgressService_UnknownUser(t *testing.T) {
	db := testutil.NewDB(t)
	svc := NewProgressService(repository.NewProgressRepository(db), repository.NewAttemptRepository(db))
	ctx := context.Background()

	solved, err := svc.SolvedByTopic(ctx, 999)
	require.NoError(t, err)
	assert.Empty(t, solved)

	attempted, err := svc.AttemptedQuestions(ctx, 999)
	require.NoError(t, err)
	assert.Empty(t, attempted)

	summary, err := svc.Summary(ctx, 999)
	require.NoError(t, err)
	assert.Empty(t, summary)
}
