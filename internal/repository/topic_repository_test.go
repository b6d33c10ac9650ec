package repository

import (
	"context"
	"dsa_platform_backend/internal/model"
	"dsa_platform_backend/internal/testutil"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestTopicRepository_FindAllOrderedByID(t *testing.T) {
	db := testutil.NewDB(t)
	testutil.CreateTopic(t, db, "stack")
	testutil.CreateTopic(t, db, "array")

	topics, err := NewTopicRepository(db).FindAll(context.Background())
	require.NoError(t, err)
	require.Len(t, topics, 2)
	assert.Equal(t, "stack", topics[0].Slug)
	assert.Equal(t, "array", topics[1].Slug)
}

func TestTopicRepository_UpsertExplanationOverwrites(t *testing.T) {
	db := testutil.NewDB(t)
	testutil.CreateTopic(t, db, "array")
	repo := NewTopicRepository(db)
	ctx := context.Background()

	missing, err := repo.FindExplanation(ctx, "array")
	require.NoError(t, err)
	assert.Nil(t, missing)

	require.NoError(t, repo.UpsertExplanation(ctx, &model.Explanation{
		TopicSlug:  "array",
		Definition: strPtr("contiguous memory"),
		Example:    strPtr("[1,2,3]"),
	}))
	require.NoError(t, repo.UpsertExplanation(ctx, &model.Explanation{
		TopicSlug:  "array",
		Definition: strPtr("fixed-size sequence"),
		Visual:     strPtr("diagram"),
	}))

	var count int64
	require.NoError(t, db.Model(&model.Explanation{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)

	got, err := repo.FindExplanation(ctx, "array")
	require.NoError(t, err)
	require.NotNil(t, got)
	require.NotNil(t, got.Definition)
	assert.Equal(t, "fixed-size sequence", *got.Definition)
	assert.Nil(t, got.Example, "second write carries null example")
	require.NotNil(t, got.Visual)
	assert.Equal(t, "diagram", *got.Visual)
}
