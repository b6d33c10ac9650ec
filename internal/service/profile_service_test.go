package service

import (
	"context"
	"dsa_platform_backend/internal/model"
	"dsa_platform_backend/internal/repository"
	"dsa_platform_backend/internal/testutil"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProfileService_SaveUsesPathUser(t *testing.T) {
	db := testutil.NewDB(t)
	ada := testutil.CreateUser(t, db, "ada")
	svc := NewProfileService(repository.NewProfileRepository(db))
	ctx := context.Background()

	// 请求体里的 ID/UserID 不生效
	require.NoError(t, svc.Save(ctx, ada.ID, &model.UserProfile{ID: 99, UserID: 12345, Name: "Ada"}))

	profile, err := svc.Get(ctx, ada.ID)
	require.NoError(t, err)
	require.NotNil(t, profile)
	assert.Equal(t, ada.ID, profile.UserID)
	assert.Equal(t, "Ada", profile.Name)
	assert.NotEqual(t, uint(99), profile.ID)
}

func TestTopicService_Explanation(t *testing.T) {
	db := testutil.NewDB(t)
	testutil.CreateTopic(t, db, "heap")
	svc := NewTopicService(repository.NewTopicRepository(db))
	ctx := context.Background()

	definition := "complete binary tree with heap order"
	require.NoError(t, svc.SaveExplanation(ctx, "heap", &model.Explanation{TopicSlug: "ignored", Definition: &definition}))

	got, err := svc.GetExplanation(ctx, "heap")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "heap", got.TopicSlug)
	assert.Equal(t, definition, *got.Definition)
	assert.Nil(t, got.Discussion)

	topics, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, topics, 1)
	assert.Equal(t, "heap", topics[0].Slug)
}
