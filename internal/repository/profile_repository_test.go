package repository

import (
	"context"
	"dsa_platform_backend/internal/model"
	"dsa_platform_backend/internal/testutil"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProfileRepository_UpsertSingleRow(t *testing.T) {
	db := testutil.NewDB(t)
	user := testutil.CreateUser(t, db, "ada")
	repo := NewProfileRepository(db)
	ctx := context.Background()

	missing, err := repo.FindByUserID(ctx, user.ID)
	require.NoError(t, err)
	assert.Nil(t, missing)

	require.NoError(t, repo.Upsert(ctx, &model.UserProfile{UserID: user.ID, Name: "Ada", Github: "ada"}))
	require.NoError(t, repo.Upsert(ctx, &model.UserProfile{UserID: user.ID, Name: "Ada Lovelace", Skills: "math"}))

	var count int64
	require.NoError(t, db.Model(&model.UserProfile{}).Where("user_id = ?", user.ID).Count(&count).Error)
	assert.Equal(t, int64(1), count)

	profile, err := repo.FindByUserID(ctx, user.ID)
	require.NoError(t, err)
	require.NotNil(t, profile)
	assert.Equal(t, "Ada Lovelace", profile.Name)
	assert.Equal(t, "math", profile.Skills)
	assert.Empty(t, profile.Github, "omitted fields are overwritten")
}

func TestBookmarkRepository_CountByUser(t *testing.T) {
	db := testutil.NewDB(t)
	testutil.CreateTopic(t, db, "array")
	q1 := testutil.CreateQuestion(t, db, "Two Sum", model.DifficultyEasy, "array")
	q2 := testutil.CreateQuestion(t, db, "3Sum", model.DifficultyMedium, "array")
	user := testutil.CreateUser(t, db, "ada")
	repo := NewBookmarkRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &model.Bookmark{UserID: user.ID, QuestionID: q1.ID}))
	require.NoError(t, repo.Create(ctx, &model.Bookmark{UserID: user.ID, QuestionID: q2.ID}))

	count, err := repo.CountByUser(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)

	count, err = repo.CountByUser(ctx, user.ID+1)
	require.NoError(t, err)
	assert.Zero(t, count)
}
