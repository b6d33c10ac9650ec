package service

import (
	"context"
	"dsa_platform_backend/internal/model"
	"dsa_platform_backend/internal/repository"
	"dsa_platform_backend/internal/testutil"
	"dsa_platform_backend/internal/util"
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeSort(t *testing.T) {
	tests := []struct {
		sortBy, order string
		wantColumn    string
		wantDesc      bool
	}{
		{"", "", "id", false},
		{"title", "desc", "title", true},
		{"difficulty", "DESC", "difficulty", true},
		{"id; DROP TABLE questions", "asc", "id", false},
		{"link", "sideways", "id", false},
	}
	for _, tt := range tests {
		column, desc := NormalizeSort(tt.sortBy, tt.order)
		assert.Equal(t, tt.wantColumn, column, tt.sortBy)
		assert.Equal(t, tt.wantDesc, desc, tt.order)
	}
}

func TestQuestionService_List(t *testing.T) {
	db := testutil.NewDB(t)
	testutil.CreateTopic(t, db, "array")
	for i := 1; i <= 23; i++ {
		testutil.CreateQuestion(t, db, fmt.Sprintf("Question %02d", i), model.DifficultyEasy, "array")
	}
	svc := NewQuestionService(repository.NewQuestionRepository(db))
	ctx := context.Background()

	page, err := svc.List(ctx, QuestionListParams{Page: 3, Limit: 10})
	require.NoError(t, err)
	assert.Equal(t, int64(23), page.Total)
	assert.Equal(t, 3, page.Page)
	assert.Equal(t, 10, page.Limit)
	assert.Len(t, page.Questions, 3)

	page, err = svc.List(ctx, QuestionListParams{Search: "  question 1 ", SortBy: "bogus", Order: "desc", Page: 1, Limit: 5})
	require.NoError(t, err)
	assert.Equal(t, int64(10), page.Total)
	require.Len(t, page.Questions, 5)
	assert.Equal(t, "Question 19", page.Questions[0].Title)

	_, err = svc.List(ctx, QuestionListParams{Page: 0, Limit: 10})
	assert.ErrorIs(t, err, util.ErrInvalidPagination)
	_, err = svc.List(ctx, QuestionListParams{Page: 1, Limit: -1})
	assert.ErrorIs(t, err, util.ErrInvalidPagination)
	_, err = svc.List(ctx, QuestionListParams{Page: math.MaxInt/4 + 2, Limit: 4})
	assert.ErrorIs(t, err, util.ErrInvalidPagination)

	page, err = svc.List(ctx, QuestionListParams{Page: 2, Limit: math.MaxInt})
	require.NoError(t, err)
	assert.Empty(t, page.Questions)
}

func TestQuestionService_CountByTopic(t *testing.T) {
	db := testutil.NewDB(t)
	testutil.CreateTopic(t, db, "array")
	testutil.CreateTopic(t, db, "graph")
	testutil.CreateQuestion(t, db, "Two Sum", model.DifficultyEasy, "array")
	testutil.CreateQuestion(t, db, "Clone Graph", model.DifficultyMedium, "graph")
	testutil.CreateQuestion(t, db, "Course Schedule", model.DifficultyMedium, "graph")

	counts, err := NewQuestionService(repository.NewQuestionRepository(db)).CountByTopic(context.Background())
	require.NoError(t, err)
	assert.Equal(t, map[string]int64{"array": 1, "graph": 2}, counts)
}
