package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseUserID(t *testing.T) {
	id, err := ParseUserID("42")
	require.NoError(t, err)
	assert.Equal(t, uint(42), id)

	for _, in := range []string{"", "0", "-1", "abc", "1.5"} {
		_, err := ParseUserID(in)
		assert.ErrorIs(t, err, ErrInvalidUserID, in)
	}
}

func TestParsePagination(t *testing.T) {
	page, limit, err := ParsePagination("", "")
	require.NoError(t, err)
	assert.Equal(t, DefaultPage, page)
	assert.Equal(t, DefaultPageLimit, limit)

	page, limit, err = ParsePagination("3", " 25 ")
	require.NoError(t, err)
	assert.Equal(t, 3, page)
	assert.Equal(t, 25, limit)

	invalid := [][2]string{{"0", "10"}, {"1", "0"}, {"-2", ""}, {"", "-5"}, {"x", "10"}, {"1", "ten"}}
	for _, in := range invalid {
		_, _, err := ParsePagination(in[0], in[1])
		assert.ErrorIs(t, err, ErrInvalidPagination, "page=%q limit=%q", in[0], in[1])
	}
}
