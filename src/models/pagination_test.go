package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewPaginatedResponse(t *testing.T) {
	params := PaginationParams{Page: 2, Limit: 10}
	resp := NewPaginatedResponse([]string{"a", "b"}, 35, params)

	assert.Equal(t, int64(35), resp.Total)
	assert.Equal(t, 2, resp.Page)
	assert.Equal(t, 4, resp.TotalPages)
	assert.True(t, resp.HasNext)
	assert.True(t, resp.HasPrevious)

	last := NewPaginatedResponse(nil, 35, PaginationParams{Page: 4, Limit: 10})
	assert.False(t, last.HasNext)
	assert.True(t, last.HasPrevious)

	first := NewPaginatedResponse(nil, 5, PaginationParams{Page: 1, Limit: 10})
	assert.False(t, first.HasNext)
	assert.False(t, first.HasPrevious)
}

func TestNormalize(t *testing.T) {
	params := PaginationParams{Page: 0, Limit: 0}
	params.Normalize()
	assert.Equal(t, 1, params.Page)
	assert.Equal(t, 10, params.Limit)

	params = PaginationParams{Page: -3, Limit: -1}
	params.Normalize()
	assert.Equal(t, 1, params.Page)
	assert.Equal(t, 10, params.Limit)

	params = PaginationParams{Page: 2, Limit: 50}
	params.Normalize()
	assert.Equal(t, 2, params.Page)
	assert.Equal(t, 50, params.Limit)
}

func TestPaginationHelpers(t *testing.T) {
	params := DefaultPagination()
	assert.Equal(t, int64(0), params.GetSkip())
	assert.Equal(t, map[string]int{"_id": 1}, params.GetSortOrder())

	params.Page = 3
	params.Limit = 20
	params.SortBy = "createdAt"
	params.Order = "desc"
	assert.Equal(t, int64(40), params.GetSkip())
	assert.Equal(t, map[string]int{"createdAt": -1}, params.GetSortOrder())
}
