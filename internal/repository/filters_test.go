package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPersonFilterOrderClause(t *testing.T) {
	tests := []struct {
		name   string
		filter PersonFilter
		want   string
	}{
		{"defaults to newest first", PersonFilter{}, "people.created_at DESC"},
		{"known column ascending", PersonFilter{SortBy: "last_name", SortDir: "ASC"}, "people.last_name ASC"},
		{"unknown column falls back", PersonFilter{SortBy: "id; DROP TABLE people", SortDir: "asc"}, "people.created_at ASC"},
		{"unknown direction is descending", PersonFilter{SortBy: "first_name", SortDir: "sideways"}, "people.first_name DESC"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.filter.orderClause())
		})
	}
}

func TestLikePattern(t *testing.T) {
	assert.Equal(t, "%jane%", likePattern("  jane "))
}

func TestNextIndex(t *testing.T) {
	assert.Equal(t, 0, nextIndex(-1, 3))
	assert.Equal(t, 1, nextIndex(0, 3))
	assert.Equal(t, 0, nextIndex(2, 3))
	// cursor left over from a longer rotation
	assert.Equal(t, 0, nextIndex(5, 3))
}
