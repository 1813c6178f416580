package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLevenshtein(t *testing.T) {
	tests := []struct {
		a        string
		b        string
		expected int
	}{
		{"", "", 0},
		{"a", "a", 0},
		{"", "abc", 3},
		{"abc", "", 3},
		{"a", "b", 1},
		{"a", "ab", 1},
		{"ab", "a", 1},
		{"kitten", "sitting", 3},
		{"saturday", "sunday", 3},
		{"page", "pageSize", 4},
		{"pagesize", "pageSize", 1},
		{"filter", "filters", 1},
	}

	for _, tt := range tests {
		t.Run(tt.a+"_"+tt.b, func(t *testing.T) {
			assert.Equal(t, tt.expected, Levenshtein(tt.a, tt.b))
			assert.Equal(t, tt.expected, Levenshtein(tt.b, tt.a), "symmetry")
		})
	}
}

func TestSimilarity(t *testing.T) {
	assert.InDelta(t, 1.0, Similarity("", ""), 1e-9)
	assert.InDelta(t, 1.0, Similarity("PageSize", "pagesize"), 1e-9)
	assert.InDelta(t, 0.0, Similarity("abc", "xyz"), 1e-9)
	assert.InDelta(t, 0.8, Similarity("sort", "sorts"), 1e-9)
}

func TestSuggest(t *testing.T) {
	candidates := []string{"page", "pageSize", "filters"}

	assert.Equal(t, []string{"filters"}, Suggest("filter", candidates, 3))
	assert.Equal(t, []string{"pageSize", "page"}, Suggest("pagesize", candidates, 3))
	assert.Equal(t, []string{"pageSize"}, Suggest("pagesize", candidates, 1))
	assert.Equal(t, []string{"page", "pageSize"}, Suggest("pa", candidates, 3))
	assert.Empty(t, Suggest("zzz", candidates, 3))
	assert.Empty(t, Suggest("page", candidates, 0))
	assert.Empty(t, Suggest("", candidates, 3))
}
