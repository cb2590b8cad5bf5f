package internal

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLevenshteinDistance(t *testing.T) {
	tests := []struct {
		name     string
		a        string
		b        string
		expected int
	}{
		{"empty strings", "", "", 0},
		{"empty a", "", "hello", 5},
		{"empty b", "hello", "", 5},
		{"identical", "hello", "hello", 0},
		{"one char diff", "hello", "hallo", 1},
		{"completely different", "abc", "xyz", 3},
		{"insertion", "user.name", "user.names", 1},
		{"deletion", "items", "item", 1},
		{"case sensitive", "Name", "name", 1},
		{"runes not bytes", "grüße", "grusse", 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, levenshteinDistance(tt.a, tt.b))
		})
	}
}

func TestFindSimilarNames(t *testing.T) {
	t.Run("closest first", func(t *testing.T) {
		candidates := []string{"user.names", "user.name", "order.id"}
		result := FindSimilarNames("user.nme", candidates, 3)
		assert.Equal(t, []string{"user.name", "user.names"}, result)
	})

	t.Run("case-insensitive", func(t *testing.T) {
		result := FindSimilarNames("username", []string{"userName"}, 3)
		assert.Equal(t, []string{"userName"}, result)
	})

	t.Run("exact match is not suggested", func(t *testing.T) {
		result := FindSimilarNames("name", []string{"name", "same"}, 3)
		assert.Equal(t, []string{"same"}, result)
	})

	t.Run("ties keep candidate order", func(t *testing.T) {
		result := FindSimilarNames("cat", []string{"hat", "bat", "rat"}, 2)
		assert.Equal(t, []string{"hat", "bat"}, result)
	})

	t.Run("returns empty for no matches", func(t *testing.T) {
		assert.Empty(t, FindSimilarNames("username", []string{"xyz", "abc"}, 3))
	})

	t.Run("no candidates or limit", func(t *testing.T) {
		assert.Nil(t, FindSimilarNames("name", nil, 3))
		assert.Nil(t, FindSimilarNames("name", []string{"names"}, 0))
	})
}
