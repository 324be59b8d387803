package aggregate

import (
	"strings"
	"testing"
	"time"

	"github.com/modelmart/core/internal/models"
	"github.com/stretchr/testify/assert"
)

func reviews(ratings ...int) []models.ModelReview {
	out := make([]models.ModelReview, len(ratings))
	for i, r := range ratings {
		out[i] = models.ModelReview{Rating: r}
	}
	return out
}

func TestAverageRating(t *testing.T) {
	tests := []struct {
		name    string
		ratings []int
		want    float64
	}{
		{"empty", nil, 0},
		{"single", []int{5}, 5},
		{"two values", []int{4, 5}, 4.5},
		{"repeating third rounds up", []int{3, 4, 4}, 3.7},
		{"exact half rounds away from zero", []int{4, 4, 4, 5}, 4.3},
		{"all ones", []int{1, 1, 1}, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, AverageRating(reviews(tt.ratings...)))
		})
	}
}

func TestTrendingScore(t *testing.T) {
	assert.Equal(t, 11, TrendingScore(5, 3))
	assert.Equal(t, 0, TrendingScore(0, 0))
	assert.Equal(t, 100, TrendingScore(100, 0))
	assert.Equal(t, 6, TrendingScore(0, 3))
}

func TestReadMinutes(t *testing.T) {
	assert.Equal(t, 2, ReadMinutes(strings.Repeat("word ", 450)))
	assert.Equal(t, 1, ReadMinutes(strings.Repeat("word ", 10)))
	assert.Equal(t, 1, ReadMinutes(""))
	assert.Equal(t, 1, ReadMinutes(strings.Repeat("word ", 225)))
	assert.Equal(t, 3, ReadMinutes(strings.Repeat("word ", 451)))
}

func TestReadMinutesStripsMarkdown(t *testing.T) {
	// heading markers and emphasis syntax must not count as words
	md := "# Title\n\nSome **bold** text with [a link](https://example.com)."
	plain := ReadMinutes(md)
	assert.Equal(t, 1, plain)
}

func TestTrendingCutoff(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	assert.Equal(t, now.Add(-24*time.Hour), TrendingCutoff(now))
}
