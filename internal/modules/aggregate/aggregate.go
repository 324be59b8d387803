// Package aggregate computes the derived numeric fields persisted on
// entities: average rating, trending score and estimated read time.
package aggregate

import (
	"math"
	"strings"
	"time"

	"github.com/modelmart/core/internal/models"
	"github.com/modelmart/core/internal/pkg/markdown"
)

const (
	// WordsPerMinute is the assumed reading speed for read-time estimates.
	WordsPerMinute = 225
	// TrendingWindow is the trailing window trending queries consider.
	// Entities created outside it are excluded entirely.
	TrendingWindow = 24 * time.Hour
)

// AverageRating returns the mean review rating rounded to one decimal place
// (half away from zero), or 0 when there are no reviews.
func AverageRating(reviews []models.ModelReview) float64 {
	if len(reviews) == 0 {
		return 0
	}
	sum := 0
	for _, r := range reviews {
		sum += r.Rating
	}
	mean := float64(sum) / float64(len(reviews))
	return math.Round(mean*10) / 10
}

// TrendingScore ranks entities created within the trending window.
func TrendingScore(likes, commentsCount int) int {
	return likes + 2*commentsCount
}

// ReadMinutes estimates reading time in whole minutes, never below 1.
// Markdown syntax is stripped before counting words.
func ReadMinutes(content string) int {
	words := len(strings.Fields(markdown.PlainText(content)))
	minutes := int(math.Ceil(float64(words) / WordsPerMinute))
	if minutes < 1 {
		return 1
	}
	return minutes
}

// TrendingCutoff returns the earliest creation time still inside the window.
func TrendingCutoff(now time.Time) time.Time {
	return now.Add(-TrendingWindow)
}
