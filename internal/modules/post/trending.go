package post

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"github.com/modelmart/core/internal/models"
	"github.com/modelmart/core/internal/modules/aggregate"
	"github.com/modelmart/core/internal/pkg/apperr"
	"go.uber.org/zap"
)

const (
	trendingDefaultLimit = 10
	trendingMaxLimit     = 50
	trendingCacheTTL     = time.Minute
)

// ListTrending returns public posts created within the trending window,
// ranked by trending score. Posts older than the window are excluded
// entirely, not merely ranked lower.
func (s *Service) ListTrending(limit int) ([]models.PostModel, error) {
	if limit < 1 {
		limit = trendingDefaultLimit
	}
	if limit > trendingMaxLimit {
		limit = trendingMaxLimit
	}

	cacheKey := fmt.Sprintf("mm:trending:posts:%d", limit)
	if s.cache != nil {
		if raw, err := s.cache.Get(context.Background(), cacheKey); err == nil && raw != "" {
			var cached []models.PostModel
			if err := json.Unmarshal([]byte(raw), &cached); err == nil {
				return cached, nil
			}
		}
	}

	cutoff := aggregate.TrendingCutoff(time.Now())
	var posts []models.PostModel
	if err := s.db.
		Where("visibility = ? AND created_at >= ?", models.VisibilityPublic, cutoff).
		Find(&posts).Error; err != nil {
		return nil, apperr.Transient(err, "trending query")
	}

	sort.SliceStable(posts, func(i, j int) bool {
		si := aggregate.TrendingScore(posts[i].Likes, posts[i].CommentsCount)
		sj := aggregate.TrendingScore(posts[j].Likes, posts[j].CommentsCount)
		if si != sj {
			return si > sj
		}
		return posts[i].CreatedAt.After(posts[j].CreatedAt)
	})
	if len(posts) > limit {
		posts = posts[:limit]
	}

	if s.cache != nil {
		if raw, err := json.Marshal(posts); err == nil {
			if err := s.cache.Set(context.Background(), cacheKey, raw, trendingCacheTTL); err != nil {
				s.logger.Warn("trending cache write failed", zap.Error(err))
			}
		}
	}
	return posts, nil
}
