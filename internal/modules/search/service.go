// Package search provides case-insensitive substring search across a fixed
// set of text fields per entity kind. Matching is intentionally naive: no
// tokenization, no relevance ranking; results come back in store-native
// order. Callers needing ranked relevance must layer a real search engine on
// top.
package search

import (
	"fmt"
	"strings"

	"github.com/modelmart/core/internal/models"
	"github.com/modelmart/core/internal/pkg/apperr"
	"gorm.io/gorm"
)

const (
	DefaultLimit = 10
	MaxLimit     = 50
)

// Kind selects which entity type to search.
type Kind string

const (
	KindPost  Kind = "post"
	KindModel Kind = "model"
	KindUser  Kind = "user"
	KindBlog  Kind = "blog"
)

// Service runs substring queries against the store.
type Service struct {
	db *gorm.DB
}

func NewService(db *gorm.DB) *Service { return &Service{db: db} }

// Result is one search hit.
type Result struct {
	Kind   Kind        `json:"kind"`
	Entity interface{} `json:"entity"`
}

// Search returns up to limit entities of the given kind whose indexed fields
// contain the query as a substring, case-insensitively.
func (s *Service) Search(kind Kind, query string, limit int) ([]Result, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, apperr.Validation("query must not be empty")
	}
	if limit < 1 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}
	like := "%" + strings.ToLower(query) + "%"

	switch kind {
	case KindPost:
		var posts []models.PostModel
		if err := s.db.
			Where(fieldMatch("content", "tags"), like, like).
			Limit(limit).Find(&posts).Error; err != nil {
			return nil, apperr.Transient(err, "search posts")
		}
		return wrap(KindPost, posts), nil
	case KindModel:
		var entries []models.AIModelModel
		if err := s.db.
			Where(fieldMatch("name", "description", "long_description", "tags"), like, like, like, like).
			Limit(limit).Find(&entries).Error; err != nil {
			return nil, apperr.Transient(err, "search models")
		}
		return wrap(KindModel, entries), nil
	case KindUser:
		var users []models.UserModel
		if err := s.db.
			Where(fieldMatch("display_name", "username", "email"), like, like, like).
			Limit(limit).Find(&users).Error; err != nil {
			return nil, apperr.Transient(err, "search users")
		}
		return wrap(KindUser, users), nil
	case KindBlog:
		var articles []models.BlogPostModel
		if err := s.db.
			Where(fieldMatch("title", "content", "tags"), like, like, like).
			Limit(limit).Find(&articles).Error; err != nil {
			return nil, apperr.Transient(err, "search blog posts")
		}
		return wrap(KindBlog, articles), nil
	default:
		return nil, apperr.Validation("unknown search kind %q", kind)
	}
}

// fieldMatch builds "LOWER(a) LIKE ? OR LOWER(b) LIKE ? ..." for the fixed
// field set of one kind.
func fieldMatch(columns ...string) string {
	parts := make([]string, len(columns))
	for i, col := range columns {
		parts[i] = fmt.Sprintf("LOWER(%s) LIKE ?", col)
	}
	return strings.Join(parts, " OR ")
}

func wrap[T any](kind Kind, items []T) []Result {
	results := make([]Result, len(items))
	for i := range items {
		results[i] = Result{Kind: kind, Entity: items[i]}
	}
	return results
}
