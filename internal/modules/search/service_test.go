package search

import (
	"fmt"
	"testing"

	"github.com/modelmart/core/internal/models"
	"github.com/modelmart/core/internal/pkg/apperr"
	"github.com/modelmart/core/internal/pkg/dbtest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func seedSearchData(t *testing.T, db *gorm.DB) {
	t.Helper()
	users := []models.UserModel{
		{Username: "alice", Email: "alice@example.com", Password: "x", DisplayName: "Alice Liddell"},
		{Username: "bob", Email: "bob@example.com", Password: "x", DisplayName: "Bob"},
	}
	for i := range users {
		require.NoError(t, db.Create(&users[i]).Error)
	}
	posts := []models.PostModel{
		{Content: "Training a TRANSFORMER from scratch", Visibility: models.VisibilityPublic},
		{Content: "weekend hiking photos", Tags: models.StringArray{"outdoors"}, Visibility: models.VisibilityPublic},
	}
	for i := range posts {
		require.NoError(t, db.Create(&posts[i]).Error)
	}
	entries := []models.AIModelModel{
		{Name: "BERT variant", Slug: "bert-variant", Description: "a transformer encoder"},
		{Name: "tabular-gbm", Slug: "tabular-gbm", Description: "gradient boosting"},
	}
	for i := range entries {
		require.NoError(t, db.Create(&entries[i]).Error)
	}
	articles := []models.BlogPostModel{
		{Title: "Why transformers won", Slug: "why-transformers-won", Status: models.BlogPublished},
	}
	for i := range articles {
		require.NoError(t, db.Create(&articles[i]).Error)
	}
}

func TestSearchCaseInsensitive(t *testing.T) {
	db := dbtest.New(t)
	seedSearchData(t, db)
	svc := NewService(db)

	results, err := svc.Search(KindPost, "transformer", 10)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, KindPost, results[0].Kind)

	// same hits regardless of query case
	results, err = svc.Search(KindPost, "TrAnSfOrMeR", 10)
	require.NoError(t, err)
	assert.Len(t, results, 1)
}

func TestSearchPerKindFields(t *testing.T) {
	db := dbtest.New(t)
	seedSearchData(t, db)
	svc := NewService(db)

	// models match on description too
	results, err := svc.Search(KindModel, "transformer", 10)
	require.NoError(t, err)
	assert.Len(t, results, 1)

	// users match on display name
	results, err = svc.Search(KindUser, "liddell", 10)
	require.NoError(t, err)
	assert.Len(t, results, 1)

	// posts match on tags
	results, err = svc.Search(KindPost, "outdoors", 10)
	require.NoError(t, err)
	assert.Len(t, results, 1)

	results, err = svc.Search(KindBlog, "transformers", 10)
	require.NoError(t, err)
	assert.Len(t, results, 1)
}

func TestSearchEmptyQuery(t *testing.T) {
	db := dbtest.New(t)
	svc := NewService(db)

	_, err := svc.Search(KindPost, "   ", 10)
	assert.True(t, apperr.IsValidation(err))
}

func TestSearchUnknownKind(t *testing.T) {
	db := dbtest.New(t)
	svc := NewService(db)

	_, err := svc.Search(Kind("bogus"), "x", 10)
	assert.True(t, apperr.IsValidation(err))
}

func TestSearchLimit(t *testing.T) {
	db := dbtest.New(t)
	svc := NewService(db)
	for i := 0; i < 5; i++ {
		p := models.PostModel{Content: fmt.Sprintf("common subject %d", i), Visibility: models.VisibilityPublic}
		require.NoError(t, db.Create(&p).Error)
	}

	results, err := svc.Search(KindPost, "common", 3)
	require.NoError(t, err)
	assert.Len(t, results, 3)

	// zero falls back to the default limit
	results, err = svc.Search(KindPost, "common", 0)
	require.NoError(t, err)
	assert.Len(t, results, 5)
}

func TestSearchNoResults(t *testing.T) {
	db := dbtest.New(t)
	seedSearchData(t, db)
	svc := NewService(db)

	results, err := svc.Search(KindUser, "nobody-here", 10)
	require.NoError(t, err)
	assert.Empty(t, results)
}
