package blog

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/modelmart/core/internal/models"
	"github.com/modelmart/core/internal/pkg/dbtest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListPublished(t *testing.T) {
	db := dbtest.New(t)
	svc := NewService(db)
	alice := seedWriter(t, db, "alice")

	_, err := svc.Create(alice.ID, &CreateBlogDTO{Title: "draft", Slug: "draft"})
	require.NoError(t, err)
	_, err = svc.Create(alice.ID, &CreateBlogDTO{Title: "live", Slug: "live", Status: models.BlogPublished})
	require.NoError(t, err)

	articles, err := svc.ListPublished(20)
	require.NoError(t, err)
	require.Len(t, articles, 1)
	assert.Equal(t, "live", articles[0].Slug)
}

func TestFeedEndpoints(t *testing.T) {
	gin.SetMode(gin.TestMode)
	db := dbtest.New(t)
	svc := NewService(db)
	alice := seedWriter(t, db, "alice")

	_, err := svc.Create(alice.ID, &CreateBlogDTO{
		Title:   "Release & roadmap",
		Slug:    "release-roadmap",
		Content: "# Notes\n\nwhat shipped",
		Status:  models.BlogPublished,
	})
	require.NoError(t, err)

	router := gin.New()
	h := NewHandler(svc, func(string) (*models.UserModel, error) { return nil, nil })
	h.RegisterFeedRoutes(router.Group(""), SiteMeta{
		Title:       "ModelMart",
		Description: "marketplace blog",
		URL:         "https://modelmart.example.com",
	})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/feed.xml", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "<rss version=\"2.0\">")
	assert.Contains(t, body, "Release &amp; roadmap")
	assert.Contains(t, body, "https://modelmart.example.com/blog/release-roadmap")

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/atom.xml", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "http://www.w3.org/2005/Atom")
}
