package blog

import (
	"fmt"
	"strings"
	"time"

	"github.com/modelmart/core/internal/models"
	"github.com/modelmart/core/internal/modules/aggregate"
	"github.com/modelmart/core/internal/pkg/apperr"
	"github.com/modelmart/core/internal/pkg/markdown"
	"github.com/modelmart/core/internal/pkg/pagination"
	"github.com/modelmart/core/internal/pkg/response"
	"github.com/modelmart/core/internal/pkg/store"
	"github.com/modelmart/core/internal/pkg/validate"
	"gorm.io/gorm"
)

const summaryMaxLen = 200

// Service handles blog articles: lifecycle, derived read time, engagement.
type Service struct {
	db    *gorm.DB
	blogs *store.Store[models.BlogPostModel]
	users *store.Store[models.UserModel]
}

func NewService(db *gorm.DB) *Service {
	return &Service{
		db:    db,
		blogs: store.New[models.BlogPostModel](db),
		users: store.New[models.UserModel](db),
	}
}

// Create inserts a new article. The read time is derived from the content and
// published_at is stamped when the article starts out published.
func (s *Service) Create(authorID string, dto *CreateBlogDTO) (*models.BlogPostModel, error) {
	if err := validate.Struct(dto); err != nil {
		return nil, err
	}
	author, err := s.users.FindByID(authorID)
	if err != nil {
		return nil, apperr.Transient(err, "load author")
	}
	if author == nil {
		return nil, apperr.NotFound("author %s does not exist", authorID)
	}

	var count int64
	if err := s.db.Model(&models.BlogPostModel{}).Where("slug = ?", dto.Slug).Count(&count).Error; err != nil {
		return nil, apperr.Transient(err, "slug check")
	}
	if count > 0 {
		return nil, apperr.Conflict("slug %q already exists", dto.Slug)
	}

	b := models.BlogPostModel{
		AuthorSnapshot: models.AuthorSnapshot{
			AuthorID:     author.ID,
			AuthorName:   author.Username,
			AuthorAvatar: author.Avatar,
		},
		Title:      dto.Title,
		Slug:       dto.Slug,
		Content:    dto.Content,
		Summary:    dto.Summary,
		Categories: dto.Categories,
		Tags:       dto.Tags,
		Status:     models.BlogDraft,
		LikedBy:    models.StringArray{},
		Comments:   []models.Comment{},
		ReadTime:   aggregate.ReadMinutes(dto.Content),
	}
	if b.Summary == "" {
		b.Summary = deriveSummary(dto.Content)
	}
	if dto.Status == models.BlogPublished {
		now := time.Now()
		b.Status = models.BlogPublished
		b.PublishedAt = &now
	}

	if err := s.blogs.Insert(&b); err != nil {
		return nil, apperr.Transient(err, "create blog post")
	}
	return &b, nil
}

// GetBySlug fetches an article by slug; unpublished articles are only
// visible to admin callers.
func (s *Service) GetBySlug(slug string, isAdmin bool) (*models.BlogPostModel, error) {
	b, err := s.blogs.FindByKey("slug", slug)
	if err != nil || b == nil {
		return b, err
	}
	if !isAdmin && b.Status != models.BlogPublished {
		return nil, nil
	}
	return b, nil
}

// GetByID fetches an article by id.
func (s *Service) GetByID(id string) (*models.BlogPostModel, error) {
	return s.blogs.FindByID(id)
}

// List returns a paginated article page. Non-admin callers only see
// published articles.
func (s *Service) List(q pagination.Query, lq ListQuery, isAdmin bool) ([]models.BlogPostModel, response.Pagination, error) {
	tx := s.db.Model(&models.BlogPostModel{}).Order("created_at DESC")

	if !isAdmin {
		tx = tx.Where("status = ?", models.BlogPublished)
	} else if lq.Status != nil {
		tx = tx.Where("status = ?", *lq.Status)
	}
	if lq.Category != nil {
		tx = tx.Where("categories LIKE ?", fmt.Sprintf("%%%q%%", *lq.Category))
	}
	if lq.Tag != nil {
		tx = tx.Where("tags LIKE ?", fmt.Sprintf("%%%q%%", *lq.Tag))
	}

	var items []models.BlogPostModel
	pag, err := pagination.Paginate(tx, q, &items)
	return items, pag, err
}

// Update patches an article. The read time is recomputed whenever the
// content changes, and status changes must follow draft -> published ->
// archived; published_at is stamped once, on the transition into published.
func (s *Service) Update(id string, dto *UpdateBlogDTO) (*models.BlogPostModel, error) {
	if err := validate.Struct(dto); err != nil {
		return nil, err
	}
	b, err := s.blogs.FindByID(id)
	if err != nil || b == nil {
		return b, err
	}

	updates := map[string]interface{}{}
	if dto.Title != nil {
		updates["title"] = *dto.Title
		b.Title = *dto.Title
	}
	if dto.Slug != nil && *dto.Slug != b.Slug {
		var count int64
		if err := s.db.Model(&models.BlogPostModel{}).
			Where("slug = ? AND id <> ?", *dto.Slug, id).Count(&count).Error; err != nil {
			return nil, apperr.Transient(err, "slug check")
		}
		if count > 0 {
			return nil, apperr.Conflict("slug %q already exists", *dto.Slug)
		}
		updates["slug"] = *dto.Slug
		b.Slug = *dto.Slug
	}
	if dto.Content != nil && *dto.Content != b.Content {
		updates["content"] = *dto.Content
		b.Content = *dto.Content
		readTime := aggregate.ReadMinutes(*dto.Content)
		updates["read_time"] = readTime
		b.ReadTime = readTime
	}
	if dto.Summary != nil {
		updates["summary"] = *dto.Summary
		b.Summary = *dto.Summary
	}
	if dto.Categories != nil {
		updates["categories"] = dto.Categories
		b.Categories = dto.Categories
	}
	if dto.Tags != nil {
		updates["tags"] = dto.Tags
		b.Tags = dto.Tags
	}
	if dto.Status != nil && *dto.Status != b.Status {
		if !validTransition(b.Status, *dto.Status) {
			return nil, apperr.Validation("cannot change status from %s to %s", b.Status, *dto.Status)
		}
		updates["status"] = *dto.Status
		b.Status = *dto.Status
		if *dto.Status == models.BlogPublished && b.PublishedAt == nil {
			now := time.Now()
			updates["published_at"] = &now
			b.PublishedAt = &now
		}
	}
	if len(updates) == 0 {
		return b, nil
	}
	if err := s.db.Model(b).Updates(updates).Error; err != nil {
		return nil, apperr.Transient(err, "update blog post")
	}
	return b, nil
}

// Delete hard-deletes an article.
func (s *Service) Delete(id string) (bool, error) {
	ok, err := s.blogs.DeleteByID(id)
	if err != nil {
		return false, apperr.Transient(err, "delete blog post")
	}
	return ok, nil
}

// IncrementViews atomically bumps the view counter.
func (s *Service) IncrementViews(id string) error {
	if !store.ValidID(id) {
		return apperr.NotFound("blog post %s does not exist", id)
	}
	tx := s.db.Model(&models.BlogPostModel{}).Where("id = ?", id).
		UpdateColumn("views", gorm.Expr("views + 1"))
	if tx.Error != nil {
		return apperr.Transient(tx.Error, "increment views")
	}
	if tx.RowsAffected == 0 {
		return apperr.NotFound("blog post %s does not exist", id)
	}
	return nil
}

// RenderHTML returns the article content converted to HTML.
func (s *Service) RenderHTML(b *models.BlogPostModel) (string, error) {
	return markdown.RenderHTML(b.Content)
}

// validTransition enforces the one-way draft -> published -> archived
// lifecycle.
func validTransition(from, to models.BlogStatus) bool {
	switch from {
	case models.BlogDraft:
		return to == models.BlogPublished
	case models.BlogPublished:
		return to == models.BlogArchived
	default:
		return false
	}
}

// deriveSummary truncates at a rune boundary so multibyte content never
// yields a broken trailing character.
func deriveSummary(content string) string {
	text := strings.TrimSpace(markdown.PlainText(content))
	runes := []rune(text)
	if len(runes) <= summaryMaxLen {
		return text
	}
	cut := string(runes[:summaryMaxLen])
	if i := strings.LastIndexByte(cut, ' '); i > 0 {
		cut = cut[:i]
	}
	return cut + "…"
}
