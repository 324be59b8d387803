package blog

import "github.com/modelmart/core/internal/models"

// CreateBlogDTO is the input for creating an article.
type CreateBlogDTO struct {
	Title      string             `json:"title"      validate:"required,max=200"`
	Slug       string             `json:"slug"       validate:"required,max=200"`
	Content    string             `json:"content"`
	Summary    string             `json:"summary"    validate:"max=500"`
	Categories models.StringArray `json:"categories"`
	Tags       models.StringArray `json:"tags"`
	Status     models.BlogStatus  `json:"status"     validate:"omitempty,oneof=draft published"`
}

// UpdateBlogDTO is a partial article update. Read time, counters and
// published_at are derived and not settable directly.
type UpdateBlogDTO struct {
	Title      *string            `json:"title"      validate:"omitempty,max=200"`
	Slug       *string            `json:"slug"       validate:"omitempty,max=200"`
	Content    *string            `json:"content"`
	Summary    *string            `json:"summary"    validate:"omitempty,max=500"`
	Categories models.StringArray `json:"categories"`
	Tags       models.StringArray `json:"tags"`
	Status     *models.BlogStatus `json:"status"     validate:"omitempty,oneof=draft published archived"`
}

// AddCommentDTO is the input for commenting on an article.
type AddCommentDTO struct {
	Content  string `json:"content"   validate:"required,max=2000"`
	ParentID string `json:"parent_id"`
}

// ListQuery holds blog list filters.
type ListQuery struct {
	Status   *models.BlogStatus
	Category *string
	Tag      *string
}
