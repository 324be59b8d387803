package post

import "github.com/modelmart/core/internal/models"

// CreatePostDTO is the input for post creation. When OriginalPostID is set
// the post is created as a repost carrying the original's linkage fields.
type CreatePostDTO struct {
	Content        string                `json:"content"    validate:"required_without=OriginalPostID,max=5000"`
	Media          []models.MediaItem    `json:"media"`
	Tags           models.StringArray    `json:"tags"`
	Mentions       models.StringArray    `json:"mentions"`
	Visibility     models.PostVisibility `json:"visibility" validate:"omitempty,oneof=public followers private"`
	OriginalPostID string                `json:"original_post_id"`
}

// UpdatePostDTO is a partial post update. Counters, author snapshot and
// repost linkage are system-owned and not settable.
type UpdatePostDTO struct {
	Content    *string                `json:"content"    validate:"omitempty,max=5000"`
	Media      []models.MediaItem     `json:"media"`
	Tags       models.StringArray     `json:"tags"`
	Mentions   models.StringArray     `json:"mentions"`
	Visibility *models.PostVisibility `json:"visibility" validate:"omitempty,oneof=public followers private"`
}

// AddCommentDTO is the input for appending a comment to a post.
type AddCommentDTO struct {
	Content  string `json:"content"   validate:"required,max=2000"`
	ParentID string `json:"parent_id"`
}

// ListQuery holds the optional post list filters.
type ListQuery struct {
	AuthorID   *string
	Visibility *models.PostVisibility
	Tag        *string
	Sort       string // "created" (default) | "popular"
}
