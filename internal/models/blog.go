package models

import "time"

// BlogStatus is the publication state of a blog post.
// Allowed transitions: draft -> published -> archived.
type BlogStatus string

const (
	BlogDraft     BlogStatus = "draft"
	BlogPublished BlogStatus = "published"
	BlogArchived  BlogStatus = "archived"
)

// BlogPostModel is a long-form article with derived read time.
type BlogPostModel struct {
	Base
	AuthorSnapshot
	Title       string      `json:"title"        gorm:"not null"`
	Slug        string      `json:"slug"         gorm:"uniqueIndex;not null"`
	Content     string      `json:"content"      gorm:"type:longtext"`
	Summary     string      `json:"summary"`
	Categories  StringArray `json:"categories"   gorm:"type:json;serializer:json"`
	Tags        StringArray `json:"tags"         gorm:"type:json;serializer:json"`
	Status      BlogStatus  `json:"status"       gorm:"default:draft;index"`
	PublishedAt *time.Time  `json:"published_at"`
	Views       int         `json:"views"        gorm:"default:0"`
	Likes       int         `json:"likes"        gorm:"default:0"`
	LikedBy     StringArray `json:"liked_by"     gorm:"type:json;serializer:json"`
	Comments    []Comment   `json:"comments"     gorm:"type:json;serializer:json"`
	ReadTime    int         `json:"read_time"    gorm:"default:1"`
}

func (BlogPostModel) TableName() string { return "blog_posts" }
