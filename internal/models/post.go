package models

import "time"

// PostVisibility controls who may read a post.
type PostVisibility string

const (
	VisibilityPublic    PostVisibility = "public"
	VisibilityFollowers PostVisibility = "followers"
	VisibilityPrivate   PostVisibility = "private"
)

// MediaItem is an embedded media reference on a post.
type MediaItem struct {
	URL    string `json:"url"`
	Type   string `json:"type,omitempty"`
	Width  int    `json:"width,omitempty"`
	Height int    `json:"height,omitempty"`
}

// Comment is a flat reply embedded in a post's comment list. ParentID
// references another comment in the same list; the tree is reconstructed at
// read time when needed.
type Comment struct {
	ID        string      `json:"id"`
	AuthorSnapshot
	Content   string      `json:"content"`
	Likes     int         `json:"likes"`
	LikedBy   StringArray `json:"liked_by"`
	ParentID  string      `json:"parent_id,omitempty"`
	CreatedAt time.Time   `json:"created_at"`
	UpdatedAt time.Time   `json:"updated_at"`
}

// PostModel is a social feed post. Comments and the liked-by set live on the
// post row so counter and list changes commit as one write.
type PostModel struct {
	Base
	AuthorSnapshot
	Content        string         `json:"content"       gorm:"type:text;not null"`
	Media          []MediaItem    `json:"media"         gorm:"type:json;serializer:json"`
	Tags           StringArray    `json:"tags"          gorm:"type:json;serializer:json"`
	Mentions       StringArray    `json:"mentions"      gorm:"type:json;serializer:json"`
	Likes          int            `json:"likes"         gorm:"default:0"`
	LikedBy        StringArray    `json:"liked_by"      gorm:"type:json;serializer:json"`
	Comments       []Comment      `json:"comments"      gorm:"type:json;serializer:json"`
	CommentsCount  int            `json:"comments_count" gorm:"default:0"`
	Visibility     PostVisibility `json:"visibility"    gorm:"default:public;index"`
	IsRepost       bool           `json:"is_repost"     gorm:"default:false"`
	OriginalPostID string         `json:"original_post_id,omitempty"`
	OriginalUserID string         `json:"original_user_id,omitempty"`
	OriginalUser   string         `json:"original_user_name,omitempty"`
}

func (PostModel) TableName() string { return "posts" }

// TrendingScore ranks recent posts: likes plus double weight for comments.
func (p *PostModel) TrendingScore() int {
	return p.Likes + 2*p.CommentsCount
}
