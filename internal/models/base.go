package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Base is the base model for all entities.
// ID is a UUID string for API compatibility with the original document ID format.
type Base struct {
	ID        string    `json:"id"         gorm:"type:char(36);primaryKey"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (b *Base) BeforeCreate(tx *gorm.DB) error {
	if b.ID == "" {
		b.ID = uuid.New().String()
	}
	return nil
}

// AuthorSnapshot is a denormalized copy of a user's display fields taken at
// write time. It is not kept in sync with the owning user afterwards.
type AuthorSnapshot struct {
	AuthorID     string `json:"author_id"     gorm:"index"`
	AuthorName   string `json:"author_name"`
	AuthorAvatar string `json:"author_avatar"`
}
