package model

import (
	"time"

	"github.com/modelmart/core/internal/models"
)

// CreateModelDTO is the input for publishing a catalog entry.
type CreateModelDTO struct {
	Name            string                `json:"name"             validate:"required,max=128"`
	Slug            string                `json:"slug"             validate:"required,max=128"`
	Description     string                `json:"description"      validate:"max=2000"`
	LongDescription string                `json:"long_description"`
	Category        models.ModelCategory  `json:"category"         validate:"omitempty,oneof=nlp computer-vision audio multimodal tabular reinforcement-learning other"`
	Framework       models.ModelFramework `json:"framework"        validate:"omitempty,oneof=pytorch tensorflow jax onnx other"`
	Tags            models.StringArray    `json:"tags"`
	License         string                `json:"license"`
}

// UpdateModelDTO is a partial catalog update. Counters, reviews, versions and
// the creator snapshot are system-owned and mutated through their own
// operations.
type UpdateModelDTO struct {
	Name            *string                `json:"name"             validate:"omitempty,max=128"`
	Description     *string                `json:"description"      validate:"omitempty,max=2000"`
	LongDescription *string                `json:"long_description"`
	Category        *models.ModelCategory  `json:"category"         validate:"omitempty,oneof=nlp computer-vision audio multimodal tabular reinforcement-learning other"`
	Framework       *models.ModelFramework `json:"framework"        validate:"omitempty,oneof=pytorch tensorflow jax onnx other"`
	Tags            models.StringArray     `json:"tags"`
	License         *string                `json:"license"`
	Featured        *bool                  `json:"featured"`
}

// ReviewDTO is the input for the per-author review upsert.
type ReviewDTO struct {
	Rating  int    `json:"rating"  validate:"required,min=1,max=5"`
	Comment string `json:"comment" validate:"max=2000"`
}

// VersionDTO describes one release to add or replace.
type VersionDTO struct {
	Version     string             `json:"version"      validate:"required,max=64"`
	ReleaseDate time.Time          `json:"release_date"`
	Description string             `json:"description"`
	DownloadURL string             `json:"download_url"`
	SizeBytes   int64              `json:"size_bytes"`
	Metrics     map[string]float64 `json:"metrics"`
	Changelog   string             `json:"changelog"`
}

// ListQuery holds catalog list filters.
type ListQuery struct {
	Category  *models.ModelCategory
	Framework *models.ModelFramework
	Featured  *bool
	Sort      string // "created" (default) | "downloads" | "stars" | "rating"
}
