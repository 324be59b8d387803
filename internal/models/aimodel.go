package models

import "time"

// ModelCategory classifies a catalog entry.
type ModelCategory string

const (
	CategoryNLP            ModelCategory = "nlp"
	CategoryComputerVision ModelCategory = "computer-vision"
	CategoryAudio          ModelCategory = "audio"
	CategoryMultimodal     ModelCategory = "multimodal"
	CategoryTabular        ModelCategory = "tabular"
	CategoryReinforcement  ModelCategory = "reinforcement-learning"
	CategoryOther          ModelCategory = "other"
)

// ModelFramework identifies the ML framework a model targets.
type ModelFramework string

const (
	FrameworkPyTorch    ModelFramework = "pytorch"
	FrameworkTensorFlow ModelFramework = "tensorflow"
	FrameworkJAX        ModelFramework = "jax"
	FrameworkONNX       ModelFramework = "onnx"
	FrameworkOther      ModelFramework = "other"
)

// ModelVersion is one release of a catalog entry. Version strings are unique
// within a model.
type ModelVersion struct {
	Version     string             `json:"version"`
	ReleaseDate time.Time          `json:"release_date"`
	Description string             `json:"description,omitempty"`
	DownloadURL string             `json:"download_url,omitempty"`
	SizeBytes   int64              `json:"size_bytes,omitempty"`
	Metrics     map[string]float64 `json:"metrics,omitempty"`
	Changelog   string             `json:"changelog,omitempty"`
}

// ModelReview is a user review embedded in a catalog entry. Each author holds
// at most one review per model.
type ModelReview struct {
	ID        string    `json:"id"`
	AuthorID  string    `json:"author_id"`
	Rating    int       `json:"rating"`
	Comment   string    `json:"comment,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// AIModelModel is a catalog entry for a published AI model.
type AIModelModel struct {
	Base
	Name            string         `json:"name"             gorm:"not null"`
	Slug            string         `json:"slug"             gorm:"uniqueIndex;not null"`
	Description     string         `json:"description"      gorm:"type:text"`
	LongDescription string         `json:"long_description" gorm:"type:text"`
	CreatorSnapshot AuthorSnapshot `json:"creator"          gorm:"embedded;embeddedPrefix:creator_"`
	Category        ModelCategory  `json:"category"         gorm:"index"`
	Framework       ModelFramework `json:"framework"        gorm:"index"`
	Tags            StringArray    `json:"tags"             gorm:"type:json;serializer:json"`
	Versions        []ModelVersion `json:"versions"         gorm:"type:json;serializer:json"`
	CurrentVersion  string         `json:"current_version"`
	License         string         `json:"license"`
	Downloads       int            `json:"downloads"        gorm:"default:0"`
	Stars           int            `json:"stars"            gorm:"default:0"`
	StarredBy       StringArray    `json:"starred_by"       gorm:"type:json;serializer:json"`
	Reviews         []ModelReview  `json:"reviews"          gorm:"type:json;serializer:json"`
	AverageRating   float64        `json:"average_rating"   gorm:"default:0"`
	Featured        bool           `json:"featured"         gorm:"default:false;index"`
}

func (AIModelModel) TableName() string { return "ai_models" }

// HasVersion reports whether a version with the given string exists.
func (m *AIModelModel) HasVersion(version string) bool {
	for _, v := range m.Versions {
		if v.Version == version {
			return true
		}
	}
	return false
}
