package model

import (
	"github.com/modelmart/core/internal/models"
	"github.com/modelmart/core/internal/pkg/apperr"
	"github.com/modelmart/core/internal/pkg/pagination"
	"github.com/modelmart/core/internal/pkg/response"
	"github.com/modelmart/core/internal/pkg/store"
	"github.com/modelmart/core/internal/pkg/validate"
	"gorm.io/gorm"
)

// Service handles the AI model catalog: entries, reviews, versions and
// engagement counters.
type Service struct {
	db      *gorm.DB
	catalog *store.Store[models.AIModelModel]
	users   *store.Store[models.UserModel]
}

func NewService(db *gorm.DB) *Service {
	return &Service{
		db:      db,
		catalog: store.New[models.AIModelModel](db),
		users:   store.New[models.UserModel](db),
	}
}

// Create publishes a new catalog entry. Slug duplicates yield a Conflict.
func (s *Service) Create(creatorID string, dto *CreateModelDTO) (*models.AIModelModel, error) {
	if err := validate.Struct(dto); err != nil {
		return nil, err
	}
	creator, err := s.users.FindByID(creatorID)
	if err != nil {
		return nil, apperr.Transient(err, "load creator")
	}
	if creator == nil {
		return nil, apperr.NotFound("creator %s does not exist", creatorID)
	}

	var count int64
	if err := s.db.Model(&models.AIModelModel{}).Where("slug = ?", dto.Slug).Count(&count).Error; err != nil {
		return nil, apperr.Transient(err, "slug check")
	}
	if count > 0 {
		return nil, apperr.Conflict("slug %q already exists", dto.Slug)
	}

	m := models.AIModelModel{
		Name:            dto.Name,
		Slug:            dto.Slug,
		Description:     dto.Description,
		LongDescription: dto.LongDescription,
		CreatorSnapshot: models.AuthorSnapshot{
			AuthorID:     creator.ID,
			AuthorName:   creator.Username,
			AuthorAvatar: creator.Avatar,
		},
		Category:  dto.Category,
		Framework: dto.Framework,
		Tags:      dto.Tags,
		License:   dto.License,
		Versions:  []models.ModelVersion{},
		StarredBy: models.StringArray{},
		Reviews:   []models.ModelReview{},
	}
	if m.Category == "" {
		m.Category = models.CategoryOther
	}
	if m.Framework == "" {
		m.Framework = models.FrameworkOther
	}
	if err := s.catalog.Insert(&m); err != nil {
		return nil, apperr.Transient(err, "create model")
	}
	return &m, nil
}

// GetByID fetches a catalog entry, (nil, nil) when missing.
func (s *Service) GetByID(id string) (*models.AIModelModel, error) {
	return s.catalog.FindByID(id)
}

// GetBySlug fetches a catalog entry by slug.
func (s *Service) GetBySlug(slug string) (*models.AIModelModel, error) {
	return s.catalog.FindByKey("slug", slug)
}

// List returns a paginated catalog page.
func (s *Service) List(q pagination.Query, lq ListQuery) ([]models.AIModelModel, response.Pagination, error) {
	tx := s.db.Model(&models.AIModelModel{})

	if lq.Category != nil {
		tx = tx.Where("category = ?", *lq.Category)
	}
	if lq.Framework != nil {
		tx = tx.Where("framework = ?", *lq.Framework)
	}
	if lq.Featured != nil {
		tx = tx.Where("featured = ?", *lq.Featured)
	}
	switch lq.Sort {
	case "downloads":
		tx = tx.Order("downloads DESC, created_at DESC")
	case "stars":
		tx = tx.Order("stars DESC, created_at DESC")
	case "rating":
		tx = tx.Order("average_rating DESC, created_at DESC")
	default:
		tx = tx.Order("created_at DESC")
	}

	var items []models.AIModelModel
	pag, err := pagination.Paginate(tx, q, &items)
	return items, pag, err
}

// Update patches descriptive fields of a catalog entry.
func (s *Service) Update(id string, dto *UpdateModelDTO) (*models.AIModelModel, error) {
	if err := validate.Struct(dto); err != nil {
		return nil, err
	}
	m, err := s.catalog.FindByID(id)
	if err != nil || m == nil {
		return m, err
	}

	updates := map[string]interface{}{}
	if dto.Name != nil {
		updates["name"] = *dto.Name
		m.Name = *dto.Name
	}
	if dto.Description != nil {
		updates["description"] = *dto.Description
		m.Description = *dto.Description
	}
	if dto.LongDescription != nil {
		updates["long_description"] = *dto.LongDescription
		m.LongDescription = *dto.LongDescription
	}
	if dto.Category != nil {
		updates["category"] = *dto.Category
		m.Category = *dto.Category
	}
	if dto.Framework != nil {
		updates["framework"] = *dto.Framework
		m.Framework = *dto.Framework
	}
	if dto.Tags != nil {
		updates["tags"] = dto.Tags
		m.Tags = dto.Tags
	}
	if dto.License != nil {
		updates["license"] = *dto.License
		m.License = *dto.License
	}
	if dto.Featured != nil {
		updates["featured"] = *dto.Featured
		m.Featured = *dto.Featured
	}
	if len(updates) == 0 {
		return m, nil
	}
	if err := s.db.Model(m).Updates(updates).Error; err != nil {
		return nil, apperr.Transient(err, "update model")
	}
	return m, nil
}

// Delete hard-deletes a catalog entry.
func (s *Service) Delete(id string) (bool, error) {
	ok, err := s.catalog.DeleteByID(id)
	if err != nil {
		return false, apperr.Transient(err, "delete model")
	}
	return ok, nil
}

// IncrementDownloads atomically bumps the download counter.
func (s *Service) IncrementDownloads(id string) error {
	if !store.ValidID(id) {
		return apperr.NotFound("model %s does not exist", id)
	}
	tx := s.db.Model(&models.AIModelModel{}).Where("id = ?", id).
		UpdateColumn("downloads", gorm.Expr("downloads + 1"))
	if tx.Error != nil {
		return apperr.Transient(tx.Error, "increment downloads")
	}
	if tx.RowsAffected == 0 {
		return apperr.NotFound("model %s does not exist", id)
	}
	return nil
}
