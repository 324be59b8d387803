package model

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/modelmart/core/internal/models"
	"github.com/modelmart/core/internal/modules/aggregate"
	"github.com/modelmart/core/internal/pkg/apperr"
	"github.com/modelmart/core/internal/pkg/store"
	"github.com/modelmart/core/internal/pkg/validate"
	"gorm.io/gorm"
)

var errModelMissing = errors.New("model does not exist")

// AddOrUpdateReview upserts the author's review on a model. An author holds
// at most one review per model; a second call replaces rating and comment.
// The average rating is recomputed over the full list and persisted in the
// same row write as the review change.
func (s *Service) AddOrUpdateReview(modelID, authorID string, dto *ReviewDTO) (*models.ModelReview, error) {
	if err := validate.Struct(dto); err != nil {
		return nil, err
	}
	if dto.Rating < 1 || dto.Rating > 5 {
		return nil, apperr.Validation("rating must be between 1 and 5")
	}
	if !store.ValidID(modelID) {
		return nil, apperr.NotFound("model %s does not exist", modelID)
	}

	var result *models.ModelReview
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var m models.AIModelModel
		if err := tx.First(&m, "id = ?", modelID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errModelMissing
			}
			return err
		}

		now := time.Now()
		updated := false
		for i := range m.Reviews {
			if m.Reviews[i].AuthorID == authorID {
				m.Reviews[i].Rating = dto.Rating
				m.Reviews[i].Comment = dto.Comment
				m.Reviews[i].UpdatedAt = now
				result = &m.Reviews[i]
				updated = true
				break
			}
		}
		if !updated {
			review := models.ModelReview{
				ID:        uuid.New().String(),
				AuthorID:  authorID,
				Rating:    dto.Rating,
				Comment:   dto.Comment,
				CreatedAt: now,
				UpdatedAt: now,
			}
			m.Reviews = append(m.Reviews, review)
			result = &m.Reviews[len(m.Reviews)-1]
		}

		// field-list struct update runs the JSON serializer on the review
		// list; the recomputed average lands in the same row write
		m.AverageRating = aggregate.AverageRating(m.Reviews)
		return tx.Model(&m).Select("Reviews", "AverageRating").Updates(&m).Error
	})
	if errors.Is(err, errModelMissing) {
		return nil, apperr.NotFound("model %s does not exist", modelID)
	}
	if err != nil {
		return nil, apperr.Transient(err, "upsert review")
	}
	return result, nil
}

// DeleteReview removes the author's review and recomputes the average.
// Removing a review that does not exist is a no-op success.
func (s *Service) DeleteReview(modelID, authorID string) (bool, error) {
	if !store.ValidID(modelID) {
		return false, nil
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		var m models.AIModelModel
		if err := tx.First(&m, "id = ?", modelID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errModelMissing
			}
			return err
		}

		kept := make([]models.ModelReview, 0, len(m.Reviews))
		removed := false
		for _, r := range m.Reviews {
			if r.AuthorID == authorID {
				removed = true
				continue
			}
			kept = append(kept, r)
		}
		if !removed {
			return nil
		}
		m.Reviews = kept
		m.AverageRating = aggregate.AverageRating(kept)
		return tx.Model(&m).Select("Reviews", "AverageRating").Updates(&m).Error
	})
	if errors.Is(err, errModelMissing) {
		return false, nil
	}
	if err != nil {
		return false, apperr.Transient(err, "delete review")
	}
	return true, nil
}
