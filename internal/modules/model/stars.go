package model

import (
	"errors"

	"github.com/modelmart/core/internal/models"
	"github.com/modelmart/core/internal/pkg/apperr"
	"github.com/modelmart/core/internal/pkg/store"
	"gorm.io/gorm"
)

// ToggleStar sets or clears actorID's star on a model. The counter derives
// from the starred-by set in the same write, so repeated calls in the same
// direction never over-count.
func (s *Service) ToggleStar(modelID, actorID string, star bool) (bool, error) {
	if !store.ValidID(modelID) || actorID == "" {
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

		starred := m.StarredBy.Contains(actorID)
		if star == starred {
			return nil
		}
		if star {
			m.StarredBy = append(m.StarredBy, actorID)
		} else {
			m.StarredBy = m.StarredBy.Without(actorID)
		}
		m.Stars = len(m.StarredBy)
		return tx.Model(&m).Select("Stars", "StarredBy").Updates(&m).Error
	})
	if errors.Is(err, errModelMissing) {
		return false, nil
	}
	if err != nil {
		return false, apperr.Transient(err, "toggle star")
	}
	return true, nil
}
