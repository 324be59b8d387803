package model

import (
	"errors"
	"time"

	"github.com/modelmart/core/internal/models"
	"github.com/modelmart/core/internal/pkg/apperr"
	"github.com/modelmart/core/internal/pkg/store"
	"github.com/modelmart/core/internal/pkg/validate"
	"gorm.io/gorm"
)

// AddOrUpdateVersion appends a release to the model's version list, or
// replaces the release with the same version string in place.
func (s *Service) AddOrUpdateVersion(modelID string, dto *VersionDTO) (bool, error) {
	if err := validate.Struct(dto); err != nil {
		return false, err
	}
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

		release := models.ModelVersion{
			Version:     dto.Version,
			ReleaseDate: dto.ReleaseDate,
			Description: dto.Description,
			DownloadURL: dto.DownloadURL,
			SizeBytes:   dto.SizeBytes,
			Metrics:     dto.Metrics,
			Changelog:   dto.Changelog,
		}
		if release.ReleaseDate.IsZero() {
			release.ReleaseDate = time.Now()
		}

		replaced := false
		for i := range m.Versions {
			if m.Versions[i].Version == dto.Version {
				m.Versions[i] = release
				replaced = true
				break
			}
		}
		if !replaced {
			m.Versions = append(m.Versions, release)
		}
		return tx.Model(&m).Select("Versions").Updates(&m).Error
	})
	if errors.Is(err, errModelMissing) {
		return false, nil
	}
	if err != nil {
		return false, apperr.Transient(err, "upsert version")
	}
	return true, nil
}

// SetCurrentVersion moves the current-version pointer. It fails (false)
// when no release with that version string exists; the pointer is never
// satisfied by creating a placeholder release.
func (s *Service) SetCurrentVersion(modelID, version string) (bool, error) {
	if !store.ValidID(modelID) || version == "" {
		return false, nil
	}

	ok := false
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var m models.AIModelModel
		if err := tx.First(&m, "id = ?", modelID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errModelMissing
			}
			return err
		}
		if !m.HasVersion(version) {
			return nil
		}
		ok = true
		return tx.Model(&m).Update("current_version", version).Error
	})
	if errors.Is(err, errModelMissing) {
		return false, nil
	}
	if err != nil {
		return false, apperr.Transient(err, "set current version")
	}
	return ok, nil
}
