// Package store provides generic persistence operations over a gorm-backed
// table. Services layer entity-specific invariants on top of it.
package store

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ListQuery describes a paginated find.
type ListQuery struct {
	// Filter maps column names to required values. Nil values are skipped.
	Filter map[string]interface{}
	// Sort is an ORDER BY clause, e.g. "created_at DESC".
	Sort string
	Page int
	Size int
}

// Store wraps CRUD operations for one entity type.
type Store[T any] struct {
	db *gorm.DB
}

func New[T any](db *gorm.DB) *Store[T] {
	return &Store[T]{db: db}
}

// DB exposes the underlying handle for transactional work.
func (s *Store[T]) DB() *gorm.DB { return s.db }

// Insert persists a new entity. The entity's ID is populated on return.
func (s *Store[T]) Insert(entity *T) error {
	return s.db.Create(entity).Error
}

// FindByID returns the entity with the given id, or (nil, nil) when the id is
// missing or not a well-formed identifier.
func (s *Store[T]) FindByID(id string) (*T, error) {
	if !ValidID(id) {
		return nil, nil
	}
	var entity T
	if err := s.db.First(&entity, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &entity, nil
}

// FindByKey returns the entity whose column equals value, or (nil, nil).
func (s *Store[T]) FindByKey(column, value string) (*T, error) {
	var entity T
	if err := s.db.Where(column+" = ?", value).First(&entity).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &entity, nil
}

// UpdateByID applies a partial field update. Returns false when no row matched.
func (s *Store[T]) UpdateByID(id string, fields map[string]interface{}) (bool, error) {
	if !ValidID(id) {
		return false, nil
	}
	var entity T
	tx := s.db.Model(&entity).Where("id = ?", id).Updates(fields)
	if tx.Error != nil {
		return false, tx.Error
	}
	return tx.RowsAffected > 0, nil
}

// DeleteByID removes the entity. Returns false when no row matched. The
// delete is hard; references left on other entities are not cleaned up.
func (s *Store[T]) DeleteByID(id string) (bool, error) {
	if !ValidID(id) {
		return false, nil
	}
	var entity T
	tx := s.db.Delete(&entity, "id = ?", id)
	if tx.Error != nil {
		return false, tx.Error
	}
	return tx.RowsAffected > 0, nil
}

// Find runs an offset-paginated query and returns the matching page together
// with the total match count and page count.
func (s *Store[T]) Find(q ListQuery) ([]T, int64, int, error) {
	if q.Page < 1 {
		q.Page = 1
	}
	if q.Size < 1 {
		q.Size = 10
	}

	var entity T
	tx := s.db.Model(&entity)
	for col, val := range q.Filter {
		if val == nil {
			continue
		}
		tx = tx.Where(col+" = ?", val)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return nil, 0, 0, err
	}

	if q.Sort != "" {
		tx = tx.Order(q.Sort)
	}

	var items []T
	offset := (q.Page - 1) * q.Size
	if err := tx.Offset(offset).Limit(q.Size).Find(&items).Error; err != nil {
		return nil, 0, 0, err
	}

	totalPages := int((total + int64(q.Size) - 1) / int64(q.Size))
	return items, total, totalPages, nil
}

// ValidID reports whether id is a well-formed entity identifier. Malformed
// ids are treated as lookup misses rather than errors.
func ValidID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}
