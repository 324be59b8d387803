package user

import (
	"errors"
	"time"

	"github.com/modelmart/core/internal/models"
	"github.com/modelmart/core/internal/pkg/apperr"
	"github.com/modelmart/core/internal/pkg/store"
	"gorm.io/gorm"
)

var errEdgeUserMissing = errors.New("edge endpoint does not exist")

// Follow creates the actor->target follow edge on both sides. It returns
// false when the actor targets itself or either user does not exist, and true
// without further writes when the edge already exists on both sides.
//
// Both row writes run inside one transaction, and each side is only appended
// when absent, so a retried call after a partial failure restores the
// mirrored-projection invariant instead of duplicating edges.
func (s *Service) Follow(actorID, targetID string) (bool, error) {
	if actorID == targetID || !store.ValidID(actorID) || !store.ValidID(targetID) {
		return false, nil
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		actor, target, err := loadEdgePair(tx, actorID, targetID)
		if err != nil {
			return err
		}

		now := time.Now()
		changedActor := false
		if !actor.HasFollowing(targetID) {
			actor.Following = append(actor.Following, models.FollowEdge{
				UserID:     target.ID,
				Username:   target.Username,
				Avatar:     target.Avatar,
				FollowedAt: now,
			})
			changedActor = true
		}
		changedTarget := false
		if !target.HasFollower(actorID) {
			target.Followers = append(target.Followers, models.FollowEdge{
				UserID:     actor.ID,
				Username:   actor.Username,
				Avatar:     actor.Avatar,
				FollowedAt: now,
			})
			changedTarget = true
		}

		// struct updates with an explicit field list run the JSON serializer;
		// column-name updates would hand raw structs to the driver
		if changedActor {
			if err := tx.Model(actor).Select("Following").Updates(actor).Error; err != nil {
				return err
			}
		}
		if changedTarget {
			if err := tx.Model(target).Select("Followers").Updates(target).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if errors.Is(err, errEdgeUserMissing) {
		return false, nil
	}
	if err != nil {
		return false, apperr.Transient(err, "follow")
	}
	return true, nil
}

// Unfollow removes the actor->target edge from both sides. Removing an edge
// that does not exist is a no-op success.
func (s *Service) Unfollow(actorID, targetID string) (bool, error) {
	if actorID == targetID || !store.ValidID(actorID) || !store.ValidID(targetID) {
		return false, nil
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		actor, target, err := loadEdgePair(tx, actorID, targetID)
		if err != nil {
			return err
		}

		if filtered, changed := withoutEdge(actor.Following, targetID); changed {
			actor.Following = filtered
			if err := tx.Model(actor).Select("Following").Updates(actor).Error; err != nil {
				return err
			}
		}
		if filtered, changed := withoutEdge(target.Followers, actorID); changed {
			target.Followers = filtered
			if err := tx.Model(target).Select("Followers").Updates(target).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if errors.Is(err, errEdgeUserMissing) {
		return false, nil
	}
	if err != nil {
		return false, apperr.Transient(err, "unfollow")
	}
	return true, nil
}

func loadEdgePair(tx *gorm.DB, actorID, targetID string) (*models.UserModel, *models.UserModel, error) {
	var actor, target models.UserModel
	if err := tx.First(&actor, "id = ?", actorID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, errEdgeUserMissing
		}
		return nil, nil, err
	}
	if err := tx.First(&target, "id = ?", targetID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, errEdgeUserMissing
		}
		return nil, nil, err
	}
	return &actor, &target, nil
}

func withoutEdge(edges []models.FollowEdge, userID string) ([]models.FollowEdge, bool) {
	out := make([]models.FollowEdge, 0, len(edges))
	changed := false
	for _, e := range edges {
		if e.UserID == userID {
			changed = true
			continue
		}
		out = append(out, e)
	}
	return out, changed
}
