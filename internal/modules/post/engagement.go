package post

import (
	"errors"

	"github.com/modelmart/core/internal/models"
	"github.com/modelmart/core/internal/pkg/apperr"
	"github.com/modelmart/core/internal/pkg/store"
	"gorm.io/gorm"
)

var errPostMissing = errors.New("post does not exist")

// ToggleLike sets or clears actorID's like on a post. The counter is derived
// from the liked-by set inside the same write, so an actor's like is counted
// at most once no matter how often the same call is repeated.
func (s *Service) ToggleLike(postID, actorID string, like bool) (bool, error) {
	if !store.ValidID(postID) || actorID == "" {
		return false, nil
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		var p models.PostModel
		if err := tx.First(&p, "id = ?", postID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errPostMissing
			}
			return err
		}

		liked := p.LikedBy.Contains(actorID)
		if like == liked {
			return nil // repeated toggle in the same direction is a no-op
		}
		if like {
			p.LikedBy = append(p.LikedBy, actorID)
		} else {
			p.LikedBy = p.LikedBy.Without(actorID)
		}
		p.Likes = len(p.LikedBy)
		return tx.Model(&p).Select("Likes", "LikedBy").Updates(&p).Error
	})
	if errors.Is(err, errPostMissing) {
		return false, nil
	}
	if err != nil {
		return false, apperr.Transient(err, "toggle like")
	}
	return true, nil
}

// ToggleCommentLike is the like toggle scoped to one comment inside a post's
// comment list.
func (s *Service) ToggleCommentLike(postID, commentID, actorID string, like bool) (bool, error) {
	if !store.ValidID(postID) || actorID == "" {
		return false, nil
	}

	found := false
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var p models.PostModel
		if err := tx.First(&p, "id = ?", postID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errPostMissing
			}
			return err
		}

		changed := false
		for i := range p.Comments {
			c := &p.Comments[i]
			if c.ID != commentID {
				continue
			}
			found = true
			liked := c.LikedBy.Contains(actorID)
			if like == liked {
				return nil
			}
			if like {
				c.LikedBy = append(c.LikedBy, actorID)
			} else {
				c.LikedBy = c.LikedBy.Without(actorID)
			}
			c.Likes = len(c.LikedBy)
			changed = true
			break
		}
		if !changed {
			return nil
		}
		return tx.Model(&p).Select("Comments").Updates(&p).Error
	})
	if errors.Is(err, errPostMissing) {
		return false, nil
	}
	if err != nil {
		return false, apperr.Transient(err, "toggle comment like")
	}
	return found, nil
}
