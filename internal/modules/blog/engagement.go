package blog

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/modelmart/core/internal/models"
	"github.com/modelmart/core/internal/pkg/apperr"
	"github.com/modelmart/core/internal/pkg/store"
	"github.com/modelmart/core/internal/pkg/validate"
	"gorm.io/gorm"
)

var errBlogMissing = errors.New("blog post does not exist")

// ToggleLike sets or clears actorID's like on an article. The counter derives
// from the liked-by set in the same write.
func (s *Service) ToggleLike(blogID, actorID string, like bool) (bool, error) {
	if !store.ValidID(blogID) || actorID == "" {
		return false, nil
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		var b models.BlogPostModel
		if err := tx.First(&b, "id = ?", blogID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errBlogMissing
			}
			return err
		}

		liked := b.LikedBy.Contains(actorID)
		if like == liked {
			return nil
		}
		if like {
			b.LikedBy = append(b.LikedBy, actorID)
		} else {
			b.LikedBy = b.LikedBy.Without(actorID)
		}
		b.Likes = len(b.LikedBy)
		return tx.Model(&b).Select("Likes", "LikedBy").Updates(&b).Error
	})
	if errors.Is(err, errBlogMissing) {
		return false, nil
	}
	if err != nil {
		return false, apperr.Transient(err, "toggle like")
	}
	return true, nil
}

// AddComment appends a comment to an article's flat comment list.
func (s *Service) AddComment(blogID, actorID string, dto *AddCommentDTO) (*models.Comment, error) {
	if err := validate.Struct(dto); err != nil {
		return nil, err
	}
	if !store.ValidID(blogID) {
		return nil, apperr.NotFound("blog post %s does not exist", blogID)
	}
	author, err := s.users.FindByID(actorID)
	if err != nil {
		return nil, apperr.Transient(err, "load author")
	}
	if author == nil {
		return nil, apperr.NotFound("author %s does not exist", actorID)
	}

	var created *models.Comment
	err = s.db.Transaction(func(tx *gorm.DB) error {
		var b models.BlogPostModel
		if err := tx.First(&b, "id = ?", blogID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperr.NotFound("blog post %s does not exist", blogID)
			}
			return err
		}

		now := time.Now()
		c := models.Comment{
			ID: uuid.New().String(),
			AuthorSnapshot: models.AuthorSnapshot{
				AuthorID:     author.ID,
				AuthorName:   author.Username,
				AuthorAvatar: author.Avatar,
			},
			Content:   dto.Content,
			LikedBy:   models.StringArray{},
			ParentID:  dto.ParentID,
			CreatedAt: now,
			UpdatedAt: now,
		}
		b.Comments = append(b.Comments, c)
		created = &c
		// field-list struct update so the comment list goes through the JSON serializer
		return tx.Model(&b).Select("Comments").Updates(&b).Error
	})
	if err != nil {
		var e *apperr.Error
		if errors.As(err, &e) {
			return nil, err
		}
		return nil, apperr.Transient(err, "add comment")
	}
	return created, nil
}
