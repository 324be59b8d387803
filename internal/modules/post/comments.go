package post

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

// AddComment appends a comment to a post's flat comment list. The count and
// the list commit in the same row write, so they cannot drift.
func (s *Service) AddComment(postID, actorID string, dto *AddCommentDTO) (*models.Comment, error) {
	if err := validate.Struct(dto); err != nil {
		return nil, err
	}
	if !store.ValidID(postID) {
		return nil, apperr.NotFound("post %s does not exist", postID)
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
		var p models.PostModel
		if err := tx.First(&p, "id = ?", postID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperr.NotFound("post %s does not exist", postID)
			}
			return err
		}

		if dto.ParentID != "" && !hasComment(p.Comments, dto.ParentID) {
			return apperr.Validation("parent comment %s not found on post", dto.ParentID)
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
		p.Comments = append(p.Comments, c)
		p.CommentsCount = len(p.Comments)
		created = &c

		// field-list struct update so the comment list goes through the
		// JSON serializer, in the same row write as the count
		return tx.Model(&p).Select("Comments", "CommentsCount").Updates(&p).Error
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

// DeleteComment removes a comment. Only the comment author or the post author
// may delete; replies referencing the removed comment keep their parent id.
func (s *Service) DeleteComment(postID, commentID, actorID string) (bool, error) {
	if !store.ValidID(postID) {
		return false, nil
	}

	removed := false
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var p models.PostModel
		if err := tx.First(&p, "id = ?", postID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errPostMissing
			}
			return err
		}

		kept := make([]models.Comment, 0, len(p.Comments))
		for _, c := range p.Comments {
			if c.ID == commentID {
				if c.AuthorID != actorID && p.AuthorID != actorID {
					return apperr.Validation("not allowed to delete this comment")
				}
				removed = true
				continue
			}
			kept = append(kept, c)
		}
		if !removed {
			return nil
		}
		p.Comments = kept
		p.CommentsCount = len(kept)
		return tx.Model(&p).Select("Comments", "CommentsCount").Updates(&p).Error
	})
	if errors.Is(err, errPostMissing) {
		return false, nil
	}
	if err != nil {
		if apperr.IsValidation(err) {
			return false, err
		}
		return false, apperr.Transient(err, "delete comment")
	}
	return removed, nil
}

func hasComment(comments []models.Comment, id string) bool {
	for _, c := range comments {
		if c.ID == id {
			return true
		}
	}
	return false
}
