package post

import (
	"fmt"

	"github.com/modelmart/core/internal/models"
	"github.com/modelmart/core/internal/pkg/apperr"
	"github.com/modelmart/core/internal/pkg/pagination"
	"github.com/modelmart/core/internal/pkg/redis"
	"github.com/modelmart/core/internal/pkg/response"
	"github.com/modelmart/core/internal/pkg/store"
	"github.com/modelmart/core/internal/pkg/validate"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Service handles feed post business logic.
type Service struct {
	db     *gorm.DB
	posts  *store.Store[models.PostModel]
	users  *store.Store[models.UserModel]
	cache  *redis.Client
	logger *zap.Logger
}

func NewService(db *gorm.DB, opts ...ServiceOption) *Service {
	s := &Service{
		db:     db,
		posts:  store.New[models.PostModel](db),
		users:  store.New[models.UserModel](db),
		logger: zap.NewNop(),
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

// ServiceOption configures a post Service.
type ServiceOption func(*Service)

// WithCache enables Redis-backed trending caching.
func WithCache(c *redis.Client) ServiceOption {
	return func(s *Service) { s.cache = c }
}

// WithLogger sets the logger for the post service.
func WithLogger(l *zap.Logger) ServiceOption {
	return func(s *Service) {
		if l != nil {
			s.logger = l.Named("PostService")
		}
	}
}

// Create inserts a new post authored by actorID. The author's display fields
// are snapshotted onto the post at write time.
func (s *Service) Create(actorID string, dto *CreatePostDTO) (*models.PostModel, error) {
	if err := validate.Struct(dto); err != nil {
		return nil, err
	}
	author, err := s.users.FindByID(actorID)
	if err != nil {
		return nil, apperr.Transient(err, "load author")
	}
	if author == nil {
		return nil, apperr.NotFound("author %s does not exist", actorID)
	}

	p := models.PostModel{
		AuthorSnapshot: models.AuthorSnapshot{
			AuthorID:     author.ID,
			AuthorName:   author.Username,
			AuthorAvatar: author.Avatar,
		},
		Content:    dto.Content,
		Media:      dto.Media,
		Tags:       dto.Tags,
		Mentions:   dto.Mentions,
		Visibility: models.VisibilityPublic,
		LikedBy:    models.StringArray{},
		Comments:   []models.Comment{},
	}
	if dto.Visibility != "" {
		p.Visibility = dto.Visibility
	}

	if dto.OriginalPostID != "" {
		original, err := s.posts.FindByID(dto.OriginalPostID)
		if err != nil {
			return nil, apperr.Transient(err, "load original post")
		}
		if original == nil {
			return nil, apperr.NotFound("original post %s does not exist", dto.OriginalPostID)
		}
		p.IsRepost = true
		p.OriginalPostID = original.ID
		p.OriginalUserID = original.AuthorID
		p.OriginalUser = original.AuthorName
		if p.Content == "" {
			p.Content = original.Content
		}
	}

	if err := s.posts.Insert(&p); err != nil {
		return nil, apperr.Transient(err, "create post")
	}
	return &p, nil
}

// GetByID fetches a single post, (nil, nil) when missing.
func (s *Service) GetByID(id string) (*models.PostModel, error) {
	return s.posts.FindByID(id)
}

// List returns a paginated post page matching the filters.
func (s *Service) List(q pagination.Query, lq ListQuery) ([]models.PostModel, response.Pagination, error) {
	tx := s.db.Model(&models.PostModel{})

	if lq.AuthorID != nil {
		tx = tx.Where("author_id = ?", *lq.AuthorID)
	}
	if lq.Visibility != nil {
		tx = tx.Where("visibility = ?", *lq.Visibility)
	}
	if lq.Tag != nil {
		tx = tx.Where("tags LIKE ?", fmt.Sprintf("%%%q%%", *lq.Tag))
	}
	switch lq.Sort {
	case "popular":
		tx = tx.Order("likes DESC, created_at DESC")
	default:
		tx = tx.Order("created_at DESC")
	}

	var posts []models.PostModel
	pag, err := pagination.Paginate(tx, q, &posts)
	return posts, pag, err
}

// Update patches a post through the single mutation path. Only the actor who
// authored the post may change it.
func (s *Service) Update(id, actorID string, dto *UpdatePostDTO) (*models.PostModel, error) {
	if err := validate.Struct(dto); err != nil {
		return nil, err
	}
	p, err := s.posts.FindByID(id)
	if err != nil || p == nil {
		return p, err
	}
	if p.AuthorID != actorID {
		return nil, apperr.Validation("only the author can edit a post")
	}

	var fields []string
	if dto.Content != nil {
		p.Content = *dto.Content
		fields = append(fields, "Content")
	}
	if dto.Media != nil {
		p.Media = dto.Media
		fields = append(fields, "Media")
	}
	if dto.Tags != nil {
		p.Tags = dto.Tags
		fields = append(fields, "Tags")
	}
	if dto.Mentions != nil {
		p.Mentions = dto.Mentions
		fields = append(fields, "Mentions")
	}
	if dto.Visibility != nil {
		p.Visibility = *dto.Visibility
		fields = append(fields, "Visibility")
	}
	if len(fields) == 0 {
		return p, nil
	}
	// field-list struct update so the media list goes through the JSON serializer
	if err := s.db.Model(p).Select(fields).Updates(p).Error; err != nil {
		return nil, apperr.Transient(err, "update post")
	}
	return p, nil
}

// Delete hard-deletes a post by ID. Saved-post references on users are not
// cleaned up.
func (s *Service) Delete(id string) (bool, error) {
	ok, err := s.posts.DeleteByID(id)
	if err != nil {
		return false, apperr.Transient(err, "delete post")
	}
	return ok, nil
}
