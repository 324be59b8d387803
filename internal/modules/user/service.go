package user

import (
	"errors"
	"time"

	"github.com/modelmart/core/internal/models"
	"github.com/modelmart/core/internal/pkg/apperr"
	"github.com/modelmart/core/internal/pkg/jwt"
	"github.com/modelmart/core/internal/pkg/store"
	"github.com/modelmart/core/internal/pkg/validate"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const sessionTTL = 7 * 24 * time.Hour

// Service handles account business logic and the follow graph.
type Service struct {
	db    *gorm.DB
	users *store.Store[models.UserModel]
}

func NewService(db *gorm.DB) *Service {
	return &Service{db: db, users: store.New[models.UserModel](db)}
}

// Create registers a new account. Username and email are unique
// case-insensitively; duplicates yield a Conflict error.
func (s *Service) Create(dto *CreateUserDTO) (*models.UserModel, error) {
	if err := validate.Struct(dto); err != nil {
		return nil, err
	}
	if taken, err := s.keyTaken("username", dto.Username, ""); err != nil {
		return nil, err
	} else if taken {
		return nil, apperr.Conflict("username %q is already taken", dto.Username)
	}
	if taken, err := s.keyTaken("email", dto.Email, ""); err != nil {
		return nil, err
	} else if taken {
		return nil, apperr.Conflict("email %q is already registered", dto.Email)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(dto.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	displayName := dto.DisplayName
	if displayName == "" {
		displayName = dto.Username
	}
	u := models.UserModel{
		Username:    dto.Username,
		Email:       dto.Email,
		Password:    string(hash),
		DisplayName: displayName,
		Bio:         dto.Bio,
		Avatar:      dto.Avatar,
		Role:        models.RoleUser,
		Followers:   []models.FollowEdge{},
		Following:   []models.FollowEdge{},
		SavedPosts:  models.StringArray{},
	}
	u.ProfileCompleted = profileCompleted(&u)
	if err := s.users.Insert(&u); err != nil {
		return nil, apperr.Transient(err, "create user")
	}
	return &u, nil
}

// GetByID returns the user, or (nil, nil) when missing.
func (s *Service) GetByID(id string) (*models.UserModel, error) {
	return s.users.FindByID(id)
}

// GetByUsername looks a user up by username, matching with the same case
// folding the uniqueness check uses.
func (s *Service) GetByUsername(username string) (*models.UserModel, error) {
	return s.findByUsername(username)
}

// List returns a paginated slice of users.
func (s *Service) List(page, size int) ([]models.UserModel, int64, int, error) {
	return s.users.Find(store.ListQuery{Sort: "created_at DESC", Page: page, Size: size})
}

// Update patches profile fields. The profile-completion flag is recomputed
// after the patch.
func (s *Service) Update(id string, dto *UpdateUserDTO) (*models.UserModel, error) {
	if err := validate.Struct(dto); err != nil {
		return nil, err
	}
	u, err := s.users.FindByID(id)
	if err != nil || u == nil {
		return u, err
	}

	var fields []string
	if dto.Username != nil && *dto.Username != u.Username {
		if taken, err := s.keyTaken("username", *dto.Username, id); err != nil {
			return nil, err
		} else if taken {
			return nil, apperr.Conflict("username %q is already taken", *dto.Username)
		}
		u.Username = *dto.Username
		fields = append(fields, "Username")
	}
	if dto.Email != nil && *dto.Email != u.Email {
		if taken, err := s.keyTaken("email", *dto.Email, id); err != nil {
			return nil, err
		} else if taken {
			return nil, apperr.Conflict("email %q is already registered", *dto.Email)
		}
		u.Email = *dto.Email
		fields = append(fields, "Email")
	}
	if dto.DisplayName != nil {
		u.DisplayName = *dto.DisplayName
		fields = append(fields, "DisplayName")
	}
	if dto.Bio != nil {
		u.Bio = *dto.Bio
		fields = append(fields, "Bio")
	}
	if dto.Avatar != nil {
		u.Avatar = *dto.Avatar
		fields = append(fields, "Avatar")
	}
	if dto.Preferences != nil {
		u.Preferences = dto.Preferences
		fields = append(fields, "Preferences")
	}

	completed := profileCompleted(u)
	if completed != u.ProfileCompleted {
		u.ProfileCompleted = completed
		fields = append(fields, "ProfileCompleted")
	}
	if len(fields) == 0 {
		return u, nil
	}
	// field-list struct update so preferences go through the JSON serializer
	if err := s.db.Model(u).Select(fields).Updates(u).Error; err != nil {
		return nil, apperr.Transient(err, "update user")
	}
	return u, nil
}

// Delete hard-deletes the account. Edges and likes it left on other entities
// are not cleaned up.
func (s *Service) Delete(id string) (bool, error) {
	ok, err := s.users.DeleteByID(id)
	if err != nil {
		return false, apperr.Transient(err, "delete user")
	}
	return ok, nil
}

// Login verifies credentials and issues a signed token.
func (s *Service) Login(dto *LoginDTO) (string, *models.UserModel, error) {
	if err := validate.Struct(dto); err != nil {
		return "", nil, err
	}
	u, err := s.findByUsername(dto.Username)
	if err != nil {
		return "", nil, apperr.Transient(err, "login lookup")
	}
	if u == nil {
		return "", nil, apperr.NotFound("unknown user %q", dto.Username)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(dto.Password)); err != nil {
		return "", nil, apperr.Validation("wrong password")
	}
	token, err := jwt.Sign(u.ID, sessionTTL)
	return token, u, err
}

// SavePost adds a post id to the user's saved set. Returns false when the
// user is missing.
func (s *Service) SavePost(userID, postID string) (bool, error) {
	return s.toggleSaved(userID, postID, true)
}

// UnsavePost removes a post id from the saved set.
func (s *Service) UnsavePost(userID, postID string) (bool, error) {
	return s.toggleSaved(userID, postID, false)
}

func (s *Service) toggleSaved(userID, postID string, save bool) (bool, error) {
	u, err := s.users.FindByID(userID)
	if err != nil {
		return false, apperr.Transient(err, "load user")
	}
	if u == nil {
		return false, nil
	}

	saved := u.SavedPosts
	switch {
	case save && !saved.Contains(postID):
		saved = append(saved, postID)
	case !save && saved.Contains(postID):
		saved = saved.Without(postID)
	default:
		return true, nil
	}
	u.SavedPosts = saved
	if err := s.db.Model(u).Select("SavedPosts").Updates(u).Error; err != nil {
		return false, apperr.Transient(err, "save post")
	}
	return true, nil
}

func (s *Service) findByUsername(username string) (*models.UserModel, error) {
	var u models.UserModel
	err := s.db.Where("LOWER(username) = LOWER(?)", username).First(&u).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (s *Service) keyTaken(column, value, excludeID string) (bool, error) {
	var count int64
	tx := s.db.Model(&models.UserModel{}).Where("LOWER("+column+") = LOWER(?)", value)
	if excludeID != "" {
		tx = tx.Where("id <> ?", excludeID)
	}
	if err := tx.Count(&count).Error; err != nil {
		return false, apperr.Transient(err, "uniqueness check")
	}
	return count > 0, nil
}

// profileCompleted is true once display name, bio and avatar are all set.
func profileCompleted(u *models.UserModel) bool {
	return u.DisplayName != "" && u.Bio != "" && u.Avatar != ""
}
