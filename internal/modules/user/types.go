package user

import "github.com/modelmart/core/internal/models"

// CreateUserDTO is the input for account creation.
type CreateUserDTO struct {
	Username    string `json:"username"     validate:"required,min=3,max=32"`
	Email       string `json:"email"        validate:"required,email"`
	Password    string `json:"password"     validate:"required,min=8"`
	DisplayName string `json:"display_name" validate:"max=64"`
	Bio         string `json:"bio"          validate:"max=512"`
	Avatar      string `json:"avatar"`
}

// UpdateUserDTO is a partial profile update. System-owned fields (id,
// counters, creation time, password hash) are not settable through it.
type UpdateUserDTO struct {
	Username    *string                 `json:"username"     validate:"omitempty,min=3,max=32"`
	Email       *string                 `json:"email"        validate:"omitempty,email"`
	DisplayName *string                 `json:"display_name" validate:"omitempty,max=64"`
	Bio         *string                 `json:"bio"          validate:"omitempty,max=512"`
	Avatar      *string                 `json:"avatar"`
	Preferences *models.UserPreferences `json:"preferences"`
}

// LoginDTO is the credential payload for session issuance.
type LoginDTO struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}
