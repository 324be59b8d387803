package models

import "time"

// UserRole is the coarse permission level of an account.
type UserRole string

const (
	RoleUser      UserRole = "user"
	RoleAdmin     UserRole = "admin"
	RoleModerator UserRole = "moderator"
)

// FollowEdge is one side of a follow relationship. The name and avatar are
// snapshots of the other party taken when the edge was created.
type FollowEdge struct {
	UserID     string    `json:"user_id"`
	Username   string    `json:"username"`
	Avatar     string    `json:"avatar"`
	FollowedAt time.Time `json:"followed_at"`
}

// UserPreferences holds per-account display and notification settings.
type UserPreferences struct {
	Theme              string `json:"theme"`
	EmailNotifications bool   `json:"email_notifications"`
	PublicProfile      bool   `json:"public_profile"`
}

// UserModel represents a marketplace account.
type UserModel struct {
	Base
	Username         string           `json:"username"     gorm:"uniqueIndex;not null"`
	Email            string           `json:"email"        gorm:"uniqueIndex;not null"`
	Password         string           `json:"-"            gorm:"not null"`
	DisplayName      string           `json:"display_name"`
	Bio              string           `json:"bio"`
	Avatar           string           `json:"avatar"`
	Role             UserRole         `json:"role"         gorm:"default:user"`
	Followers        []FollowEdge     `json:"followers"    gorm:"type:json;serializer:json"`
	Following        []FollowEdge     `json:"following"    gorm:"type:json;serializer:json"`
	SavedPosts       StringArray      `json:"saved_posts"  gorm:"type:json;serializer:json"`
	Preferences      *UserPreferences `json:"preferences"  gorm:"type:json;serializer:json"`
	ProfileCompleted bool             `json:"profile_completed" gorm:"default:false"`
}

func (UserModel) TableName() string { return "users" }

// HasFollowing reports whether the user already follows targetID.
func (u *UserModel) HasFollowing(targetID string) bool {
	for _, e := range u.Following {
		if e.UserID == targetID {
			return true
		}
	}
	return false
}

// HasFollower reports whether userID already follows this user.
func (u *UserModel) HasFollower(userID string) bool {
	for _, e := range u.Followers {
		if e.UserID == userID {
			return true
		}
	}
	return false
}
