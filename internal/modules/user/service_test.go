package user

import (
	"fmt"
	"testing"

	"github.com/modelmart/core/internal/models"
	"github.com/modelmart/core/internal/pkg/apperr"
	"github.com/modelmart/core/internal/pkg/dbtest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func seedUser(t *testing.T, svc *Service, username string) *models.UserModel {
	t.Helper()
	u, err := svc.Create(&CreateUserDTO{
		Username: username,
		Email:    fmt.Sprintf("%s@example.com", username),
		Password: "correct-horse",
	})
	require.NoError(t, err)
	return u
}

func newService(t *testing.T) (*Service, *gorm.DB) {
	db := dbtest.New(t)
	return NewService(db), db
}

func TestCreateUser(t *testing.T) {
	svc, _ := newService(t)

	u := seedUser(t, svc, "alice")
	assert.NotEmpty(t, u.ID)
	assert.Equal(t, "alice", u.DisplayName) // defaults to username
	assert.Equal(t, models.RoleUser, u.Role)
	assert.Empty(t, u.Followers)
	assert.Empty(t, u.Following)
	assert.NotEqual(t, "correct-horse", u.Password) // stored hashed
	assert.False(t, u.ProfileCompleted)
}

func TestCreateUserUniqueness(t *testing.T) {
	svc, _ := newService(t)
	seedUser(t, svc, "alice")

	_, err := svc.Create(&CreateUserDTO{
		Username: "Alice", // case-insensitive clash
		Email:    "other@example.com",
		Password: "correct-horse",
	})
	assert.True(t, apperr.IsConflict(err))

	_, err = svc.Create(&CreateUserDTO{
		Username: "bob",
		Email:    "ALICE@example.com",
		Password: "correct-horse",
	})
	assert.True(t, apperr.IsConflict(err))
}

func TestCreateUserValidation(t *testing.T) {
	svc, _ := newService(t)

	_, err := svc.Create(&CreateUserDTO{Username: "x", Email: "bad", Password: "short"})
	assert.True(t, apperr.IsValidation(err))
}

func TestUpdateProfileCompletion(t *testing.T) {
	svc, _ := newService(t)
	u := seedUser(t, svc, "alice")
	require.False(t, u.ProfileCompleted)

	bio := "ML engineer"
	avatar := "https://cdn.example.com/a.png"
	name := "Alice L"
	updated, err := svc.Update(u.ID, &UpdateUserDTO{DisplayName: &name, Bio: &bio, Avatar: &avatar})
	require.NoError(t, err)
	assert.True(t, updated.ProfileCompleted)

	// clearing a field flips the flag back
	empty := ""
	updated, err = svc.Update(u.ID, &UpdateUserDTO{Bio: &empty})
	require.NoError(t, err)
	assert.False(t, updated.ProfileCompleted)
}

func TestUpdateUsernameConflict(t *testing.T) {
	svc, _ := newService(t)
	seedUser(t, svc, "alice")
	bob := seedUser(t, svc, "bob")

	taken := "alice"
	_, err := svc.Update(bob.ID, &UpdateUserDTO{Username: &taken})
	assert.True(t, apperr.IsConflict(err))
}

func TestUpdateMissingUser(t *testing.T) {
	svc, _ := newService(t)

	name := "ghost"
	u, err := svc.Update("2e9b0c7e-0000-4a5b-9c3d-2e4f5a6b7c8d", &UpdateUserDTO{DisplayName: &name})
	require.NoError(t, err)
	assert.Nil(t, u)
}

func TestDeleteUser(t *testing.T) {
	svc, _ := newService(t)
	u := seedUser(t, svc, "alice")

	ok, err := svc.Delete(u.ID)
	require.NoError(t, err)
	assert.True(t, ok)

	got, err := svc.GetByID(u.ID)
	require.NoError(t, err)
	assert.Nil(t, got)

	ok, err = svc.Delete(u.ID)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestLogin(t *testing.T) {
	svc, _ := newService(t)
	seedUser(t, svc, "alice")

	token, u, err := svc.Login(&LoginDTO{Username: "alice", Password: "correct-horse"})
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, "alice", u.Username)

	_, _, err = svc.Login(&LoginDTO{Username: "alice", Password: "wrong"})
	assert.True(t, apperr.IsValidation(err))

	_, _, err = svc.Login(&LoginDTO{Username: "nobody", Password: "whatever"})
	assert.True(t, apperr.IsNotFound(err))
}

func TestLoginCaseInsensitive(t *testing.T) {
	svc, _ := newService(t)
	seedUser(t, svc, "alice")

	// usernames are unique case-insensitively, so the login lookup folds too
	token, u, err := svc.Login(&LoginDTO{Username: "Alice", Password: "correct-horse"})
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, "alice", u.Username)

	got, err := svc.GetByUsername("ALICE")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, u.ID, got.ID)
}

func TestUpdatePreferences(t *testing.T) {
	svc, _ := newService(t)
	u := seedUser(t, svc, "alice")

	prefs := &models.UserPreferences{Theme: "dark", EmailNotifications: true}
	_, err := svc.Update(u.ID, &UpdateUserDTO{Preferences: prefs})
	require.NoError(t, err)

	// reload to prove the preferences survived the round trip
	got, err := svc.GetByID(u.ID)
	require.NoError(t, err)
	require.NotNil(t, got.Preferences)
	assert.Equal(t, "dark", got.Preferences.Theme)
	assert.True(t, got.Preferences.EmailNotifications)
}

func TestSavedPosts(t *testing.T) {
	svc, _ := newService(t)
	u := seedUser(t, svc, "alice")
	postID := "5b1c2d3e-1234-4a5b-9c3d-2e4f5a6b7c8d"

	ok, err := svc.SavePost(u.ID, postID)
	require.NoError(t, err)
	assert.True(t, ok)

	// saving twice keeps a single entry
	ok, err = svc.SavePost(u.ID, postID)
	require.NoError(t, err)
	assert.True(t, ok)

	got, err := svc.GetByID(u.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StringArray{postID}, got.SavedPosts)

	ok, err = svc.UnsavePost(u.ID, postID)
	require.NoError(t, err)
	assert.True(t, ok)

	got, err = svc.GetByID(u.ID)
	require.NoError(t, err)
	assert.Empty(t, got.SavedPosts)

	ok, err = svc.SavePost("9f8e7d6c-0000-4a5b-9c3d-2e4f5a6b7c8d", postID)
	require.NoError(t, err)
	assert.False(t, ok)
}
