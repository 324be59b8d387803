package post

import (
	"fmt"
	"testing"

	"github.com/modelmart/core/internal/models"
	"github.com/modelmart/core/internal/pkg/apperr"
	"github.com/modelmart/core/internal/pkg/dbtest"
	"github.com/modelmart/core/internal/pkg/pagination"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func seedAuthor(t *testing.T, db *gorm.DB, username string) *models.UserModel {
	t.Helper()
	u := models.UserModel{
		Username:    username,
		Email:       fmt.Sprintf("%s@example.com", username),
		Password:    "x",
		DisplayName: username,
		Role:        models.RoleUser,
	}
	require.NoError(t, db.Create(&u).Error)
	return &u
}

func TestCreatePost(t *testing.T) {
	db := dbtest.New(t)
	svc := NewService(db)
	alice := seedAuthor(t, db, "alice")

	p, err := svc.Create(alice.ID, &CreatePostDTO{
		Content: "shipping a new classifier today",
		Tags:    models.StringArray{"ml"},
	})
	require.NoError(t, err)
	assert.NotEmpty(t, p.ID)
	assert.Equal(t, alice.ID, p.AuthorID)
	assert.Equal(t, "alice", p.AuthorName)
	assert.Equal(t, models.VisibilityPublic, p.Visibility)
	assert.Zero(t, p.Likes)
	assert.Zero(t, p.CommentsCount)
}

func TestCreatePostUnknownAuthor(t *testing.T) {
	db := dbtest.New(t)
	svc := NewService(db)

	_, err := svc.Create("7a1b2c3d-0000-4a5b-9c3d-2e4f5a6b7c8d", &CreatePostDTO{Content: "hi"})
	assert.True(t, apperr.IsNotFound(err))
}

func TestRepost(t *testing.T) {
	db := dbtest.New(t)
	svc := NewService(db)
	alice := seedAuthor(t, db, "alice")
	bob := seedAuthor(t, db, "bob")

	original, err := svc.Create(alice.ID, &CreatePostDTO{Content: "original thoughts"})
	require.NoError(t, err)

	repost, err := svc.Create(bob.ID, &CreatePostDTO{OriginalPostID: original.ID})
	require.NoError(t, err)
	assert.True(t, repost.IsRepost)
	assert.Equal(t, original.ID, repost.OriginalPostID)
	assert.Equal(t, alice.ID, repost.OriginalUserID)
	assert.Equal(t, "alice", repost.OriginalUser)
	assert.Equal(t, "original thoughts", repost.Content) // inherits original content

	_, err = svc.Create(bob.ID, &CreatePostDTO{OriginalPostID: "3c4d5e6f-0000-4a5b-9c3d-2e4f5a6b7c8d"})
	assert.True(t, apperr.IsNotFound(err))
}

func TestUpdatePostAuthorOnly(t *testing.T) {
	db := dbtest.New(t)
	svc := NewService(db)
	alice := seedAuthor(t, db, "alice")
	bob := seedAuthor(t, db, "bob")

	p, err := svc.Create(alice.ID, &CreatePostDTO{Content: "draft"})
	require.NoError(t, err)

	content := "edited"
	_, err = svc.Update(p.ID, bob.ID, &UpdatePostDTO{Content: &content})
	assert.True(t, apperr.IsValidation(err))

	updated, err := svc.Update(p.ID, alice.ID, &UpdatePostDTO{Content: &content})
	require.NoError(t, err)
	assert.Equal(t, "edited", updated.Content)
}

func TestUpdatePostMedia(t *testing.T) {
	db := dbtest.New(t)
	svc := NewService(db)
	alice := seedAuthor(t, db, "alice")

	p, err := svc.Create(alice.ID, &CreatePostDTO{Content: "photo dump"})
	require.NoError(t, err)

	media := []models.MediaItem{
		{URL: "https://cdn.example.com/1.png", Type: "image", Width: 800, Height: 600},
		{URL: "https://cdn.example.com/2.mp4", Type: "video"},
	}
	_, err = svc.Update(p.ID, alice.ID, &UpdatePostDTO{Media: media})
	require.NoError(t, err)

	// reload to prove the media list survived the round trip
	got, err := svc.GetByID(p.ID)
	require.NoError(t, err)
	require.Len(t, got.Media, 2)
	assert.Equal(t, "https://cdn.example.com/1.png", got.Media[0].URL)
	assert.Equal(t, 800, got.Media[0].Width)
	assert.Equal(t, "video", got.Media[1].Type)
}

func TestLikeIdempotent(t *testing.T) {
	db := dbtest.New(t)
	svc := NewService(db)
	alice := seedAuthor(t, db, "alice")
	bob := seedAuthor(t, db, "bob")

	p, err := svc.Create(alice.ID, &CreatePostDTO{Content: "like me"})
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		ok, err := svc.ToggleLike(p.ID, bob.ID, true)
		require.NoError(t, err)
		require.True(t, ok)
	}

	got, err := svc.GetByID(p.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, got.Likes)
	assert.Equal(t, models.StringArray{bob.ID}, got.LikedBy)

	ok, err := svc.ToggleLike(p.ID, bob.ID, false)
	require.NoError(t, err)
	require.True(t, ok)

	got, _ = svc.GetByID(p.ID)
	assert.Zero(t, got.Likes)
	assert.Empty(t, got.LikedBy)

	// unliking again stays at zero
	_, err = svc.ToggleLike(p.ID, bob.ID, false)
	require.NoError(t, err)
	got, _ = svc.GetByID(p.ID)
	assert.Zero(t, got.Likes)
}

func TestLikeMissingPost(t *testing.T) {
	db := dbtest.New(t)
	svc := NewService(db)

	ok, err := svc.ToggleLike("6d7e8f90-0000-4a5b-9c3d-2e4f5a6b7c8d", "someone", true)
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = svc.ToggleLike("garbage", "someone", true)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestComments(t *testing.T) {
	db := dbtest.New(t)
	svc := NewService(db)
	alice := seedAuthor(t, db, "alice")
	bob := seedAuthor(t, db, "bob")

	p, err := svc.Create(alice.ID, &CreatePostDTO{Content: "discuss"})
	require.NoError(t, err)

	c1, err := svc.AddComment(p.ID, bob.ID, &AddCommentDTO{Content: "first"})
	require.NoError(t, err)
	assert.Equal(t, bob.ID, c1.AuthorID)

	// reply to an existing comment
	c2, err := svc.AddComment(p.ID, alice.ID, &AddCommentDTO{Content: "reply", ParentID: c1.ID})
	require.NoError(t, err)
	assert.Equal(t, c1.ID, c2.ParentID)

	// reply to a missing comment is rejected
	_, err = svc.AddComment(p.ID, alice.ID, &AddCommentDTO{Content: "orphan", ParentID: "nope"})
	assert.True(t, apperr.IsValidation(err))

	got, err := svc.GetByID(p.ID)
	require.NoError(t, err)
	assert.Len(t, got.Comments, 2)
	assert.Equal(t, 2, got.CommentsCount)
}

func TestDeleteComment(t *testing.T) {
	db := dbtest.New(t)
	svc := NewService(db)
	alice := seedAuthor(t, db, "alice")
	bob := seedAuthor(t, db, "bob")
	carol := seedAuthor(t, db, "carol")

	p, err := svc.Create(alice.ID, &CreatePostDTO{Content: "discuss"})
	require.NoError(t, err)
	c, err := svc.AddComment(p.ID, bob.ID, &AddCommentDTO{Content: "hot take"})
	require.NoError(t, err)

	// a bystander cannot delete
	_, err = svc.DeleteComment(p.ID, c.ID, carol.ID)
	assert.True(t, apperr.IsValidation(err))

	// the post author can
	removed, err := svc.DeleteComment(p.ID, c.ID, alice.ID)
	require.NoError(t, err)
	assert.True(t, removed)

	got, _ := svc.GetByID(p.ID)
	assert.Empty(t, got.Comments)
	assert.Zero(t, got.CommentsCount)

	// deleting again is a no-op
	removed, err = svc.DeleteComment(p.ID, c.ID, alice.ID)
	require.NoError(t, err)
	assert.False(t, removed)
}

func TestCommentLike(t *testing.T) {
	db := dbtest.New(t)
	svc := NewService(db)
	alice := seedAuthor(t, db, "alice")
	bob := seedAuthor(t, db, "bob")

	p, err := svc.Create(alice.ID, &CreatePostDTO{Content: "discuss"})
	require.NoError(t, err)
	c, err := svc.AddComment(p.ID, bob.ID, &AddCommentDTO{Content: "agree"})
	require.NoError(t, err)

	for i := 0; i < 2; i++ {
		found, err := svc.ToggleCommentLike(p.ID, c.ID, alice.ID, true)
		require.NoError(t, err)
		require.True(t, found)
	}

	got, _ := svc.GetByID(p.ID)
	require.Len(t, got.Comments, 1)
	assert.Equal(t, 1, got.Comments[0].Likes)

	found, err := svc.ToggleCommentLike(p.ID, "missing-comment", alice.ID, true)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestListFilters(t *testing.T) {
	db := dbtest.New(t)
	svc := NewService(db)
	alice := seedAuthor(t, db, "alice")
	bob := seedAuthor(t, db, "bob")

	_, err := svc.Create(alice.ID, &CreatePostDTO{Content: "a1", Tags: models.StringArray{"go"}})
	require.NoError(t, err)
	_, err = svc.Create(alice.ID, &CreatePostDTO{Content: "a2"})
	require.NoError(t, err)
	_, err = svc.Create(bob.ID, &CreatePostDTO{Content: "b1", Tags: models.StringArray{"go", "ml"}})
	require.NoError(t, err)

	posts, pag, err := svc.List(pagination.Query{}, ListQuery{AuthorID: &alice.ID})
	require.NoError(t, err)
	assert.Len(t, posts, 2)
	assert.EqualValues(t, 2, pag.Total)

	tag := "go"
	posts, _, err = svc.List(pagination.Query{}, ListQuery{Tag: &tag})
	require.NoError(t, err)
	assert.Len(t, posts, 2)
}
