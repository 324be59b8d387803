package user

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFollowSymmetry(t *testing.T) {
	svc, _ := newService(t)
	alice := seedUser(t, svc, "alice")
	bob := seedUser(t, svc, "bob")

	ok, err := svc.Follow(alice.ID, bob.ID)
	require.NoError(t, err)
	require.True(t, ok)

	a, err := svc.GetByID(alice.ID)
	require.NoError(t, err)
	b, err := svc.GetByID(bob.ID)
	require.NoError(t, err)

	require.Len(t, a.Following, 1)
	assert.Equal(t, bob.ID, a.Following[0].UserID)
	assert.Equal(t, "bob", a.Following[0].Username)
	require.Len(t, b.Followers, 1)
	assert.Equal(t, alice.ID, b.Followers[0].UserID)
	assert.Empty(t, a.Followers)
	assert.Empty(t, b.Following)

	ok, err = svc.Unfollow(alice.ID, bob.ID)
	require.NoError(t, err)
	require.True(t, ok)

	a, _ = svc.GetByID(alice.ID)
	b, _ = svc.GetByID(bob.ID)
	assert.Empty(t, a.Following)
	assert.Empty(t, b.Followers)
}

func TestFollowIdempotent(t *testing.T) {
	svc, _ := newService(t)
	alice := seedUser(t, svc, "alice")
	bob := seedUser(t, svc, "bob")

	for i := 0; i < 2; i++ {
		ok, err := svc.Follow(alice.ID, bob.ID)
		require.NoError(t, err)
		require.True(t, ok)
	}

	a, _ := svc.GetByID(alice.ID)
	b, _ := svc.GetByID(bob.ID)
	assert.Len(t, a.Following, 1)
	assert.Len(t, b.Followers, 1)
}

func TestFollowSelf(t *testing.T) {
	svc, _ := newService(t)
	alice := seedUser(t, svc, "alice")

	ok, err := svc.Follow(alice.ID, alice.ID)
	require.NoError(t, err)
	assert.False(t, ok)

	a, _ := svc.GetByID(alice.ID)
	assert.Empty(t, a.Following)
	assert.Empty(t, a.Followers)
}

func TestFollowMissingUser(t *testing.T) {
	svc, _ := newService(t)
	alice := seedUser(t, svc, "alice")

	ok, err := svc.Follow(alice.ID, "4f0a1b2c-0000-4a5b-9c3d-2e4f5a6b7c8d")
	require.NoError(t, err)
	assert.False(t, ok)

	// malformed id behaves like a missing user
	ok, err = svc.Follow(alice.ID, "not-a-uuid")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestUnfollowWithoutEdge(t *testing.T) {
	svc, _ := newService(t)
	alice := seedUser(t, svc, "alice")
	bob := seedUser(t, svc, "bob")

	ok, err := svc.Unfollow(alice.ID, bob.ID)
	require.NoError(t, err)
	assert.True(t, ok)

	a, _ := svc.GetByID(alice.ID)
	assert.Empty(t, a.Following)
}

func TestFollowBothDirections(t *testing.T) {
	svc, _ := newService(t)
	alice := seedUser(t, svc, "alice")
	bob := seedUser(t, svc, "bob")

	_, err := svc.Follow(alice.ID, bob.ID)
	require.NoError(t, err)
	_, err = svc.Follow(bob.ID, alice.ID)
	require.NoError(t, err)

	a, _ := svc.GetByID(alice.ID)
	b, _ := svc.GetByID(bob.ID)
	assert.Len(t, a.Following, 1)
	assert.Len(t, a.Followers, 1)
	assert.Len(t, b.Following, 1)
	assert.Len(t, b.Followers, 1)

	// dropping one direction leaves the other intact
	_, err = svc.Unfollow(alice.ID, bob.ID)
	require.NoError(t, err)

	a, _ = svc.GetByID(alice.ID)
	b, _ = svc.GetByID(bob.ID)
	assert.Empty(t, a.Following)
	assert.Len(t, a.Followers, 1)
	assert.Len(t, b.Following, 1)
	assert.Empty(t, b.Followers)
}
