package resolver

import (
	"testing"

	"github.com/SandeepaDilakshana/UniBond/utils"
	"github.com/stretchr/testify/require"
)

func TestFollowUnfollow(t *testing.T) {
	db, _ := utils.CreateTempDB(t)
	r := New(db)

	utils.TestCreateProfileAndValidate(t, db, "alice", "alice_name", false)
	utils.TestCreateProfileAndValidate(t, db, "bob", "bob_name", false)

	require.NoError(t, r.Follow("alice", "bob"))
	// refollowing the same pair stays a single edge
	require.NoError(t, r.Follow("alice", "bob"))

	following, err := r.IsFollowing("alice", "bob")
	require.NoError(t, err)
	require.True(t, following)

	followers, followingCount, err := r.FollowCounts("bob")
	require.NoError(t, err)
	require.Equal(t, int64(1), followers)
	require.Equal(t, int64(0), followingCount)

	require.NoError(t, r.Unfollow("alice", "bob"))
	following, err = r.IsFollowing("alice", "bob")
	require.NoError(t, err)
	require.False(t, following)
}

func TestFollowSelfRejected(t *testing.T) {
	db, _ := utils.CreateTempDB(t)
	r := New(db)

	require.Error(t, r.Follow("alice", "alice"))
}

func TestGetFollowersReturnsProfiles(t *testing.T) {
	db, _ := utils.CreateTempDB(t)
	r := New(db)

	utils.TestCreateProfileAndValidate(t, db, "alice", "alice_name", false)
	utils.TestCreateProfileAndValidate(t, db, "bob", "bob_name", true)
	utils.TestCreateProfileAndValidate(t, db, "carol", "carol_name", false)

	require.NoError(t, r.Follow("bob", "alice"))
	require.NoError(t, r.Follow("carol", "alice"))
	require.NoError(t, r.Follow("alice", "bob"))

	followers, err := r.GetFollowers("alice")
	require.NoError(t, err)
	require.Len(t, followers, 2)

	following, err := r.GetFollowing("alice")
	require.NoError(t, err)
	require.Len(t, following, 1)
	require.Equal(t, "bob_name", following[0].Username)
}
