package resolver

import (
	"os"
	"testing"

	"github.com/SandeepaDilakshana/UniBond/model"
	"github.com/SandeepaDilakshana/UniBond/utils"
	"github.com/SandeepaDilakshana/UniBond/utils/dotenv"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	dotenv.LoadDotEnvsInTests()
	os.Exit(m.Run())
}

func TestGetHomeFeedVisibility(t *testing.T) {
	db, _ := utils.CreateTempDB(t)
	r := New(db)

	utils.TestCreateProfileAndValidate(t, db, "viewer", "viewer_name", false)
	utils.TestCreateProfileAndValidate(t, db, "other", "other_name", false)

	publicPost := utils.TestCreatePostAndValidate(t, db, "other", "public post", true, 0)
	ownPrivate := utils.TestCreatePostAndValidate(t, db, "viewer", "my private post", false, 0)
	otherPrivate := utils.TestCreatePostAndValidate(t, db, "other", "their private post", false, 0)

	items, err := r.GetHomeFeed("viewer")
	require.NoError(t, err)

	ids := map[int64]bool{}
	for _, item := range items {
		require.True(t, item.IsPost())
		ids[item.Id] = true
	}
	require.True(t, ids[publicPost.Id])
	require.True(t, ids[ownPrivate.Id])
	// another user's private post must never leak
	require.False(t, ids[otherPrivate.Id])
}

func TestGetHomeFeedInterestFlag(t *testing.T) {
	db, _ := utils.CreateTempDB(t)
	r := New(db)

	utils.TestCreateProfileAndValidate(t, db, "viewer", "viewer_name", false)
	utils.TestCreateProfileAndValidate(t, db, "organizer", "organizer_name", true)
	eventRow := utils.TestCreateEventAndValidate(t, db, "organizer", "hackathon", 0)

	items, err := r.GetHomeFeed("viewer")
	require.NoError(t, err)
	require.Len(t, items, 1)
	require.False(t, items[0].IsInterestedByCurrentUser)

	require.NoError(t, db.Create(&model.EventInterest{EventID: eventRow.Id, UserID: "viewer"}).Error)

	items, err = r.GetHomeFeed("viewer")
	require.NoError(t, err)
	require.Len(t, items, 1)
	require.True(t, items[0].IsInterestedByCurrentUser)
}

func TestGetHomeFeedLikeFlagIsPerViewer(t *testing.T) {
	db, _ := utils.CreateTempDB(t)
	r := New(db)

	utils.TestCreateProfileAndValidate(t, db, "viewer", "viewer_name", false)
	utils.TestCreateProfileAndValidate(t, db, "other", "other_name", false)
	postRow := utils.TestCreatePostAndValidate(t, db, "other", "hi", true, 0)

	// someone else liking the post must not mark it liked for the viewer
	_, liked, err := r.ToggleLike("other", postRow.Id)
	require.NoError(t, err)
	require.True(t, liked)

	items, err := r.GetHomeFeed("viewer")
	require.NoError(t, err)
	require.Len(t, items, 1)
	require.Equal(t, 1, items[0].Likes)
	require.False(t, items[0].IsLikedByCurrentUser)
}

func TestGetHomeFeedAnonymousFallback(t *testing.T) {
	db, _ := utils.CreateTempDB(t)
	r := New(db)

	// post owned by a user with no profile row
	utils.TestCreatePostAndValidate(t, db, "ghost", "orphan post", true, 0)

	items, err := r.GetHomeFeed("viewer")
	require.NoError(t, err)
	require.Len(t, items, 1)
	require.Equal(t, "Anonymous", items[0].Username)
	require.Equal(t, "", items[0].AvatarUrl)
	require.False(t, items[0].Role)
}

func TestGetHomeFeedMergedCollection(t *testing.T) {
	db, _ := utils.CreateTempDB(t)
	r := New(db)

	utils.TestCreateProfileAndValidate(t, db, "U1", "u1_name", false)
	utils.TestCreateProfileAndValidate(t, db, "U2", "u2_name", false)
	utils.TestCreateProfileAndValidate(t, db, "U3", "u3_name", true)

	utils.TestCreatePostAndValidate(t, db, "U2", "hi", true, 0)
	utils.TestCreateEventAndValidate(t, db, "U3", "meetup", 2)

	items, err := r.GetHomeFeed("U1")
	require.NoError(t, err)
	require.Len(t, items, 2)

	// events are concatenated in front of posts
	require.Equal(t, model.FeedItemTypeEvent, items[0].Type)
	require.Equal(t, "u3_name", items[0].Username)
	require.True(t, items[0].Role)
	require.Equal(t, 2, items[0].InterestedCount)
	require.False(t, items[0].IsInterestedByCurrentUser)
	require.False(t, items[0].PostedDate.IsZero())

	require.Equal(t, model.FeedItemTypePost, items[1].Type)
	require.Equal(t, "u2_name", items[1].Username)
	require.Equal(t, "hi", items[1].Content)
	require.Equal(t, 0, items[1].Likes)
	require.Empty(t, items[1].Comments)
}
