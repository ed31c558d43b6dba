package resolver

import (
	"testing"
	"time"

	"github.com/SandeepaDilakshana/UniBond/model"
	"github.com/stretchr/testify/require"
)

func post(id int64, likes int) *model.FeedItem {
	return &model.FeedItem{Type: model.FeedItemTypePost, Id: id, Likes: likes}
}

func event(id int64, interested int) *model.FeedItem {
	return &model.FeedItem{Type: model.FeedItemTypeEvent, Id: id, InterestedCount: interested}
}

func TestFilterFeedIsAPartition(t *testing.T) {
	items := []*model.FeedItem{event(1, 0), post(2, 0), event(3, 0), post(4, 0)}

	posts := FilterFeed(items, model.FeedFilterPosts)
	events := FilterFeed(items, model.FeedFilterEvents)
	all := FilterFeed(items, model.FeedFilterAll)

	require.Len(t, all, len(items))
	require.Equal(t, len(items), len(posts)+len(events))
	for _, item := range posts {
		require.True(t, item.IsPost())
	}
	for _, item := range events {
		require.True(t, item.IsEvent())
	}

	// every item lands in exactly one of the two buckets
	seen := map[int64]int{}
	for _, item := range append(append([]*model.FeedItem{}, posts...), events...) {
		seen[item.Id]++
	}
	for _, item := range items {
		require.Equal(t, 1, seen[item.Id])
	}
}

func TestSortFeedByLikesOnlyReordersPosts(t *testing.T) {
	items := []*model.FeedItem{post(1, 5), event(10, 7), post(2, 1), event(11, 2), post(3, 3)}

	SortFeed(items, model.FeedSortByLikes, false)

	// posts come out 5, 3, 1 while events keep their slots
	require.Equal(t, int64(1), items[0].Id)
	require.Equal(t, int64(10), items[1].Id)
	require.Equal(t, int64(3), items[2].Id)
	require.Equal(t, int64(11), items[3].Id)
	require.Equal(t, int64(2), items[4].Id)
}

func TestSortFeedByInterestedOnlyReordersEvents(t *testing.T) {
	items := []*model.FeedItem{event(10, 1), post(1, 9), event(11, 4), event(12, 2)}

	SortFeed(items, model.FeedSortByInterested, false)

	require.Equal(t, int64(11), items[0].Id)
	require.Equal(t, int64(1), items[1].Id)
	require.Equal(t, int64(12), items[2].Id)
	require.Equal(t, int64(10), items[3].Id)
}

func TestSortFeedByDateRespectsToggle(t *testing.T) {
	base := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	older := post(1, 0)
	older.PostedDate = base.Add(-time.Hour)
	newer := event(2, 0)
	newer.PostedDate = base

	// toggle off: the date key is a no-op
	items := []*model.FeedItem{older, newer}
	SortFeed(items, model.FeedSortByDate, false)
	require.Equal(t, int64(1), items[0].Id)
	require.Equal(t, int64(2), items[1].Id)

	// toggle on: newest first across both kinds
	SortFeed(items, model.FeedSortByDate, true)
	require.Equal(t, int64(2), items[0].Id)
	require.Equal(t, int64(1), items[1].Id)
}

func TestSortFeedUnknownKeyLeavesOrder(t *testing.T) {
	items := []*model.FeedItem{post(2, 1), post(1, 9)}
	SortFeed(items, model.FeedSortBy("bogus"), true)
	require.Equal(t, int64(2), items[0].Id)
	require.Equal(t, int64(1), items[1].Id)
}
