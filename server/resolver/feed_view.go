package resolver

import (
	"sort"

	"github.com/SandeepaDilakshana/UniBond/model"
)

// FilterFeed keeps the items matching the requested kind. "all" (or any
// unknown filter) returns the input unchanged.
func FilterFeed(items []*model.FeedItem, filter model.FeedFilter) []*model.FeedItem {
	var pred func(*model.FeedItem) bool
	switch filter {
	case model.FeedFilterPosts:
		pred = (*model.FeedItem).IsPost
	case model.FeedFilterEvents:
		pred = (*model.FeedItem).IsEvent
	default:
		return items
	}

	res := []*model.FeedItem{}
	for _, item := range items {
		if pred(item) {
			res = append(res, item)
		}
	}
	return res
}

// SortFeed orders items in place and returns the slice.
//
// The date key only takes effect while its toggle is on, and orders the
// whole feed newest first. The likes key orders posts among themselves and
// the interested key orders events among themselves; items of the other
// kind stay at their original index either way, so a list of posts sorted
// by likes comes out in descending like order no matter how events are
// interleaved.
func SortFeed(items []*model.FeedItem, sortBy model.FeedSortBy, dateSorted bool) []*model.FeedItem {
	switch {
	case sortBy == model.FeedSortByDate && dateSorted:
		sort.SliceStable(items, func(i, j int) bool {
			return items[i].PostedDate.After(items[j].PostedDate)
		})
	case sortBy == model.FeedSortByLikes:
		sortMatching(items, (*model.FeedItem).IsPost, func(a, b *model.FeedItem) bool {
			return a.Likes > b.Likes
		})
	case sortBy == model.FeedSortByInterested:
		sortMatching(items, (*model.FeedItem).IsEvent, func(a, b *model.FeedItem) bool {
			return a.InterestedCount > b.InterestedCount
		})
	}
	return items
}

// sortMatching stable sorts only the items accepted by pred, writing them
// back over the indexes they came from.
func sortMatching(items []*model.FeedItem, pred func(*model.FeedItem) bool, less func(a, b *model.FeedItem) bool) {
	idxs := []int{}
	sub := []*model.FeedItem{}
	for i, item := range items {
		if pred(item) {
			idxs = append(idxs, i)
			sub = append(sub, item)
		}
	}
	sort.SliceStable(sub, func(i, j int) bool { return less(sub[i], sub[j]) })
	for k, i := range idxs {
		items[i] = sub[k]
	}
}
