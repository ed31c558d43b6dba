package resolver

import (
	"encoding/json"

	"github.com/SandeepaDilakshana/UniBond/model"
	"github.com/SandeepaDilakshana/UniBond/utils"
	Logger "github.com/SandeepaDilakshana/UniBond/utils/log"
	"github.com/jinzhu/copier"
	"github.com/pkg/errors"
)

// GetHomeFeed builds the combined home feed for one viewer: every event,
// plus every post that is public or owned by the viewer, each denormalized
// with its author profile and the viewer's own like/interest state.
//
// Author profiles and per-viewer relations are resolved with one batched
// query each instead of a lookup per item, so the whole aggregation is a
// fixed number of round trips regardless of feed size.
func (r *Resolver) GetHomeFeed(viewerID string) ([]*model.FeedItem, error) {
	var posts []model.Post
	if err := r.DB.Where("is_public = ? OR user_id = ?", true, viewerID).Find(&posts).Error; err != nil {
		return nil, errors.Wrap(err, "fail to fetch posts")
	}

	// Events carry no visibility flag, every viewer sees all of them.
	var events []model.Event
	if err := r.DB.Find(&events).Error; err != nil {
		return nil, errors.Wrap(err, "fail to fetch events")
	}

	ownerIds := []string{}
	postIds := make([]int64, 0, len(posts))
	for idx := range posts {
		postIds = append(postIds, posts[idx].Id)
		if !utils.ContainsString(ownerIds, posts[idx].UserID) {
			ownerIds = append(ownerIds, posts[idx].UserID)
		}
	}
	eventIds := make([]int64, 0, len(events))
	for idx := range events {
		eventIds = append(eventIds, events[idx].Id)
		if !utils.ContainsString(ownerIds, events[idx].UserID) {
			ownerIds = append(ownerIds, events[idx].UserID)
		}
	}

	profiles := r.lookupProfiles(ownerIds)

	interested, err := r.lookupEventInterests(viewerID, eventIds)
	if err != nil {
		return nil, errors.Wrap(err, "fail to fetch interest status")
	}

	liked, err := r.lookupPostLikes(viewerID, postIds)
	if err != nil {
		return nil, errors.Wrap(err, "fail to fetch like status")
	}

	// Events go in front of posts. Sorting is the view layer's concern.
	items := make([]*model.FeedItem, 0, len(posts)+len(events))
	for idx := range events {
		item, err := buildEventItem(&events[idx], profiles, interested)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	for idx := range posts {
		item, err := buildPostItem(&posts[idx], profiles, liked)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}

// lookupProfiles fetches all authors in one query. A failed author lookup
// degrades those items to the anonymous profile instead of failing the
// whole aggregation, so it logs and returns an empty map on error.
func (r *Resolver) lookupProfiles(ids []string) map[string]*model.Profile {
	res := map[string]*model.Profile{}
	if len(ids) == 0 {
		return res
	}
	var profiles []model.Profile
	if err := r.DB.Where("id IN ?", ids).Find(&profiles).Error; err != nil {
		Logger.Log.Warn("author profile lookup failed: ", err)
		return res
	}
	for idx := range profiles {
		res[profiles[idx].Id] = &profiles[idx]
	}
	return res
}

// lookupEventInterests returns the set of given events the viewer marked
// interest in.
func (r *Resolver) lookupEventInterests(viewerID string, eventIds []int64) (map[int64]bool, error) {
	res := map[int64]bool{}
	if len(eventIds) == 0 {
		return res, nil
	}
	var rels []model.EventInterest
	if err := r.DB.Where("event_id IN ? AND user_id = ?", eventIds, viewerID).Find(&rels).Error; err != nil {
		return nil, err
	}
	for _, rel := range rels {
		res[rel.EventID] = true
	}
	return res, nil
}

// lookupPostLikes returns the set of given posts the viewer liked.
func (r *Resolver) lookupPostLikes(viewerID string, postIds []int64) (map[int64]bool, error) {
	res := map[int64]bool{}
	if len(postIds) == 0 {
		return res, nil
	}
	var rels []model.PostLike
	if err := r.DB.Where("post_id IN ? AND user_id = ?", postIds, viewerID).Find(&rels).Error; err != nil {
		return nil, err
	}
	for _, rel := range rels {
		res[rel.PostID] = true
	}
	return res, nil
}

func buildPostItem(post *model.Post, profiles map[string]*model.Profile, liked map[int64]bool) (*model.FeedItem, error) {
	item := &model.FeedItem{
		Type:                 model.FeedItemTypePost,
		Id:                   post.Id,
		UserID:               post.UserID,
		PostedDate:           post.CreatedAt.UTC(),
		Content:              post.Content,
		MediaUrl:             post.MediaUrl,
		Likes:                post.Likes,
		IsPublic:             post.IsPublic,
		IsLikedByCurrentUser: liked[post.Id],
	}
	if len(post.Comments) > 0 {
		if err := json.Unmarshal(post.Comments, &item.Comments); err != nil {
			return nil, errors.Wrapf(err, "corrupt comment list on post %d", post.Id)
		}
	}
	attachAuthor(item, post.UserID, profiles)
	return item, nil
}

func buildEventItem(event *model.Event, profiles map[string]*model.Profile, interested map[int64]bool) (*model.FeedItem, error) {
	item := &model.FeedItem{
		Type:       model.FeedItemTypeEvent,
		PostedDate: event.CreatedAt.UTC(),
	}
	// Id, UserID and the event_* columns share names with the feed item.
	if err := copier.Copy(item, event); err != nil {
		return nil, errors.Wrapf(err, "fail to denormalize event %d", event.Id)
	}
	item.IsInterestedByCurrentUser = interested[event.Id]
	attachAuthor(item, event.UserID, profiles)
	return item, nil
}

func attachAuthor(item *model.FeedItem, ownerID string, profiles map[string]*model.Profile) {
	profile, ok := profiles[ownerID]
	if !ok {
		anon := model.AnonymousProfile(ownerID)
		profile = &anon
	}
	item.Username = profile.Username
	item.AvatarUrl = profile.AvatarUrl
	item.Role = profile.Role
}
