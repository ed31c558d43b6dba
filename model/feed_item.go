package model

import "time"

// FeedItemType tags each item of the combined home feed.
type FeedItemType string

const (
	FeedItemTypePost  FeedItemType = "post"
	FeedItemTypeEvent FeedItemType = "event"
)

// FeedFilter selects which kinds of items a feed view keeps.
type FeedFilter string

const (
	FeedFilterAll    FeedFilter = "all"
	FeedFilterPosts  FeedFilter = "posts"
	FeedFilterEvents FeedFilter = "events"
)

// FeedSortBy selects the comparator applied to a feed view.
type FeedSortBy string

const (
	FeedSortByDate       FeedSortBy = "date"
	FeedSortByLikes      FeedSortBy = "likes"
	FeedSortByInterested FeedSortBy = "interested"
)

/*

FeedItem is one entry of the combined home feed, either a post or an
event, flattened into a single shape the client renders directly.

Type: "post" or "event", decides which field group below is meaningful
Username, AvatarUrl, Role: author profile denormalized at fetch time,
	never persisted on the post or event row itself
PostedDate: creation timestamp normalized to UTC, the date sort key

Post fields: Content, Likes, Comments, IsPublic, IsLikedByCurrentUser
Event fields: EventName, EventDate, EventLocation, EventDescription,
	InterestedCount, IsInterestedByCurrentUser

*/

type FeedItem struct {
	Type       FeedItemType `json:"type"`
	Id         int64        `json:"id"`
	UserID     string       `json:"user_id"`
	Username   string       `json:"username"`
	AvatarUrl  string       `json:"avatar_url"`
	Role       bool         `json:"role"`
	PostedDate time.Time    `json:"posted_date"`

	Content              string         `json:"content,omitempty"`
	MediaUrl             string         `json:"media_url,omitempty"`
	Likes                int            `json:"likes"`
	Comments             []CommentEntry `json:"comments,omitempty"`
	IsPublic             bool           `json:"is_public,omitempty"`
	IsLikedByCurrentUser bool           `json:"isLikedByCurrentUser"`

	EventName                 string `json:"event_name,omitempty"`
	EventDate                 string `json:"event_date,omitempty"`
	EventLocation             string `json:"event_location,omitempty"`
	EventDescription          string `json:"event_description,omitempty"`
	InterestedCount           int    `json:"interested_count"`
	IsInterestedByCurrentUser bool   `json:"isInterestedByCurrentUser"`
}

// IsPost reports whether the item carries the post field group.
func (f *FeedItem) IsPost() bool { return f.Type == FeedItemTypePost }

// IsEvent reports whether the item carries the event field group.
func (f *FeedItem) IsEvent() bool { return f.Type == FeedItemTypeEvent }
