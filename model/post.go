package model

import (
	"time"

	"gorm.io/datatypes"
)

/*

Post is a piece of user generated content on the home feed

Id: primary key, auto incremented
Content: post body in plain text
Likes: denormalized like counter, kept equal to the number of PostLike
	rows for this post (both sides move inside one transaction)
Comments: ordered JSON array of {username, comment} pairs, insertion
	order is display order
IsPublic: private posts are visible to their owner only
UserID: owning profile id
MediaUrl: relative path of an attached image or video, empty when none

*/

type Post struct {
	Id        int64          `gorm:"primaryKey;autoIncrement" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	Content   string         `json:"content"`
	Likes     int            `json:"likes"`
	Comments  datatypes.JSON `json:"comments"`
	IsPublic  bool           `json:"is_public"`
	UserID    string         `json:"user_id"`
	MediaUrl  string         `json:"media_url"`
}

// CommentEntry is one element of the Comments JSON column.
type CommentEntry struct {
	Username string `json:"username"`
	Comment  string `json:"comment"`
}
