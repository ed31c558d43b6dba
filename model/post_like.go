package model

import "time"

/*

PostLike marks a user as having liked a post

PostID: post id
UserID: user id
CreatedAt: time when relation is created

Post.Likes mirrors the cardinality of this relation. The app used to
infer "liked by me" from the raw counter being positive, which breaks as
soon as a second user likes the post; this relation is the replacement.

*/

type PostLike struct {
	PostID    int64     `gorm:"primaryKey" json:"post_id"`
	UserID    string    `gorm:"primaryKey" json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
}
