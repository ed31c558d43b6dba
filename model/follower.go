package model

import "time"

/*

Follower is a directed "follows" edge between two profiles

FollowerID: the user doing the following
FollowedID: the user being followed
CreatedAt: time when relation is created

The composite primary key guarantees at most one row per ordered pair.

*/

type Follower struct {
	FollowerID string    `gorm:"primaryKey" json:"follower_id"`
	FollowedID string    `gorm:"primaryKey" json:"followed_id"`
	CreatedAt  time.Time `json:"created_at"`
}
