package model

import "time"

// Comment is the relational copy of a single post comment. The feed reads
// comments from the JSON column on Post; this table exists so comments can
// be listed and moderated independently of their post.
type Comment struct {
	Id        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	PostID    int64     `gorm:"index" json:"post_id"`
	Username  string    `json:"username"`
	Comment   string    `json:"comment"`
	CreatedAt time.Time `json:"created_at"`
}
