package model

import "time"

/*

EventInterest marks a user as interested in an event

EventID: event id
UserID: user id
CreatedAt: time when relation is created

Event.InterestedCount mirrors the cardinality of this relation; the row
and the counter are always written inside the same transaction.

*/

type EventInterest struct {
	EventID   int64     `gorm:"primaryKey" json:"event_id"`
	UserID    string    `gorm:"primaryKey" json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
}
