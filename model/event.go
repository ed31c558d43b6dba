package model

import "time"

/*

Event is a campus event announced on the home feed

Id: primary key, auto incremented
EventDate: free form date text entered by the organizer, not parsed
UserID: organizer's profile id, stored in column "uid"
InterestedCount: denormalized counter, kept equal to the number of
	EventInterest rows for this event

Events carry no visibility flag: every event is shown to every viewer.

*/

type Event struct {
	Id               int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	CreatedAt        time.Time `json:"created_at"`
	EventName        string    `json:"event_name"`
	EventDate        string    `json:"event_date"`
	EventLocation    string    `json:"event_location"`
	EventDescription string    `json:"event_description"`
	UserID           string    `gorm:"column:uid" json:"uid"`
	InterestedCount  int       `json:"interested_count"`
}
