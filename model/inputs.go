package model

// NewPostInput is the payload for creating a post.
type NewPostInput struct {
	Content  string `json:"content" binding:"required"`
	IsPublic bool   `json:"is_public"`
	MediaUrl string `json:"media_url"`
}

// NewEventInput is the payload for announcing an event.
type NewEventInput struct {
	EventName        string `json:"event_name" binding:"required"`
	EventDate        string `json:"event_date"`
	EventLocation    string `json:"event_location"`
	EventDescription string `json:"event_description"`
}

// NewCommentInput is the payload for commenting on a post.
type NewCommentInput struct {
	Comment string `json:"comment" binding:"required"`
}

// UpdateProfileInput carries the editable profile-screen fields. Pointer
// fields distinguish "leave unchanged" from "set to empty".
type UpdateProfileInput struct {
	Username      *string `json:"username"`
	FullName      *string `json:"full_name"`
	AvatarUrl     *string `json:"avatar_url"`
	Dob           *string `json:"dob"`
	ContactNumber *string `json:"contact_number"`
	Gender        *string `json:"gender"`
	Department    *string `json:"department"`
	Faculty       *string `json:"faculty"`
	Course        *string `json:"course"`
	Skills        *string `json:"skills"`
	Interests     *string `json:"interests"`
}
