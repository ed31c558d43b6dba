package model

import "time"

/*

Profile is the account record backing every author shown in the app

Id: primary key, the auth provider's subject id for this user
Username: display handle, shown next to every post and event
AvatarUrl: relative path inside the avatar bucket, empty when the user
	never uploaded a picture
Role: false for a current student, true for an alumni
Email and the remaining columns are the profile-edit screen's fields

*/

type Profile struct {
	Id            string    `gorm:"primaryKey" json:"id"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
	Username      string    `json:"username"`
	FullName      string    `json:"full_name"`
	AvatarUrl     string    `json:"avatar_url"`
	Role          bool      `json:"role"`
	Dob           string    `json:"dob"`
	ContactNumber string    `json:"contact_number"`
	Gender        string    `json:"gender"`
	Department    string    `json:"department"`
	Faculty       string    `json:"faculty"`
	Course        string    `json:"course"`
	Skills        string    `json:"skills"`
	Interests     string    `json:"interests"`
	Email         string    `json:"email"`
}

// AnonymousProfile is substituted whenever an author lookup comes back
// empty, so a feed item never renders without a username.
func AnonymousProfile(id string) Profile {
	return Profile{
		Id:       id,
		Username: "Anonymous",
		Role:     false,
	}
}
