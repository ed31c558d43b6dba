package resolver

import (
	"github.com/SandeepaDilakshana/UniBond/model"
	"github.com/pkg/errors"
)

// GetProfile returns one profile row in full, for the profile screens.
func (r *Resolver) GetProfile(userID string) (*model.Profile, error) {
	var profile model.Profile
	queryResult := r.DB.Where("id = ?", userID).First(&profile)
	if queryResult.RowsAffected != 1 {
		return nil, errors.New("profile not found")
	}
	return &profile, nil
}

// EnsureProfile creates an empty profile row on first login, mirroring what
// the auth provider knows. Existing rows are returned untouched.
func (r *Resolver) EnsureProfile(userID string, email string) (*model.Profile, error) {
	var profile model.Profile
	res := r.DB.Where("id = ?", userID).First(&profile)
	if res.RowsAffected == 1 {
		return &profile, nil
	}
	profile = model.Profile{
		Id:       userID,
		Username: "Anonymous",
		Email:    email,
	}
	if err := r.DB.Create(&profile).Error; err != nil {
		return nil, errors.Wrap(err, "fail to create profile")
	}
	return &profile, nil
}

// UpdateProfile applies the non-nil fields of input to the viewer's own
// profile and returns the updated row.
func (r *Resolver) UpdateProfile(viewerID string, input model.UpdateProfileInput) (*model.Profile, error) {
	updates := map[string]interface{}{}
	setIf(updates, "username", input.Username)
	setIf(updates, "full_name", input.FullName)
	setIf(updates, "avatar_url", input.AvatarUrl)
	setIf(updates, "dob", input.Dob)
	setIf(updates, "contact_number", input.ContactNumber)
	setIf(updates, "gender", input.Gender)
	setIf(updates, "department", input.Department)
	setIf(updates, "faculty", input.Faculty)
	setIf(updates, "course", input.Course)
	setIf(updates, "skills", input.Skills)
	setIf(updates, "interests", input.Interests)

	if len(updates) > 0 {
		res := r.DB.Model(&model.Profile{}).Where("id = ?", viewerID).Updates(updates)
		if res.Error != nil {
			return nil, errors.Wrap(res.Error, "fail to update profile")
		}
		if res.RowsAffected != 1 {
			return nil, errors.New("profile not found")
		}
	}
	return r.GetProfile(viewerID)
}

func setIf(updates map[string]interface{}, column string, value *string) {
	if value != nil {
		updates[column] = *value
	}
}
