package utils

import (
	"testing"
	"time"

	"github.com/SandeepaDilakshana/UniBond/model"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// create a profile row, do sanity checks and return it
func TestCreateProfileAndValidate(t *testing.T, db *gorm.DB, id string, username string, role bool) model.Profile {
	t.Helper()
	profile := model.Profile{
		Id:       id,
		Username: username,
		Role:     role,
	}
	require.NoError(t, db.Create(&profile).Error)

	var stored model.Profile
	require.Equal(t, int64(1), db.Where("id = ?", id).First(&stored).RowsAffected)
	require.Equal(t, username, stored.Username)
	return stored
}

// create a post row with an empty comment list, do sanity checks and return it
func TestCreatePostAndValidate(t *testing.T, db *gorm.DB, userID string, content string, isPublic bool, likes int) model.Post {
	t.Helper()
	post := model.Post{
		Content:   content,
		Likes:     likes,
		Comments:  datatypes.JSON("[]"),
		IsPublic:  isPublic,
		UserID:    userID,
		CreatedAt: time.Now(),
	}
	require.NoError(t, db.Create(&post).Error)
	require.NotZero(t, post.Id)
	return post
}

// create an event row, do sanity checks and return it
func TestCreateEventAndValidate(t *testing.T, db *gorm.DB, userID string, name string, interestedCount int) model.Event {
	t.Helper()
	event := model.Event{
		EventName:        name,
		EventDate:        "2025-01-01",
		EventLocation:    "main hall",
		EventDescription: "test event",
		UserID:           userID,
		InterestedCount:  interestedCount,
		CreatedAt:        time.Now(),
	}
	require.NoError(t, db.Create(&event).Error)
	require.NotZero(t, event.Id)

	// InterestedCount must start equal to the relation cardinality; tests
	// seeding a non-zero count create the matching rows here.
	for i := 0; i < interestedCount; i++ {
		require.NoError(t, db.Create(&model.EventInterest{
			EventID: event.Id,
			UserID:  "seed_interest_" + RandomAlphabetString(6),
		}).Error)
	}
	return event
}
