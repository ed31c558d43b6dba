package resolver

import (
	"strings"

	"github.com/SandeepaDilakshana/UniBond/model"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// CreateEvent inserts an event organized by the viewer.
func (r *Resolver) CreateEvent(viewerID string, input model.NewEventInput) (*model.Event, error) {
	if strings.TrimSpace(input.EventName) == "" {
		return nil, errors.New("event name cannot be empty")
	}

	event := model.Event{
		EventName:        input.EventName,
		EventDate:        input.EventDate,
		EventLocation:    input.EventLocation,
		EventDescription: input.EventDescription,
		UserID:           viewerID,
		InterestedCount:  0,
	}
	if err := r.DB.Create(&event).Error; err != nil {
		return nil, errors.Wrap(err, "fail to create event")
	}
	return &event, nil
}

// ToggleInterest flips the viewer's interest in an event. The relation row
// and interested_count used to be two independent writes that could drift
// apart when the second one failed; here both happen in one transaction.
// Returns the updated event and whether the viewer is interested afterwards.
func (r *Resolver) ToggleInterest(viewerID string, eventID int64) (*model.Event, bool, error) {
	var (
		event      model.Event
		interested bool
	)
	err := r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&event, "id = ?", eventID).Error; err != nil {
			return errors.Wrap(err, "event not found")
		}

		var rel model.EventInterest
		res := tx.Where("event_id = ? AND user_id = ?", eventID, viewerID).First(&rel)
		switch {
		case res.Error == nil:
			if err := tx.Delete(&model.EventInterest{EventID: eventID, UserID: viewerID}).Error; err != nil {
				return err
			}
			event.InterestedCount--
			if event.InterestedCount < 0 {
				event.InterestedCount = 0
			}
		case errors.Is(res.Error, gorm.ErrRecordNotFound):
			if err := tx.Create(&model.EventInterest{EventID: eventID, UserID: viewerID}).Error; err != nil {
				return err
			}
			event.InterestedCount++
			interested = true
		default:
			return res.Error
		}

		return tx.Model(&model.Event{}).Where("id = ?", eventID).Update("interested_count", event.InterestedCount).Error
	})
	if err != nil {
		return nil, false, err
	}
	return &event, interested, nil
}

// DeleteEvent removes an event the viewer organized, plus its interest rows.
func (r *Resolver) DeleteEvent(viewerID string, eventID int64) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		res := tx.Where("id = ? AND uid = ?", eventID, viewerID).Delete(&model.Event{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected != 1 {
			return errors.New("event not found or not owned by viewer")
		}
		return tx.Where("event_id = ?", eventID).Delete(&model.EventInterest{}).Error
	})
}

// GetUserEvents lists one user's events for the profile screens, newest
// first.
func (r *Resolver) GetUserEvents(userID string) ([]model.Event, error) {
	var events []model.Event
	if err := r.DB.Where("uid = ?", userID).Order("created_at desc").Find(&events).Error; err != nil {
		return nil, errors.Wrap(err, "fail to fetch user events")
	}
	return events, nil
}
