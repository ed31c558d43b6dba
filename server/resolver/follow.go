package resolver

import (
	"github.com/SandeepaDilakshana/UniBond/model"
	"github.com/pkg/errors"
	"gorm.io/gorm/clause"
)

// Follow adds the directed edge viewer -> target. Re-following is a no-op,
// the composite key keeps the pair unique.
func (r *Resolver) Follow(viewerID string, targetID string) error {
	if viewerID == targetID {
		return errors.New("cannot follow yourself")
	}
	return r.DB.Clauses(clause.OnConflict{DoNothing: true}).
		Create(&model.Follower{FollowerID: viewerID, FollowedID: targetID}).Error
}

// Unfollow removes the directed edge viewer -> target if present.
func (r *Resolver) Unfollow(viewerID string, targetID string) error {
	return r.DB.Where("follower_id = ? AND followed_id = ?", viewerID, targetID).
		Delete(&model.Follower{}).Error
}

// IsFollowing reports whether viewer currently follows target.
func (r *Resolver) IsFollowing(viewerID string, targetID string) (bool, error) {
	var count int64
	err := r.DB.Model(&model.Follower{}).
		Where("follower_id = ? AND followed_id = ?", viewerID, targetID).
		Count(&count).Error
	return count > 0, err
}

// GetFollowers lists the profiles following the given user.
func (r *Resolver) GetFollowers(userID string) ([]model.Profile, error) {
	return r.followEdgeProfiles("followed_id = ?", userID, "follower_id")
}

// GetFollowing lists the profiles the given user follows.
func (r *Resolver) GetFollowing(userID string) ([]model.Profile, error) {
	return r.followEdgeProfiles("follower_id = ?", userID, "followed_id")
}

// FollowCounts returns how many users follow userID and how many userID
// follows, for the profile header.
func (r *Resolver) FollowCounts(userID string) (followers int64, following int64, err error) {
	if err = r.DB.Model(&model.Follower{}).Where("followed_id = ?", userID).Count(&followers).Error; err != nil {
		return
	}
	err = r.DB.Model(&model.Follower{}).Where("follower_id = ?", userID).Count(&following).Error
	return
}

func (r *Resolver) followEdgeProfiles(cond string, userID string, pluckColumn string) ([]model.Profile, error) {
	var ids []string
	if err := r.DB.Model(&model.Follower{}).Where(cond, userID).Pluck(pluckColumn, &ids).Error; err != nil {
		return nil, errors.Wrap(err, "fail to fetch follow edges")
	}
	profiles := []model.Profile{}
	if len(ids) == 0 {
		return profiles, nil
	}
	if err := r.DB.Where("id IN ?", ids).Find(&profiles).Error; err != nil {
		return nil, errors.Wrap(err, "fail to fetch follow profiles")
	}
	return profiles, nil
}
