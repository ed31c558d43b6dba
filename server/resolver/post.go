package resolver

import (
	"encoding/json"
	"strings"

	"github.com/SandeepaDilakshana/UniBond/model"
	"github.com/pkg/errors"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// CreatePost inserts a post owned by the viewer. Content must be non-empty.
func (r *Resolver) CreatePost(viewerID string, input model.NewPostInput) (*model.Post, error) {
	if strings.TrimSpace(input.Content) == "" {
		return nil, errors.New("post content cannot be empty")
	}

	post := model.Post{
		Content:  input.Content,
		Likes:    0,
		Comments: datatypes.JSON("[]"),
		IsPublic: input.IsPublic,
		UserID:   viewerID,
		MediaUrl: input.MediaUrl,
	}
	if err := r.DB.Create(&post).Error; err != nil {
		return nil, errors.Wrap(err, "fail to create post")
	}
	return &post, nil
}

// ToggleLike flips the viewer's like on a post. The relation row and the
// denormalized counter move together inside one transaction, so the counter
// always equals the number of likers. Returns the updated post and whether
// the viewer likes it afterwards.
func (r *Resolver) ToggleLike(viewerID string, postID int64) (*model.Post, bool, error) {
	var (
		post  model.Post
		liked bool
	)
	err := r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&post, "id = ?", postID).Error; err != nil {
			return errors.Wrap(err, "post not found")
		}

		var rel model.PostLike
		res := tx.Where("post_id = ? AND user_id = ?", postID, viewerID).First(&rel)
		switch {
		case res.Error == nil:
			if err := tx.Delete(&model.PostLike{PostID: postID, UserID: viewerID}).Error; err != nil {
				return err
			}
			post.Likes--
			if post.Likes < 0 {
				post.Likes = 0
			}
		case errors.Is(res.Error, gorm.ErrRecordNotFound):
			if err := tx.Create(&model.PostLike{PostID: postID, UserID: viewerID}).Error; err != nil {
				return err
			}
			post.Likes++
			liked = true
		default:
			return res.Error
		}

		return tx.Model(&model.Post{}).Where("id = ?", postID).Update("likes", post.Likes).Error
	})
	if err != nil {
		return nil, false, err
	}
	return &post, liked, nil
}

// AddComment appends one {username, comment} pair to the post's ordered
// comment list and mirrors it into the comments table, all in one
// transaction. The current list is re-read inside the transaction, so two
// close-together comments can no longer overwrite each other.
func (r *Resolver) AddComment(viewerID string, postID int64, text string) (*model.Post, error) {
	if strings.TrimSpace(text) == "" {
		return nil, errors.New("comment cannot be empty")
	}

	username := r.displayName(viewerID)

	var post model.Post
	err := r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&post, "id = ?", postID).Error; err != nil {
			return errors.Wrap(err, "post not found")
		}

		var comments []model.CommentEntry
		if len(post.Comments) > 0 {
			if err := json.Unmarshal(post.Comments, &comments); err != nil {
				return errors.Wrapf(err, "corrupt comment list on post %d", postID)
			}
		}
		comments = append(comments, model.CommentEntry{Username: username, Comment: text})

		raw, err := json.Marshal(comments)
		if err != nil {
			return err
		}
		post.Comments = datatypes.JSON(raw)

		if err := tx.Model(&model.Post{}).Where("id = ?", postID).Update("comments", post.Comments).Error; err != nil {
			return err
		}
		return tx.Create(&model.Comment{PostID: postID, Username: username, Comment: text}).Error
	})
	if err != nil {
		return nil, err
	}
	return &post, nil
}

// DeletePost removes a post the viewer owns, along with its likes and
// comment rows.
func (r *Resolver) DeletePost(viewerID string, postID int64) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		res := tx.Where("id = ? AND user_id = ?", postID, viewerID).Delete(&model.Post{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected != 1 {
			return errors.New("post not found or not owned by viewer")
		}
		if err := tx.Where("post_id = ?", postID).Delete(&model.PostLike{}).Error; err != nil {
			return err
		}
		return tx.Where("post_id = ?", postID).Delete(&model.Comment{}).Error
	})
}

// GetUserPosts lists one user's posts for the profile screens, newest first.
func (r *Resolver) GetUserPosts(userID string) ([]model.Post, error) {
	var posts []model.Post
	if err := r.DB.Where("user_id = ?", userID).Order("created_at desc").Find(&posts).Error; err != nil {
		return nil, errors.Wrap(err, "fail to fetch user posts")
	}
	return posts, nil
}

// displayName resolves the viewer's handle the same way feed enrichment
// does, falling back to Anonymous.
func (r *Resolver) displayName(userID string) string {
	var profile model.Profile
	if err := r.DB.First(&profile, "id = ?", userID).Error; err != nil || profile.Username == "" {
		return "Anonymous"
	}
	return profile.Username
}
