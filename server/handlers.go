package server

import (
	"net/http"
	"strconv"

	"github.com/SandeepaDilakshana/UniBond/model"
	"github.com/SandeepaDilakshana/UniBond/server/resolver"
	"github.com/SandeepaDilakshana/UniBond/storage"
	"github.com/gin-gonic/gin"
)

// APIServer holds every dependency the JSON handlers need. The JWT
// middleware has already placed the authenticated user's id into the "sub"
// request header by the time any handler runs.
type APIServer struct {
	Resolver      *resolver.Resolver
	Store         storage.FileStore
	AvatarBaseURL string
}

func NewAPIServer(r *resolver.Resolver, store storage.FileStore, avatarBaseURL string) *APIServer {
	return &APIServer{Resolver: r, Store: store, AvatarBaseURL: avatarBaseURL}
}

// RegisterRoutes binds every screen-facing operation onto the router.
func (s *APIServer) RegisterRoutes(router *gin.Engine) {
	router.GET("/feed", s.getFeed)

	router.POST("/posts", s.createPost)
	router.DELETE("/posts/:id", s.deletePost)
	router.POST("/posts/:id/like", s.toggleLike)
	router.POST("/posts/:id/comments", s.addComment)

	router.POST("/events", s.createEvent)
	router.DELETE("/events/:id", s.deleteEvent)
	router.POST("/events/:id/interest", s.toggleInterest)

	router.GET("/profile", s.getOwnProfile)
	router.PUT("/profile", s.updateProfile)
	router.GET("/profiles/:id", s.getProfile)
	router.GET("/profiles/:id/posts", s.getUserPosts)
	router.GET("/profiles/:id/events", s.getUserEvents)
	router.GET("/profiles/:id/followers", s.getFollowers)
	router.GET("/profiles/:id/following", s.getFollowing)
	router.POST("/profiles/:id/follow", s.follow)
	router.DELETE("/profiles/:id/follow", s.unfollow)

	router.POST("/media", s.uploadMedia)
}

// getFeed runs the aggregation for the viewer and applies the requested
// view state. filter defaults to "all"; the date sort only kicks in when
// date_sorted=true, mirroring the home screen toggle.
func (s *APIServer) getFeed(c *gin.Context) {
	viewer, ok := s.viewer(c)
	if !ok {
		return
	}

	items, err := s.Resolver.GetHomeFeed(viewer)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not fetch data"})
		return
	}

	filter := model.FeedFilter(c.DefaultQuery("filter", string(model.FeedFilterAll)))
	sortBy := model.FeedSortBy(c.DefaultQuery("sort_by", string(model.FeedSortByDate)))
	dateSorted := c.Query("date_sorted") == "true"

	items = resolver.SortFeed(resolver.FilterFeed(items, filter), sortBy, dateSorted)

	// Stored avatar paths become full public URLs on the way out.
	for _, item := range items {
		item.AvatarUrl = storage.PublicObjectURL(s.AvatarBaseURL, item.AvatarUrl)
	}

	c.JSON(http.StatusOK, gin.H{"items": items})
}

func (s *APIServer) createPost(c *gin.Context) {
	viewer, ok := s.viewer(c)
	if !ok {
		return
	}
	var input model.NewPostInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	post, err := s.Resolver.CreatePost(viewer, input)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, post)
}

func (s *APIServer) deletePost(c *gin.Context) {
	viewer, ok := s.viewer(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := s.Resolver.DeletePost(viewer, id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}

func (s *APIServer) toggleLike(c *gin.Context) {
	viewer, ok := s.viewer(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}
	post, liked, err := s.Resolver.ToggleLike(viewer, id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not toggle like"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"post": post, "isLikedByCurrentUser": liked})
}

func (s *APIServer) addComment(c *gin.Context) {
	viewer, ok := s.viewer(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}
	var input model.NewCommentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	post, err := s.Resolver.AddComment(viewer, id, input.Comment)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not add the comment"})
		return
	}
	c.JSON(http.StatusOK, post)
}

func (s *APIServer) createEvent(c *gin.Context) {
	viewer, ok := s.viewer(c)
	if !ok {
		return
	}
	var input model.NewEventInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	event, err := s.Resolver.CreateEvent(viewer, input)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, event)
}

func (s *APIServer) deleteEvent(c *gin.Context) {
	viewer, ok := s.viewer(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := s.Resolver.DeleteEvent(viewer, id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}

func (s *APIServer) toggleInterest(c *gin.Context) {
	viewer, ok := s.viewer(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}
	event, interested, err := s.Resolver.ToggleInterest(viewer, id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not toggle interest"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"event": event, "isInterestedByCurrentUser": interested})
}

func (s *APIServer) getOwnProfile(c *gin.Context) {
	viewer, ok := s.viewer(c)
	if !ok {
		return
	}
	s.renderProfile(c, viewer, viewer)
}

func (s *APIServer) getProfile(c *gin.Context) {
	viewer, ok := s.viewer(c)
	if !ok {
		return
	}
	s.renderProfile(c, viewer, c.Param("id"))
}

func (s *APIServer) renderProfile(c *gin.Context, viewer string, userID string) {
	profile, err := s.Resolver.GetProfile(userID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "profile not found"})
		return
	}
	followers, following, err := s.Resolver.FollowCounts(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not fetch follow counts"})
		return
	}
	isFollowing, err := s.Resolver.IsFollowing(viewer, userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not fetch follow status"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"profile":         profile,
		"avatar_url":      storage.PublicObjectURL(s.AvatarBaseURL, profile.AvatarUrl),
		"followers_count": followers,
		"following_count": following,
		"is_following":    isFollowing,
	})
}

func (s *APIServer) updateProfile(c *gin.Context) {
	viewer, ok := s.viewer(c)
	if !ok {
		return
	}
	var input model.UpdateProfileInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	profile, err := s.Resolver.UpdateProfile(viewer, input)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not update profile"})
		return
	}
	c.JSON(http.StatusOK, profile)
}

func (s *APIServer) getUserPosts(c *gin.Context) {
	posts, err := s.Resolver.GetUserPosts(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not fetch posts"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"posts": posts})
}

func (s *APIServer) getUserEvents(c *gin.Context) {
	events, err := s.Resolver.GetUserEvents(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not fetch events"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"events": events})
}

func (s *APIServer) getFollowers(c *gin.Context) {
	profiles, err := s.Resolver.GetFollowers(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not fetch followers"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"profiles": profiles})
}

func (s *APIServer) getFollowing(c *gin.Context) {
	profiles, err := s.Resolver.GetFollowing(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not fetch following"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"profiles": profiles})
}

func (s *APIServer) follow(c *gin.Context) {
	viewer, ok := s.viewer(c)
	if !ok {
		return
	}
	if err := s.Resolver.Follow(viewer, c.Param("id")); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}

func (s *APIServer) unfollow(c *gin.Context) {
	viewer, ok := s.viewer(c)
	if !ok {
		return
	}
	if err := s.Resolver.Unfollow(viewer, c.Param("id")); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}

// uploadMedia stores one multipart file and returns its key and public URL.
// The client then writes the key into the owning row (avatar_url/media_url).
func (s *APIServer) uploadMedia(c *gin.Context) {
	viewer, ok := s.viewer(c)
	if !ok {
		return
	}
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing file"})
		return
	}
	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not read file"})
		return
	}
	defer file.Close()

	key := storage.MediaKey(viewer, fileHeader.Filename)
	url, err := s.Store.Upload(key, file, fileHeader.Header.Get("Content-Type"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not store file"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"key": key, "url": url})
}

// viewer pulls the authenticated user id placed by the JWT middleware.
func (s *APIServer) viewer(c *gin.Context) (string, bool) {
	sub := c.Request.Header.Get("sub")
	if sub == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "no authenticated user"})
		return "", false
	}
	return sub, true
}

func pathID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return 0, false
	}
	return id, true
}
