package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"exercise-tracker/entities"
	"exercise-tracker/usecases"
	"exercise-tracker/ws"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

// feedEvent is pushed to subscribers whenever an exercise is logged.
type feedEvent struct {
	Type        string `json:"type"`
	Username    string `json:"username"`
	Description string `json:"description"`
	Duration    int    `json:"duration"`
	Date        string `json:"date"`
	ID          string `json:"_id"`
}

// FeedNotifier forwards stored exercises to the websocket subscribers of their user.
type FeedNotifier struct {
	mgr *ws.Manager
}

func NewFeedNotifier(mgr *ws.Manager) *FeedNotifier {
	return &FeedNotifier{mgr: mgr}
}

func (n *FeedNotifier) NotifyExercise(user entities.User, exercise entities.Exercise) {
	b, err := json.Marshal(feedEvent{
		Type:        "exercise",
		Username:    user.Username,
		Description: exercise.Description,
		Duration:    exercise.Duration,
		Date:        exercise.Date,
		ID:          user.ID,
	})
	if err != nil {
		log.Printf("could not encode feed event for %s: %v", user.ID, err)
		return
	}
	n.mgr.Broadcast(user.ID, b)
}

// FeedHandler groups dependencies for websocket flows
type FeedHandler struct {
	mgr   *ws.Manager
	users *usecases.UserUseCase
}

func NewFeedHandler(mgr *ws.Manager, users *usecases.UserUseCase) *FeedHandler {
	return &FeedHandler{mgr: mgr, users: users}
}

var upgrader = websocket.Upgrader{CheckOrigin: func(r *http.Request) bool { return true }}

// HandleUserFeed upgrades to websocket and streams the user's new exercises
// GET /api/users/:_id/feed
func (h *FeedHandler) HandleUserFeed(c *gin.Context) {
	user, err := h.users.GetUser(c.Request.Context(), c.Param("_id"))
	if err != nil {
		if errors.Is(err, usecases.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
		log.Printf("feed lookup failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error opening feed"})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("websocket upgrade failed: %v", err)
		return
	}
	h.mgr.Register(user.ID, conn)
	log.Printf("feed subscriber joined: %s", user.ID)

	defer func() {
		h.mgr.Unregister(user.ID, conn)
		log.Printf("feed subscriber left: %s", user.ID)
	}()

	// The feed is one-way; reading only detects the close.
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			if !websocket.IsCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Printf("read error on feed of %s: %v", user.ID, err)
			}
			return
		}
	}
}

// GetSubscribedUsers GET /api/feeds
func (h *FeedHandler) GetSubscribedUsers(c *gin.Context) {
	users := h.mgr.List()
	c.JSON(http.StatusOK, gin.H{"users": users, "count": len(users)})
}
