package handler

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/thomasnguyen/corgi-quest-sub001/internal/repository"
	"github.com/thomasnguyen/corgi-quest-sub001/internal/service"
	"github.com/thomasnguyen/corgi-quest-sub001/pkg/response"
)

type PresenceHandler struct {
	presenceService service.PresenceService
	userRepo        repository.UserRepository
	upgrader        websocket.Upgrader
}

func NewPresenceHandler(presenceService service.PresenceService, userRepo repository.UserRepository) *PresenceHandler {
	return &PresenceHandler{
		presenceService: presenceService,
		userRepo:        userRepo,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				return true // Allow all origins for now
			},
		},
	}
}

// GetOnlineMembers lists which household members currently hold a presence marker.
func (h *PresenceHandler) GetOnlineMembers(c *gin.Context) {
	user, ok := currentUser(c, h.userRepo)
	if !ok {
		return
	}
	if user.HouseholdID == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "user has no household"})
		return
	}

	members, err := h.presenceService.OnlineMembers(c.Request.Context(), *user.HouseholdID)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"online": members})
}

// HandleWebSocket keeps the caller's presence marker alive and pushes the
// household's online list whenever it changes.
func (h *PresenceHandler) HandleWebSocket(c *gin.Context) {
	user, ok := currentUser(c, h.userRepo)
	if !ok {
		return
	}
	if user.HouseholdID == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "user has no household"})
		return
	}
	householdID := *user.HouseholdID

	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("Failed to upgrade presence websocket: %v", err)
		return
	}
	defer conn.Close()

	ctx := c.Request.Context()
	if err := h.presenceService.Heartbeat(ctx, householdID, user.ID); err != nil {
		log.Printf("Presence heartbeat failed for user %s: %v", user.ID, err)
	}
	defer func() {
		if err := h.presenceService.Clear(ctx, householdID, user.ID); err != nil {
			log.Printf("Failed to clear presence for user %s: %v", user.ID, err)
		}
	}()

	// Reader goroutine just detects disconnects.
	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	ticker := time.NewTicker(30 * time.Second)
	defer ticker.Stop()

	var lastSent []string
	for {
		select {
		case <-done:
			return
		case <-ticker.C:
			if err := h.presenceService.Heartbeat(ctx, householdID, user.ID); err != nil {
				log.Printf("Presence heartbeat failed for user %s: %v", user.ID, err)
				continue
			}

			members, err := h.presenceService.OnlineMembers(ctx, householdID)
			if err != nil {
				continue
			}
			if sameMembers(members, lastSent) {
				continue
			}
			lastSent = members

			if err := conn.WriteJSON(gin.H{"online": members}); err != nil {
				return
			}
		}
	}
}

func sameMembers(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	seen := make(map[string]bool, len(a))
	for _, m := range a {
		seen[m] = true
	}
	for _, m := range b {
		if !seen[m] {
			return false
		}
	}
	return true
}
