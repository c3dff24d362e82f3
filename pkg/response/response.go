package response

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/thomasnguyen/corgi-quest-sub001/pkg/apperror"
)

// GetUserID retrieves the authenticated user ID from the context
func GetUserID(c *gin.Context) (uuid.UUID, error) {
	userIDStr, exists := c.Get("user_id")
	if !exists {
		return uuid.Nil, apperror.ErrUnauthorized
	}

	userID, err := uuid.Parse(userIDStr.(string))
	if err != nil {
		return uuid.Nil, apperror.ErrUnauthorized
	}

	return userID, nil
}

// ResponseError standardized error response
func ResponseError(c *gin.Context, err error) {
	code := apperror.MapErrorToStatus(err)

	// Log internal errors
	if code == http.StatusInternalServerError {
		log.Printf("[Internal Error]: %v", err)
	}

	c.JSON(code, gin.H{"error": err.Error()})
}

// ResponseUpstreamError emits the structured payload used for third-party
// call failures: the caller gets the upstream name plus the message and can
// show a retry affordance.
func ResponseUpstreamError(c *gin.Context, upstream string, err error) {
	c.JSON(http.StatusBadGateway, gin.H{
		"error":    "upstream service failed",
		"upstream": upstream,
		"message":  err.Error(),
	})
}
