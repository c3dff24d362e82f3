package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/thomasnguyen/corgi-quest-sub001/internal/model"
	"github.com/thomasnguyen/corgi-quest-sub001/internal/repository"
)

// currentUser loads the authenticated user and aborts with 401 when that fails.
func currentUser(c *gin.Context, userRepo repository.UserRepository) (*model.User, bool) {
	userID := c.GetString("user_id")
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return nil, false
	}

	user, err := userRepo.FindByID(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not found"})
		return nil, false
	}
	return user, true
}

// dogIDForUser parses :dog_id and verifies the user's household owns that dog.
func dogIDForUser(c *gin.Context, userRepo repository.UserRepository, dogRepo repository.DogRepository) (uuid.UUID, *model.User, bool) {
	user, ok := currentUser(c, userRepo)
	if !ok {
		return uuid.Nil, nil, false
	}

	dogID, err := uuid.Parse(c.Param("dog_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid dog ID"})
		return uuid.Nil, nil, false
	}

	dog, err := dogRepo.FindByID(c.Request.Context(), dogID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "dog not found"})
		return uuid.Nil, nil, false
	}

	if user.HouseholdID == nil || *user.HouseholdID != dog.HouseholdID {
		c.JSON(http.StatusForbidden, gin.H{"error": "dog belongs to another household"})
		return uuid.Nil, nil, false
	}

	return dogID, user, true
}
