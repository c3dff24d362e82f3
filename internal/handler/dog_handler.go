package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/thomasnguyen/corgi-quest-sub001/internal/dto"
	"github.com/thomasnguyen/corgi-quest-sub001/internal/repository"
	"github.com/thomasnguyen/corgi-quest-sub001/internal/service"
	"github.com/thomasnguyen/corgi-quest-sub001/pkg/response"
	"github.com/thomasnguyen/corgi-quest-sub001/pkg/validator"
)

type DogHandler struct {
	dogService service.DogService
	userRepo   repository.UserRepository
	dogRepo    repository.DogRepository
}

func NewDogHandler(dogService service.DogService, userRepo repository.UserRepository, dogRepo repository.DogRepository) *DogHandler {
	return &DogHandler{
		dogService: dogService,
		userRepo:   userRepo,
		dogRepo:    dogRepo,
	}
}

func (h *DogHandler) CreateDog(c *gin.Context) {
	user, ok := currentUser(c, h.userRepo)
	if !ok {
		return
	}
	if user.HouseholdID == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "user has no household"})
		return
	}

	var req dto.CreateDogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": validator.FormatValidationError(err)})
		return
	}

	dog, err := h.dogService.CreateDog(c.Request.Context(), *user.HouseholdID, req)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dog)
}

// GetMyDog returns the household's dog for the home screen.
func (h *DogHandler) GetMyDog(c *gin.Context) {
	user, ok := currentUser(c, h.userRepo)
	if !ok {
		return
	}
	if user.HouseholdID == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "user has no household"})
		return
	}

	dog, err := h.dogService.GetHouseholdDog(c.Request.Context(), *user.HouseholdID)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	profile, err := h.dogService.GetProfile(c.Request.Context(), dog.ID)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, profile)
}

func (h *DogHandler) GetDogProfile(c *gin.Context) {
	dogID, _, ok := dogIDForUser(c, h.userRepo, h.dogRepo)
	if !ok {
		return
	}

	profile, err := h.dogService.GetProfile(c.Request.Context(), dogID)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, profile)
}

func (h *DogHandler) UploadPhoto(c *gin.Context) {
	dogID, _, ok := dogIDForUser(c, h.userRepo, h.dogRepo)
	if !ok {
		return
	}

	fileHeader, err := c.FormFile("photo")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "photo file is required"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "could not read uploaded file"})
		return
	}
	defer file.Close()

	url, err := h.dogService.UploadPhoto(c.Request.Context(), dogID, file, fileHeader.Filename)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"photo_url": url})
}
