package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/thomasnguyen/corgi-quest-sub001/internal/repository"
	"github.com/thomasnguyen/corgi-quest-sub001/internal/service"
	"github.com/thomasnguyen/corgi-quest-sub001/pkg/response"
)

type RecommendationHandler struct {
	recService service.RecommendationService
	userRepo   repository.UserRepository
	dogRepo    repository.DogRepository
}

func NewRecommendationHandler(recService service.RecommendationService, userRepo repository.UserRepository, dogRepo repository.DogRepository) *RecommendationHandler {
	return &RecommendationHandler{
		recService: recService,
		userRepo:   userRepo,
		dogRepo:    dogRepo,
	}
}

func (h *RecommendationHandler) GetRecommendations(c *gin.Context) {
	dogID, _, ok := dogIDForUser(c, h.userRepo, h.dogRepo)
	if !ok {
		return
	}

	resp, err := h.recService.GetRecommendations(c.Request.Context(), dogID)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
