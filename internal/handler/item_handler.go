package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/thomasnguyen/corgi-quest-sub001/internal/dto"
	"github.com/thomasnguyen/corgi-quest-sub001/internal/repository"
	"github.com/thomasnguyen/corgi-quest-sub001/internal/service"
	"github.com/thomasnguyen/corgi-quest-sub001/pkg/response"
	"github.com/thomasnguyen/corgi-quest-sub001/pkg/validator"
)

type ItemHandler struct {
	itemService service.ItemService
	userRepo    repository.UserRepository
	dogRepo     repository.DogRepository
}

func NewItemHandler(itemService service.ItemService, userRepo repository.UserRepository, dogRepo repository.DogRepository) *ItemHandler {
	return &ItemHandler{
		itemService: itemService,
		userRepo:    userRepo,
		dogRepo:     dogRepo,
	}
}

func (h *ItemHandler) GetCatalog(c *gin.Context) {
	items, err := h.itemService.GetCatalog(c.Request.Context())
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": items})
}

func (h *ItemHandler) GetUnlocks(c *gin.Context) {
	dogID, _, ok := dogIDForUser(c, h.userRepo, h.dogRepo)
	if !ok {
		return
	}

	unlocks, err := h.itemService.GetUnlocks(c.Request.Context(), dogID)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": unlocks})
}

func (h *ItemHandler) GetUnseenUnlocks(c *gin.Context) {
	dogID, _, ok := dogIDForUser(c, h.userRepo, h.dogRepo)
	if !ok {
		return
	}

	unlocks, err := h.itemService.GetUnseenUnlocks(c.Request.Context(), dogID)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": unlocks})
}

func (h *ItemHandler) AcknowledgeUnlocks(c *gin.Context) {
	dogID, _, ok := dogIDForUser(c, h.userRepo, h.dogRepo)
	if !ok {
		return
	}

	if err := h.itemService.AcknowledgeUnlocks(c.Request.Context(), dogID); err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "unlocks acknowledged"})
}

func (h *ItemHandler) Equip(c *gin.Context) {
	dogID, _, ok := dogIDForUser(c, h.userRepo, h.dogRepo)
	if !ok {
		return
	}

	var req dto.EquipItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": validator.FormatValidationError(err)})
		return
	}

	itemID, err := uuid.Parse(req.ItemID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid item ID"})
		return
	}

	equipped, err := h.itemService.Equip(c.Request.Context(), dogID, itemID)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, equipped)
}

func (h *ItemHandler) Unequip(c *gin.Context) {
	dogID, _, ok := dogIDForUser(c, h.userRepo, h.dogRepo)
	if !ok {
		return
	}

	slot := c.Param("slot")
	if slot == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "slot is required"})
		return
	}

	if err := h.itemService.Unequip(c.Request.Context(), dogID, slot); err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "item unequipped"})
}

func (h *ItemHandler) GetEquipped(c *gin.Context) {
	dogID, _, ok := dogIDForUser(c, h.userRepo, h.dogRepo)
	if !ok {
		return
	}

	equipped, err := h.itemService.GetEquipped(c.Request.Context(), dogID)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": equipped})
}
