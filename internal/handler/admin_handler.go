package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/thomasnguyen/corgi-quest-sub001/internal/agent"
	"github.com/thomasnguyen/corgi-quest-sub001/internal/service"
	"github.com/thomasnguyen/corgi-quest-sub001/pkg/response"
)

type AdminHandler struct {
	resetService service.ResetService
	scheduler    *agent.Scheduler
}

func NewAdminHandler(resetService service.ResetService, scheduler *agent.Scheduler) *AdminHandler {
	return &AdminHandler{
		resetService: resetService,
		scheduler:    scheduler,
	}
}

// RunDailyReset triggers the reset job outside its cron window.
func (h *AdminHandler) RunDailyReset(c *gin.Context) {
	summary, err := h.resetService.RunDailyReset(c.Request.Context())
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, summary)
}

func (h *AdminHandler) RunAgent(c *gin.Context) {
	name := c.Param("name")
	if err := h.scheduler.RunAgentByName(c.Request.Context(), name); err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "agent executed", "agent": name})
}

func (h *AdminHandler) ListAgents(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"agents": h.scheduler.GetRegisteredAgents()})
}
