package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/thomasnguyen/corgi-quest-sub001/internal/service"
	"github.com/thomasnguyen/corgi-quest-sub001/pkg/apperror"
	"github.com/thomasnguyen/corgi-quest-sub001/pkg/response"
)

type TipHandler struct {
	tipService service.TipService
}

func NewTipHandler(tipService service.TipService) *TipHandler {
	return &TipHandler{tipService: tipService}
}

// GetTip serves the summarized training article for a topic with the
// 1-hour-fresh / 24-hour-stale caching directive.
func (h *TipHandler) GetTip(c *gin.Context) {
	topic := c.Query("topic")

	tip, err := h.tipService.GetTip(c.Request.Context(), topic)
	if err != nil {
		if errors.Is(err, apperror.ErrUpstream) {
			response.ResponseUpstreamError(c, "tip-proxy", err)
			return
		}
		response.ResponseError(c, err)
		return
	}

	c.Header("Cache-Control", "public, max-age=3600, stale-while-revalidate=86400")
	c.JSON(http.StatusOK, tip)
}
