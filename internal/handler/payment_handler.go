package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/thomasnguyen/corgi-quest-sub001/internal/dto"
	"github.com/thomasnguyen/corgi-quest-sub001/internal/service"
	"github.com/thomasnguyen/corgi-quest-sub001/pkg/response"
	"github.com/thomasnguyen/corgi-quest-sub001/pkg/validator"
)

type PaymentHandler struct {
	paymentService service.PaymentService
}

func NewPaymentHandler(paymentService service.PaymentService) *PaymentHandler {
	return &PaymentHandler{paymentService: paymentService}
}

func (h *PaymentHandler) Checkout(c *gin.Context) {
	var req dto.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": validator.FormatValidationError(err)})
		return
	}

	resp, err := h.paymentService.Checkout(c.Request.Context(), req)
	if err != nil {
		response.ResponseUpstreamError(c, "payment", err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
