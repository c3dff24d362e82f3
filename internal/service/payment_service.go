package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/thomasnguyen/corgi-quest-sub001/internal/dto"
)

type PaymentService interface {
	// Checkout returns an immediate synthetic success in sandbox mode or a
	// redirect URL to the hosted checkout in live mode. No retries.
	Checkout(ctx context.Context, req dto.CheckoutRequest) (*dto.CheckoutResponse, error)
}

type paymentService struct {
	mode            string
	checkoutBaseURL string
}

func NewPaymentService(mode, checkoutBaseURL string) PaymentService {
	return &paymentService{
		mode:            mode,
		checkoutBaseURL: checkoutBaseURL,
	}
}

func (s *paymentService) Checkout(ctx context.Context, req dto.CheckoutRequest) (*dto.CheckoutResponse, error) {
	sessionID := uuid.New().String()

	if s.mode == "live" {
		return &dto.CheckoutResponse{
			Status:    "pending",
			SessionID: sessionID,
			RedirectURL: fmt.Sprintf("%s?session=%s&amount=%d&customer=%s",
				s.checkoutBaseURL, sessionID, req.AmountCents, req.CustomerRef),
		}, nil
	}

	// Sandbox: no provider round-trip, payment just succeeds.
	return &dto.CheckoutResponse{
		Status:    "succeeded",
		SessionID: sessionID,
	}, nil
}
