package dto

type WaitlistSignupRequest struct {
	Email        string  `json:"email" binding:"required"`
	ReferralCode *string `json:"referral_code,omitempty"`
}

type WaitlistSignupResponse struct {
	Email         string `json:"email"`
	ReferralCode  string `json:"referral_code"`
	ReferralCount int    `json:"referral_count"`
	EarlyAccess   bool   `json:"early_access"`
	Position      int64  `json:"position"`
}

type SubscribeRequest struct {
	Email string `json:"email" binding:"required,email"`
}

type CheckoutRequest struct {
	AmountCents int64  `json:"amount_cents" binding:"required,gte=1"`
	CustomerRef string `json:"customer_ref" binding:"required"`
}

type CheckoutResponse struct {
	Status      string `json:"status"`
	SessionID   string `json:"session_id"`
	RedirectURL string `json:"redirect_url,omitempty"`
}
