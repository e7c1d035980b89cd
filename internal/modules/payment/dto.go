package payment

import (
	"time"

	"resortbooking/internal/domain"
)

type SubmitProofRequest struct {
	BookingID     int64  `form:"booking_id" binding:"required"`
	ReferenceCode string `form:"reference_code"`
}

type CreateIntentRequest struct {
	BookingID int64 `json:"booking_id" binding:"required"`
}

type ReviewRequest struct {
	Action string `json:"action" binding:"required,oneof=approve reject"`
}

type IntentResponse struct {
	IntentID     string  `json:"intent_id"`
	ClientSecret string  `json:"client_secret"`
	Amount       float64 `json:"amount"`
	Currency     string  `json:"currency"`
}

type PaymentView struct {
	ID            int64     `json:"id"`
	BookingID     int64     `json:"booking_id"`
	Amount        float64   `json:"amount"`
	Currency      string    `json:"currency"`
	Status        string    `json:"status"`
	ReferenceCode string    `json:"reference_code,omitempty"`
	ProofURL      string    `json:"proof_url,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

type ConfirmResult struct {
	Payment       PaymentView `json:"payment"`
	BookingStatus string      `json:"booking_status"`
}

func toView(p *domain.Payment) PaymentView {
	return PaymentView{
		ID:            p.ID,
		BookingID:     p.BookingID,
		Amount:        p.Amount,
		Currency:      p.Currency,
		Status:        string(p.Status),
		ReferenceCode: p.ReferenceCode,
		ProofURL:      p.ProofURL,
		CreatedAt:     p.CreatedAt,
	}
}
