package domain

import "time"

type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "pending"
	PaymentSucceeded PaymentStatus = "succeeded"
	PaymentFailed    PaymentStatus = "failed"
	PaymentRefunded  PaymentStatus = "refunded"
)

// Payment is the single payment record of a booking. The unique index on
// booking_id enforces at-most-one row per booking; gateway notifications
// for the same booking upsert this row instead of multiplying it.
type Payment struct {
	ID            int64         `gorm:"primaryKey" json:"id"`
	BookingID     int64         `gorm:"uniqueIndex;not null" json:"booking_id"`
	Amount        float64       `gorm:"not null" json:"amount"`
	Currency      string        `gorm:"type:varchar(3);default:'php'" json:"currency"`
	Status        PaymentStatus `gorm:"type:varchar(20);default:'pending';index" json:"status"`
	ReferenceCode string        `gorm:"type:varchar(200)" json:"reference_code,omitempty"`
	ProofURL      string        `gorm:"type:text" json:"proof_url,omitempty"`
	IntentID      *string       `gorm:"type:varchar(200);index" json:"intent_id,omitempty"`
	CreatedAt     time.Time     `json:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at"`
}

func (Payment) TableName() string { return "payments" }

// IsManualProof reports whether this payment came from the proof-of-payment
// flow (reviewed by a human) rather than the gateway.
func (p *Payment) IsManualProof() bool {
	return p.IntentID == nil
}
