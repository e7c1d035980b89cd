package payment

import (
	"context"
	"mime/multipart"

	"resortbooking/internal/domain"
)

type PaymentRepository interface {
	Create(ctx context.Context, p *domain.Payment) error
	GetByID(ctx context.Context, id int64) (*domain.Payment, error)
	GetByBookingID(ctx context.Context, bookingID int64) (*domain.Payment, error)
	Upsert(ctx context.Context, p *domain.Payment) error
	SetStatus(ctx context.Context, paymentID int64, status domain.PaymentStatus) error
}

type BookingRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	GetByIDForUser(ctx context.Context, id, userID int64) (*domain.Booking, error)
	ConfirmIfPending(ctx context.Context, bookingID int64) (bool, error)
}

// FileStore persists uploaded proof images and returns their public URL.
type FileStore interface {
	Save(bucket string, fileHeader *multipart.FileHeader) (string, error)
}

type IntentStatus string

const (
	IntentSucceeded  IntentStatus = "succeeded"
	IntentProcessing IntentStatus = "processing"
	IntentFailed     IntentStatus = "failed"
)

// Intent is a provider-neutral view of a payment intent.
type Intent struct {
	ID           string
	ClientSecret string
	Status       IntentStatus
	AmountCents  int64
	Currency     string
	BookingID    int64
}

type EventType string

const (
	EventIntentSucceeded EventType = "intent_succeeded"
	EventIntentFailed    EventType = "intent_failed"
	EventIgnored         EventType = "ignored"
)

// Event is a verified, decoded webhook notification.
type Event struct {
	Type   EventType
	Intent *Intent
}

// Gateway abstracts the card payment provider.
type Gateway interface {
	CreateIntent(ctx context.Context, bookingID, amountCents int64, currency string) (*Intent, error)
	RetrieveIntent(ctx context.Context, intentID string) (*Intent, error)
	ParseEvent(payload []byte, sigHeader string) (*Event, error)
}
