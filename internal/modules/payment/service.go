package payment

import (
	"context"
	"errors"
	"log"
	"math"
	"mime/multipart"

	"gorm.io/gorm"

	"resortbooking/internal/domain"
)

const proofBucket = "payment_proofs"

type Service struct {
	payments PaymentRepository
	bookings BookingRepository
	files    FileStore
	gateway  Gateway
	currency string
}

func NewService(payments PaymentRepository, bookings BookingRepository, files FileStore, gateway Gateway, currency string) *Service {
	if currency == "" {
		currency = "php"
	}
	return &Service{
		payments: payments,
		bookings: bookings,
		files:    files,
		gateway:  gateway,
		currency: currency,
	}
}

// SubmitProof records a manual proof-of-payment upload for the caller's
// booking. The payment stays pending until an admin reviews it.
func (s *Service) SubmitProof(ctx context.Context, userID int64, req SubmitProofRequest, file *multipart.FileHeader) (*domain.Payment, error) {
	b, err := s.ownedBooking(ctx, req.BookingID, userID)
	if err != nil {
		return nil, err
	}
	if b.Status != domain.BookingPending {
		return nil, domain.NewStateConflictError("booking is not awaiting payment")
	}

	if _, err := s.payments.GetByBookingID(ctx, b.ID); err == nil {
		return nil, domain.NewStateConflictError("a payment was already submitted for this booking")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	if file == nil {
		return nil, domain.NewValidationError("proof_of_payment", "proof of payment file is required")
	}
	url, err := s.files.Save(proofBucket, file)
	if err != nil {
		return nil, domain.NewValidationError("proof_of_payment", err.Error())
	}

	p := &domain.Payment{
		BookingID:     b.ID,
		Amount:        b.TotalPrice,
		Currency:      s.currency,
		Status:        domain.PaymentPending,
		ReferenceCode: req.ReferenceCode,
		ProofURL:      url,
	}
	if err := s.payments.Create(ctx, p); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, domain.NewStateConflictError("a payment was already submitted for this booking")
		}
		return nil, err
	}
	return p, nil
}

// ReviewProof applies an admin decision on a manual proof payment.
// Approving marks it succeeded and confirms the booking.
func (s *Service) ReviewProof(ctx context.Context, paymentID int64, approve bool) (*domain.Payment, error) {
	p, err := s.payments.GetByID(ctx, paymentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NewNotFoundError("payment")
		}
		return nil, err
	}
	if !p.IsManualProof() {
		return nil, domain.NewStateConflictError("gateway payments are reconciled automatically")
	}

	if approve {
		if p.Status != domain.PaymentSucceeded {
			if err := s.payments.SetStatus(ctx, p.ID, domain.PaymentSucceeded); err != nil {
				return nil, err
			}
		}
		if _, err := s.bookings.ConfirmIfPending(ctx, p.BookingID); err != nil {
			return nil, err
		}
		p.Status = domain.PaymentSucceeded
		return p, nil
	}

	if p.Status == domain.PaymentSucceeded {
		return nil, domain.NewStateConflictError("payment has already succeeded")
	}
	if err := s.payments.SetStatus(ctx, p.ID, domain.PaymentFailed); err != nil {
		return nil, err
	}
	p.Status = domain.PaymentFailed
	return p, nil
}

// CreateIntent opens (or refreshes) a gateway payment intent for the
// caller's pending booking and records the pending payment row.
func (s *Service) CreateIntent(ctx context.Context, userID, bookingID int64) (*IntentResponse, error) {
	b, err := s.ownedBooking(ctx, bookingID, userID)
	if err != nil {
		return nil, err
	}
	if b.Status != domain.BookingPending {
		return nil, domain.NewStateConflictError("booking is not awaiting payment")
	}

	if existing, err := s.payments.GetByBookingID(ctx, b.ID); err == nil {
		if existing.Status == domain.PaymentSucceeded {
			return nil, domain.NewStateConflictError("payment has already succeeded")
		}
		if existing.IsManualProof() {
			return nil, domain.NewStateConflictError("a manual payment is already under review for this booking")
		}
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	amountCents := int64(math.Round(b.TotalPrice * 100))
	intent, err := s.gateway.CreateIntent(ctx, b.ID, amountCents, s.currency)
	if err != nil {
		return nil, err
	}

	p := &domain.Payment{
		BookingID:     b.ID,
		Amount:        b.TotalPrice,
		Currency:      s.currency,
		Status:        domain.PaymentPending,
		ReferenceCode: intent.ID,
		IntentID:      &intent.ID,
	}
	if err := s.payments.Upsert(ctx, p); err != nil {
		return nil, err
	}

	return &IntentResponse{
		IntentID:     intent.ID,
		ClientSecret: intent.ClientSecret,
		Amount:       b.TotalPrice,
		Currency:     s.currency,
	}, nil
}

// HandleWebhook reconciles a verified gateway notification. Events for
// unknown bookings are acknowledged and logged; replays are harmless
// because reconciliation upserts the single payment row.
func (s *Service) HandleWebhook(ctx context.Context, payload []byte, sigHeader string) error {
	ev, err := s.gateway.ParseEvent(payload, sigHeader)
	if err != nil {
		return err
	}

	switch ev.Type {
	case EventIntentSucceeded:
		return s.reconcile(ctx, ev.Intent, domain.PaymentSucceeded)
	case EventIntentFailed:
		return s.reconcile(ctx, ev.Intent, domain.PaymentFailed)
	default:
		return nil
	}
}

// ConfirmByPoll asks the gateway for the intent's current state, for
// clients that cannot wait for the webhook. It reconciles on success.
func (s *Service) ConfirmByPoll(ctx context.Context, userID, bookingID int64) (*ConfirmResult, error) {
	b, err := s.ownedBooking(ctx, bookingID, userID)
	if err != nil {
		return nil, err
	}

	p, err := s.payments.GetByBookingID(ctx, b.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NewStateConflictError("no payment has been started for this booking")
		}
		return nil, err
	}
	if p.IsManualProof() {
		return nil, domain.NewStateConflictError("manual payments are confirmed by admin review")
	}

	intent, err := s.gateway.RetrieveIntent(ctx, *p.IntentID)
	if err != nil {
		return nil, err
	}
	intent.BookingID = b.ID

	bookingStatus := b.Status
	switch intent.Status {
	case IntentSucceeded:
		if err := s.reconcile(ctx, intent, domain.PaymentSucceeded); err != nil {
			return nil, err
		}
		p.Status = domain.PaymentSucceeded
		bookingStatus = domain.BookingConfirmed
	case IntentFailed:
		if err := s.reconcile(ctx, intent, domain.PaymentFailed); err != nil {
			return nil, err
		}
		p.Status = domain.PaymentFailed
	}

	return &ConfirmResult{Payment: toView(p), BookingStatus: string(bookingStatus)}, nil
}

func (s *Service) reconcile(ctx context.Context, intent *Intent, status domain.PaymentStatus) error {
	b, err := s.bookings.GetByID(ctx, intent.BookingID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			log.Printf("Gateway event for unknown booking %d (intent %s), acknowledging", intent.BookingID, intent.ID)
			return nil
		}
		return err
	}

	amount := b.TotalPrice
	if intent.AmountCents > 0 {
		amount = float64(intent.AmountCents) / 100
	}
	currency := s.currency
	if intent.Currency != "" {
		currency = intent.Currency
	}

	p := &domain.Payment{
		BookingID:     b.ID,
		Amount:        amount,
		Currency:      currency,
		Status:        status,
		ReferenceCode: intent.ID,
		IntentID:      &intent.ID,
	}
	if err := s.payments.Upsert(ctx, p); err != nil {
		return err
	}

	if status == domain.PaymentSucceeded {
		confirmed, err := s.bookings.ConfirmIfPending(ctx, b.ID)
		if err != nil {
			return err
		}
		if confirmed {
			log.Printf("Booking %d confirmed by gateway payment %s", b.ID, intent.ID)
		}
	}
	return nil
}

func (s *Service) ownedBooking(ctx context.Context, bookingID, userID int64) (*domain.Booking, error) {
	b, err := s.bookings.GetByIDForUser(ctx, bookingID, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NewNotFoundError("booking")
		}
		return nil, err
	}
	return b, nil
}
