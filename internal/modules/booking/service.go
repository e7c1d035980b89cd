package booking

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"resortbooking/internal/domain"
	"resortbooking/internal/repository"
)

type Service struct {
	bookings BookingRepository
	rooms    RoomRepository
}

func NewService(bookings BookingRepository, rooms RoomRepository) *Service {
	return &Service{bookings: bookings, rooms: rooms}
}

// Create validates the requested slots against the room and its current
// bookings, prices them and persists the booking in pending status.
func (s *Service) Create(ctx context.Context, userID int64, req CreateBookingRequest) (*domain.Booking, error) {
	slots, err := domain.ParseSlots(req.Slots)
	if err != nil {
		return nil, err
	}

	guests := req.Guests
	if guests <= 0 {
		guests = 1
	}

	room, err := s.rooms.GetActive(ctx, req.RoomID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NewNotFoundError("room")
		}
		return nil, err
	}

	if room.IsDayOnly && slots.HasNight() {
		return nil, domain.NewValidationError("slots", "this accommodation is available for day tours only")
	}
	if guests > room.Capacity {
		return nil, domain.NewValidationError("guests", fmt.Sprintf("this room fits max %d persons", room.Capacity))
	}

	if err := s.CheckSlotsFree(ctx, room.ID, slots, 0); err != nil {
		return nil, err
	}

	b := &domain.Booking{
		UserID:          userID,
		RoomID:          room.ID,
		Slots:           slots,
		CheckIn:         slots.MinDate(),
		CheckOut:        slots.MaxDate(),
		Guests:          guests,
		TotalPrice:      domain.PriceForSlots(room, slots),
		Status:          domain.BookingPending,
		SpecialRequests: req.SpecialRequests,
	}
	if err := s.bookings.Create(ctx, b); err != nil {
		if errors.Is(err, repository.ErrSlotTaken) {
			return nil, domain.NewValidationError("slots", "one of the requested slots was just booked for this room")
		}
		return nil, err
	}
	b.Room = room
	return b, nil
}

// CheckSlotsFree verifies that none of the requested slots collide with an
// active booking for the room. excludeID skips one booking, for edits.
func (s *Service) CheckSlotsFree(ctx context.Context, roomID int64, slots domain.SlotSet, excludeID int64) error {
	existing, err := s.bookings.FindActiveOverlapping(ctx, roomID, slots.MinDate(), slots.MaxDate(), excludeID)
	if err != nil {
		return err
	}

	occupied := make(map[string]struct{})
	for i := range existing {
		for _, sl := range existing[i].Slots {
			occupied[sl.Key()] = struct{}{}
		}
	}
	for _, sl := range slots {
		if _, taken := occupied[sl.Key()]; taken {
			return domain.NewValidationError("slots", fmt.Sprintf(
				"the %s slot on %s is already booked for this room",
				sl.Period, sl.Date.Format(domain.DateLayout),
			))
		}
	}
	return nil
}

func (s *Service) ListMine(ctx context.Context, userID int64) ([]domain.Booking, error) {
	return s.bookings.ListByUser(ctx, userID)
}

func (s *Service) Get(ctx context.Context, userID, bookingID int64) (*domain.Booking, error) {
	b, err := s.bookings.GetByIDForUser(ctx, bookingID, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NewNotFoundError("booking")
		}
		return nil, err
	}
	return b, nil
}

// Cancel lets the owner cancel a pending booking. Confirmed bookings already
// carry a payment and have to go through support.
func (s *Service) Cancel(ctx context.Context, userID, bookingID int64) error {
	b, err := s.Get(ctx, userID, bookingID)
	if err != nil {
		return err
	}

	switch b.Status {
	case domain.BookingPending:
		return s.bookings.SetStatus(ctx, b.ID, domain.BookingCancelled)
	case domain.BookingConfirmed:
		return ErrCancelConfirmed
	default:
		return domain.NewStateConflictError(fmt.Sprintf("booking is already %s", b.Status))
	}
}

// SetStatus applies an admin status change, enforcing the lifecycle rules.
// Confirmation is reserved for payment reconciliation, so admins may only
// cancel or complete here.
func (s *Service) SetStatus(ctx context.Context, bookingID int64, rawStatus string) (*domain.Booking, error) {
	next, ok := domain.ParseBookingStatus(rawStatus)
	if !ok {
		return nil, domain.NewValidationError("status", fmt.Sprintf("invalid status: %s", rawStatus))
	}
	if next != domain.BookingCancelled && next != domain.BookingCompleted {
		return nil, domain.NewValidationError("status", "bookings are confirmed through payment review, not directly")
	}

	b, err := s.bookings.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NewNotFoundError("booking")
		}
		return nil, err
	}
	if !b.Status.CanTransitionTo(next) {
		return nil, domain.NewStateConflictError(
			fmt.Sprintf("cannot change booking from %s to %s", b.Status, next))
	}
	if err := s.bookings.SetStatus(ctx, b.ID, next); err != nil {
		return nil, err
	}
	b.Status = next
	return b, nil
}
