package booking

import (
	"context"
	"time"

	"resortbooking/internal/domain"
)

// BookingRepository is the persistence surface the service needs.
type BookingRepository interface {
	Create(ctx context.Context, b *domain.Booking) error
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	GetByIDForUser(ctx context.Context, id, userID int64) (*domain.Booking, error)
	ListByUser(ctx context.Context, userID int64) ([]domain.Booking, error)
	FindActiveOverlapping(ctx context.Context, roomID int64, from, to time.Time, excludeID int64) ([]domain.Booking, error)
	SetStatus(ctx context.Context, bookingID int64, next domain.BookingStatus) error
}

// RoomRepository exposes the read-only room catalog.
type RoomRepository interface {
	GetActive(ctx context.Context, id int64) (*domain.Room, error)
}
