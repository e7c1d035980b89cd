package catalog

import (
	"context"

	"resortbooking/internal/domain"
	"resortbooking/internal/repository"
)

type RoomRepository interface {
	List(ctx context.Context, f repository.RoomFilter) ([]domain.Room, error)
	GetActive(ctx context.Context, id int64) (*domain.Room, error)
}

type BookingRepository interface {
	ListActiveByRoom(ctx context.Context, roomID int64) ([]domain.Booking, error)
}
