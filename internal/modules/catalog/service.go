package catalog

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"resortbooking/internal/domain"
	"resortbooking/internal/repository"
)

type Service struct {
	rooms    RoomRepository
	bookings BookingRepository
}

func NewService(rooms RoomRepository, bookings BookingRepository) *Service {
	return &Service{rooms: rooms, bookings: bookings}
}

func (s *Service) ListRooms(ctx context.Context, f repository.RoomFilter) ([]domain.Room, error) {
	return s.rooms.List(ctx, f)
}

func (s *Service) GetRoom(ctx context.Context, id int64) (*domain.Room, error) {
	room, err := s.rooms.GetActive(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NewNotFoundError("room")
		}
		return nil, err
	}
	return room, nil
}

// RoomAvailability returns the occupied (date, period) pairs of one room,
// plus coarse check-in/check-out ranges for calendar rendering.
func (s *Service) RoomAvailability(ctx context.Context, roomID int64) (*RoomAvailability, error) {
	room, err := s.GetRoom(ctx, roomID)
	if err != nil {
		return nil, err
	}
	active, err := s.bookings.ListActiveByRoom(ctx, room.ID)
	if err != nil {
		return nil, err
	}
	av := availabilityFor(room, active)
	return &av, nil
}

// AllAvailability returns the availability of every active room in one
// response, so the booking page needs a single request.
func (s *Service) AllAvailability(ctx context.Context) ([]RoomAvailability, error) {
	rooms, err := s.rooms.List(ctx, repository.RoomFilter{})
	if err != nil {
		return nil, err
	}

	out := make([]RoomAvailability, 0, len(rooms))
	for i := range rooms {
		active, err := s.bookings.ListActiveByRoom(ctx, rooms[i].ID)
		if err != nil {
			return nil, err
		}
		out = append(out, availabilityFor(&rooms[i], active))
	}
	return out, nil
}
