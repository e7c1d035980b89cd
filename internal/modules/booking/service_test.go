package booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"resortbooking/internal/domain"
	"resortbooking/internal/repository"
)

// Mock repositories
type MockBookingRepository struct {
	mock.Mock
}

func (m *MockBookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	args := m.Called(ctx, b)
	if b != nil {
		b.ID = 999 // simulate DB insert
	}
	return args.Error(0)
}

func (m *MockBookingRepository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

func (m *MockBookingRepository) GetByIDForUser(ctx context.Context, id, userID int64) (*domain.Booking, error) {
	args := m.Called(ctx, id, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

func (m *MockBookingRepository) ListByUser(ctx context.Context, userID int64) ([]domain.Booking, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Booking), args.Error(1)
}

func (m *MockBookingRepository) FindActiveOverlapping(ctx context.Context, roomID int64, from, to time.Time, excludeID int64) ([]domain.Booking, error) {
	args := m.Called(ctx, roomID, from, to, excludeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Booking), args.Error(1)
}

func (m *MockBookingRepository) SetStatus(ctx context.Context, bookingID int64, next domain.BookingStatus) error {
	args := m.Called(ctx, bookingID, next)
	return args.Error(0)
}

type MockRoomRepository struct {
	mock.Mock
}

func (m *MockRoomRepository) GetActive(ctx context.Context, id int64) (*domain.Room, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Room), args.Error(1)
}

func testRoom() *domain.Room {
	night := 1500.0
	return &domain.Room{
		ID:         10,
		Name:       "Lavender House",
		RoomType:   domain.RoomLavenderHouse,
		DayPrice:   1000,
		NightPrice: &night,
		Capacity:   4,
		IsActive:   true,
	}
}

func slotInputs(pairs ...string) []domain.SlotInput {
	out := make([]domain.SlotInput, 0, len(pairs)/2)
	for i := 0; i+1 < len(pairs); i += 2 {
		out = append(out, domain.SlotInput{Date: pairs[i], Slot: pairs[i+1]})
	}
	return out
}

func TestService_Create_Success(t *testing.T) {
	mockBookings := new(MockBookingRepository)
	mockRooms := new(MockRoomRepository)

	mockRooms.On("GetActive", mock.Anything, int64(10)).Return(testRoom(), nil)
	mockBookings.On("FindActiveOverlapping", mock.Anything, int64(10), mock.Anything, mock.Anything, int64(0)).
		Return([]domain.Booking{}, nil)
	mockBookings.On("Create", mock.Anything, mock.Anything).Return(nil)

	service := NewService(mockBookings, mockRooms)

	b, err := service.Create(context.Background(), 7, CreateBookingRequest{
		RoomID: 10,
		Slots:  slotInputs("2026-09-02", "night", "2026-09-01", "day"),
		Guests: 2,
	})

	assert.NoError(t, err)
	assert.NotNil(t, b)
	assert.Equal(t, 2500.0, b.TotalPrice)
	assert.Equal(t, domain.BookingPending, b.Status)
	assert.Equal(t, "2026-09-01", b.CheckIn.Format(domain.DateLayout))
	assert.Equal(t, "2026-09-02", b.CheckOut.Format(domain.DateLayout))
	mockBookings.AssertExpectations(t)
}

func TestService_Create_DefaultsGuestsToOne(t *testing.T) {
	mockBookings := new(MockBookingRepository)
	mockRooms := new(MockRoomRepository)

	mockRooms.On("GetActive", mock.Anything, int64(10)).Return(testRoom(), nil)
	mockBookings.On("FindActiveOverlapping", mock.Anything, int64(10), mock.Anything, mock.Anything, int64(0)).
		Return([]domain.Booking{}, nil)
	mockBookings.On("Create", mock.Anything, mock.Anything).Return(nil)

	service := NewService(mockBookings, mockRooms)

	b, err := service.Create(context.Background(), 7, CreateBookingRequest{
		RoomID: 10,
		Slots:  slotInputs("2026-09-01", "day"),
	})

	assert.NoError(t, err)
	assert.Equal(t, 1, b.Guests)
}

func TestService_Create_SlotAlreadyBooked(t *testing.T) {
	mockBookings := new(MockBookingRepository)
	mockRooms := new(MockRoomRepository)

	existing := domain.Booking{
		ID:     3,
		RoomID: 10,
		Status: domain.BookingConfirmed,
		Slots: domain.SlotSet{
			{Date: time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC), Period: domain.SlotDay},
		},
	}
	mockRooms.On("GetActive", mock.Anything, int64(10)).Return(testRoom(), nil)
	mockBookings.On("FindActiveOverlapping", mock.Anything, int64(10), mock.Anything, mock.Anything, int64(0)).
		Return([]domain.Booking{existing}, nil)

	service := NewService(mockBookings, mockRooms)

	_, err := service.Create(context.Background(), 7, CreateBookingRequest{
		RoomID: 10,
		Slots:  slotInputs("2026-09-01", "day"),
	})

	var ve *domain.ValidationError
	assert.ErrorAs(t, err, &ve)
	assert.Equal(t, "slots", ve.Field)
	assert.Equal(t, "the day slot on 2026-09-01 is already booked for this room", ve.Message)
	mockBookings.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestService_Create_SameDateDifferentPeriodOK(t *testing.T) {
	mockBookings := new(MockBookingRepository)
	mockRooms := new(MockRoomRepository)

	existing := domain.Booking{
		ID:     3,
		RoomID: 10,
		Status: domain.BookingPending,
		Slots: domain.SlotSet{
			{Date: time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC), Period: domain.SlotDay},
		},
	}
	mockRooms.On("GetActive", mock.Anything, int64(10)).Return(testRoom(), nil)
	mockBookings.On("FindActiveOverlapping", mock.Anything, int64(10), mock.Anything, mock.Anything, int64(0)).
		Return([]domain.Booking{existing}, nil)
	mockBookings.On("Create", mock.Anything, mock.Anything).Return(nil)

	service := NewService(mockBookings, mockRooms)

	b, err := service.Create(context.Background(), 7, CreateBookingRequest{
		RoomID: 10,
		Slots:  slotInputs("2026-09-01", "night"),
	})

	assert.NoError(t, err)
	assert.Equal(t, 1500.0, b.TotalPrice)
}

func TestService_Create_DayOnlyRoomRejectsNight(t *testing.T) {
	mockBookings := new(MockBookingRepository)
	mockRooms := new(MockRoomRepository)

	room := testRoom()
	room.IsDayOnly = true
	room.NightPrice = nil
	mockRooms.On("GetActive", mock.Anything, int64(10)).Return(room, nil)

	service := NewService(mockBookings, mockRooms)

	_, err := service.Create(context.Background(), 7, CreateBookingRequest{
		RoomID: 10,
		Slots:  slotInputs("2026-09-01", "night"),
	})

	var ve *domain.ValidationError
	assert.ErrorAs(t, err, &ve)
	assert.Equal(t, "this accommodation is available for day tours only", ve.Message)
}

func TestService_Create_CapacityExceeded(t *testing.T) {
	mockBookings := new(MockBookingRepository)
	mockRooms := new(MockRoomRepository)

	mockRooms.On("GetActive", mock.Anything, int64(10)).Return(testRoom(), nil)

	service := NewService(mockBookings, mockRooms)

	_, err := service.Create(context.Background(), 7, CreateBookingRequest{
		RoomID: 10,
		Slots:  slotInputs("2026-09-01", "day"),
		Guests: 5,
	})

	var ve *domain.ValidationError
	assert.ErrorAs(t, err, &ve)
	assert.Equal(t, "guests", ve.Field)
	assert.Equal(t, "this room fits max 4 persons", ve.Message)
}

func TestService_Create_RoomNotFound(t *testing.T) {
	mockBookings := new(MockBookingRepository)
	mockRooms := new(MockRoomRepository)

	mockRooms.On("GetActive", mock.Anything, int64(77)).Return(nil, gorm.ErrRecordNotFound)

	service := NewService(mockBookings, mockRooms)

	_, err := service.Create(context.Background(), 7, CreateBookingRequest{
		RoomID: 77,
		Slots:  slotInputs("2026-09-01", "day"),
	})

	var nf *domain.NotFoundError
	assert.ErrorAs(t, err, &nf)
}

func TestService_Create_RaceLostAtInsert(t *testing.T) {
	mockBookings := new(MockBookingRepository)
	mockRooms := new(MockRoomRepository)

	mockRooms.On("GetActive", mock.Anything, int64(10)).Return(testRoom(), nil)
	mockBookings.On("FindActiveOverlapping", mock.Anything, int64(10), mock.Anything, mock.Anything, int64(0)).
		Return([]domain.Booking{}, nil)
	mockBookings.On("Create", mock.Anything, mock.Anything).Return(repository.ErrSlotTaken)

	service := NewService(mockBookings, mockRooms)

	_, err := service.Create(context.Background(), 7, CreateBookingRequest{
		RoomID: 10,
		Slots:  slotInputs("2026-09-01", "day"),
	})

	var ve *domain.ValidationError
	assert.ErrorAs(t, err, &ve)
	assert.Equal(t, "slots", ve.Field)
}

func TestService_Cancel_Pending(t *testing.T) {
	mockBookings := new(MockBookingRepository)
	mockRooms := new(MockRoomRepository)

	b := &domain.Booking{ID: 5, UserID: 7, Status: domain.BookingPending}
	mockBookings.On("GetByIDForUser", mock.Anything, int64(5), int64(7)).Return(b, nil)
	mockBookings.On("SetStatus", mock.Anything, int64(5), domain.BookingCancelled).Return(nil)

	service := NewService(mockBookings, mockRooms)

	err := service.Cancel(context.Background(), 7, 5)
	assert.NoError(t, err)
	mockBookings.AssertExpectations(t)
}

func TestService_Cancel_ConfirmedNeedsSupport(t *testing.T) {
	mockBookings := new(MockBookingRepository)
	mockRooms := new(MockRoomRepository)

	b := &domain.Booking{ID: 5, UserID: 7, Status: domain.BookingConfirmed}
	mockBookings.On("GetByIDForUser", mock.Anything, int64(5), int64(7)).Return(b, nil)

	service := NewService(mockBookings, mockRooms)

	err := service.Cancel(context.Background(), 7, 5)
	var sc *domain.StateConflictError
	assert.ErrorAs(t, err, &sc)
	assert.Equal(t, "cannot cancel a confirmed booking with payment, contact support", sc.Message)
	mockBookings.AssertNotCalled(t, "SetStatus", mock.Anything, mock.Anything, mock.Anything)
}

func TestService_Cancel_NotOwned(t *testing.T) {
	mockBookings := new(MockBookingRepository)
	mockRooms := new(MockRoomRepository)

	mockBookings.On("GetByIDForUser", mock.Anything, int64(5), int64(8)).Return(nil, gorm.ErrRecordNotFound)

	service := NewService(mockBookings, mockRooms)

	err := service.Cancel(context.Background(), 8, 5)
	var nf *domain.NotFoundError
	assert.ErrorAs(t, err, &nf)
}

func TestService_SetStatus_AdminCompletesConfirmed(t *testing.T) {
	mockBookings := new(MockBookingRepository)
	mockRooms := new(MockRoomRepository)

	b := &domain.Booking{ID: 5, Status: domain.BookingConfirmed}
	mockBookings.On("GetByID", mock.Anything, int64(5)).Return(b, nil)
	mockBookings.On("SetStatus", mock.Anything, int64(5), domain.BookingCompleted).Return(nil)

	service := NewService(mockBookings, mockRooms)

	updated, err := service.SetStatus(context.Background(), 5, "completed")
	assert.NoError(t, err)
	assert.Equal(t, domain.BookingCompleted, updated.Status)
}

func TestService_SetStatus_DirectConfirmRejected(t *testing.T) {
	service := NewService(new(MockBookingRepository), new(MockRoomRepository))

	_, err := service.SetStatus(context.Background(), 5, "confirmed")
	var ve *domain.ValidationError
	assert.ErrorAs(t, err, &ve)
	assert.Equal(t, "status", ve.Field)
}

func TestService_SetStatus_RejectsTerminalMove(t *testing.T) {
	mockBookings := new(MockBookingRepository)
	mockRooms := new(MockRoomRepository)

	b := &domain.Booking{ID: 5, Status: domain.BookingCancelled}
	mockBookings.On("GetByID", mock.Anything, int64(5)).Return(b, nil)

	service := NewService(mockBookings, mockRooms)

	_, err := service.SetStatus(context.Background(), 5, "completed")
	var sc *domain.StateConflictError
	assert.ErrorAs(t, err, &sc)
}

func TestService_SetStatus_InvalidValue(t *testing.T) {
	service := NewService(new(MockBookingRepository), new(MockRoomRepository))

	_, err := service.SetStatus(context.Background(), 5, "archived")
	var ve *domain.ValidationError
	assert.ErrorAs(t, err, &ve)
	assert.Equal(t, "status", ve.Field)
}
