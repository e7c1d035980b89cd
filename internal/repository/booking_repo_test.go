package repository

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resortbooking/internal/database"
	"resortbooking/internal/domain"
)

func setupDB(t *testing.T) *BookingRepository {
	t.Helper()
	db, err := database.Connect(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	return NewBookingRepository(db)
}

func makeBooking(t *testing.T, userID int64, dates ...string) *domain.Booking {
	t.Helper()
	in := make([]domain.SlotInput, 0, len(dates)/2)
	for i := 0; i+1 < len(dates); i += 2 {
		in = append(in, domain.SlotInput{Date: dates[i], Slot: dates[i+1]})
	}
	slots, err := domain.ParseSlots(in)
	require.NoError(t, err)
	return &domain.Booking{
		UserID:     userID,
		RoomID:     1,
		Slots:      slots,
		CheckIn:    slots.MinDate(),
		CheckOut:   slots.MaxDate(),
		Guests:     2,
		TotalPrice: 1000,
		Status:     domain.BookingPending,
	}
}

func TestBookingRepository_Create_RejectsTakenSlot(t *testing.T) {
	repo := setupDB(t)
	ctx := context.Background()

	first := makeBooking(t, 1, "2026-09-01", "day", "2026-09-01", "night")
	require.NoError(t, repo.Create(ctx, first))

	// Same room, same date, one colliding period.
	second := makeBooking(t, 2, "2026-09-01", "night", "2026-09-02", "day")
	err := repo.Create(ctx, second)
	assert.ErrorIs(t, err, ErrSlotTaken)

	// The losing transaction must not leave a partial booking behind.
	if second.ID != 0 {
		_, err = repo.GetByID(ctx, second.ID)
		assert.Error(t, err)
	}
}

func TestBookingRepository_Create_DifferentPeriodsCoexist(t *testing.T) {
	repo := setupDB(t)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, makeBooking(t, 1, "2026-09-01", "day")))
	assert.NoError(t, repo.Create(ctx, makeBooking(t, 2, "2026-09-01", "night")))
}

func TestBookingRepository_CancelFreesSlots(t *testing.T) {
	repo := setupDB(t)
	ctx := context.Background()

	first := makeBooking(t, 1, "2026-09-01", "day")
	require.NoError(t, repo.Create(ctx, first))

	// Occupied while pending.
	assert.ErrorIs(t, repo.Create(ctx, makeBooking(t, 2, "2026-09-01", "day")), ErrSlotTaken)

	require.NoError(t, repo.SetStatus(ctx, first.ID, domain.BookingCancelled))

	// Cancelling released the slot for rebooking.
	assert.NoError(t, repo.Create(ctx, makeBooking(t, 2, "2026-09-01", "day")))
}

func TestBookingRepository_ConfirmIfPending(t *testing.T) {
	repo := setupDB(t)
	ctx := context.Background()

	b := makeBooking(t, 1, "2026-09-01", "day")
	require.NoError(t, repo.Create(ctx, b))

	changed, err := repo.ConfirmIfPending(ctx, b.ID)
	assert.NoError(t, err)
	assert.True(t, changed)

	// Replay changes nothing.
	changed, err = repo.ConfirmIfPending(ctx, b.ID)
	assert.NoError(t, err)
	assert.False(t, changed)

	got, err := repo.GetByID(ctx, b.ID)
	assert.NoError(t, err)
	assert.Equal(t, domain.BookingConfirmed, got.Status)
}

func TestBookingRepository_FindActiveOverlapping(t *testing.T) {
	repo := setupDB(t)
	ctx := context.Background()

	b := makeBooking(t, 1, "2026-09-02", "day", "2026-09-04", "night")
	require.NoError(t, repo.Create(ctx, b))

	slots, _ := domain.ParseSlots([]domain.SlotInput{{Date: "2026-09-04", Slot: "day"}})
	found, err := repo.FindActiveOverlapping(ctx, 1, slots.MinDate(), slots.MaxDate(), 0)
	assert.NoError(t, err)
	assert.Len(t, found, 1)

	// Excluding the booking itself yields nothing.
	found, err = repo.FindActiveOverlapping(ctx, 1, slots.MinDate(), slots.MaxDate(), b.ID)
	assert.NoError(t, err)
	assert.Empty(t, found)

	// A disjoint date range does not match.
	other, _ := domain.ParseSlots([]domain.SlotInput{{Date: "2026-09-10", Slot: "day"}})
	found, err = repo.FindActiveOverlapping(ctx, 1, other.MinDate(), other.MaxDate(), 0)
	assert.NoError(t, err)
	assert.Empty(t, found)
}
