package repository

import (
	"context"
	"errors"
	"time"

	"resortbooking/internal/domain"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// ErrSlotTaken is returned when the unique occupancy index rejects an
// insert: another active booking already holds one of the slots. It is the
// storage-level backstop for the availability pre-check.
var ErrSlotTaken = errors.New("slot already taken")

type BookingRepository struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) *BookingRepository {
	return &BookingRepository{db: db}
}

// Create inserts the booking together with one occupancy row per slot in a
// single transaction, so two concurrent requests for the same slot cannot
// both commit.
func (r *BookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(b).Error; err != nil {
			return err
		}
		rows := make([]domain.BookingSlot, 0, len(b.Slots))
		for _, s := range b.Slots {
			rows = append(rows, domain.BookingSlot{
				BookingID: b.ID,
				RoomID:    b.RoomID,
				Date:      s.Date.Format(domain.DateLayout),
				Slot:      s.Period,
			})
		}
		if err := tx.Create(&rows).Error; err != nil {
			if isUniqueViolation(err) {
				return ErrSlotTaken
			}
			return err
		}
		return nil
	})
}

func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return true
	}
	return false
}

func (r *BookingRepository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	var b domain.Booking
	err := r.db.WithContext(ctx).
		Preload("Room").
		Preload("Payment").
		First(&b, id).Error
	if err != nil {
		return nil, err
	}
	return &b, nil
}

// GetByIDForUser loads a booking only when it belongs to the given user.
func (r *BookingRepository) GetByIDForUser(ctx context.Context, id, userID int64) (*domain.Booking, error) {
	var b domain.Booking
	err := r.db.WithContext(ctx).
		Preload("Room").
		Preload("Payment").
		Where("id = ? AND user_id = ?", id, userID).
		First(&b).Error
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *BookingRepository) ListByUser(ctx context.Context, userID int64) ([]domain.Booking, error) {
	var out []domain.Booking
	err := r.db.WithContext(ctx).
		Preload("Room").
		Preload("Payment").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&out).Error
	return out, err
}

// FindActiveOverlapping returns the room's pending/confirmed bookings whose
// [check_in, check_out] range intersects [from, to]. excludeID skips one
// booking for edit-in-place checks, where a booking would otherwise
// conflict with itself.
func (r *BookingRepository) FindActiveOverlapping(ctx context.Context, roomID int64, from, to time.Time, excludeID int64) ([]domain.Booking, error) {
	q := r.db.WithContext(ctx).
		Where("room_id = ?", roomID).
		Where("status IN ?", []string{string(domain.BookingPending), string(domain.BookingConfirmed)}).
		Where("check_in <= ? AND check_out >= ?", to, from)
	if excludeID > 0 {
		q = q.Where("id <> ?", excludeID)
	}
	var out []domain.Booking
	err := q.Find(&out).Error
	return out, err
}

// ListActiveByRoom returns all blocking bookings of a room, for the public
// availability calendar.
func (r *BookingRepository) ListActiveByRoom(ctx context.Context, roomID int64) ([]domain.Booking, error) {
	var out []domain.Booking
	err := r.db.WithContext(ctx).
		Where("room_id = ?", roomID).
		Where("status IN ?", []string{string(domain.BookingPending), string(domain.BookingConfirmed)}).
		Find(&out).Error
	return out, err
}

// SetStatus writes the new status and, when the booking stops blocking,
// frees its occupancy rows in the same transaction. Transition legality is
// the service's concern.
func (r *BookingRepository) SetStatus(ctx context.Context, bookingID int64, next domain.BookingStatus) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&domain.Booking{}).
			Where("id = ?", bookingID).
			Update("status", next)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		if !next.Blocks() {
			if err := tx.Where("booking_id = ?", bookingID).Delete(&domain.BookingSlot{}).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// ConfirmIfPending transitions pending -> confirmed and reports whether the
// row changed. A booking already confirmed yields (false, nil) so webhook
// replays stay silent.
func (r *BookingRepository) ConfirmIfPending(ctx context.Context, bookingID int64) (bool, error) {
	res := r.db.WithContext(ctx).Model(&domain.Booking{}).
		Where("id = ? AND status = ?", bookingID, domain.BookingPending).
		Update("status", domain.BookingConfirmed)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
