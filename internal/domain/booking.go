package domain

import "time"

type BookingStatus string

const (
	BookingPending   BookingStatus = "pending"
	BookingConfirmed BookingStatus = "confirmed"
	BookingCancelled BookingStatus = "cancelled"
	BookingCompleted BookingStatus = "completed"
)

// ParseBookingStatus validates a raw status string.
func ParseBookingStatus(raw string) (BookingStatus, bool) {
	switch s := BookingStatus(raw); s {
	case BookingPending, BookingConfirmed, BookingCancelled, BookingCompleted:
		return s, true
	default:
		return "", false
	}
}

// CanTransitionTo enumerates the legal booking status transitions:
// pending -> confirmed|cancelled, confirmed -> completed|cancelled (admin).
// Everything else, including moves out of a terminal state, is rejected.
func (s BookingStatus) CanTransitionTo(next BookingStatus) bool {
	switch s {
	case BookingPending:
		return next == BookingConfirmed || next == BookingCancelled
	case BookingConfirmed:
		return next == BookingCompleted || next == BookingCancelled
	default:
		return false
	}
}

// Blocks reports whether a booking in this status occupies its slots.
func (s BookingStatus) Blocks() bool {
	return s == BookingPending || s == BookingConfirmed
}

type Booking struct {
	ID              int64         `gorm:"primaryKey" json:"id"`
	UserID          int64         `gorm:"index;not null" json:"user_id"`
	RoomID          int64         `gorm:"index;not null" json:"room_id"`
	CheckIn         time.Time     `gorm:"not null" json:"check_in"`
	CheckOut        time.Time     `gorm:"not null" json:"check_out"`
	Guests          int           `gorm:"default:1" json:"guests"`
	Slots           SlotSet       `gorm:"serializer:json;not null" json:"slots"`
	TotalPrice      float64       `gorm:"not null" json:"total_price"`
	Status          BookingStatus `gorm:"type:varchar(20);default:'pending';index" json:"status"`
	SpecialRequests string        `gorm:"type:text" json:"special_requests,omitempty"`
	CreatedAt       time.Time     `json:"created_at"`
	UpdatedAt       time.Time     `json:"updated_at"`

	User    *User    `gorm:"foreignKey:UserID" json:"-"`
	Room    *Room    `gorm:"foreignKey:RoomID" json:"room,omitempty"`
	Payment *Payment `gorm:"foreignKey:BookingID;constraint:OnDelete:CASCADE" json:"payment,omitempty"`
}

func (Booking) TableName() string { return "bookings" }

// BookingSlot is the storage-level occupancy row: one per (room, date,
// period) held by an active booking. The composite unique index is what
// closes the check-then-insert race; rows are removed when the booking
// stops blocking (cancelled or completed).
type BookingSlot struct {
	ID        int64      `gorm:"primaryKey"`
	BookingID int64      `gorm:"index;not null"`
	RoomID    int64      `gorm:"not null;uniqueIndex:idx_room_slot_taken,priority:1"`
	Date      string     `gorm:"type:varchar(10);not null;uniqueIndex:idx_room_slot_taken,priority:2"`
	Slot      SlotPeriod `gorm:"type:varchar(10);not null;uniqueIndex:idx_room_slot_taken,priority:3"`
}

func (BookingSlot) TableName() string { return "booking_slots" }
