package booking

import (
	"time"

	"resortbooking/internal/domain"
)

type CreateBookingRequest struct {
	RoomID          int64              `json:"room_id" binding:"required"`
	Slots           []domain.SlotInput `json:"slots"`
	Guests          int                `json:"guests"`
	SpecialRequests string             `json:"special_requests"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type SlotView struct {
	Date string `json:"date"`
	Slot string `json:"slot"`
}

type BookingView struct {
	ID               int64      `json:"id"`
	RoomID           int64      `json:"room_id"`
	RoomName         string     `json:"room_name,omitempty"`
	Slots            []SlotView `json:"slots"`
	SlotsSummary     string     `json:"slots_summary"`
	CheckIn          string     `json:"check_in"`
	CheckOut         string     `json:"check_out"`
	Guests           int        `json:"guests"`
	TotalPrice       float64    `json:"total_price"`
	Status           string     `json:"status"`
	SpecialRequests  string     `json:"special_requests,omitempty"`
	PaymentSubmitted bool       `json:"payment_submitted"`
	PaymentStatus    string     `json:"payment_status,omitempty"`
	CreatedAt        time.Time  `json:"created_at"`
}

func toView(b *domain.Booking) BookingView {
	v := BookingView{
		ID:               b.ID,
		RoomID:           b.RoomID,
		Slots:            make([]SlotView, 0, len(b.Slots)),
		SlotsSummary:     b.Slots.Summary(),
		CheckIn:          b.CheckIn.Format(domain.DateLayout),
		CheckOut:         b.CheckOut.Format(domain.DateLayout),
		Guests:           b.Guests,
		TotalPrice:       b.TotalPrice,
		Status:           string(b.Status),
		SpecialRequests:  b.SpecialRequests,
		PaymentSubmitted: b.Payment != nil,
		CreatedAt:        b.CreatedAt,
	}
	for _, s := range b.Slots {
		v.Slots = append(v.Slots, SlotView{Date: s.Date.Format(domain.DateLayout), Slot: string(s.Period)})
	}
	if b.Room != nil {
		v.RoomName = b.Room.Name
	}
	if b.Payment != nil {
		v.PaymentStatus = string(b.Payment.Status)
	}
	return v
}

func toViews(list []domain.Booking) []BookingView {
	out := make([]BookingView, 0, len(list))
	for i := range list {
		out = append(out, toView(&list[i]))
	}
	return out
}
