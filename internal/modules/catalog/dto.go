package catalog

import (
	"sort"

	"resortbooking/internal/domain"
)

type OccupiedSlot struct {
	Date string `json:"date"`
	Slot string `json:"slot"`
}

type BookedRange struct {
	CheckIn  string `json:"check_in"`
	CheckOut string `json:"check_out"`
}

type RoomAvailability struct {
	RoomID        int64          `json:"room_id"`
	RoomName      string         `json:"room_name"`
	RoomType      string         `json:"room_type"`
	IsDayOnly     bool           `json:"is_day_only"`
	OccupiedSlots []OccupiedSlot `json:"occupied_slots"`
	BookedRanges  []BookedRange  `json:"booked_ranges"`
}

func availabilityFor(room *domain.Room, bookings []domain.Booking) RoomAvailability {
	av := RoomAvailability{
		RoomID:        room.ID,
		RoomName:      room.Name,
		RoomType:      string(room.RoomType),
		IsDayOnly:     room.IsDayOnly,
		OccupiedSlots: make([]OccupiedSlot, 0),
		BookedRanges:  make([]BookedRange, 0, len(bookings)),
	}
	for i := range bookings {
		b := &bookings[i]
		for _, s := range b.Slots {
			av.OccupiedSlots = append(av.OccupiedSlots, OccupiedSlot{
				Date: s.Date.Format(domain.DateLayout),
				Slot: string(s.Period),
			})
		}
		av.BookedRanges = append(av.BookedRanges, BookedRange{
			CheckIn:  b.CheckIn.Format(domain.DateLayout),
			CheckOut: b.CheckOut.Format(domain.DateLayout),
		})
	}
	sort.Slice(av.OccupiedSlots, func(i, j int) bool {
		a, b := av.OccupiedSlots[i], av.OccupiedSlots[j]
		if a.Date != b.Date {
			return a.Date < b.Date
		}
		return a.Slot < b.Slot
	})
	sort.Slice(av.BookedRanges, func(i, j int) bool {
		return av.BookedRanges[i].CheckIn < av.BookedRanges[j].CheckIn
	})
	return av
}
