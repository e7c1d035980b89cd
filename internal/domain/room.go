package domain

import (
	"math"
	"time"
)

type RoomType string

const (
	RoomCottage       RoomType = "cottage"
	RoomDosAndanas    RoomType = "dos_andanas"
	RoomLavenderHouse RoomType = "lavender_house"
	RoomACKaraoke     RoomType = "ac_karaoke"
	RoomKubo          RoomType = "kubo"
	RoomFunctionHall  RoomType = "function_hall"
	RoomTrapalTable   RoomType = "trapal_table"
)

type Room struct {
	ID          int64     `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"type:varchar(200);not null" json:"name" validate:"required"`
	RoomType    RoomType  `gorm:"type:varchar(25);default:'cottage';index" json:"room_type"`
	Description string    `gorm:"type:text" json:"description,omitempty"`
	DayPrice    float64   `gorm:"not null" json:"day_price" validate:"gte=0"`
	NightPrice  *float64  `json:"night_price,omitempty"`
	IsDayOnly   bool      `gorm:"default:false" json:"is_day_only"`
	Capacity    int       `gorm:"default:2" json:"capacity" validate:"gt=0"`
	SizeSqm     *int      `json:"size_sqm,omitempty"`
	Amenities   []string  `gorm:"serializer:json" json:"amenities,omitempty"`
	Images      []string  `gorm:"serializer:json" json:"images,omitempty"`
	IsActive    bool      `gorm:"default:true;index" json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (Room) TableName() string { return "rooms" }

// PriceForSlots computes the booking total for a room: each day slot costs
// day_price, each night slot costs night_price, falling back to day_price
// when no night price is configured. Pure and slot-order independent.
func PriceForSlots(room *Room, slots SlotSet) float64 {
	nightPrice := room.DayPrice
	if room.NightPrice != nil {
		nightPrice = *room.NightPrice
	}

	var total float64
	for _, s := range slots {
		if s.Period == SlotNight {
			total += nightPrice
		} else {
			total += room.DayPrice
		}
	}
	return math.Round(total*100) / 100
}
