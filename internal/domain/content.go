package domain

import "time"

type Event struct {
	ID          int64     `gorm:"primaryKey" json:"id"`
	Title       string    `gorm:"type:varchar(200);not null" json:"title"`
	Description string    `gorm:"type:text" json:"description"`
	ImageURL    string    `gorm:"type:text" json:"image_url,omitempty"`
	Date        time.Time `gorm:"not null;index" json:"date"`
	IsActive    bool      `gorm:"default:true" json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (Event) TableName() string { return "events" }

type Promotion struct {
	ID           int64     `gorm:"primaryKey" json:"id"`
	Title        string    `gorm:"type:varchar(200);not null" json:"title"`
	Description  string    `gorm:"type:text" json:"description"`
	ImageURL     string    `gorm:"type:text" json:"image_url,omitempty"`
	DiscountInfo string    `gorm:"type:varchar(200)" json:"discount_info"`
	ValidFrom    time.Time `gorm:"not null" json:"valid_from"`
	ValidUntil   time.Time `gorm:"not null;index" json:"valid_until"`
	IsActive     bool      `gorm:"default:true" json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (Promotion) TableName() string { return "promotions" }

// PricingEntry is a row of the public price board, grouped by room type.
type PricingEntry struct {
	ID         int64    `gorm:"primaryKey" json:"id"`
	RoomType   RoomType `gorm:"type:varchar(25);not null" json:"room_type"`
	Label      string   `gorm:"type:varchar(200);not null" json:"label"`
	DayPrice   float64  `gorm:"not null" json:"day_price"`
	NightPrice *float64 `json:"night_price,omitempty"`
	Notes      string   `gorm:"type:text" json:"notes,omitempty"`
	Order      int      `gorm:"column:sort_order;default:0" json:"order"`
}

func (PricingEntry) TableName() string { return "pricing_entries" }
