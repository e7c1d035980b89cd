package repository

import (
	"context"

	"resortbooking/internal/domain"

	"gorm.io/gorm"
)

type RoomRepository struct {
	db *gorm.DB
}

func NewRoomRepository(db *gorm.DB) *RoomRepository {
	return &RoomRepository{db: db}
}

// RoomFilter mirrors the public catalog query params; zero values mean
// "no constraint".
type RoomFilter struct {
	RoomType    string
	MinPrice    *float64
	MaxPrice    *float64
	MinCapacity *int
}

func (r *RoomRepository) List(ctx context.Context, f RoomFilter) ([]domain.Room, error) {
	q := r.db.WithContext(ctx).Where("is_active = ?", true)
	if f.RoomType != "" {
		q = q.Where("room_type = ?", f.RoomType)
	}
	if f.MinPrice != nil {
		q = q.Where("day_price >= ?", *f.MinPrice)
	}
	if f.MaxPrice != nil {
		q = q.Where("day_price <= ?", *f.MaxPrice)
	}
	if f.MinCapacity != nil {
		q = q.Where("capacity >= ?", *f.MinCapacity)
	}

	var out []domain.Room
	err := q.Order("day_price ASC").Find(&out).Error
	return out, err
}

// GetActive returns an active room by id; hidden rooms behave like missing.
func (r *RoomRepository) GetActive(ctx context.Context, id int64) (*domain.Room, error) {
	var room domain.Room
	err := r.db.WithContext(ctx).
		Where("id = ? AND is_active = ?", id, true).
		First(&room).Error
	if err != nil {
		return nil, err
	}
	return &room, nil
}
