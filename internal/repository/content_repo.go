package repository

import (
	"context"
	"time"

	"resortbooking/internal/domain"

	"gorm.io/gorm"
)

type ContentRepository struct {
	db *gorm.DB
}

func NewContentRepository(db *gorm.DB) *ContentRepository {
	return &ContentRepository{db: db}
}

// UpcomingEvents lists active events happening today or later.
func (r *ContentRepository) UpcomingEvents(ctx context.Context, today time.Time) ([]domain.Event, error) {
	var out []domain.Event
	err := r.db.WithContext(ctx).
		Where("is_active = ? AND date >= ?", true, today).
		Order("date ASC").
		Find(&out).Error
	return out, err
}

// ActivePromotions lists active promotions that have not expired yet.
func (r *ContentRepository) ActivePromotions(ctx context.Context, today time.Time) ([]domain.Promotion, error) {
	var out []domain.Promotion
	err := r.db.WithContext(ctx).
		Where("is_active = ? AND valid_until >= ?", true, today).
		Order("valid_from DESC").
		Find(&out).Error
	return out, err
}

func (r *ContentRepository) PricingEntries(ctx context.Context) ([]domain.PricingEntry, error) {
	var out []domain.PricingEntry
	err := r.db.WithContext(ctx).Order("sort_order ASC").Find(&out).Error
	return out, err
}
