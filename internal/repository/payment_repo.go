package repository

import (
	"context"

	"resortbooking/internal/domain"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type PaymentRepository struct {
	db *gorm.DB
}

func NewPaymentRepository(db *gorm.DB) *PaymentRepository {
	return &PaymentRepository{db: db}
}

func (r *PaymentRepository) Create(ctx context.Context, p *domain.Payment) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *PaymentRepository) GetByID(ctx context.Context, id int64) (*domain.Payment, error) {
	var p domain.Payment
	if err := r.db.WithContext(ctx).First(&p, id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *PaymentRepository) GetByBookingID(ctx context.Context, bookingID int64) (*domain.Payment, error) {
	var p domain.Payment
	if err := r.db.WithContext(ctx).Where("booking_id = ?", bookingID).First(&p).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

// Upsert writes the booking's single payment row, keyed on booking_id.
// Replayed gateway notifications overwrite the same row, which keeps the
// webhook handler idempotent under at-least-once delivery.
func (r *PaymentRepository) Upsert(ctx context.Context, p *domain.Payment) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "booking_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"amount", "currency", "status", "reference_code", "intent_id", "updated_at",
		}),
	}).Create(p).Error
}

func (r *PaymentRepository) SetStatus(ctx context.Context, id int64, status domain.PaymentStatus) error {
	res := r.db.WithContext(ctx).Model(&domain.Payment{}).
		Where("id = ?", id).
		Update("status", status)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
