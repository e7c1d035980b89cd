package content

import (
	"context"
	"time"

	"resortbooking/internal/domain"
)

type Repository interface {
	UpcomingEvents(ctx context.Context, today time.Time) ([]domain.Event, error)
	ActivePromotions(ctx context.Context, today time.Time) ([]domain.Promotion, error)
	PricingEntries(ctx context.Context) ([]domain.PricingEntry, error)
}

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo, now: time.Now}
}

func (s *Service) today() time.Time {
	y, m, d := s.now().UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func (s *Service) UpcomingEvents(ctx context.Context) ([]domain.Event, error) {
	return s.repo.UpcomingEvents(ctx, s.today())
}

func (s *Service) ActivePromotions(ctx context.Context) ([]domain.Promotion, error) {
	return s.repo.ActivePromotions(ctx, s.today())
}

func (s *Service) Pricing(ctx context.Context) ([]domain.PricingEntry, error) {
	return s.repo.PricingEntries(ctx)
}
