package resource

import (
	"context"

	"github.com/courtsidehq/courtside-backend/internal/availability"
	"github.com/courtsidehq/courtside-backend/internal/booking"
)

type Service interface {
	GetByID(ctx context.Context, id string) (*Resource, error)
	List(ctx context.Context, filter Filter) ([]*Resource, int, error)

	// Availability computes the slot grid for one resource on one date.
	// It backs a public search endpoint, so degenerate inputs degrade
	// instead of failing: a malformed date yields an empty slot list, a
	// missing operating-hours row falls back to the default window, and
	// no bookings simply means no conflicts. Only infrastructure
	// failures (DB down) surface as errors.
	Availability(ctx context.Context, id string, date string, durationMinutes int) ([]availability.Slot, error)
}

type service struct {
	repo     Repository
	bookings booking.Repository
	engine   *availability.Engine
}

func NewService(repo Repository, bookings booking.Repository, engine *availability.Engine) Service {
	return &service{
		repo:     repo,
		bookings: bookings,
		engine:   engine,
	}
}

func (s *service) GetByID(ctx context.Context, id string) (*Resource, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) List(ctx context.Context, filter Filter) ([]*Resource, int, error) {
	return s.repo.List(ctx, filter)
}

func (s *service) Availability(ctx context.Context, id string, date string, durationMinutes int) ([]availability.Slot, error) {
	res, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	day, err := availability.ParseDate(date)
	if err != nil {
		// Malformed date degrades to an empty, well-formed result.
		return []availability.Slot{}, nil
	}

	windows, err := s.repo.OperatingWindows(ctx, []string{id}, day.Weekday())
	if err != nil {
		return nil, err
	}

	records, err := s.bookings.ListForDate(ctx, []string{id}, day)
	if err != nil {
		return nil, err
	}

	return s.engine.Availability(day, windows[id], res.RateCard(), durationMinutes, booking.BlockingIntervals(records)), nil
}
