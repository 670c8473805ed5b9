package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/pgnest/hostel-system/internal/core/domain"
	"github.com/pgnest/hostel-system/internal/core/ports"
)

type MenuService struct {
	repo   ports.MenuRepository
	logger zerolog.Logger
}

func NewMenuService(repo ports.MenuRepository, logger zerolog.Logger) *MenuService {
	return &MenuService{repo: repo, logger: logger}
}

// Week returns the property's menu in canonical weekday order.
func (s *MenuService) Week(ctx context.Context, pgID string) ([]*domain.MenuDay, error) {
	days, err := s.repo.ListWeek(ctx, pgID)
	if err != nil {
		return nil, err
	}

	byDay := make(map[string]*domain.MenuDay, len(days))
	for _, d := range days {
		byDay[d.Weekday] = d
	}

	ordered := make([]*domain.MenuDay, 0, len(days))
	for _, weekday := range domain.Weekdays {
		if d, ok := byDay[weekday]; ok {
			ordered = append(ordered, d)
		}
	}
	return ordered, nil
}

func (s *MenuService) UpsertDay(ctx context.Context, input ports.UpsertMenuDayInput) (*domain.MenuDay, error) {
	if !domain.ValidWeekday(input.Weekday) {
		return nil, domain.ErrMenuDayNotFound
	}

	day := &domain.MenuDay{
		ID:        uuid.NewString(),
		PGID:      input.PGID,
		Weekday:   input.Weekday,
		Breakfast: input.Breakfast,
		Lunch:     input.Lunch,
		Dinner:    input.Dinner,
		UpdatedAt: time.Now().UTC(),
	}

	if err := s.repo.Upsert(ctx, day); err != nil {
		s.logger.Error().Err(err).Str("weekday", input.Weekday).Msg("failed to upsert menu day")
		return nil, err
	}

	s.logger.Info().Str("pg_id", input.PGID).Str("weekday", input.Weekday).Msg("menu day updated")
	return day, nil
}
