package ports

import (
	"context"

	"github.com/pgnest/hostel-system/internal/core/domain"
)

// MenuRepository defines persistence operations for the weekly meal menu.
type MenuRepository interface {
	// Upsert replaces the menu for one (pg, weekday) pair.
	Upsert(ctx context.Context, day *domain.MenuDay) error
	FindDay(ctx context.Context, pgID, weekday string) (*domain.MenuDay, error)
	ListWeek(ctx context.Context, pgID string) ([]*domain.MenuDay, error)
}
