package ports

import (
	"context"

	"github.com/pgnest/hostel-system/internal/core/domain"
)

// UpsertMenuDayInput carries the menu for one weekday.
type UpsertMenuDayInput struct {
	PGID      string
	Weekday   string
	Breakfast string
	Lunch     string
	Dinner    string
}

// MenuService defines use-case operations for the weekly meal menu.
type MenuService interface {
	// Week returns the menu in canonical weekday order; days without a menu
	// are omitted.
	Week(ctx context.Context, pgID string) ([]*domain.MenuDay, error)
	UpsertDay(ctx context.Context, input UpsertMenuDayInput) (*domain.MenuDay, error)
}
