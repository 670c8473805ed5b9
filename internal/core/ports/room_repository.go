package ports

import (
	"context"

	"github.com/pgnest/hostel-system/internal/core/domain"
)

// ListRoomsFilter carries query parameters for listing rooms.
type ListRoomsFilter struct {
	PGID   string // empty = all properties (super admin overview)
	Status string // optional: filter by room status
	Floor  *int   // optional: filter by floor
	Search string // optional: partial match on room number
	Page   int    // 1-based
	Limit  int    // capped by the service
}

// RoomRepository defines persistence operations for rooms.
type RoomRepository interface {
	Create(ctx context.Context, room *domain.Room) error
	FindByID(ctx context.Context, id string) (*domain.Room, error)
	FindByNumber(ctx context.Context, pgID, number string) (*domain.Room, error)
	Update(ctx context.Context, room *domain.Room) error
	List(ctx context.Context, filter ListRoomsFilter) ([]*domain.Room, int64, error)
	CountByProperty(ctx context.Context, pgID string) (int64, error)
}
