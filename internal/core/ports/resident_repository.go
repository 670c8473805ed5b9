package ports

import (
	"context"

	"github.com/pgnest/hostel-system/internal/core/domain"
)

// ListResidentsFilter carries query parameters for listing residents.
type ListResidentsFilter struct {
	PGID   string
	Status string // optional: filter by resident status
	Search string // optional: partial match on name or email
	Page   int    // 1-based
	Limit  int
}

// ResidentRepository defines persistence operations for residents.
type ResidentRepository interface {
	Create(ctx context.Context, r *domain.Resident) error
	FindByID(ctx context.Context, id string) (*domain.Resident, error)
	Update(ctx context.Context, r *domain.Resident) error
	List(ctx context.Context, filter ListResidentsFilter) ([]*domain.Resident, int64, error)
	// ListActiveIDs returns the IDs of all active residents of a property,
	// used for notification broadcasts.
	ListActiveIDs(ctx context.Context, pgID string) ([]string, error)
	CountActiveByProperty(ctx context.Context, pgID string) (int64, error)
}
