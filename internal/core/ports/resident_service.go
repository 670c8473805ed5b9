package ports

import (
	"context"
	"time"

	"github.com/pgnest/hostel-system/internal/core/domain"
)

// CheckInInput carries all data needed to check a new resident in. RoomID is
// optional; when set the room's occupancy is claimed atomically with creation.
type CheckInInput struct {
	PGID     string
	Name     string
	Email    string
	Phone    string
	RoomID   string
	JoinDate time.Time
}

// UpdateResidentInput carries mutable resident fields. Nil pointers leave the
// field unchanged.
type UpdateResidentInput struct {
	Name  *string
	Email *string
	Phone *string
}

// ListResidentsResult is one page of residents plus the total count.
type ListResidentsResult struct {
	Items      []*domain.Resident
	Total      int64
	Page       int
	Limit      int
	TotalPages int
}

// ResidentService defines use-case operations for residents.
type ResidentService interface {
	CheckIn(ctx context.Context, input CheckInInput) (*domain.Resident, error)
	Get(ctx context.Context, id string) (*domain.Resident, error)
	List(ctx context.Context, filter ListResidentsFilter) (*ListResidentsResult, error)
	Update(ctx context.Context, id string, input UpdateResidentInput) (*domain.Resident, error)
	// CheckOut sets the end date, marks the resident checked out, and releases
	// the room occupancy. Fails with domain.ErrResidentInactive when already
	// checked out.
	CheckOut(ctx context.Context, id string, endDate time.Time) (*domain.Resident, error)
}
