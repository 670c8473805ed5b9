package ports

import (
	"context"

	"github.com/pgnest/hostel-system/internal/core/domain"
)

// CreatePropertyInput carries all data needed to register a PG property.
type CreatePropertyInput struct {
	Name       string
	City       string
	AdminEmail string
}

// UpdatePropertyInput carries mutable property fields. Nil pointers leave the
// field unchanged.
type UpdatePropertyInput struct {
	Name       *string
	City       *string
	AdminEmail *string
	Status     *domain.PropertyStatus
}

// PropertyOverview aggregates cross-repository counts for one property.
type PropertyOverview struct {
	Property        *domain.Property `json:"property"`
	Rooms           int64            `json:"rooms"`
	ActiveResidents int64            `json:"active_residents"`
	PendingPayments int64            `json:"pending_payments"`
}

// PropertyService defines the super-admin portfolio operations.
type PropertyService interface {
	Create(ctx context.Context, input CreatePropertyInput) (*domain.Property, error)
	Get(ctx context.Context, id string) (*domain.Property, error)
	List(ctx context.Context) ([]*domain.Property, error)
	Update(ctx context.Context, id string, input UpdatePropertyInput) (*domain.Property, error)
	// Overview aggregates room, resident and pending-payment counts per
	// property across the whole portfolio.
	Overview(ctx context.Context) ([]PropertyOverview, error)
}
