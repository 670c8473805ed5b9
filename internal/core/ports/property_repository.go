package ports

import (
	"context"

	"github.com/pgnest/hostel-system/internal/core/domain"
)

// PropertyRepository defines persistence operations for PG properties.
type PropertyRepository interface {
	Create(ctx context.Context, p *domain.Property) error
	FindByID(ctx context.Context, id string) (*domain.Property, error)
	Update(ctx context.Context, p *domain.Property) error
	List(ctx context.Context) ([]*domain.Property, error)
}
