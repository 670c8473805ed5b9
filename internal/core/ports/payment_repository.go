package ports

import (
	"context"

	"github.com/pgnest/hostel-system/internal/core/domain"
)

// ListPaymentsFilter carries query parameters for listing payment records.
type ListPaymentsFilter struct {
	PGID       string
	ResidentID string // optional: scope to one resident
	Status     string // optional: filter by payment status
	Month      string // optional: YYYY-MM
	Page       int    // 1-based
	Limit      int
}

// PaymentRepository defines persistence operations for rent payments.
type PaymentRepository interface {
	Create(ctx context.Context, p *domain.Payment) error
	FindByID(ctx context.Context, id string) (*domain.Payment, error)
	Update(ctx context.Context, p *domain.Payment) error
	List(ctx context.Context, filter ListPaymentsFilter) ([]*domain.Payment, int64, error)
	CountPendingByProperty(ctx context.Context, pgID string) (int64, error)
}
