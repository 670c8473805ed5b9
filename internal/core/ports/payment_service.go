package ports

import (
	"context"

	"github.com/pgnest/hostel-system/internal/core/domain"
)

// RecordPaymentInput carries all data needed to record a rent charge.
type RecordPaymentInput struct {
	PGID       string
	ResidentID string
	Amount     float64
	Currency   string
	Month      string // YYYY-MM
}

// ListPaymentsResult is one page of payments plus the total count.
type ListPaymentsResult struct {
	Items      []*domain.Payment
	Total      int64
	Page       int
	Limit      int
	TotalPages int
}

// PaymentService defines use-case operations for rent bookkeeping.
type PaymentService interface {
	Record(ctx context.Context, input RecordPaymentInput) (*domain.Payment, error)
	Get(ctx context.Context, id string) (*domain.Payment, error)
	List(ctx context.Context, filter ListPaymentsFilter) (*ListPaymentsResult, error)
	// MarkPaid transitions a pending or overdue payment to paid. Fails with
	// domain.ErrPaymentAlreadyPaid on a paid record.
	MarkPaid(ctx context.Context, id, method string) (*domain.Payment, error)
}
