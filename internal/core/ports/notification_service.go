package ports

import (
	"context"

	"github.com/pgnest/hostel-system/internal/core/domain"
)

// NotificationInput is one notification handed to the delivery dispatcher.
type NotificationInput struct {
	PGID        string
	RecipientID string
	Title       string
	Body        string
	Severity    string
}

// NotificationService defines delivery and inbox operations. Deliver is called
// by dispatcher workers, never directly by handlers.
type NotificationService interface {
	Deliver(ctx context.Context, input NotificationInput) error
	// Fanout expands a broadcast into one input per active resident of the
	// property and returns them in a deterministic order.
	Fanout(ctx context.Context, pgID, title, body, severity string) ([]NotificationInput, error)
	List(ctx context.Context, filter ListNotificationsFilter) ([]*domain.Notification, int64, error)
	// MarkRead is idempotent: marking a read notification again is a no-op.
	MarkRead(ctx context.Context, id, recipientID string) (*domain.Notification, error)
}
