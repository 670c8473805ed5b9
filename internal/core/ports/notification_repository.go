package ports

import (
	"context"

	"github.com/pgnest/hostel-system/internal/core/domain"
)

// ListNotificationsFilter carries query parameters for a recipient's inbox.
type ListNotificationsFilter struct {
	RecipientID string
	UnreadOnly  bool
	Page        int // 1-based
	Limit       int
}

// NotificationRepository defines persistence operations for notifications.
type NotificationRepository interface {
	Insert(ctx context.Context, n *domain.Notification) error
	FindByID(ctx context.Context, id string) (*domain.Notification, error)
	Update(ctx context.Context, n *domain.Notification) error
	List(ctx context.Context, filter ListNotificationsFilter) ([]*domain.Notification, int64, error)
}
