package ports

import (
	"context"

	"github.com/pgnest/hostel-system/internal/core/domain"
)

// SendMessageInput carries one message between two participants. The thread is
// derived from the pair; callers never supply a thread ID.
type SendMessageInput struct {
	FromID string
	ToID   string
	Body   string
}

// MessageService defines use-case operations for warden-guest messaging.
type MessageService interface {
	Send(ctx context.Context, input SendMessageInput) (*domain.Message, error)
	// Thread returns the conversation between the caller and the other
	// participant, oldest first.
	Thread(ctx context.Context, userID, otherID string, limit int) ([]*domain.Message, error)
	Threads(ctx context.Context, userID string) ([]ThreadSummary, error)
}
