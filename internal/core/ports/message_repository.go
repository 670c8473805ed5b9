package ports

import (
	"context"

	"github.com/pgnest/hostel-system/internal/core/domain"
)

// ThreadSummary is the per-thread view used in thread listings.
type ThreadSummary struct {
	ThreadID string          `json:"thread_id"`
	Last     *domain.Message `json:"last_message"`
	Count    int64           `json:"count"`
}

// MessageRepository defines persistence operations for conversation threads.
type MessageRepository interface {
	Insert(ctx context.Context, m *domain.Message) error
	// ListThread returns messages of a thread ordered by sent time ascending.
	ListThread(ctx context.Context, threadID string, limit int) ([]*domain.Message, error)
	// ListThreadsFor returns summaries of every thread the user participates in.
	ListThreadsFor(ctx context.Context, userID string) ([]ThreadSummary, error)
}
