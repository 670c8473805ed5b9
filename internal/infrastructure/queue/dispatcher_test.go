package queue

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/pgnest/hostel-system/internal/core/domain"
	"github.com/pgnest/hostel-system/internal/core/ports"
)

// recordingService records delivered notifications in arrival order.
type recordingService struct {
	mu        sync.Mutex
	delivered []ports.NotificationInput
	done      chan struct{}
	expect    int
}

func newRecordingService(expect int) *recordingService {
	return &recordingService{done: make(chan struct{}), expect: expect}
}

func (s *recordingService) Deliver(_ context.Context, in ports.NotificationInput) error {
	s.mu.Lock()
	s.delivered = append(s.delivered, in)
	if len(s.delivered) == s.expect {
		close(s.done)
	}
	s.mu.Unlock()
	return nil
}

func (s *recordingService) Fanout(context.Context, string, string, string, string) ([]ports.NotificationInput, error) {
	return nil, nil
}

func (s *recordingService) List(context.Context, ports.ListNotificationsFilter) ([]*domain.Notification, int64, error) {
	return nil, 0, nil
}

func (s *recordingService) MarkRead(context.Context, string, string) (*domain.Notification, error) {
	return nil, nil
}

func TestDispatcher_PerRecipientOrdering(t *testing.T) {
	const n = 20
	svc := newRecordingService(n)
	d := NewDispatcher(4, svc, zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	d.Start(ctx)

	for i := 0; i < n; i++ {
		d.Enqueue(ports.NotificationInput{
			RecipientID: "res-1",
			Title:       fmt.Sprintf("msg-%d", i),
		})
	}

	select {
	case <-svc.done:
	case <-time.After(5 * time.Second):
		t.Fatalf("timed out waiting for deliveries")
	}

	svc.mu.Lock()
	defer svc.mu.Unlock()
	for i, in := range svc.delivered {
		if want := fmt.Sprintf("msg-%d", i); in.Title != want {
			t.Fatalf("delivery %d out of order: got %s, want %s", i, in.Title, want)
		}
	}
}

func TestDispatcher_StableSharding(t *testing.T) {
	d := NewDispatcher(8, newRecordingService(0), zerolog.Nop())

	first := d.shardIndex("res-42")
	for i := 0; i < 10; i++ {
		if got := d.shardIndex("res-42"); got != first {
			t.Fatalf("shard index unstable: %d vs %d", got, first)
		}
	}
	if first < 0 || first >= len(d.workers) {
		t.Fatalf("shard index out of range: %d", first)
	}
}

func TestDispatcher_EnqueueBatch(t *testing.T) {
	const n = 6
	svc := newRecordingService(n)
	d := NewDispatcher(2, svc, zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	d.Start(ctx)

	batch := make([]ports.NotificationInput, 0, n)
	for i := 0; i < n; i++ {
		batch = append(batch, ports.NotificationInput{
			RecipientID: fmt.Sprintf("res-%d", i%3),
			Title:       fmt.Sprintf("msg-%d", i),
		})
	}
	d.EnqueueBatch(batch)

	select {
	case <-svc.done:
	case <-time.After(5 * time.Second):
		t.Fatalf("timed out waiting for deliveries")
	}
}
