package service

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/pgnest/hostel-system/internal/core/domain"
	"github.com/pgnest/hostel-system/internal/core/ports"
)

// stubNotificationRepo is an in-memory NotificationRepository.
type stubNotificationRepo struct {
	notifications map[string]*domain.Notification
}

func newStubNotificationRepo() *stubNotificationRepo {
	return &stubNotificationRepo{notifications: make(map[string]*domain.Notification)}
}

func (s *stubNotificationRepo) Insert(_ context.Context, n *domain.Notification) error {
	copied := *n
	s.notifications[n.ID] = &copied
	return nil
}

func (s *stubNotificationRepo) FindByID(_ context.Context, id string) (*domain.Notification, error) {
	n, ok := s.notifications[id]
	if !ok {
		return nil, domain.ErrNotificationNotFound
	}
	copied := *n
	return &copied, nil
}

func (s *stubNotificationRepo) Update(_ context.Context, n *domain.Notification) error {
	if _, ok := s.notifications[n.ID]; !ok {
		return domain.ErrNotificationNotFound
	}
	copied := *n
	s.notifications[n.ID] = &copied
	return nil
}

func (s *stubNotificationRepo) List(_ context.Context, filter ports.ListNotificationsFilter) ([]*domain.Notification, int64, error) {
	var out []*domain.Notification
	for _, n := range s.notifications {
		if n.RecipientID != filter.RecipientID {
			continue
		}
		if filter.UnreadOnly && n.ReadAt != nil {
			continue
		}
		copied := *n
		out = append(out, &copied)
	}
	return out, int64(len(out)), nil
}

func TestNotificationService_DeliverAndList(t *testing.T) {
	repo := newStubNotificationRepo()
	svc := NewNotificationService(repo, newStubResidentRepo(), zerolog.Nop())

	err := svc.Deliver(context.Background(), ports.NotificationInput{
		PGID:        "pg-001",
		RecipientID: "res-1",
		Title:       "Water maintenance",
		Body:        "Supply off 14:00-16:00",
	})
	if err != nil {
		t.Fatalf("Deliver: %v", err)
	}

	items, total, err := svc.List(context.Background(), ports.ListNotificationsFilter{RecipientID: "res-1"})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if total != 1 || len(items) != 1 {
		t.Fatalf("expected 1 notification, got %d", total)
	}
	if items[0].Severity != domain.SeverityInfo {
		t.Fatalf("severity default = %s, want info", items[0].Severity)
	}
}

func TestNotificationService_Fanout(t *testing.T) {
	residents := newStubResidentRepo()
	for _, id := range []string{"res-1", "res-2"} {
		_ = residents.Create(context.Background(), &domain.Resident{
			ID: id, PGID: "pg-001", Status: domain.ResidentActive, JoinDate: time.Now(),
		})
	}
	_ = residents.Create(context.Background(), &domain.Resident{
		ID: "res-3", PGID: "pg-001", Status: domain.ResidentCheckedOut, JoinDate: time.Now(),
	})

	svc := NewNotificationService(newStubNotificationRepo(), residents, zerolog.Nop())

	inputs, err := svc.Fanout(context.Background(), "pg-001", "Rent due", "Pay by the 5th", "warning")
	if err != nil {
		t.Fatalf("Fanout: %v", err)
	}
	if len(inputs) != 2 {
		t.Fatalf("expected fanout to 2 active residents, got %d", len(inputs))
	}
	for _, in := range inputs {
		if in.RecipientID == "res-3" {
			t.Fatalf("checked-out resident included in fanout")
		}
	}
}

func TestNotificationService_MarkRead(t *testing.T) {
	repo := newStubNotificationRepo()
	svc := NewNotificationService(repo, newStubResidentRepo(), zerolog.Nop())

	_ = svc.Deliver(context.Background(), ports.NotificationInput{
		PGID: "pg-001", RecipientID: "res-1", Title: "t", Body: "b",
	})
	items, _, _ := svc.List(context.Background(), ports.ListNotificationsFilter{RecipientID: "res-1"})
	id := items[0].ID

	read, err := svc.MarkRead(context.Background(), id, "res-1")
	if err != nil {
		t.Fatalf("MarkRead: %v", err)
	}
	if read.ReadAt == nil {
		t.Fatalf("ReadAt not stamped")
	}

	// Idempotent: the stamp does not move on a second call.
	again, err := svc.MarkRead(context.Background(), id, "res-1")
	if err != nil {
		t.Fatalf("second MarkRead: %v", err)
	}
	if !again.ReadAt.Equal(*read.ReadAt) {
		t.Fatalf("ReadAt moved on repeat: %v vs %v", again.ReadAt, read.ReadAt)
	}

	if _, err := svc.MarkRead(context.Background(), id, "res-2"); err != domain.ErrForbidden {
		t.Fatalf("expected ErrForbidden for wrong recipient, got %v", err)
	}
}
