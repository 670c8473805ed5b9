package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/pgnest/hostel-system/internal/core/domain"
	"github.com/pgnest/hostel-system/internal/core/ports"
)

type notificationService struct {
	repo      ports.NotificationRepository
	residents ports.ResidentRepository
	log       zerolog.Logger
}

// NewNotificationService returns a NotificationService implementation.
func NewNotificationService(repo ports.NotificationRepository, residents ports.ResidentRepository, log zerolog.Logger) ports.NotificationService {
	return &notificationService{repo: repo, residents: residents, log: log}
}

// Deliver persists one notification. Called from dispatcher workers; per
// recipient ordering is guaranteed by the dispatcher's sharding, not here.
func (s *notificationService) Deliver(ctx context.Context, in ports.NotificationInput) error {
	severity := domain.NotificationSeverity(in.Severity)
	if severity == "" {
		severity = domain.SeverityInfo
	}

	n := &domain.Notification{
		ID:          uuid.NewString(),
		PGID:        in.PGID,
		RecipientID: in.RecipientID,
		Title:       in.Title,
		Body:        in.Body,
		Severity:    severity,
		CreatedAt:   time.Now().UTC(),
	}

	if err := s.repo.Insert(ctx, n); err != nil {
		return err
	}

	s.log.Info().
		Str("notification_id", n.ID).
		Str("recipient_id", n.RecipientID).
		Str("severity", string(n.Severity)).
		Msg("notification delivered")

	return nil
}

// Fanout expands a broadcast into one input per active resident.
func (s *notificationService) Fanout(ctx context.Context, pgID, title, body, severity string) ([]ports.NotificationInput, error) {
	recipientIDs, err := s.residents.ListActiveIDs(ctx, pgID)
	if err != nil {
		return nil, err
	}

	inputs := make([]ports.NotificationInput, 0, len(recipientIDs))
	for _, id := range recipientIDs {
		inputs = append(inputs, ports.NotificationInput{
			PGID:        pgID,
			RecipientID: id,
			Title:       title,
			Body:        body,
			Severity:    severity,
		})
	}
	return inputs, nil
}

func (s *notificationService) List(ctx context.Context, filter ports.ListNotificationsFilter) ([]*domain.Notification, int64, error) {
	filter.Page, filter.Limit = normalizePage(filter.Page, filter.Limit)
	return s.repo.List(ctx, filter)
}

// MarkRead stamps the read time. The recipient check keeps one guest from
// acknowledging another guest's notification.
func (s *notificationService) MarkRead(ctx context.Context, id, recipientID string) (*domain.Notification, error) {
	n, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if n.RecipientID != recipientID {
		return nil, domain.ErrForbidden
	}
	if n.ReadAt != nil {
		return n, nil
	}

	now := time.Now().UTC()
	n.ReadAt = &now
	if err := s.repo.Update(ctx, n); err != nil {
		return nil, err
	}
	return n, nil
}
