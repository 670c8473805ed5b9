package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/pgnest/hostel-system/internal/core/domain"
	"github.com/pgnest/hostel-system/internal/core/ports"
)

const defaultThreadLimit = 50

type MessageService struct {
	repo   ports.MessageRepository
	logger zerolog.Logger
}

func NewMessageService(repo ports.MessageRepository, logger zerolog.Logger) *MessageService {
	return &MessageService{repo: repo, logger: logger}
}

func (s *MessageService) Send(ctx context.Context, input ports.SendMessageInput) (*domain.Message, error) {
	m := &domain.Message{
		ID:       uuid.NewString(),
		ThreadID: domain.ThreadID(input.FromID, input.ToID),
		FromID:   input.FromID,
		ToID:     input.ToID,
		Body:     input.Body,
		SentAt:   time.Now().UTC(),
	}

	if err := s.repo.Insert(ctx, m); err != nil {
		s.logger.Error().Err(err).Str("thread_id", m.ThreadID).Msg("failed to send message")
		return nil, err
	}

	s.logger.Info().Str("message_id", m.ID).Str("thread_id", m.ThreadID).Msg("message sent")
	return m, nil
}

func (s *MessageService) Thread(ctx context.Context, userID, otherID string, limit int) ([]*domain.Message, error) {
	if limit < 1 || limit > maxPageLimit {
		limit = defaultThreadLimit
	}
	return s.repo.ListThread(ctx, domain.ThreadID(userID, otherID), limit)
}

func (s *MessageService) Threads(ctx context.Context, userID string) ([]ports.ThreadSummary, error) {
	return s.repo.ListThreadsFor(ctx, userID)
}
