package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/pgnest/hostel-system/internal/core/domain"
	"github.com/pgnest/hostel-system/internal/core/ports"
)

type PaymentService struct {
	repo      ports.PaymentRepository
	residents ports.ResidentRepository
	logger    zerolog.Logger
}

func NewPaymentService(repo ports.PaymentRepository, residents ports.ResidentRepository, logger zerolog.Logger) *PaymentService {
	return &PaymentService{repo: repo, residents: residents, logger: logger}
}

// Record creates a pending rent charge for one resident and billing month.
func (s *PaymentService) Record(ctx context.Context, input ports.RecordPaymentInput) (*domain.Payment, error) {
	if _, err := s.residents.FindByID(ctx, input.ResidentID); err != nil {
		return nil, err
	}

	currency := input.Currency
	if currency == "" {
		currency = "INR"
	}

	payment := &domain.Payment{
		ID:         uuid.NewString(),
		PGID:       input.PGID,
		ResidentID: input.ResidentID,
		Amount:     input.Amount,
		Currency:   currency,
		Month:      input.Month,
		Status:     domain.PaymentPending,
		CreatedAt:  time.Now().UTC(),
	}

	if err := s.repo.Create(ctx, payment); err != nil {
		s.logger.Error().Err(err).Str("resident_id", input.ResidentID).Msg("failed to record payment")
		return nil, err
	}

	s.logger.Info().Str("payment_id", payment.ID).Str("month", payment.Month).Msg("payment recorded")
	return payment, nil
}

func (s *PaymentService) Get(ctx context.Context, id string) (*domain.Payment, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *PaymentService) List(ctx context.Context, filter ports.ListPaymentsFilter) (*ports.ListPaymentsResult, error) {
	filter.Page, filter.Limit = normalizePage(filter.Page, filter.Limit)

	items, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	return &ports.ListPaymentsResult{
		Items:      items,
		Total:      total,
		Page:       filter.Page,
		Limit:      filter.Limit,
		TotalPages: totalPages(total, filter.Limit),
	}, nil
}

// MarkPaid settles a pending or overdue charge. Settling twice fails with
// ErrPaymentAlreadyPaid so the ledger stays append-consistent.
func (s *PaymentService) MarkPaid(ctx context.Context, id, method string) (*domain.Payment, error) {
	payment, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if payment.Status == domain.PaymentPaid {
		return nil, domain.ErrPaymentAlreadyPaid
	}

	now := time.Now().UTC()
	payment.Status = domain.PaymentPaid
	payment.Method = method
	payment.PaidAt = &now

	if err := s.repo.Update(ctx, payment); err != nil {
		return nil, err
	}

	s.logger.Info().Str("payment_id", payment.ID).Str("method", method).Msg("payment settled")
	return payment, nil
}
