package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/pgnest/hostel-system/internal/core/domain"
	"github.com/pgnest/hostel-system/internal/core/ports"
)

// stubResidentRepo is an in-memory ResidentRepository shared by the payment
// and notification tests.
type stubResidentRepo struct {
	residents map[string]*domain.Resident
}

func newStubResidentRepo() *stubResidentRepo {
	return &stubResidentRepo{residents: make(map[string]*domain.Resident)}
}

func (s *stubResidentRepo) Create(_ context.Context, r *domain.Resident) error {
	copied := *r
	s.residents[r.ID] = &copied
	return nil
}

func (s *stubResidentRepo) FindByID(_ context.Context, id string) (*domain.Resident, error) {
	r, ok := s.residents[id]
	if !ok {
		return nil, domain.ErrResidentNotFound
	}
	copied := *r
	return &copied, nil
}

func (s *stubResidentRepo) Update(_ context.Context, r *domain.Resident) error {
	if _, ok := s.residents[r.ID]; !ok {
		return domain.ErrResidentNotFound
	}
	copied := *r
	s.residents[r.ID] = &copied
	return nil
}

func (s *stubResidentRepo) List(_ context.Context, filter ports.ListResidentsFilter) ([]*domain.Resident, int64, error) {
	var out []*domain.Resident
	for _, r := range s.residents {
		if filter.PGID != "" && r.PGID != filter.PGID {
			continue
		}
		if filter.Status != "" && string(r.Status) != filter.Status {
			continue
		}
		if filter.Search != "" && !strings.Contains(r.Name, filter.Search) && !strings.Contains(r.Email, filter.Search) {
			continue
		}
		copied := *r
		out = append(out, &copied)
	}
	return out, int64(len(out)), nil
}

func (s *stubResidentRepo) ListActiveIDs(_ context.Context, pgID string) ([]string, error) {
	var ids []string
	for _, r := range s.residents {
		if r.PGID == pgID && r.Status == domain.ResidentActive {
			ids = append(ids, r.ID)
		}
	}
	return ids, nil
}

func (s *stubResidentRepo) CountActiveByProperty(_ context.Context, pgID string) (int64, error) {
	ids, _ := s.ListActiveIDs(context.Background(), pgID)
	return int64(len(ids)), nil
}

// stubPaymentRepo is an in-memory PaymentRepository.
type stubPaymentRepo struct {
	payments map[string]*domain.Payment
}

func newStubPaymentRepo() *stubPaymentRepo {
	return &stubPaymentRepo{payments: make(map[string]*domain.Payment)}
}

func (s *stubPaymentRepo) Create(_ context.Context, p *domain.Payment) error {
	copied := *p
	s.payments[p.ID] = &copied
	return nil
}

func (s *stubPaymentRepo) FindByID(_ context.Context, id string) (*domain.Payment, error) {
	p, ok := s.payments[id]
	if !ok {
		return nil, domain.ErrPaymentNotFound
	}
	copied := *p
	return &copied, nil
}

func (s *stubPaymentRepo) Update(_ context.Context, p *domain.Payment) error {
	if _, ok := s.payments[p.ID]; !ok {
		return domain.ErrPaymentNotFound
	}
	copied := *p
	s.payments[p.ID] = &copied
	return nil
}

func (s *stubPaymentRepo) List(_ context.Context, filter ports.ListPaymentsFilter) ([]*domain.Payment, int64, error) {
	var out []*domain.Payment
	for _, p := range s.payments {
		if filter.ResidentID != "" && p.ResidentID != filter.ResidentID {
			continue
		}
		if filter.Status != "" && string(p.Status) != filter.Status {
			continue
		}
		if filter.Month != "" && p.Month != filter.Month {
			continue
		}
		copied := *p
		out = append(out, &copied)
	}
	return out, int64(len(out)), nil
}

func (s *stubPaymentRepo) CountPendingByProperty(_ context.Context, pgID string) (int64, error) {
	var n int64
	for _, p := range s.payments {
		if p.PGID == pgID && p.Status == domain.PaymentPending {
			n++
		}
	}
	return n, nil
}

func seedResident(t *testing.T, repo *stubResidentRepo) *domain.Resident {
	t.Helper()
	r := &domain.Resident{
		ID:       "res-1",
		PGID:     "pg-001",
		Name:     "Ankit Sharma",
		Email:    "ankit@example.com",
		JoinDate: time.Now().UTC(),
		Status:   domain.ResidentActive,
	}
	if err := repo.Create(context.Background(), r); err != nil {
		t.Fatalf("seed resident: %v", err)
	}
	return r
}

func TestPaymentService_Record(t *testing.T) {
	residents := newStubResidentRepo()
	resident := seedResident(t, residents)
	svc := NewPaymentService(newStubPaymentRepo(), residents, zerolog.Nop())

	payment, err := svc.Record(context.Background(), ports.RecordPaymentInput{
		PGID:       "pg-001",
		ResidentID: resident.ID,
		Amount:     9500,
		Month:      "2026-09",
	})
	if err != nil {
		t.Fatalf("Record: %v", err)
	}
	if payment.Status != domain.PaymentPending {
		t.Fatalf("status = %s, want pending", payment.Status)
	}
	if payment.Currency != "INR" {
		t.Fatalf("currency default = %s, want INR", payment.Currency)
	}
}

func TestPaymentService_Record_UnknownResident(t *testing.T) {
	svc := NewPaymentService(newStubPaymentRepo(), newStubResidentRepo(), zerolog.Nop())

	_, err := svc.Record(context.Background(), ports.RecordPaymentInput{
		PGID: "pg-001", ResidentID: "ghost", Amount: 9500, Month: "2026-09",
	})
	if err != domain.ErrResidentNotFound {
		t.Fatalf("expected ErrResidentNotFound, got %v", err)
	}
}

func TestPaymentService_MarkPaid(t *testing.T) {
	residents := newStubResidentRepo()
	resident := seedResident(t, residents)
	svc := NewPaymentService(newStubPaymentRepo(), residents, zerolog.Nop())

	payment, _ := svc.Record(context.Background(), ports.RecordPaymentInput{
		PGID: "pg-001", ResidentID: resident.ID, Amount: 9500, Month: "2026-09",
	})

	paid, err := svc.MarkPaid(context.Background(), payment.ID, "upi")
	if err != nil {
		t.Fatalf("MarkPaid: %v", err)
	}
	if paid.Status != domain.PaymentPaid || paid.PaidAt == nil || paid.Method != "upi" {
		t.Fatalf("payment after settle: %+v", paid)
	}

	if _, err := svc.MarkPaid(context.Background(), payment.ID, "upi"); err != domain.ErrPaymentAlreadyPaid {
		t.Fatalf("expected ErrPaymentAlreadyPaid, got %v", err)
	}
}
