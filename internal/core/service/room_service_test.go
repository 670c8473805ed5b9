package service

import (
	"context"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/pgnest/hostel-system/internal/core/domain"
	"github.com/pgnest/hostel-system/internal/core/ports"
)

// stubRoomRepo is an in-memory RoomRepository.
type stubRoomRepo struct {
	rooms map[string]*domain.Room
}

func newStubRoomRepo() *stubRoomRepo {
	return &stubRoomRepo{rooms: make(map[string]*domain.Room)}
}

func cloneRoom(r *domain.Room) *domain.Room {
	if r == nil {
		return nil
	}
	copied := *r
	return &copied
}

func (s *stubRoomRepo) Create(_ context.Context, room *domain.Room) error {
	s.rooms[room.ID] = cloneRoom(room)
	return nil
}

func (s *stubRoomRepo) FindByID(_ context.Context, id string) (*domain.Room, error) {
	room, ok := s.rooms[id]
	if !ok {
		return nil, domain.ErrRoomNotFound
	}
	return cloneRoom(room), nil
}

func (s *stubRoomRepo) FindByNumber(_ context.Context, pgID, number string) (*domain.Room, error) {
	for _, room := range s.rooms {
		if room.PGID == pgID && room.Number == number {
			return cloneRoom(room), nil
		}
	}
	return nil, domain.ErrRoomNotFound
}

func (s *stubRoomRepo) Update(_ context.Context, room *domain.Room) error {
	if _, ok := s.rooms[room.ID]; !ok {
		return domain.ErrRoomNotFound
	}
	s.rooms[room.ID] = cloneRoom(room)
	return nil
}

func (s *stubRoomRepo) List(_ context.Context, filter ports.ListRoomsFilter) ([]*domain.Room, int64, error) {
	var out []*domain.Room
	for _, room := range s.rooms {
		if filter.PGID != "" && room.PGID != filter.PGID {
			continue
		}
		if filter.Status != "" && string(room.Status) != filter.Status {
			continue
		}
		if filter.Search != "" && !strings.Contains(room.Number, filter.Search) {
			continue
		}
		out = append(out, cloneRoom(room))
	}
	return out, int64(len(out)), nil
}

func (s *stubRoomRepo) CountByProperty(_ context.Context, pgID string) (int64, error) {
	var n int64
	for _, room := range s.rooms {
		if room.PGID == pgID {
			n++
		}
	}
	return n, nil
}

func createTestRoom(t *testing.T, svc *RoomService, capacity int) *domain.Room {
	t.Helper()
	room, err := svc.Create(context.Background(), ports.CreateRoomInput{
		PGID:        "pg-001",
		Number:      "204",
		Floor:       2,
		Type:        "double",
		Capacity:    capacity,
		RentMonthly: 9500,
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	return room
}

func TestRoomService_Assign_CapacityEnforced(t *testing.T) {
	svc := NewRoomService(newStubRoomRepo(), zerolog.Nop())
	room := createTestRoom(t, svc, 2)

	for i := 0; i < 2; i++ {
		if _, err := svc.Assign(context.Background(), room.ID); err != nil {
			t.Fatalf("Assign %d: %v", i, err)
		}
	}

	if _, err := svc.Assign(context.Background(), room.ID); err != domain.ErrRoomFull {
		t.Fatalf("expected ErrRoomFull, got %v", err)
	}

	full, _ := svc.Get(context.Background(), room.ID)
	if full.Occupied != 2 || full.Status != domain.RoomOccupied {
		t.Fatalf("room state after fill: %+v", full)
	}
}

func TestRoomService_Release_NeverUnderflows(t *testing.T) {
	svc := NewRoomService(newStubRoomRepo(), zerolog.Nop())
	room := createTestRoom(t, svc, 2)

	if _, err := svc.Release(context.Background(), room.ID); err != domain.ErrRoomVacant {
		t.Fatalf("expected ErrRoomVacant, got %v", err)
	}

	if _, err := svc.Assign(context.Background(), room.ID); err != nil {
		t.Fatalf("Assign: %v", err)
	}
	released, err := svc.Release(context.Background(), room.ID)
	if err != nil {
		t.Fatalf("Release: %v", err)
	}
	if released.Occupied != 0 || released.Status != domain.RoomAvailable {
		t.Fatalf("room state after release: %+v", released)
	}
}

func TestRoomService_Create_DuplicateNumber(t *testing.T) {
	svc := NewRoomService(newStubRoomRepo(), zerolog.Nop())
	createTestRoom(t, svc, 2)

	_, err := svc.Create(context.Background(), ports.CreateRoomInput{
		PGID: "pg-001", Number: "204", Capacity: 1,
	})
	if err != domain.ErrDuplicateRoom {
		t.Fatalf("expected ErrDuplicateRoom, got %v", err)
	}
}

func TestRoomService_Vacancies_PublicProjection(t *testing.T) {
	repo := newStubRoomRepo()
	svc := NewRoomService(repo, zerolog.Nop())
	room := createTestRoom(t, svc, 2)

	if _, err := svc.Assign(context.Background(), room.ID); err != nil {
		t.Fatalf("Assign: %v", err)
	}

	vacancies, err := svc.Vacancies(context.Background(), "pg-001")
	if err != nil {
		t.Fatalf("Vacancies: %v", err)
	}
	if len(vacancies) != 1 {
		t.Fatalf("expected 1 vacancy, got %d", len(vacancies))
	}
	if vacancies[0].Beds != 1 {
		t.Fatalf("beds free = %d, want 1", vacancies[0].Beds)
	}
}
