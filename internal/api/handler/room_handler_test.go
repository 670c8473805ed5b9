package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/pgnest/hostel-system/internal/api/middleware"
	"github.com/pgnest/hostel-system/internal/core/domain"
	"github.com/pgnest/hostel-system/internal/core/ports"
)

type fakeRoomService struct {
	created   ports.CreateRoomInput
	createErr error
	vacancies []ports.RoomVacancy
}

func (f *fakeRoomService) Create(_ context.Context, input ports.CreateRoomInput) (*domain.Room, error) {
	f.created = input
	if f.createErr != nil {
		return nil, f.createErr
	}
	return &domain.Room{
		ID:       "room-1",
		PGID:     input.PGID,
		Number:   input.Number,
		Capacity: input.Capacity,
		Status:   domain.RoomAvailable,
	}, nil
}

func (f *fakeRoomService) Get(context.Context, string) (*domain.Room, error) {
	return nil, domain.ErrRoomNotFound
}

func (f *fakeRoomService) List(context.Context, ports.ListRoomsFilter) (*ports.ListRoomsResult, error) {
	return &ports.ListRoomsResult{Page: 1, Limit: 20}, nil
}

func (f *fakeRoomService) Update(context.Context, string, ports.UpdateRoomInput) (*domain.Room, error) {
	return nil, domain.ErrRoomNotFound
}

func (f *fakeRoomService) Assign(context.Context, string) (*domain.Room, error) {
	return nil, domain.ErrRoomNotFound
}

func (f *fakeRoomService) Release(context.Context, string) (*domain.Room, error) {
	return nil, domain.ErrRoomNotFound
}

func (f *fakeRoomService) Vacancies(context.Context, string) ([]ports.RoomVacancy, error) {
	return f.vacancies, nil
}

func adminContext(c echo.Context, subRole domain.AdminSubRole) {
	sess := domain.NewSession("sess-1", time.Now())
	sess.Authenticate(&domain.Identity{
		ID:           "admin-1",
		Role:         domain.RoleAdmin,
		AdminSubRole: subRole,
		PGID:         "pg-001",
	}, time.Now())
	c.Set(middleware.SessionKey, sess)
}

func TestRoomHandler_Create(t *testing.T) {
	svc := &fakeRoomService{}
	h := NewRoomHandler(svc)

	c, rec := newTestContext(t, http.MethodPost, "/pg-admin/rooms",
		`{"number":"204","floor":2,"type":"double","capacity":2,"rent_monthly":8500}`)
	adminContext(c, domain.SubRolePGAdmin)

	if err := h.Create(c); err != nil {
		t.Fatalf("create error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
	if svc.created.PGID != "pg-001" {
		t.Fatalf("property scope not taken from session: %q", svc.created.PGID)
	}
	if svc.created.Number != "204" || svc.created.Capacity != 2 {
		t.Fatalf("input not forwarded: %+v", svc.created)
	}
}

func TestRoomHandler_CreateWithoutSession(t *testing.T) {
	h := NewRoomHandler(&fakeRoomService{})

	c, _ := newTestContext(t, http.MethodPost, "/pg-admin/rooms",
		`{"number":"204","type":"double","capacity":2,"rent_monthly":8500}`)

	err := h.Create(c)
	he, ok := err.(*echo.HTTPError)
	if !ok {
		t.Fatalf("expected HTTPError, got %v", err)
	}
	if he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", he.Code)
	}
}

func TestRoomHandler_CreateRejectsInvalidPayload(t *testing.T) {
	h := NewRoomHandler(&fakeRoomService{})

	c, _ := newTestContext(t, http.MethodPost, "/pg-admin/rooms",
		`{"number":"204","type":"penthouse","capacity":0,"rent_monthly":8500}`)
	adminContext(c, domain.SubRolePGAdmin)

	err := h.Create(c)
	he, ok := err.(*echo.HTTPError)
	if !ok {
		t.Fatalf("expected HTTPError, got %v", err)
	}
	if he.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", he.Code)
	}
}

func TestRoomHandler_VacanciesPublic(t *testing.T) {
	svc := &fakeRoomService{vacancies: []ports.RoomVacancy{
		{ID: "room-1", Number: "101", Type: "single", RentMonthly: 6000, Beds: 1},
	}}
	h := NewRoomHandler(svc)

	c, rec := newTestContext(t, http.MethodGet, "/public/rooms?pg_id=pg-001", "")

	if err := h.Vacancies(c); err != nil {
		t.Fatalf("vacancies error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var got []ports.RoomVacancy
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(got) != 1 || got[0].Number != "101" {
		t.Fatalf("unexpected vacancies: %+v", got)
	}
}

func TestRoomHandler_VacanciesRequiresProperty(t *testing.T) {
	h := NewRoomHandler(&fakeRoomService{})

	c, _ := newTestContext(t, http.MethodGet, "/public/rooms", "")
	err := h.Vacancies(c)
	he, ok := err.(*echo.HTTPError)
	if !ok {
		t.Fatalf("expected HTTPError, got %v", err)
	}
	if he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", he.Code)
	}
}
