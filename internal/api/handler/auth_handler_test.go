package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/pgnest/hostel-system/internal/api/middleware"
	"github.com/pgnest/hostel-system/internal/core/domain"
	"github.com/pgnest/hostel-system/internal/core/ports"
)

type fakeSessionService struct {
	loginErr   error
	lastLogin  ports.LoginInput
	loggedOut  []string
	session    *domain.Session
	setRole    domain.Role
	setSubRole domain.AdminSubRole
}

func (f *fakeSessionService) Login(_ context.Context, input ports.LoginInput) (*ports.LoginResult, error) {
	f.lastLogin = input
	if f.loginErr != nil {
		return nil, f.loginErr
	}
	sess := domain.NewSession("sess-1", time.Now())
	sess.Authenticate(&domain.Identity{
		ID:           "u1",
		Email:        input.Email,
		Role:         input.Role,
		AdminSubRole: input.AdminSubRole,
	}, time.Now())
	return &ports.LoginResult{Session: sess, Token: "tok-1"}, nil
}

func (f *fakeSessionService) Logout(_ context.Context, id string) error {
	f.loggedOut = append(f.loggedOut, id)
	return nil
}

func (f *fakeSessionService) SetRole(_ context.Context, _ string, role domain.Role) (*domain.Session, error) {
	f.setRole = role
	f.session.Role = role
	return f.session, nil
}

func (f *fakeSessionService) SetAdminSubRole(_ context.Context, _ string, subRole domain.AdminSubRole) (*domain.Session, error) {
	f.setSubRole = subRole
	f.session.AdminSubRole = subRole
	return f.session, nil
}

func (f *fakeSessionService) UpdateUser(_ context.Context, _ string, identity domain.Identity) (*domain.Session, error) {
	f.session.Identity = &identity
	return f.session, nil
}

func (f *fakeSessionService) Get(context.Context, string) (*domain.Session, error) {
	if f.session == nil {
		return nil, domain.ErrSessionNotFound
	}
	return f.session, nil
}

func (f *fakeSessionService) Resume(context.Context) (*domain.Session, error) {
	return nil, nil
}

func newTestContext(t *testing.T, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	e.Validator = NewValidator()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestAuthHandler_Login(t *testing.T) {
	svc := &fakeSessionService{}
	h := NewAuthHandler(svc)

	c, rec := newTestContext(t, http.MethodPost, "/auth/login",
		`{"email":"warden@pgnest.io","password":"warden@123","role":"admin","admin_sub_role":"warden","remember":true}`)

	if err := h.Login(c); err != nil {
		t.Fatalf("login error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp sessionResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Token != "tok-1" {
		t.Fatalf("expected token, got %q", resp.Token)
	}
	if !resp.Session.Authenticated {
		t.Fatalf("session should be authenticated")
	}
	if !svc.lastLogin.Remember {
		t.Fatalf("remember flag not forwarded")
	}
	if svc.lastLogin.AdminSubRole != domain.SubRoleWarden {
		t.Fatalf("sub-role not forwarded: %s", svc.lastLogin.AdminSubRole)
	}
}

func TestAuthHandler_LoginInvalidCredentials(t *testing.T) {
	svc := &fakeSessionService{loginErr: domain.ErrInvalidCredentials}
	h := NewAuthHandler(svc)

	c, _ := newTestContext(t, http.MethodPost, "/auth/login",
		`{"email":"warden@pgnest.io","password":"wrong","role":"admin"}`)

	err := h.Login(c)
	he, ok := err.(*echo.HTTPError)
	if !ok {
		t.Fatalf("expected HTTPError, got %v", err)
	}
	if he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", he.Code)
	}
}

func TestAuthHandler_LoginRejectsBadPayload(t *testing.T) {
	h := NewAuthHandler(&fakeSessionService{})

	cases := map[string]string{
		"missing password": `{"email":"a@b.io","role":"guest"}`,
		"bad email":        `{"email":"not-an-email","password":"x","role":"guest"}`,
		"bad role":         `{"email":"a@b.io","password":"x","role":"superuser"}`,
	}
	for name, body := range cases {
		c, _ := newTestContext(t, http.MethodPost, "/auth/login", body)
		err := h.Login(c)
		he, ok := err.(*echo.HTTPError)
		if !ok {
			t.Fatalf("%s: expected HTTPError, got %v", name, err)
		}
		if he.Code != http.StatusUnprocessableEntity {
			t.Fatalf("%s: expected 422, got %d", name, he.Code)
		}
	}
}

func TestAuthHandler_Logout(t *testing.T) {
	sess := domain.NewSession("sess-1", time.Now())
	sess.Authenticate(&domain.Identity{ID: "u1", Role: domain.RoleGuest}, time.Now())
	svc := &fakeSessionService{session: sess}
	h := NewAuthHandler(svc)

	c, rec := newTestContext(t, http.MethodPost, "/auth/logout", "")
	c.Set(middleware.SessionKey, sess)

	if err := h.Logout(c); err != nil {
		t.Fatalf("logout error: %v", err)
	}
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}
	if len(svc.loggedOut) != 1 || svc.loggedOut[0] != "sess-1" {
		t.Fatalf("logout not forwarded: %v", svc.loggedOut)
	}
}

func TestAuthHandler_LogoutWithoutSession(t *testing.T) {
	h := NewAuthHandler(&fakeSessionService{})

	c, _ := newTestContext(t, http.MethodPost, "/auth/logout", "")
	err := h.Logout(c)
	he, ok := err.(*echo.HTTPError)
	if !ok {
		t.Fatalf("expected HTTPError, got %v", err)
	}
	if he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", he.Code)
	}
}

func TestAuthHandler_SetRole(t *testing.T) {
	sess := domain.NewSession("sess-1", time.Now())
	sess.Authenticate(&domain.Identity{ID: "u1", Role: domain.RoleGuest}, time.Now())
	svc := &fakeSessionService{session: sess}
	h := NewAuthHandler(svc)

	c, rec := newTestContext(t, http.MethodPut, "/auth/session/role", `{"role":"admin"}`)
	c.Set(middleware.SessionKey, sess)

	if err := h.SetRole(c); err != nil {
		t.Fatalf("set role error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if svc.setRole != domain.RoleAdmin {
		t.Fatalf("role not forwarded: %s", svc.setRole)
	}
}

func TestAuthHandler_UpdateProfilePreservesPlacement(t *testing.T) {
	join := time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC)
	sess := domain.NewSession("sess-1", time.Now())
	sess.Authenticate(&domain.Identity{
		ID:         "u1",
		Name:       "Old Name",
		Email:      "old@pgnest.io",
		Role:       domain.RoleGuest,
		RoomNumber: "204",
		JoinDate:   &join,
		PGID:       "pg-001",
	}, time.Now())
	svc := &fakeSessionService{session: sess}
	h := NewAuthHandler(svc)

	c, rec := newTestContext(t, http.MethodPut, "/auth/session/profile",
		`{"name":"New Name","email":"new@pgnest.io"}`)
	c.Set(middleware.SessionKey, sess)

	if err := h.UpdateProfile(c); err != nil {
		t.Fatalf("update profile error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	got := svc.session.Identity
	if got.Name != "New Name" || got.Email != "new@pgnest.io" {
		t.Fatalf("profile fields not applied: %+v", got)
	}
	if got.RoomNumber != "204" || got.PGID != "pg-001" {
		t.Fatalf("placement fields lost: %+v", got)
	}
	if got.JoinDate == nil || !got.JoinDate.Equal(join) {
		t.Fatalf("join date lost")
	}
}

func TestAuthHandler_RoleSelection(t *testing.T) {
	h := NewAuthHandler(&fakeSessionService{})

	c, rec := newTestContext(t, http.MethodGet, "/role-selection", "")
	if err := h.RoleSelection(c); err != nil {
		t.Fatalf("role selection error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var options []roleOption
	if err := json.Unmarshal(rec.Body.Bytes(), &options); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(options) != 2 {
		t.Fatalf("expected 2 audiences, got %d", len(options))
	}
	if options[0].Role != "admin" || len(options[0].SubRoles) != 3 {
		t.Fatalf("admin option malformed: %+v", options[0])
	}
}
