package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"github.com/pgnest/hostel-system/internal/core/domain"
	"github.com/pgnest/hostel-system/internal/core/ports"
)

type stubSessionService struct {
	sessions map[string]*domain.Session
}

func (s *stubSessionService) Login(context.Context, ports.LoginInput) (*ports.LoginResult, error) {
	return nil, domain.ErrInvalidCredentials
}

func (s *stubSessionService) Logout(context.Context, string) error { return nil }

func (s *stubSessionService) SetRole(context.Context, string, domain.Role) (*domain.Session, error) {
	return nil, domain.ErrSessionNotFound
}

func (s *stubSessionService) SetAdminSubRole(context.Context, string, domain.AdminSubRole) (*domain.Session, error) {
	return nil, domain.ErrSessionNotFound
}

func (s *stubSessionService) UpdateUser(context.Context, string, domain.Identity) (*domain.Session, error) {
	return nil, domain.ErrSessionNotFound
}

func (s *stubSessionService) Get(_ context.Context, id string) (*domain.Session, error) {
	sess, ok := s.sessions[id]
	if !ok {
		return nil, domain.ErrSessionNotFound
	}
	return sess, nil
}

func (s *stubSessionService) Resume(context.Context) (*domain.Session, error) {
	return nil, nil
}

func signToken(t *testing.T, secret, sessionID string) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"session_id": sessionID,
		"exp":        time.Now().Add(time.Hour).Unix(),
	})
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return signed
}

func TestSessionMiddleware_ValidToken(t *testing.T) {
	sess := domain.NewSession("sess-1", time.Now())
	sess.Authenticate(&domain.Identity{ID: "u1", Role: domain.RoleGuest}, time.Now())
	svc := &stubSessionService{sessions: map[string]*domain.Session{"sess-1": sess}}

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, "secret", "sess-1"))
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := Session(svc, "secret")(func(c echo.Context) error {
		got, ok := c.Get(SessionKey).(*domain.Session)
		if !ok {
			t.Fatalf("session not set")
		}
		if got.ID != "sess-1" {
			t.Fatalf("wrong session: %s", got.ID)
		}
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
}

func TestSessionMiddleware_NoHeaderPassesThrough(t *testing.T) {
	svc := &stubSessionService{sessions: map[string]*domain.Session{}}

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	called := false
	handler := Session(svc, "secret")(func(c echo.Context) error {
		called = true
		if c.Get(SessionKey) != nil {
			t.Fatalf("session should not be set")
		}
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("next not called")
	}
}

func TestSessionMiddleware_BadSignaturePassesThrough(t *testing.T) {
	svc := &stubSessionService{sessions: map[string]*domain.Session{}}

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, "other-secret", "sess-1"))
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	called := false
	handler := Session(svc, "secret")(func(c echo.Context) error {
		called = true
		if c.Get(SessionKey) != nil {
			t.Fatalf("session should not be set for a badly signed token")
		}
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("next not called")
	}
}

func TestSessionMiddleware_UnknownSessionPassesThrough(t *testing.T) {
	svc := &stubSessionService{sessions: map[string]*domain.Session{}}

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, "secret", "gone"))
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := Session(svc, "secret")(func(c echo.Context) error {
		if c.Get(SessionKey) != nil {
			t.Fatalf("session should not be set for an unknown session ID")
		}
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
}
