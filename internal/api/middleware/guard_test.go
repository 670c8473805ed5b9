package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/pgnest/hostel-system/internal/core/domain"
)

func authenticatedSession(role domain.Role, subRole domain.AdminSubRole) *domain.Session {
	sess := domain.NewSession("sess-1", time.Now())
	sess.Authenticate(&domain.Identity{
		ID:           "u1",
		Role:         role,
		AdminSubRole: subRole,
	}, time.Now())
	return sess
}

func runGuard(t *testing.T, mw echo.MiddlewareFunc, sess *domain.Session) (*httptest.ResponseRecorder, bool) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if sess != nil {
		c.Set(SessionKey, sess)
	}

	called := false
	handler := mw(func(c echo.Context) error {
		called = true
		return c.NoContent(http.StatusOK)
	})
	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	return rec, called
}

func TestGuard_AllowsMatchingSubRole(t *testing.T) {
	rec, called := runGuard(t, RequireWarden(zerolog.Nop()),
		authenticatedSession(domain.RoleAdmin, domain.SubRoleWarden))
	if !called {
		t.Fatalf("next not called")
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestGuard_RedirectsWithoutSession(t *testing.T) {
	rec, called := runGuard(t, RequireGuest(zerolog.Nop()), nil)
	if called {
		t.Fatalf("next should not be called")
	}
	if rec.Code != http.StatusSeeOther {
		t.Fatalf("expected 303, got %d", rec.Code)
	}
	if loc := rec.Header().Get(echo.HeaderLocation); loc != RoleSelectionPath {
		t.Fatalf("expected redirect to %s, got %s", RoleSelectionPath, loc)
	}
}

func TestGuard_RedirectsUnauthenticatedSession(t *testing.T) {
	sess := domain.NewSession("sess-1", time.Now())
	rec, called := runGuard(t, RequireGuest(zerolog.Nop()), sess)
	if called {
		t.Fatalf("next should not be called")
	}
	if rec.Code != http.StatusSeeOther {
		t.Fatalf("expected 303, got %d", rec.Code)
	}
}

func TestGuard_RedirectsWrongRole(t *testing.T) {
	rec, called := runGuard(t, RequireGuest(zerolog.Nop()),
		authenticatedSession(domain.RoleAdmin, domain.SubRolePGAdmin))
	if called {
		t.Fatalf("next should not be called")
	}
	if rec.Code != http.StatusSeeOther {
		t.Fatalf("expected 303, got %d", rec.Code)
	}
}

func TestGuard_AdminTreesAreDisjoint(t *testing.T) {
	sess := authenticatedSession(domain.RoleAdmin, domain.SubRoleWarden)

	for name, mw := range map[string]echo.MiddlewareFunc{
		"super_admin": RequireSuperAdmin(zerolog.Nop()),
		"pg_admin":    RequirePGAdmin(zerolog.Nop()),
	} {
		rec, called := runGuard(t, mw, sess)
		if called {
			t.Fatalf("%s: next should not be called for a warden", name)
		}
		if rec.Code != http.StatusSeeOther {
			t.Fatalf("%s: expected 303, got %d", name, rec.Code)
		}
	}
}
