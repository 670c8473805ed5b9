package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/pgnest/hostel-system/internal/api/middleware"
	"github.com/pgnest/hostel-system/internal/core/domain"
)

// ctxSession extracts the session injected by the Session middleware. Routes
// behind a guard always have an authenticated session here; the check exists
// for handlers mounted outside a guarded tree.
func ctxSession(c echo.Context) (*domain.Session, error) {
	sess, _ := c.Get(middleware.SessionKey).(*domain.Session)
	if sess == nil || !sess.Authenticated {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "not authenticated")
	}
	return sess, nil
}

// ctxPGID resolves the property scope of the calling session. Admins carry it
// on their identity; a session without one cannot use property-scoped routes.
func ctxPGID(c echo.Context) (string, error) {
	sess, err := ctxSession(c)
	if err != nil {
		return "", err
	}
	if sess.Identity == nil || sess.Identity.PGID == "" {
		return "", echo.NewHTTPError(http.StatusUnauthorized, "session has no property scope")
	}
	return sess.Identity.PGID, nil
}
