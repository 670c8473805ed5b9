package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/pgnest/hostel-system/internal/api/metrics"
	"github.com/pgnest/hostel-system/internal/core/access"
	"github.com/pgnest/hostel-system/internal/core/domain"
)

// RoleSelectionPath is where every denied request is sent. It is the public
// entry point for choosing an audience and logging in.
const RoleSelectionPath = "/role-selection"

// Guard gates a route tree on an access requirement. The decision itself is
// access.Evaluate; the guard only translates a Deny into a 303 redirect to the
// role selection page so the actor can authenticate as the required audience.
func Guard(name string, req access.Requirement, log zerolog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			sess, _ := c.Get(SessionKey).(*domain.Session)
			decision := access.Evaluate(sess, req)
			metrics.GuardDecisionsTotal.WithLabelValues(name, decision.String()).Inc()

			if decision != access.Allow {
				evt := log.Info().
					Str("guard", name).
					Str("path", c.Request().URL.Path)
				if sess != nil {
					evt = evt.Str("session_id", sess.ID).Str("role", string(sess.Role))
				}
				evt.Msg("access denied")
				return c.Redirect(http.StatusSeeOther, RoleSelectionPath)
			}
			return next(c)
		}
	}
}

// RequireGuest gates the guest dashboard.
func RequireGuest(log zerolog.Logger) echo.MiddlewareFunc {
	return Guard("guest", access.Requirement{Role: domain.RoleGuest}, log)
}

// RequireSuperAdmin gates the portfolio tree.
func RequireSuperAdmin(log zerolog.Logger) echo.MiddlewareFunc {
	return Guard("super_admin", access.Requirement{
		Role:    domain.RoleAdmin,
		SubRole: domain.SubRoleSuperAdmin,
	}, log)
}

// RequirePGAdmin gates the property management tree.
func RequirePGAdmin(log zerolog.Logger) echo.MiddlewareFunc {
	return Guard("pg_admin", access.Requirement{
		Role:    domain.RoleAdmin,
		SubRole: domain.SubRolePGAdmin,
	}, log)
}

// RequireWarden gates the day-to-day operations tree.
func RequireWarden(log zerolog.Logger) echo.MiddlewareFunc {
	return Guard("warden", access.Requirement{
		Role:    domain.RoleAdmin,
		SubRole: domain.SubRoleWarden,
	}, log)
}
