package middleware

import (
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"github.com/pgnest/hostel-system/internal/core/ports"
)

// SessionKey is the echo context key under which the resolved session is set.
const SessionKey = "session"

// Session parses the bearer token, resolves the session it names and injects
// it into the request context. It never rejects a request: an absent or stale
// token leaves the context without a session, and the guards downstream decide
// what that means for the route.
func Session(sessions ports.SessionService, jwtSecret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			sessionID := sessionIDFromHeader(c.Request().Header.Get("Authorization"), jwtSecret)
			if sessionID == "" {
				return next(c)
			}

			sess, err := sessions.Get(c.Request().Context(), sessionID)
			if err != nil {
				return next(c)
			}

			c.Set(SessionKey, sess)
			return next(c)
		}
	}
}

// sessionIDFromHeader extracts the session_id claim from a bearer JWT.
// Returns "" for anything malformed, expired or badly signed.
func sessionIDFromHeader(authHeader, jwtSecret string) string {
	if authHeader == "" {
		return ""
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return ""
	}

	claims := jwt.MapClaims{}
	tkn, err := jwt.ParseWithClaims(parts[1], claims, func(token *jwt.Token) (interface{}, error) {
		if token.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return []byte(jwtSecret), nil
	})
	if err != nil || !tkn.Valid {
		return ""
	}

	sessionID, _ := claims["session_id"].(string)
	return sessionID
}
