package ports

import (
	"context"
	"time"

	"github.com/pgnest/hostel-system/internal/core/domain"
)

// SessionSnapshot is the serialized mirror of a session, written as a single
// record per session rather than one key per field so the shadow can never
// hold a partially written session.
type SessionSnapshot struct {
	SessionID     string              `json:"session_id"`
	Identity      *domain.Identity    `json:"identity,omitempty"`
	Role          domain.Role         `json:"role"`
	AdminSubRole  domain.AdminSubRole `json:"admin_sub_role,omitempty"`
	Authenticated bool                `json:"authenticated"`
	UpdatedAt     time.Time           `json:"updated_at"`
}

// RememberedCredentials is the "remember me" record used for automatic login.
// The full role/sub-role is persisted with the pair so a resume replays the
// login the credentials actually belong to.
type RememberedCredentials struct {
	Email        string              `json:"email"`
	Password     string              `json:"password"`
	Role         domain.Role         `json:"role"`
	AdminSubRole domain.AdminSubRole `json:"admin_sub_role,omitempty"`
}

// SessionShadow is the best-effort persistence mirror of session state. Writes
// may fail without failing the session operation that triggered them; callers
// log and continue.
type SessionShadow interface {
	SaveSnapshot(ctx context.Context, snap SessionSnapshot) error
	// LoadSnapshot returns domain.ErrSessionNotFound when no snapshot exists.
	LoadSnapshot(ctx context.Context, sessionID string) (*SessionSnapshot, error)
	DeleteSnapshot(ctx context.Context, sessionID string) error

	SaveRemembered(ctx context.Context, rec RememberedCredentials) error
	// LoadRemembered returns (nil, nil) when nothing is remembered.
	LoadRemembered(ctx context.Context) (*RememberedCredentials, error)
	DeleteRemembered(ctx context.Context) error
}
