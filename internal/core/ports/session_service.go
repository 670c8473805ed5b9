package ports

import (
	"context"

	"github.com/pgnest/hostel-system/internal/core/domain"
)

// LoginInput carries everything a login attempt needs. Remember opts the
// credentials into the shadow's remembered record for automatic resume.
type LoginInput struct {
	Email        string
	Password     string
	Role         domain.Role
	AdminSubRole domain.AdminSubRole
	Remember     bool
}

// LoginResult is returned on successful login. Token is the bearer token that
// binds subsequent requests to the session.
type LoginResult struct {
	Session *domain.Session
	Token   string
}

// SessionService owns all session state. Only the operations below mutate a
// session; everything else reads through Get.
type SessionService interface {
	// Login fails with domain.ErrInvalidCredentials when the registry has no
	// matching entry; session state is left untouched on failure.
	Login(ctx context.Context, input LoginInput) (*LoginResult, error)
	// Logout resets the session to unauthenticated and clears its shadow
	// records. Idempotent; unknown session IDs are a no-op.
	Logout(ctx context.Context, sessionID string) error
	// SetRole overwrites the session role without cross-field validation.
	SetRole(ctx context.Context, sessionID string, role domain.Role) (*domain.Session, error)
	// SetAdminSubRole overwrites the admin sub-role without validating that
	// the role is admin.
	SetAdminSubRole(ctx context.Context, sessionID string, subRole domain.AdminSubRole) (*domain.Session, error)
	// UpdateUser replaces the session identity wholesale.
	UpdateUser(ctx context.Context, sessionID string, identity domain.Identity) (*domain.Session, error)
	// Get resolves a session by ID, falling back to the shadow snapshot for
	// sessions that predate this process. Returns domain.ErrSessionNotFound
	// when neither source knows the ID.
	Get(ctx context.Context, sessionID string) (*domain.Session, error)
	// Resume attempts the automatic login from remembered credentials. A
	// failed attempt clears the remembered record and returns no error; the
	// process continues unauthenticated.
	Resume(ctx context.Context) (*domain.Session, error)
}
