package domain

import "time"

// Session is the per-actor authentication state. It is a two-state machine:
// Unauthenticated (initial) and Authenticated. Login moves it forward, Logout
// moves it back; role, sub-role and identity mutations are self-loops on the
// Authenticated state. There is no terminal state.
//
// Invariant: Authenticated implies Identity is non-nil and Role equals
// Identity.Role.
type Session struct {
	ID            string       `json:"id"`
	Identity      *Identity    `json:"identity,omitempty"`
	Role          Role         `json:"role"`
	AdminSubRole  AdminSubRole `json:"admin_sub_role,omitempty"`
	Authenticated bool         `json:"authenticated"`
	CreatedAt     time.Time    `json:"created_at"`
	UpdatedAt     time.Time    `json:"updated_at"`
}

// NewSession returns a session in the initial unauthenticated state: no
// identity, public role, no sub-role.
func NewSession(id string, now time.Time) *Session {
	return &Session{
		ID:        id,
		Role:      RolePublic,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Reset returns the session to the initial unauthenticated state in place.
// Idempotent.
func (s *Session) Reset(now time.Time) {
	s.Identity = nil
	s.Role = RolePublic
	s.AdminSubRole = ""
	s.Authenticated = false
	s.UpdatedAt = now
}

// Authenticate transitions the session to Authenticated with the given
// identity. The role and sub-role are taken from the identity so the
// role-matches-identity invariant holds by construction.
func (s *Session) Authenticate(identity *Identity, now time.Time) {
	s.Identity = identity
	s.Role = identity.Role
	s.AdminSubRole = identity.AdminSubRole
	s.Authenticated = true
	s.UpdatedAt = now
}
