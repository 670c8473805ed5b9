package ports

import "github.com/pgnest/hostel-system/internal/core/domain"

// CredentialRegistry resolves a credential tuple to its canned identity. Pure
// lookup: no side effects, no lockout, no rate limiting.
type CredentialRegistry interface {
	// Lookup returns the identity owning the credentials, or
	// domain.ErrInvalidCredentials when the tuple matches no entry. The
	// caller-asserted role/sub-role must match the entry that owns the
	// email/password pair.
	Lookup(email, password string, role domain.Role, subRole domain.AdminSubRole) (*domain.Identity, error)
}
