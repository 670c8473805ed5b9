// Package access holds the pure route-gating decision. It knows nothing about
// HTTP or rendering so the full decision table can be tested on its own; the
// guards in internal/api/middleware translate a Deny into a redirect.
package access

import "github.com/pgnest/hostel-system/internal/core/domain"

// Decision is the outcome of evaluating a session against a requirement.
type Decision int

const (
	Deny Decision = iota
	Allow
)

// String returns the metrics/log label for the decision.
func (d Decision) String() string {
	if d == Allow {
		return "allow"
	}
	return "deny"
}

// Requirement is what a guarded route tree demands of a session. SubRole is
// consulted only when set; a requirement with an empty SubRole gates on the
// top-level role alone.
type Requirement struct {
	Role    domain.Role
	SubRole domain.AdminSubRole
}

// Evaluate decides whether the session may enter a tree gated by req. A nil or
// unauthenticated session is always denied; an authenticated session must match
// the required role exactly, and the required sub-role exactly when one is set.
func Evaluate(s *domain.Session, req Requirement) Decision {
	if s == nil || !s.Authenticated {
		return Deny
	}
	if s.Role != req.Role {
		return Deny
	}
	if req.SubRole != "" && s.AdminSubRole != req.SubRole {
		return Deny
	}
	return Allow
}
