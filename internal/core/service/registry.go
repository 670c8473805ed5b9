package service

import (
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/pgnest/hostel-system/internal/core/domain"
)

// registryEntry pairs one credential record with the identity it unlocks.
type registryEntry struct {
	email        string
	passwordHash []byte
	identity     domain.Identity
}

// Registry is the fixed demo credential table: one entry per (role, sub-role)
// combination. Lookup is a pure in-memory comparison; there is no signup path,
// no lockout, and no rate limiting.
type Registry struct {
	entries []registryEntry
}

// demoSeed is one seeded credential record.
type demoSeed struct {
	email    string
	password string
	identity domain.Identity
}

func demoSeeds() []demoSeed {
	return []demoSeed{
		{
			email:    "superadmin@pgnest.io",
			password: "super@123",
			identity: domain.Identity{
				ID:           "usr-super-admin",
				Name:         "Suresh Iyer",
				Email:        "superadmin@pgnest.io",
				Role:         domain.RoleAdmin,
				AdminSubRole: domain.SubRoleSuperAdmin,
			},
		},
		{
			email:    "pgadmin@pgnest.io",
			password: "admin@123",
			identity: domain.Identity{
				ID:           "usr-pg-admin",
				Name:         "Priya Nair",
				Email:        "pgadmin@pgnest.io",
				Role:         domain.RoleAdmin,
				AdminSubRole: domain.SubRolePGAdmin,
				PGID:         "pg-001",
			},
		},
		{
			email:    "warden@pgnest.io",
			password: "warden@123",
			identity: domain.Identity{
				ID:           "usr-warden",
				Name:         "Ramesh Kulkarni",
				Email:        "warden@pgnest.io",
				Role:         domain.RoleAdmin,
				AdminSubRole: domain.SubRoleWarden,
				PGID:         "pg-001",
			},
		},
		{
			email:    "guest@pgnest.io",
			password: "guest@123",
			identity: domain.Identity{
				ID:         "usr-guest",
				Name:       "Ankit Sharma",
				Email:      "guest@pgnest.io",
				Role:       domain.RoleGuest,
				RoomNumber: "204",
				PGID:       "pg-001",
			},
		},
	}
}

// NewRegistry builds the registry from the demo seeds, hashing each password
// at construction so no plaintext credential lives in the table.
func NewRegistry() (*Registry, error) {
	seeds := demoSeeds()
	entries := make([]registryEntry, 0, len(seeds))
	for _, s := range seeds {
		hash, err := bcrypt.GenerateFromPassword([]byte(s.password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		entries = append(entries, registryEntry{
			email:        s.email,
			passwordHash: hash,
			identity:     s.identity,
		})
	}
	return &Registry{entries: entries}, nil
}

// Lookup resolves a credential tuple to its identity. The asserted role and
// sub-role must match the entry that owns the email; a valid pair presented
// under a different role fails the same way a wrong password does, so a
// credential cannot be replayed into another tree.
func (r *Registry) Lookup(email, password string, role domain.Role, subRole domain.AdminSubRole) (*domain.Identity, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	for i := range r.entries {
		e := &r.entries[i]
		if e.email != email {
			continue
		}
		if e.identity.Role != role || e.identity.AdminSubRole != subRole {
			return nil, domain.ErrInvalidCredentials
		}
		if bcrypt.CompareHashAndPassword(e.passwordHash, []byte(password)) != nil {
			return nil, domain.ErrInvalidCredentials
		}
		identity := e.identity
		return &identity, nil
	}
	return nil, domain.ErrInvalidCredentials
}
