package domain

// Role is the top-level audience an actor belongs to. It selects which of the
// dashboard route trees the actor may enter.
type Role string

const (
	RoleAdmin  Role = "admin"
	RoleGuest  Role = "guest"
	RolePublic Role = "public"
)

// AdminSubRole refines RoleAdmin into one of the three disjoint admin trees.
// It carries no meaning for any other role.
type AdminSubRole string

const (
	SubRoleSuperAdmin AdminSubRole = "super_admin"
	SubRolePGAdmin    AdminSubRole = "pg_admin"
	SubRoleWarden     AdminSubRole = "warden"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleGuest, RolePublic:
		return true
	}
	return false
}

// Valid reports whether s is one of the known admin sub-roles. The empty
// sub-role is valid for non-admin actors.
func (s AdminSubRole) Valid() bool {
	switch s {
	case SubRoleSuperAdmin, SubRolePGAdmin, SubRoleWarden, "":
		return true
	}
	return false
}
