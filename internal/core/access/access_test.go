package access

import (
	"testing"
	"time"

	"github.com/pgnest/hostel-system/internal/core/domain"
)

func sessionWith(authenticated bool, role domain.Role, sub domain.AdminSubRole) *domain.Session {
	s := domain.NewSession("s1", time.Now())
	s.Authenticated = authenticated
	s.Role = role
	s.AdminSubRole = sub
	return s
}

func TestEvaluate_DecisionTable(t *testing.T) {
	superAdmin := Requirement{Role: domain.RoleAdmin, SubRole: domain.SubRoleSuperAdmin}
	pgAdmin := Requirement{Role: domain.RoleAdmin, SubRole: domain.SubRolePGAdmin}
	warden := Requirement{Role: domain.RoleAdmin, SubRole: domain.SubRoleWarden}
	guest := Requirement{Role: domain.RoleGuest}

	cases := []struct {
		name    string
		session *domain.Session
		req     Requirement
		want    Decision
	}{
		{"nil session", nil, guest, Deny},
		{"unauthenticated", sessionWith(false, domain.RolePublic, ""), guest, Deny},
		{"unauthenticated admin fields", sessionWith(false, domain.RoleAdmin, domain.SubRoleWarden), warden, Deny},
		{"guest allowed", sessionWith(true, domain.RoleGuest, ""), guest, Allow},
		{"guest denied admin tree", sessionWith(true, domain.RoleGuest, ""), warden, Deny},
		{"warden allowed", sessionWith(true, domain.RoleAdmin, domain.SubRoleWarden), warden, Allow},
		{"wrong sub-role", sessionWith(true, domain.RoleAdmin, domain.SubRolePGAdmin), warden, Deny},
		{"pg admin allowed", sessionWith(true, domain.RoleAdmin, domain.SubRolePGAdmin), pgAdmin, Allow},
		{"super admin allowed", sessionWith(true, domain.RoleAdmin, domain.SubRoleSuperAdmin), superAdmin, Allow},
		{"super admin denied warden tree", sessionWith(true, domain.RoleAdmin, domain.SubRoleSuperAdmin), warden, Deny},
		{"admin denied guest tree", sessionWith(true, domain.RoleAdmin, domain.SubRoleWarden), guest, Deny},
		{"role-only requirement ignores sub-role", sessionWith(true, domain.RoleAdmin, domain.SubRoleWarden), Requirement{Role: domain.RoleAdmin}, Allow},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Evaluate(tc.session, tc.req); got != tc.want {
				t.Fatalf("Evaluate() = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestEvaluate_Pure(t *testing.T) {
	s := sessionWith(true, domain.RoleAdmin, domain.SubRoleWarden)
	req := Requirement{Role: domain.RoleAdmin, SubRole: domain.SubRoleWarden}

	for i := 0; i < 3; i++ {
		if got := Evaluate(s, req); got != Allow {
			t.Fatalf("call %d: Evaluate() = %v, want Allow", i, got)
		}
	}
	if !s.Authenticated || s.Role != domain.RoleAdmin || s.AdminSubRole != domain.SubRoleWarden {
		t.Fatalf("Evaluate mutated the session: %+v", s)
	}
}
