package models

import "testing"

func TestRoleRankOrdering(t *testing.T) {
	if !(RoleAdmin.Rank() < RoleMasterAdmin.Rank() && RoleMasterAdmin.Rank() < RoleSuperAdmin.Rank()) {
		t.Fatal("expected admin < master_admin < super_admin")
	}
	if Role("viewer").Rank() != 0 {
		t.Fatalf("unknown role rank = %d, want 0", Role("viewer").Rank())
	}
}

func TestRoleValid(t *testing.T) {
	for _, r := range []Role{RoleAdmin, RoleMasterAdmin, RoleSuperAdmin} {
		if !r.Valid() {
			t.Errorf("%s should be valid", r)
		}
	}
	if Role("").Valid() || Role("root").Valid() {
		t.Error("unknown roles should be invalid")
	}
}

func TestCanViewStrictlyBelow(t *testing.T) {
	cases := []struct {
		viewer, target Role
		want           bool
	}{
		{RoleSuperAdmin, RoleMasterAdmin, true},
		{RoleSuperAdmin, RoleAdmin, true},
		{RoleSuperAdmin, RoleSuperAdmin, false},
		{RoleMasterAdmin, RoleAdmin, true},
		{RoleMasterAdmin, RoleMasterAdmin, false},
		{RoleMasterAdmin, RoleSuperAdmin, false},
		{RoleAdmin, RoleAdmin, false},
		{RoleAdmin, RoleMasterAdmin, false},
	}
	for _, tc := range cases {
		if got := CanView(tc.viewer, tc.target); got != tc.want {
			t.Errorf("CanView(%s, %s) = %v, want %v", tc.viewer, tc.target, got, tc.want)
		}
	}
}

func TestCanManageAdmins(t *testing.T) {
	if RoleAdmin.CanManageAdmins() {
		t.Error("admin must not manage admins")
	}
	if !RoleMasterAdmin.CanManageAdmins() || !RoleSuperAdmin.CanManageAdmins() {
		t.Error("master and super admins manage admins")
	}
}
