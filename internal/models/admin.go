package models

import (
	"time"

	"github.com/google/uuid"
)

// Role is an admin role. Roles are strictly ordered.
type Role string

const (
	RoleAdmin       Role = "admin"
	RoleMasterAdmin Role = "master_admin"
	RoleSuperAdmin  Role = "super_admin"
)

// Rank returns the position of the role in the admin hierarchy.
// Unknown roles rank below every valid role.
func (r Role) Rank() int {
	switch r {
	case RoleAdmin:
		return 1
	case RoleMasterAdmin:
		return 2
	case RoleSuperAdmin:
		return 3
	}
	return 0
}

// Valid reports whether r is a known role.
func (r Role) Valid() bool {
	return r.Rank() > 0
}

// CanView reports whether a viewer may see an admin holding target in
// listings. A viewer only sees roles strictly below their own.
func CanView(viewer, target Role) bool {
	return target.Rank() < viewer.Rank()
}

// CanManageAdmins reports whether the role may access the admin management
// screens at all.
func (r Role) CanManageAdmins() bool {
	return r == RoleMasterAdmin || r == RoleSuperAdmin
}

// Admin is the back-office profile document matching an identity account.
type Admin struct {
	UserID uuid.UUID `json:"user_id"`
	Name   string    `json:"name"`
	Email  string    `json:"email"`
	Role   Role      `json:"role"`
}

// User is an identity-provider account. Profile data lives in the Admin
// document keyed by the account id.
type User struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	Password  string    `json:"-"`
	CreatedAt time.Time `json:"created_at"`
}
