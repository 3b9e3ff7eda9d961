package user

import "time"

type Role string

const (
	RoleSuperAdmin Role = "SUPER_ADMIN" // Full access, manages projects and budgets
	RoleAdmin      Role = "ADMIN"       // Runs day-to-day attendance and payroll
	RoleEmployee   Role = "EMPLOYEE"    // Self-service portal only
)

type User struct {
	ID           string
	Email        string
	PasswordHash string
	Name         string
	Role         Role
	EmployeeID   *string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// IsSuperAdmin checks if user holds the top role
func (u *User) IsSuperAdmin() bool {
	return u.Role == RoleSuperAdmin
}

// IsAdmin checks if user is admin or super admin
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin || u.Role == RoleSuperAdmin
}

// CanApprove checks if user can approve attendance and payroll
func (u *User) CanApprove() bool {
	return u.IsAdmin()
}

// CanManageProjects checks if user can create or delete projects
func (u *User) CanManageProjects() bool {
	return u.IsSuperAdmin()
}

// ValidRole reports whether s is a known role value.
func ValidRole(s string) bool {
	switch Role(s) {
	case RoleSuperAdmin, RoleAdmin, RoleEmployee:
		return true
	}
	return false
}
