package user

// Actor is the claims-derived identity of the request caller. Handlers
// build it from the verified token and services gate on it; nothing in
// it is trusted beyond what the signature proves.
type Actor struct {
	UserID     string
	Email      string
	Name       string
	Role       Role
	EmployeeID *string
}

func (a Actor) IsSuperAdmin() bool {
	return a.Role == RoleSuperAdmin
}

func (a Actor) IsAdmin() bool {
	return a.Role == RoleAdmin || a.Role == RoleSuperAdmin
}

// Owns reports whether the actor is the employee behind employeeID.
func (a Actor) Owns(employeeID string) bool {
	return a.EmployeeID != nil && *a.EmployeeID == employeeID
}
