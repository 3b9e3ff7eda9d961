package user

import "context"

type UserRepository interface {
	// Create inserts a user and returns it with its generated ID.
	Create(ctx context.Context, u User) (User, error)
	GetByID(ctx context.Context, id string) (User, error)
	GetByEmail(ctx context.Context, email string) (User, error)
	// UpdateCredentials rewrites the login pair for the user linked to
	// an employee. Empty passwordHash leaves the stored hash untouched.
	UpdateCredentials(ctx context.Context, employeeID string, email string, name string, passwordHash string) error
	// DeleteByEmployeeID removes the credential of a deleted employee.
	DeleteByEmployeeID(ctx context.Context, employeeID string) error
}
