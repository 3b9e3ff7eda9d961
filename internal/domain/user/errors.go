package user

import "errors"

var (
	ErrUserNotFound                = errors.New("user not found")
	ErrEmailExists                 = errors.New("email already registered")
	ErrAdminPrivilegeRequired      = errors.New("admin privilege required")
	ErrSuperAdminPrivilegeRequired = errors.New("super admin privilege required")
)
