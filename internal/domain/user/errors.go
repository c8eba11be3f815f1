package user

import "errors"

var (
	ErrInsufficientPermissions = errors.New("insufficient permissions")
	ErrEmployeeIDRequired      = errors.New("access token is not bound to an employee")
	ErrInvalidRole             = errors.New("invalid role")
)
