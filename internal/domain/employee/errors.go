package employee

import "errors"

var (
	ErrEmployeeNotFound   = errors.New("employee not found")
	ErrEmailExists        = errors.New("email already registered")
	ErrNoOfficeMembership = errors.New("employee is not a member of any office")
	ErrMembershipExists   = errors.New("employee is already a member of this office")
	ErrMembershipNotFound = errors.New("employee is not a member of this office")
	ErrEmployeeNotActive  = errors.New("employee is not active")
)
