package employee

import "context"

type EmployeeRepository interface {
	Create(ctx context.Context, newEmployee Employee) (Employee, error)
	GetByID(ctx context.Context, id string) (Employee, error)
	List(ctx context.Context, filter EmployeeFilter) ([]Employee, int64, error)
	Update(ctx context.Context, req UpdateEmployeeRequest) (Employee, error)

	// ListActiveByOfficeID returns active members of an office.
	ListActiveByOfficeID(ctx context.Context, officeID string) ([]Employee, error)

	// LockByID takes a row lock on the employee for the rest of the transaction in ctx.
	LockByID(ctx context.Context, id string) error

	AddOffice(ctx context.Context, employeeID, officeID string) error
	RemoveOffice(ctx context.Context, employeeID, officeID string) error
}
