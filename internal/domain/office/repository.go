package office

import "context"

type OfficeRepository interface {
	Create(ctx context.Context, office OfficeLocation) (OfficeLocation, error)
	GetByID(ctx context.Context, id string) (OfficeLocation, error)
	List(ctx context.Context) ([]OfficeLocation, error)
	Update(ctx context.Context, req UpdateOfficeRequest) (OfficeLocation, error)
	Delete(ctx context.Context, id string) error

	// ListByEmployeeID returns the offices the employee is a member of, oldest membership first.
	ListByEmployeeID(ctx context.Context, employeeID string) ([]OfficeLocation, error)
}
