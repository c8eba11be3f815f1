package shift

import (
	"context"
	"time"
)

type ShiftRepository interface {
	Create(ctx context.Context, shift Shift) (Shift, error)
	GetByID(ctx context.Context, id string) (Shift, error)
	List(ctx context.Context, filter ShiftFilter) ([]Shift, int64, error)
	Update(ctx context.Context, shift Shift) error

	// FindFirstOnDay returns the earliest non-cancelled shift of the employee whose
	// boundary column lies in [from, to), ordered by start_time then id. nil when none.
	FindFirstOnDay(ctx context.Context, employeeID string, boundary Boundary, from, to time.Time) (*Shift, error)

	// ExistsOverlapping reports whether the employee has a non-cancelled shift
	// intersecting [from, to).
	ExistsOverlapping(ctx context.Context, employeeID string, from, to time.Time) (bool, error)

	// ListByEmployeeStartingBetween returns non-cancelled shifts starting in [from, to), by start_time.
	ListByEmployeeStartingBetween(ctx context.Context, employeeID string, from, to time.Time) ([]Shift, error)
}
