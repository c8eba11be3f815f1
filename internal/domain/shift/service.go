package shift

import (
	"context"
	"time"
)

type ShiftService interface {
	// CreateShift creates one shift, or every occurrence of a repeating shift.
	CreateShift(ctx context.Context, req CreateShiftRequest) ([]ShiftResponse, error)
	GetShift(ctx context.Context, id string) (ShiftResponse, error)
	ListShifts(ctx context.Context, filter ShiftFilter) (ListShiftResponse, error)
	UpdateShiftStatus(ctx context.Context, req UpdateShiftStatusRequest) (ShiftResponse, error)
	ReassignShift(ctx context.Context, req ReassignShiftRequest) (ShiftResponse, error)

	// AutoAssign rosters active office members onto template shifts for one day.
	AutoAssign(ctx context.Context, req AutoAssignRequest) (AutoAssignResponse, error)
}

// Matcher finds the scheduled shift governing a clock event.
type Matcher interface {
	FindGoverningShift(ctx context.Context, employeeID string, at time.Time, boundary Boundary, loc *time.Location) (*Shift, error)
}
