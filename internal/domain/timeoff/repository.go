package timeoff

import (
	"context"
	"time"
)

type TimeOffRepository interface {
	Create(ctx context.Context, req TimeOff) (TimeOff, error)
	GetByID(ctx context.Context, id string) (TimeOff, error)
	List(ctx context.Context, filter TimeOffFilter) ([]TimeOff, error)

	// UpdateStatus moves a pending request to status; a request that is no longer
	// pending yields ErrTimeOffAlreadyProcessed.
	UpdateStatus(ctx context.Context, id string, status Status, reviewerID string) (TimeOff, error)

	// HasApprovedOn reports whether an approved request covers date.
	HasApprovedOn(ctx context.Context, employeeID string, date time.Time) (bool, error)

	// HasOverlapping reports whether a pending or approved request intersects [start, end].
	HasOverlapping(ctx context.Context, employeeID string, start, end time.Time) (bool, error)
}
