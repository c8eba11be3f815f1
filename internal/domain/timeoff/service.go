package timeoff

import "context"

type TimeOffService interface {
	// Request files a pending time-off request for the caller.
	Request(ctx context.Context, req CreateTimeOffRequest) (TimeOffResponse, error)
	Approve(ctx context.Context, id string) (TimeOffResponse, error)
	Reject(ctx context.Context, id string) (TimeOffResponse, error)
	List(ctx context.Context, filter TimeOffFilter) ([]TimeOffResponse, error)
}
