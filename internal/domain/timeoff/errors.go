package timeoff

import "errors"

var (
	ErrTimeOffNotFound         = errors.New("time off request not found")
	ErrTimeOffAlreadyProcessed = errors.New("time off request already processed")
	ErrOverlappingTimeOff      = errors.New("time off overlaps an existing request")
)
