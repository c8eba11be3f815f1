package shift

import "errors"

var (
	ErrShiftNotFound           = errors.New("shift not found")
	ErrInvalidTimeRange        = errors.New("shift end time must be after start time")
	ErrInvalidStatusChange     = errors.New("shift status change is not allowed")
	ErrShiftClosed             = errors.New("shift is completed or cancelled")
	ErrRepeatEndBeforeStart    = errors.New("repeat end date must not be before the first occurrence")
	ErrTooManyOccurrences      = errors.New("repeating shift would create too many occurrences")
	ErrEmployeeNotOfficeMember = errors.New("employee is not a member of the shift's office")
)
