package timelog

import "errors"

var (
	ErrTimeLogNotFound   = errors.New("time log not found")
	ErrAlreadyClockedIn  = errors.New("already clocked in today")
	ErrAlreadyClockedOut = errors.New("already clocked out")
	ErrOutsideOfficeArea = errors.New("must clock in within office area")
	ErrAlreadyOnBreak    = errors.New("already on break")
	ErrBreakNotStarted   = errors.New("start a break first")
	ErrBreakAlreadyEnded = errors.New("break already ended")
	ErrTimeLogClosed     = errors.New("time log is already closed")
	ErrNotOwner          = errors.New("time log belongs to another employee")
	ErrClockOutBeforeIn  = errors.New("clock out time must be after clock in time")
	ErrBreakOutOfOrder   = errors.New("break times are out of order")
)
