package timelog

import (
	"context"
	"time"
)

type TimeLogRepository interface {
	// Create inserts a new log; a second log for the same employee and ClockInDate
	// fails with ErrAlreadyClockedIn.
	Create(ctx context.Context, log TimeLog) (TimeLog, error)
	GetByID(ctx context.Context, id string) (TimeLog, error)
	ExistsForDate(ctx context.Context, employeeID string, date time.Time) (bool, error)
	ListByEmployee(ctx context.Context, filter TimeLogFilter) ([]TimeLog, int64, error)

	// The close and break updates only apply while their guard column is still NULL;
	// they return ErrAlreadyClockedOut, ErrAlreadyOnBreak or ErrBreakAlreadyEnded when it is not.
	Close(ctx context.Context, log TimeLog) (TimeLog, error)
	StartBreak(ctx context.Context, id string, at time.Time) (TimeLog, error)
	EndBreak(ctx context.Context, id string, at time.Time) (TimeLog, error)
}
