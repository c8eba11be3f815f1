package timelog

import "context"

type TimeLogService interface {
	ClockIn(ctx context.Context, req ClockInRequest) (TimeLogResponse, error)
	ClockOut(ctx context.Context, req ClockOutRequest) (TimeLogResponse, error)
	StartBreak(ctx context.Context, req StartBreakRequest) (TimeLogResponse, error)
	EndBreak(ctx context.Context, req EndBreakRequest) (TimeLogResponse, error)

	GetTimeLog(ctx context.Context, id string) (TimeLogResponse, error)
	ListMyTimeLogs(ctx context.Context, filter TimeLogFilter) (ListTimeLogResponse, error)
}
