package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/cmlabs-hris/rostering-backend-go/internal/domain/timelog"
	"github.com/cmlabs-hris/rostering-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

const timeLogColumns = `id, employee_id, office_id, clock_in_date, clock_in, clock_out, break_start, break_end,
	has_shift, clock_in_status, clock_in_diff_in_min, clock_out_status, clock_out_diff_in_min,
	clock_in_latitude, clock_in_longitude, clock_out_latitude, clock_out_longitude, created_at, updated_at`

type timeLogRepositoryImpl struct {
	db *database.DB
}

func NewTimeLogRepository(db *database.DB) timelog.TimeLogRepository {
	return &timeLogRepositoryImpl{db: db}
}

func scanTimeLog(row pgx.Row) (timelog.TimeLog, error) {
	var l timelog.TimeLog
	err := row.Scan(
		&l.ID, &l.EmployeeID, &l.OfficeID, &l.ClockInDate, &l.ClockIn, &l.ClockOut, &l.BreakStart, &l.BreakEnd,
		&l.HasShift, &l.ClockInStatus, &l.ClockInDiffInMin, &l.ClockOutStatus, &l.ClockOutDiffInMin,
		&l.ClockInLatitude, &l.ClockInLongitude, &l.ClockOutLatitude, &l.ClockOutLongitude, &l.CreatedAt, &l.UpdatedAt,
	)
	return l, err
}

// Create implements timelog.TimeLogRepository.
func (r *timeLogRepositoryImpl) Create(ctx context.Context, l timelog.TimeLog) (timelog.TimeLog, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO time_logs (
			employee_id, office_id, clock_in_date, clock_in, has_shift, clock_in_status, clock_in_diff_in_min,
			clock_in_latitude, clock_in_longitude
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING ` + timeLogColumns

	created, err := scanTimeLog(q.QueryRow(ctx, query,
		l.EmployeeID, l.OfficeID, l.ClockInDate, l.ClockIn, l.HasShift, l.ClockInStatus, l.ClockInDiffInMin,
		l.ClockInLatitude, l.ClockInLongitude,
	))
	if err != nil {
		if isUniqueViolation(err, "time_logs_employee_date_key") {
			return timelog.TimeLog{}, timelog.ErrAlreadyClockedIn
		}
		return timelog.TimeLog{}, fmt.Errorf("failed to create time log: %w", err)
	}
	return created, nil
}

// GetByID implements timelog.TimeLogRepository.
func (r *timeLogRepositoryImpl) GetByID(ctx context.Context, id string) (timelog.TimeLog, error) {
	q := GetQuerier(ctx, r.db)

	found, err := scanTimeLog(q.QueryRow(ctx, `SELECT `+timeLogColumns+` FROM time_logs WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return timelog.TimeLog{}, timelog.ErrTimeLogNotFound
		}
		return timelog.TimeLog{}, fmt.Errorf("failed to get time log with id %s: %w", id, err)
	}
	return found, nil
}

// ExistsForDate implements timelog.TimeLogRepository.
func (r *timeLogRepositoryImpl) ExistsForDate(ctx context.Context, employeeID string, date time.Time) (bool, error) {
	q := GetQuerier(ctx, r.db)

	var exists bool
	err := q.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM time_logs WHERE employee_id = $1 AND clock_in_date = $2)`,
		employeeID, date,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check time log for employee %s: %w", employeeID, err)
	}
	return exists, nil
}

// ListByEmployee implements timelog.TimeLogRepository.
func (r *timeLogRepositoryImpl) ListByEmployee(ctx context.Context, filter timelog.TimeLogFilter) ([]timelog.TimeLog, int64, error) {
	q := GetQuerier(ctx, r.db)

	conditions := []string{"employee_id = $1"}
	args := []interface{}{filter.EmployeeID}
	argIdx := 2

	if filter.FromDate != nil {
		conditions = append(conditions, fmt.Sprintf("clock_in_date >= $%d", argIdx))
		args = append(args, *filter.FromDate)
		argIdx++
	}
	if filter.ToDate != nil {
		conditions = append(conditions, fmt.Sprintf("clock_in_date <= $%d", argIdx))
		args = append(args, *filter.ToDate)
		argIdx++
	}

	whereClause := strings.Join(conditions, " AND ")

	var total int64
	if err := q.QueryRow(ctx, "SELECT COUNT(*) FROM time_logs WHERE "+whereClause, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count time logs: %w", err)
	}

	offset := (filter.Page - 1) * filter.Limit
	query := fmt.Sprintf(`
		SELECT %s
		FROM time_logs
		WHERE %s
		ORDER BY clock_in_date DESC
		LIMIT $%d OFFSET $%d
	`, timeLogColumns, whereClause, argIdx, argIdx+1)
	args = append(args, filter.Limit, offset)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list time logs: %w", err)
	}
	defer rows.Close()

	var logs []timelog.TimeLog
	for rows.Next() {
		l, err := scanTimeLog(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan time log: %w", err)
		}
		logs = append(logs, l)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}
	return logs, total, nil
}

// Close implements timelog.TimeLogRepository.
func (r *timeLogRepositoryImpl) Close(ctx context.Context, l timelog.TimeLog) (timelog.TimeLog, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE time_logs
		SET clock_out = $2, clock_out_status = $3, clock_out_diff_in_min = $4,
			clock_out_latitude = $5, clock_out_longitude = $6, updated_at = NOW()
		WHERE id = $1 AND clock_out IS NULL
		RETURNING ` + timeLogColumns

	closed, err := scanTimeLog(q.QueryRow(ctx, query,
		l.ID, l.ClockOut, l.ClockOutStatus, l.ClockOutDiffInMin, l.ClockOutLatitude, l.ClockOutLongitude,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return timelog.TimeLog{}, r.missOrConflict(ctx, l.ID, timelog.ErrAlreadyClockedOut)
		}
		return timelog.TimeLog{}, fmt.Errorf("failed to clock out time log %s: %w", l.ID, err)
	}
	return closed, nil
}

// StartBreak implements timelog.TimeLogRepository.
func (r *timeLogRepositoryImpl) StartBreak(ctx context.Context, id string, at time.Time) (timelog.TimeLog, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE time_logs
		SET break_start = $2, updated_at = NOW()
		WHERE id = $1 AND break_start IS NULL AND clock_out IS NULL
		RETURNING ` + timeLogColumns

	updated, err := scanTimeLog(q.QueryRow(ctx, query, id, at))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return timelog.TimeLog{}, r.missOrConflict(ctx, id, timelog.ErrAlreadyOnBreak)
		}
		return timelog.TimeLog{}, fmt.Errorf("failed to start break on time log %s: %w", id, err)
	}
	return updated, nil
}

// EndBreak implements timelog.TimeLogRepository.
func (r *timeLogRepositoryImpl) EndBreak(ctx context.Context, id string, at time.Time) (timelog.TimeLog, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE time_logs
		SET break_end = $2, updated_at = NOW()
		WHERE id = $1 AND break_start IS NOT NULL AND break_end IS NULL AND clock_out IS NULL
		RETURNING ` + timeLogColumns

	updated, err := scanTimeLog(q.QueryRow(ctx, query, id, at))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return timelog.TimeLog{}, r.missOrConflict(ctx, id, timelog.ErrBreakAlreadyEnded)
		}
		return timelog.TimeLog{}, fmt.Errorf("failed to end break on time log %s: %w", id, err)
	}
	return updated, nil
}

// missOrConflict tells a missing row apart from a guarded update that lost a race.
func (r *timeLogRepositoryImpl) missOrConflict(ctx context.Context, id string, conflict error) error {
	current, err := r.GetByID(ctx, id)
	if err != nil {
		return err
	}
	switch {
	case errors.Is(conflict, timelog.ErrAlreadyClockedOut):
	case current.IsClosed():
		return timelog.ErrTimeLogClosed
	case errors.Is(conflict, timelog.ErrBreakAlreadyEnded) && current.BreakStart == nil:
		return timelog.ErrBreakNotStarted
	}
	return conflict
}
