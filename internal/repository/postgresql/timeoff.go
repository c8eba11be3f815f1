package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/cmlabs-hris/rostering-backend-go/internal/domain/timeoff"
	"github.com/cmlabs-hris/rostering-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

const timeOffColumns = `id, employee_id, start_date, end_date, status, reason, reviewed_by, reviewed_at, created_at, updated_at`

type timeOffRepositoryImpl struct {
	db *database.DB
}

func NewTimeOffRepository(db *database.DB) timeoff.TimeOffRepository {
	return &timeOffRepositoryImpl{db: db}
}

func scanTimeOff(row pgx.Row) (timeoff.TimeOff, error) {
	var t timeoff.TimeOff
	err := row.Scan(
		&t.ID, &t.EmployeeID, &t.StartDate, &t.EndDate, &t.Status, &t.Reason,
		&t.ReviewedBy, &t.ReviewedAt, &t.CreatedAt, &t.UpdatedAt,
	)
	return t, err
}

// Create implements timeoff.TimeOffRepository.
func (r *timeOffRepositoryImpl) Create(ctx context.Context, req timeoff.TimeOff) (timeoff.TimeOff, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO time_offs (employee_id, start_date, end_date, status, reason)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING ` + timeOffColumns

	created, err := scanTimeOff(q.QueryRow(ctx, query, req.EmployeeID, req.StartDate, req.EndDate, req.Status, req.Reason))
	if err != nil {
		return timeoff.TimeOff{}, fmt.Errorf("failed to create time off: %w", err)
	}
	return created, nil
}

// GetByID implements timeoff.TimeOffRepository.
func (r *timeOffRepositoryImpl) GetByID(ctx context.Context, id string) (timeoff.TimeOff, error) {
	q := GetQuerier(ctx, r.db)

	found, err := scanTimeOff(q.QueryRow(ctx, `SELECT `+timeOffColumns+` FROM time_offs WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return timeoff.TimeOff{}, timeoff.ErrTimeOffNotFound
		}
		return timeoff.TimeOff{}, fmt.Errorf("failed to get time off with id %s: %w", id, err)
	}
	return found, nil
}

// List implements timeoff.TimeOffRepository.
func (r *timeOffRepositoryImpl) List(ctx context.Context, filter timeoff.TimeOffFilter) ([]timeoff.TimeOff, error) {
	q := GetQuerier(ctx, r.db)

	conditions := []string{"TRUE"}
	args := []interface{}{}
	argIdx := 1

	if filter.EmployeeID != nil && *filter.EmployeeID != "" {
		conditions = append(conditions, fmt.Sprintf("employee_id = $%d", argIdx))
		args = append(args, *filter.EmployeeID)
		argIdx++
	}
	if filter.Status != nil && *filter.Status != "" {
		conditions = append(conditions, fmt.Sprintf("status = $%d", argIdx))
		args = append(args, *filter.Status)
	}

	query := fmt.Sprintf(`SELECT %s FROM time_offs WHERE %s ORDER BY start_date DESC, id`, timeOffColumns, strings.Join(conditions, " AND "))

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list time off: %w", err)
	}
	defer rows.Close()

	var requests []timeoff.TimeOff
	for rows.Next() {
		t, err := scanTimeOff(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan time off: %w", err)
		}
		requests = append(requests, t)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return requests, nil
}

// UpdateStatus implements timeoff.TimeOffRepository.
func (r *timeOffRepositoryImpl) UpdateStatus(ctx context.Context, id string, status timeoff.Status, reviewerID string) (timeoff.TimeOff, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE time_offs
		SET status = $2, reviewed_by = $3, reviewed_at = NOW(), updated_at = NOW()
		WHERE id = $1 AND status = $4
		RETURNING ` + timeOffColumns

	updated, err := scanTimeOff(q.QueryRow(ctx, query, id, status, reviewerID, timeoff.StatusPending))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			if _, getErr := r.GetByID(ctx, id); getErr != nil {
				return timeoff.TimeOff{}, getErr
			}
			return timeoff.TimeOff{}, timeoff.ErrTimeOffAlreadyProcessed
		}
		return timeoff.TimeOff{}, fmt.Errorf("failed to update time off with id %s: %w", id, err)
	}
	return updated, nil
}

// HasApprovedOn implements timeoff.TimeOffRepository.
func (r *timeOffRepositoryImpl) HasApprovedOn(ctx context.Context, employeeID string, date time.Time) (bool, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT EXISTS(
			SELECT 1 FROM time_offs
			WHERE employee_id = $1 AND status = $2 AND start_date <= $3 AND end_date >= $3
		)
	`

	var exists bool
	if err := q.QueryRow(ctx, query, employeeID, timeoff.StatusApproved, date).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check time off for employee %s: %w", employeeID, err)
	}
	return exists, nil
}

// HasOverlapping implements timeoff.TimeOffRepository.
func (r *timeOffRepositoryImpl) HasOverlapping(ctx context.Context, employeeID string, start, end time.Time) (bool, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT EXISTS(
			SELECT 1 FROM time_offs
			WHERE employee_id = $1 AND status <> $2 AND start_date <= $4 AND end_date >= $3
		)
	`

	var exists bool
	if err := q.QueryRow(ctx, query, employeeID, timeoff.StatusRejected, start, end).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check overlapping time off for employee %s: %w", employeeID, err)
	}
	return exists, nil
}
