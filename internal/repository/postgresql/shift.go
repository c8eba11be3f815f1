package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/cmlabs-hris/rostering-backend-go/internal/domain/shift"
	"github.com/cmlabs-hris/rostering-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

const shiftColumns = `s.id, s.employee_id, s.office_id, s.start_time, s.end_time, s.status, s.repeat_frequency,
	s.repeat_end_date, s.repeat_group_id::text, s.notes, s.created_at, s.updated_at, e.full_name`

type shiftRepositoryImpl struct {
	db *database.DB
}

func NewShiftRepository(db *database.DB) shift.ShiftRepository {
	return &shiftRepositoryImpl{db: db}
}

func scanShift(row pgx.Row) (shift.Shift, error) {
	var s shift.Shift
	err := row.Scan(
		&s.ID, &s.EmployeeID, &s.OfficeID, &s.StartTime, &s.EndTime, &s.Status, &s.RepeatFrequency,
		&s.RepeatEndDate, &s.RepeatGroupID, &s.Notes, &s.CreatedAt, &s.UpdatedAt, &s.EmployeeName,
	)
	return s, err
}

func collectShifts(rows pgx.Rows) ([]shift.Shift, error) {
	defer rows.Close()

	var shifts []shift.Shift
	for rows.Next() {
		s, err := scanShift(rows)
		if err != nil {
			return nil, err
		}
		shifts = append(shifts, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return shifts, nil
}

// Create implements shift.ShiftRepository.
func (r *shiftRepositoryImpl) Create(ctx context.Context, s shift.Shift) (shift.Shift, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		WITH s AS (
			INSERT INTO shifts (employee_id, office_id, start_time, end_time, status, repeat_frequency,
				repeat_end_date, repeat_group_id, notes)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
			RETURNING *
		)
		SELECT ` + shiftColumns + `
		FROM s
		LEFT JOIN employees e ON e.id = s.employee_id
	`

	created, err := scanShift(q.QueryRow(ctx, query,
		s.EmployeeID, s.OfficeID, s.StartTime, s.EndTime, s.Status, s.RepeatFrequency,
		s.RepeatEndDate, s.RepeatGroupID, s.Notes,
	))
	if err != nil {
		return shift.Shift{}, fmt.Errorf("failed to create shift: %w", err)
	}
	return created, nil
}

// GetByID implements shift.ShiftRepository.
func (r *shiftRepositoryImpl) GetByID(ctx context.Context, id string) (shift.Shift, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + shiftColumns + `
		FROM shifts s
		LEFT JOIN employees e ON e.id = s.employee_id
		WHERE s.id = $1
	`

	found, err := scanShift(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return shift.Shift{}, shift.ErrShiftNotFound
		}
		return shift.Shift{}, fmt.Errorf("failed to get shift with id %s: %w", id, err)
	}
	return found, nil
}

// List implements shift.ShiftRepository.
func (r *shiftRepositoryImpl) List(ctx context.Context, filter shift.ShiftFilter) ([]shift.Shift, int64, error) {
	q := GetQuerier(ctx, r.db)

	conditions := []string{"TRUE"}
	args := []interface{}{}
	argIdx := 1

	if filter.OfficeID != nil && *filter.OfficeID != "" {
		conditions = append(conditions, fmt.Sprintf("s.office_id = $%d", argIdx))
		args = append(args, *filter.OfficeID)
		argIdx++
	}
	if filter.EmployeeID != nil && *filter.EmployeeID != "" {
		conditions = append(conditions, fmt.Sprintf("s.employee_id = $%d", argIdx))
		args = append(args, *filter.EmployeeID)
		argIdx++
	}
	if filter.Status != nil && *filter.Status != "" {
		conditions = append(conditions, fmt.Sprintf("s.status = $%d", argIdx))
		args = append(args, *filter.Status)
		argIdx++
	}
	if filter.FromTime != nil {
		conditions = append(conditions, fmt.Sprintf("s.start_time >= $%d", argIdx))
		args = append(args, *filter.FromTime)
		argIdx++
	}
	if filter.ToTime != nil {
		conditions = append(conditions, fmt.Sprintf("s.start_time < $%d", argIdx))
		args = append(args, *filter.ToTime)
		argIdx++
	}

	whereClause := strings.Join(conditions, " AND ")

	var total int64
	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM shifts s WHERE %s", whereClause)
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count shifts: %w", err)
	}

	offset := (filter.Page - 1) * filter.Limit
	query := fmt.Sprintf(`
		SELECT %s
		FROM shifts s
		LEFT JOIN employees e ON e.id = s.employee_id
		WHERE %s
		ORDER BY s.start_time, s.id
		LIMIT $%d OFFSET $%d
	`, shiftColumns, whereClause, argIdx, argIdx+1)
	args = append(args, filter.Limit, offset)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list shifts: %w", err)
	}
	shifts, err := collectShifts(rows)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to scan shifts: %w", err)
	}
	return shifts, total, nil
}

// Update implements shift.ShiftRepository. Only the assignee, status and notes change.
func (r *shiftRepositoryImpl) Update(ctx context.Context, s shift.Shift) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE shifts
		SET employee_id = $2, status = $3, notes = $4, updated_at = NOW()
		WHERE id = $1
	`

	tag, err := q.Exec(ctx, query, s.ID, s.EmployeeID, s.Status, s.Notes)
	if err != nil {
		return fmt.Errorf("failed to update shift with id %s: %w", s.ID, err)
	}
	if tag.RowsAffected() == 0 {
		return shift.ErrShiftNotFound
	}
	return nil
}

// FindFirstOnDay implements shift.ShiftRepository.
func (r *shiftRepositoryImpl) FindFirstOnDay(ctx context.Context, employeeID string, boundary shift.Boundary, from, to time.Time) (*shift.Shift, error) {
	q := GetQuerier(ctx, r.db)

	column := "s.start_time"
	if boundary == shift.BoundaryEnd {
		column = "s.end_time"
	}

	query := fmt.Sprintf(`
		SELECT %s
		FROM shifts s
		LEFT JOIN employees e ON e.id = s.employee_id
		WHERE s.employee_id = $1 AND s.status <> $2 AND %s >= $3 AND %s < $4
		ORDER BY s.start_time, s.id
		LIMIT 1
	`, shiftColumns, column, column)

	found, err := scanShift(q.QueryRow(ctx, query, employeeID, shift.StatusCancelled, from, to))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find shift for employee %s: %w", employeeID, err)
	}
	return &found, nil
}

// ExistsOverlapping implements shift.ShiftRepository.
func (r *shiftRepositoryImpl) ExistsOverlapping(ctx context.Context, employeeID string, from, to time.Time) (bool, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT EXISTS(
			SELECT 1 FROM shifts
			WHERE employee_id = $1 AND status <> $2 AND start_time < $4 AND end_time > $3
		)
	`

	var exists bool
	if err := q.QueryRow(ctx, query, employeeID, shift.StatusCancelled, from, to).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check overlapping shifts for employee %s: %w", employeeID, err)
	}
	return exists, nil
}

// ListByEmployeeStartingBetween implements shift.ShiftRepository.
func (r *shiftRepositoryImpl) ListByEmployeeStartingBetween(ctx context.Context, employeeID string, from, to time.Time) ([]shift.Shift, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + shiftColumns + `
		FROM shifts s
		LEFT JOIN employees e ON e.id = s.employee_id
		WHERE s.employee_id = $1 AND s.status <> $2 AND s.start_time >= $3 AND s.start_time < $4
		ORDER BY s.start_time, s.id
	`

	rows, err := q.Query(ctx, query, employeeID, shift.StatusCancelled, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list shifts for employee %s: %w", employeeID, err)
	}
	return collectShifts(rows)
}
