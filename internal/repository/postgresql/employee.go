package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/cmlabs-hris/rostering-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/rostering-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

const employeeColumns = `e.id, e.full_name, e.email, e.employment_type, e.employment_status, e.base_rate, e.role,
	e.created_at, e.updated_at,
	ARRAY(SELECT eo.office_id::text FROM employee_offices eo WHERE eo.employee_id = e.id ORDER BY eo.created_at, eo.office_id)`

type employeeRepositoryImpl struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepositoryImpl{db: db}
}

func scanEmployee(row pgx.Row) (employee.Employee, error) {
	var emp employee.Employee
	err := row.Scan(
		&emp.ID, &emp.FullName, &emp.Email, &emp.EmploymentType, &emp.EmploymentStatus, &emp.BaseRate, &emp.Role,
		&emp.CreatedAt, &emp.UpdatedAt, &emp.OfficeIDs,
	)
	return emp, err
}

func collectEmployees(rows pgx.Rows) ([]employee.Employee, error) {
	defer rows.Close()

	var employees []employee.Employee
	for rows.Next() {
		emp, err := scanEmployee(rows)
		if err != nil {
			return nil, err
		}
		employees = append(employees, emp)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return employees, nil
}

// Create implements employee.EmployeeRepository. The employee row and its office
// memberships are written by one statement.
func (r *employeeRepositoryImpl) Create(ctx context.Context, newEmployee employee.Employee) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	officeIDs := newEmployee.OfficeIDs
	if officeIDs == nil {
		officeIDs = []string{}
	}

	query := `
		WITH e AS (
			INSERT INTO employees (full_name, email, employment_type, employment_status, base_rate, role)
			VALUES ($1, $2, $3, $4, $5, $6)
			RETURNING id, full_name, email, employment_type, employment_status, base_rate, role, created_at, updated_at
		), m AS (
			INSERT INTO employee_offices (employee_id, office_id)
			SELECT e.id, o.office_id FROM e, (SELECT DISTINCT unnest($7::uuid[]) AS office_id) o
			RETURNING office_id
		)
		SELECT e.id, e.full_name, e.email, e.employment_type, e.employment_status, e.base_rate, e.role,
			e.created_at, e.updated_at, ARRAY(SELECT office_id::text FROM m ORDER BY office_id)
		FROM e
	`

	created, err := scanEmployee(q.QueryRow(ctx, query,
		newEmployee.FullName, newEmployee.Email, newEmployee.EmploymentType, newEmployee.EmploymentStatus,
		newEmployee.BaseRate, newEmployee.Role, officeIDs,
	))
	if err != nil {
		if isUniqueViolation(err, "employees_email_key") {
			return employee.Employee{}, employee.ErrEmailExists
		}
		return employee.Employee{}, fmt.Errorf("failed to create employee: %w", err)
	}
	return created, nil
}

// GetByID implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + employeeColumns + ` FROM employees e WHERE e.id = $1`

	found, err := scanEmployee(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee with id %s: %w", id, err)
	}
	return found, nil
}

// List implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) List(ctx context.Context, filter employee.EmployeeFilter) ([]employee.Employee, int64, error) {
	q := GetQuerier(ctx, r.db)

	conditions := []string{"TRUE"}
	args := []interface{}{}
	argIdx := 1

	if filter.OfficeID != nil && *filter.OfficeID != "" {
		conditions = append(conditions, fmt.Sprintf("EXISTS (SELECT 1 FROM employee_offices f WHERE f.employee_id = e.id AND f.office_id = $%d)", argIdx))
		args = append(args, *filter.OfficeID)
		argIdx++
	}
	if filter.EmploymentStatus != nil && *filter.EmploymentStatus != "" {
		conditions = append(conditions, fmt.Sprintf("e.employment_status = $%d", argIdx))
		args = append(args, *filter.EmploymentStatus)
		argIdx++
	}
	if filter.EmploymentType != nil && *filter.EmploymentType != "" {
		conditions = append(conditions, fmt.Sprintf("e.employment_type = $%d", argIdx))
		args = append(args, *filter.EmploymentType)
		argIdx++
	}
	if filter.Search != nil && *filter.Search != "" {
		conditions = append(conditions, fmt.Sprintf("(e.full_name ILIKE $%d OR e.email ILIKE $%d)", argIdx, argIdx))
		args = append(args, "%"+*filter.Search+"%")
		argIdx++
	}

	whereClause := strings.Join(conditions, " AND ")

	var total int64
	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM employees e WHERE %s", whereClause)
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count employees: %w", err)
	}

	offset := (filter.Page - 1) * filter.Limit
	query := fmt.Sprintf(`
		SELECT %s
		FROM employees e
		WHERE %s
		ORDER BY e.full_name, e.id
		LIMIT $%d OFFSET $%d
	`, employeeColumns, whereClause, argIdx, argIdx+1)
	args = append(args, filter.Limit, offset)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list employees: %w", err)
	}
	employees, err := collectEmployees(rows)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to scan employees: %w", err)
	}
	return employees, total, nil
}

// Update implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) Update(ctx context.Context, req employee.UpdateEmployeeRequest) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE employees e
		SET full_name = COALESCE($2, e.full_name),
			employment_type = COALESCE($3, e.employment_type),
			employment_status = COALESCE($4, e.employment_status),
			base_rate = COALESCE($5, e.base_rate),
			role = COALESCE($6, e.role),
			updated_at = NOW()
		WHERE e.id = $1
		RETURNING ` + employeeColumns

	updated, err := scanEmployee(q.QueryRow(ctx, query,
		req.ID, req.FullName, req.EmploymentType, req.EmploymentStatus, req.BaseRate, req.Role,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to update employee with id %s: %w", req.ID, err)
	}
	return updated, nil
}

// ListActiveByOfficeID implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) ListActiveByOfficeID(ctx context.Context, officeID string) ([]employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + employeeColumns + `
		FROM employees e
		JOIN employee_offices m ON m.employee_id = e.id
		WHERE m.office_id = $1 AND e.employment_status = $2
		ORDER BY e.full_name, e.id
	`

	rows, err := q.Query(ctx, query, officeID, employee.EmploymentStatusActive)
	if err != nil {
		return nil, fmt.Errorf("failed to list active employees of office %s: %w", officeID, err)
	}
	return collectEmployees(rows)
}

// LockByID implements employee.EmployeeRepository. It must run inside a transaction.
func (r *employeeRepositoryImpl) LockByID(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	var locked string
	err := q.QueryRow(ctx, `SELECT id FROM employees WHERE id = $1 FOR UPDATE`, id).Scan(&locked)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.ErrEmployeeNotFound
		}
		return fmt.Errorf("failed to lock employee with id %s: %w", id, err)
	}
	return nil
}

// AddOffice implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) AddOffice(ctx context.Context, employeeID, officeID string) error {
	q := GetQuerier(ctx, r.db)

	_, err := q.Exec(ctx, `INSERT INTO employee_offices (employee_id, office_id) VALUES ($1, $2)`, employeeID, officeID)
	if err != nil {
		if isUniqueViolation(err, "employee_offices_pkey") {
			return employee.ErrMembershipExists
		}
		return fmt.Errorf("failed to add office %s to employee %s: %w", officeID, employeeID, err)
	}
	return nil
}

// RemoveOffice implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) RemoveOffice(ctx context.Context, employeeID, officeID string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM employee_offices WHERE employee_id = $1 AND office_id = $2`, employeeID, officeID)
	if err != nil {
		return fmt.Errorf("failed to remove office %s from employee %s: %w", officeID, employeeID, err)
	}
	if tag.RowsAffected() == 0 {
		return employee.ErrMembershipNotFound
	}
	return nil
}
