package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/cmlabs-hris/rostering-backend-go/internal/domain/office"
	"github.com/cmlabs-hris/rostering-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

const officeColumns = `id, name, latitude, longitude, radius_meters, timezone, created_at, updated_at`

type officeRepositoryImpl struct {
	db *database.DB
}

func NewOfficeRepository(db *database.DB) office.OfficeRepository {
	return &officeRepositoryImpl{db: db}
}

func scanOffice(row pgx.Row) (office.OfficeLocation, error) {
	var o office.OfficeLocation
	err := row.Scan(&o.ID, &o.Name, &o.Latitude, &o.Longitude, &o.RadiusMeters, &o.Timezone, &o.CreatedAt, &o.UpdatedAt)
	return o, err
}

func collectOffices(rows pgx.Rows) ([]office.OfficeLocation, error) {
	defer rows.Close()

	var offices []office.OfficeLocation
	for rows.Next() {
		o, err := scanOffice(rows)
		if err != nil {
			return nil, err
		}
		offices = append(offices, o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return offices, nil
}

// Create implements office.OfficeRepository.
func (r *officeRepositoryImpl) Create(ctx context.Context, o office.OfficeLocation) (office.OfficeLocation, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO offices (name, latitude, longitude, radius_meters, timezone)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING ` + officeColumns

	created, err := scanOffice(q.QueryRow(ctx, query, o.Name, o.Latitude, o.Longitude, o.RadiusMeters, o.Timezone))
	if err != nil {
		if isUniqueViolation(err, "offices_name_key") {
			return office.OfficeLocation{}, office.ErrOfficeNameExists
		}
		return office.OfficeLocation{}, fmt.Errorf("failed to create office: %w", err)
	}
	return created, nil
}

// GetByID implements office.OfficeRepository.
func (r *officeRepositoryImpl) GetByID(ctx context.Context, id string) (office.OfficeLocation, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + officeColumns + ` FROM offices WHERE id = $1`

	found, err := scanOffice(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return office.OfficeLocation{}, office.ErrOfficeNotFound
		}
		return office.OfficeLocation{}, fmt.Errorf("failed to get office with id %s: %w", id, err)
	}
	return found, nil
}

// List implements office.OfficeRepository.
func (r *officeRepositoryImpl) List(ctx context.Context) ([]office.OfficeLocation, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `SELECT `+officeColumns+` FROM offices ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("failed to list offices: %w", err)
	}
	return collectOffices(rows)
}

// Update implements office.OfficeRepository.
func (r *officeRepositoryImpl) Update(ctx context.Context, req office.UpdateOfficeRequest) (office.OfficeLocation, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE offices
		SET name = COALESCE($2, name),
			radius_meters = COALESCE($3, radius_meters),
			timezone = COALESCE($4, timezone),
			updated_at = NOW()
		WHERE id = $1
		RETURNING ` + officeColumns

	updated, err := scanOffice(q.QueryRow(ctx, query, req.ID, req.Name, req.RadiusMeters, req.Timezone))
	if err != nil {
		switch {
		case errors.Is(err, pgx.ErrNoRows):
			return office.OfficeLocation{}, office.ErrOfficeNotFound
		case isUniqueViolation(err, "offices_name_key"):
			return office.OfficeLocation{}, office.ErrOfficeNameExists
		}
		return office.OfficeLocation{}, fmt.Errorf("failed to update office with id %s: %w", req.ID, err)
	}
	return updated, nil
}

// Delete implements office.OfficeRepository. Offices referenced by shifts, time
// logs or memberships cannot be deleted.
func (r *officeRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM offices WHERE id = $1`, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return office.ErrOfficeInUse
		}
		return fmt.Errorf("failed to delete office with id %s: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return office.ErrOfficeNotFound
	}
	return nil
}

// ListByEmployeeID implements office.OfficeRepository.
func (r *officeRepositoryImpl) ListByEmployeeID(ctx context.Context, employeeID string) ([]office.OfficeLocation, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT o.id, o.name, o.latitude, o.longitude, o.radius_meters, o.timezone, o.created_at, o.updated_at
		FROM offices o
		JOIN employee_offices eo ON eo.office_id = o.id
		WHERE eo.employee_id = $1
		ORDER BY eo.created_at, o.id
	`

	rows, err := q.Query(ctx, query, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list offices for employee %s: %w", employeeID, err)
	}
	return collectOffices(rows)
}
