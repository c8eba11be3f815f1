package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/cmlabs-hris/rostering-backend-go/internal/domain/setting"
	"github.com/cmlabs-hris/rostering-backend-go/internal/pkg/database"
)

type settingRepositoryImpl struct {
	db *database.DB
}

func NewSettingRepository(db *database.DB) setting.SettingRepository {
	return &settingRepositoryImpl{db: db}
}

// List implements setting.SettingRepository.
func (r *settingRepositoryImpl) List(ctx context.Context) ([]setting.Setting, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `SELECT key, value, updated_at FROM system_settings ORDER BY key`)
	if err != nil {
		return nil, fmt.Errorf("failed to list settings: %w", err)
	}
	defer rows.Close()

	var settings []setting.Setting
	for rows.Next() {
		var s setting.Setting
		if err := rows.Scan(&s.Key, &s.Value, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan setting: %w", err)
		}
		settings = append(settings, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return settings, nil
}

// Upsert implements setting.SettingRepository.
func (r *settingRepositoryImpl) Upsert(ctx context.Context, key, value string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO system_settings (key, value, updated_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = NOW()
	`

	if _, err := q.Exec(ctx, query, key, value); err != nil {
		return fmt.Errorf("failed to upsert setting %s: %w", key, err)
	}
	return nil
}

// ListHolidays implements setting.SettingRepository.
func (r *settingRepositoryImpl) ListHolidays(ctx context.Context, from, to time.Time) ([]setting.PublicHoliday, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, date, name, created_at
		FROM public_holidays
		WHERE date >= $1 AND date <= $2
		ORDER BY date
	`

	rows, err := q.Query(ctx, query, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list public holidays: %w", err)
	}
	defer rows.Close()

	var holidays []setting.PublicHoliday
	for rows.Next() {
		var h setting.PublicHoliday
		if err := rows.Scan(&h.ID, &h.Date, &h.Name, &h.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan public holiday: %w", err)
		}
		holidays = append(holidays, h)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return holidays, nil
}

// CreateHoliday implements setting.SettingRepository.
func (r *settingRepositoryImpl) CreateHoliday(ctx context.Context, holiday setting.PublicHoliday) (setting.PublicHoliday, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO public_holidays (date, name)
		VALUES ($1, $2)
		RETURNING id, date, name, created_at
	`

	var created setting.PublicHoliday
	err := q.QueryRow(ctx, query, holiday.Date, holiday.Name).Scan(&created.ID, &created.Date, &created.Name, &created.CreatedAt)
	if err != nil {
		if isUniqueViolation(err, "public_holidays_date_key") {
			return setting.PublicHoliday{}, setting.ErrHolidayExists
		}
		return setting.PublicHoliday{}, fmt.Errorf("failed to create public holiday: %w", err)
	}
	return created, nil
}

// DeleteHoliday implements setting.SettingRepository.
func (r *settingRepositoryImpl) DeleteHoliday(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM public_holidays WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete public holiday with id %s: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return setting.ErrHolidayNotFound
	}
	return nil
}
