package setting

import (
	"context"
	"time"
)

type SettingRepository interface {
	List(ctx context.Context) ([]Setting, error)
	Upsert(ctx context.Context, key, value string) error

	// ListHolidays returns holidays dated within [from, to] inclusive.
	ListHolidays(ctx context.Context, from, to time.Time) ([]PublicHoliday, error)
	CreateHoliday(ctx context.Context, holiday PublicHoliday) (PublicHoliday, error)
	DeleteHoliday(ctx context.Context, id string) error
}
