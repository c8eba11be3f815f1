package setting

import "context"

type SettingService interface {
	GetPayRates(ctx context.Context) (PayRatesResponse, error)
	UpdatePayRates(ctx context.Context, req UpdatePayRatesRequest) (PayRatesResponse, error)

	ListHolidays(ctx context.Context, filter HolidayFilter) ([]PublicHolidayResponse, error)
	CreateHoliday(ctx context.Context, req CreateHolidayRequest) (PublicHolidayResponse, error)
	DeleteHoliday(ctx context.Context, id string) error
}
