package setting

import (
	"context"
	"testing"
	"time"

	"github.com/cmlabs-hris/rostering-backend-go/internal/domain/setting"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memSettingRepo struct {
	setting.SettingRepository
	values   map[string]string
	holidays []setting.PublicHoliday
}

func (m *memSettingRepo) List(context.Context) ([]setting.Setting, error) {
	out := make([]setting.Setting, 0, len(m.values))
	for k, v := range m.values {
		out = append(out, setting.Setting{Key: k, Value: v})
	}
	return out, nil
}

func (m *memSettingRepo) Upsert(_ context.Context, key, value string) error {
	m.values[key] = value
	return nil
}

func (m *memSettingRepo) ListHolidays(_ context.Context, from, to time.Time) ([]setting.PublicHoliday, error) {
	var out []setting.PublicHoliday
	for _, h := range m.holidays {
		if !h.Date.Before(from) && !h.Date.After(to) {
			out = append(out, h)
		}
	}
	return out, nil
}

func (m *memSettingRepo) CreateHoliday(_ context.Context, h setting.PublicHoliday) (setting.PublicHoliday, error) {
	for _, existing := range m.holidays {
		if existing.Date.Equal(h.Date) {
			return setting.PublicHoliday{}, setting.ErrHolidayExists
		}
	}
	h.ID = "h-" + h.Date.Format("20060102")
	m.holidays = append(m.holidays, h)
	return h, nil
}

type inlineTx struct{}

func (inlineTx) WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func TestPayRates(t *testing.T) {
	repo := &memSettingRepo{values: map[string]string{}}
	svc := NewSettingService(repo, inlineTx{})
	ctx := context.Background()

	rates, err := svc.GetPayRates(ctx)
	require.NoError(t, err)
	assert.True(t, rates.WeekendRateMultiplier.Equal(decimal.RequireFromString("1.5")))
	assert.True(t, rates.PublicHolidayRateMultiplier.Equal(decimal.RequireFromString("2.5")))

	night := decimal.RequireFromString("1.4")
	rates, err = svc.UpdatePayRates(ctx, setting.UpdatePayRatesRequest{NightShiftRateMultiplier: &night})
	require.NoError(t, err)
	assert.True(t, rates.NightShiftRateMultiplier.Equal(night))
	assert.True(t, rates.WeekendRateMultiplier.Equal(decimal.RequireFromString("1.5")))
	assert.Equal(t, map[string]string{setting.KeyNightShiftRateMultiplier: "1.4"}, repo.values)

	tooLow := decimal.RequireFromString("0.5")
	_, err = svc.UpdatePayRates(ctx, setting.UpdatePayRatesRequest{WeekendRateMultiplier: &tooLow})
	assert.Error(t, err)
	_, err = svc.UpdatePayRates(ctx, setting.UpdatePayRatesRequest{})
	assert.Error(t, err)
}

func TestHolidays(t *testing.T) {
	repo := &memSettingRepo{values: map[string]string{}}
	svc := NewSettingService(repo, inlineTx{})
	ctx := context.Background()

	created, err := svc.CreateHoliday(ctx, setting.CreateHolidayRequest{Date: "2025-08-17", Name: "Independence Day"})
	require.NoError(t, err)
	assert.Equal(t, "2025-08-17", created.Date)

	_, err = svc.CreateHoliday(ctx, setting.CreateHolidayRequest{Date: "2025-08-17", Name: "Again"})
	assert.ErrorIs(t, err, setting.ErrHolidayExists)

	_, err = svc.CreateHoliday(ctx, setting.CreateHolidayRequest{Date: "2026-01-01", Name: "New Year"})
	require.NoError(t, err)

	list, err := svc.ListHolidays(ctx, setting.HolidayFilter{Year: 2025})
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Independence Day", list[0].Name)

	_, err = svc.CreateHoliday(ctx, setting.CreateHolidayRequest{Date: "17/08/2025", Name: "Bad"})
	assert.Error(t, err)
}
