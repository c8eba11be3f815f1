package setting

import (
	"time"

	"github.com/shopspring/decimal"
)

// Keys of the system_settings rows read by the payroll engine.
const (
	KeyWeekendRateMultiplier       = "weekendRateMultiplier"
	KeyNightShiftRateMultiplier    = "nightShiftRateMultiplier"
	KeyPublicHolidayRateMultiplier = "publicHolidayRateMultiplier"
)

var (
	DefaultWeekendRate       = decimal.RequireFromString("1.5")
	DefaultNightShiftRate    = decimal.RequireFromString("1.25")
	DefaultPublicHolidayRate = decimal.RequireFromString("2.5")
)

type Setting struct {
	Key       string
	Value     string
	UpdatedAt time.Time
}

// PayRates are the penalty multipliers applied on top of an employee's base rate.
type PayRates struct {
	Weekend       decimal.Decimal
	NightShift    decimal.Decimal
	PublicHoliday decimal.Decimal
}

func DefaultPayRates() PayRates {
	return PayRates{
		Weekend:       DefaultWeekendRate,
		NightShift:    DefaultNightShiftRate,
		PublicHoliday: DefaultPublicHolidayRate,
	}
}

// ResolvePayRates overlays stored settings on the defaults. Missing, unparsable or
// non-positive values keep the default.
func ResolvePayRates(settings []Setting) PayRates {
	rates := DefaultPayRates()
	for _, s := range settings {
		v, err := decimal.NewFromString(s.Value)
		if err != nil || !v.IsPositive() {
			continue
		}
		switch s.Key {
		case KeyWeekendRateMultiplier:
			rates.Weekend = v
		case KeyNightShiftRateMultiplier:
			rates.NightShift = v
		case KeyPublicHolidayRateMultiplier:
			rates.PublicHoliday = v
		}
	}
	return rates
}

type PublicHoliday struct {
	ID        string
	Date      time.Time
	Name      string
	CreatedAt time.Time
}
