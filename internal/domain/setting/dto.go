package setting

import (
	"time"

	"github.com/cmlabs-hris/rostering-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type PayRatesResponse struct {
	WeekendRateMultiplier       decimal.Decimal `json:"weekendRateMultiplier"`
	NightShiftRateMultiplier    decimal.Decimal `json:"nightShiftRateMultiplier"`
	PublicHolidayRateMultiplier decimal.Decimal `json:"publicHolidayRateMultiplier"`
}

func NewPayRatesResponse(r PayRates) PayRatesResponse {
	return PayRatesResponse{
		WeekendRateMultiplier:       r.Weekend,
		NightShiftRateMultiplier:    r.NightShift,
		PublicHolidayRateMultiplier: r.PublicHoliday,
	}
}

type UpdatePayRatesRequest struct {
	WeekendRateMultiplier       *decimal.Decimal `json:"weekendRateMultiplier,omitempty"`
	NightShiftRateMultiplier    *decimal.Decimal `json:"nightShiftRateMultiplier,omitempty"`
	PublicHolidayRateMultiplier *decimal.Decimal `json:"publicHolidayRateMultiplier,omitempty"`
}

func (r *UpdatePayRatesRequest) Validate() error {
	var errs validator.ValidationErrors

	check := func(field string, v *decimal.Decimal) {
		if v != nil && v.LessThan(decimal.NewFromInt(1)) {
			errs = append(errs, validator.ValidationError{Field: field, Message: field + " must be at least 1"})
		}
	}
	check("weekendRateMultiplier", r.WeekendRateMultiplier)
	check("nightShiftRateMultiplier", r.NightShiftRateMultiplier)
	check("publicHolidayRateMultiplier", r.PublicHolidayRateMultiplier)

	if r.WeekendRateMultiplier == nil && r.NightShiftRateMultiplier == nil && r.PublicHolidayRateMultiplier == nil {
		errs = append(errs, validator.ValidationError{Field: "request", Message: "at least one multiplier is required"})
	}

	return errs.OrNil()
}

// Values lists the settings rows to write, keyed by setting key.
func (r UpdatePayRatesRequest) Values() map[string]string {
	out := make(map[string]string, 3)
	if r.WeekendRateMultiplier != nil {
		out[KeyWeekendRateMultiplier] = r.WeekendRateMultiplier.String()
	}
	if r.NightShiftRateMultiplier != nil {
		out[KeyNightShiftRateMultiplier] = r.NightShiftRateMultiplier.String()
	}
	if r.PublicHolidayRateMultiplier != nil {
		out[KeyPublicHolidayRateMultiplier] = r.PublicHolidayRateMultiplier.String()
	}
	return out
}

type PublicHolidayResponse struct {
	ID   string `json:"id"`
	Date string `json:"date"`
	Name string `json:"name"`
}

type CreateHolidayRequest struct {
	Date string `json:"date" validate:"required"`
	Name string `json:"name" validate:"required,max=100"`

	Day time.Time `json:"-"`
}

func (r *CreateHolidayRequest) Validate() error {
	errs := validator.Struct(r)
	if r.Date != "" {
		d, ok := validator.IsValidDate(r.Date)
		if !ok {
			errs = append(errs, validator.ValidationError{Field: "date", Message: "date must be in YYYY-MM-DD format"})
		}
		r.Day = d
	}
	return errs.OrNil()
}

type HolidayFilter struct {
	Year int `json:"year"`
}

func (f *HolidayFilter) Validate() error {
	if f.Year == 0 {
		f.Year = time.Now().Year()
	}
	if f.Year < 1970 || f.Year > 9999 {
		return validator.ValidationErrors{{Field: "year", Message: "year is out of range"}}
	}
	return nil
}
