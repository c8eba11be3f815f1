package payroll

import (
	"time"

	"github.com/cmlabs-hris/rostering-backend-go/internal/domain/setting"
	"github.com/shopspring/decimal"
)

// Night shifts start at or after NightStartHour or before NightEndHour, local time.
const (
	NightStartHour = 22
	NightEndHour   = 6
)

// Penalty reasons recorded on a breakdown line.
const (
	ReasonWeekend       = "weekend"
	ReasonNight         = "night"
	ReasonPublicHoliday = "public_holiday"
)

var sixty = decimal.NewFromInt(60)

// PayShift is the slice of a shift the engine needs.
type PayShift struct {
	ID       string
	Start    time.Time
	End      time.Time
	Location *time.Location // office timezone, nil means UTC
}

// Holidays maps a local calendar date (YYYY-MM-DD) to the holiday name.
type Holidays map[string]string

type Line struct {
	ShiftID    string
	Date       time.Time
	Hours      decimal.Decimal
	BaseRate   decimal.Decimal
	Multiplier decimal.Decimal
	Amount     decimal.Decimal
	Penalty    bool
	Reasons    []string
}

type Result struct {
	BaseHours    decimal.Decimal
	PenaltyHours decimal.Decimal
	TotalPay     decimal.Decimal
	Breakdown    []Line
}

// ComputePay prices each shift at baseRate times the largest applicable multiplier.
// Weekend, night and public-holiday rates never stack.
func ComputePay(shifts []PayShift, baseRate decimal.Decimal, rates setting.PayRates, holidays Holidays) Result {
	res := Result{
		BaseHours:    decimal.Zero,
		PenaltyHours: decimal.Zero,
		TotalPay:     decimal.Zero,
		Breakdown:    make([]Line, 0, len(shifts)),
	}

	for _, s := range shifts {
		loc := s.Location
		if loc == nil {
			loc = time.UTC
		}
		start := s.Start.In(loc)

		minutes := int64(s.End.Sub(s.Start) / time.Minute)
		if minutes < 0 {
			minutes = 0
		}
		hours := decimal.NewFromInt(minutes).Div(sixty)

		multiplier := decimal.NewFromInt(1)
		var reasons []string

		if wd := start.Weekday(); wd == time.Saturday || wd == time.Sunday {
			multiplier = decimal.Max(multiplier, rates.Weekend)
			reasons = append(reasons, ReasonWeekend)
		}
		if h := start.Hour(); h >= NightStartHour || h < NightEndHour {
			multiplier = decimal.Max(multiplier, rates.NightShift)
			reasons = append(reasons, ReasonNight)
		}
		if _, ok := holidays[start.Format("2006-01-02")]; ok {
			multiplier = decimal.Max(multiplier, rates.PublicHoliday)
			reasons = append(reasons, ReasonPublicHoliday)
		}

		penalty := len(reasons) > 0
		amount := hours.Mul(baseRate).Mul(multiplier).Round(2)

		if penalty {
			res.PenaltyHours = res.PenaltyHours.Add(hours)
		} else {
			res.BaseHours = res.BaseHours.Add(hours)
		}
		res.TotalPay = res.TotalPay.Add(amount)

		y, m, d := start.Date()
		res.Breakdown = append(res.Breakdown, Line{
			ShiftID:    s.ID,
			Date:       time.Date(y, m, d, 0, 0, 0, 0, time.UTC),
			Hours:      hours,
			BaseRate:   baseRate,
			Multiplier: multiplier,
			Amount:     amount,
			Penalty:    penalty,
			Reasons:    reasons,
		})
	}

	return res
}
