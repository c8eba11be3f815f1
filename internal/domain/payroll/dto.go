package payroll

import (
	"time"

	"github.com/cmlabs-hris/rostering-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

// MaxPeriodDays bounds one compute request.
const MaxPeriodDays = 93

type ComputePayrollRequest struct {
	EmployeeID string `json:"employeeId" validate:"required,uuid"`
	StartDate  string `json:"startDate" validate:"required"`
	EndDate    string `json:"endDate" validate:"required"`

	Start time.Time `json:"-"`
	End   time.Time `json:"-"`
}

func (r *ComputePayrollRequest) Validate() error {
	errs := validator.Struct(r)

	start, okStart := validator.IsValidDate(r.StartDate)
	if r.StartDate != "" && !okStart {
		errs = append(errs, validator.ValidationError{Field: "startDate", Message: "startDate must be in YYYY-MM-DD format"})
	}
	end, okEnd := validator.IsValidDate(r.EndDate)
	if r.EndDate != "" && !okEnd {
		errs = append(errs, validator.ValidationError{Field: "endDate", Message: "endDate must be in YYYY-MM-DD format"})
	}
	if okStart && okEnd {
		switch {
		case end.Before(start):
			errs = append(errs, validator.ValidationError{Field: "endDate", Message: ErrInvalidPeriod.Error()})
		case end.Sub(start) >= MaxPeriodDays*24*time.Hour:
			errs = append(errs, validator.ValidationError{Field: "endDate", Message: ErrPeriodTooLong.Error()})
		}
	}
	r.Start, r.End = start, end

	return errs.OrNil()
}

type EmployeeSummary struct {
	ID             string `json:"id"`
	FullName       string `json:"fullName"`
	EmploymentType string `json:"employmentType"`
}

type BreakdownResponse struct {
	ShiftID    string          `json:"shiftId"`
	Date       string          `json:"date"`
	Hours      decimal.Decimal `json:"hours"`
	BaseRate   decimal.Decimal `json:"baseRate"`
	Multiplier decimal.Decimal `json:"multiplier"`
	Amount     decimal.Decimal `json:"amount"`
	Penalty    bool            `json:"penalty"`
	Reasons    []string        `json:"reasons,omitempty"`
}

type PayrollResponse struct {
	Employee     EmployeeSummary     `json:"employee"`
	StartDate    string              `json:"startDate"`
	EndDate      string              `json:"endDate"`
	BaseHours    decimal.Decimal     `json:"baseHours"`
	PenaltyHours decimal.Decimal     `json:"penaltyHours"`
	BaseRate     decimal.Decimal     `json:"baseRate"`
	TotalPay     decimal.Decimal     `json:"totalPay"`
	Breakdown    []BreakdownResponse `json:"breakdown"`
}
