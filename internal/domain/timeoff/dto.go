package timeoff

import (
	"time"

	"github.com/cmlabs-hris/rostering-backend-go/internal/pkg/validator"
)

type TimeOffResponse struct {
	ID         string  `json:"id"`
	EmployeeID string  `json:"employeeId"`
	StartDate  string  `json:"startDate"`
	EndDate    string  `json:"endDate"`
	Status     string  `json:"status"`
	Reason     *string `json:"reason,omitempty"`
	ReviewedBy *string `json:"reviewedBy,omitempty"`
	ReviewedAt *string `json:"reviewedAt,omitempty"`
	CreatedAt  string  `json:"createdAt"`
}

type CreateTimeOffRequest struct {
	StartDate string  `json:"startDate" validate:"required"`
	EndDate   string  `json:"endDate" validate:"required"`
	Reason    *string `json:"reason,omitempty" validate:"omitempty,max=500"`

	Start time.Time `json:"-"`
	End   time.Time `json:"-"`
}

func (r *CreateTimeOffRequest) Validate() error {
	errs := validator.Struct(r)

	start, okStart := validator.IsValidDate(r.StartDate)
	if r.StartDate != "" && !okStart {
		errs = append(errs, validator.ValidationError{Field: "startDate", Message: "startDate must be in YYYY-MM-DD format"})
	}
	end, okEnd := validator.IsValidDate(r.EndDate)
	if r.EndDate != "" && !okEnd {
		errs = append(errs, validator.ValidationError{Field: "endDate", Message: "endDate must be in YYYY-MM-DD format"})
	}
	if okStart && okEnd && end.Before(start) {
		errs = append(errs, validator.ValidationError{Field: "endDate", Message: "endDate must not be before startDate"})
	}
	r.Start, r.End = start, end

	return errs.OrNil()
}

type TimeOffFilter struct {
	EmployeeID *string `json:"employeeId,omitempty"`
	Status     *string `json:"status,omitempty"`
}

func (f *TimeOffFilter) Validate() error {
	var errs validator.ValidationErrors
	if f.EmployeeID != nil && !validator.IsValidUUID(*f.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employeeId", Message: "employeeId must be a valid UUID"})
	}
	if f.Status != nil && !validator.IsInSlice(*f.Status, StatusValues) {
		errs = append(errs, validator.ValidationError{Field: "status", Message: "status must be one of: pending, approved, rejected"})
	}
	return errs.OrNil()
}
