package shift

import (
	"strings"
	"time"

	"github.com/cmlabs-hris/rostering-backend-go/internal/pkg/validator"
)

// MaxOccurrences caps how many rows one repeating shift request may create.
const MaxOccurrences = 104

type ShiftResponse struct {
	ID              string  `json:"id"`
	EmployeeID      *string `json:"employeeId"`
	EmployeeName    *string `json:"employeeName,omitempty"`
	OfficeID        string  `json:"officeId"`
	StartTime       string  `json:"startTime"`
	EndTime         string  `json:"endTime"`
	Status          string  `json:"status"`
	RepeatFrequency string  `json:"repeatFrequency"`
	RepeatEndDate   *string `json:"repeatEndDate,omitempty"`
	RepeatGroupID   *string `json:"repeatGroupId,omitempty"`
	Notes           *string `json:"notes,omitempty"`
	CreatedAt       string  `json:"createdAt"`
	UpdatedAt       string  `json:"updatedAt"`
}

type ListShiftResponse struct {
	TotalCount int64           `json:"totalCount"`
	Page       int             `json:"page"`
	Limit      int             `json:"limit"`
	TotalPages int             `json:"totalPages"`
	Shifts     []ShiftResponse `json:"shifts"`
}

type CreateShiftRequest struct {
	EmployeeID      *string `json:"employeeId,omitempty" validate:"omitempty,uuid"`
	OfficeID        string  `json:"officeId" validate:"required,uuid"`
	StartTime       string  `json:"startTime" validate:"required"`
	EndTime         string  `json:"endTime" validate:"required"`
	RepeatFrequency string  `json:"repeatFrequency,omitempty" validate:"omitempty,oneof=none weekly fortnightly"`
	RepeatEndDate   *string `json:"repeatEndDate,omitempty"`
	Notes           *string `json:"notes,omitempty" validate:"omitempty,max=500"`

	// Parsed by Validate.
	Start     time.Time  `json:"-"`
	End       time.Time  `json:"-"`
	RepeatEnd *time.Time `json:"-"`
}

func (r *CreateShiftRequest) Validate() error {
	errs := validator.Struct(r)

	if r.RepeatFrequency == "" {
		r.RepeatFrequency = string(RepeatNone)
	}
	start, okStart := validator.IsValidDateTime(r.StartTime)
	if r.StartTime != "" && !okStart {
		errs = append(errs, validator.ValidationError{Field: "startTime", Message: "startTime must be an ISO8601 timestamp"})
	}
	end, okEnd := validator.IsValidDateTime(r.EndTime)
	if r.EndTime != "" && !okEnd {
		errs = append(errs, validator.ValidationError{Field: "endTime", Message: "endTime must be an ISO8601 timestamp"})
	}
	if okStart && okEnd && !end.After(start) {
		errs = append(errs, validator.ValidationError{Field: "endTime", Message: "endTime must be after startTime"})
	}
	r.Start, r.End = start, end

	repeating := RepeatFrequency(r.RepeatFrequency) != RepeatNone
	if repeating && r.RepeatEndDate == nil {
		errs = append(errs, validator.ValidationError{Field: "repeatEndDate", Message: "repeatEndDate is required for repeating shifts"})
	}
	if r.RepeatEndDate != nil {
		d, ok := validator.IsValidDate(*r.RepeatEndDate)
		if !ok {
			errs = append(errs, validator.ValidationError{Field: "repeatEndDate", Message: "repeatEndDate must be in YYYY-MM-DD format"})
		} else {
			r.RepeatEnd = &d
		}
	}

	return errs.OrNil()
}

type UpdateShiftStatusRequest struct {
	ID     string `json:"-" validate:"required,uuid"`
	Status string `json:"status" validate:"required,oneof=pending assigned active completed cancelled"`
}

func (r *UpdateShiftStatusRequest) Validate() error {
	return validator.Struct(r).OrNil()
}

type ReassignShiftRequest struct {
	ID         string  `json:"-" validate:"required,uuid"`
	EmployeeID *string `json:"employeeId" validate:"omitempty,uuid"`
}

func (r *ReassignShiftRequest) Validate() error {
	return validator.Struct(r).OrNil()
}

type ShiftFilter struct {
	OfficeID   *string `json:"officeId,omitempty"`
	EmployeeID *string `json:"employeeId,omitempty"`
	Status     *string `json:"status,omitempty"`
	From       *string `json:"from,omitempty"`
	To         *string `json:"to,omitempty"`

	Page  int `json:"page"`
	Limit int `json:"limit"`

	// Parsed by Validate; To is exclusive and set to the day after the given date.
	FromTime *time.Time `json:"-"`
	ToTime   *time.Time `json:"-"`
}

func (f *ShiftFilter) Validate() error {
	var errs validator.ValidationErrors

	if f.Page < 0 {
		errs = append(errs, validator.ValidationError{Field: "page", Message: "page must be a positive number"})
	}
	if f.Page == 0 {
		f.Page = 1
	}
	if f.Limit < 0 {
		errs = append(errs, validator.ValidationError{Field: "limit", Message: "limit must be a positive number"})
	}
	if f.Limit == 0 {
		f.Limit = 20
	}
	if f.Limit > 100 {
		errs = append(errs, validator.ValidationError{Field: "limit", Message: "limit must not exceed 100"})
	}
	if f.OfficeID != nil && !validator.IsValidUUID(*f.OfficeID) {
		errs = append(errs, validator.ValidationError{Field: "officeId", Message: "officeId must be a valid UUID"})
	}
	if f.EmployeeID != nil && !validator.IsValidUUID(*f.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employeeId", Message: "employeeId must be a valid UUID"})
	}
	if f.Status != nil && !validator.IsInSlice(*f.Status, StatusValues) {
		errs = append(errs, validator.ValidationError{Field: "status", Message: "status must be one of: " + strings.Join(StatusValues, ", ")})
	}
	if f.From != nil {
		if d, ok := validator.IsValidDate(*f.From); ok {
			f.FromTime = &d
		} else {
			errs = append(errs, validator.ValidationError{Field: "from", Message: "from must be in YYYY-MM-DD format"})
		}
	}
	if f.To != nil {
		if d, ok := validator.IsValidDate(*f.To); ok {
			next := d.AddDate(0, 0, 1)
			f.ToTime = &next
		} else {
			errs = append(errs, validator.ValidationError{Field: "to", Message: "to must be in YYYY-MM-DD format"})
		}
	}
	if f.FromTime != nil && f.ToTime != nil && !f.ToTime.After(*f.FromTime) {
		errs = append(errs, validator.ValidationError{Field: "to", Message: "to must not be before from"})
	}

	return errs.OrNil()
}

type AutoAssignRequest struct {
	Date     string `json:"date" validate:"required"`
	OfficeID string `json:"locationId" validate:"required,uuid"`

	// Day is Date parsed as a calendar date (midnight UTC); the service
	// re-anchors it in the office timezone.
	Day time.Time `json:"-"`
}

func (r *AutoAssignRequest) Validate() error {
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

// SkipReason explains why the auto-assigner left an employee off the roster.
type SkipReason string

const (
	SkipHasShift       SkipReason = "existing_shift"
	SkipTimeOff        SkipReason = "time_off"
	SkipNoTemplate     SkipReason = "no_template"
	SkipCasualDeclined SkipReason = "casual_not_selected"
)

type AutoAssignResult struct {
	AssignedCount int
	Assigned      []Shift
	Skipped       map[string]SkipReason
	Failed        []string
}

type AutoAssignResponse struct {
	Success        bool            `json:"success"`
	AssignedShifts int             `json:"assignedShifts"`
	SkippedCount   int             `json:"skipped"`
	FailedCount    int             `json:"failed"`
	Shifts         []ShiftResponse `json:"shifts"`
	Message        string          `json:"message"`
}
