package timelog

import (
	"time"

	"github.com/cmlabs-hris/rostering-backend-go/internal/pkg/geofence"
	"github.com/cmlabs-hris/rostering-backend-go/internal/pkg/validator"
)

type TimeLogResponse struct {
	ID                string   `json:"id"`
	EmployeeID        string   `json:"employeeId"`
	OfficeID          string   `json:"officeId"`
	Date              string   `json:"date"`
	ClockInTime       string   `json:"clockInTime"`
	ClockOutTime      *string  `json:"clockOutTime"`
	BreakStartTime    *string  `json:"breakStartTime"`
	BreakEndTime      *string  `json:"breakEndTime"`
	HasShift          bool     `json:"hasShift"`
	ClockInStatus     string   `json:"clockInStatus"`
	ClockInDiffInMin  int      `json:"clockInDiffInMin"`
	ClockOutStatus    *string  `json:"clockOutStatus"`
	ClockOutDiffInMin *int     `json:"clockOutDiffInMin"`
	ClockInLatitude   float64  `json:"clockInLat"`
	ClockInLongitude  float64  `json:"clockInLong"`
	ClockOutLatitude  *float64 `json:"clockOutLat"`
	ClockOutLongitude *float64 `json:"clockOutLong"`
	State             string   `json:"state"`
}

type ListTimeLogResponse struct {
	TotalCount int64             `json:"totalCount"`
	Page       int               `json:"page"`
	Limit      int               `json:"limit"`
	TotalPages int               `json:"totalPages"`
	TimeLogs   []TimeLogResponse `json:"timeLogs"`
}

// parseOptionalTime parses an optional ISO8601 field; absent yields the zero time.
func parseOptionalTime(errs validator.ValidationErrors, field string, raw *string) (time.Time, validator.ValidationErrors) {
	if raw == nil || validator.IsEmpty(*raw) {
		return time.Time{}, errs
	}
	t, ok := validator.IsValidDateTime(*raw)
	if !ok {
		errs = append(errs, validator.ValidationError{Field: field, Message: field + " must be an ISO8601 timestamp"})
	}
	return t, errs
}

func requireCoordinates(errs validator.ValidationErrors, lat, long geofence.Coordinate) validator.ValidationErrors {
	if !lat.Set {
		errs = append(errs, validator.ValidationError{Field: "lat", Message: "lat is required"})
	} else if lat.Value < -90 || lat.Value > 90 {
		errs = append(errs, validator.ValidationError{Field: "lat", Message: "lat must be between -90 and 90"})
	}
	if !long.Set {
		errs = append(errs, validator.ValidationError{Field: "long", Message: "long is required"})
	} else if long.Value < -180 || long.Value > 180 {
		errs = append(errs, validator.ValidationError{Field: "long", Message: "long must be between -180 and 180"})
	}
	return errs
}

type ClockInRequest struct {
	ClockInTime *string             `json:"clockInTime,omitempty"`
	Latitude    geofence.Coordinate `json:"lat"`
	Longitude   geofence.Coordinate `json:"long"`

	// At is ClockInTime parsed; zero means "now".
	At time.Time `json:"-"`
}

func (r *ClockInRequest) Validate() error {
	var errs validator.ValidationErrors
	r.At, errs = parseOptionalTime(errs, "clockInTime", r.ClockInTime)
	errs = requireCoordinates(errs, r.Latitude, r.Longitude)
	return errs.OrNil()
}

type ClockOutRequest struct {
	TimeLogID    string              `json:"timeLogId" validate:"required,uuid"`
	ClockOutTime *string             `json:"clockOutTime,omitempty"`
	Latitude     geofence.Coordinate `json:"lat"`
	Longitude    geofence.Coordinate `json:"long"`

	At time.Time `json:"-"`
}

func (r *ClockOutRequest) Validate() error {
	errs := validator.Struct(r)
	r.At, errs = parseOptionalTime(errs, "clockOutTime", r.ClockOutTime)
	errs = requireCoordinates(errs, r.Latitude, r.Longitude)
	return errs.OrNil()
}

type StartBreakRequest struct {
	TimeLogID      string  `json:"timeLogId" validate:"required,uuid"`
	BreakStartTime *string `json:"breakStartTime,omitempty"`

	At time.Time `json:"-"`
}

func (r *StartBreakRequest) Validate() error {
	errs := validator.Struct(r)
	r.At, errs = parseOptionalTime(errs, "breakStartTime", r.BreakStartTime)
	return errs.OrNil()
}

type EndBreakRequest struct {
	TimeLogID    string  `json:"timeLogId" validate:"required,uuid"`
	BreakEndTime *string `json:"breakEndTime,omitempty"`

	At time.Time `json:"-"`
}

func (r *EndBreakRequest) Validate() error {
	errs := validator.Struct(r)
	r.At, errs = parseOptionalTime(errs, "breakEndTime", r.BreakEndTime)
	return errs.OrNil()
}

type TimeLogFilter struct {
	EmployeeID string  `json:"-"`
	From       *string `json:"from,omitempty"`
	To         *string `json:"to,omitempty"`

	Page  int `json:"page"`
	Limit int `json:"limit"`

	FromDate *time.Time `json:"-"`
	ToDate   *time.Time `json:"-"`
}

func (f *TimeLogFilter) Validate() error {
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
	if f.From != nil {
		if d, ok := validator.IsValidDate(*f.From); ok {
			f.FromDate = &d
		} else {
			errs = append(errs, validator.ValidationError{Field: "from", Message: "from must be in YYYY-MM-DD format"})
		}
	}
	if f.To != nil {
		if d, ok := validator.IsValidDate(*f.To); ok {
			f.ToDate = &d
		} else {
			errs = append(errs, validator.ValidationError{Field: "to", Message: "to must be in YYYY-MM-DD format"})
		}
	}

	return errs.OrNil()
}
