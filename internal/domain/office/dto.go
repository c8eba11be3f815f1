package office

import (
	"github.com/cmlabs-hris/rostering-backend-go/internal/pkg/geofence"
	"github.com/cmlabs-hris/rostering-backend-go/internal/pkg/validator"
)

type OfficeResponse struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Latitude     float64 `json:"latitude"`
	Longitude    float64 `json:"longitude"`
	RadiusMeters float64 `json:"radius"`
	Timezone     string  `json:"timezone"`
	CreatedAt    string  `json:"createdAt"`
	UpdatedAt    string  `json:"updatedAt"`
}

type CreateOfficeRequest struct {
	Name         string   `json:"name" validate:"required,max=100"`
	Latitude     *float64 `json:"latitude" validate:"required,gte=-90,lte=90"`
	Longitude    *float64 `json:"longitude" validate:"required,gte=-180,lte=180"`
	RadiusMeters *float64 `json:"radius,omitempty" validate:"omitempty,gt=0"`
	Timezone     string   `json:"timezone,omitempty"`
}

func (r *CreateOfficeRequest) Validate() error {
	errs := validator.Struct(r)

	if r.Timezone != "" && !validator.IsValidTimezone(r.Timezone) {
		errs = append(errs, validator.ValidationError{
			Field:   "timezone",
			Message: "timezone must be a valid IANA timezone",
		})
	}

	return errs.OrNil()
}

type UpdateOfficeRequest struct {
	ID           string   `json:"-" validate:"required,uuid"`
	Name         *string  `json:"name,omitempty" validate:"omitempty,max=100"`
	RadiusMeters *float64 `json:"radius,omitempty" validate:"omitempty,gt=0"`
	Timezone     *string  `json:"timezone,omitempty"`
}

func (r *UpdateOfficeRequest) Validate() error {
	errs := validator.Struct(r)

	if r.Name != nil && validator.IsEmpty(*r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name must not be empty",
		})
	}
	if r.Timezone != nil && !validator.IsValidTimezone(*r.Timezone) {
		errs = append(errs, validator.ValidationError{
			Field:   "timezone",
			Message: "timezone must be a valid IANA timezone",
		})
	}
	if r.Name == nil && r.RadiusMeters == nil && r.Timezone == nil {
		errs = append(errs, validator.ValidationError{
			Field:   "request",
			Message: "at least one of name, radius, timezone is required",
		})
	}

	return errs.OrNil()
}

type CheckFenceRequest struct {
	OfficeID  string              `json:"-" validate:"required,uuid"`
	Latitude  geofence.Coordinate `json:"lat"`
	Longitude geofence.Coordinate `json:"long"`
}

func (r *CheckFenceRequest) Validate() error {
	errs := validator.Struct(r)
	if !r.Latitude.Set {
		errs = append(errs, validator.ValidationError{Field: "lat", Message: "lat is required"})
	}
	if !r.Longitude.Set {
		errs = append(errs, validator.ValidationError{Field: "long", Message: "long is required"})
	}
	return errs.OrNil()
}

type CheckFenceResponse struct {
	OfficeID       string  `json:"officeId"`
	Within         bool    `json:"within"`
	DistanceMeters float64 `json:"distance"`
	RadiusMeters   float64 `json:"radius"`
}
