package employee

import (
	"github.com/cmlabs-hris/rostering-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type EmployeeResponse struct {
	ID               string   `json:"id"`
	FullName         string   `json:"fullName"`
	Email            string   `json:"email"`
	EmploymentType   string   `json:"employmentType"`
	EmploymentStatus string   `json:"employmentStatus"`
	BaseRate         string   `json:"baseRate"`
	Role             string   `json:"role"`
	OfficeIDs        []string `json:"officeIds"`
	CreatedAt        string   `json:"createdAt"`
	UpdatedAt        string   `json:"updatedAt"`
}

type ListEmployeeResponse struct {
	TotalCount int64              `json:"totalCount"`
	Page       int                `json:"page"`
	Limit      int                `json:"limit"`
	TotalPages int                `json:"totalPages"`
	Employees  []EmployeeResponse `json:"employees"`
}

type CreateEmployeeRequest struct {
	FullName         string          `json:"fullName" validate:"required,max=150"`
	Email            string          `json:"email" validate:"required,email"`
	EmploymentType   string          `json:"employmentType" validate:"required,oneof=full_time part_time casual"`
	EmploymentStatus string          `json:"employmentStatus,omitempty" validate:"omitempty,oneof=active inactive leave terminated"`
	BaseRate         decimal.Decimal `json:"baseRate"`
	Role             string          `json:"role,omitempty" validate:"omitempty,oneof=admin manager employee"`
	OfficeIDs        []string        `json:"officeIds,omitempty" validate:"omitempty,dive,uuid"`
}

func (r *CreateEmployeeRequest) Validate() error {
	errs := validator.Struct(r)

	if r.BaseRate.IsNegative() {
		errs = append(errs, validator.ValidationError{
			Field:   "baseRate",
			Message: "baseRate must not be negative",
		})
	}

	return errs.OrNil()
}

type UpdateEmployeeRequest struct {
	ID               string           `json:"-" validate:"required,uuid"`
	FullName         *string          `json:"fullName,omitempty" validate:"omitempty,max=150"`
	EmploymentType   *string          `json:"employmentType,omitempty" validate:"omitempty,oneof=full_time part_time casual"`
	EmploymentStatus *string          `json:"employmentStatus,omitempty" validate:"omitempty,oneof=active inactive leave terminated"`
	BaseRate         *decimal.Decimal `json:"baseRate,omitempty"`
	Role             *string          `json:"role,omitempty" validate:"omitempty,oneof=admin manager employee"`
}

func (r *UpdateEmployeeRequest) Validate() error {
	errs := validator.Struct(r)

	if r.BaseRate != nil && r.BaseRate.IsNegative() {
		errs = append(errs, validator.ValidationError{
			Field:   "baseRate",
			Message: "baseRate must not be negative",
		})
	}
	if r.FullName != nil && validator.IsEmpty(*r.FullName) {
		errs = append(errs, validator.ValidationError{
			Field:   "fullName",
			Message: "fullName must not be empty",
		})
	}

	return errs.OrNil()
}

type EmployeeFilter struct {
	OfficeID         *string `json:"officeId,omitempty"`
	EmploymentStatus *string `json:"employmentStatus,omitempty"`
	EmploymentType   *string `json:"employmentType,omitempty"`
	Search           *string `json:"search,omitempty"`

	Page  int `json:"page"`
	Limit int `json:"limit"`
}

func (f *EmployeeFilter) Validate() error {
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
	if f.EmploymentStatus != nil && !validator.IsInSlice(*f.EmploymentStatus, EmploymentStatusValues) {
		errs = append(errs, validator.ValidationError{Field: "employmentStatus", Message: "employmentStatus must be one of: active, inactive, leave, terminated"})
	}
	if f.EmploymentType != nil && !validator.IsInSlice(*f.EmploymentType, EmploymentTypeValues) {
		errs = append(errs, validator.ValidationError{Field: "employmentType", Message: "employmentType must be one of: full_time, part_time, casual"})
	}

	return errs.OrNil()
}

type OfficeMembershipRequest struct {
	EmployeeID string `json:"-" validate:"required,uuid"`
	OfficeID   string `json:"-" validate:"required,uuid"`
}

func (r *OfficeMembershipRequest) Validate() error {
	return validator.Struct(r).OrNil()
}
