package employee

import (
	"time"

	"github.com/cmlabs-hris/rostering-backend-go/internal/domain/user"
	"github.com/shopspring/decimal"
)

type Employee struct {
	ID               string
	FullName         string
	Email            string
	EmploymentType   EmploymentType
	EmploymentStatus EmploymentStatus
	BaseRate         decimal.Decimal // hourly
	Role             user.Role
	CreatedAt        time.Time
	UpdatedAt        time.Time

	// Join
	OfficeIDs []string
}

type EmploymentType string

const (
	EmploymentTypeFullTime EmploymentType = "full_time"
	EmploymentTypePartTime EmploymentType = "part_time"
	EmploymentTypeCasual   EmploymentType = "casual"
)

var EmploymentTypeValues = []string{
	string(EmploymentTypeFullTime),
	string(EmploymentTypePartTime),
	string(EmploymentTypeCasual),
}

type EmploymentStatus string

const (
	EmploymentStatusActive     EmploymentStatus = "active"
	EmploymentStatusInactive   EmploymentStatus = "inactive"
	EmploymentStatusLeave      EmploymentStatus = "leave"
	EmploymentStatusTerminated EmploymentStatus = "terminated"
)

var EmploymentStatusValues = []string{
	string(EmploymentStatusActive),
	string(EmploymentStatusInactive),
	string(EmploymentStatusLeave),
	string(EmploymentStatusTerminated),
}

// IsActive reports whether the employee can be rostered.
func (e Employee) IsActive() bool {
	return e.EmploymentStatus == EmploymentStatusActive
}
