package payroll

import "errors"

var (
	ErrInvalidPeriod = errors.New("end date must not be before start date")
	ErrPeriodTooLong = errors.New("payroll period must not exceed 93 days")
)
