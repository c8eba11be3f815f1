package payroll

import "context"

type PayrollService interface {
	// Compute prices the employee's non-cancelled shifts starting within the period.
	Compute(ctx context.Context, req ComputePayrollRequest) (PayrollResponse, error)
}
