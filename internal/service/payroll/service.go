package payroll

import (
	"context"
	"fmt"
	"time"

	"github.com/cmlabs-hris/rostering-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/rostering-backend-go/internal/domain/office"
	"github.com/cmlabs-hris/rostering-backend-go/internal/domain/payroll"
	"github.com/cmlabs-hris/rostering-backend-go/internal/domain/setting"
	"github.com/cmlabs-hris/rostering-backend-go/internal/domain/shift"
	"golang.org/x/sync/errgroup"
)

// maxZoneOffset widens the shift query so every office-local day of the period is covered.
const maxZoneOffset = 14 * time.Hour

type PayrollServiceImpl struct {
	employeeRepo employee.EmployeeRepository
	shiftRepo    shift.ShiftRepository
	officeRepo   office.OfficeRepository
	settingRepo  setting.SettingRepository
}

func NewPayrollService(
	employeeRepo employee.EmployeeRepository,
	shiftRepo shift.ShiftRepository,
	officeRepo office.OfficeRepository,
	settingRepo setting.SettingRepository,
) payroll.PayrollService {
	return &PayrollServiceImpl{
		employeeRepo: employeeRepo,
		shiftRepo:    shiftRepo,
		officeRepo:   officeRepo,
		settingRepo:  settingRepo,
	}
}

// Compute implements payroll.PayrollService. A shift belongs to the period when its
// start falls on one of the period's dates in its office's timezone.
func (s *PayrollServiceImpl) Compute(ctx context.Context, req payroll.ComputePayrollRequest) (payroll.PayrollResponse, error) {
	if err := req.Validate(); err != nil {
		return payroll.PayrollResponse{}, err
	}
	periodEnd := req.End.AddDate(0, 0, 1)

	var (
		emp      employee.Employee
		shifts   []shift.Shift
		offices  []office.OfficeLocation
		settings []setting.Setting
		holidays []setting.PublicHoliday
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		emp, err = s.employeeRepo.GetByID(gctx, req.EmployeeID)
		return err
	})
	g.Go(func() error {
		var err error
		shifts, err = s.shiftRepo.ListByEmployeeStartingBetween(gctx, req.EmployeeID, req.Start.Add(-maxZoneOffset), periodEnd.Add(maxZoneOffset))
		if err != nil {
			return fmt.Errorf("failed to list shifts: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		offices, err = s.officeRepo.List(gctx)
		if err != nil {
			return fmt.Errorf("failed to list offices: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		settings, err = s.settingRepo.List(gctx)
		if err != nil {
			return fmt.Errorf("failed to load settings: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		holidays, err = s.settingRepo.ListHolidays(gctx, req.Start, req.End)
		if err != nil {
			return fmt.Errorf("failed to list holidays: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return payroll.PayrollResponse{}, err
	}

	locations := make(map[string]*time.Location, len(offices))
	for _, o := range offices {
		locations[o.ID] = o.Location()
	}

	payShifts := make([]payroll.PayShift, 0, len(shifts))
	for _, sh := range shifts {
		loc, ok := locations[sh.OfficeID]
		if !ok {
			loc = time.UTC
		}
		day := localDay(sh.StartTime, loc)
		if day.Before(req.Start) || !day.Before(periodEnd) {
			continue
		}
		payShifts = append(payShifts, payroll.PayShift{
			ID:       sh.ID,
			Start:    sh.StartTime,
			End:      sh.EndTime,
			Location: loc,
		})
	}

	calendar := make(payroll.Holidays, len(holidays))
	for _, h := range holidays {
		calendar[h.Date.Format("2006-01-02")] = h.Name
	}

	result := payroll.ComputePay(payShifts, emp.BaseRate, setting.ResolvePayRates(settings), calendar)

	breakdown := make([]payroll.BreakdownResponse, 0, len(result.Breakdown))
	for _, line := range result.Breakdown {
		breakdown = append(breakdown, payroll.BreakdownResponse{
			ShiftID:    line.ShiftID,
			Date:       line.Date.Format("2006-01-02"),
			Hours:      line.Hours,
			BaseRate:   line.BaseRate,
			Multiplier: line.Multiplier,
			Amount:     line.Amount,
			Penalty:    line.Penalty,
			Reasons:    line.Reasons,
		})
	}

	return payroll.PayrollResponse{
		Employee: payroll.EmployeeSummary{
			ID:             emp.ID,
			FullName:       emp.FullName,
			EmploymentType: string(emp.EmploymentType),
		},
		StartDate:    req.StartDate,
		EndDate:      req.EndDate,
		BaseHours:    result.BaseHours,
		PenaltyHours: result.PenaltyHours,
		BaseRate:     emp.BaseRate,
		TotalPay:     result.TotalPay,
		Breakdown:    breakdown,
	}, nil
}

// localDay is the calendar date of t in loc, as midnight UTC.
func localDay(t time.Time, loc *time.Location) time.Time {
	y, m, d := t.In(loc).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
