package shift

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/cmlabs-hris/rostering-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/rostering-backend-go/internal/domain/office"
	"github.com/cmlabs-hris/rostering-backend-go/internal/domain/shift"
	"github.com/cmlabs-hris/rostering-backend-go/internal/domain/timelog"
)

// AutoAssign implements shift.ShiftService.
func (s *ShiftServiceImpl) AutoAssign(ctx context.Context, req shift.AutoAssignRequest) (shift.AutoAssignResponse, error) {
	if err := req.Validate(); err != nil {
		return shift.AutoAssignResponse{}, err
	}

	o, err := s.officeRepo.GetByID(ctx, req.OfficeID)
	if err != nil {
		return shift.AutoAssignResponse{}, err
	}

	res, err := s.autoAssign(ctx, o, req.Day)
	if err != nil {
		return shift.AutoAssignResponse{}, err
	}

	shifts := make([]shift.ShiftResponse, 0, len(res.Assigned))
	for _, row := range res.Assigned {
		shifts = append(shifts, mapShiftToResponse(row))
	}
	return shift.AutoAssignResponse{
		Success:        true,
		AssignedShifts: res.AssignedCount,
		SkippedCount:   len(res.Skipped),
		FailedCount:    len(res.Failed),
		Shifts:         shifts,
		Message:        fmt.Sprintf("%d shifts auto-assigned", res.AssignedCount),
	}, nil
}

// autoAssign rosters every active member of o for the calendar date of day,
// interpreted in the office timezone. Each employee is handled in its own
// transaction; one employee failing does not stop the others.
func (s *ShiftServiceImpl) autoAssign(ctx context.Context, o office.OfficeLocation, day time.Time) (shift.AutoAssignResult, error) {
	loc := o.Location()
	y, m, d := day.Date()
	dayStart := time.Date(y, m, d, 0, 0, 0, 0, loc)

	employees, err := s.employeeRepo.ListActiveByOfficeID(ctx, o.ID)
	if err != nil {
		return shift.AutoAssignResult{}, fmt.Errorf("failed to list office employees: %w", err)
	}

	res := shift.AutoAssignResult{Skipped: make(map[string]shift.SkipReason)}
	for _, emp := range employees {
		if err := ctx.Err(); err != nil {
			return res, err
		}

		created, reason, err := s.assignEmployee(ctx, emp, o.ID, dayStart)
		switch {
		case err != nil:
			slog.Error("auto-assign failed for employee",
				"employee_id", emp.ID, "office_id", o.ID, "date", dayStart.Format("2006-01-02"), "error", err)
			res.Failed = append(res.Failed, emp.ID)
		case created == nil:
			res.Skipped[emp.ID] = reason
		default:
			res.Assigned = append(res.Assigned, *created)
			res.AssignedCount++
		}
	}

	slog.Info("auto-assign finished",
		"office_id", o.ID, "date", dayStart.Format("2006-01-02"),
		"assigned", res.AssignedCount, "skipped", len(res.Skipped), "failed", len(res.Failed))
	return res, nil
}

// assignEmployee holds a row lock on the employee while checking for existing
// shifts and time off, so concurrent runs cannot double-book the same day.
func (s *ShiftServiceImpl) assignEmployee(ctx context.Context, emp employee.Employee, officeID string, dayStart time.Time) (*shift.Shift, shift.SkipReason, error) {
	var (
		created *shift.Shift
		reason  shift.SkipReason
	)
	_, dayEnd := timelog.DayWindow(dayStart, dayStart.Location())

	err := s.transactor.WithinTransaction(ctx, func(ctx context.Context) error {
		if err := s.employeeRepo.LockByID(ctx, emp.ID); err != nil {
			return err
		}

		busy, err := s.shiftRepo.ExistsOverlapping(ctx, emp.ID, dayStart, dayEnd)
		if err != nil {
			return err
		}
		if busy {
			reason = shift.SkipHasShift
			return nil
		}

		onLeave, err := s.timeOffRepo.HasApprovedOn(ctx, emp.ID, timelog.LocalDate(dayStart, dayStart.Location()))
		if err != nil {
			return err
		}
		if onLeave {
			reason = shift.SkipTimeOff
			return nil
		}

		tpl, ok := shift.TemplateFor(emp, dayStart, s.decider)
		if !ok {
			reason = shift.SkipNoTemplate
			if emp.EmploymentType == employee.EmploymentTypeCasual {
				reason = shift.SkipCasualDeclined
			}
			return nil
		}

		start, end := tpl.On(dayStart)
		employeeID := emp.ID
		note := shift.AutoAssignNote
		row, err := s.shiftRepo.Create(ctx, shift.Shift{
			EmployeeID:      &employeeID,
			OfficeID:        officeID,
			StartTime:       start,
			EndTime:         end,
			Status:          shift.StatusAssigned,
			RepeatFrequency: shift.RepeatNone,
			Notes:           &note,
		})
		if err != nil {
			return err
		}
		created = &row
		return nil
	})
	if err != nil {
		return nil, "", err
	}
	return created, reason, nil
}
