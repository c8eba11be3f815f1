package cron

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/cmlabs-hris/rostering-backend-go/internal/domain/office"
	"github.com/cmlabs-hris/rostering-backend-go/internal/domain/shift"
)

type AutoAssignJobs struct {
	officeRepo   office.OfficeRepository
	shiftService shift.ShiftService
	leadDays     int
	now          func() time.Time
}

func NewAutoAssignJobs(officeRepo office.OfficeRepository, shiftService shift.ShiftService, leadDays int) *AutoAssignJobs {
	return &AutoAssignJobs{
		officeRepo:   officeRepo,
		shiftService: shiftService,
		leadDays:     leadDays,
		now:          time.Now,
	}
}

// RegisterJobs adds the roster job; an empty spec leaves it disabled.
func (j *AutoAssignJobs) RegisterJobs(scheduler *Scheduler, spec string) error {
	if spec == "" {
		slog.Info("Cron: auto-assign job disabled")
		return nil
	}
	return scheduler.AddJob("auto_assign_shifts", spec, j.AutoAssignAllOffices)
}

// AutoAssignAllOffices rosters every office for its local today plus leadDays.
// An office that fails is logged and does not stop the others.
func (j *AutoAssignJobs) AutoAssignAllOffices(ctx context.Context) error {
	offices, err := j.officeRepo.List(ctx)
	if err != nil {
		return fmt.Errorf("failed to list offices: %w", err)
	}

	slog.Info("Cron: Starting auto-assign job", "offices", len(offices), "lead_days", j.leadDays)

	var errs []error
	assigned := 0
	for _, o := range offices {
		if err := ctx.Err(); err != nil {
			return err
		}
		target := j.now().In(o.Location()).AddDate(0, 0, j.leadDays).Format("2006-01-02")

		req := shift.AutoAssignRequest{Date: target, OfficeID: o.ID}
		res, err := j.shiftService.AutoAssign(ctx, req)
		if err != nil {
			slog.Error("Cron: auto-assign failed for office", "office_id", o.ID, "date", target, "error", err)
			errs = append(errs, fmt.Errorf("office %s: %w", o.ID, err))
			continue
		}
		assigned += res.AssignedShifts
		slog.Info("Cron: office auto-assigned", "office_id", o.ID, "date", target,
			"assigned", res.AssignedShifts, "skipped", res.SkippedCount, "failed", res.FailedCount)
	}

	slog.Info("Cron: Auto-assign job completed", "assigned", assigned)
	return errors.Join(errs...)
}
