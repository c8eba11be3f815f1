package shift

import (
	"context"
	"time"

	"github.com/cmlabs-hris/rostering-backend-go/internal/domain/shift"
	"github.com/cmlabs-hris/rostering-backend-go/internal/domain/timelog"
)

// ShiftMatcher resolves the shift a clock event is measured against.
type ShiftMatcher struct {
	shiftRepo shift.ShiftRepository
}

func NewShiftMatcher(shiftRepo shift.ShiftRepository) *ShiftMatcher {
	return &ShiftMatcher{shiftRepo: shiftRepo}
}

// FindGoverningShift returns the employee's first non-cancelled shift whose boundary
// falls on the calendar day of at in loc. Ties on start time break by id. A nil
// shift with a nil error means the employee has no shift that day.
func (m *ShiftMatcher) FindGoverningShift(ctx context.Context, employeeID string, at time.Time, boundary shift.Boundary, loc *time.Location) (*shift.Shift, error) {
	from, to := timelog.DayWindow(at, loc)
	return m.shiftRepo.FindFirstOnDay(ctx, employeeID, boundary, from, to)
}

var _ shift.Matcher = (*ShiftMatcher)(nil)
