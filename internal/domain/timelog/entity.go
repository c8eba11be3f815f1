package timelog

import "time"

type TimeLog struct {
	ID          string
	EmployeeID  string
	OfficeID    string
	ClockInDate time.Time // office-local calendar date of ClockIn
	ClockIn     time.Time
	ClockOut    *time.Time
	BreakStart  *time.Time
	BreakEnd    *time.Time

	HasShift          bool
	ClockInStatus     Status
	ClockInDiffInMin  int
	ClockOutStatus    *Status
	ClockOutDiffInMin *int

	ClockInLatitude   float64
	ClockInLongitude  float64
	ClockOutLatitude  *float64
	ClockOutLongitude *float64

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsClosed reports whether the log has been clocked out.
func (t TimeLog) IsClosed() bool {
	return t.ClockOut != nil
}

// State is the lifecycle position of a day's log.
type State string

const (
	StateClockedIn  State = "clocked_in"
	StateOnBreak    State = "on_break"
	StateClockedOut State = "clocked_out"
)

func (t TimeLog) State() State {
	switch {
	case t.ClockOut != nil:
		return StateClockedOut
	case t.BreakStart != nil && t.BreakEnd == nil:
		return StateOnBreak
	default:
		return StateClockedIn
	}
}

// DayWindow returns the half-open calendar day [start, end) containing t in loc.
// A nil loc means UTC.
func DayWindow(t time.Time, loc *time.Location) (start, end time.Time) {
	if loc == nil {
		loc = time.UTC
	}
	y, m, d := t.In(loc).Date()
	start = time.Date(y, m, d, 0, 0, 0, 0, loc)
	return start, start.AddDate(0, 0, 1)
}

// LocalDate is the calendar date of t in loc, as midnight UTC for DATE columns.
func LocalDate(t time.Time, loc *time.Location) time.Time {
	if loc == nil {
		loc = time.UTC
	}
	y, m, d := t.In(loc).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
