package shift

import "time"

type Shift struct {
	ID              string
	EmployeeID      *string // nil = unassigned
	OfficeID        string
	StartTime       time.Time
	EndTime         time.Time
	Status          Status
	RepeatFrequency RepeatFrequency
	RepeatEndDate   *time.Time
	RepeatGroupID   *string
	Notes           *string
	CreatedAt       time.Time
	UpdatedAt       time.Time

	// DTO
	EmployeeName *string
}

type Status string

const (
	StatusPending   Status = "pending"
	StatusAssigned  Status = "assigned"
	StatusActive    Status = "active"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

var StatusValues = []string{
	string(StatusPending),
	string(StatusAssigned),
	string(StatusActive),
	string(StatusCompleted),
	string(StatusCancelled),
}

// transitions lists the statuses reachable from each status.
var transitions = map[Status][]Status{
	StatusPending:   {StatusAssigned, StatusCancelled},
	StatusAssigned:  {StatusPending, StatusActive, StatusCancelled},
	StatusActive:    {StatusCompleted, StatusCancelled},
	StatusCompleted: {},
	StatusCancelled: {},
}

// CanTransition reports whether a shift in status from may move to status to.
func CanTransition(from, to Status) bool {
	for _, s := range transitions[from] {
		if s == to {
			return true
		}
	}
	return false
}

// IsTerminal reports whether no further status change is possible.
func (s Status) IsTerminal() bool {
	return len(transitions[s]) == 0
}

type RepeatFrequency string

const (
	RepeatNone        RepeatFrequency = "none"
	RepeatWeekly      RepeatFrequency = "weekly"
	RepeatFortnightly RepeatFrequency = "fortnightly"
)

// Interval returns the gap between occurrences, zero for RepeatNone.
func (f RepeatFrequency) Interval() time.Duration {
	switch f {
	case RepeatWeekly:
		return 7 * 24 * time.Hour
	case RepeatFortnightly:
		return 14 * 24 * time.Hour
	default:
		return 0
	}
}

// Boundary selects which end of a shift the matcher compares against a day.
type Boundary string

const (
	BoundaryStart Boundary = "start_time"
	BoundaryEnd   Boundary = "end_time"
)

// Duration is the scheduled length of the shift.
func (s Shift) Duration() time.Duration {
	return s.EndTime.Sub(s.StartTime)
}
