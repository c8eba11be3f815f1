package timeoff

import "time"

// TimeOff is an employee's absence request covering whole calendar dates.
type TimeOff struct {
	ID         string
	EmployeeID string
	StartDate  time.Time
	EndDate    time.Time // inclusive
	Status     Status
	Reason     *string
	ReviewedBy *string
	ReviewedAt *time.Time
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

var StatusValues = []string{
	string(StatusPending),
	string(StatusApproved),
	string(StatusRejected),
}

// Covers reports whether date (a calendar date) falls inside the request.
func (t TimeOff) Covers(date time.Time) bool {
	d := dateOnly(date)
	return !d.Before(dateOnly(t.StartDate)) && !d.After(dateOnly(t.EndDate))
}

func dateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
