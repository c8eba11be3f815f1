package timelog

import "time"

type Status string

const (
	StatusOnTime  Status = "ON_TIME"
	StatusEarly   Status = "EARLY"
	StatusLate    Status = "LATE"
	StatusNoShift Status = "NO_SHIFT"
)

// ToleranceMinutes is the symmetric on-time window around a scheduled time.
const ToleranceMinutes = 5

type Classification struct {
	Status      Status
	DiffMinutes int // actual minus scheduled, negative when early
}

// Classify buckets actual against scheduled. The difference is counted in whole
// minutes, truncated toward zero.
func Classify(scheduled *time.Time, actual time.Time) Classification {
	if scheduled == nil {
		return Classification{Status: StatusNoShift}
	}
	diff := int(actual.Sub(*scheduled) / time.Minute)
	switch {
	case diff < -ToleranceMinutes:
		return Classification{Status: StatusEarly, DiffMinutes: diff}
	case diff > ToleranceMinutes:
		return Classification{Status: StatusLate, DiffMinutes: diff}
	default:
		return Classification{Status: StatusOnTime, DiffMinutes: diff}
	}
}
