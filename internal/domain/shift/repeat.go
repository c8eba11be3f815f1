package shift

import "time"

// Occurrence is one stamped-out window of a repeating shift.
type Occurrence struct {
	Start time.Time
	End   time.Time
}

// Occurrences expands a shift into its repeat windows. The first window is always
// the given one; further windows follow at the frequency interval while their start
// date is on or before repeatEnd (a calendar date, inclusive).
func Occurrences(start, end time.Time, freq RepeatFrequency, repeatEnd *time.Time) ([]Occurrence, error) {
	if !end.After(start) {
		return nil, ErrInvalidTimeRange
	}
	first := Occurrence{Start: start, End: end}
	step := freq.Interval()
	if step == 0 || repeatEnd == nil {
		return []Occurrence{first}, nil
	}

	y, m, d := repeatEnd.Date()
	// Exclusive bound: midnight after repeatEnd in the shift's own zone.
	limit := time.Date(y, m, d, 0, 0, 0, 0, start.Location()).AddDate(0, 0, 1)
	if !start.Before(limit) {
		return nil, ErrRepeatEndBeforeStart
	}

	days := int(step / (24 * time.Hour))
	out := []Occurrence{first}
	for i := 1; ; i++ {
		s := start.AddDate(0, 0, days*i)
		if !s.Before(limit) {
			break
		}
		if len(out) >= MaxOccurrences {
			return nil, ErrTooManyOccurrences
		}
		out = append(out, Occurrence{Start: s, End: end.AddDate(0, 0, days*i)})
	}
	return out, nil
}
