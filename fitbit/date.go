package fitbit

import (
	"fmt"
	"time"
)

// Date is a calendar date as the API understands it: year, month and day
// with no time-of-day or zone component. The zero value means "today",
// resolved against the system clock at the moment a request is built.
type Date struct {
	t time.Time
}

// NewDate constructs a Date from a year, month and day.
func NewDate(year int, month time.Month, day int) Date {
	return Date{t: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// DateOf truncates a time.Time to its calendar date.
func DateOf(t time.Time) Date {
	return NewDate(t.Year(), t.Month(), t.Day())
}

// Today returns the current calendar date.
func Today() Date {
	return DateOf(time.Now())
}

// ParseDate parses a YYYY-MM-DD string into a Date. Non-zero-padded
// months and days are accepted, matching what the API itself tolerates.
func ParseDate(s string) (Date, error) {
	for _, layout := range []string{"2006-01-02", "2006-1-2"} {
		if t, err := time.Parse(layout, s); err == nil {
			return DateOf(t), nil
		}
	}
	return Date{}, fmt.Errorf("invalid date %q: want YYYY-MM-DD", s)
}

// IsZero reports whether d is the zero value.
func (d Date) IsZero() bool {
	return d.t.IsZero()
}

// orToday resolves the zero value to the current date. Request builders
// run every incoming date through this, so the zero value never reaches
// a URL or payload unresolved.
func (d Date) orToday() Date {
	if d.IsZero() {
		return Today()
	}
	return d
}

// String formats the date as YYYY-MM-DD, the only form the API accepts.
// The zero value formats as today's date.
func (d Date) String() string {
	return d.orToday().t.Format("2006-01-02")
}

// Equal reports whether two dates name the same calendar day.
func (d Date) Equal(other Date) bool {
	return d.orToday().t.Equal(other.orToday().t)
}
