package generic

import (
	"fmt"
	"strings"
	"time"
)

// =============================================================================
// TIME POINT - An instant with day-level meaning
// =============================================================================

// DateLayout is the layout of an HTML date input value.
const DateLayout = "2006-01-02"

// MillisPerDay converts millisecond differences into days.
const MillisPerDay = 24 * 60 * 60 * 1000

type TimePoint struct {
	Time time.Time
}

// Constructors
func NewTimePoint(year int, month time.Month, day int) TimePoint {
	return TimePoint{Time: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// DateOf truncates t to midnight UTC of its UTC calendar date.
func DateOf(t time.Time) TimePoint {
	u := t.UTC()
	return NewTimePoint(u.Year(), u.Month(), u.Day())
}

// ParseTimePoint accepts a bare date (read as UTC midnight) or an RFC 3339 instant.
func ParseTimePoint(s string) (TimePoint, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return TimePoint{}, fmt.Errorf("%w: empty value", ErrInvalidDate)
	}
	if t, err := time.Parse(DateLayout, s); err == nil {
		return TimePoint{Time: t}, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return TimePoint{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}
	return TimePoint{Time: t}, nil
}

func (tp TimePoint) After(other TimePoint) bool { return tp.Time.After(other.Time) }

// Arithmetic
func (tp TimePoint) AddDays(n int) TimePoint { return TimePoint{Time: tp.Time.AddDate(0, 0, n)} }
func (tp TimePoint) UnixMilli() int64        { return tp.Time.UnixMilli() }

func (tp TimePoint) String() string {
	t := tp.Time.UTC()
	if t.Hour() == 0 && t.Minute() == 0 && t.Second() == 0 && t.Nanosecond() == 0 {
		return t.Format(DateLayout)
	}
	return t.Format(time.RFC3339)
}
