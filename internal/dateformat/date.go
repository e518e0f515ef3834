package dateformat

import (
	"strings"
	"time"
)

// ISOLayout is the canonical YYYY-MM-DD layout used for parsing and output
const ISOLayout = "2006-01-02"

// invalidDate is what an unparseable CalendarDate renders as
const invalidDate = "Invalid date"

const secondsPerDay = 24 * 60 * 60

// validLayouts are the layouts IsValid accepts for string input
var validLayouts = []string{
	ISOLayout,
	time.RFC3339,
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
}

// CalendarDate is a UTC calendar day without time of day
// The zero value is the absent date and is never valid
type CalendarDate struct {
	year  int
	month time.Month
	day   int
	valid bool
}

// NewCalendarDate builds a date from its parts. Out of range parts
// produce an invalid date rather than being normalized
func NewCalendarDate(year int, month time.Month, day int) CalendarDate {
	t := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	if t.Year() != year || t.Month() != month || t.Day() != day {
		return CalendarDate{}
	}
	return CalendarDate{year: year, month: month, day: day, valid: true}
}

// FromTime converts t to UTC and truncates it to the day
// A zero time yields the absent date
func FromTime(t time.Time) CalendarDate {
	if t.IsZero() {
		return CalendarDate{}
	}
	u := t.UTC()
	return CalendarDate{year: u.Year(), month: u.Month(), day: u.Day(), valid: true}
}

// Parse reads a YYYY-MM-DD date. Longer input is accepted when the date
// is followed by a 'T' or space, so timestamps resolve to their day
// without checking the time part. Parse is therefore looser than IsValid:
// "2020-12-01T99" parses but is not valid. Anything else yields an
// invalid date
func Parse(s string) CalendarDate {
	s = strings.TrimSpace(s)
	if len(s) < len(ISOLayout) {
		return CalendarDate{}
	}
	if len(s) > len(ISOLayout) {
		switch s[len(ISOLayout)] {
		case 'T', 't', ' ':
		default:
			return CalendarDate{}
		}
	}
	t, err := time.Parse(ISOLayout, s[:len(ISOLayout)])
	if err != nil {
		return CalendarDate{}
	}
	return NewCalendarDate(t.Year(), t.Month(), t.Day())
}

// Valid reports whether d holds a real calendar date
func (d CalendarDate) Valid() bool {
	return d.valid
}

// Year returns the year, or 0 when invalid
func (d CalendarDate) Year() int { return d.year }

// Month returns the month, or 0 when invalid
func (d CalendarDate) Month() time.Month { return d.month }

// Day returns the day of month, or 0 when invalid
func (d CalendarDate) Day() int { return d.day }

// Time returns midnight UTC of d. Invalid dates return the zero time
func (d CalendarDate) Time() time.Time {
	if !d.valid {
		return time.Time{}
	}
	return time.Date(d.year, d.month, d.day, 0, 0, 0, 0, time.UTC)
}

// String formats d as YYYY-MM-DD
func (d CalendarDate) String() string {
	if !d.valid {
		return invalidDate
	}
	return d.Time().Format(ISOLayout)
}

// Equal reports whether both dates are valid and fall on the same day
func (d CalendarDate) Equal(other CalendarDate) bool {
	return d.valid && other.valid &&
		d.year == other.year && d.month == other.month && d.day == other.day
}

// Before reports whether d is a strictly earlier day than other
// Comparisons involving an invalid date are always false
func (d CalendarDate) Before(other CalendarDate) bool {
	if !d.valid || !other.valid {
		return false
	}
	return d.Time().Before(other.Time())
}

// After reports whether d is a strictly later day than other
func (d CalendarDate) After(other CalendarDate) bool {
	if !d.valid || !other.valid {
		return false
	}
	return d.Time().After(other.Time())
}

// AddDays shifts d by n calendar days
func (d CalendarDate) AddDays(n int) CalendarDate {
	if !d.valid {
		return d
	}
	t := d.Time().AddDate(0, 0, n)
	return NewCalendarDate(t.Year(), t.Month(), t.Day())
}

// DaysSince returns the whole number of days from other to d
// It is negative when d is before other and 0 if either date is invalid
func (d CalendarDate) DaysSince(other CalendarDate) int {
	if !d.valid || !other.valid {
		return 0
	}
	return int((d.Time().Unix() - other.Time().Unix()) / secondsPerDay)
}

// IsValid reports whether input can be read as a real calendar date
// It accepts strings, time values and CalendarDate, plus pointers to them
func IsValid(input any) bool {
	switch v := input.(type) {
	case nil:
		return false
	case string:
		return isValidString(v)
	case *string:
		return v != nil && isValidString(*v)
	case time.Time:
		return !v.IsZero()
	case *time.Time:
		return v != nil && !v.IsZero()
	case CalendarDate:
		return v.Valid()
	case *CalendarDate:
		return v != nil && v.Valid()
	default:
		return false
	}
}

func isValidString(s string) bool {
	s = strings.TrimSpace(s)
	if s == "" {
		return false
	}
	for _, layout := range validLayouts {
		if _, err := time.Parse(layout, s); err == nil {
			return true
		}
	}
	return false
}
