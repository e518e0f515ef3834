// Package dateformat renders calendar dates as short relative labels
// such as "today", "yesterday" or "3 days ago". All comparisons happen
// on UTC calendar days
package dateformat

import (
	"strconv"
	"strings"
	"time"
)

// Translation keys passed to a Translator
const (
	KeyToday      = "today"
	KeyYesterday  = "yesterday"
	KeyWithinWeek = "withinWeek"
)

// DaysPlaceholder is replaced with the day count in the withinWeek message
const DaysPlaceholder = "{days}"

// Translator maps a translation key to a display string
type Translator func(key string) string

// Kind is the bucket a date falls into relative to today
type Kind int

const (
	// KindDate is any date outside the last week, future dates and invalid input
	KindDate Kind = iota
	// KindToday is the current UTC date
	KindToday
	// KindYesterday is the day before today
	KindYesterday
	// KindWithinWeek is two to six days ago
	KindWithinWeek
)

func (k Kind) String() string {
	switch k {
	case KindToday:
		return "today"
	case KindYesterday:
		return "yesterday"
	case KindWithinWeek:
		return "within_week"
	default:
		return "date"
	}
}

// Formatter classifies and labels dates against a clock
type Formatter struct {
	clock  Clock
	strict bool
}

// Option configures a Formatter
type Option func(*Formatter)

// WithClock sets the clock used for "now"
func WithClock(c Clock) Option {
	return func(f *Formatter) {
		if c != nil {
			f.clock = c
		}
	}
}

// WithStrictParsing makes FormatDate reject unparseable dates instead of
// rendering them through the fallback branch
func WithStrictParsing() Option {
	return func(f *Formatter) {
		f.strict = true
	}
}

// New creates a Formatter on the system clock unless WithClock is given
func New(opts ...Option) *Formatter {
	f := &Formatter{clock: SystemClock{}}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Strict reports whether unparseable dates are rejected
func (f *Formatter) Strict() bool {
	return f.strict
}

// Today returns the current UTC calendar date
func (f *Formatter) Today() CalendarDate {
	return FromTime(f.clock.Now())
}

// IsToday reports whether d is the current UTC date
func (f *Formatter) IsToday(d CalendarDate) bool {
	return isToday(d, f.Today())
}

// IsYesterday reports whether d is the day before the current UTC date
func (f *Formatter) IsYesterday(d CalendarDate) bool {
	return isYesterday(d, f.clock.Now())
}

// IsWithinLastWeek reports whether d is today or one of the six days before it
func (f *Formatter) IsWithinLastWeek(d CalendarDate) bool {
	return isWithinLastWeek(d, f.Today())
}

// Classify returns the bucket for d and the number of days from d to today
func (f *Formatter) Classify(d CalendarDate) (Kind, int) {
	return classify(d, f.clock.Now())
}

// FormatDate parses a YYYY-MM-DD date and labels it
// ok is false when date is empty or t is nil, and in strict mode when
// date cannot be parsed
func (f *Formatter) FormatDate(date string, t Translator) (string, bool) {
	if date == "" || t == nil {
		return "", false
	}
	return f.Label(Parse(date), t)
}

// Label renders an already parsed date. Recent dates go through t,
// everything else is returned as YYYY-MM-DD
func (f *Formatter) Label(d CalendarDate, t Translator) (string, bool) {
	desc, ok := f.Describe(d, t)
	return desc.Text, ok
}

// Description is a rendered label together with its classification
type Description struct {
	Text string
	Kind Kind
	Days int
}

// Describe is Label that also reports which bucket the date fell into
func (f *Formatter) Describe(d CalendarDate, t Translator) (Description, bool) {
	if t == nil {
		return Description{}, false
	}
	if f.strict && !d.Valid() {
		return Description{}, false
	}

	kind, days := classify(d, f.clock.Now())
	desc := Description{Kind: kind, Days: days}
	switch kind {
	case KindToday:
		desc.Text = t(KeyToday)
	case KindYesterday:
		desc.Text = t(KeyYesterday)
	case KindWithinWeek:
		desc.Text = strings.ReplaceAll(t(KeyWithinWeek), DaysPlaceholder, strconv.Itoa(days))
	default:
		desc.Text = d.String()
	}
	return desc, true
}

// now is read once per call and every comparison below derives from it
func classify(d CalendarDate, now time.Time) (Kind, int) {
	today := FromTime(now)
	switch {
	case isToday(d, today):
		return KindToday, 0
	case isYesterday(d, now):
		return KindYesterday, 1
	case isWithinLastWeek(d, today):
		return KindWithinWeek, today.DaysSince(d)
	default:
		return KindDate, today.DaysSince(d)
	}
}

func isToday(d, today CalendarDate) bool {
	return d.Equal(today)
}

func isYesterday(d CalendarDate, now time.Time) bool {
	return d.Equal(FromTime(now.UTC().AddDate(0, 0, -1)))
}

func isWithinLastWeek(d, today CalendarDate) bool {
	if !d.Valid() || !today.Valid() {
		return false
	}
	weekStart := today.AddDays(-6)
	return !d.Before(weekStart) && !d.After(today)
}

var defaultFormatter = New()

// IsToday reports whether d is today on the system clock
func IsToday(d CalendarDate) bool { return defaultFormatter.IsToday(d) }

// IsYesterday reports whether d was yesterday on the system clock
func IsYesterday(d CalendarDate) bool { return defaultFormatter.IsYesterday(d) }

// IsWithinLastWeek reports whether d falls in the last seven days on the system clock
func IsWithinLastWeek(d CalendarDate) bool { return defaultFormatter.IsWithinLastWeek(d) }

// FormatDate labels date on the system clock
func FormatDate(date string, t Translator) (string, bool) {
	return defaultFormatter.FormatDate(date, t)
}
