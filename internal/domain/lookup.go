package domain

import (
	"time"

	"datelabel/internal/dateformat"
)

// Lookup is a date a user asked the bot to label
type Lookup struct {
	ID        int
	UserID    int64
	Date      time.Time
	CreatedAt time.Time
}

// CalendarDate returns the looked-up date as a UTC calendar day.
// The date column is never null, so 0001-01-01 is a real date here
func (l Lookup) CalendarDate() dateformat.CalendarDate {
	u := l.Date.UTC()
	return dateformat.NewCalendarDate(u.Year(), u.Month(), u.Day())
}

// DateString returns date in YYYY-MM-DD format
func (l Lookup) DateString() string {
	return l.CalendarDate().String()
}

// Label is a rendered relative label for a date
type Label struct {
	Date dateformat.CalendarDate
	Text string
	Kind dateformat.Kind
	Days int
}

// DisplayString returns the label followed by the date when the label
// is relative ("yesterday (2020-11-30)")
func (l Label) DisplayString() string {
	if l.Kind == dateformat.KindDate {
		return l.Text
	}
	return l.Text + " (" + l.Date.String() + ")"
}
