package domain

import (
	"fmt"
	"time"
)

// Date is a calendar date without a time of day.
type Date struct {
	Day   int
	Month int
	Year  int
}

// TimeOfDay is a wall-clock time without a date.
type TimeOfDay struct {
	Hour   int // 0-23
	Minute int
}

// FormatError reports a date or time token that matched the expected
// shape but carried invalid values (month 13, 31/2, minute 99, ...).
type FormatError struct {
	Token  string
	Reason string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("invalid date/time %q: %s", e.Token, e.Reason)
}

// twoDigitYearPivot splits two-digit years between centuries:
// 00-49 become 20xx, 50-99 become 19xx.
const twoDigitYearPivot = 50

// ExpandYear resolves a two-digit year against the pivot rule.
// Four-digit years pass through unchanged.
func ExpandYear(year int) int {
	if year >= 100 {
		return year
	}
	if year < twoDigitYearPivot {
		return 2000 + year
	}
	return 1900 + year
}

// Validate checks that the date names a real calendar day.
func (d Date) Validate() error {
	if d.Month < 1 || d.Month > 12 {
		return &FormatError{Token: d.String(), Reason: "month out of range"}
	}
	if d.Day < 1 || d.Day > 31 {
		return &FormatError{Token: d.String(), Reason: "day out of range"}
	}
	// Round-trip through time.Date to catch days like 31/2 or 29/2/2023.
	t := time.Date(d.Year, time.Month(d.Month), d.Day, 0, 0, 0, 0, time.Local)
	if t.Day() != d.Day || int(t.Month()) != d.Month {
		return &FormatError{Token: d.String(), Reason: "no such day in month"}
	}
	return nil
}

func (d Date) String() string {
	return fmt.Sprintf("%d/%d/%d", d.Day, d.Month, d.Year)
}

// In replaces the year, month and day of t, preserving its time of day.
func (d Date) In(t time.Time) time.Time {
	return time.Date(d.Year, time.Month(d.Month), d.Day,
		t.Hour(), t.Minute(), 0, 0, t.Location())
}

// DateOf extracts the calendar date of t.
func DateOf(t time.Time) Date {
	return Date{Day: t.Day(), Month: int(t.Month()), Year: t.Year()}
}

// Validate checks the clock values.
func (c TimeOfDay) Validate() error {
	if c.Hour < 0 || c.Hour > 23 {
		return &FormatError{Token: c.String(), Reason: "hour out of range"}
	}
	if c.Minute < 0 || c.Minute > 59 {
		return &FormatError{Token: c.String(), Reason: "minute out of range"}
	}
	return nil
}

func (c TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", c.Hour, c.Minute)
}

// In replaces the hour and minute of t, preserving its calendar date.
func (c TimeOfDay) In(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), c.Hour, c.Minute, 0, 0, t.Location())
}

// At combines a calendar date and a clock time into one timestamp.
func At(d Date, c TimeOfDay) time.Time {
	return time.Date(d.Year, time.Month(d.Month), d.Day, c.Hour, c.Minute, 0, 0, time.Local)
}

// SameDay reports whether t falls on the calendar day of day.
func SameDay(t, day time.Time) bool {
	return t.Year() == day.Year() && t.YearDay() == day.YearDay()
}

// Clock provides time operations for testability.
type Clock interface {
	Now() time.Time
}

// RealClock implements Clock using the system clock.
type RealClock struct{}

// Now returns the current time.
func (RealClock) Now() time.Time {
	return time.Now()
}
