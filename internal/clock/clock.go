// Package clock provides the process-wide time source and the calendar
// value types shared by validation, persistence, and report assembly.
// All wall-clock readings are taken in Brasília time (UTC-03:00).
package clock

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Location is the fixed Brasília timezone used for every timestamp the
// assistant records or formats.
var Location = time.FixedZone("BRT", -3*60*60)

// Clock abstracts the wall clock so services can be exercised with a fixed
// time source in tests.
type Clock interface {
	Now() time.Time
	Today() Date
}

// SystemClock reads the operating system clock in Brasília time.
type SystemClock struct{}

// Now returns the current instant in the Brasília timezone.
func (SystemClock) Now() time.Time {
	return time.Now().In(Location)
}

// Today returns the current calendar date in the Brasília timezone.
func (SystemClock) Today() Date {
	return DateOf(time.Now().In(Location))
}

// Date is a calendar date without a time component.
type Date struct {
	Day   int
	Month int
	Year  int
}

// DateOf extracts the calendar date from an instant, interpreted in the
// instant's own location.
func DateOf(t time.Time) Date {
	return Date{Day: t.Day(), Month: int(t.Month()), Year: t.Year()}
}

// ParseDate parses a DD/MM/YYYY string. Callers that need per-field
// diagnostics should use the application validators instead; this parser
// reports a single error suitable for store codecs.
func ParseDate(value string) (Date, error) {
	parts := strings.Split(value, "/")
	if len(parts) != 3 {
		return Date{}, fmt.Errorf("date %q is not in DD/MM/YYYY form", value)
	}
	day, err := strconv.Atoi(parts[0])
	if err != nil {
		return Date{}, fmt.Errorf("date %q has a non-numeric day", value)
	}
	month, err := strconv.Atoi(parts[1])
	if err != nil {
		return Date{}, fmt.Errorf("date %q has a non-numeric month", value)
	}
	year, err := strconv.Atoi(parts[2])
	if err != nil {
		return Date{}, fmt.Errorf("date %q has a non-numeric year", value)
	}
	date := Date{Day: day, Month: month, Year: year}
	if !date.IsValid() {
		return Date{}, fmt.Errorf("date %q is not a valid calendar date", value)
	}
	return date, nil
}

// IsValid reports whether the date names a real calendar day.
func (d Date) IsValid() bool {
	if d.Year <= 0 || d.Month < 1 || d.Month > 12 {
		return false
	}
	return d.Day >= 1 && d.Day <= LastDayOfMonth(d.Year, d.Month)
}

// IsZero reports whether the date is the zero value.
func (d Date) IsZero() bool {
	return d == Date{}
}

// String renders the date as DD/MM/YYYY.
func (d Date) String() string {
	return fmt.Sprintf("%02d/%02d/%04d", d.Day, d.Month, d.Year)
}

// Time returns the instant at midnight of the date in Brasília time.
func (d Date) Time() time.Time {
	return time.Date(d.Year, time.Month(d.Month), d.Day, 0, 0, 0, 0, Location)
}

// Before reports whether d falls strictly before other.
func (d Date) Before(other Date) bool {
	if d.Year != other.Year {
		return d.Year < other.Year
	}
	if d.Month != other.Month {
		return d.Month < other.Month
	}
	return d.Day < other.Day
}

// After reports whether d falls strictly after other.
func (d Date) After(other Date) bool {
	return other.Before(d)
}

// Weekday returns the weekday of the date with Monday as 0 and Sunday as 6.
func (d Date) Weekday() int {
	// Go counts Sunday as 0; shift so the working week starts the index.
	return (int(d.Time().Weekday()) + 6) % 7
}

// LastDayOfMonth returns the number of days in the given month.
func LastDayOfMonth(year, month int) int {
	first := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, Location)
	return first.AddDate(0, 1, -1).Day()
}

// TimeOfDay is a wall-clock time with minute precision.
type TimeOfDay struct {
	Hour   int
	Minute int
}

// ParseTimeOfDay parses an HH:MM string with hour 0..23 and minute 0..59.
func ParseTimeOfDay(value string) (TimeOfDay, error) {
	parts := strings.Split(value, ":")
	if len(parts) != 2 {
		return TimeOfDay{}, fmt.Errorf("time %q is not in HH:MM form", value)
	}
	hour, err := strconv.Atoi(parts[0])
	if err != nil {
		return TimeOfDay{}, fmt.Errorf("time %q has a non-numeric hour", value)
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil {
		return TimeOfDay{}, fmt.Errorf("time %q has a non-numeric minute", value)
	}
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return TimeOfDay{}, fmt.Errorf("time %q is out of range", value)
	}
	return TimeOfDay{Hour: hour, Minute: minute}, nil
}

// String renders the time as HH:MM.
func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour, t.Minute)
}

// Minutes returns the time as minutes elapsed since midnight.
func (t TimeOfDay) Minutes() int {
	return t.Hour*60 + t.Minute
}

// Before reports whether t falls strictly before other.
func (t TimeOfDay) Before(other TimeOfDay) bool {
	return t.Minutes() < other.Minutes()
}

// Stamp pairs a date with a time of day, the precision the activity log
// records.
type Stamp struct {
	Date Date
	Time TimeOfDay
}

// StampOf extracts a stamp from an instant converted to Brasília time.
func StampOf(t time.Time) Stamp {
	local := t.In(Location)
	return Stamp{
		Date: DateOf(local),
		Time: TimeOfDay{Hour: local.Hour(), Minute: local.Minute()},
	}
}

// ParseStamp parses a "DD/MM/YYYY HH:MM" string.
func ParseStamp(value string) (Stamp, error) {
	parts := strings.SplitN(value, " ", 2)
	if len(parts) != 2 {
		return Stamp{}, fmt.Errorf("timestamp %q is not in DD/MM/YYYY HH:MM form", value)
	}
	date, err := ParseDate(parts[0])
	if err != nil {
		return Stamp{}, err
	}
	tod, err := ParseTimeOfDay(parts[1])
	if err != nil {
		return Stamp{}, err
	}
	return Stamp{Date: date, Time: tod}, nil
}

// String renders the stamp as "DD/MM/YYYY HH:MM".
func (s Stamp) String() string {
	return s.Date.String() + " " + s.Time.String()
}
