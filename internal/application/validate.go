package application

import (
	"net/mail"
	"regexp"
	"strconv"
	"strings"

	"github.com/example/extension-assistant/internal/clock"
)

var registrationPattern = regexp.MustCompile(`^[A-Za-z]{2}[0-9]{6}[A-Za-z0-9]$`)

// ValidateRegistration checks the 9-character institutional code: two
// letters, six digits, one trailing alphanumeric.
func ValidateRegistration(value string) (string, error) {
	value = strings.TrimSpace(value)
	if !registrationPattern.MatchString(value) {
		return "", FieldError(KindRegistrationError, "registration")
	}
	return value, nil
}

// ValidateEmail performs a syntactic address check without DNS lookups.
func ValidateEmail(value string) (string, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return "", FieldError(KindEmailError, "email")
	}
	if _, err := mail.ParseAddress(value); err != nil {
		return "", FieldError(KindEmailError, "email")
	}
	return value, nil
}

// ValidateDiscordID accepts a non-empty string of decimal digits.
func ValidateDiscordID(value string) (string, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return "", FieldError(KindDiscordIDError, "discord_id")
	}
	for _, r := range value {
		if r < '0' || r > '9' {
			return "", FieldError(KindDiscordIDError, "discord_id")
		}
	}
	return value, nil
}

// ParseDateField parses a DD/MM/YYYY string, reporting a distinct kind for
// each way the input can fail.
func ParseDateField(value, field string) (clock.Date, error) {
	value = strings.TrimSpace(value)
	parts := strings.Split(value, "/")
	if len(parts) != 3 {
		return clock.Date{}, FieldError(KindSlashMissing, field)
	}
	numbers := make([]int, 3)
	for i, part := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return clock.Date{}, FieldError(KindNonNumericDateField, field)
		}
		numbers[i] = n
	}
	day, month, year := numbers[0], numbers[1], numbers[2]
	if month < 1 || month > 12 {
		return clock.Date{}, FieldError(KindMonthOutOfRange, field)
	}
	if year <= 0 {
		return clock.Date{}, FieldError(KindYearNonPositive, field)
	}
	if day < 1 || day > clock.LastDayOfMonth(year, month) {
		return clock.Date{}, FieldError(KindDayInvalidForMonth, field)
	}
	return clock.Date{Day: day, Month: month, Year: year}, nil
}

// ParseTimeField parses an HH:MM string with hour 0..23 and minute 0..59.
func ParseTimeField(value, field string) (clock.TimeOfDay, error) {
	tod, err := clock.ParseTimeOfDay(strings.TrimSpace(value))
	if err != nil {
		return clock.TimeOfDay{}, FieldError(KindInvalidTime, field)
	}
	return tod, nil
}

// ResolveAttendanceDay resolves the optional day input of an attendance
// submission. Empty means today; a bare number selects a day of the
// current month; a full date must fall in the current month. Prior months
// cannot be backfilled and future months cannot be post-dated.
func ResolveAttendanceDay(value string, today clock.Date) (clock.Date, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return today, nil
	}

	if strings.Contains(value, "/") {
		date, err := ParseDateField(value, "day")
		if err != nil {
			return clock.Date{}, err
		}
		if date.Month != today.Month || date.Year != today.Year {
			return clock.Date{}, FieldError(KindDayOutOfRange, "day")
		}
		return date, nil
	}

	day, err := strconv.Atoi(value)
	if err != nil {
		return clock.Date{}, FieldError(KindInvalidDate, "day")
	}
	if day < 1 || day > clock.LastDayOfMonth(today.Year, today.Month) {
		return clock.Date{}, FieldError(KindDayOutOfRange, "day")
	}
	return clock.Date{Day: day, Month: today.Month, Year: today.Year}, nil
}

// ValidateTextBlock trims the value and enforces the inclusive character
// bounds the narrative documents require.
func ValidateTextBlock(value string, min, max int, field string) (string, error) {
	value = strings.TrimSpace(value)
	length := len([]rune(value))
	if length < min || length > max {
		return "", FieldError(KindInvalidTextLength, field)
	}
	return value, nil
}

// WorkingWindow returns the allowed entry-exit window for a weekday
// (0=Monday .. 6=Sunday). Sundays are closed.
func WorkingWindow(weekday int) (entry, exit clock.TimeOfDay, open bool) {
	switch {
	case weekday >= 0 && weekday <= 4:
		return clock.TimeOfDay{Hour: 7}, clock.TimeOfDay{Hour: 22}, true
	case weekday == 5:
		return clock.TimeOfDay{Hour: 8}, clock.TimeOfDay{Hour: 13}, true
	default:
		return clock.TimeOfDay{}, clock.TimeOfDay{}, false
	}
}

func withinWindow(t clock.TimeOfDay, entry, exit clock.TimeOfDay) bool {
	return t.Minutes() >= entry.Minutes() && t.Minutes() <= exit.Minutes()
}
