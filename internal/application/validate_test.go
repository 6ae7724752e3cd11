package application

import (
	"errors"
	"strings"
	"testing"

	"github.com/example/extension-assistant/internal/clock"
)

func TestValidateRegistration(t *testing.T) {
	valid := []string{"sp123456x", "SP123456X", "ab0000009", " sp123456x "}
	for _, value := range valid {
		t.Run("accepts "+value, func(t *testing.T) {
			if _, err := ValidateRegistration(value); err != nil {
				t.Fatalf("expected %q to be accepted, got %v", value, err)
			}
		})
	}

	invalid := []string{"", "sp12345x", "s1234567x", "sp1234567", "sp123456xx", "123456789"}
	for _, value := range invalid {
		t.Run("rejects "+value, func(t *testing.T) {
			_, err := ValidateRegistration(value)
			if !errors.Is(err, ErrRegistration) {
				t.Fatalf("expected registration error for %q, got %v", value, err)
			}
		})
	}
}

func TestValidateDiscordID(t *testing.T) {
	if _, err := ValidateDiscordID("123456789012345678"); err != nil {
		t.Fatalf("expected numeric ID to be accepted, got %v", err)
	}
	for _, value := range []string{"", "12a34", "-123", "12 34"} {
		if _, err := ValidateDiscordID(value); !errors.Is(err, ErrDiscordID) {
			t.Fatalf("expected discord ID error for %q, got %v", value, err)
		}
	}
}

func TestParseDateField(t *testing.T) {
	cases := []struct {
		name  string
		value string
		want  error
	}{
		{"missing slashes", "05032024", ErrSlashMissing},
		{"two parts only", "05/03", ErrSlashMissing},
		{"non numeric day", "xx/03/2024", ErrNonNumericDateField},
		{"month too large", "05/13/2024", ErrMonthOutOfRange},
		{"month zero", "05/00/2024", ErrMonthOutOfRange},
		{"year zero", "05/03/0000", ErrYearNonPositive},
		{"day beyond month", "31/04/2024", ErrDayInvalidForMonth},
		{"leap day in non leap year", "29/02/2023", ErrDayInvalidForMonth},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseDateField(tc.value, "date")
			if !errors.Is(err, tc.want) {
				t.Fatalf("ParseDateField(%q) = %v, want %v", tc.value, err, tc.want)
			}
		})
	}

	t.Run("valid date", func(t *testing.T) {
		date, err := ParseDateField("29/02/2024", "date")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		want := clock.Date{Day: 29, Month: 2, Year: 2024}
		if date != want {
			t.Fatalf("ParseDateField = %v, want %v", date, want)
		}
	})
}

func TestResolveAttendanceDay(t *testing.T) {
	today := clock.Date{Day: 5, Month: 3, Year: 2024}

	t.Run("empty means today", func(t *testing.T) {
		day, err := ResolveAttendanceDay("", today)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if day != today {
			t.Fatalf("got %v, want %v", day, today)
		}
	})

	t.Run("bare number selects a day of the current month", func(t *testing.T) {
		day, err := ResolveAttendanceDay("12", today)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		want := clock.Date{Day: 12, Month: 3, Year: 2024}
		if day != want {
			t.Fatalf("got %v, want %v", day, want)
		}
	})

	t.Run("bare number beyond the month is rejected", func(t *testing.T) {
		if _, err := ResolveAttendanceDay("32", today); !errors.Is(err, ErrDayOutOfRange) {
			t.Fatalf("expected day out of range, got %v", err)
		}
	})

	t.Run("non numeric day is rejected", func(t *testing.T) {
		if _, err := ResolveAttendanceDay("hoje", today); !errors.Is(err, ErrInvalidDate) {
			t.Fatalf("expected invalid date, got %v", err)
		}
	})

	t.Run("full date in the current month", func(t *testing.T) {
		day, err := ResolveAttendanceDay("01/03/2024", today)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		want := clock.Date{Day: 1, Month: 3, Year: 2024}
		if day != want {
			t.Fatalf("got %v, want %v", day, want)
		}
	})

	t.Run("full date in another month is rejected", func(t *testing.T) {
		if _, err := ResolveAttendanceDay("05/02/2024", today); !errors.Is(err, ErrDayOutOfRange) {
			t.Fatalf("expected day out of range, got %v", err)
		}
	})
}

func TestValidateTextBlock(t *testing.T) {
	t.Run("counts runes not bytes", func(t *testing.T) {
		value := strings.Repeat("ç", 60)
		if _, err := ValidateTextBlock(value, 60, 250, "reason"); err != nil {
			t.Fatalf("expected 60 runes to be accepted, got %v", err)
		}
	})

	t.Run("trims before measuring", func(t *testing.T) {
		value := "  " + strings.Repeat("a", 59) + "  "
		if _, err := ValidateTextBlock(value, 60, 250, "reason"); !errors.Is(err, ErrInvalidTextLength) {
			t.Fatalf("expected text length error, got %v", err)
		}
	})

	t.Run("rejects above maximum", func(t *testing.T) {
		value := strings.Repeat("a", 251)
		if _, err := ValidateTextBlock(value, 60, 250, "reason"); !errors.Is(err, ErrInvalidTextLength) {
			t.Fatalf("expected text length error, got %v", err)
		}
	})
}

func TestWorkingWindow(t *testing.T) {
	t.Run("weekdays", func(t *testing.T) {
		for weekday := 0; weekday <= 4; weekday++ {
			entry, exit, open := WorkingWindow(weekday)
			if !open {
				t.Fatalf("weekday %d should be open", weekday)
			}
			if entry.Hour != 7 || exit.Hour != 22 {
				t.Fatalf("weekday %d window = %v-%v, want 07:00-22:00", weekday, entry, exit)
			}
		}
	})

	t.Run("saturday", func(t *testing.T) {
		entry, exit, open := WorkingWindow(5)
		if !open || entry.Hour != 8 || exit.Hour != 13 {
			t.Fatalf("saturday window = %v-%v open=%v, want 08:00-13:00 open", entry, exit, open)
		}
	})

	t.Run("sunday closed", func(t *testing.T) {
		if _, _, open := WorkingWindow(6); open {
			t.Fatal("sunday should be closed")
		}
	})
}
