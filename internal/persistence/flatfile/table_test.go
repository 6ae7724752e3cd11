package flatfile

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/example/extension-assistant/internal/clock"
	"github.com/example/extension-assistant/internal/domain"
	"github.com/example/extension-assistant/internal/persistence"
	"github.com/example/extension-assistant/internal/testfixtures"
)

func TestTableLoad(t *testing.T) {
	t.Run("a missing file is an empty table", func(t *testing.T) {
		table := NewTable(t.TempDir(), MemberCodec())
		records, err := table.Load(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(records) != 0 {
			t.Fatalf("expected empty table, got %d rows", len(records))
		}
	})

	t.Run("round-trips appended rows in order", func(t *testing.T) {
		table := NewTable(t.TempDir(), MemberCodec())
		first := testfixtures.NewMemberFixture()
		second := testfixtures.NewMemberFixture(
			testfixtures.WithMemberID("member-2"),
			testfixtures.WithMemberRegistration("sp222222b"),
			testfixtures.WithMemberName("Bruno Lima"))

		for _, member := range []domain.Member{first, second} {
			if err := table.Append(context.Background(), member); err != nil {
				t.Fatalf("append failed: %v", err)
			}
		}

		records, err := table.Load(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(records) != 2 || records[0] != first || records[1] != second {
			t.Fatalf("round trip lost data: %v", records)
		}
	})

	t.Run("a short row is a corrupt-store error naming file and row", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "members.csv")
		if err := os.WriteFile(path, []byte("member-1,sp123456x\n"), 0o644); err != nil {
			t.Fatalf("seed file: %v", err)
		}

		table := NewTable(dir, MemberCodec())
		_, err := table.Load(context.Background())
		if !errors.Is(err, persistence.ErrCorrupt) {
			t.Fatalf("expected corrupt-store error, got %v", err)
		}
		for _, fragment := range []string{"members.csv", "row 1"} {
			if !strings.Contains(err.Error(), fragment) {
				t.Fatalf("error %q should name %q", err, fragment)
			}
		}
	})

	t.Run("an undecodable field is a corrupt-store error naming the field", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "attendances.csv")
		row := "att-1,member-1,project-1,05/03/2024,entrada,12:00\n"
		if err := os.WriteFile(path, []byte(row), 0o644); err != nil {
			t.Fatalf("seed file: %v", err)
		}

		table := NewTable(dir, AttendanceCodec())
		_, err := table.Load(context.Background())
		if !errors.Is(err, persistence.ErrCorrupt) {
			t.Fatalf("expected corrupt-store error, got %v", err)
		}
		if !strings.Contains(err.Error(), "entry_time") {
			t.Fatalf("error %q should name the entry_time field", err)
		}
	})

	t.Run("a cancelled context stops the operation", func(t *testing.T) {
		table := NewTable(t.TempDir(), MemberCodec())
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		if _, err := table.Load(ctx); !errors.Is(err, context.Canceled) {
			t.Fatalf("expected context error, got %v", err)
		}
	})
}

func TestTableRewrite(t *testing.T) {
	dir := t.TempDir()
	table := NewTable(dir, ParticipationCodec())
	original := testfixtures.NewParticipationFixture()
	if err := table.Append(context.Background(), original); err != nil {
		t.Fatalf("append failed: %v", err)
	}

	updated := original
	updated.FinalDate = clock.Date{Day: 30, Month: 6, Year: 2024}
	if err := table.Rewrite(context.Background(), []domain.Participation{updated}); err != nil {
		t.Fatalf("rewrite failed: %v", err)
	}

	records, err := table.Load(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(records) != 1 || records[0].FinalDate != updated.FinalDate {
		t.Fatalf("rewrite not observed: %v", records)
	}

	// No temp files may survive the rename.
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("read dir: %v", err)
	}
	for _, entry := range entries {
		if strings.Contains(entry.Name(), ".tmp-") {
			t.Fatalf("leftover temp file %s", entry.Name())
		}
	}
}

func TestTableUpsert(t *testing.T) {
	table := NewTable(t.TempDir(), AttendanceCodec())
	first := testfixtures.NewAttendanceFixture()

	t.Run("appends when nothing matches", func(t *testing.T) {
		err := table.Upsert(context.Background(), first, func(a domain.Attendance) bool {
			return a.MemberID == first.MemberID && a.Day == first.Day
		})
		if err != nil {
			t.Fatalf("upsert failed: %v", err)
		}
		records, err := table.Load(context.Background())
		if err != nil || len(records) != 1 {
			t.Fatalf("expected 1 row, got %d (err %v)", len(records), err)
		}
	})

	t.Run("replaces the matching row in place", func(t *testing.T) {
		replacement := first
		replacement.ID = "att-2"
		replacement.ExitTime = clock.TimeOfDay{Hour: 18, Minute: 30}
		err := table.Upsert(context.Background(), replacement, func(a domain.Attendance) bool {
			return a.MemberID == replacement.MemberID && a.Day == replacement.Day
		})
		if err != nil {
			t.Fatalf("upsert failed: %v", err)
		}
		records, err := table.Load(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(records) != 1 {
			t.Fatalf("expected the row to be replaced, got %d rows", len(records))
		}
		if records[0].ID != "att-2" || records[0].ExitTime.Hour != 18 {
			t.Fatalf("replacement not stored: %v", records[0])
		}
	})
}

func TestLogEntryCodecPreservesCommas(t *testing.T) {
	table := NewTable(t.TempDir(), LogEntryCodec())
	entry := domain.LogEntry{
		ProjectID: "project-1",
		MemberID:  "member-1",
		Timestamp: clock.Stamp{
			Date: clock.Date{Day: 5, Month: 3, Year: 2024},
			Time: clock.TimeOfDay{Hour: 10, Minute: 30},
		},
		Action: `enviou uma mensagem: "ata da reuniao, parte 1, revisada"`,
	}
	if err := table.Append(context.Background(), entry); err != nil {
		t.Fatalf("append failed: %v", err)
	}
	records, err := table.Load(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(records) != 1 || records[0] != entry {
		t.Fatalf("log entry round trip lost data: %#v", records)
	}
}
