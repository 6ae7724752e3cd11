package report

import (
	"strings"
	"testing"

	"github.com/example/extension-assistant/internal/clock"
	"github.com/example/extension-assistant/internal/domain"
)

func TestMonthName(t *testing.T) {
	cases := map[int]string{1: "janeiro", 3: "marco", 6: "junho", 12: "dezembro"}
	for month, want := range cases {
		if got := MonthName(month); got != want {
			t.Fatalf("MonthName(%d) = %q, want %q", month, got, want)
		}
	}
	if got := MonthName(0); got != "" {
		t.Fatalf("MonthName(0) = %q, want empty", got)
	}
	if got := MonthName(13); got != "" {
		t.Fatalf("MonthName(13) = %q, want empty", got)
	}
}

func TestAssembleMonthlyReport(t *testing.T) {
	data := MonthlyReportData{
		ProjectTitle:        "Clube de Leitura",
		CoordinatorName:     "Carlos Pereira",
		StudentName:         "Ana Souza",
		StudentRegistration: "sp123456x",
		Reference:           clock.Date{Day: 23, Month: 3, Year: 2024},
		Planned:             "planejado",
		Performed:           "realizado",
		Results:             "resultados",
	}

	doc := AssembleMonthlyReport(data)
	if doc.Filename != "relatorio-mensal-marco-ana-sp123456x.pdf" {
		t.Fatalf("filename = %q", doc.Filename)
	}

	header, ok := doc.Blocks[0].(Header)
	if !ok || header.Lines[2] != "marco de 2024" {
		t.Fatalf("header = %#v", doc.Blocks[0])
	}

	// The assembly is deterministic.
	again := AssembleMonthlyReport(data)
	if again.Filename != doc.Filename || len(again.Blocks) != len(doc.Blocks) {
		t.Fatal("assembly diverged between runs")
	}
}

func TestAssembleSemesterReportNamesTheSemester(t *testing.T) {
	base := SemesterReportData{
		StudentName:         "Ana Souza",
		StudentRegistration: "sp123456x",
	}

	first := base
	first.Reference = clock.Date{Day: 25, Month: 6, Year: 2024}
	doc := AssembleSemesterReport(first)
	if header := doc.Blocks[0].(Header); !strings.HasPrefix(header.Lines[2], "1º semestre") {
		t.Fatalf("june header = %q, want first semester", header.Lines[2])
	}

	second := base
	second.Reference = clock.Date{Day: 25, Month: 7, Year: 2024}
	doc = AssembleSemesterReport(second)
	if header := doc.Blocks[0].(Header); !strings.HasPrefix(header.Lines[2], "2º semestre") {
		t.Fatalf("july header = %q, want second semester", header.Lines[2])
	}
}

func TestAssembleTerminationStatement(t *testing.T) {
	doc := AssembleTerminationStatement(TerminationStatementData{
		StudentName:         "Ana Souza",
		StudentRegistration: "sp123456x",
		ProjectTitle:        "Clube de Leitura",
		CoordinatorName:     "Carlos Pereira",
		TerminationDate:     clock.Date{Day: 30, Month: 6, Year: 2024},
		Reason:              "conclusao das atividades previstas no plano de trabalho",
		IssuedOn:            clock.Date{Day: 5, Month: 3, Year: 2024},
	})

	if doc.Filename != "termo-de-encerramento-ana-sp123456x.pdf" {
		t.Fatalf("filename = %q", doc.Filename)
	}

	var body string
	for _, block := range doc.Blocks {
		if paragraph, ok := block.(Paragraph); ok && paragraph.Style == StyleBody {
			body += paragraph.Text + "\n"
		}
	}
	for _, fragment := range []string{"Ana Souza", "sp123456x", "Clube de Leitura", "30/06/2024", "Motivo:"} {
		if !strings.Contains(body, fragment) {
			t.Fatalf("statement body missing %q:\n%s", fragment, body)
		}
	}
}

func TestAssembleAttendanceSheet(t *testing.T) {
	doc := AssembleAttendanceSheet(AttendanceSheetData{
		StudentName:         "Ana Souza",
		StudentRegistration: "sp123456x",
		ProjectTitle:        "Clube de Leitura",
		Month:               3,
		Year:                2024,
		Attendances: []domain.Attendance{
			{
				Day:       clock.Date{Day: 5, Month: 3, Year: 2024},
				EntryTime: clock.TimeOfDay{Hour: 8, Minute: 0},
				ExitTime:  clock.TimeOfDay{Hour: 12, Minute: 0},
			},
		},
	})

	want := "folha-de-frequencia-marco-ana-sp123456x-clube-de-leitura.pdf"
	if doc.Filename != want {
		t.Fatalf("filename = %q, want %q", doc.Filename, want)
	}

	var rows []string
	for _, block := range doc.Blocks {
		if table, ok := block.(BodyTable); ok {
			rows = table.Sections[0].Paragraphs
		}
	}
	if len(rows) != 1 || !strings.Contains(rows[0], "05/03/2024") || !strings.Contains(rows[0], "08:00 - 12:00") {
		t.Fatalf("sheet rows = %v", rows)
	}
}

func TestAssembleLogExportPeriodHeading(t *testing.T) {
	start := clock.Date{Day: 1, Month: 3, Year: 2024}
	end := clock.Date{Day: 31, Month: 3, Year: 2024}

	withRange := AssembleLogExport(LogExportData{StartDate: &start, EndDate: &end})
	header := withRange.Blocks[0].(Header)
	if header.Lines[2] != "Periodo: 01/03/2024 a 31/03/2024" {
		t.Fatalf("period line = %q", header.Lines[2])
	}

	unbounded := AssembleLogExport(LogExportData{})
	header = unbounded.Blocks[0].(Header)
	if header.Lines[2] != "Periodo: todo o periodo" {
		t.Fatalf("period line = %q", header.Lines[2])
	}
}
