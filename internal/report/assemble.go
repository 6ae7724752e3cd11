package report

import (
	"fmt"

	"github.com/example/extension-assistant/internal/clock"
	"github.com/example/extension-assistant/internal/domain"
)

// MonthlyReportData carries the inputs of a monthly activity report.
type MonthlyReportData struct {
	ProjectTitle        string
	CoordinatorName     string
	StudentName         string
	StudentRegistration string
	Reference           clock.Date
	Planned             string
	Performed           string
	Results             string
}

// SemesterReportData carries the inputs of a semester activity report.
type SemesterReportData struct {
	ProjectTitle        string
	CoordinatorName     string
	StudentName         string
	StudentRegistration string
	Reference           clock.Date
	Planned             string
	Performed           string
	Results             string
}

// TerminationStatementData carries the inputs of a termination statement.
type TerminationStatementData struct {
	StudentName         string
	StudentRegistration string
	ProjectTitle        string
	CoordinatorName     string
	TerminationDate     clock.Date
	Reason              string
	IssuedOn            clock.Date
}

// AttendanceSheetData carries one member's attendance on one project for
// the sheet month.
type AttendanceSheetData struct {
	StudentName         string
	StudentRegistration string
	ProjectTitle        string
	Month               int
	Year                int
	Attendances         []domain.Attendance
}

// AssembleMonthlyReport builds the monthly report document.
func AssembleMonthlyReport(data MonthlyReportData) Document {
	month := MonthName(data.Reference.Month)
	return Document{
		Filename: fmt.Sprintf("relatorio-mensal-%s-%s-%s.pdf",
			month, slug(firstName(data.StudentName)), data.StudentRegistration),
		Blocks: []Block{
			Header{Lines: []string{
				"Programa de Extensao",
				"Relatorio Mensal de Atividades",
				fmt.Sprintf("%s de %d", month, data.Reference.Year),
			}},
			TitleTable{Rows: [][2]string{
				{"Projeto", data.ProjectTitle},
				{"Coordenador(a)", data.CoordinatorName},
				{"Estudante", data.StudentName},
				{"Prontuario", data.StudentRegistration},
			}},
			BodyTable{Sections: []BodySection{
				{Heading: "Atividades planejadas", Paragraphs: []string{data.Planned}},
				{Heading: "Atividades realizadas", Paragraphs: []string{data.Performed}},
				{Heading: "Resultados obtidos", Paragraphs: []string{data.Results}},
			}},
			SignatureBlock{Labels: []string{data.StudentName, data.CoordinatorName}},
		},
	}
}

// AssembleSemesterReport builds the semester report document.
func AssembleSemesterReport(data SemesterReportData) Document {
	month := MonthName(data.Reference.Month)
	semester := 1
	if data.Reference.Month > 6 {
		semester = 2
	}
	return Document{
		Filename: fmt.Sprintf("relatorio-semestral-%s-%s-%s.pdf",
			month, slug(firstName(data.StudentName)), data.StudentRegistration),
		Blocks: []Block{
			Header{Lines: []string{
				"Programa de Extensao",
				"Relatorio Semestral de Atividades",
				fmt.Sprintf("%dº semestre de %d", semester, data.Reference.Year),
			}},
			TitleTable{Rows: [][2]string{
				{"Projeto", data.ProjectTitle},
				{"Coordenador(a)", data.CoordinatorName},
				{"Estudante", data.StudentName},
				{"Prontuario", data.StudentRegistration},
			}},
			BodyTable{Sections: []BodySection{
				{Heading: "Atividades planejadas", Paragraphs: []string{data.Planned}},
				{Heading: "Atividades realizadas", Paragraphs: []string{data.Performed}},
				{Heading: "Resultados obtidos", Paragraphs: []string{data.Results}},
			}},
			SignatureBlock{Labels: []string{data.StudentName, data.CoordinatorName}},
		},
	}
}

// AssembleTerminationStatement builds the project-termination statement.
func AssembleTerminationStatement(data TerminationStatementData) Document {
	body := fmt.Sprintf(
		"Declaramos que o(a) estudante %s, prontuario %s, encerra sua participacao "+
			"no projeto de extensao \"%s\", coordenado por %s, na data de %s.",
		data.StudentName, data.StudentRegistration, data.ProjectTitle,
		data.CoordinatorName, data.TerminationDate)
	return Document{
		Filename: fmt.Sprintf("termo-de-encerramento-%s-%s.pdf",
			slug(firstName(data.StudentName)), data.StudentRegistration),
		Blocks: []Block{
			Header{Lines: []string{
				"Programa de Extensao",
				"Termo de Encerramento de Participacao",
			}},
			Paragraph{Text: body, Style: StyleBody},
			Paragraph{Text: "Motivo: " + data.Reason, Style: StyleBody},
			Paragraph{Text: "Emitido em " + data.IssuedOn.String() + ".", Style: StyleNote},
			SignatureBlock{Labels: []string{data.StudentName, data.CoordinatorName}},
		},
	}
}

// AssembleAttendanceSheet builds the month-end attendance sheet for one
// (member, project) pair.
func AssembleAttendanceSheet(data AttendanceSheetData) Document {
	month := MonthName(data.Month)
	rows := make([]string, 0, len(data.Attendances))
	for _, attendance := range data.Attendances {
		rows = append(rows, fmt.Sprintf("%s    %s - %s",
			attendance.Day, attendance.EntryTime, attendance.ExitTime))
	}
	return Document{
		Filename: fmt.Sprintf("folha-de-frequencia-%s-%s-%s-%s.pdf",
			month, slug(firstName(data.StudentName)), data.StudentRegistration,
			slug(data.ProjectTitle)),
		Blocks: []Block{
			Header{Lines: []string{
				"Programa de Extensao",
				"Folha de Frequencia",
				fmt.Sprintf("%s de %d", month, data.Year),
			}},
			TitleTable{Rows: [][2]string{
				{"Estudante", data.StudentName},
				{"Prontuario", data.StudentRegistration},
				{"Projeto", data.ProjectTitle},
			}},
			BodyTable{Sections: []BodySection{
				{Heading: "Registros de presenca", Paragraphs: rows},
			}},
			SignatureBlock{Labels: []string{data.StudentName}},
		},
	}
}

// LogExportData carries the grouped activity-log slices of an export.
type LogExportData struct {
	StartDate *clock.Date
	EndDate   *clock.Date
	Groups    []LogExportGroup
}

// LogExportGroup holds one member's entries in insertion order.
type LogExportGroup struct {
	MemberName   string
	Registration string
	Entries      []string
}

// AssembleLogExport builds the activity-log document, one section per
// member.
func AssembleLogExport(data LogExportData) Document {
	period := "todo o periodo"
	if data.StartDate != nil && data.EndDate != nil {
		period = fmt.Sprintf("%s a %s", data.StartDate, data.EndDate)
	}
	sections := make([]BodySection, 0, len(data.Groups))
	for _, group := range data.Groups {
		heading := group.MemberName
		if group.Registration != "" {
			heading = fmt.Sprintf("%s (%s)", group.MemberName, group.Registration)
		}
		sections = append(sections, BodySection{
			Heading:    heading,
			Paragraphs: group.Entries,
		})
	}
	return Document{
		Filename: "registro-de-atividades.pdf",
		Blocks: []Block{
			Header{Lines: []string{
				"Programa de Extensao",
				"Registro de Atividades",
				"Periodo: " + period,
			}},
			BodyTable{Sections: sections},
		},
	}
}
