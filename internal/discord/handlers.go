// Package discord is the chat adapter. Handlers collect typed form
// inputs, call one domain service each, and translate tagged failures into
// the user-facing Portuguese replies. They never touch the store directly.
package discord

import (
	"context"
	"log/slog"

	"github.com/example/extension-assistant/internal/application"
	"github.com/example/extension-assistant/internal/logengine"
	"github.com/example/extension-assistant/internal/report"
)

// Renderer converts a document model into PDF bytes.
type Renderer interface {
	Render(doc report.Document) ([]byte, error)
}

// Invocation identifies who issued a command and where.
type Invocation struct {
	InvokerID   string
	InvokerName string
	GuildID     string
}

// DocumentFile is a generated PDF attached to a reply.
type DocumentFile struct {
	Name    string
	Content []byte
}

// Reply is what a handler sends back: a text line, optionally with an
// attached document.
type Reply struct {
	Text string
	File *DocumentFile
}

// PersonForm carries the coordinator and member registration fields.
type PersonForm struct {
	Registration string
	DiscordID    string
	Name         string
	Email        string
}

// ProjectForm carries the project registration fields.
type ProjectForm struct {
	CoordinatorID string
	GuildID       string
	Title         string
	StartDate     string
	EndDate       string
}

// ParticipationForm carries the enrolment fields.
type ParticipationForm struct {
	Registration string
	ProjectTitle string
	Date         string
}

// AttendanceForm carries the attendance fields; Day is optional.
type AttendanceForm struct {
	Day       string
	EntryTime string
	ExitTime  string
}

// NarrativeForm carries the three text blocks of the monthly and semester
// reports.
type NarrativeForm struct {
	Planned   string
	Performed string
	Results   string
}

// TerminationForm carries the termination request fields.
type TerminationForm struct {
	TerminationDate string
	Reason          string
}

// LogForm carries the optional activity-log export filters.
type LogForm struct {
	StartDate string
	EndDate   string
	StudentID string
}

// Handlers binds each chat command to its domain service.
type Handlers struct {
	registrations  *application.RegistrationService
	participations *application.ParticipationService
	attendances    *application.AttendanceService
	terminations   *application.TerminationService
	reports        *application.ReportService
	logs           *logengine.Engine
	access         *application.AccessService

	renderer Renderer
	logger   *slog.Logger
}

// HandlersConfig wires the handler dependencies.
type HandlersConfig struct {
	Registrations  *application.RegistrationService
	Participations *application.ParticipationService
	Attendances    *application.AttendanceService
	Terminations   *application.TerminationService
	Reports        *application.ReportService
	Logs           *logengine.Engine
	Access         *application.AccessService
	Renderer       Renderer
	Logger         *slog.Logger
}

// NewHandlers builds the command handler set.
func NewHandlers(cfg HandlersConfig) *Handlers {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Handlers{
		registrations:  cfg.Registrations,
		participations: cfg.Participations,
		attendances:    cfg.Attendances,
		terminations:   cfg.Terminations,
		reports:        cfg.Reports,
		logs:           cfg.Logs,
		access:         cfg.Access,
		renderer:       cfg.Renderer,
		logger:         logger,
	}
}

// logInvocation records every command with its outcome classification.
func (h *Handlers) logInvocation(ctx context.Context, inv Invocation, command string, err error) {
	outcome := application.Outcome(err)
	logger := h.logger.With(
		"invoker", inv.InvokerName,
		"command", command,
		"outcome", outcome,
	)
	switch outcome {
	case "ok":
		logger.InfoContext(ctx, "command handled")
	case "internal":
		logger.ErrorContext(ctx, "command failed", "error", err)
	default:
		logger.WarnContext(ctx, "command rejected", "kind", application.ErrorKind(err))
	}
}

func (h *Handlers) failure(ctx context.Context, inv Invocation, command string, err error) Reply {
	h.logInvocation(ctx, inv, command, err)
	return Reply{Text: userMessage(err)}
}

// Ping answers the liveness command.
func (h *Handlers) Ping(ctx context.Context, inv Invocation) Reply {
	h.logInvocation(ctx, inv, "ping", nil)
	return Reply{Text: msgPong}
}

// CadastrarCoordenador registers a coordinator.
func (h *Handlers) CadastrarCoordenador(ctx context.Context, inv Invocation, form PersonForm) Reply {
	_, err := h.registrations.CreateCoordinator(ctx, application.PersonInput(form))
	if err != nil {
		return h.failure(ctx, inv, "cadastrar-coordenador", err)
	}
	h.logInvocation(ctx, inv, "cadastrar-coordenador", nil)
	return Reply{Text: msgCoordinatorCreated}
}

// CadastrarMembro registers a member.
func (h *Handlers) CadastrarMembro(ctx context.Context, inv Invocation, form PersonForm) Reply {
	_, err := h.registrations.CreateMember(ctx, application.PersonInput(form))
	if err != nil {
		return h.failure(ctx, inv, "cadastrar-membro", err)
	}
	h.logInvocation(ctx, inv, "cadastrar-membro", nil)
	return Reply{Text: msgMemberCreated}
}

// CadastrarProjeto registers a project. Only coordinators may invoke it.
func (h *Handlers) CadastrarProjeto(ctx context.Context, inv Invocation, form ProjectForm) Reply {
	if _, err := h.access.RequireCoordinator(ctx, inv.InvokerID); err != nil {
		return h.failure(ctx, inv, "cadastrar-projeto", err)
	}
	_, err := h.registrations.CreateProject(ctx, application.ProjectInput(form))
	if err != nil {
		return h.failure(ctx, inv, "cadastrar-projeto", err)
	}
	h.logInvocation(ctx, inv, "cadastrar-projeto", nil)
	return Reply{Text: msgProjectCreated}
}

// AdicionarParticipacao enrols a member into a project. Only coordinators
// may invoke it.
func (h *Handlers) AdicionarParticipacao(ctx context.Context, inv Invocation, form ParticipationForm) Reply {
	if _, err := h.access.RequireCoordinator(ctx, inv.InvokerID); err != nil {
		return h.failure(ctx, inv, "adicionar-participacao", err)
	}
	_, err := h.participations.Create(ctx, application.ParticipationInput{
		Registration: form.Registration,
		ProjectTitle: form.ProjectTitle,
		InitialDate:  form.Date,
	})
	if err != nil {
		return h.failure(ctx, inv, "adicionar-participacao", err)
	}
	h.logInvocation(ctx, inv, "adicionar-participacao", nil)
	return Reply{Text: msgParticipationCreated}
}

// CadastrarPresenca records the invoker's attendance for the project
// bound to the current server.
func (h *Handlers) CadastrarPresenca(ctx context.Context, inv Invocation, form AttendanceForm) Reply {
	const command = "cadastrar-presenca"

	member, project, participation, err := h.access.ResolveParticipant(ctx, inv.InvokerID, inv.GuildID)
	if err != nil {
		return h.failure(ctx, inv, command, err)
	}

	_, err = h.attendances.CreateAttendance(ctx, application.CreateAttendanceParams{
		MemberID:      member.ID,
		ProjectID:     project.ID,
		Participation: participation,
		Day:           form.Day,
		EntryTime:     form.EntryTime,
		ExitTime:      form.ExitTime,
	})
	if err != nil {
		return h.failure(ctx, inv, command, err)
	}
	h.logInvocation(ctx, inv, command, nil)
	return Reply{Text: msgAttendanceCreated}
}

// RelatorioMensal produces the monthly activity report PDF.
func (h *Handlers) RelatorioMensal(ctx context.Context, inv Invocation, form NarrativeForm) Reply {
	const command = "relatorio-mensal"

	data, err := h.reports.CreateMonthly(ctx, application.NarrativeReportParams{
		DiscordID: inv.InvokerID,
		GuildID:   inv.GuildID,
		Planned:   form.Planned,
		Performed: form.Performed,
		Results:   form.Results,
	})
	if err != nil {
		return h.failure(ctx, inv, command, err)
	}
	return h.document(ctx, inv, command, report.AssembleMonthlyReport(data))
}

// RelatorioSemestral produces the semester activity report PDF.
func (h *Handlers) RelatorioSemestral(ctx context.Context, inv Invocation, form NarrativeForm) Reply {
	const command = "relatorio-semestral"

	data, err := h.reports.CreateSemester(ctx, application.NarrativeReportParams{
		DiscordID: inv.InvokerID,
		GuildID:   inv.GuildID,
		Planned:   form.Planned,
		Performed: form.Performed,
		Results:   form.Results,
	})
	if err != nil {
		return h.failure(ctx, inv, command, err)
	}
	return h.document(ctx, inv, command, report.AssembleSemesterReport(data))
}

// TermoEncerramento closes the invoker's participation in the current
// server's project and produces the statement PDF.
func (h *Handlers) TermoEncerramento(ctx context.Context, inv Invocation, form TerminationForm) Reply {
	const command = "termo-encerramento"

	member, project, err := h.access.ResolveMemberAndProject(ctx, inv.InvokerID, inv.GuildID)
	if err != nil {
		return h.failure(ctx, inv, command, err)
	}
	coordinator, err := h.access.ProjectCoordinator(ctx, project)
	if err != nil {
		return h.failure(ctx, inv, command, err)
	}

	data, err := h.terminations.Apply(ctx, application.TerminationParams{
		Member:          member,
		Project:         project,
		Coordinator:     coordinator,
		TerminationDate: form.TerminationDate,
		Reason:          form.Reason,
	})
	if err != nil {
		return h.failure(ctx, inv, command, err)
	}
	return h.document(ctx, inv, command, report.AssembleTerminationStatement(data))
}

// Log exports the activity log as a PDF. Only coordinators may invoke it.
func (h *Handlers) Log(ctx context.Context, inv Invocation, form LogForm) Reply {
	const command = "log"

	if _, err := h.access.RequireCoordinator(ctx, inv.InvokerID); err != nil {
		return h.failure(ctx, inv, command, err)
	}
	doc, err := h.logs.Export(ctx, logengine.ExportParams{
		StartDate: form.StartDate,
		EndDate:   form.EndDate,
		StudentID: form.StudentID,
	})
	if err != nil {
		return h.failure(ctx, inv, command, err)
	}
	return h.document(ctx, inv, command, doc)
}

func (h *Handlers) document(ctx context.Context, inv Invocation, command string, doc report.Document) Reply {
	content, err := h.renderer.Render(doc)
	if err != nil {
		return h.failure(ctx, inv, command, err)
	}
	h.logInvocation(ctx, inv, command, nil)
	return Reply{File: &DocumentFile{Name: doc.Filename, Content: content}}
}
