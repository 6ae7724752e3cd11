// Package logengine ingests chat events attributable to registered
// members into the append-only activity log, and extracts per-member,
// date-ranged slices of it for report rendering.
package logengine

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/example/extension-assistant/internal/application"
	"github.com/example/extension-assistant/internal/clock"
	"github.com/example/extension-assistant/internal/domain"
	"github.com/example/extension-assistant/internal/persistence"
	"github.com/example/extension-assistant/internal/report"
)

// EventKind identifies the chat event being recorded.
type EventKind string

const (
	EventMessage       EventKind = "message"
	EventMessageEdit   EventKind = "message_edit"
	EventMessageDelete EventKind = "message_delete"
	EventReactionAdd   EventKind = "reaction_add"
	EventInteraction   EventKind = "interaction"
)

// Event is one chat occurrence delivered by the adapter.
type Event struct {
	Kind           EventKind
	GuildID        string
	ActorID        string
	ActorIsBot     bool
	Content        string
	AttachmentURLs []string
	Emoji          string
	CommandName    string
	Timestamp      time.Time
}

// Engine records events and answers export queries.
type Engine struct {
	members        persistence.MemberRepository
	projects       persistence.ProjectRepository
	participations persistence.ParticipationRepository
	logs           persistence.LogRepository
	clk            clock.Clock
	logger         *slog.Logger
}

// New wires the engine's repositories and clock.
func New(members persistence.MemberRepository, projects persistence.ProjectRepository, participations persistence.ParticipationRepository, logs persistence.LogRepository, clk clock.Clock, logger *slog.Logger) *Engine {
	if logger == nil {
		logger = slog.Default()
	}
	return &Engine{
		members:        members,
		projects:       projects,
		participations: participations,
		logs:           logs,
		clk:            clk,
		logger:         logger,
	}
}

// Record appends one log entry for the event. Events from bots, events
// without a guild, and events whose actor is not a registered member are
// dropped silently; that is the normal case for most server traffic.
func (e *Engine) Record(ctx context.Context, event Event) error {
	if e == nil {
		return fmt.Errorf("Engine is nil")
	}
	if event.ActorIsBot || event.GuildID == "" || event.ActorID == "" {
		return nil
	}

	member, err := e.members.GetMemberByDiscordID(ctx, event.ActorID)
	if err != nil {
		if errors.Is(err, persistence.ErrNotFound) {
			return nil
		}
		return err
	}

	projectID, err := e.resolveProject(ctx, member, event.GuildID)
	if err != nil {
		if errors.Is(err, persistence.ErrNotFound) {
			return nil
		}
		return err
	}

	timestamp := event.Timestamp
	if timestamp.IsZero() {
		timestamp = e.clk.Now()
	}

	entry := domain.LogEntry{
		ProjectID: projectID,
		MemberID:  member.ID,
		Timestamp: clock.StampOf(timestamp),
		Action:    actionText(event),
	}
	if err := e.logs.AppendLogEntry(ctx, entry); err != nil {
		return err
	}

	e.logger.DebugContext(ctx, "activity recorded",
		"member_id", member.ID, "project_id", projectID, "kind", string(event.Kind))
	return nil
}

// resolveProject maps a member to the project an event belongs to. When
// the member participates in several projects, the project bound to the
// event's guild wins; otherwise the first participation in stored order is
// used.
func (e *Engine) resolveProject(ctx context.Context, member domain.Member, guildID string) (string, error) {
	participations, err := e.participations.ListParticipationsByRegistration(ctx, member.Registration)
	if err != nil {
		return "", err
	}
	if len(participations) == 0 {
		return "", persistence.ErrNotFound
	}

	if project, err := e.projects.GetProjectByGuildID(ctx, guildID); err == nil {
		for _, p := range participations {
			if p.ProjectID == project.ID {
				return project.ID, nil
			}
		}
	} else if !errors.Is(err, persistence.ErrNotFound) {
		return "", err
	}

	return participations[0].ProjectID, nil
}

// actionText renders the fixed one-line template for an event kind.
func actionText(event Event) string {
	var text string
	switch event.Kind {
	case EventMessage:
		text = fmt.Sprintf("enviou uma mensagem: %q", event.Content)
	case EventMessageEdit:
		text = fmt.Sprintf("editou uma mensagem: %q", event.Content)
	case EventMessageDelete:
		text = "apagou uma mensagem"
	case EventReactionAdd:
		text = fmt.Sprintf("reagiu com %s a uma mensagem", event.Emoji)
	case EventInteraction:
		text = fmt.Sprintf("utilizou o comando /%s", event.CommandName)
	default:
		text = "realizou uma acao"
	}
	if len(event.AttachmentURLs) > 0 {
		text += " (anexos: " + strings.Join(event.AttachmentURLs, " ") + ")"
	}
	return text
}

// ExportParams narrows an activity-log export. All fields are optional
// strings from the chat form; dates use DD/MM/YYYY.
type ExportParams struct {
	StartDate string
	EndDate   string
	StudentID string
}

// Export builds the activity-log document. With no dates, every entry is
// included. An end date without a start date is rejected; a start date
// without an end date runs through today. StudentID, when present, is the
// member's registration code and restricts the export to that member.
func (e *Engine) Export(ctx context.Context, params ExportParams) (report.Document, error) {
	if e == nil {
		return report.Document{}, fmt.Errorf("Engine is nil")
	}

	start := strings.TrimSpace(params.StartDate)
	end := strings.TrimSpace(params.EndDate)

	var startDate, endDate *clock.Date
	switch {
	case start == "" && end != "":
		return report.Document{}, application.NewError(application.KindMissingStartDate)
	case start != "":
		parsedStart, err := application.ParseDateField(start, "start_date")
		if err != nil {
			return report.Document{}, err
		}
		startDate = &parsedStart

		if end == "" {
			today := e.clk.Today()
			endDate = &today
		} else {
			parsedEnd, err := application.ParseDateField(end, "end_date")
			if err != nil {
				return report.Document{}, err
			}
			endDate = &parsedEnd
		}
	}

	entries, err := e.logs.ListLogEntries(ctx)
	if err != nil {
		return report.Document{}, err
	}

	var onlyMemberID string
	if registration := strings.TrimSpace(params.StudentID); registration != "" {
		member, err := e.members.GetMemberByRegistration(ctx, registration)
		if err != nil {
			if errors.Is(err, persistence.ErrNotFound) {
				return report.Document{}, application.NewError(application.KindMemberNotFound)
			}
			return report.Document{}, err
		}
		onlyMemberID = member.ID
	}

	groups := e.groupEntries(ctx, entries, startDate, endDate, onlyMemberID)
	return report.AssembleLogExport(report.LogExportData{
		StartDate: startDate,
		EndDate:   endDate,
		Groups:    groups,
	}), nil
}

// groupEntries buckets matching entries per member, preserving the order
// members first appear in the log and each member's insertion order.
func (e *Engine) groupEntries(ctx context.Context, entries []domain.LogEntry, start, end *clock.Date, onlyMemberID string) []report.LogExportGroup {
	order := make([]string, 0)
	buckets := make(map[string][]string)
	for _, entry := range entries {
		if onlyMemberID != "" && entry.MemberID != onlyMemberID {
			continue
		}
		if start != nil && entry.Timestamp.Date.Before(*start) {
			continue
		}
		if end != nil && entry.Timestamp.Date.After(*end) {
			continue
		}
		if _, ok := buckets[entry.MemberID]; !ok {
			order = append(order, entry.MemberID)
		}
		buckets[entry.MemberID] = append(buckets[entry.MemberID],
			entry.Timestamp.String()+" - "+entry.Action)
	}

	groups := make([]report.LogExportGroup, 0, len(order))
	for _, memberID := range order {
		group := report.LogExportGroup{MemberName: memberID, Entries: buckets[memberID]}
		if member, err := e.members.GetMember(ctx, memberID); err == nil {
			group.MemberName = member.Name
			group.Registration = member.Registration
		}
		groups = append(groups, group)
	}
	return groups
}
