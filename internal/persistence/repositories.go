// Package persistence defines the repository contracts the application
// services depend on, together with the sentinel errors every
// implementation reports. Implementations load their backing file per
// call and return copies; mutations happen only through the Append,
// Upsert, and Rewrite operations listed here.
package persistence

import (
	"context"

	"github.com/example/extension-assistant/internal/domain"
)

// CoordinatorRepository exposes lookups and creation for coordinators.
type CoordinatorRepository interface {
	AppendCoordinator(ctx context.Context, coordinator domain.Coordinator) error
	GetCoordinator(ctx context.Context, id string) (domain.Coordinator, error)
	GetCoordinatorByDiscordID(ctx context.Context, discordID string) (domain.Coordinator, error)
	ListCoordinators(ctx context.Context) ([]domain.Coordinator, error)
}

// MemberRepository exposes lookups and creation for members.
type MemberRepository interface {
	AppendMember(ctx context.Context, member domain.Member) error
	GetMember(ctx context.Context, id string) (domain.Member, error)
	GetMemberByDiscordID(ctx context.Context, discordID string) (domain.Member, error)
	GetMemberByRegistration(ctx context.Context, registration string) (domain.Member, error)
	ListMembers(ctx context.Context) ([]domain.Member, error)
}

// ProjectRepository exposes lookups and creation for projects.
type ProjectRepository interface {
	AppendProject(ctx context.Context, project domain.Project) error
	GetProject(ctx context.Context, id string) (domain.Project, error)
	GetProjectByGuildID(ctx context.Context, guildID string) (domain.Project, error)
	GetProjectByTitle(ctx context.Context, title string) (domain.Project, error)
	ListProjects(ctx context.Context) ([]domain.Project, error)
}

// ParticipationRepository exposes lookups, creation, and the single
// rewrite a termination performs.
type ParticipationRepository interface {
	AppendParticipation(ctx context.Context, participation domain.Participation) error
	// UpsertParticipation replaces the row with the same participation ID,
	// or appends when none exists.
	UpsertParticipation(ctx context.Context, participation domain.Participation) error
	ListParticipationsByRegistration(ctx context.Context, registration string) ([]domain.Participation, error)
	ListParticipationsByProject(ctx context.Context, projectID string) ([]domain.Participation, error)
	GetParticipation(ctx context.Context, registration, projectID string) (domain.Participation, error)
}

// AttendanceRepository exposes the attendance upsert and the scans used by
// listings and the month-end sheets.
type AttendanceRepository interface {
	// UpsertAttendance replaces the row with the same (member, day) pair,
	// or appends when none exists.
	UpsertAttendance(ctx context.Context, attendance domain.Attendance) error
	ListAttendances(ctx context.Context) ([]domain.Attendance, error)
	ListAttendancesByMemberAndProject(ctx context.Context, memberID, projectID string) ([]domain.Attendance, error)
}

// LogRepository stores the append-only activity log.
type LogRepository interface {
	AppendLogEntry(ctx context.Context, entry domain.LogEntry) error
	ListLogEntries(ctx context.Context) ([]domain.LogEntry, error)
}
