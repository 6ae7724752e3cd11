package flatfile

import (
	"context"
	"fmt"
	"os"

	"github.com/example/extension-assistant/internal/domain"
	"github.com/example/extension-assistant/internal/persistence"
)

// Store bundles the six entity tables kept under a single data directory.
// It implements every repository interface in the persistence package.
type Store struct {
	coordinators   *Table[domain.Coordinator]
	members        *Table[domain.Member]
	projects       *Table[domain.Project]
	participations *Table[domain.Participation]
	attendances    *Table[domain.Attendance]
	logs           *Table[domain.LogEntry]
}

// Open prepares the data directory and binds the entity tables.
func Open(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("%w: create data dir: %v", persistence.ErrIO, err)
	}
	return &Store{
		coordinators:   NewTable(dir, CoordinatorCodec()),
		members:        NewTable(dir, MemberCodec()),
		projects:       NewTable(dir, ProjectCodec()),
		participations: NewTable(dir, ParticipationCodec()),
		attendances:    NewTable(dir, AttendanceCodec()),
		logs:           NewTable(dir, LogEntryCodec()),
	}, nil
}

// AppendCoordinator persists a new coordinator row.
func (s *Store) AppendCoordinator(ctx context.Context, coordinator domain.Coordinator) error {
	return s.coordinators.Append(ctx, coordinator)
}

// GetCoordinator returns the coordinator with the given identity.
func (s *Store) GetCoordinator(ctx context.Context, id string) (domain.Coordinator, error) {
	coordinators, err := s.coordinators.Load(ctx)
	if err != nil {
		return domain.Coordinator{}, err
	}
	for _, c := range coordinators {
		if c.ID == id {
			return c, nil
		}
	}
	return domain.Coordinator{}, persistence.ErrNotFound
}

// GetCoordinatorByDiscordID returns the coordinator with the given Discord identity.
func (s *Store) GetCoordinatorByDiscordID(ctx context.Context, discordID string) (domain.Coordinator, error) {
	coordinators, err := s.coordinators.Load(ctx)
	if err != nil {
		return domain.Coordinator{}, err
	}
	for _, c := range coordinators {
		if c.DiscordID == discordID {
			return c, nil
		}
	}
	return domain.Coordinator{}, persistence.ErrNotFound
}

// ListCoordinators returns every coordinator in file order.
func (s *Store) ListCoordinators(ctx context.Context) ([]domain.Coordinator, error) {
	return s.coordinators.Load(ctx)
}

// AppendMember persists a new member row.
func (s *Store) AppendMember(ctx context.Context, member domain.Member) error {
	return s.members.Append(ctx, member)
}

// GetMember returns the member with the given identity.
func (s *Store) GetMember(ctx context.Context, id string) (domain.Member, error) {
	members, err := s.members.Load(ctx)
	if err != nil {
		return domain.Member{}, err
	}
	for _, m := range members {
		if m.ID == id {
			return m, nil
		}
	}
	return domain.Member{}, persistence.ErrNotFound
}

// GetMemberByDiscordID returns the member with the given Discord identity.
func (s *Store) GetMemberByDiscordID(ctx context.Context, discordID string) (domain.Member, error) {
	members, err := s.members.Load(ctx)
	if err != nil {
		return domain.Member{}, err
	}
	for _, m := range members {
		if m.DiscordID == discordID {
			return m, nil
		}
	}
	return domain.Member{}, persistence.ErrNotFound
}

// GetMemberByRegistration returns the member with the given registration code.
func (s *Store) GetMemberByRegistration(ctx context.Context, registration string) (domain.Member, error) {
	members, err := s.members.Load(ctx)
	if err != nil {
		return domain.Member{}, err
	}
	for _, m := range members {
		if m.Registration == registration {
			return m, nil
		}
	}
	return domain.Member{}, persistence.ErrNotFound
}

// ListMembers returns every member in file order.
func (s *Store) ListMembers(ctx context.Context) ([]domain.Member, error) {
	return s.members.Load(ctx)
}

// AppendProject persists a new project row.
func (s *Store) AppendProject(ctx context.Context, project domain.Project) error {
	return s.projects.Append(ctx, project)
}

// GetProject returns the project with the given identity.
func (s *Store) GetProject(ctx context.Context, id string) (domain.Project, error) {
	projects, err := s.projects.Load(ctx)
	if err != nil {
		return domain.Project{}, err
	}
	for _, p := range projects {
		if p.ID == id {
			return p, nil
		}
	}
	return domain.Project{}, persistence.ErrNotFound
}

// GetProjectByGuildID returns the project bound to the given Discord server.
func (s *Store) GetProjectByGuildID(ctx context.Context, guildID string) (domain.Project, error) {
	projects, err := s.projects.Load(ctx)
	if err != nil {
		return domain.Project{}, err
	}
	for _, p := range projects {
		if p.GuildID == guildID {
			return p, nil
		}
	}
	return domain.Project{}, persistence.ErrNotFound
}

// GetProjectByTitle returns the project with the given title.
func (s *Store) GetProjectByTitle(ctx context.Context, title string) (domain.Project, error) {
	projects, err := s.projects.Load(ctx)
	if err != nil {
		return domain.Project{}, err
	}
	for _, p := range projects {
		if p.Title == title {
			return p, nil
		}
	}
	return domain.Project{}, persistence.ErrNotFound
}

// ListProjects returns every project in file order.
func (s *Store) ListProjects(ctx context.Context) ([]domain.Project, error) {
	return s.projects.Load(ctx)
}

// AppendParticipation persists a new participation row.
func (s *Store) AppendParticipation(ctx context.Context, participation domain.Participation) error {
	return s.participations.Append(ctx, participation)
}

// UpsertParticipation replaces the row with the same participation ID, or
// appends when none exists.
func (s *Store) UpsertParticipation(ctx context.Context, participation domain.Participation) error {
	return s.participations.Upsert(ctx, participation, func(p domain.Participation) bool {
		return p.ID == participation.ID
	})
}

// ListParticipationsByRegistration returns a member's participations in file order.
func (s *Store) ListParticipationsByRegistration(ctx context.Context, registration string) ([]domain.Participation, error) {
	participations, err := s.participations.Load(ctx)
	if err != nil {
		return nil, err
	}
	filtered := make([]domain.Participation, 0, len(participations))
	for _, p := range participations {
		if p.Registration == registration {
			filtered = append(filtered, p)
		}
	}
	return filtered, nil
}

// ListParticipationsByProject returns a project's participations in file order.
func (s *Store) ListParticipationsByProject(ctx context.Context, projectID string) ([]domain.Participation, error) {
	participations, err := s.participations.Load(ctx)
	if err != nil {
		return nil, err
	}
	filtered := make([]domain.Participation, 0, len(participations))
	for _, p := range participations {
		if p.ProjectID == projectID {
			filtered = append(filtered, p)
		}
	}
	return filtered, nil
}

// GetParticipation returns the participation for a (registration, project) pair.
func (s *Store) GetParticipation(ctx context.Context, registration, projectID string) (domain.Participation, error) {
	participations, err := s.participations.Load(ctx)
	if err != nil {
		return domain.Participation{}, err
	}
	for _, p := range participations {
		if p.Registration == registration && p.ProjectID == projectID {
			return p, nil
		}
	}
	return domain.Participation{}, persistence.ErrNotFound
}

// UpsertAttendance replaces the row with the same (member, day) pair, or
// appends when none exists.
func (s *Store) UpsertAttendance(ctx context.Context, attendance domain.Attendance) error {
	return s.attendances.Upsert(ctx, attendance, func(a domain.Attendance) bool {
		return a.MemberID == attendance.MemberID && a.Day == attendance.Day
	})
}

// ListAttendances returns every attendance in file order.
func (s *Store) ListAttendances(ctx context.Context) ([]domain.Attendance, error) {
	return s.attendances.Load(ctx)
}

// ListAttendancesByMemberAndProject returns one member's attendances on one
// project in file order.
func (s *Store) ListAttendancesByMemberAndProject(ctx context.Context, memberID, projectID string) ([]domain.Attendance, error) {
	attendances, err := s.attendances.Load(ctx)
	if err != nil {
		return nil, err
	}
	filtered := make([]domain.Attendance, 0, len(attendances))
	for _, a := range attendances {
		if a.MemberID == memberID && a.ProjectID == projectID {
			filtered = append(filtered, a)
		}
	}
	return filtered, nil
}

// AppendLogEntry adds one activity-log row.
func (s *Store) AppendLogEntry(ctx context.Context, entry domain.LogEntry) error {
	return s.logs.Append(ctx, entry)
}

// ListLogEntries returns the activity log in insertion order.
func (s *Store) ListLogEntries(ctx context.Context) ([]domain.LogEntry, error) {
	return s.logs.Load(ctx)
}
