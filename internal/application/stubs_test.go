package application

import (
	"context"

	"github.com/example/extension-assistant/internal/domain"
	"github.com/example/extension-assistant/internal/persistence"
)

type coordinatorRepoStub struct {
	appendCoordinator         func(ctx context.Context, coordinator domain.Coordinator) error
	getCoordinator            func(ctx context.Context, id string) (domain.Coordinator, error)
	getCoordinatorByDiscordID func(ctx context.Context, discordID string) (domain.Coordinator, error)
	listCoordinators          func(ctx context.Context) ([]domain.Coordinator, error)
}

func (s *coordinatorRepoStub) AppendCoordinator(ctx context.Context, coordinator domain.Coordinator) error {
	if s.appendCoordinator == nil {
		return nil
	}
	return s.appendCoordinator(ctx, coordinator)
}

func (s *coordinatorRepoStub) GetCoordinator(ctx context.Context, id string) (domain.Coordinator, error) {
	if s.getCoordinator == nil {
		return domain.Coordinator{}, persistence.ErrNotFound
	}
	return s.getCoordinator(ctx, id)
}

func (s *coordinatorRepoStub) GetCoordinatorByDiscordID(ctx context.Context, discordID string) (domain.Coordinator, error) {
	if s.getCoordinatorByDiscordID == nil {
		return domain.Coordinator{}, persistence.ErrNotFound
	}
	return s.getCoordinatorByDiscordID(ctx, discordID)
}

func (s *coordinatorRepoStub) ListCoordinators(ctx context.Context) ([]domain.Coordinator, error) {
	if s.listCoordinators == nil {
		return nil, nil
	}
	return s.listCoordinators(ctx)
}

type memberRepoStub struct {
	appendMember            func(ctx context.Context, member domain.Member) error
	getMember               func(ctx context.Context, id string) (domain.Member, error)
	getMemberByDiscordID    func(ctx context.Context, discordID string) (domain.Member, error)
	getMemberByRegistration func(ctx context.Context, registration string) (domain.Member, error)
	listMembers             func(ctx context.Context) ([]domain.Member, error)
}

func (s *memberRepoStub) AppendMember(ctx context.Context, member domain.Member) error {
	if s.appendMember == nil {
		return nil
	}
	return s.appendMember(ctx, member)
}

func (s *memberRepoStub) GetMember(ctx context.Context, id string) (domain.Member, error) {
	if s.getMember == nil {
		return domain.Member{}, persistence.ErrNotFound
	}
	return s.getMember(ctx, id)
}

func (s *memberRepoStub) GetMemberByDiscordID(ctx context.Context, discordID string) (domain.Member, error) {
	if s.getMemberByDiscordID == nil {
		return domain.Member{}, persistence.ErrNotFound
	}
	return s.getMemberByDiscordID(ctx, discordID)
}

func (s *memberRepoStub) GetMemberByRegistration(ctx context.Context, registration string) (domain.Member, error) {
	if s.getMemberByRegistration == nil {
		return domain.Member{}, persistence.ErrNotFound
	}
	return s.getMemberByRegistration(ctx, registration)
}

func (s *memberRepoStub) ListMembers(ctx context.Context) ([]domain.Member, error) {
	if s.listMembers == nil {
		return nil, nil
	}
	return s.listMembers(ctx)
}

type projectRepoStub struct {
	appendProject       func(ctx context.Context, project domain.Project) error
	getProject          func(ctx context.Context, id string) (domain.Project, error)
	getProjectByGuildID func(ctx context.Context, guildID string) (domain.Project, error)
	getProjectByTitle   func(ctx context.Context, title string) (domain.Project, error)
	listProjects        func(ctx context.Context) ([]domain.Project, error)
}

func (s *projectRepoStub) AppendProject(ctx context.Context, project domain.Project) error {
	if s.appendProject == nil {
		return nil
	}
	return s.appendProject(ctx, project)
}

func (s *projectRepoStub) GetProject(ctx context.Context, id string) (domain.Project, error) {
	if s.getProject == nil {
		return domain.Project{}, persistence.ErrNotFound
	}
	return s.getProject(ctx, id)
}

func (s *projectRepoStub) GetProjectByGuildID(ctx context.Context, guildID string) (domain.Project, error) {
	if s.getProjectByGuildID == nil {
		return domain.Project{}, persistence.ErrNotFound
	}
	return s.getProjectByGuildID(ctx, guildID)
}

func (s *projectRepoStub) GetProjectByTitle(ctx context.Context, title string) (domain.Project, error) {
	if s.getProjectByTitle == nil {
		return domain.Project{}, persistence.ErrNotFound
	}
	return s.getProjectByTitle(ctx, title)
}

func (s *projectRepoStub) ListProjects(ctx context.Context) ([]domain.Project, error) {
	if s.listProjects == nil {
		return nil, nil
	}
	return s.listProjects(ctx)
}

type participationRepoStub struct {
	appendParticipation              func(ctx context.Context, participation domain.Participation) error
	upsertParticipation              func(ctx context.Context, participation domain.Participation) error
	listParticipationsByRegistration func(ctx context.Context, registration string) ([]domain.Participation, error)
	listParticipationsByProject      func(ctx context.Context, projectID string) ([]domain.Participation, error)
	getParticipation                 func(ctx context.Context, registration, projectID string) (domain.Participation, error)
}

func (s *participationRepoStub) AppendParticipation(ctx context.Context, participation domain.Participation) error {
	if s.appendParticipation == nil {
		return nil
	}
	return s.appendParticipation(ctx, participation)
}

func (s *participationRepoStub) UpsertParticipation(ctx context.Context, participation domain.Participation) error {
	if s.upsertParticipation == nil {
		return nil
	}
	return s.upsertParticipation(ctx, participation)
}

func (s *participationRepoStub) ListParticipationsByRegistration(ctx context.Context, registration string) ([]domain.Participation, error) {
	if s.listParticipationsByRegistration == nil {
		return nil, nil
	}
	return s.listParticipationsByRegistration(ctx, registration)
}

func (s *participationRepoStub) ListParticipationsByProject(ctx context.Context, projectID string) ([]domain.Participation, error) {
	if s.listParticipationsByProject == nil {
		return nil, nil
	}
	return s.listParticipationsByProject(ctx, projectID)
}

func (s *participationRepoStub) GetParticipation(ctx context.Context, registration, projectID string) (domain.Participation, error) {
	if s.getParticipation == nil {
		return domain.Participation{}, persistence.ErrNotFound
	}
	return s.getParticipation(ctx, registration, projectID)
}

type attendanceRepoStub struct {
	upsertAttendance                  func(ctx context.Context, attendance domain.Attendance) error
	listAttendances                   func(ctx context.Context) ([]domain.Attendance, error)
	listAttendancesByMemberAndProject func(ctx context.Context, memberID, projectID string) ([]domain.Attendance, error)
}

func (s *attendanceRepoStub) UpsertAttendance(ctx context.Context, attendance domain.Attendance) error {
	if s.upsertAttendance == nil {
		return nil
	}
	return s.upsertAttendance(ctx, attendance)
}

func (s *attendanceRepoStub) ListAttendances(ctx context.Context) ([]domain.Attendance, error) {
	if s.listAttendances == nil {
		return nil, nil
	}
	return s.listAttendances(ctx)
}

func (s *attendanceRepoStub) ListAttendancesByMemberAndProject(ctx context.Context, memberID, projectID string) ([]domain.Attendance, error) {
	if s.listAttendancesByMemberAndProject == nil {
		return nil, nil
	}
	return s.listAttendancesByMemberAndProject(ctx, memberID, projectID)
}
