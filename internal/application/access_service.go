package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/example/extension-assistant/internal/domain"
	"github.com/example/extension-assistant/internal/persistence"
)

// AccessService resolves command invokers and servers into domain records
// and enforces the coordinator permission. Handlers go through it instead
// of consulting repositories themselves.
type AccessService struct {
	members        persistence.MemberRepository
	projects       persistence.ProjectRepository
	coordinators   persistence.CoordinatorRepository
	participations persistence.ParticipationRepository
	logger         *slog.Logger
}

// NewAccessService wires dependencies for invoker resolution.
func NewAccessService(members persistence.MemberRepository, projects persistence.ProjectRepository, coordinators persistence.CoordinatorRepository, participations persistence.ParticipationRepository, logger *slog.Logger) *AccessService {
	return &AccessService{
		members:        members,
		projects:       projects,
		coordinators:   coordinators,
		participations: participations,
		logger:         defaultLogger(logger),
	}
}

// RequireCoordinator resolves the invoker to a registered coordinator.
// Unknown invokers fail with the permission kind rather than a lookup kind,
// so the reply never reveals who is registered.
func (s *AccessService) RequireCoordinator(ctx context.Context, discordID string) (domain.Coordinator, error) {
	if s == nil {
		return domain.Coordinator{}, fmt.Errorf("AccessService is nil")
	}
	coordinator, err := s.coordinators.GetCoordinatorByDiscordID(ctx, discordID)
	if err != nil {
		if errors.Is(err, persistence.ErrNotFound) {
			return domain.Coordinator{}, NewError(KindNotAuthorized)
		}
		return domain.Coordinator{}, err
	}
	return coordinator, nil
}

// ResolveMemberAndProject maps the invoker to a registered member and the
// server to its bound project.
func (s *AccessService) ResolveMemberAndProject(ctx context.Context, discordID, guildID string) (domain.Member, domain.Project, error) {
	if s == nil {
		return domain.Member{}, domain.Project{}, fmt.Errorf("AccessService is nil")
	}
	member, err := s.members.GetMemberByDiscordID(ctx, discordID)
	if err != nil {
		if errors.Is(err, persistence.ErrNotFound) {
			return domain.Member{}, domain.Project{}, NewError(KindMemberNotFound)
		}
		return domain.Member{}, domain.Project{}, err
	}
	project, err := s.projects.GetProjectByGuildID(ctx, guildID)
	if err != nil {
		if errors.Is(err, persistence.ErrNotFound) {
			return domain.Member{}, domain.Project{}, NewError(KindServerNotFound)
		}
		return domain.Member{}, domain.Project{}, err
	}
	return member, project, nil
}

// ResolveParticipant resolves the invoker, the server's project, and the
// invoker's participation in it.
func (s *AccessService) ResolveParticipant(ctx context.Context, discordID, guildID string) (domain.Member, domain.Project, domain.Participation, error) {
	member, project, err := s.ResolveMemberAndProject(ctx, discordID, guildID)
	if err != nil {
		return domain.Member{}, domain.Project{}, domain.Participation{}, err
	}
	participation, err := s.participations.GetParticipation(ctx, member.Registration, project.ID)
	if err != nil {
		if errors.Is(err, persistence.ErrNotFound) {
			return domain.Member{}, domain.Project{}, domain.Participation{}, NewError(KindParticipationNotFoundInServer)
		}
		return domain.Member{}, domain.Project{}, domain.Participation{}, err
	}
	return member, project, participation, nil
}

// ProjectCoordinator loads the coordinator responsible for a project.
func (s *AccessService) ProjectCoordinator(ctx context.Context, project domain.Project) (domain.Coordinator, error) {
	if s == nil {
		return domain.Coordinator{}, fmt.Errorf("AccessService is nil")
	}
	coordinator, err := s.coordinators.GetCoordinator(ctx, project.CoordinatorID)
	if err != nil {
		if errors.Is(err, persistence.ErrNotFound) {
			return domain.Coordinator{}, NewError(KindCoordinatorNotFound)
		}
		return domain.Coordinator{}, err
	}
	return coordinator, nil
}
