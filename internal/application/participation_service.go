package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/example/extension-assistant/internal/domain"
	"github.com/example/extension-assistant/internal/persistence"
)

// ParticipationInput captures the participation form fields. The project
// is named by its title, as on the chat form; the initial date arrives as
// a DD/MM/YYYY string.
type ParticipationInput struct {
	Registration string
	ProjectTitle string
	InitialDate  string
}

// ParticipationService enrols members into projects.
type ParticipationService struct {
	participations persistence.ParticipationRepository
	members        persistence.MemberRepository
	projects       persistence.ProjectRepository
	idGenerator    func() string
	logger         *slog.Logger
}

// NewParticipationService wires dependencies for participation operations.
func NewParticipationService(participations persistence.ParticipationRepository, members persistence.MemberRepository, projects persistence.ProjectRepository, idGenerator func() string, logger *slog.Logger) *ParticipationService {
	if idGenerator == nil {
		idGenerator = func() string { return "" }
	}
	return &ParticipationService{
		participations: participations,
		members:        members,
		projects:       projects,
		idGenerator:    idGenerator,
		logger:         defaultLogger(logger),
	}
}

// Create validates the enrolment and appends the participation. The member
// and project must exist, the initial date must fall within the project's
// date range, and a member holds at most one participation per project.
// The final date starts at the project end date.
func (s *ParticipationService) Create(ctx context.Context, input ParticipationInput) (domain.Participation, error) {
	if s == nil {
		return domain.Participation{}, fmt.Errorf("ParticipationService is nil")
	}
	logger := serviceLogger(ctx, s.logger, "participation", "create")

	registration, err := ValidateRegistration(input.Registration)
	if err != nil {
		return domain.Participation{}, err
	}
	if _, err := s.members.GetMemberByRegistration(ctx, registration); err != nil {
		if errors.Is(err, persistence.ErrNotFound) {
			return domain.Participation{}, NewError(KindMemberNotFound)
		}
		return domain.Participation{}, err
	}

	project, err := s.projects.GetProjectByTitle(ctx, strings.TrimSpace(input.ProjectTitle))
	if err != nil {
		if errors.Is(err, persistence.ErrNotFound) {
			return domain.Participation{}, NewError(KindProjectNotFound)
		}
		return domain.Participation{}, err
	}

	initial, err := ParseDateField(input.InitialDate, "initial_date")
	if err != nil {
		return domain.Participation{}, err
	}
	if initial.Before(project.StartDate) || initial.After(project.EndDate) {
		return domain.Participation{}, FieldError(KindDateOutOfRange, "initial_date")
	}

	if _, err := s.participations.GetParticipation(ctx, registration, project.ID); err == nil {
		return domain.Participation{}, NewError(KindParticipationAlreadyExists)
	} else if !errors.Is(err, persistence.ErrNotFound) {
		return domain.Participation{}, err
	}

	participation := domain.Participation{
		ID:           s.idGenerator(),
		Registration: registration,
		ProjectID:    project.ID,
		InitialDate:  initial,
		FinalDate:    project.EndDate,
	}
	if err := s.participations.AppendParticipation(ctx, participation); err != nil {
		return domain.Participation{}, err
	}

	logger.InfoContext(ctx, "participation created",
		"registration", registration, "project_id", project.ID)
	return participation, nil
}

// FindByRegistration returns a member's participations in stored order.
func (s *ParticipationService) FindByRegistration(ctx context.Context, registration string) ([]domain.Participation, error) {
	if s == nil {
		return nil, fmt.Errorf("ParticipationService is nil")
	}
	return s.participations.ListParticipationsByRegistration(ctx, registration)
}

// FindByProject returns a project's participations in stored order.
func (s *ParticipationService) FindByProject(ctx context.Context, projectID string) ([]domain.Participation, error) {
	if s == nil {
		return nil, fmt.Errorf("ParticipationService is nil")
	}
	return s.participations.ListParticipationsByProject(ctx, projectID)
}
