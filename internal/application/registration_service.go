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

// PersonInput captures the form fields shared by coordinator and member
// registration.
type PersonInput struct {
	Registration string
	DiscordID    string
	Name         string
	Email        string
}

// ProjectInput captures the project registration form fields. Dates arrive
// as DD/MM/YYYY strings.
type ProjectInput struct {
	CoordinatorID string
	GuildID       string
	Title         string
	StartDate     string
	EndDate       string
}

// RegistrationService creates coordinators, members, and projects. The
// records are never destroyed by the assistant.
type RegistrationService struct {
	coordinators persistence.CoordinatorRepository
	members      persistence.MemberRepository
	projects     persistence.ProjectRepository
	idGenerator  func() string
	logger       *slog.Logger
}

// NewRegistrationService wires dependencies for registration operations.
func NewRegistrationService(coordinators persistence.CoordinatorRepository, members persistence.MemberRepository, projects persistence.ProjectRepository, idGenerator func() string, logger *slog.Logger) *RegistrationService {
	if idGenerator == nil {
		idGenerator = func() string { return "" }
	}
	return &RegistrationService{
		coordinators: coordinators,
		members:      members,
		projects:     projects,
		idGenerator:  idGenerator,
		logger:       defaultLogger(logger),
	}
}

// CreateCoordinator validates the input and persists a new coordinator.
// Registration, Discord ID, and email must each be unique among
// coordinators.
func (s *RegistrationService) CreateCoordinator(ctx context.Context, input PersonInput) (domain.Coordinator, error) {
	if s == nil {
		return domain.Coordinator{}, fmt.Errorf("RegistrationService is nil")
	}
	logger := serviceLogger(ctx, s.logger, "registration", "create_coordinator")

	registration, discordID, name, email, err := validatePerson(input)
	if err != nil {
		return domain.Coordinator{}, err
	}

	existing, err := s.coordinators.ListCoordinators(ctx)
	if err != nil {
		return domain.Coordinator{}, err
	}
	for _, c := range existing {
		if c.Registration == registration || c.DiscordID == discordID || strings.EqualFold(c.Email, email) {
			return domain.Coordinator{}, NewError(KindCoordinatorAlreadyExists)
		}
	}

	coordinator := domain.Coordinator{
		ID:           s.idGenerator(),
		Registration: registration,
		DiscordID:    discordID,
		Name:         name,
		Email:        email,
	}
	if err := s.coordinators.AppendCoordinator(ctx, coordinator); err != nil {
		return domain.Coordinator{}, err
	}

	logger.InfoContext(ctx, "coordinator registered", "registration", registration)
	return coordinator, nil
}

// CreateMember validates the input and persists a new member.
// Registration, Discord ID, and email must each be unique among members.
func (s *RegistrationService) CreateMember(ctx context.Context, input PersonInput) (domain.Member, error) {
	if s == nil {
		return domain.Member{}, fmt.Errorf("RegistrationService is nil")
	}
	logger := serviceLogger(ctx, s.logger, "registration", "create_member")

	registration, discordID, name, email, err := validatePerson(input)
	if err != nil {
		return domain.Member{}, err
	}

	existing, err := s.members.ListMembers(ctx)
	if err != nil {
		return domain.Member{}, err
	}
	for _, m := range existing {
		if m.Registration == registration || m.DiscordID == discordID || strings.EqualFold(m.Email, email) {
			return domain.Member{}, NewError(KindMemberAlreadyExists)
		}
	}

	member := domain.Member{
		ID:           s.idGenerator(),
		Registration: registration,
		DiscordID:    discordID,
		Name:         name,
		Email:        email,
	}
	if err := s.members.AppendMember(ctx, member); err != nil {
		return domain.Member{}, err
	}

	logger.InfoContext(ctx, "member registered", "registration", registration)
	return member, nil
}

// CreateProject validates the input and persists a new project. The
// coordinator must exist, the start date must precede the end date, and
// both the Discord server and the title must be unique across projects.
func (s *RegistrationService) CreateProject(ctx context.Context, input ProjectInput) (domain.Project, error) {
	if s == nil {
		return domain.Project{}, fmt.Errorf("RegistrationService is nil")
	}
	logger := serviceLogger(ctx, s.logger, "registration", "create_project")

	title := strings.TrimSpace(input.Title)
	if title == "" {
		return domain.Project{}, FieldError(KindInvalidTextLength, "title")
	}

	if _, err := s.coordinators.GetCoordinator(ctx, strings.TrimSpace(input.CoordinatorID)); err != nil {
		if errors.Is(err, persistence.ErrNotFound) {
			return domain.Project{}, NewError(KindCoordinatorNotFound)
		}
		return domain.Project{}, err
	}

	guildID, err := ValidateDiscordID(input.GuildID)
	if err != nil {
		return domain.Project{}, err
	}

	start, err := ParseDateField(input.StartDate, "start_date")
	if err != nil {
		return domain.Project{}, err
	}
	end, err := ParseDateField(input.EndDate, "end_date")
	if err != nil {
		return domain.Project{}, err
	}
	if !start.Before(end) {
		return domain.Project{}, FieldError(KindDateOutOfRange, "start_date")
	}

	existing, err := s.projects.ListProjects(ctx)
	if err != nil {
		return domain.Project{}, err
	}
	for _, p := range existing {
		if p.GuildID == guildID || strings.EqualFold(p.Title, title) {
			return domain.Project{}, NewError(KindProjectAlreadyExists)
		}
	}

	project := domain.Project{
		ID:            s.idGenerator(),
		CoordinatorID: strings.TrimSpace(input.CoordinatorID),
		GuildID:       guildID,
		Title:         title,
		StartDate:     start,
		EndDate:       end,
	}
	if err := s.projects.AppendProject(ctx, project); err != nil {
		return domain.Project{}, err
	}

	logger.InfoContext(ctx, "project registered", "title", title)
	return project, nil
}

func validatePerson(input PersonInput) (registration, discordID, name, email string, err error) {
	registration, err = ValidateRegistration(input.Registration)
	if err != nil {
		return "", "", "", "", err
	}
	discordID, err = ValidateDiscordID(input.DiscordID)
	if err != nil {
		return "", "", "", "", err
	}
	email, err = ValidateEmail(input.Email)
	if err != nil {
		return "", "", "", "", err
	}
	name = strings.TrimSpace(input.Name)
	return registration, discordID, name, email, nil
}
