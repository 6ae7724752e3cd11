package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/example/extension-assistant/internal/clock"
	"github.com/example/extension-assistant/internal/domain"
	"github.com/example/extension-assistant/internal/persistence"
	"github.com/example/extension-assistant/internal/report"
)

// Narrative reports may only be requested from this day of the month
// onwards.
const reportRequestDay = 23

// NarrativeReportParams wraps a monthly or semester report request. The
// invoker is identified by Discord ID and the project by the server the
// command was issued on.
type NarrativeReportParams struct {
	DiscordID string
	GuildID   string
	Planned   string
	Performed string
	Results   string
}

// ReportService resolves and validates the monthly and semester activity
// reports.
type ReportService struct {
	members        persistence.MemberRepository
	projects       persistence.ProjectRepository
	coordinators   persistence.CoordinatorRepository
	participations persistence.ParticipationRepository
	clk            clock.Clock
	logger         *slog.Logger
}

// NewReportService wires dependencies for report requests.
func NewReportService(members persistence.MemberRepository, projects persistence.ProjectRepository, coordinators persistence.CoordinatorRepository, participations persistence.ParticipationRepository, clk clock.Clock, logger *slog.Logger) *ReportService {
	return &ReportService{
		members:        members,
		projects:       projects,
		coordinators:   coordinators,
		participations: participations,
		clk:            clk,
		logger:         defaultLogger(logger),
	}
}

// CreateMonthly validates a monthly report request. Each narrative block
// must hold 200-500 characters after trimming.
func (s *ReportService) CreateMonthly(ctx context.Context, params NarrativeReportParams) (report.MonthlyReportData, error) {
	if s == nil {
		return report.MonthlyReportData{}, fmt.Errorf("ReportService is nil")
	}
	member, project, coordinator, err := s.resolve(ctx, params)
	if err != nil {
		return report.MonthlyReportData{}, err
	}

	planned, performed, results, err := validateNarrative(params, 200, 500)
	if err != nil {
		return report.MonthlyReportData{}, err
	}

	logger := serviceLogger(ctx, s.logger, "report", "monthly", "registration", member.Registration)
	logger.InfoContext(ctx, "monthly report assembled", "project_id", project.ID)

	return report.MonthlyReportData{
		ProjectTitle:        project.Title,
		CoordinatorName:     coordinator.Name,
		StudentName:         member.Name,
		StudentRegistration: member.Registration,
		Reference:           s.clk.Today(),
		Planned:             planned,
		Performed:           performed,
		Results:             results,
	}, nil
}

// CreateSemester validates a semester report request. Each narrative block
// must hold 300-600 characters after trimming.
func (s *ReportService) CreateSemester(ctx context.Context, params NarrativeReportParams) (report.SemesterReportData, error) {
	if s == nil {
		return report.SemesterReportData{}, fmt.Errorf("ReportService is nil")
	}
	member, project, coordinator, err := s.resolve(ctx, params)
	if err != nil {
		return report.SemesterReportData{}, err
	}

	planned, performed, results, err := validateNarrative(params, 300, 600)
	if err != nil {
		return report.SemesterReportData{}, err
	}

	logger := serviceLogger(ctx, s.logger, "report", "semester", "registration", member.Registration)
	logger.InfoContext(ctx, "semester report assembled", "project_id", project.ID)

	return report.SemesterReportData{
		ProjectTitle:        project.Title,
		CoordinatorName:     coordinator.Name,
		StudentName:         member.Name,
		StudentRegistration: member.Registration,
		Reference:           s.clk.Today(),
		Planned:             planned,
		Performed:           performed,
		Results:             results,
	}, nil
}

// resolve applies the eligibility window and joins the invoker to their
// member, project, and coordinator records.
func (s *ReportService) resolve(ctx context.Context, params NarrativeReportParams) (domain.Member, domain.Project, domain.Coordinator, error) {
	if s.clk.Today().Day < reportRequestDay {
		return domain.Member{}, domain.Project{}, domain.Coordinator{}, NewError(KindInvalidRequestPeriod)
	}

	member, err := s.members.GetMemberByDiscordID(ctx, params.DiscordID)
	if err != nil {
		if errors.Is(err, persistence.ErrNotFound) {
			return domain.Member{}, domain.Project{}, domain.Coordinator{}, NewError(KindMemberNotFound)
		}
		return domain.Member{}, domain.Project{}, domain.Coordinator{}, err
	}

	project, err := s.projects.GetProjectByGuildID(ctx, params.GuildID)
	if err != nil {
		if errors.Is(err, persistence.ErrNotFound) {
			return domain.Member{}, domain.Project{}, domain.Coordinator{}, NewError(KindServerNotFound)
		}
		return domain.Member{}, domain.Project{}, domain.Coordinator{}, err
	}

	if _, err := s.participations.GetParticipation(ctx, member.Registration, project.ID); err != nil {
		if errors.Is(err, persistence.ErrNotFound) {
			return domain.Member{}, domain.Project{}, domain.Coordinator{}, NewError(KindParticipationNotFound)
		}
		return domain.Member{}, domain.Project{}, domain.Coordinator{}, err
	}

	coordinator, err := s.coordinators.GetCoordinator(ctx, project.CoordinatorID)
	if err != nil {
		if errors.Is(err, persistence.ErrNotFound) {
			return domain.Member{}, domain.Project{}, domain.Coordinator{}, NewError(KindCoordinatorNotFound)
		}
		return domain.Member{}, domain.Project{}, domain.Coordinator{}, err
	}

	return member, project, coordinator, nil
}

func validateNarrative(params NarrativeReportParams, min, max int) (planned, performed, results string, err error) {
	planned, err = ValidateTextBlock(params.Planned, min, max, "planned")
	if err != nil {
		return "", "", "", err
	}
	performed, err = ValidateTextBlock(params.Performed, min, max, "performed")
	if err != nil {
		return "", "", "", err
	}
	results, err = ValidateTextBlock(params.Results, min, max, "results")
	if err != nil {
		return "", "", "", err
	}
	return planned, performed, results, nil
}
