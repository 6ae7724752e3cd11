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

// TerminationParams wraps a termination request. The termination date
// arrives as a DD/MM/YYYY string; the reason is free text bounded 60-250
// characters after trimming.
type TerminationParams struct {
	Member          domain.Member
	Project         domain.Project
	Coordinator     domain.Coordinator
	TerminationDate string
	Reason          string
}

// TerminationService closes a member's participation in a project and
// produces the statement document model.
type TerminationService struct {
	participations persistence.ParticipationRepository
	clk            clock.Clock
	logger         *slog.Logger
}

// NewTerminationService wires dependencies for termination requests.
func NewTerminationService(participations persistence.ParticipationRepository, clk clock.Clock, logger *slog.Logger) *TerminationService {
	return &TerminationService{
		participations: participations,
		clk:            clk,
		logger:         defaultLogger(logger),
	}
}

// Apply validates the request, rewrites the participation's final date,
// and returns the termination-statement data. The termination date must be
// today or later, strictly inside the project's date range. The
// participation row is rewritten exactly once; afterwards it remains
// readable but is closed for new attendance.
func (s *TerminationService) Apply(ctx context.Context, params TerminationParams) (report.TerminationStatementData, error) {
	if s == nil {
		return report.TerminationStatementData{}, fmt.Errorf("TerminationService is nil")
	}
	logger := serviceLogger(ctx, s.logger, "termination", "apply",
		"registration", params.Member.Registration, "project_id", params.Project.ID)

	participation, err := s.participations.GetParticipation(ctx, params.Member.Registration, params.Project.ID)
	if err != nil {
		if errors.Is(err, persistence.ErrNotFound) {
			return report.TerminationStatementData{}, NewError(KindParticipationNotFoundInServer)
		}
		return report.TerminationStatementData{}, err
	}

	// An open participation carries the project end date; anything earlier
	// means a termination already rewrote it.
	if participation.FinalDate.Before(params.Project.EndDate) {
		return report.TerminationStatementData{}, NewError(KindParticipationClosed)
	}

	reason, err := ValidateTextBlock(params.Reason, 60, 250, "reason")
	if err != nil {
		return report.TerminationStatementData{}, err
	}

	termination, err := ParseDateField(params.TerminationDate, "termination_date")
	if err != nil {
		return report.TerminationStatementData{}, err
	}

	today := s.clk.Today()
	if termination.Before(today) ||
		!termination.Before(params.Project.EndDate) ||
		!termination.After(params.Project.StartDate) {
		return report.TerminationStatementData{}, NewError(KindOutOfRangeTerminationDate)
	}

	participation.FinalDate = termination
	if err := s.participations.UpsertParticipation(ctx, participation); err != nil {
		return report.TerminationStatementData{}, err
	}

	logger.InfoContext(ctx, "participation terminated", "final_date", termination.String())
	return report.TerminationStatementData{
		StudentName:         params.Member.Name,
		StudentRegistration: params.Member.Registration,
		ProjectTitle:        params.Project.Title,
		CoordinatorName:     params.Coordinator.Name,
		TerminationDate:     termination,
		Reason:              reason,
		IssuedOn:            today,
	}, nil
}
