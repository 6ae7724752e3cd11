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

// SheetDeliverer hands an assembled attendance sheet to the chat adapter
// for delivery to a member.
type SheetDeliverer interface {
	DeliverSheet(ctx context.Context, memberDiscordID string, doc report.Document) error
}

// SheetService emits the month-end attendance sheets. It is driven once
// per day by the scheduler and only acts on the last day of the month, so
// re-running it within the same day produces identical documents.
type SheetService struct {
	attendances persistence.AttendanceRepository
	members     persistence.MemberRepository
	projects    persistence.ProjectRepository
	deliverer   SheetDeliverer
	clk         clock.Clock
	logger      *slog.Logger
}

// NewSheetService wires dependencies for the month-end task.
func NewSheetService(attendances persistence.AttendanceRepository, members persistence.MemberRepository, projects persistence.ProjectRepository, deliverer SheetDeliverer, clk clock.Clock, logger *slog.Logger) *SheetService {
	return &SheetService{
		attendances: attendances,
		members:     members,
		projects:    projects,
		deliverer:   deliverer,
		clk:         clk,
		logger:      defaultLogger(logger),
	}
}

// MaybeEmitSheets produces one attendance sheet per (member, project) pair
// that holds at least one attendance in the current month, and hands each
// to the deliverer. Outside the last day of the month it does nothing.
// Members that no longer resolve, and deliveries the adapter rejects, are
// skipped with a log line; they never abort the run.
func (s *SheetService) MaybeEmitSheets(ctx context.Context) error {
	if s == nil {
		return fmt.Errorf("SheetService is nil")
	}
	logger := serviceLogger(ctx, s.logger, "sheet", "emit")

	today := s.clk.Today()
	if today.Day != clock.LastDayOfMonth(today.Year, today.Month) {
		return nil
	}

	attendances, err := s.attendances.ListAttendances(ctx)
	if err != nil {
		return err
	}

	memberIDs := distinctMemberIDs(attendances)
	emitted := 0
	for _, memberID := range memberIDs {
		member, err := s.members.GetMember(ctx, memberID)
		if err != nil {
			if errors.Is(err, persistence.ErrNotFound) {
				logger.WarnContext(ctx, "skipping sheet for unknown member", "member_id", memberID)
				continue
			}
			return err
		}

		for _, projectID := range distinctProjectIDs(attendances, memberID) {
			monthly := attendancesForMonth(attendances, memberID, projectID, today)
			if len(monthly) == 0 {
				continue
			}
			project, err := s.projects.GetProject(ctx, projectID)
			if err != nil {
				if errors.Is(err, persistence.ErrNotFound) {
					logger.WarnContext(ctx, "skipping sheet for unknown project",
						"member_id", memberID, "project_id", projectID)
					continue
				}
				return err
			}

			doc := report.AssembleAttendanceSheet(report.AttendanceSheetData{
				StudentName:         member.Name,
				StudentRegistration: member.Registration,
				ProjectTitle:        project.Title,
				Month:               today.Month,
				Year:                today.Year,
				Attendances:         monthly,
			})
			if err := s.deliverer.DeliverSheet(ctx, member.DiscordID, doc); err != nil {
				logger.WarnContext(ctx, "sheet delivery failed",
					"member_id", memberID, "project_id", projectID, "error", err)
				continue
			}
			emitted++
		}
	}

	logger.InfoContext(ctx, "month-end sheets emitted", "count", emitted)
	return nil
}

// distinctMemberIDs preserves first-appearance order so repeated runs emit
// sheets in the same sequence.
func distinctMemberIDs(attendances []domain.Attendance) []string {
	seen := make(map[string]struct{}, len(attendances))
	ids := make([]string, 0, len(attendances))
	for _, a := range attendances {
		if _, ok := seen[a.MemberID]; ok {
			continue
		}
		seen[a.MemberID] = struct{}{}
		ids = append(ids, a.MemberID)
	}
	return ids
}

func distinctProjectIDs(attendances []domain.Attendance, memberID string) []string {
	seen := make(map[string]struct{})
	ids := make([]string, 0)
	for _, a := range attendances {
		if a.MemberID != memberID {
			continue
		}
		if _, ok := seen[a.ProjectID]; ok {
			continue
		}
		seen[a.ProjectID] = struct{}{}
		ids = append(ids, a.ProjectID)
	}
	return ids
}

func attendancesForMonth(attendances []domain.Attendance, memberID, projectID string, today clock.Date) []domain.Attendance {
	monthly := make([]domain.Attendance, 0)
	for _, a := range attendances {
		if a.MemberID != memberID || a.ProjectID != projectID {
			continue
		}
		if a.Day.Month == today.Month && a.Day.Year == today.Year {
			monthly = append(monthly, a)
		}
	}
	return monthly
}
