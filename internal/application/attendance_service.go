package application

import (
	"context"
	"fmt"
	"log/slog"
	"sort"

	"github.com/example/extension-assistant/internal/clock"
	"github.com/example/extension-assistant/internal/domain"
	"github.com/example/extension-assistant/internal/persistence"
)

// CreateAttendanceParams wraps the inputs of an attendance submission.
// Day is optional: empty selects today, a bare number selects a day of the
// current month, and a full DD/MM/YYYY date must fall in the current month.
// Participation is the member's resolved participation in the project; its
// final date bounds the days still open for attendance.
type CreateAttendanceParams struct {
	MemberID      string
	ProjectID     string
	Participation domain.Participation
	Day           string
	EntryTime     string
	ExitTime      string
}

// AttendanceService validates and persists daily attendance records.
type AttendanceService struct {
	attendances persistence.AttendanceRepository
	clk         clock.Clock
	idGenerator func() string
	logger      *slog.Logger
}

// NewAttendanceService wires dependencies for attendance operations.
func NewAttendanceService(attendances persistence.AttendanceRepository, clk clock.Clock, idGenerator func() string, logger *slog.Logger) *AttendanceService {
	if idGenerator == nil {
		idGenerator = func() string { return "" }
	}
	return &AttendanceService{
		attendances: attendances,
		clk:         clk,
		idGenerator: idGenerator,
		logger:      defaultLogger(logger),
	}
}

// CreateAttendance admits a submission against the working-hour calendar
// and upserts it keyed by (member, day): a prior row for the same member
// on the same day is replaced, never duplicated.
func (s *AttendanceService) CreateAttendance(ctx context.Context, params CreateAttendanceParams) (domain.Attendance, error) {
	if s == nil {
		return domain.Attendance{}, fmt.Errorf("AttendanceService is nil")
	}
	logger := serviceLogger(ctx, s.logger, "attendance", "create", "member_id", params.MemberID)

	day, err := ResolveAttendanceDay(params.Day, s.clk.Today())
	if err != nil {
		return domain.Attendance{}, err
	}

	// A terminated participation stays readable but takes no new days.
	if day.After(params.Participation.FinalDate) {
		return domain.Attendance{}, NewError(KindParticipationClosed)
	}

	entryLimit, exitLimit, open := WorkingWindow(day.Weekday())
	if !open {
		return domain.Attendance{}, FieldError(KindDayOutOfRange, "day")
	}

	entry, err := ParseTimeField(params.EntryTime, "entry_time")
	if err != nil {
		return domain.Attendance{}, err
	}
	exit, err := ParseTimeField(params.ExitTime, "exit_time")
	if err != nil {
		return domain.Attendance{}, err
	}

	if !withinWindow(entry, entryLimit, exitLimit) {
		return domain.Attendance{}, FieldError(KindTimeOutOfRange, "entry_time")
	}
	if !withinWindow(exit, entryLimit, exitLimit) {
		return domain.Attendance{}, FieldError(KindTimeOutOfRange, "exit_time")
	}
	if !entry.Before(exit) {
		return domain.Attendance{}, NewError(KindEntryTimeAfterExitTime)
	}

	attendance := domain.Attendance{
		ID:        s.idGenerator(),
		MemberID:  params.MemberID,
		ProjectID: params.ProjectID,
		Day:       day,
		EntryTime: entry,
		ExitTime:  exit,
	}

	if err := s.attendances.UpsertAttendance(ctx, attendance); err != nil {
		return domain.Attendance{}, err
	}

	logger.InfoContext(ctx, "attendance recorded", "day", day.String())
	return attendance, nil
}

// ListByMemberAndProject returns one member's attendances on one project,
// ordered by day ascending with the stored order as tie-breaker.
func (s *AttendanceService) ListByMemberAndProject(ctx context.Context, memberID, projectID string) ([]domain.Attendance, error) {
	if s == nil {
		return nil, fmt.Errorf("AttendanceService is nil")
	}
	attendances, err := s.attendances.ListAttendancesByMemberAndProject(ctx, memberID, projectID)
	if err != nil {
		return nil, err
	}
	ordered := make([]domain.Attendance, len(attendances))
	copy(ordered, attendances)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Day.Before(ordered[j].Day)
	})
	return ordered, nil
}
