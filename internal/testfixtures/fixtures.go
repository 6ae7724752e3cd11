package testfixtures

import (
	"github.com/example/extension-assistant/internal/clock"
	"github.com/example/extension-assistant/internal/domain"
)

// MemberOption customises a member fixture.
type MemberOption func(*domain.Member)

// WithMemberID overrides the generated identity.
func WithMemberID(id string) MemberOption {
	return func(m *domain.Member) { m.ID = id }
}

// WithMemberRegistration overrides the registration code.
func WithMemberRegistration(registration string) MemberOption {
	return func(m *domain.Member) { m.Registration = registration }
}

// WithMemberDiscordID overrides the Discord identity.
func WithMemberDiscordID(discordID string) MemberOption {
	return func(m *domain.Member) { m.DiscordID = discordID }
}

// WithMemberName overrides the display name.
func WithMemberName(name string) MemberOption {
	return func(m *domain.Member) { m.Name = name }
}

// NewMemberFixture builds a valid member record.
func NewMemberFixture(opts ...MemberOption) domain.Member {
	member := domain.Member{
		ID:           "member-1",
		Registration: "sp123456x",
		DiscordID:    "100000000000000001",
		Name:         "Ana Souza",
		Email:        "ana.souza@aluno.example.edu.br",
	}
	for _, opt := range opts {
		opt(&member)
	}
	return member
}

// CoordinatorOption customises a coordinator fixture.
type CoordinatorOption func(*domain.Coordinator)

// WithCoordinatorID overrides the generated identity.
func WithCoordinatorID(id string) CoordinatorOption {
	return func(c *domain.Coordinator) { c.ID = id }
}

// WithCoordinatorDiscordID overrides the Discord identity.
func WithCoordinatorDiscordID(discordID string) CoordinatorOption {
	return func(c *domain.Coordinator) { c.DiscordID = discordID }
}

// NewCoordinatorFixture builds a valid coordinator record.
func NewCoordinatorFixture(opts ...CoordinatorOption) domain.Coordinator {
	coordinator := domain.Coordinator{
		ID:           "coordinator-1",
		Registration: "sp654321y",
		DiscordID:    "200000000000000001",
		Name:         "Carlos Pereira",
		Email:        "carlos.pereira@example.edu.br",
	}
	for _, opt := range opts {
		opt(&coordinator)
	}
	return coordinator
}

// ProjectOption customises a project fixture.
type ProjectOption func(*domain.Project)

// WithProjectID overrides the generated identity.
func WithProjectID(id string) ProjectOption {
	return func(p *domain.Project) { p.ID = id }
}

// WithProjectGuildID overrides the bound Discord server.
func WithProjectGuildID(guildID string) ProjectOption {
	return func(p *domain.Project) { p.GuildID = guildID }
}

// WithProjectTitle overrides the title.
func WithProjectTitle(title string) ProjectOption {
	return func(p *domain.Project) { p.Title = title }
}

// WithProjectPeriod overrides the project date range.
func WithProjectPeriod(start, end clock.Date) ProjectOption {
	return func(p *domain.Project) {
		p.StartDate = start
		p.EndDate = end
	}
}

// NewProjectFixture builds a project spanning the 2024 calendar year, which
// contains ReferenceTime.
func NewProjectFixture(opts ...ProjectOption) domain.Project {
	project := domain.Project{
		ID:            "project-1",
		CoordinatorID: "coordinator-1",
		GuildID:       "300000000000000001",
		Title:         "Robótica na Escola",
		StartDate:     clock.Date{Day: 1, Month: 1, Year: 2024},
		EndDate:       clock.Date{Day: 31, Month: 12, Year: 2024},
	}
	for _, opt := range opts {
		opt(&project)
	}
	return project
}

// ParticipationOption customises a participation fixture.
type ParticipationOption func(*domain.Participation)

// WithParticipationID overrides the generated identity.
func WithParticipationID(id string) ParticipationOption {
	return func(p *domain.Participation) { p.ID = id }
}

// WithParticipationRegistration overrides the member registration.
func WithParticipationRegistration(registration string) ParticipationOption {
	return func(p *domain.Participation) { p.Registration = registration }
}

// WithParticipationProjectID overrides the project binding.
func WithParticipationProjectID(projectID string) ParticipationOption {
	return func(p *domain.Participation) { p.ProjectID = projectID }
}

// WithParticipationFinalDate overrides the final date.
func WithParticipationFinalDate(date clock.Date) ParticipationOption {
	return func(p *domain.Participation) { p.FinalDate = date }
}

// NewParticipationFixture builds an active participation matching the
// default member and project fixtures.
func NewParticipationFixture(opts ...ParticipationOption) domain.Participation {
	participation := domain.Participation{
		ID:           "participation-1",
		Registration: "sp123456x",
		ProjectID:    "project-1",
		InitialDate:  clock.Date{Day: 1, Month: 2, Year: 2024},
		FinalDate:    clock.Date{Day: 31, Month: 12, Year: 2024},
	}
	for _, opt := range opts {
		opt(&participation)
	}
	return participation
}

// AttendanceOption customises an attendance fixture.
type AttendanceOption func(*domain.Attendance)

// WithAttendanceMemberID overrides the member binding.
func WithAttendanceMemberID(memberID string) AttendanceOption {
	return func(a *domain.Attendance) { a.MemberID = memberID }
}

// WithAttendanceProjectID overrides the project binding.
func WithAttendanceProjectID(projectID string) AttendanceOption {
	return func(a *domain.Attendance) { a.ProjectID = projectID }
}

// WithAttendanceDay overrides the attendance day.
func WithAttendanceDay(day clock.Date) AttendanceOption {
	return func(a *domain.Attendance) { a.Day = day }
}

// NewAttendanceFixture builds an attendance on the ReferenceTime day with a
// morning entry and an afternoon exit.
func NewAttendanceFixture(opts ...AttendanceOption) domain.Attendance {
	attendance := domain.Attendance{
		ID:        "attendance-1",
		MemberID:  "member-1",
		ProjectID: "project-1",
		Day:       clock.Date{Day: 5, Month: 3, Year: 2024},
		EntryTime: clock.TimeOfDay{Hour: 8, Minute: 0},
		ExitTime:  clock.TimeOfDay{Hour: 12, Minute: 0},
	}
	for _, opt := range opts {
		opt(&attendance)
	}
	return attendance
}
