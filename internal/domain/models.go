// Package domain holds the record types persisted by the assistant. Every
// record carries an opaque identity generated at creation; the remaining
// fields use the calendar value types from the clock package so that the
// serialised form and the in-memory form agree.
package domain

import "github.com/example/extension-assistant/internal/clock"

// Coordinator is a professor responsible for one or more projects.
type Coordinator struct {
	ID           string
	Registration string
	DiscordID    string
	Name         string
	Email        string
}

// Member is a student enrolled in at least one project.
type Member struct {
	ID           string
	Registration string
	DiscordID    string
	Name         string
	Email        string
}

// Project is a research or teaching initiative with a fixed date range and
// an associated Discord server.
type Project struct {
	ID            string
	CoordinatorID string
	GuildID       string
	Title         string
	StartDate     clock.Date
	EndDate       clock.Date
}

// Participation records a member's enrolment in a project. FinalDate starts
// at the project end date and is rewritten exactly once by a termination.
type Participation struct {
	ID           string
	Registration string
	ProjectID    string
	InitialDate  clock.Date
	FinalDate    clock.Date
}

// Attendance is one day's entry and exit pair for a member on a project.
// At most one attendance exists per (member, day); resubmissions replace
// the stored row.
type Attendance struct {
	ID        string
	MemberID  string
	ProjectID string
	Day       clock.Date
	EntryTime clock.TimeOfDay
	ExitTime  clock.TimeOfDay
}

// LogEntry is one recorded chat event attributed to a member and project.
// Entries are append-only.
type LogEntry struct {
	ProjectID string
	MemberID  string
	Timestamp clock.Stamp
	Action    string
}
