package flatfile

import (
	"fmt"

	"github.com/example/extension-assistant/internal/clock"
	"github.com/example/extension-assistant/internal/domain"
)

func decodeDate(field, value string) (clock.Date, error) {
	date, err := clock.ParseDate(value)
	if err != nil {
		return clock.Date{}, fmt.Errorf("field %s: %v", field, err)
	}
	return date, nil
}

func decodeTime(field, value string) (clock.TimeOfDay, error) {
	tod, err := clock.ParseTimeOfDay(value)
	if err != nil {
		return clock.TimeOfDay{}, fmt.Errorf("field %s: %v", field, err)
	}
	return tod, nil
}

// CoordinatorCodec maps coordinators onto coordinators.csv rows.
func CoordinatorCodec() Codec[domain.Coordinator] {
	return Codec[domain.Coordinator]{
		Filename: "coordinators.csv",
		Fields:   []string{"coord_id", "registration", "discord_id", "name", "email"},
		Encode: func(c domain.Coordinator) []string {
			return []string{c.ID, c.Registration, c.DiscordID, c.Name, c.Email}
		},
		Decode: func(row []string) (domain.Coordinator, error) {
			return domain.Coordinator{
				ID:           row[0],
				Registration: row[1],
				DiscordID:    row[2],
				Name:         row[3],
				Email:        row[4],
			}, nil
		},
	}
}

// MemberCodec maps members onto members.csv rows.
func MemberCodec() Codec[domain.Member] {
	return Codec[domain.Member]{
		Filename: "members.csv",
		Fields:   []string{"member_id", "registration", "discord_id", "name", "email"},
		Encode: func(m domain.Member) []string {
			return []string{m.ID, m.Registration, m.DiscordID, m.Name, m.Email}
		},
		Decode: func(row []string) (domain.Member, error) {
			return domain.Member{
				ID:           row[0],
				Registration: row[1],
				DiscordID:    row[2],
				Name:         row[3],
				Email:        row[4],
			}, nil
		},
	}
}

// ProjectCodec maps projects onto projects.csv rows.
func ProjectCodec() Codec[domain.Project] {
	return Codec[domain.Project]{
		Filename: "projects.csv",
		Fields:   []string{"project_id", "coordinator_id", "discord_server_id", "title", "start_date", "end_date"},
		Encode: func(p domain.Project) []string {
			return []string{p.ID, p.CoordinatorID, p.GuildID, p.Title, p.StartDate.String(), p.EndDate.String()}
		},
		Decode: func(row []string) (domain.Project, error) {
			start, err := decodeDate("start_date", row[4])
			if err != nil {
				return domain.Project{}, err
			}
			end, err := decodeDate("end_date", row[5])
			if err != nil {
				return domain.Project{}, err
			}
			return domain.Project{
				ID:            row[0],
				CoordinatorID: row[1],
				GuildID:       row[2],
				Title:         row[3],
				StartDate:     start,
				EndDate:       end,
			}, nil
		},
	}
}

// ParticipationCodec maps participations onto participations.csv rows.
func ParticipationCodec() Codec[domain.Participation] {
	return Codec[domain.Participation]{
		Filename: "participations.csv",
		Fields:   []string{"participation_id", "registration", "project_id", "initial_date", "final_date"},
		Encode: func(p domain.Participation) []string {
			return []string{p.ID, p.Registration, p.ProjectID, p.InitialDate.String(), p.FinalDate.String()}
		},
		Decode: func(row []string) (domain.Participation, error) {
			initial, err := decodeDate("initial_date", row[3])
			if err != nil {
				return domain.Participation{}, err
			}
			final, err := decodeDate("final_date", row[4])
			if err != nil {
				return domain.Participation{}, err
			}
			return domain.Participation{
				ID:           row[0],
				Registration: row[1],
				ProjectID:    row[2],
				InitialDate:  initial,
				FinalDate:    final,
			}, nil
		},
	}
}

// AttendanceCodec maps attendances onto attendances.csv rows.
func AttendanceCodec() Codec[domain.Attendance] {
	return Codec[domain.Attendance]{
		Filename: "attendances.csv",
		Fields:   []string{"attendance_id", "member_id", "project_id", "day", "entry_time", "exit_time"},
		Encode: func(a domain.Attendance) []string {
			return []string{a.ID, a.MemberID, a.ProjectID, a.Day.String(), a.EntryTime.String(), a.ExitTime.String()}
		},
		Decode: func(row []string) (domain.Attendance, error) {
			day, err := decodeDate("day", row[3])
			if err != nil {
				return domain.Attendance{}, err
			}
			entry, err := decodeTime("entry_time", row[4])
			if err != nil {
				return domain.Attendance{}, err
			}
			exit, err := decodeTime("exit_time", row[5])
			if err != nil {
				return domain.Attendance{}, err
			}
			return domain.Attendance{
				ID:        row[0],
				MemberID:  row[1],
				ProjectID: row[2],
				Day:       day,
				EntryTime: entry,
				ExitTime:  exit,
			}, nil
		},
	}
}

// LogEntryCodec maps log entries onto logs.csv rows.
func LogEntryCodec() Codec[domain.LogEntry] {
	return Codec[domain.LogEntry]{
		Filename: "logs.csv",
		Fields:   []string{"project_id", "member_id", "timestamp", "action_text"},
		Encode: func(e domain.LogEntry) []string {
			return []string{e.ProjectID, e.MemberID, e.Timestamp.String(), e.Action}
		},
		Decode: func(row []string) (domain.LogEntry, error) {
			stamp, err := clock.ParseStamp(row[2])
			if err != nil {
				return domain.LogEntry{}, fmt.Errorf("field timestamp: %v", err)
			}
			return domain.LogEntry{
				ProjectID: row[0],
				MemberID:  row[1],
				Timestamp: stamp,
				Action:    row[3],
			}, nil
		},
	}
}
