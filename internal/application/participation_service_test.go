package application

import (
	"context"
	"errors"
	"testing"

	"github.com/example/extension-assistant/internal/domain"
	"github.com/example/extension-assistant/internal/persistence"
	"github.com/example/extension-assistant/internal/testfixtures"
)

func TestCreateParticipation(t *testing.T) {
	member := testfixtures.NewMemberFixture()
	project := testfixtures.NewProjectFixture()

	members := &memberRepoStub{
		getMemberByRegistration: func(ctx context.Context, registration string) (domain.Member, error) {
			if registration == member.Registration {
				return member, nil
			}
			return domain.Member{}, persistence.ErrNotFound
		},
	}
	projects := &projectRepoStub{
		getProjectByTitle: func(ctx context.Context, title string) (domain.Project, error) {
			if title == project.Title {
				return project, nil
			}
			return domain.Project{}, persistence.ErrNotFound
		},
	}
	input := ParticipationInput{
		Registration: member.Registration,
		ProjectTitle: project.Title,
		InitialDate:  "01/02/2024",
	}

	t.Run("appends a valid enrolment", func(t *testing.T) {
		var stored domain.Participation
		participations := &participationRepoStub{
			appendParticipation: func(ctx context.Context, participation domain.Participation) error {
				stored = participation
				return nil
			},
		}
		service := NewParticipationService(participations, members, projects,
			testfixtures.NewIDGenerator("part").NextFunc(), nil)

		participation, err := service.Create(context.Background(), input)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if participation.ID != "part-1" {
			t.Fatalf("expected generated ID part-1, got %q", participation.ID)
		}
		if stored.FinalDate != project.EndDate {
			t.Fatalf("final date = %v, want project end %v", stored.FinalDate, project.EndDate)
		}
	})

	t.Run("rejects an unknown member", func(t *testing.T) {
		service := NewParticipationService(&participationRepoStub{}, &memberRepoStub{}, projects, nil, nil)
		bad := input
		bad.Registration = "zz999999a"
		if _, err := service.Create(context.Background(), bad); !errors.Is(err, ErrMemberNotFound) {
			t.Fatalf("expected member not found, got %v", err)
		}
	})

	t.Run("rejects an unknown project", func(t *testing.T) {
		service := NewParticipationService(&participationRepoStub{}, members, &projectRepoStub{}, nil, nil)
		if _, err := service.Create(context.Background(), input); !errors.Is(err, ErrProjectNotFound) {
			t.Fatalf("expected project not found, got %v", err)
		}
	})

	t.Run("rejects an initial date outside the project period", func(t *testing.T) {
		service := NewParticipationService(&participationRepoStub{}, members, projects, nil, nil)
		for _, date := range []string{"31/12/2023", "01/01/2025"} {
			bad := input
			bad.InitialDate = date
			if _, err := service.Create(context.Background(), bad); !errors.Is(err, ErrDateOutOfRange) {
				t.Fatalf("date %s: expected date out of range, got %v", date, err)
			}
		}
	})

	t.Run("accepts the project boundary dates", func(t *testing.T) {
		service := NewParticipationService(&participationRepoStub{}, members, projects, nil, nil)
		for _, date := range []string{"01/01/2024", "31/12/2024"} {
			ok := input
			ok.InitialDate = date
			if _, err := service.Create(context.Background(), ok); err != nil {
				t.Fatalf("date %s: expected acceptance, got %v", date, err)
			}
		}
	})

	t.Run("rejects a second enrolment on the same project", func(t *testing.T) {
		participations := &participationRepoStub{
			getParticipation: func(ctx context.Context, registration, projectID string) (domain.Participation, error) {
				return testfixtures.NewParticipationFixture(), nil
			},
		}
		service := NewParticipationService(participations, members, projects, nil, nil)
		if _, err := service.Create(context.Background(), input); !errors.Is(err, ErrParticipationAlreadyExists) {
			t.Fatalf("expected already-exists error, got %v", err)
		}
	})
}
