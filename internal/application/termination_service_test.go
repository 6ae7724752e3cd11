package application

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/example/extension-assistant/internal/clock"
	"github.com/example/extension-assistant/internal/domain"
	"github.com/example/extension-assistant/internal/testfixtures"
)

func TestApplyTermination(t *testing.T) {
	// Today is 05/03/2024; the fixture project runs the whole of 2024.
	clk := testfixtures.NewClock(time.Time{})
	member := testfixtures.NewMemberFixture()
	project := testfixtures.NewProjectFixture()
	coordinator := testfixtures.NewCoordinatorFixture()
	reason := strings.Repeat("Encerramento por conclusao das atividades previstas. ", 2)

	params := TerminationParams{
		Member:          member,
		Project:         project,
		Coordinator:     coordinator,
		TerminationDate: "30/06/2024",
		Reason:          reason,
	}

	activeParticipation := func() *participationRepoStub {
		return &participationRepoStub{
			getParticipation: func(ctx context.Context, registration, projectID string) (domain.Participation, error) {
				return testfixtures.NewParticipationFixture(), nil
			},
		}
	}

	t.Run("rewrites the final date and returns the statement data", func(t *testing.T) {
		var rewritten domain.Participation
		participations := activeParticipation()
		participations.upsertParticipation = func(ctx context.Context, participation domain.Participation) error {
			rewritten = participation
			return nil
		}
		service := NewTerminationService(participations, clk, nil)

		data, err := service.Apply(context.Background(), params)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		want := clock.Date{Day: 30, Month: 6, Year: 2024}
		if rewritten.FinalDate != want {
			t.Fatalf("rewritten final date = %v, want %v", rewritten.FinalDate, want)
		}
		if data.TerminationDate != want {
			t.Fatalf("statement termination date = %v, want %v", data.TerminationDate, want)
		}
		if data.IssuedOn != clk.Today() {
			t.Fatalf("statement issued on %v, want today %v", data.IssuedOn, clk.Today())
		}
	})

	t.Run("rejects when no participation exists in the server", func(t *testing.T) {
		service := NewTerminationService(&participationRepoStub{}, clk, nil)
		if _, err := service.Apply(context.Background(), params); !errors.Is(err, ErrParticipationNotInServer) {
			t.Fatalf("expected participation not found in server, got %v", err)
		}
	})

	t.Run("rejects a second termination", func(t *testing.T) {
		rewrites := 0
		participations := &participationRepoStub{
			getParticipation: func(ctx context.Context, registration, projectID string) (domain.Participation, error) {
				return testfixtures.NewParticipationFixture(
					testfixtures.WithParticipationFinalDate(clock.Date{Day: 1, Month: 3, Year: 2024})), nil
			},
			upsertParticipation: func(ctx context.Context, participation domain.Participation) error {
				rewrites++
				return nil
			},
		}
		service := NewTerminationService(participations, clk, nil)
		if _, err := service.Apply(context.Background(), params); !errors.Is(err, ErrParticipationClosed) {
			t.Fatalf("expected closed participation rejection, got %v", err)
		}
		if rewrites != 0 {
			t.Fatalf("expected the final date to stay untouched, got %d rewrites", rewrites)
		}
	})

	t.Run("rejects a past termination date", func(t *testing.T) {
		service := NewTerminationService(activeParticipation(), clk, nil)
		bad := params
		bad.TerminationDate = "04/03/2024"
		if _, err := service.Apply(context.Background(), bad); !errors.Is(err, ErrOutOfRangeTerminationDate) {
			t.Fatalf("expected termination date rejection, got %v", err)
		}
	})

	t.Run("rejects the project boundary dates", func(t *testing.T) {
		service := NewTerminationService(activeParticipation(), clk, nil)
		for _, date := range []string{"01/01/2024", "31/12/2024", "01/01/2025"} {
			bad := params
			bad.TerminationDate = date
			if _, err := service.Apply(context.Background(), bad); !errors.Is(err, ErrOutOfRangeTerminationDate) {
				t.Fatalf("date %s: expected termination date rejection, got %v", date, err)
			}
		}
	})

	t.Run("accepts today when inside the period", func(t *testing.T) {
		service := NewTerminationService(activeParticipation(), clk, nil)
		ok := params
		ok.TerminationDate = "05/03/2024"
		if _, err := service.Apply(context.Background(), ok); err != nil {
			t.Fatalf("expected today to be accepted, got %v", err)
		}
	})

	t.Run("rejects a reason outside the length bounds", func(t *testing.T) {
		service := NewTerminationService(activeParticipation(), clk, nil)
		bad := params
		bad.Reason = "curto demais"
		if _, err := service.Apply(context.Background(), bad); !errors.Is(err, ErrInvalidTextLength) {
			t.Fatalf("expected text length error, got %v", err)
		}
	})
}
