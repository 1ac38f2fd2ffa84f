package services

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/bhorvath/fixturegen/brackets"
	"github.com/bhorvath/fixturegen/models"
	"github.com/bhorvath/fixturegen/repositories"
)

type ScheduleService interface {
	// Replace swaps the tournament's weekly windows and start date in one
	// transaction. Passing an empty window set clears the schedule.
	Replace(ctx context.Context, userID, tournamentID int, input ScheduleInput) ([]models.ScheduleWindow, error)
	Get(ctx context.Context, tournamentID int) ([]models.ScheduleWindow, error)
}

type ScheduleInput struct {
	StartDate *time.Time            `json:"start_date"`
	Windows   []ScheduleWindowInput `json:"windows"`
}

type ScheduleWindowInput struct {
	DayOfWeek     string `json:"day_of_week"`
	StartTime     string `json:"start_time"`
	EndTime       string `json:"end_time"`
	MatchDuration *int   `json:"match_duration"`
}

type scheduleService struct {
	db             *sql.DB
	scheduleRepo   repositories.ScheduleRepository
	tournamentRepo repositories.TournamentRepository
}

func NewScheduleService(db *sql.DB, scheduleRepo repositories.ScheduleRepository, tournamentRepo repositories.TournamentRepository) ScheduleService {
	return &scheduleService{db: db, scheduleRepo: scheduleRepo, tournamentRepo: tournamentRepo}
}

func (s *scheduleService) Replace(ctx context.Context, userID, tournamentID int, input ScheduleInput) ([]models.ScheduleWindow, error) {
	if _, err := requireEditableTournament(ctx, s.tournamentRepo, userID, tournamentID); err != nil {
		return nil, err
	}

	windows := make([]models.ScheduleWindow, len(input.Windows))
	for i, w := range input.Windows {
		windows[i] = models.ScheduleWindow{
			TournamentID:  tournamentID,
			DayOfWeek:     w.DayOfWeek,
			StartTime:     w.StartTime,
			EndTime:       w.EndTime,
			MatchDuration: w.MatchDuration,
		}
	}

	// Reject windows with unknown day names before touching the database.
	if _, err := brackets.BuildScheduleSlots(windows); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidationFailed, err)
	}

	err := withTransaction(ctx, s.db, func(tx *sql.Tx) error {
		if err := s.scheduleRepo.Replace(ctx, tx, tournamentID, windows); err != nil {
			return fmt.Errorf("failed to replace schedule: %w", err)
		}
		if err := s.tournamentRepo.UpdateStartDate(ctx, tx, tournamentID, input.StartDate); err != nil {
			return fmt.Errorf("failed to update start date: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return windows, nil
}

func (s *scheduleService) Get(ctx context.Context, tournamentID int) ([]models.ScheduleWindow, error) {
	windows, err := s.scheduleRepo.ListByTournament(ctx, tournamentID)
	if err != nil {
		return nil, fmt.Errorf("failed to load schedule: %w", err)
	}
	return windows, nil
}
