package repositories

import (
	"context"
	"database/sql"

	"github.com/bhorvath/fixturegen/models"
)

type ScheduleRepository interface {
	// Replace swaps the tournament's full window set for a new one. Runs
	// inside the caller's transaction together with the start date update.
	Replace(ctx context.Context, exec SQLExecutor, tournamentID int, windows []models.ScheduleWindow) error
	ListByTournament(ctx context.Context, tournamentID int) ([]models.ScheduleWindow, error)
}

type postgresScheduleRepository struct {
	db *sql.DB
}

func NewPostgresScheduleRepository(db *sql.DB) ScheduleRepository {
	return &postgresScheduleRepository{db: db}
}

func (r *postgresScheduleRepository) Replace(ctx context.Context, exec SQLExecutor, tournamentID int, windows []models.ScheduleWindow) error {
	if exec == nil {
		exec = r.db
	}

	if _, err := exec.ExecContext(ctx,
		`DELETE FROM schedule_windows WHERE tournament_id = $1`, tournamentID); err != nil {
		return err
	}

	query := `
		INSERT INTO schedule_windows (tournament_id, day_of_week, start_time, end_time, match_duration)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`

	for i := range windows {
		w := &windows[i]
		w.TournamentID = tournamentID
		if err := exec.QueryRowContext(ctx, query,
			tournamentID, w.DayOfWeek, w.StartTime, w.EndTime, w.MatchDuration).Scan(&w.ID); err != nil {
			return err
		}
	}
	return nil
}

func (r *postgresScheduleRepository) ListByTournament(ctx context.Context, tournamentID int) ([]models.ScheduleWindow, error) {
	query := `
		SELECT id, tournament_id, day_of_week, start_time, end_time, match_duration
		FROM schedule_windows
		WHERE tournament_id = $1
		ORDER BY id ASC`

	rows, err := r.db.QueryContext(ctx, query, tournamentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	windows := make([]models.ScheduleWindow, 0)
	for rows.Next() {
		var w models.ScheduleWindow
		if scanErr := rows.Scan(&w.ID, &w.TournamentID, &w.DayOfWeek, &w.StartTime, &w.EndTime, &w.MatchDuration); scanErr != nil {
			return nil, scanErr
		}
		windows = append(windows, w)
	}
	return windows, rows.Err()
}
