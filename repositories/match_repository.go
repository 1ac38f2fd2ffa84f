package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/bhorvath/fixturegen/models"
)

var ErrMatchNotFound = errors.New("match not found")

type MatchRepository interface {
	// CreateBatch inserts the generated set in slice order and fills each
	// match's ID. Matches referenced through prerequisite links must appear
	// before the matches that depend on them.
	CreateBatch(ctx context.Context, exec SQLExecutor, matches []*models.Match) error
	GetByID(ctx context.Context, id int) (*models.Match, error)
	ListByTournament(ctx context.Context, tournamentID int) ([]*models.Match, error)
	UpdateResult(ctx context.Context, exec SQLExecutor, match *models.Match) error
	UpdateTeamSlot(ctx context.Context, exec SQLExecutor, matchID int, home bool, teamID int) error
	DeleteByTournament(ctx context.Context, exec SQLExecutor, tournamentID int) (int, error)
	ExistsByTournament(ctx context.Context, tournamentID int) (bool, error)
}

type postgresMatchRepository struct {
	db *sql.DB
}

func NewPostgresMatchRepository(db *sql.DB) MatchRepository {
	return &postgresMatchRepository{db: db}
}

func (r *postgresMatchRepository) getExecutor(exec SQLExecutor) SQLExecutor {
	if exec != nil {
		return exec
	}
	return r.db
}

const matchColumns = `
	id, tournament_id, home_team_id, away_team_id, round, bracket_type,
	home_score, away_score, winner_team_id, status, referee_id, venue_id,
	stadium_id, match_date, created_at, previous_match_1_id, previous_match_2_id`

func (r *postgresMatchRepository) CreateBatch(ctx context.Context, exec SQLExecutor, matches []*models.Match) error {
	executor := r.getExecutor(exec)
	query := `
		INSERT INTO matches (
			tournament_id, home_team_id, away_team_id, round, bracket_type,
			status, referee_id, venue_id, stadium_id, match_date,
			previous_match_1_id, previous_match_2_id
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING id, created_at`

	for _, match := range matches {
		err := executor.QueryRowContext(ctx, query,
			match.TournamentID, match.HomeTeamID, match.AwayTeamID,
			match.Round, match.BracketType, match.Status,
			match.RefereeID, match.VenueID, match.StadiumID, match.MatchDate,
			match.PreviousMatch1ID, match.PreviousMatch2ID,
		).Scan(&match.ID, &match.CreatedAt)
		if err != nil {
			return err
		}
	}
	return nil
}

func (r *postgresMatchRepository) GetByID(ctx context.Context, id int) (*models.Match, error) {
	query := `SELECT` + matchColumns + ` FROM matches WHERE id = $1`

	match, err := scanMatch(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrMatchNotFound
		}
		return nil, err
	}
	return match, nil
}

func (r *postgresMatchRepository) ListByTournament(ctx context.Context, tournamentID int) ([]*models.Match, error) {
	query := `SELECT` + matchColumns + `
		FROM matches
		WHERE tournament_id = $1
		ORDER BY round ASC, id ASC`

	rows, err := r.db.QueryContext(ctx, query, tournamentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	matches := make([]*models.Match, 0)
	for rows.Next() {
		match, scanErr := scanMatch(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		matches = append(matches, match)
	}
	return matches, rows.Err()
}

func (r *postgresMatchRepository) UpdateResult(ctx context.Context, exec SQLExecutor, match *models.Match) error {
	result, err := r.getExecutor(exec).ExecContext(ctx,
		`UPDATE matches
		SET home_score = $1, away_score = $2, winner_team_id = $3, status = $4
		WHERE id = $5`,
		match.HomeScore, match.AwayScore, match.WinnerTeamID, match.Status, match.ID)
	if err != nil {
		return err
	}
	return checkAffectedRows(result, ErrMatchNotFound)
}

func (r *postgresMatchRepository) UpdateTeamSlot(ctx context.Context, exec SQLExecutor, matchID int, home bool, teamID int) error {
	column := "away_team_id"
	if home {
		column = "home_team_id"
	}
	result, err := r.getExecutor(exec).ExecContext(ctx,
		`UPDATE matches SET `+column+` = $1 WHERE id = $2`, teamID, matchID)
	if err != nil {
		return err
	}
	return checkAffectedRows(result, ErrMatchNotFound)
}

func (r *postgresMatchRepository) DeleteByTournament(ctx context.Context, exec SQLExecutor, tournamentID int) (int, error) {
	result, err := r.getExecutor(exec).ExecContext(ctx,
		`DELETE FROM matches WHERE tournament_id = $1`, tournamentID)
	if err != nil {
		return 0, err
	}
	deleted, err := result.RowsAffected()
	return int(deleted), err
}

func (r *postgresMatchRepository) ExistsByTournament(ctx context.Context, tournamentID int) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM matches WHERE tournament_id = $1)`, tournamentID).Scan(&exists)
	return exists, err
}

func scanMatch(row rowScanner) (*models.Match, error) {
	match := &models.Match{}
	err := row.Scan(
		&match.ID, &match.TournamentID, &match.HomeTeamID, &match.AwayTeamID,
		&match.Round, &match.BracketType, &match.HomeScore, &match.AwayScore,
		&match.WinnerTeamID, &match.Status, &match.RefereeID, &match.VenueID,
		&match.StadiumID, &match.MatchDate, &match.CreatedAt,
		&match.PreviousMatch1ID, &match.PreviousMatch2ID,
	)
	if err != nil {
		return nil, err
	}
	return match, nil
}
