package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/bhorvath/fixturegen/models"
)

var ErrRefereeNotFound = errors.New("referee not found")

type RefereeRepository interface {
	Create(ctx context.Context, referee *models.Referee) error
	Update(ctx context.Context, referee *models.Referee) error
	Delete(ctx context.Context, tournamentID, id int) error
	ListByTournament(ctx context.Context, tournamentID int) ([]*models.Referee, error)
}

type postgresRefereeRepository struct {
	db *sql.DB
}

func NewPostgresRefereeRepository(db *sql.DB) RefereeRepository {
	return &postgresRefereeRepository{db: db}
}

func (r *postgresRefereeRepository) Create(ctx context.Context, referee *models.Referee) error {
	query := `
		INSERT INTO referees (tournament_id, name)
		VALUES ($1, $2)
		RETURNING id`

	return r.db.QueryRowContext(ctx, query, referee.TournamentID, referee.Name).Scan(&referee.ID)
}

func (r *postgresRefereeRepository) Update(ctx context.Context, referee *models.Referee) error {
	result, err := r.db.ExecContext(ctx,
		`UPDATE referees SET name = $1 WHERE id = $2 AND tournament_id = $3`,
		referee.Name, referee.ID, referee.TournamentID)
	if err != nil {
		return err
	}
	return checkAffectedRows(result, ErrRefereeNotFound)
}

func (r *postgresRefereeRepository) Delete(ctx context.Context, tournamentID, id int) error {
	result, err := r.db.ExecContext(ctx,
		`DELETE FROM referees WHERE id = $1 AND tournament_id = $2`, id, tournamentID)
	if err != nil {
		return err
	}
	return checkAffectedRows(result, ErrRefereeNotFound)
}

func (r *postgresRefereeRepository) ListByTournament(ctx context.Context, tournamentID int) ([]*models.Referee, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, tournament_id, name FROM referees WHERE tournament_id = $1 ORDER BY id ASC`,
		tournamentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	referees := make([]*models.Referee, 0)
	for rows.Next() {
		referee := &models.Referee{}
		if scanErr := rows.Scan(&referee.ID, &referee.TournamentID, &referee.Name); scanErr != nil {
			return nil, scanErr
		}
		referees = append(referees, referee)
	}
	return referees, rows.Err()
}
