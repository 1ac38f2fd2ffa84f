package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/bhorvath/fixturegen/models"
)

var ErrVenueNotFound = errors.New("venue not found")

type VenueRepository interface {
	Create(ctx context.Context, venue *models.Venue) error
	Update(ctx context.Context, venue *models.Venue) error
	Delete(ctx context.Context, tournamentID, id int) error
	ListByTournament(ctx context.Context, tournamentID int) ([]*models.Venue, error)
}

type postgresVenueRepository struct {
	db *sql.DB
}

func NewPostgresVenueRepository(db *sql.DB) VenueRepository {
	return &postgresVenueRepository{db: db}
}

func (r *postgresVenueRepository) Create(ctx context.Context, venue *models.Venue) error {
	query := `
		INSERT INTO venues (tournament_id, name, capacity, address)
		VALUES ($1, $2, $3, $4)
		RETURNING id`

	return r.db.QueryRowContext(ctx, query,
		venue.TournamentID, venue.Name, venue.Capacity, venue.Address).Scan(&venue.ID)
}

func (r *postgresVenueRepository) Update(ctx context.Context, venue *models.Venue) error {
	result, err := r.db.ExecContext(ctx,
		`UPDATE venues SET name = $1, capacity = $2, address = $3 WHERE id = $4 AND tournament_id = $5`,
		venue.Name, venue.Capacity, venue.Address, venue.ID, venue.TournamentID)
	if err != nil {
		return err
	}
	return checkAffectedRows(result, ErrVenueNotFound)
}

func (r *postgresVenueRepository) Delete(ctx context.Context, tournamentID, id int) error {
	result, err := r.db.ExecContext(ctx,
		`DELETE FROM venues WHERE id = $1 AND tournament_id = $2`, id, tournamentID)
	if err != nil {
		return err
	}
	return checkAffectedRows(result, ErrVenueNotFound)
}

func (r *postgresVenueRepository) ListByTournament(ctx context.Context, tournamentID int) ([]*models.Venue, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, tournament_id, name, capacity, address FROM venues WHERE tournament_id = $1 ORDER BY id ASC`,
		tournamentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	venues := make([]*models.Venue, 0)
	for rows.Next() {
		venue := &models.Venue{}
		if scanErr := rows.Scan(&venue.ID, &venue.TournamentID, &venue.Name, &venue.Capacity, &venue.Address); scanErr != nil {
			return nil, scanErr
		}
		venues = append(venues, venue)
	}
	return venues, rows.Err()
}
