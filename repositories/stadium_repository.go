package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/bhorvath/fixturegen/models"
)

var ErrStadiumNotFound = errors.New("stadium not found")

type StadiumRepository interface {
	// Upsert creates or replaces the team's single home stadium.
	Upsert(ctx context.Context, stadium *models.Stadium) error
	GetByTeamID(ctx context.Context, teamID int) (*models.Stadium, error)
	DeleteByTeamID(ctx context.Context, teamID int) error
}

type postgresStadiumRepository struct {
	db *sql.DB
}

func NewPostgresStadiumRepository(db *sql.DB) StadiumRepository {
	return &postgresStadiumRepository{db: db}
}

func (r *postgresStadiumRepository) Upsert(ctx context.Context, stadium *models.Stadium) error {
	query := `
		INSERT INTO stadiums (team_id, name, capacity, address)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (team_id) DO UPDATE
		SET name = EXCLUDED.name, capacity = EXCLUDED.capacity, address = EXCLUDED.address
		RETURNING id`

	return r.db.QueryRowContext(ctx, query,
		stadium.TeamID, stadium.Name, stadium.Capacity, stadium.Address).Scan(&stadium.ID)
}

func (r *postgresStadiumRepository) GetByTeamID(ctx context.Context, teamID int) (*models.Stadium, error) {
	query := `
		SELECT id, team_id, name, capacity, address
		FROM stadiums
		WHERE team_id = $1`

	stadium := &models.Stadium{}
	err := r.db.QueryRowContext(ctx, query, teamID).Scan(
		&stadium.ID, &stadium.TeamID, &stadium.Name, &stadium.Capacity, &stadium.Address)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrStadiumNotFound
		}
		return nil, err
	}
	return stadium, nil
}

func (r *postgresStadiumRepository) DeleteByTeamID(ctx context.Context, teamID int) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM stadiums WHERE team_id = $1`, teamID)
	if err != nil {
		return err
	}
	return checkAffectedRows(result, ErrStadiumNotFound)
}
