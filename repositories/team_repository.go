package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/lib/pq"

	"github.com/bhorvath/fixturegen/models"
)

var (
	ErrTeamNotFound          = errors.New("team not found")
	ErrTeamTournamentInvalid = errors.New("invalid team tournament reference")
)

type TeamRepository interface {
	Create(ctx context.Context, team *models.Team) error
	Update(ctx context.Context, team *models.Team) error
	DeleteBatch(ctx context.Context, tournamentID int, ids []int) (int, error)
	GetByID(ctx context.Context, id int) (*models.Team, error)
	ListByTournament(ctx context.Context, tournamentID int) ([]*models.Team, error)
	UpdateCrestKey(ctx context.Context, id int, crestKey *string) error
}

type postgresTeamRepository struct {
	db *sql.DB
}

func NewPostgresTeamRepository(db *sql.DB) TeamRepository {
	return &postgresTeamRepository{db: db}
}

func (r *postgresTeamRepository) Create(ctx context.Context, team *models.Team) error {
	query := `
		INSERT INTO teams (tournament_id, name)
		VALUES ($1, $2)
		RETURNING id, created_at`

	err := r.db.QueryRowContext(ctx, query, team.TournamentID, team.Name).
		Scan(&team.ID, &team.CreatedAt)
	return r.handleTeamError(err)
}

func (r *postgresTeamRepository) Update(ctx context.Context, team *models.Team) error {
	result, err := r.db.ExecContext(ctx,
		`UPDATE teams SET name = $1 WHERE id = $2 AND tournament_id = $3`,
		team.Name, team.ID, team.TournamentID)
	if err != nil {
		return err
	}
	return checkAffectedRows(result, ErrTeamNotFound)
}

func (r *postgresTeamRepository) DeleteBatch(ctx context.Context, tournamentID int, ids []int) (int, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	result, err := r.db.ExecContext(ctx,
		`DELETE FROM teams WHERE tournament_id = $1 AND id = ANY($2)`,
		tournamentID, pq.Array(ids))
	if err != nil {
		return 0, err
	}
	deleted, err := result.RowsAffected()
	return int(deleted), err
}

func (r *postgresTeamRepository) GetByID(ctx context.Context, id int) (*models.Team, error) {
	query := `
		SELECT t.id, t.tournament_id, t.name, t.created_at, t.crest_key,
			s.id, s.name, s.capacity, s.address
		FROM teams t
		LEFT JOIN stadiums s ON s.team_id = t.id
		WHERE t.id = $1`

	team, err := scanTeam(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrTeamNotFound
		}
		return nil, err
	}
	return team, nil
}

func (r *postgresTeamRepository) ListByTournament(ctx context.Context, tournamentID int) ([]*models.Team, error) {
	query := `
		SELECT t.id, t.tournament_id, t.name, t.created_at, t.crest_key,
			s.id, s.name, s.capacity, s.address
		FROM teams t
		LEFT JOIN stadiums s ON s.team_id = t.id
		WHERE t.tournament_id = $1
		ORDER BY t.id ASC`

	rows, err := r.db.QueryContext(ctx, query, tournamentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	teams := make([]*models.Team, 0)
	for rows.Next() {
		team, scanErr := scanTeam(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		teams = append(teams, team)
	}
	return teams, rows.Err()
}

func (r *postgresTeamRepository) UpdateCrestKey(ctx context.Context, id int, crestKey *string) error {
	result, err := r.db.ExecContext(ctx,
		`UPDATE teams SET crest_key = $1 WHERE id = $2`, crestKey, id)
	if err != nil {
		return err
	}
	return checkAffectedRows(result, ErrTeamNotFound)
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanTeam(row rowScanner) (*models.Team, error) {
	team := &models.Team{}
	var stadiumID sql.NullInt64
	var stadiumName sql.NullString
	var stadiumCapacity sql.NullInt64
	var stadiumAddress sql.NullString

	err := row.Scan(
		&team.ID, &team.TournamentID, &team.Name, &team.CreatedAt, &team.CrestKey,
		&stadiumID, &stadiumName, &stadiumCapacity, &stadiumAddress,
	)
	if err != nil {
		return nil, err
	}

	if stadiumID.Valid {
		team.Stadium = &models.Stadium{
			ID:     int(stadiumID.Int64),
			TeamID: team.ID,
			Name:   stadiumName.String,
		}
		if stadiumCapacity.Valid {
			capacity := int(stadiumCapacity.Int64)
			team.Stadium.Capacity = &capacity
		}
		if stadiumAddress.Valid {
			address := stadiumAddress.String
			team.Stadium.Address = &address
		}
	}
	return team, nil
}

func (r *postgresTeamRepository) handleTeamError(err error) error {
	if err == nil {
		return nil
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == "23503" {
		if pqErr.Constraint == "teams_tournament_id_fkey" {
			return ErrTeamTournamentInvalid
		}
	}
	return err
}
