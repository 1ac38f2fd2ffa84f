package services

import (
	"context"
	"time"

	"github.com/bhorvath/fixturegen/brackets"
	"github.com/bhorvath/fixturegen/models"
	"github.com/bhorvath/fixturegen/repositories"
)

type fakeUserRepo struct {
	createFn     func(ctx context.Context, user *models.User) error
	getByEmailFn func(ctx context.Context, email string) (*models.User, error)
	getByIDFn    func(ctx context.Context, id int) (*models.User, error)
}

func (f *fakeUserRepo) Create(ctx context.Context, user *models.User) error {
	if f.createFn == nil {
		return nil
	}
	return f.createFn(ctx, user)
}

func (f *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	if f.getByEmailFn == nil {
		return nil, repositories.ErrUserNotFound
	}
	return f.getByEmailFn(ctx, email)
}

func (f *fakeUserRepo) GetByID(ctx context.Context, id int) (*models.User, error) {
	if f.getByIDFn == nil {
		return nil, repositories.ErrUserNotFound
	}
	return f.getByIDFn(ctx, id)
}

type fakeTournamentRepo struct {
	tournament *models.Tournament
}

func (f *fakeTournamentRepo) Create(ctx context.Context, t *models.Tournament) error { return nil }

func (f *fakeTournamentRepo) GetByID(ctx context.Context, id int) (*models.Tournament, error) {
	if f.tournament == nil || f.tournament.ID != id {
		return nil, repositories.ErrTournamentNotFound
	}
	clone := *f.tournament
	return &clone, nil
}

func (f *fakeTournamentRepo) ListByOwner(ctx context.Context, ownerID int) ([]models.Tournament, error) {
	return nil, nil
}

func (f *fakeTournamentRepo) Update(ctx context.Context, t *models.Tournament) error { return nil }

func (f *fakeTournamentRepo) UpdateStatus(ctx context.Context, exec repositories.SQLExecutor, id int, status models.TournamentStatus) error {
	return nil
}

func (f *fakeTournamentRepo) UpdateStartDate(ctx context.Context, exec repositories.SQLExecutor, id int, startDate *time.Time) error {
	return nil
}

func (f *fakeTournamentRepo) UpdateLogoKey(ctx context.Context, id int, logoKey *string) error {
	return nil
}

func (f *fakeTournamentRepo) Delete(ctx context.Context, id int) error { return nil }

type fakeTeamRepo struct {
	teams []*models.Team
}

func (f *fakeTeamRepo) Create(ctx context.Context, team *models.Team) error { return nil }
func (f *fakeTeamRepo) Update(ctx context.Context, team *models.Team) error { return nil }

func (f *fakeTeamRepo) DeleteBatch(ctx context.Context, tournamentID int, ids []int) (int, error) {
	return len(ids), nil
}

func (f *fakeTeamRepo) GetByID(ctx context.Context, id int) (*models.Team, error) {
	for _, team := range f.teams {
		if team.ID == id {
			return team, nil
		}
	}
	return nil, repositories.ErrTeamNotFound
}

func (f *fakeTeamRepo) ListByTournament(ctx context.Context, tournamentID int) ([]*models.Team, error) {
	return f.teams, nil
}

func (f *fakeTeamRepo) UpdateCrestKey(ctx context.Context, id int, crestKey *string) error {
	return nil
}

type fakeRefereeRepo struct {
	referees []*models.Referee
}

func (f *fakeRefereeRepo) Create(ctx context.Context, referee *models.Referee) error { return nil }
func (f *fakeRefereeRepo) Update(ctx context.Context, referee *models.Referee) error { return nil }
func (f *fakeRefereeRepo) Delete(ctx context.Context, tournamentID, id int) error    { return nil }

func (f *fakeRefereeRepo) ListByTournament(ctx context.Context, tournamentID int) ([]*models.Referee, error) {
	return f.referees, nil
}

type fakeVenueRepo struct {
	venues []*models.Venue
}

func (f *fakeVenueRepo) Create(ctx context.Context, venue *models.Venue) error { return nil }
func (f *fakeVenueRepo) Update(ctx context.Context, venue *models.Venue) error { return nil }
func (f *fakeVenueRepo) Delete(ctx context.Context, tournamentID, id int) error {
	return nil
}

func (f *fakeVenueRepo) ListByTournament(ctx context.Context, tournamentID int) ([]*models.Venue, error) {
	return f.venues, nil
}

type fakeScheduleRepo struct {
	windows []models.ScheduleWindow
}

func (f *fakeScheduleRepo) Replace(ctx context.Context, exec repositories.SQLExecutor, tournamentID int, windows []models.ScheduleWindow) error {
	f.windows = windows
	return nil
}

func (f *fakeScheduleRepo) ListByTournament(ctx context.Context, tournamentID int) ([]models.ScheduleWindow, error) {
	return f.windows, nil
}

type fakeMatchRepo struct {
	matches []*models.Match
}

func (f *fakeMatchRepo) CreateBatch(ctx context.Context, exec repositories.SQLExecutor, matches []*models.Match) error {
	return nil
}

func (f *fakeMatchRepo) GetByID(ctx context.Context, id int) (*models.Match, error) {
	for _, match := range f.matches {
		if match.ID == id {
			return match, nil
		}
	}
	return nil, repositories.ErrMatchNotFound
}

func (f *fakeMatchRepo) ListByTournament(ctx context.Context, tournamentID int) ([]*models.Match, error) {
	return f.matches, nil
}

func (f *fakeMatchRepo) UpdateResult(ctx context.Context, exec repositories.SQLExecutor, match *models.Match) error {
	return nil
}

func (f *fakeMatchRepo) UpdateTeamSlot(ctx context.Context, exec repositories.SQLExecutor, matchID int, home bool, teamID int) error {
	return nil
}

func (f *fakeMatchRepo) DeleteByTournament(ctx context.Context, exec repositories.SQLExecutor, tournamentID int) (int, error) {
	return len(f.matches), nil
}

func (f *fakeMatchRepo) ExistsByTournament(ctx context.Context, tournamentID int) (bool, error) {
	return len(f.matches) > 0, nil
}

type fakeHub struct {
	messages []brackets.Message
}

func (f *fakeHub) BroadcastToRoom(roomID string, message brackets.Message) {
	f.messages = append(f.messages, message)
}
