package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bhorvath/fixturegen/models"
)

func newTournamentServiceFixture(tournament *models.Tournament) TournamentService {
	return NewTournamentService(
		&fakeTournamentRepo{tournament: tournament},
		&fakeTeamRepo{},
		&fakeRefereeRepo{},
		&fakeVenueRepo{},
		&fakeScheduleRepo{},
		&fakeMatchRepo{},
		nil,
	)
}

func TestCreateTournamentValidation(t *testing.T) {
	svc := newTournamentServiceFixture(nil)

	_, err := svc.Create(context.Background(), 1, CreateTournamentInput{Name: "   ", Format: models.FormatLeague})
	assert.ErrorIs(t, err, ErrTournamentNameRequired)

	_, err = svc.Create(context.Background(), 1, CreateTournamentInput{Name: "Cup", Format: models.FormatLeague})
	assert.ErrorIs(t, err, ErrTournamentNameTooShort)

	_, err = svc.Create(context.Background(), 1, CreateTournamentInput{Name: "Spring Cup", Format: "swiss"})
	assert.ErrorIs(t, err, ErrInvalidFormat)
}

func TestCreateTournamentDefaults(t *testing.T) {
	svc := newTournamentServiceFixture(nil)

	tournament, err := svc.Create(context.Background(), 1, CreateTournamentInput{
		Name:   "Spring Cup",
		Format: models.FormatLeague,
	})
	require.NoError(t, err)

	assert.Equal(t, models.StatusOnHold, tournament.Status)
	assert.Equal(t, 2, tournament.Rounds)
	assert.Equal(t, 3, tournament.PointsForWin)
	assert.Equal(t, 1, tournament.PointsForDraw)
	assert.Equal(t, 1, tournament.OwnerID)
}

func TestCreateTournamentEliminationSingleRound(t *testing.T) {
	svc := newTournamentServiceFixture(nil)

	rounds := 5
	tournament, err := svc.Create(context.Background(), 1, CreateTournamentInput{
		Name:   "Knockout Cup",
		Format: models.FormatKnockout,
		Rounds: &rounds,
	})
	require.NoError(t, err)
	assert.Equal(t, 1, tournament.Rounds)
}

func TestUpdateTournamentLocked(t *testing.T) {
	svc := newTournamentServiceFixture(&models.Tournament{
		ID:      10,
		OwnerID: 1,
		Name:    "Spring Cup",
		Format:  models.FormatLeague,
		Status:  models.StatusGenerated,
	})

	name := "Renamed Cup"
	_, err := svc.Update(context.Background(), 1, 10, UpdateTournamentInput{Name: &name})
	assert.ErrorIs(t, err, ErrTournamentLocked)
}

func TestUpdateTournamentForbidden(t *testing.T) {
	svc := newTournamentServiceFixture(&models.Tournament{
		ID:      10,
		OwnerID: 1,
		Name:    "Spring Cup",
		Format:  models.FormatLeague,
		Status:  models.StatusOnHold,
	})

	name := "Renamed Cup"
	_, err := svc.Update(context.Background(), 2, 10, UpdateTournamentInput{Name: &name})
	assert.ErrorIs(t, err, ErrForbiddenOperation)
}
