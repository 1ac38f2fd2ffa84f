package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bhorvath/fixturegen/models"
)

func intPtr(v int) *int { return &v }

func scheduledMatch(home, away int) *models.Match {
	return &models.Match{
		ID:           1,
		TournamentID: 10,
		HomeTeamID:   &home,
		AwayTeamID:   &away,
		Status:       models.MatchStatusScheduled,
	}
}

func TestComputeOutcomeHomeWin(t *testing.T) {
	match := scheduledMatch(7, 9)

	winner, loser, err := computeOutcome(match, models.FormatLeague, ResultInput{
		HomeScore: intPtr(3),
		AwayScore: intPtr(1),
	})

	require.NoError(t, err)
	assert.Equal(t, 7, *winner)
	assert.Equal(t, 9, *loser)
}

func TestComputeOutcomeAwayWin(t *testing.T) {
	match := scheduledMatch(7, 9)

	winner, loser, err := computeOutcome(match, models.FormatKnockout, ResultInput{
		HomeScore: intPtr(0),
		AwayScore: intPtr(2),
	})

	require.NoError(t, err)
	assert.Equal(t, 9, *winner)
	assert.Equal(t, 7, *loser)
}

func TestComputeOutcomeLeagueDraw(t *testing.T) {
	match := scheduledMatch(7, 9)

	winner, loser, err := computeOutcome(match, models.FormatLeague, ResultInput{
		HomeScore: intPtr(2),
		AwayScore: intPtr(2),
	})

	require.NoError(t, err)
	assert.Nil(t, winner)
	assert.Nil(t, loser)
}

func TestComputeOutcomeEliminationDrawRejected(t *testing.T) {
	match := scheduledMatch(7, 9)

	_, _, err := computeOutcome(match, models.FormatKnockout, ResultInput{
		HomeScore: intPtr(1),
		AwayScore: intPtr(1),
	})
	assert.ErrorIs(t, err, ErrDrawNotAllowed)

	// A tagged match rejects draws even in a league tournament.
	bracket := models.BracketWinner
	match.BracketType = &bracket
	_, _, err = computeOutcome(match, models.FormatLeague, ResultInput{
		HomeScore: intPtr(1),
		AwayScore: intPtr(1),
	})
	assert.ErrorIs(t, err, ErrDrawNotAllowed)
}

func TestComputeOutcomeValidation(t *testing.T) {
	match := scheduledMatch(7, 9)

	_, _, err := computeOutcome(match, models.FormatLeague, ResultInput{HomeScore: intPtr(1)})
	assert.ErrorIs(t, err, ErrScoresRequired)

	_, _, err = computeOutcome(match, models.FormatLeague, ResultInput{
		HomeScore: intPtr(-1),
		AwayScore: intPtr(0),
	})
	assert.ErrorIs(t, err, ErrNegativeScore)
}

func TestComputeOutcomeResubmission(t *testing.T) {
	match := scheduledMatch(7, 9)

	first, _, err := computeOutcome(match, models.FormatKnockout, ResultInput{
		HomeScore: intPtr(2),
		AwayScore: intPtr(1),
	})
	require.NoError(t, err)
	match.HomeScore = intPtr(2)
	match.AwayScore = intPtr(1)
	match.WinnerTeamID = first
	match.Status = models.MatchStatusOver

	// Repeating the same final score is accepted and resolves identically.
	second, loser, err := computeOutcome(match, models.FormatKnockout, ResultInput{
		HomeScore: intPtr(2),
		AwayScore: intPtr(1),
	})
	require.NoError(t, err)
	assert.Equal(t, *first, *second)
	assert.Equal(t, 9, *loser)
}

func TestComputeOutcomeParticipantsUndecided(t *testing.T) {
	match := scheduledMatch(7, 9)
	match.AwayTeamID = nil

	_, _, err := computeOutcome(match, models.FormatKnockout, ResultInput{
		HomeScore: intPtr(1),
		AwayScore: intPtr(0),
	})
	assert.ErrorIs(t, err, ErrMatchNotReady)
}
