package brackets

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bhorvath/fixturegen/models"
)

func makeVenues(n int) []*models.Venue {
	venues := make([]*models.Venue, n)
	for i := range venues {
		venues[i] = &models.Venue{ID: 100 + i}
	}
	return venues
}

func makeReferees(n int) []*models.Referee {
	referees := make([]*models.Referee, n)
	for i := range referees {
		referees[i] = &models.Referee{ID: 200 + i}
	}
	return referees
}

func testSequencer(t *testing.T) *SimpleSequencer {
	t.Helper()
	seq, err := NewSimpleSequencer(monday, []ScheduleSlot{
		{DayOfWeek: time.Saturday, Times: []string{"10:00"}},
		{DayOfWeek: time.Sunday, Times: []string{"14:00"}},
	})
	require.NoError(t, err)
	return seq
}

func byRoundAndBracket(matches []*PlannedMatch) map[int]map[models.BracketType]int {
	out := make(map[int]map[models.BracketType]int)
	for _, m := range matches {
		if out[m.Round] == nil {
			out[m.Round] = make(map[models.BracketType]int)
		}
		out[m.Round][m.Bracket]++
	}
	return out
}

func TestBuildSingleElimination_EightTeams(t *testing.T) {
	matches, err := BuildSingleElimination(SingleEliminationParams{
		Teams:    makeTeams(8),
		Venues:   makeVenues(2),
		Referees: makeReferees(3),
		Dates:    testSequencer(t),
	})
	require.NoError(t, err)
	require.Len(t, matches, 7)

	counts := byRoundAndBracket(matches)
	assert.Equal(t, 4, counts[1][models.BracketWinner])
	assert.Equal(t, 2, counts[2][models.BracketWinner])
	assert.Equal(t, 1, counts[3][models.BracketFinal])

	final := matches[6]
	require.Equal(t, models.BracketFinal, final.Bracket)
	assert.Same(t, matches[4], final.Prev1)
	assert.Same(t, matches[5], final.Prev2)
	assert.Nil(t, final.HomeTeam)
	assert.Nil(t, final.AwayTeam)

	// round 1 matches carry teams, no prerequisite links
	for _, m := range matches[:4] {
		require.NotNil(t, m.HomeTeam)
		require.NotNil(t, m.AwayTeam)
		assert.Nil(t, m.Prev1)
		assert.Nil(t, m.Prev2)
	}
}

func TestBuildSingleElimination_ThirdPlaceFedBySemifinals(t *testing.T) {
	matches, err := BuildSingleElimination(SingleEliminationParams{
		Teams:          makeTeams(8),
		Venues:         makeVenues(1),
		Referees:       makeReferees(1),
		Dates:          testSequencer(t),
		WithThirdPlace: true,
	})
	require.NoError(t, err)
	require.Len(t, matches, 8)

	third := matches[7]
	require.Equal(t, models.BracketThirdPlace, third.Bracket)
	assert.Equal(t, 3, third.Round)
	assert.Same(t, matches[4], third.Prev1)
	assert.Same(t, matches[5], third.Prev2)
}

func TestBuildSingleElimination_OddCountByesTrailingTeam(t *testing.T) {
	teams := makeTeams(5)
	matches, err := BuildSingleElimination(SingleEliminationParams{
		Teams:    teams,
		Venues:   makeVenues(1),
		Referees: makeReferees(1),
		Dates:    testSequencer(t),
	})
	require.NoError(t, err)
	require.Len(t, matches, 4)

	// the fifth team byes through rounds 1 and 2 and enters the final directly
	final := matches[3]
	require.Equal(t, models.BracketFinal, final.Bracket)
	assert.NotNil(t, final.Prev1)
	assert.Nil(t, final.Prev2)
	require.NotNil(t, final.AwayTeam)
	assert.Equal(t, teams[4].ID, final.AwayTeam.ID)
}

func TestBuildSingleElimination_NoThirdPlaceWithoutTwoSemis(t *testing.T) {
	matches, err := BuildSingleElimination(SingleEliminationParams{
		Teams:          makeTeams(2),
		Venues:         makeVenues(1),
		Referees:       makeReferees(1),
		Dates:          testSequencer(t),
		WithThirdPlace: true,
	})
	require.NoError(t, err)
	require.Len(t, matches, 1)
	assert.Equal(t, models.BracketFinal, matches[0].Bracket)
}

func TestBuildSingleElimination_AssignsVenuesRefereesAndDates(t *testing.T) {
	matches, err := BuildSingleElimination(SingleEliminationParams{
		Teams:    makeTeams(4),
		Venues:   makeVenues(2),
		Referees: makeReferees(3),
		Dates:    testSequencer(t),
	})
	require.NoError(t, err)
	require.Len(t, matches, 3)

	assert.Equal(t, 100, *matches[0].VenueID)
	assert.Equal(t, 101, *matches[1].VenueID)
	assert.Equal(t, 100, *matches[2].VenueID)
	assert.Equal(t, 200, *matches[0].RefereeID)
	assert.Equal(t, 201, *matches[1].RefereeID)
	assert.Equal(t, 202, *matches[2].RefereeID)

	// one simple-sequence step per match in creation order
	assert.True(t, matches[0].Date.Before(matches[1].Date))
	assert.True(t, matches[1].Date.Before(matches[2].Date))
}

func TestBuildSingleElimination_RejectsTooFewTeams(t *testing.T) {
	_, err := BuildSingleElimination(SingleEliminationParams{
		Teams:    makeTeams(1),
		Venues:   makeVenues(1),
		Referees: makeReferees(1),
		Dates:    testSequencer(t),
	})
	assert.ErrorIs(t, err, ErrNotEnoughTeams)
}
