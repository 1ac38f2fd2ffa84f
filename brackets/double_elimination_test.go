package brackets

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bhorvath/fixturegen/models"
)

func TestBuildDoubleElimination_RejectsUnsupportedSizes(t *testing.T) {
	for _, n := range []int{2, 3, 5, 6, 7, 9, 16} {
		_, err := BuildDoubleElimination(DoubleEliminationParams{
			Teams:    makeTeams(n),
			Venues:   makeVenues(1),
			Referees: makeReferees(1),
			Dates:    testSequencer(t),
		})
		assert.ErrorIs(t, err, ErrDoubleEliminationSize, "size %d", n)
	}
}

func TestBuildDoubleElimination_FourTeams(t *testing.T) {
	matches, err := BuildDoubleElimination(DoubleEliminationParams{
		Teams:    makeTeams(4),
		Venues:   makeVenues(2),
		Referees: makeReferees(2),
		Dates:    testSequencer(t),
	})
	require.NoError(t, err)
	require.Len(t, matches, 6)

	w1a, w1b, wf, l1, lf, final := matches[0], matches[1], matches[2], matches[3], matches[4], matches[5]

	assert.Equal(t, models.BracketWinner, w1a.Bracket)
	assert.Equal(t, models.BracketWinner, wf.Bracket)
	assert.Equal(t, models.BracketLoser, l1.Bracket)
	assert.Equal(t, models.BracketLoser, lf.Bracket)
	assert.Equal(t, models.BracketFinal, final.Bracket)

	assert.Equal(t, 1, w1a.Round)
	assert.Equal(t, 1, w1b.Round)
	assert.Equal(t, 2, wf.Round)
	assert.Equal(t, 2, l1.Round)
	assert.Equal(t, 3, lf.Round)
	assert.Equal(t, 4, final.Round)

	// winners final and losers opener share the round 1 pair
	assert.Same(t, w1a, wf.Prev1)
	assert.Same(t, w1b, wf.Prev2)
	assert.Same(t, w1a, l1.Prev1)
	assert.Same(t, w1b, l1.Prev2)

	// losers final: losers bracket winner vs winners final loser
	assert.Same(t, l1, lf.Prev1)
	assert.Same(t, wf, lf.Prev2)

	assert.Same(t, wf, final.Prev1)
	assert.Same(t, lf, final.Prev2)
}

func TestBuildDoubleElimination_EightTeams(t *testing.T) {
	matches, err := BuildDoubleElimination(DoubleEliminationParams{
		Teams:    makeTeams(8),
		Venues:   makeVenues(3),
		Referees: makeReferees(3),
		Dates:    testSequencer(t),
	})
	require.NoError(t, err)
	require.Len(t, matches, 14)

	counts := byRoundAndBracket(matches)
	assert.Equal(t, 4, counts[1][models.BracketWinner])
	assert.Equal(t, 2, counts[1][models.BracketLoser])
	assert.Equal(t, 2, counts[2][models.BracketWinner])
	assert.Equal(t, 2, counts[2][models.BracketLoser])
	assert.Equal(t, 1, counts[3][models.BracketWinner])
	assert.Equal(t, 1, counts[3][models.BracketLoser])
	assert.Equal(t, 1, counts[4][models.BracketLoser])
	assert.Equal(t, 1, counts[5][models.BracketFinal])

	w1 := matches[0:4]
	l1 := matches[4:6]
	w2 := matches[6:8]
	l2 := matches[8:10]
	wf, l3, lf, final := matches[10], matches[11], matches[12], matches[13]

	assert.Same(t, w1[0], w2[0].Prev1)
	assert.Same(t, w1[1], w2[0].Prev2)
	assert.Same(t, w1[2], w2[1].Prev1)
	assert.Same(t, w1[3], w2[1].Prev2)
	assert.Same(t, w2[0], wf.Prev1)
	assert.Same(t, w2[1], wf.Prev2)

	assert.Same(t, w1[0], l1[0].Prev1)
	assert.Same(t, w1[1], l1[0].Prev2)
	assert.Same(t, w1[2], l1[1].Prev1)
	assert.Same(t, w1[3], l1[1].Prev2)

	// each losers tier pairs the surviving loser with the fresh drop-down
	assert.Same(t, l1[0], l2[0].Prev1)
	assert.Same(t, w2[0], l2[0].Prev2)
	assert.Same(t, l1[1], l2[1].Prev1)
	assert.Same(t, w2[1], l2[1].Prev2)
	assert.Same(t, l2[0], l3.Prev1)
	assert.Same(t, l2[1], l3.Prev2)
	assert.Same(t, l3, lf.Prev1)
	assert.Same(t, wf, lf.Prev2)

	assert.Same(t, wf, final.Prev1)
	assert.Same(t, lf, final.Prev2)

	// round 1 winners matches consume all 8 teams
	seen := make(map[int]bool)
	for _, m := range w1 {
		require.NotNil(t, m.HomeTeam)
		require.NotNil(t, m.AwayTeam)
		seen[m.HomeTeam.ID] = true
		seen[m.AwayTeam.ID] = true
	}
	assert.Len(t, seen, 8)
}
