package brackets

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bhorvath/fixturegen/models"
)

func bracketMatch(id int, bracket models.BracketType, prev1, prev2 *int) *models.Match {
	bt := bracket
	m := &models.Match{ID: id, Status: models.MatchStatusScheduled, PreviousMatch1ID: prev1, PreviousMatch2ID: prev2}
	if bracket != "" {
		m.BracketType = &bt
	}
	return m
}

func applyAll(advancements []Advancement) {
	for _, a := range advancements {
		a.Apply()
	}
}

func TestBuildDependentsIndex(t *testing.T) {
	semi1 := bracketMatch(1, models.BracketWinner, nil, nil)
	semi2 := bracketMatch(2, models.BracketWinner, nil, nil)
	final := bracketMatch(3, models.BracketFinal, intPtr(1), intPtr(2))
	third := bracketMatch(4, models.BracketThirdPlace, intPtr(1), intPtr(2))

	index := BuildDependentsIndex([]*models.Match{semi1, semi2, final, third})

	assert.ElementsMatch(t, []*models.Match{final, third}, index[1])
	assert.ElementsMatch(t, []*models.Match{final, third}, index[2])
	assert.Empty(t, index[3])
}

// Four-team knockout: submitting both semifinal results fills the final's
// home and away slots with the respective winners.
func TestPlanAdvancements_KnockoutSemisFeedFinal(t *testing.T) {
	semi1 := bracketMatch(1, models.BracketWinner, nil, nil)
	semi2 := bracketMatch(2, models.BracketWinner, nil, nil)
	final := bracketMatch(3, models.BracketFinal, intPtr(1), intPtr(2))
	index := BuildDependentsIndex([]*models.Match{semi1, semi2, final})

	applyAll(PlanAdvancements(semi1, 10, 11, index[semi1.ID]))
	require.NotNil(t, final.HomeTeamID)
	assert.Equal(t, 10, *final.HomeTeamID)
	assert.Nil(t, final.AwayTeamID) // partial fill is expected

	applyAll(PlanAdvancements(semi2, 12, 13, index[semi2.ID]))
	require.NotNil(t, final.AwayTeamID)
	assert.Equal(t, 12, *final.AwayTeamID)
}

func TestPlanAdvancements_SemifinalLoserDropsToThirdPlace(t *testing.T) {
	semi1 := bracketMatch(1, models.BracketWinner, nil, nil)
	semi2 := bracketMatch(2, models.BracketWinner, nil, nil)
	final := bracketMatch(3, models.BracketFinal, intPtr(1), intPtr(2))
	third := bracketMatch(4, models.BracketThirdPlace, intPtr(1), intPtr(2))
	index := BuildDependentsIndex([]*models.Match{semi1, semi2, final, third})

	applyAll(PlanAdvancements(semi1, 10, 11, index[semi1.ID]))
	applyAll(PlanAdvancements(semi2, 12, 13, index[semi2.ID]))

	assert.Equal(t, 10, *final.HomeTeamID)
	assert.Equal(t, 12, *final.AwayTeamID)
	assert.Equal(t, 11, *third.HomeTeamID)
	assert.Equal(t, 13, *third.AwayTeamID)
}

func TestPlanAdvancements_Idempotent(t *testing.T) {
	semi1 := bracketMatch(1, models.BracketWinner, nil, nil)
	final := bracketMatch(3, models.BracketFinal, intPtr(1), intPtr(2))
	index := BuildDependentsIndex([]*models.Match{semi1, final})

	first := PlanAdvancements(semi1, 10, 11, index[semi1.ID])
	applyAll(first)
	second := PlanAdvancements(semi1, 10, 11, index[semi1.ID])
	applyAll(second)

	assert.Equal(t, first, second)
	assert.Equal(t, 10, *final.HomeTeamID)
}

func TestPlanAdvancements_TerminalBranches(t *testing.T) {
	final := bracketMatch(1, models.BracketFinal, nil, nil)
	third := bracketMatch(2, models.BracketThirdPlace, nil, nil)
	dangling := bracketMatch(3, models.BracketWinner, intPtr(1), intPtr(2))
	index := BuildDependentsIndex([]*models.Match{final, third, dangling})

	assert.Empty(t, PlanAdvancements(final, 10, 11, index[final.ID]))
	assert.Empty(t, PlanAdvancements(third, 12, 13, index[third.ID]))
}

// Full four-team double elimination: every completed match pushes its winner
// and loser into the right downstream slots until the grand final is set.
func TestPlanAdvancements_DoubleEliminationFlow(t *testing.T) {
	w1a := bracketMatch(1, models.BracketWinner, nil, nil)
	w1b := bracketMatch(2, models.BracketWinner, nil, nil)
	wf := bracketMatch(3, models.BracketWinner, intPtr(1), intPtr(2))
	l1 := bracketMatch(4, models.BracketLoser, intPtr(1), intPtr(2))
	lf := bracketMatch(5, models.BracketLoser, intPtr(4), intPtr(3))
	final := bracketMatch(6, models.BracketFinal, intPtr(3), intPtr(5))
	index := BuildDependentsIndex([]*models.Match{w1a, w1b, wf, l1, lf, final})

	applyAll(PlanAdvancements(w1a, 1, 2, index[w1a.ID]))
	applyAll(PlanAdvancements(w1b, 3, 4, index[w1b.ID]))

	assert.Equal(t, 1, *wf.HomeTeamID)
	assert.Equal(t, 3, *wf.AwayTeamID)
	assert.Equal(t, 2, *l1.HomeTeamID)
	assert.Equal(t, 4, *l1.AwayTeamID)

	// winners final: winner reaches the grand final, loser drops down
	applyAll(PlanAdvancements(wf, 1, 3, index[wf.ID]))
	assert.Equal(t, 1, *final.HomeTeamID)
	assert.Equal(t, 3, *lf.AwayTeamID)

	// losers bracket winner climbs to the losers final
	applyAll(PlanAdvancements(l1, 2, 4, index[l1.ID]))
	assert.Equal(t, 2, *lf.HomeTeamID)

	// losers final winner takes the grand final away slot
	applyAll(PlanAdvancements(lf, 2, 3, index[lf.ID]))
	assert.Equal(t, 2, *final.AwayTeamID)
}

func TestPlanAdvancements_UntaggedBracket(t *testing.T) {
	m := bracketMatch(1, "", nil, nil)
	other := bracketMatch(2, "", nil, nil)
	next := bracketMatch(3, "", intPtr(1), intPtr(2))
	third := bracketMatch(4, models.BracketThirdPlace, intPtr(1), intPtr(2))
	index := BuildDependentsIndex([]*models.Match{m, other, next, third})

	applyAll(PlanAdvancements(m, 10, 11, index[m.ID]))

	assert.Equal(t, 10, *next.HomeTeamID)
	assert.Equal(t, 11, *third.HomeTeamID)
}
