package brackets

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bhorvath/fixturegen/models"
)

func makeTeams(n int) []*models.Team {
	teams := make([]*models.Team, n)
	for i := range teams {
		teams[i] = &models.Team{ID: i + 1, Name: fmt.Sprintf("Team %d", i+1)}
	}
	return teams
}

func pairKey(a, b int) string {
	if a > b {
		a, b = b, a
	}
	return fmt.Sprintf("%d-%d", a, b)
}

func TestGenerateBergerRounds_EvenSingleCycle(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	rounds := GenerateBergerRounds(rng, makeTeams(6), 1)

	require.Len(t, rounds, 5)

	seen := make(map[string]int)
	for _, round := range rounds {
		require.Len(t, round, 3)

		perRound := make(map[int]bool)
		for _, p := range round {
			assert.False(t, perRound[p.Home.ID], "team %d plays twice in one round", p.Home.ID)
			assert.False(t, perRound[p.Away.ID], "team %d plays twice in one round", p.Away.ID)
			perRound[p.Home.ID] = true
			perRound[p.Away.ID] = true
			seen[pairKey(p.Home.ID, p.Away.ID)]++
		}
	}

	// 15 distinct pairings, none repeated
	assert.Len(t, seen, 15)
	for key, count := range seen {
		assert.Equal(t, 1, count, "pair %s repeated", key)
	}
}

func TestGenerateBergerRounds_OddCountSitsOneTeamOut(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	rounds := GenerateBergerRounds(rng, makeTeams(5), 1)

	require.Len(t, rounds, 5)
	for _, round := range rounds {
		require.Len(t, round, 2)
		for _, p := range round {
			require.NotNil(t, p.Home)
			require.NotNil(t, p.Away)
		}
	}
}

func TestGenerateBergerRounds_TwoCyclesMirrorHomeAndAway(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	rounds := GenerateBergerRounds(rng, makeTeams(4), 2)

	require.Len(t, rounds, 6)

	firstLeg := make(map[string]bool)
	for _, round := range rounds[:3] {
		for _, p := range round {
			firstLeg[fmt.Sprintf("%d@%d", p.Away.ID, p.Home.ID)] = true
		}
	}

	reciprocal := 0
	for _, round := range rounds[3:] {
		for _, p := range round {
			if firstLeg[fmt.Sprintf("%d@%d", p.Home.ID, p.Away.ID)] {
				reciprocal++
			}
		}
	}
	// every second-leg fixture reverses a first-leg fixture
	assert.Equal(t, 6, reciprocal)
}

func TestGenerateBergerRounds_TotalRoundsScaleWithCycles(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	rounds := GenerateBergerRounds(rng, makeTeams(6), 3)
	assert.Len(t, rounds, 15)
}

func TestGenerateBergerRounds_DeterministicUnderFixedSeed(t *testing.T) {
	first := GenerateBergerRounds(rand.New(rand.NewSource(99)), makeTeams(8), 1)
	second := GenerateBergerRounds(rand.New(rand.NewSource(99)), makeTeams(8), 1)

	require.Equal(t, len(first), len(second))
	for i := range first {
		require.Equal(t, len(first[i]), len(second[i]))
		for j := range first[i] {
			assert.Equal(t, first[i][j].Home.ID, second[i][j].Home.ID)
			assert.Equal(t, first[i][j].Away.ID, second[i][j].Away.ID)
		}
	}
}
