package brackets

import (
	"math/rand"

	"github.com/bhorvath/fixturegen/models"
)

// Pairing is one fixture inside a round-robin round.
type Pairing struct {
	Home *models.Team
	Away *models.Team
}

// Round is the set of fixtures played in one round.
type Round []Pairing

// GenerateBergerRounds produces round-robin rounds with the circle method:
// one competitor stays fixed while the rest rotate, pairing position i with
// position n-1-i each round. An odd team count gets a synthetic bye entry;
// pairings containing the bye are dropped, so one team sits out each round.
//
// numberOfRounds is the number of full cycles (2 means everyone plays
// everyone home and away). Within a cycle the fixed pairing at position zero
// alternates home and away on round parity so the pivot team does not host
// every round; on every second cycle the whole orientation flips, giving a
// true home/back fixture pattern.
func GenerateBergerRounds(rng *rand.Rand, teams []*models.Team, numberOfRounds int) []Round {
	if numberOfRounds < 1 {
		numberOfRounds = 2
	}

	entries := make([]*models.Team, len(teams))
	copy(entries, teams)
	if len(entries)%2 != 0 {
		entries = append(entries, nil) // bye
	}
	entries = Shuffle(rng, entries)

	n := len(entries)
	if n < 2 {
		return nil
	}
	roundsPerCycle := n - 1

	var all []Round
	for cycle := 0; cycle < numberOfRounds; cycle++ {
		reverse := cycle%2 == 1

		rotating := make([]*models.Team, n)
		copy(rotating, entries)

		for r := 0; r < roundsPerCycle; r++ {
			pairs := make(Round, 0, n/2)
			for i := 0; i < n/2; i++ {
				a, b := rotating[i], rotating[n-1-i]
				if a == nil || b == nil {
					continue
				}
				// The pivot pairing alternates orientation on round
				// parity; a reversed cycle flips whatever the first
				// cycle chose, so the two legs are true mirrors.
				swap := i == 0 && r%2 != 0
				home, away := a, b
				if reverse != swap {
					home, away = b, a
				}
				pairs = append(pairs, Pairing{Home: home, Away: away})
			}
			all = append(all, pairs)

			// rotate everything except position 0
			last := rotating[n-1]
			copy(rotating[2:], rotating[1:n-1])
			rotating[1] = last
		}
	}
	return all
}
