package brackets

import (
	"errors"

	"github.com/bhorvath/fixturegen/models"
)

var ErrNotEnoughTeams = errors.New("at least 2 teams are required")

type SingleEliminationParams struct {
	Teams          []*models.Team
	Venues         []*models.Venue
	Referees       []*models.Referee
	Dates          *SimpleSequencer
	WithThirdPlace bool
}

// entry is one bracket position in a tier: either a known team or the match
// whose winner will occupy the position.
type entry struct {
	team  *models.Team
	match *PlannedMatch
}

// BuildSingleElimination builds a knockout bracket. Round 1 pairs the teams
// in order (shuffling is the caller's concern); each following tier pairs the
// previous tier's matches, leaving participants empty and recording the two
// prerequisite links instead. The tier that produces a single match is the
// final. With a non-power-of-two team count, the unpaired trailing entrant of
// a tier receives a bye and is carried into the next tier, so a later match
// may combine a known team with a prerequisite link.
//
// When requested, a third-place match is added if exactly two semifinal
// matches fed the final; it is wired to the semifinals and receives their
// losers through result propagation.
func BuildSingleElimination(p SingleEliminationParams) ([]*PlannedMatch, error) {
	if len(p.Teams) < 2 {
		return nil, ErrNotEnoughTeams
	}

	asg := &assigner{venues: p.Venues, referees: p.Referees, dates: p.Dates}

	entries := make([]entry, len(p.Teams))
	for i, t := range p.Teams {
		entries[i] = entry{team: t}
	}

	var matches []*PlannedMatch
	var semis []*PlannedMatch
	round := 1

	for len(entries) > 1 {
		finalTier := len(entries) == 2
		bracket := models.BracketWinner
		if finalTier {
			bracket = models.BracketFinal
		}

		next := make([]entry, 0, (len(entries)+1)/2)
		for i := 0; i+1 < len(entries); i += 2 {
			m, err := asg.next(round, bracket)
			if err != nil {
				return nil, err
			}
			fillSlots(m, entries[i], entries[i+1])
			matches = append(matches, m)
			next = append(next, entry{match: m})
		}
		if len(entries)%2 == 1 {
			// bye: the trailing entrant advances without playing this tier
			next = append(next, entries[len(entries)-1])
		}

		if finalTier && entries[0].match != nil && entries[1].match != nil {
			semis = []*PlannedMatch{entries[0].match, entries[1].match}
		}
		entries = next
		round++
	}

	if p.WithThirdPlace && len(semis) == 2 {
		m, err := asg.next(round-1, models.BracketThirdPlace)
		if err != nil {
			return nil, err
		}
		m.Prev1 = semis[0]
		m.Prev2 = semis[1]
		matches = append(matches, m)
	}

	return matches, nil
}

func fillSlots(m *PlannedMatch, home, away entry) {
	if home.team != nil {
		m.HomeTeam = home.team
	} else {
		m.Prev1 = home.match
	}
	if away.team != nil {
		m.AwayTeam = away.team
	} else {
		m.Prev2 = away.match
	}
}
