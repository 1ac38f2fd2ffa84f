package brackets

import (
	"errors"

	"github.com/bhorvath/fixturegen/models"
)

var ErrDoubleEliminationSize = errors.New("double elimination requires exactly 4 or 8 teams")

type DoubleEliminationParams struct {
	Teams    []*models.Team
	Venues   []*models.Venue
	Referees []*models.Referee
	Dates    *SimpleSequencer
}

// BuildDoubleElimination builds winners and losers bracket matches for
// exactly 4 or 8 teams and wires the full dependency graph between them. The
// graph shape is enumerated per size rather than derived; a general
// power-of-two construction is out of scope.
func BuildDoubleElimination(p DoubleEliminationParams) ([]*PlannedMatch, error) {
	switch len(p.Teams) {
	case 4:
		return buildDoubleFour(p)
	case 8:
		return buildDoubleEight(p)
	default:
		return nil, ErrDoubleEliminationSize
	}
}

// buildDoubleFour: round 1 plays two winners matches. Round 2 plays the
// winners final and one losers match, both fed by the round 1 pair (the
// losers match consumes the losers). Round 3 plays the losers final between
// the losers match winner and the winners final loser. Round 4 is the grand
// final.
func buildDoubleFour(p DoubleEliminationParams) ([]*PlannedMatch, error) {
	asg := &assigner{venues: p.Venues, referees: p.Referees, dates: p.Dates}

	w1 := make([]*PlannedMatch, 2)
	for i := 0; i < 2; i++ {
		m, err := asg.next(1, models.BracketWinner)
		if err != nil {
			return nil, err
		}
		m.HomeTeam = p.Teams[i*2]
		m.AwayTeam = p.Teams[i*2+1]
		w1[i] = m
	}

	wf, err := asg.next(2, models.BracketWinner)
	if err != nil {
		return nil, err
	}
	l1, err := asg.next(2, models.BracketLoser)
	if err != nil {
		return nil, err
	}
	lf, err := asg.next(3, models.BracketLoser)
	if err != nil {
		return nil, err
	}
	final, err := asg.next(4, models.BracketFinal)
	if err != nil {
		return nil, err
	}

	wf.Prev1, wf.Prev2 = w1[0], w1[1]
	l1.Prev1, l1.Prev2 = w1[0], w1[1]
	lf.Prev1, lf.Prev2 = l1, wf
	final.Prev1, final.Prev2 = wf, lf

	return []*PlannedMatch{w1[0], w1[1], wf, l1, lf, final}, nil
}

// buildDoubleEight extends the same pattern by one tier: four winners and two
// losers matches in round 1, two of each in round 2, then winners final plus
// losers semifinal, losers final, and the grand final.
func buildDoubleEight(p DoubleEliminationParams) ([]*PlannedMatch, error) {
	asg := &assigner{venues: p.Venues, referees: p.Referees, dates: p.Dates}

	w1 := make([]*PlannedMatch, 4)
	for i := 0; i < 4; i++ {
		m, err := asg.next(1, models.BracketWinner)
		if err != nil {
			return nil, err
		}
		m.HomeTeam = p.Teams[i*2]
		m.AwayTeam = p.Teams[i*2+1]
		w1[i] = m
	}

	l1 := make([]*PlannedMatch, 2)
	for i := 0; i < 2; i++ {
		m, err := asg.next(1, models.BracketLoser)
		if err != nil {
			return nil, err
		}
		l1[i] = m
	}

	w2 := make([]*PlannedMatch, 2)
	for i := 0; i < 2; i++ {
		m, err := asg.next(2, models.BracketWinner)
		if err != nil {
			return nil, err
		}
		w2[i] = m
	}

	l2 := make([]*PlannedMatch, 2)
	for i := 0; i < 2; i++ {
		m, err := asg.next(2, models.BracketLoser)
		if err != nil {
			return nil, err
		}
		l2[i] = m
	}

	wf, err := asg.next(3, models.BracketWinner)
	if err != nil {
		return nil, err
	}
	l3, err := asg.next(3, models.BracketLoser)
	if err != nil {
		return nil, err
	}
	lf, err := asg.next(4, models.BracketLoser)
	if err != nil {
		return nil, err
	}
	final, err := asg.next(5, models.BracketFinal)
	if err != nil {
		return nil, err
	}

	// winners bracket
	w2[0].Prev1, w2[0].Prev2 = w1[0], w1[1]
	w2[1].Prev1, w2[1].Prev2 = w1[2], w1[3]
	wf.Prev1, wf.Prev2 = w2[0], w2[1]

	// losers bracket: l1 consumes round 1 losers, l2 pairs a losers winner
	// with the corresponding round 2 winners loser
	l1[0].Prev1, l1[0].Prev2 = w1[0], w1[1]
	l1[1].Prev1, l1[1].Prev2 = w1[2], w1[3]
	l2[0].Prev1, l2[0].Prev2 = l1[0], w2[0]
	l2[1].Prev1, l2[1].Prev2 = l1[1], w2[1]
	l3.Prev1, l3.Prev2 = l2[0], l2[1]
	lf.Prev1, lf.Prev2 = l3, wf

	final.Prev1, final.Prev2 = wf, lf

	return []*PlannedMatch{
		w1[0], w1[1], w1[2], w1[3],
		l1[0], l1[1],
		w2[0], w2[1],
		l2[0], l2[1],
		wf, l3, lf, final,
	}, nil
}
