package brackets

import (
	"time"

	"github.com/bhorvath/fixturegen/models"
)

// PlannedMatch is one match of a generated elimination bracket before it is
// persisted. Prerequisite links point at other planned matches; the
// orchestrator resolves them to row ids after insertion. Builders emit
// matches in creation order, so a match always precedes its dependents.
type PlannedMatch struct {
	Round     int
	Bracket   models.BracketType
	HomeTeam  *models.Team
	AwayTeam  *models.Team
	Prev1     *PlannedMatch
	Prev2     *PlannedMatch
	VenueID   *int
	RefereeID *int
	Date      time.Time
}

// assigner cycles venues and referees over planned matches by running match
// index and pulls one date per match from a simple sequencer.
type assigner struct {
	venues   []*models.Venue
	referees []*models.Referee
	dates    *SimpleSequencer
	index    int
}

func (a *assigner) next(round int, bracket models.BracketType) (*PlannedMatch, error) {
	date, err := a.dates.Next()
	if err != nil {
		return nil, err
	}
	m := &PlannedMatch{
		Round:     round,
		Bracket:   bracket,
		VenueID:   &a.venues[a.index%len(a.venues)].ID,
		RefereeID: &a.referees[a.index%len(a.referees)].ID,
		Date:      date,
	}
	a.index++
	return m, nil
}
