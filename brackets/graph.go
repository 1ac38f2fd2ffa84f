package brackets

import "github.com/bhorvath/fixturegen/models"

// Slot names one of the two participant positions of a match. A match's home
// slot is fed by its first prerequisite link, the away slot by the second.
type Slot int

const (
	SlotHome Slot = iota + 1
	SlotAway
)

// Advancement is one pending participant placement: put TeamID into Slot of
// Match.
type Advancement struct {
	Match  *models.Match
	Slot   Slot
	TeamID int
}

// Apply writes the placement onto the in-memory match.
func (a Advancement) Apply() {
	id := a.TeamID
	if a.Slot == SlotHome {
		a.Match.HomeTeamID = &id
	} else {
		a.Match.AwayTeamID = &id
	}
}

// BuildDependentsIndex inverts the prerequisite links of a tournament's
// matches: the result maps a match id to every match that lists it as a
// prerequisite. Built once per submission so propagation is a single lookup
// instead of repeated predicate scans.
func BuildDependentsIndex(matches []*models.Match) map[int][]*models.Match {
	index := make(map[int][]*models.Match)
	for _, m := range matches {
		if m.PreviousMatch1ID != nil {
			index[*m.PreviousMatch1ID] = append(index[*m.PreviousMatch1ID], m)
		}
		if m.PreviousMatch2ID != nil {
			index[*m.PreviousMatch2ID] = append(index[*m.PreviousMatch2ID], m)
		}
	}
	return index
}

// PlanAdvancements decides, for a completed bracket match, which downstream
// slots receive its winner and loser. The rules depend on the completed
// match's own branch and each dependent's branch:
//
//   - winner branch: winner advances to the next winners or final match;
//     the loser drops to the next losers match and to a third-place match.
//   - loser branch: winner advances to the next losers match or to the final.
//   - final and third place are terminal.
//   - an untagged bracket match advances its winner and drops its loser to a
//     third-place match only.
//
// A dependent may still be missing its other participant; filling one slot at
// a time is normal. Re-planning a match with the same result yields the same
// placements, so propagation is idempotent.
func PlanAdvancements(completed *models.Match, winnerID, loserID int, dependents []*models.Match) []Advancement {
	var out []Advancement

	place := func(d *models.Match, teamID int) {
		slot := SlotAway
		if d.PreviousMatch1ID != nil && *d.PreviousMatch1ID == completed.ID {
			slot = SlotHome
		}
		out = append(out, Advancement{Match: d, Slot: slot, TeamID: teamID})
	}

	for _, d := range dependents {
		switch completed.Branch() {
		case models.BracketWinner:
			switch d.Branch() {
			case models.BracketWinner, models.BracketFinal:
				place(d, winnerID)
			case models.BracketLoser, models.BracketThirdPlace:
				place(d, loserID)
			}
		case models.BracketLoser:
			switch d.Branch() {
			case models.BracketLoser, models.BracketFinal:
				place(d, winnerID)
			}
		case models.BracketFinal, models.BracketThirdPlace:
			// terminal
		default:
			switch d.Branch() {
			case models.BracketThirdPlace:
				place(d, loserID)
			default:
				place(d, winnerID)
			}
		}
	}
	return out
}
