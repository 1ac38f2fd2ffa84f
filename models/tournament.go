package models

import "time"

// TournamentFormat selects the fixture generation strategy.
type TournamentFormat string

const (
	FormatLeague     TournamentFormat = "league"
	FormatRoundRobin TournamentFormat = "round_robin"
	FormatKnockout   TournamentFormat = "knockout"
	FormatDouble     TournamentFormat = "double"
)

func (f TournamentFormat) Valid() bool {
	switch f {
	case FormatLeague, FormatRoundRobin, FormatKnockout, FormatDouble:
		return true
	}
	return false
}

// IsElimination reports whether matches of this format are wired into a
// bracket graph and therefore disallow draws.
func (f TournamentFormat) IsElimination() bool {
	return f == FormatKnockout || f == FormatDouble
}

// TournamentStatus gates editing: rosters, schedule and metadata may only be
// changed while the tournament is on hold. Generating matches flips the
// status to generated; deleting all matches flips it back.
type TournamentStatus string

const (
	StatusOnHold    TournamentStatus = "onhold"
	StatusGenerated TournamentStatus = "generated"
)

type Tournament struct {
	ID                 int              `json:"id" db:"id"`
	Name               string           `json:"name" db:"name"`
	Description        *string          `json:"description,omitempty" db:"description"`
	OwnerID            int              `json:"owner_id" db:"owner_id"`
	Format             TournamentFormat `json:"format" db:"format"`
	StartDate          *time.Time       `json:"start_date,omitempty" db:"start_date"`
	Rounds             int              `json:"rounds" db:"rounds"`
	PointsForWin       int              `json:"points_for_win" db:"points_for_win"`
	PointsForDraw      int              `json:"points_for_draw" db:"points_for_draw"`
	HasThirdPlaceMatch bool             `json:"has_third_place_match" db:"has_third_place_match"`
	Status             TournamentStatus `json:"status" db:"status"`
	CreatedAt          time.Time        `json:"created_at" db:"created_at"`
	LogoKey            *string          `json:"-" db:"logo_key"`
	LogoURL            *string          `json:"logo_url,omitempty" db:"-"`

	Teams    []Team           `json:"teams,omitempty" db:"-"`
	Referees []Referee        `json:"referees,omitempty" db:"-"`
	Venues   []Venue          `json:"venues,omitempty" db:"-"`
	Schedule []ScheduleWindow `json:"schedule,omitempty" db:"-"`
	Matches  []Match          `json:"matches,omitempty" db:"-"`
}
