package models

// Venue is a neutral ground owned by the tournament, assigned to bracket
// matches. Distinct from a team's home Stadium.
type Venue struct {
	ID           int     `json:"id" db:"id"`
	TournamentID int     `json:"tournament_id" db:"tournament_id"`
	Name         string  `json:"name" db:"name"`
	Capacity     *int    `json:"capacity,omitempty" db:"capacity"`
	Address      *string `json:"address,omitempty" db:"address"`
}

// Stadium is a team's home ground.
type Stadium struct {
	ID       int     `json:"id" db:"id"`
	TeamID   int     `json:"team_id" db:"team_id"`
	Name     string  `json:"name" db:"name"`
	Capacity *int    `json:"capacity,omitempty" db:"capacity"`
	Address  *string `json:"address,omitempty" db:"address"`
}
