package models

import "time"

type MatchStatus string

const (
	MatchStatusScheduled MatchStatus = "scheduled"
	MatchStatusOver      MatchStatus = "over"
)

// BracketType tags a match's position in an elimination graph. League and
// round-robin matches carry no tag.
type BracketType string

const (
	BracketWinner     BracketType = "winner"
	BracketLoser      BracketType = "loser"
	BracketFinal      BracketType = "final"
	BracketThirdPlace BracketType = "third_place"
)

type Match struct {
	ID           int          `json:"id" db:"id"`
	TournamentID int          `json:"tournament_id" db:"tournament_id"`
	HomeTeamID   *int         `json:"home_team_id,omitempty" db:"home_team_id"`
	AwayTeamID   *int         `json:"away_team_id,omitempty" db:"away_team_id"`
	Round        int          `json:"round" db:"round"`
	BracketType  *BracketType `json:"bracket_type,omitempty" db:"bracket_type"`
	HomeScore    *int         `json:"home_score,omitempty" db:"home_score"`
	AwayScore    *int         `json:"away_score,omitempty" db:"away_score"`
	WinnerTeamID *int         `json:"winner_team_id,omitempty" db:"winner_team_id"`
	Status       MatchStatus  `json:"status" db:"status"`
	RefereeID    *int         `json:"referee_id,omitempty" db:"referee_id"`
	VenueID      *int         `json:"venue_id,omitempty" db:"venue_id"`
	StadiumID    *int         `json:"stadium_id,omitempty" db:"stadium_id"`
	MatchDate    time.Time    `json:"match_date" db:"match_date"`
	CreatedAt    time.Time    `json:"created_at" db:"created_at"`

	// Prerequisite links. The match whose outcome feeds the home slot is
	// PreviousMatch1, the away slot PreviousMatch2. Set once at generation
	// time, never changed afterwards.
	PreviousMatch1ID *int `json:"previous_match_1_id,omitempty" db:"previous_match_1_id"`
	PreviousMatch2ID *int `json:"previous_match_2_id,omitempty" db:"previous_match_2_id"`
}

// Branch returns the match's bracket tag, or the empty string for league and
// round-robin matches.
func (m *Match) Branch() BracketType {
	if m.BracketType == nil {
		return ""
	}
	return *m.BracketType
}

// LoserTeamID returns the side that lost, or nil when the match has no
// winner (unplayed, or a league draw).
func (m *Match) LoserTeamID() *int {
	if m.WinnerTeamID == nil || m.HomeTeamID == nil || m.AwayTeamID == nil {
		return nil
	}
	if *m.WinnerTeamID == *m.HomeTeamID {
		return m.AwayTeamID
	}
	return m.HomeTeamID
}
