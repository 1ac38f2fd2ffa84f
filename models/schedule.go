package models

// ScheduleWindow is one weekly availability window. A tournament owns a set
// of these; together they define the repeating calendar matches are placed
// into. Times are "HH:MM", duration is in minutes (90 when absent).
type ScheduleWindow struct {
	ID            int    `json:"id" db:"id"`
	TournamentID  int    `json:"tournament_id" db:"tournament_id"`
	DayOfWeek     string `json:"day_of_week" db:"day_of_week"`
	StartTime     string `json:"start_time" db:"start_time"`
	EndTime       string `json:"end_time" db:"end_time"`
	MatchDuration *int   `json:"match_duration,omitempty" db:"match_duration"`
}
