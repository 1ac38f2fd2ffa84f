package brackets

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/bhorvath/fixturegen/models"
)

// DefaultMatchDuration is used when a schedule window does not specify one.
const DefaultMatchDuration = 90

var ErrUnknownDayOfWeek = errors.New("unknown day of week in schedule")

var dayNames = map[string]time.Weekday{
	"sunday":    time.Sunday,
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
}

// ScheduleSlot is one weekly availability window expanded into concrete
// kickoff times.
type ScheduleSlot struct {
	DayOfWeek time.Weekday
	Times     []string
}

// BuildScheduleSlots expands weekly availability windows into kickoff times.
// For each window, times start at the window start and step by the match
// duration while a full match still fits before the window end. A window too
// short for a single match yields an empty time list; callers must treat an
// all-empty result as a precondition failure. Input order is preserved and
// windows sharing a day are not merged.
func BuildScheduleSlots(windows []models.ScheduleWindow) ([]ScheduleSlot, error) {
	slots := make([]ScheduleSlot, 0, len(windows))
	for _, w := range windows {
		day, ok := dayNames[strings.ToLower(w.DayOfWeek)]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownDayOfWeek, w.DayOfWeek)
		}

		start, err := parseClock(w.StartTime)
		if err != nil {
			return nil, fmt.Errorf("window start time: %w", err)
		}
		end, err := parseClock(w.EndTime)
		if err != nil {
			return nil, fmt.Errorf("window end time: %w", err)
		}

		duration := DefaultMatchDuration
		if w.MatchDuration != nil && *w.MatchDuration > 0 {
			duration = *w.MatchDuration
		}

		var times []string
		for t := start; t+duration <= end; t += duration {
			times = append(times, formatClock(t))
		}
		slots = append(slots, ScheduleSlot{DayOfWeek: day, Times: times})
	}
	return slots, nil
}

// HasAnyTime reports whether at least one slot produced a kickoff time.
func HasAnyTime(slots []ScheduleSlot) bool {
	for _, s := range slots {
		if len(s.Times) > 0 {
			return true
		}
	}
	return false
}

// parseClock converts "HH:MM" to minutes since midnight.
func parseClock(s string) (int, error) {
	h, m, ok := strings.Cut(s, ":")
	if !ok {
		return 0, fmt.Errorf("invalid time %q", s)
	}
	hours, err := strconv.Atoi(h)
	if err != nil || hours < 0 || hours > 23 {
		return 0, fmt.Errorf("invalid time %q", s)
	}
	minutes, err := strconv.Atoi(m)
	if err != nil || minutes < 0 || minutes > 59 {
		return 0, fmt.Errorf("invalid time %q", s)
	}
	return hours*60 + minutes, nil
}

func formatClock(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}
