package brackets

import (
	"errors"
	"time"
)

// ErrNoTimeConfigured is returned when a sequencer lands on a slot whose
// window was too short to hold a single match.
var ErrNoTimeConfigured = errors.New("no time configured in schedule")

// NextDate returns the first calendar date on or after base+weekOffset weeks
// that falls on the target weekday. When base itself falls on the target
// weekday, week zero resolves to base, not one week later.
func NextDate(base time.Time, target time.Weekday, weekOffset int) time.Time {
	diff := (int(target)+7-int(base.Weekday()))%7 + weekOffset*7
	return base.AddDate(0, 0, diff)
}

// SetClock places an "HH:MM" time of day onto a date.
func SetClock(date time.Time, clock string) (time.Time, error) {
	minutes, err := parseClock(clock)
	if err != nil {
		return time.Time{}, err
	}
	y, m, d := date.Date()
	return time.Date(y, m, d, minutes/60, minutes%60, 0, 0, date.Location()), nil
}

// SimpleSequencer hands out one date per call, always using each slot's
// first kickoff time and advancing one real week after every full pass
// through the slot list. Elimination builders space their matches this way,
// one match per slot.
type SimpleSequencer struct {
	base       time.Time
	slots      []ScheduleSlot
	slotIndex  int
	weekOffset int
}

func NewSimpleSequencer(base time.Time, slots []ScheduleSlot) (*SimpleSequencer, error) {
	if !HasAnyTime(slots) {
		return nil, ErrNoTimeConfigured
	}
	return &SimpleSequencer{base: base, slots: slots}, nil
}

func (s *SimpleSequencer) Next() (time.Time, error) {
	slot := s.slots[s.slotIndex%len(s.slots)]
	if len(slot.Times) == 0 {
		return time.Time{}, ErrNoTimeConfigured
	}
	date, err := SetClock(NextDate(s.base, slot.DayOfWeek, s.weekOffset), slot.Times[0])
	if err != nil {
		return time.Time{}, err
	}
	s.slotIndex++
	if s.slotIndex%len(s.slots) == 0 {
		s.weekOffset++
	}
	return date, nil
}

// RoundSequencer hands out dates for round-based play: within one round every
// slot's every kickoff time is consumed before dates repeat, and the week
// offset advances once per round rather than once per slot pass. The slot and
// time counters reset at each round boundary. This is deliberately a separate
// type from SimpleSequencer; the two advancement rules must not share one
// counter scheme.
type RoundSequencer struct {
	base       time.Time
	slots      []ScheduleSlot
	weekOffset int
	slotIndex  int
	timeIndex  int
}

func NewRoundSequencer(base time.Time, slots []ScheduleSlot) (*RoundSequencer, error) {
	if !HasAnyTime(slots) {
		return nil, ErrNoTimeConfigured
	}
	return &RoundSequencer{base: base, slots: slots}, nil
}

// Next returns the date for the next match of the current round.
func (s *RoundSequencer) Next() (time.Time, error) {
	slot := s.slots[s.slotIndex%len(s.slots)]
	if len(slot.Times) == 0 {
		return time.Time{}, ErrNoTimeConfigured
	}
	clock := slot.Times[s.timeIndex%len(slot.Times)]
	date, err := SetClock(NextDate(s.base, slot.DayOfWeek, s.weekOffset), clock)
	if err != nil {
		return time.Time{}, err
	}
	s.slotIndex++
	if s.slotIndex%len(s.slots) == 0 {
		s.timeIndex++
	}
	return date, nil
}

// EndRound closes the current round: the next round starts a week later with
// fresh slot and time counters.
func (s *RoundSequencer) EndRound() {
	s.weekOffset++
	s.slotIndex = 0
	s.timeIndex = 0
}
