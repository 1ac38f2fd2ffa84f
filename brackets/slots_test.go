package brackets

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bhorvath/fixturegen/models"
)

func intPtr(v int) *int { return &v }

func TestBuildScheduleSlots_StepsByDuration(t *testing.T) {
	slots, err := BuildScheduleSlots([]models.ScheduleWindow{
		{DayOfWeek: "Saturday", StartTime: "09:00", EndTime: "11:00", MatchDuration: intPtr(60)},
	})

	require.NoError(t, err)
	require.Len(t, slots, 1)
	assert.Equal(t, time.Saturday, slots[0].DayOfWeek)
	assert.Equal(t, []string{"09:00", "10:00"}, slots[0].Times)
}

func TestBuildScheduleSlots_WindowTooShort(t *testing.T) {
	slots, err := BuildScheduleSlots([]models.ScheduleWindow{
		{DayOfWeek: "saturday", StartTime: "09:00", EndTime: "09:30", MatchDuration: intPtr(60)},
	})

	require.NoError(t, err)
	require.Len(t, slots, 1)
	assert.Empty(t, slots[0].Times)
	assert.False(t, HasAnyTime(slots))
}

func TestBuildScheduleSlots_DefaultDuration(t *testing.T) {
	slots, err := BuildScheduleSlots([]models.ScheduleWindow{
		{DayOfWeek: "WEDNESDAY", StartTime: "18:00", EndTime: "21:00"},
	})

	require.NoError(t, err)
	assert.Equal(t, []string{"18:00", "19:30"}, slots[0].Times)
}

func TestBuildScheduleSlots_PreservesOrderAndDuplicates(t *testing.T) {
	slots, err := BuildScheduleSlots([]models.ScheduleWindow{
		{DayOfWeek: "sunday", StartTime: "10:00", EndTime: "12:00", MatchDuration: intPtr(120)},
		{DayOfWeek: "sunday", StartTime: "14:00", EndTime: "16:00", MatchDuration: intPtr(120)},
	})

	require.NoError(t, err)
	require.Len(t, slots, 2)
	assert.Equal(t, []string{"10:00"}, slots[0].Times)
	assert.Equal(t, []string{"14:00"}, slots[1].Times)
}

func TestBuildScheduleSlots_UnknownDay(t *testing.T) {
	_, err := BuildScheduleSlots([]models.ScheduleWindow{
		{DayOfWeek: "payday", StartTime: "09:00", EndTime: "11:00"},
	})

	assert.ErrorIs(t, err, ErrUnknownDayOfWeek)
}
