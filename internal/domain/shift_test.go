package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestParseShiftSpec(t *testing.T) {
	t.Parallel()

	shift, err := ParseShiftSpec("MONDAY,1,2")
	require.NoError(t, err)
	require.Equal(t, "MONDAY_1_2", shift.ID)
	require.Equal(t, time.Monday, shift.Weekday)
	require.Equal(t, int32(1), shift.StartSession)
	require.Equal(t, int32(2), shift.EndSession)

	// 大小写和空白不敏感
	shift, err = ParseShiftSpec(" friday , 10 , 11 ")
	require.NoError(t, err)
	require.Equal(t, "FRIDAY_10_11", shift.ID)
}

func TestParseShiftSpecInvalid(t *testing.T) {
	t.Parallel()

	tests := []string{
		"",
		"MONDAY,1",
		"MONDAY,1,2,3",
		"SOMEDAY,1,2",
		"MONDAY,x,2",
		"MONDAY,1,y",
		"MONDAY,0,2",
		"MONDAY,3,2",
	}

	for _, spec := range tests {
		_, err := ParseShiftSpec(spec)
		require.Error(t, err, "spec %q", spec)
	}
}

func TestShiftSpecRoundTrip(t *testing.T) {
	t.Parallel()

	for _, spec := range DefaultShiftSpecs {
		shift, err := ParseShiftSpec(spec)
		require.NoError(t, err)
		require.Equal(t, spec, shift.Spec())
	}
}

func TestShiftIsNightShift(t *testing.T) {
	t.Parallel()

	day := Shift{Weekday: time.Monday, StartSession: 1, EndSession: 2}
	evening := Shift{Weekday: time.Monday, StartSession: 10, EndSession: 11}
	overlap := Shift{Weekday: time.Monday, StartSession: 9, EndSession: 10}

	require.False(t, day.IsNightShift(DefaultNightSessions))
	require.True(t, evening.IsNightShift(DefaultNightSessions))
	require.True(t, overlap.IsNightShift(DefaultNightSessions))
	require.False(t, evening.IsNightShift(nil))
}

func TestParticipantIsAvailableFor(t *testing.T) {
	t.Parallel()

	slots := make(SlotSet)
	slots.Add(WeeklySlot{Weekday: time.Monday, Session: 2})

	p := &Participant{
		Person:           &Person{StudentID: "23000000001", Name: "张三"},
		UnavailableSlots: slots,
	}

	free := Shift{Weekday: time.Monday, StartSession: 3, EndSession: 5}
	conflict := Shift{Weekday: time.Monday, StartSession: 1, EndSession: 2}
	otherDay := Shift{Weekday: time.Tuesday, StartSession: 1, EndSession: 2}

	require.True(t, p.IsAvailableFor(free))
	require.False(t, p.IsAvailableFor(conflict))
	require.True(t, p.IsAvailableFor(otherDay))
}
