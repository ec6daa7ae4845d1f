package domain

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestWeekdayOrder(t *testing.T) {
	t.Parallel()

	require.Equal(t, int32(1), WeekdayOrder(time.Monday))
	require.Equal(t, int32(5), WeekdayOrder(time.Friday))
	require.Equal(t, int32(7), WeekdayOrder(time.Sunday))
}

func TestSlotSetJSONRoundTrip(t *testing.T) {
	t.Parallel()

	set := make(SlotSet)
	set.Add(WeeklySlot{Weekday: time.Wednesday, Session: 7})
	set.Add(WeeklySlot{Weekday: time.Monday, Session: 1})
	set.Add(WeeklySlot{Weekday: time.Sunday, Session: 3})

	data, err := json.Marshal(set)
	require.NoError(t, err)

	var restored SlotSet
	require.NoError(t, json.Unmarshal(data, &restored))
	require.Equal(t, set, restored)
}

func TestSlotSetMarshalIsStable(t *testing.T) {
	t.Parallel()

	set := make(SlotSet)
	set.Add(WeeklySlot{Weekday: time.Sunday, Session: 2})
	set.Add(WeeklySlot{Weekday: time.Monday, Session: 9})
	set.Add(WeeklySlot{Weekday: time.Monday, Session: 1})

	first, err := json.Marshal(set)
	require.NoError(t, err)

	// map 的遍历顺序随机，序列化结果必须与之无关
	for i := 0; i < 10; i++ {
		again, err := json.Marshal(set)
		require.NoError(t, err)
		require.Equal(t, string(first), string(again))
	}

	require.JSONEq(t,
		`[{"weekday":1,"session":1},{"weekday":1,"session":9},{"weekday":0,"session":2}]`,
		string(first),
	)
}

func TestScheduleResultJSONRoundTrip(t *testing.T) {
	t.Parallel()

	shift, err := ParseShiftSpec("TUESDAY,3,5")
	require.NoError(t, err)

	slots := make(SlotSet)
	slots.Add(WeeklySlot{Weekday: time.Tuesday, Session: 1})

	result := ScheduleResult{
		{
			Shift: shift,
			People: []*Participant{
				{
					Person:           &Person{StudentID: "24000000001", Name: "李四"},
					UnavailableSlots: slots,
					Grade:            "24",
					Quota:            2,
					NeedsSeniorBuddy: true,
					CanDoNightShift:  false,
				},
			},
		},
	}

	data, err := json.Marshal(result)
	require.NoError(t, err)

	var restored ScheduleResult
	require.NoError(t, json.Unmarshal(data, &restored))
	require.Equal(t, result, restored)
}

func TestScheduleResultSortAndLookup(t *testing.T) {
	t.Parallel()

	mon, _ := ParseShiftSpec("MONDAY,8,9")
	fri, _ := ParseShiftSpec("FRIDAY,1,2")
	monEarly, _ := ParseShiftSpec("MONDAY,1,2")

	result := ScheduleResult{
		{Shift: fri, People: []*Participant{}},
		{Shift: mon, People: []*Participant{}},
		{Shift: monEarly, People: []*Participant{}},
	}

	result.Sort()
	require.Equal(t, monEarly, result[0].Shift)
	require.Equal(t, mon, result[1].Shift)
	require.Equal(t, fri, result[2].Shift)

	require.NotNil(t, result.Lookup(fri))
	require.Nil(t, result.Lookup(Shift{ID: "SUNDAY_1_2", Weekday: time.Sunday, StartSession: 1, EndSession: 2}))
}
