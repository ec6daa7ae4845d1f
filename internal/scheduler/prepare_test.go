package scheduler

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/apollomonasa/duty-roster/backend/internal/domain"
)

func TestPrepareParticipantsWithMatchingRule(t *testing.T) {
	t.Parallel()

	people := []*domain.Person{
		{StudentID: "25000000001", Name: "新人", AllClassTimes: "星期一第1,2节"},
	}
	rules := []*domain.GradeRule{
		{Grade: "25", ShiftsPerWeek: 2, NeedsSeniorBuddy: true, CanDoNightShift: false},
		{Grade: "24", ShiftsPerWeek: 1, NeedsSeniorBuddy: false, CanDoNightShift: true},
	}

	participants := PrepareParticipants(people, rules)
	require.Len(t, participants, 1)

	p := participants[0]
	require.Equal(t, "25", p.Grade)
	require.Equal(t, int32(2), p.Quota)
	require.True(t, p.NeedsSeniorBuddy)
	require.False(t, p.CanDoNightShift)
	require.True(t, p.UnavailableSlots.Contains(domain.WeeklySlot{Weekday: time.Monday, Session: 1}))
	require.True(t, p.UnavailableSlots.Contains(domain.WeeklySlot{Weekday: time.Monday, Session: 2}))
}

func TestPrepareParticipantsDefaultsWithoutRule(t *testing.T) {
	t.Parallel()

	people := []*domain.Person{
		{StudentID: "22000000001", Name: "老人", AllClassTimes: ""},
	}

	participants := PrepareParticipants(people, nil)
	require.Len(t, participants, 1)

	p := participants[0]
	require.Equal(t, "22", p.Grade)
	require.Equal(t, int32(1), p.Quota)
	require.False(t, p.NeedsSeniorBuddy)
	require.True(t, p.CanDoNightShift)
	require.Empty(t, p.UnavailableSlots)
}

func TestPrepareParticipantsClampsNegativeQuota(t *testing.T) {
	t.Parallel()

	people := []*domain.Person{
		{StudentID: "23000000001", Name: "张三"},
	}
	rules := []*domain.GradeRule{
		{Grade: "23", ShiftsPerWeek: -1, CanDoNightShift: true},
	}

	participants := PrepareParticipants(people, rules)
	require.Equal(t, int32(0), participants[0].Quota)
}

func TestPrepareParticipantsShortStudentID(t *testing.T) {
	t.Parallel()

	people := []*domain.Person{
		{StudentID: "7", Name: "短学号"},
	}

	participants := PrepareParticipants(people, nil)
	require.Equal(t, "7", participants[0].Grade)
}
