package scheduler

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/apollomonasa/duty-roster/backend/internal/domain"
	"github.com/apollomonasa/duty-roster/backend/internal/timeparse"
)

func newParticipant(studentID, name, grade string, quota int32) *domain.Participant {
	return &domain.Participant{
		Person:           &domain.Person{StudentID: studentID, Name: name},
		UnavailableSlots: make(domain.SlotSet),
		Grade:            grade,
		Quota:            quota,
		CanDoNightShift:  true,
	}
}

func mustShifts(t *testing.T, specs ...string) []domain.Shift {
	t.Helper()
	shifts := make([]domain.Shift, 0, len(specs))
	for _, spec := range specs {
		shift, err := domain.ParseShiftSpec(spec)
		require.NoError(t, err)
		shifts = append(shifts, shift)
	}
	return shifts
}

func TestScheduleEmptyInputs(t *testing.T) {
	t.Parallel()

	s := New(nil, mustShifts(t, "MONDAY,1,2"), Options{Seed: 1})
	result, report, err := s.Schedule(context.Background())
	require.NoError(t, err)
	require.Empty(t, result)
	require.Empty(t, report.EmptyShifts)

	s = New([]*domain.Participant{newParticipant("23000000001", "张三", "23", 1)}, nil, Options{Seed: 1})
	result, report, err = s.Schedule(context.Background())
	require.NoError(t, err)
	require.Empty(t, result)
	require.NotNil(t, report)
}

func TestScheduleSingleParticipantSingleShift(t *testing.T) {
	t.Parallel()

	p := newParticipant("23000000001", "张三", "23", 1)
	shifts := mustShifts(t, "MONDAY,1,2")

	s := New([]*domain.Participant{p}, shifts, Options{Seed: 42})
	result, report, err := s.Schedule(context.Background())
	require.NoError(t, err)

	require.Len(t, result, 1)
	require.Equal(t, shifts[0], result[0].Shift)
	require.Equal(t, []*domain.Participant{p}, result[0].People)
	require.Empty(t, report.EmptyShifts)
	require.Empty(t, report.EmergencyAssignments)
	require.Empty(t, report.QuotaShortfalls)
}

func TestScheduleInfeasibleShiftStaysEmpty(t *testing.T) {
	t.Parallel()

	p := newParticipant("23000000001", "张三", "23", 1)
	p.UnavailableSlots = timeparse.ParseAll("星期一第1,2节")
	shifts := mustShifts(t, "MONDAY,1,2", "TUESDAY,1,2")

	s := New([]*domain.Participant{p}, shifts, Options{Seed: 42})
	result, report, err := s.Schedule(context.Background())
	require.NoError(t, err)

	// 没人有空的班次保留在结果中，人员列表为空
	require.Len(t, result, 2)
	require.Empty(t, result.Lookup(shifts[0]))
	require.Len(t, result.Lookup(shifts[1]), 1)
	require.Equal(t, []string{"MONDAY_1_2"}, report.EmptyShifts)
}

func TestScheduleCoversAllShiftsWhenPossible(t *testing.T) {
	t.Parallel()

	participants := make([]*domain.Participant, 0, 10)
	for i := 0; i < 10; i++ {
		participants = append(participants, newParticipant(
			fmt.Sprintf("230000000%02d", i), fmt.Sprintf("助理%d", i), "23", 2,
		))
	}

	shifts := make([]domain.Shift, 0, len(domain.DefaultShiftSpecs))
	for _, spec := range domain.DefaultShiftSpecs {
		shift, err := domain.ParseShiftSpec(spec)
		require.NoError(t, err)
		shifts = append(shifts, shift)
	}

	s := New(participants, shifts, Options{Seed: 7})
	result, report, err := s.Schedule(context.Background())
	require.NoError(t, err)

	require.Len(t, result, len(shifts))
	for _, entry := range result {
		require.NotEmpty(t, entry.People, "班次 %s 不应为空", entry.Shift.ID)

		// 同一班次内不应出现重复人员
		seen := make(map[string]bool)
		for _, p := range entry.People {
			require.False(t, seen[p.Person.StudentID])
			seen[p.Person.StudentID] = true
		}
	}
	require.Empty(t, report.EmptyShifts)
}

func TestScheduleSatisfiesQuotasWhenFeasible(t *testing.T) {
	t.Parallel()

	participants := make([]*domain.Participant, 0, 5)
	for i := 0; i < 5; i++ {
		participants = append(participants, newParticipant(
			fmt.Sprintf("2400000000%d", i), fmt.Sprintf("助理%d", i), "24", 1,
		))
	}
	shifts := mustShifts(t, "MONDAY,1,2", "TUESDAY,1,2", "WEDNESDAY,1,2", "THURSDAY,1,2", "FRIDAY,1,2")

	s := New(participants, shifts, Options{Seed: 3})
	result, report, err := s.Schedule(context.Background())
	require.NoError(t, err)

	require.Empty(t, report.QuotaShortfalls)

	counts := make(map[*domain.Participant]int)
	for _, entry := range result {
		for _, p := range entry.People {
			counts[p]++
		}
	}
	for _, p := range participants {
		require.GreaterOrEqual(t, counts[p], int(p.Quota), "人员 %s 的配额未满足", p.Person.Name)
	}
}

func TestScheduleDeterministicWithSameSeed(t *testing.T) {
	t.Parallel()

	participants := []*domain.Participant{
		newParticipant("23000000001", "张三", "23", 2),
		newParticipant("24000000002", "李四", "24", 2),
		newParticipant("25000000003", "王五", "25", 2),
	}
	participants[1].UnavailableSlots = timeparse.ParseAll("星期一第1-2节;星期三第6-7节")
	shifts := mustShifts(t, "MONDAY,1,2", "WEDNESDAY,6,7", "FRIDAY,10,11")

	run := func() domain.ScheduleResult {
		s := New(participants, shifts, Options{Seed: 99})
		result, _, err := s.Schedule(context.Background())
		require.NoError(t, err)
		return result
	}

	require.Equal(t, run(), run())
}

func TestScheduleReturnsErrorOnCancelledContext(t *testing.T) {
	t.Parallel()

	p := newParticipant("23000000001", "张三", "23", 1)
	shifts := mustShifts(t, "MONDAY,1,2")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	s := New([]*domain.Participant{p}, shifts, Options{Seed: 1})
	result, report, err := s.Schedule(ctx)
	require.ErrorIs(t, err, context.Canceled)
	require.Nil(t, result)
	require.Nil(t, report)
}

func TestIsValidAssignmentNightShiftRestriction(t *testing.T) {
	t.Parallel()

	p := newParticipant("25000000001", "赵六", "25", 1)
	p.CanDoNightShift = false
	shifts := mustShifts(t, "MONDAY,10,11", "MONDAY,1,2")

	s := New([]*domain.Participant{p}, shifts, Options{Seed: 1})
	state := newRunState(shifts)

	require.False(t, s.isValidAssignment(p, shifts[0], state))
	require.True(t, s.isValidAssignment(p, shifts[1], state))
}

func TestIsValidAssignmentOneShiftPerDay(t *testing.T) {
	t.Parallel()

	p := newParticipant("23000000001", "张三", "23", 2)
	shifts := mustShifts(t, "MONDAY,1,2", "MONDAY,8,9", "TUESDAY,1,2")

	s := New([]*domain.Participant{p}, shifts, Options{Seed: 1})
	state := newRunState(shifts)
	state.assign(shifts[0], p)

	require.False(t, s.isValidAssignment(p, shifts[0], state))
	require.False(t, s.isValidAssignment(p, shifts[1], state))
	require.True(t, s.isValidAssignment(p, shifts[2], state))
}

func TestCalculateScoreForAdding(t *testing.T) {
	t.Parallel()

	senior := newParticipant("22000000001", "老人", "22", 1)
	junior := newParticipant("25000000002", "新人", "25", 1)
	junior.NeedsSeniorBuddy = true
	peer := newParticipant("25000000003", "同级", "25", 1)

	shifts := mustShifts(t, "MONDAY,1,2")
	shift := shifts[0]
	threshold := highestGradeNeedingBuddy([]*domain.Participant{senior, junior, peer})
	require.Equal(t, int32(25), threshold)

	// 空班次的基础分
	state := newRunState(shifts)
	require.Equal(t, 1000.0, calculateScoreForAdding(senior, shift, state, threshold))

	// 新人加入已有老人的班次: 1000 + 200 - 50
	state = newRunState(shifts)
	state.assign(shift, senior)
	require.Equal(t, 1150.0, calculateScoreForAdding(junior, shift, state, threshold))

	// 老人加入有未被陪同新人的班次: 1000 + 150 - 50
	state = newRunState(shifts)
	state.assign(shift, junior)
	require.Equal(t, 1100.0, calculateScoreForAdding(senior, shift, state, threshold))

	// 新人已被陪同时不再加分: 1000 - 100
	state = newRunState(shifts)
	state.assign(shift, junior)
	state.assign(shift, senior)
	another := newParticipant("23000000004", "老人乙", "23", 1)
	require.Equal(t, 900.0, calculateScoreForAdding(another, shift, state, threshold))

	// 同级加入只扣占用分
	state = newRunState(shifts)
	state.assign(shift, junior)
	require.Equal(t, 950.0, calculateScoreForAdding(peer, shift, state, threshold))
}

func TestSeniorityHelpers(t *testing.T) {
	t.Parallel()

	senior := newParticipant("22000000001", "老人", "22", 1)
	junior := newParticipant("25000000002", "新人", "25", 1)
	unknown := newParticipant("XX000000003", "未知", "XX", 1)

	require.True(t, isSenior(senior, 25))
	require.False(t, isSenior(junior, 25))
	// 无法解析的年级按最低年级处理
	require.False(t, isSenior(unknown, 25))
	// 基准为 0 表示没有人需要陪同
	require.False(t, isSenior(senior, 0))

	require.True(t, isSeniorTo(senior, junior))
	require.False(t, isSeniorTo(junior, senior))
	require.False(t, isSeniorTo(unknown, junior))
	require.False(t, isSeniorTo(senior, unknown))
}

func TestHighestGradeNeedingBuddy(t *testing.T) {
	t.Parallel()

	a := newParticipant("24000000001", "甲", "24", 1)
	a.NeedsSeniorBuddy = true
	b := newParticipant("25000000002", "乙", "25", 1)
	b.NeedsSeniorBuddy = true
	c := newParticipant("22000000003", "丙", "22", 1)

	require.Equal(t, int32(25), highestGradeNeedingBuddy([]*domain.Participant{a, b, c}))
	require.Equal(t, int32(0), highestGradeNeedingBuddy([]*domain.Participant{c}))
	require.Equal(t, int32(0), highestGradeNeedingBuddy(nil))
}

func TestAssignedOnWeekday(t *testing.T) {
	t.Parallel()

	p := newParticipant("23000000001", "张三", "23", 1)
	shifts := mustShifts(t, "MONDAY,1,2", "TUESDAY,1,2")

	state := newRunState(shifts)
	require.False(t, state.assignedOnWeekday(p, time.Monday))

	state.assign(shifts[0], p)
	require.True(t, state.assignedOnWeekday(p, time.Monday))
	require.False(t, state.assignedOnWeekday(p, time.Tuesday))
}
