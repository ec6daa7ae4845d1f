package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/apollomonasa/duty-roster/backend/internal/domain"
)

func TestValidateShiftSpecs(t *testing.T) {
	t.Parallel()

	require.NoError(t, ValidateShiftSpecs(domain.DefaultShiftSpecs))
	require.Error(t, ValidateShiftSpecs(nil))
	require.Error(t, ValidateShiftSpecs([]string{"MONDAY,1,2", "NOTADAY,1,2"}))
	require.Error(t, ValidateShiftSpecs([]string{"MONDAY,1,2", "monday , 1 , 2"}))
}

func TestValidateScheduleResult(t *testing.T) {
	t.Parallel()

	shift, err := domain.ParseShiftSpec("MONDAY,1,2")
	require.NoError(t, err)

	p := &domain.Participant{Person: &domain.Person{StudentID: "23000000001", Name: "张三"}}

	ok := domain.ScheduleResult{{Shift: shift, People: []*domain.Participant{p}}}
	require.NoError(t, ValidateScheduleResult(ok))

	dup := domain.ScheduleResult{{Shift: shift, People: []*domain.Participant{p, p}}}
	require.Error(t, ValidateScheduleResult(dup))
}

func TestSortNamesByPinyin(t *testing.T) {
	t.Parallel()

	names := []string{"张三", "李四", "王五"}
	SortNamesByPinyin(names)
	require.Equal(t, []string{"李四", "王五", "张三"}, names)
}

func TestGenerateRandomStudentID(t *testing.T) {
	t.Parallel()

	id := GenerateRandomStudentID("23")
	require.Len(t, id, 11)
	require.True(t, strings.HasPrefix(id, "23"))
}

func TestGenerateRandomOTP(t *testing.T) {
	t.Parallel()

	otp := GenerateRandomOTP()
	require.Len(t, otp, 6)
}

func TestGenerateRandomPersonIsParseable(t *testing.T) {
	t.Parallel()

	person := GenerateRandomPerson([]string{"24"})
	require.True(t, strings.HasPrefix(person.StudentID, "24"))
	require.NotEmpty(t, person.Name)
	require.NotEmpty(t, person.AllClassTimes)
	require.Contains(t, person.AllClassTimes, "星期")
}
