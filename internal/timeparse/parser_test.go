package timeparse

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/apollomonasa/duty-roster/backend/internal/domain"
)

func slot(d time.Weekday, session int32) domain.WeeklySlot {
	return domain.WeeklySlot{Weekday: d, Session: session}
}

func TestParseAllBasic(t *testing.T) {
	t.Parallel()

	slots := ParseAll("星期一第1,2节;星期三第6-7节")

	require.Len(t, slots, 4)
	require.True(t, slots.Contains(slot(time.Monday, 1)))
	require.True(t, slots.Contains(slot(time.Monday, 2)))
	require.True(t, slots.Contains(slot(time.Wednesday, 6)))
	require.True(t, slots.Contains(slot(time.Wednesday, 7)))
}

func TestParseAllIgnoresWeekPrefix(t *testing.T) {
	t.Parallel()

	slots := ParseAll("1-16周 星期五第10-11节")

	require.Len(t, slots, 2)
	require.True(t, slots.Contains(slot(time.Friday, 10)))
	require.True(t, slots.Contains(slot(time.Friday, 11)))
}

func TestParseAllMultipleWeekdayGlyphs(t *testing.T) {
	t.Parallel()

	// 一个片段中出现多个星期时，节次对每个星期都生效
	slots := ParseAll("星期一三第3节")

	require.Len(t, slots, 2)
	require.True(t, slots.Contains(slot(time.Monday, 3)))
	require.True(t, slots.Contains(slot(time.Wednesday, 3)))
}

func TestParseAllSkipsMalformedFragments(t *testing.T) {
	t.Parallel()

	// 无法解析的片段被跳过，其余片段照常解析
	slots := ParseAll("乱七八糟的内容;星期二第1节;星期八第2节")

	require.Len(t, slots, 1)
	require.True(t, slots.Contains(slot(time.Tuesday, 1)))
}

func TestParseAllMergesDuplicates(t *testing.T) {
	t.Parallel()

	slots := ParseAll("星期一第1节;星期一第1节;星期一第1,1节")

	require.Len(t, slots, 1)
	require.True(t, slots.Contains(slot(time.Monday, 1)))
}

func TestParseAllEmptyAndBlankInput(t *testing.T) {
	t.Parallel()

	require.Empty(t, ParseAll(""))
	require.Empty(t, ParseAll("  ;  ; "))
}

func TestParseAllSundayGlyph(t *testing.T) {
	t.Parallel()

	slots := ParseAll("星期日第5节")

	require.Len(t, slots, 1)
	require.True(t, slots.Contains(slot(time.Sunday, 5)))
}

func TestParseAllRejectsPartialFragment(t *testing.T) {
	t.Parallel()

	// 节次非法时整个片段被放弃，不会留下已解析一半的时间点
	slots := ParseAll("星期一第1,x节")

	require.Empty(t, slots)
}
