package excel

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/apollomonasa/duty-roster/backend/internal/domain"
)

func buildRoster(t *testing.T, rows [][]any) *bytes.Reader {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow(sheet, cell, &row))
	}

	buf, err := f.WriteToBuffer()
	require.NoError(t, err)
	return bytes.NewReader(buf.Bytes())
}

func TestParseRoster(t *testing.T) {
	t.Parallel()

	r := buildRoster(t, [][]any{
		{"姓名", "学号", "上课时间"},
		{"张三", "23000000001", "星期一第1,2节"},
		{"李四", "24000000002", "星期二第3-5节"},
	})

	people, err := ParseRoster(r)
	require.NoError(t, err)
	require.Len(t, people, 2)
	require.Equal(t, "张三", people[0].Name)
	require.Equal(t, "23000000001", people[0].StudentID)
	require.Equal(t, "星期一第1,2节", people[0].AllClassTimes)
}

func TestParseRosterMergesDuplicateStudentIDs(t *testing.T) {
	t.Parallel()

	r := buildRoster(t, [][]any{
		{"姓名", "学号", "上课时间"},
		{"张三", "23000000001", "星期一第1,2节"},
		{"张三", "23000000001", "星期三第6-7节"},
	})

	people, err := ParseRoster(r)
	require.NoError(t, err)
	require.Len(t, people, 1)
	require.Equal(t, "星期一第1,2节;星期三第6-7节", people[0].AllClassTimes)
}

func TestParseRosterSkipsRowsWithoutStudentID(t *testing.T) {
	t.Parallel()

	r := buildRoster(t, [][]any{
		{"姓名", "学号", "上课时间"},
		{"没有学号", "", "星期一第1节"},
		{"李四", "24000000002", ""},
	})

	people, err := ParseRoster(r)
	require.NoError(t, err)
	require.Len(t, people, 1)
	require.Equal(t, "24000000002", people[0].StudentID)
}

func TestParseRosterRejectsGarbage(t *testing.T) {
	t.Parallel()

	_, err := ParseRoster(bytes.NewReader([]byte("这不是一个 Excel 文件")))
	require.Error(t, err)
}

func TestExportSchedule(t *testing.T) {
	t.Parallel()

	mon, err := domain.ParseShiftSpec("MONDAY,1,2")
	require.NoError(t, err)
	fri, err := domain.ParseShiftSpec("FRIDAY,10,11")
	require.NoError(t, err)

	zhang := &domain.Participant{Person: &domain.Person{StudentID: "23000000001", Name: "张三"}}
	li := &domain.Participant{Person: &domain.Person{StudentID: "24000000002", Name: "李四"}}

	result := domain.ScheduleResult{
		{Shift: mon, People: []*domain.Participant{zhang, li}},
		{Shift: fri, People: []*domain.Participant{}},
	}

	buf, err := ExportSchedule(result)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	defer f.Close()

	require.Equal(t, "值班表", f.GetSheetName(0))

	title, err := f.GetCellValue("值班表", "A1")
	require.NoError(t, err)
	require.Equal(t, "值班表", title)

	monday, err := f.GetCellValue("值班表", "B2")
	require.NoError(t, err)
	require.Equal(t, domain.WeekdayDisplayName(time.Monday), monday)

	// 名单按拼音排序，换行分隔
	cell, err := f.GetCellValue("值班表", "B3")
	require.NoError(t, err)
	require.Equal(t, "李四\n张三", cell)

	// 空班次的单元格为空
	cell, err = f.GetCellValue("值班表", "C4")
	require.NoError(t, err)
	require.Empty(t, cell)
}

func TestExportScheduleEmptyResult(t *testing.T) {
	t.Parallel()

	buf, err := ExportSchedule(domain.ScheduleResult{})
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	defer f.Close()

	msg, err := f.GetCellValue("值班表", "A1")
	require.NoError(t, err)
	require.Equal(t, "没有有效的排班结果可供导出。", msg)
}
