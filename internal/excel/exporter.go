package excel

import (
	"bytes"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/apollomonasa/duty-roster/backend/internal/domain"
	"github.com/apollomonasa/duty-roster/backend/internal/utils"
)

const sheetName = "值班表"

// 节次段与上课时间的对照，仅用于导出时在行头显示
var sessionTimeLabels = map[string]string{
	"1-2节":   "8:00-9:40",
	"3-5节":   "10:00-12:00",
	"6-7节":   "13:30-15:00",
	"8-9节":   "15:20-17:00",
	"10-11节": "18:00-20:00",
}

// sessionBand 表示值班表中的一行：一段连续的节次区间
type sessionBand struct {
	start int32
	end   int32
}

func (b sessionBand) label() string {
	return fmt.Sprintf("%d-%d节", b.start, b.end)
}

// ExportSchedule 将排班结果渲染为 Excel 值班表：
// 列为星期，行为节次段，单元格为按拼音排序、换行分隔的人员姓名
func ExportSchedule(result domain.ScheduleResult) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer f.Close()

	f.SetSheetName("Sheet1", sheetName)

	// 从结果中动态收集涉及的星期和节次段
	days, bands := collectAxes(result)

	if len(days) == 0 || len(bands) == 0 {
		if err := f.SetCellValue(sheetName, "A1", "没有有效的排班结果可供导出。"); err != nil {
			return nil, err
		}
		return f.WriteToBuffer()
	}

	titleStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 16},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		return nil, err
	}
	headerStyle, err := f.NewStyle(&excelize.Style{
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"D9D9D9"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center", WrapText: true},
	})
	if err != nil {
		return nil, err
	}
	dataStyle, err := f.NewStyle(&excelize.Style{
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center", WrapText: true},
	})
	if err != nil {
		return nil, err
	}

	// 标题行
	if err := f.SetCellValue(sheetName, "A1", sheetName); err != nil {
		return nil, err
	}
	endCell, _ := excelize.CoordinatesToCellName(len(days)+1, 1)
	if err := f.MergeCell(sheetName, "A1", endCell); err != nil {
		return nil, err
	}
	if err := f.SetCellStyle(sheetName, "A1", endCell, titleStyle); err != nil {
		return nil, err
	}
	_ = f.SetRowHeight(sheetName, 1, 30)

	// 表头行
	if err := f.SetCellValue(sheetName, "A2", "星期班序"); err != nil {
		return nil, err
	}
	for i, day := range days {
		cell, _ := excelize.CoordinatesToCellName(i+2, 2)
		if err := f.SetCellValue(sheetName, cell, domain.WeekdayDisplayName(day)); err != nil {
			return nil, err
		}
	}
	headerEnd, _ := excelize.CoordinatesToCellName(len(days)+1, 2)
	if err := f.SetCellStyle(sheetName, "A2", headerEnd, headerStyle); err != nil {
		return nil, err
	}
	_ = f.SetRowHeight(sheetName, 2, 25)

	// 数据行：每个节次段一行
	for rowIdx, band := range bands {
		row := rowIdx + 3

		timeCell := band.label()
		if t, ok := sessionTimeLabels[band.label()]; ok {
			timeCell += "\n" + t
		}
		headCell, _ := excelize.CoordinatesToCellName(1, row)
		if err := f.SetCellValue(sheetName, headCell, timeCell); err != nil {
			return nil, err
		}
		if err := f.SetCellStyle(sheetName, headCell, headCell, headerStyle); err != nil {
			return nil, err
		}

		maxPeople := 1
		for colIdx, day := range days {
			names := assignedNames(result, day, band)
			if len(names) > maxPeople {
				maxPeople = len(names)
			}

			cell, _ := excelize.CoordinatesToCellName(colIdx+2, row)
			if err := f.SetCellValue(sheetName, cell, strings.Join(names, "\n")); err != nil {
				return nil, err
			}
			if err := f.SetCellStyle(sheetName, cell, cell, dataStyle); err != nil {
				return nil, err
			}
		}

		height := float64(maxPeople) * 18
		if height < 40 {
			height = 40
		}
		_ = f.SetRowHeight(sheetName, row, height)
	}

	// 列宽
	_ = f.SetColWidth(sheetName, "A", "A", 14)
	lastCol, _ := excelize.ColumnNumberToName(len(days) + 1)
	_ = f.SetColWidth(sheetName, "B", lastCol, 18)

	return f.WriteToBuffer()
}

// collectAxes 从结果中提取去重后的星期（周一在前）和节次段（从早到晚）
func collectAxes(result domain.ScheduleResult) ([]time.Weekday, []sessionBand) {
	daySeen := make(map[time.Weekday]bool)
	bandSeen := make(map[sessionBand]bool)
	var days []time.Weekday
	var bands []sessionBand

	for _, entry := range result {
		if !daySeen[entry.Shift.Weekday] {
			daySeen[entry.Shift.Weekday] = true
			days = append(days, entry.Shift.Weekday)
		}
		band := sessionBand{start: entry.Shift.StartSession, end: entry.Shift.EndSession}
		if !bandSeen[band] {
			bandSeen[band] = true
			bands = append(bands, band)
		}
	}

	sort.Slice(days, func(i, j int) bool {
		return domain.WeekdayOrder(days[i]) < domain.WeekdayOrder(days[j])
	})
	sort.Slice(bands, func(i, j int) bool {
		if bands[i].start != bands[j].start {
			return bands[i].start < bands[j].start
		}
		return bands[i].end < bands[j].end
	})

	return days, bands
}

func assignedNames(result domain.ScheduleResult, day time.Weekday, band sessionBand) []string {
	for _, entry := range result {
		if entry.Shift.Weekday == day && entry.Shift.StartSession == band.start && entry.Shift.EndSession == band.end {
			names := make([]string, 0, len(entry.People))
			for _, p := range entry.People {
				names = append(names, p.Person.Name)
			}
			utils.SortNamesByPinyin(names)
			return names
		}
	}
	return nil
}
