// Package excel 负责花名册的导入和值班表的导出，
// 文件格式与教务系统的导出格式保持一致。
package excel

import (
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/apollomonasa/duty-roster/backend/internal/domain"
)

// ParseRoster 解析花名册 Excel。第一行为表头，之后每行三列：姓名、学号、上课时间。
// 同一学号出现多行时会合并为一条记录，上课时间用分号连接。
// 学号为空的行会被跳过。
func ParseRoster(r io.Reader) ([]*domain.Person, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("无法打开 Excel 文件: %w", err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	if sheet == "" {
		return nil, fmt.Errorf("Excel 文件中没有工作表")
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("无法读取工作表 %s: %w", sheet, err)
	}

	var order []string
	merged := make(map[string]*domain.Person)

	for i, row := range rows {
		// 第一行是表头
		if i == 0 {
			continue
		}

		name := strings.TrimSpace(cellAt(row, 0))
		studentID := strings.TrimSpace(cellAt(row, 1))
		classTime := strings.TrimSpace(cellAt(row, 2))

		if studentID == "" {
			continue
		}

		if person, exists := merged[studentID]; exists {
			person.AllClassTimes = person.AllClassTimes + ";" + classTime
			continue
		}

		merged[studentID] = &domain.Person{
			StudentID:     studentID,
			Name:          name,
			AllClassTimes: classTime,
		}
		order = append(order, studentID)
	}

	people := make([]*domain.Person, 0, len(order))
	for _, studentID := range order {
		people = append(people, merged[studentID])
	}

	return people, nil
}

func cellAt(row []string, col int) string {
	if col >= len(row) {
		return ""
	}
	return row[col]
}
