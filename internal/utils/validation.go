package utils

import (
	"fmt"

	"github.com/apollomonasa/duty-roster/backend/internal/domain"
)

// ValidateShiftSpecs 检查班次目录配置的合法性：
// 每一条都必须能解析，且不能出现重复的班次
func ValidateShiftSpecs(specs []string) error {
	if len(specs) == 0 {
		return fmt.Errorf("班次目录不能为空")
	}

	seen := make(map[string]bool, len(specs))
	for i, spec := range specs {
		shift, err := domain.ParseShiftSpec(spec)
		if err != nil {
			return fmt.Errorf("第 %d 条班次配置非法: %w", i+1, err)
		}
		if seen[shift.ID] {
			return fmt.Errorf("第 %d 条班次配置与之前的班次重复", i+1)
		}
		seen[shift.ID] = true
	}

	return nil
}

// ValidateScheduleResult 检查排班结果中是否存在同一班次内的重复人员
func ValidateScheduleResult(result domain.ScheduleResult) error {
	for _, entry := range result {
		seen := make(map[string]bool, len(entry.People))
		for _, p := range entry.People {
			if seen[p.Person.StudentID] {
				return fmt.Errorf("班次 %s 中存在重复人员 %s", entry.Shift.ID, p.Person.Name)
			}
			seen[p.Person.StudentID] = true
		}
	}
	return nil
}
