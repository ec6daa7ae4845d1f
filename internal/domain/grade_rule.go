package domain

import "time"

// GradeRule 表示按年级配置的排班策略，年级与学号前缀精确匹配
type GradeRule struct {
	ID               int64     `json:"id"`
	Grade            string    `json:"grade"` // 例如 "23"
	ShiftsPerWeek    int32     `json:"shiftsPerWeek"`
	NeedsSeniorBuddy bool      `json:"needsSeniorBuddy"`
	CanDoNightShift  bool      `json:"canDoNightShift"`
	CreatedAt        time.Time `json:"createdAt"`
	Version          int32     `json:"-"`
}
