package domain

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// DefaultNightSessions 是默认的夜班节次（晚上 18:00 之后的两节）
var DefaultNightSessions = []int32{10, 11}

// Shift 表示一个需要安排人员的班次：某个星期上一段连续的节次
type Shift struct {
	ID           string       `json:"id"` // 例如 "MONDAY_1_2"
	Weekday      time.Weekday `json:"weekday"`
	StartSession int32        `json:"startSession"`
	EndSession   int32        `json:"endSession"`
}

// ContainsSession 判断某一节是否落在班次的节次区间内
func (s Shift) ContainsSession(session int32) bool {
	return session >= s.StartSession && session <= s.EndSession
}

// IsNightShift 判断班次是否是夜班，即节次区间与夜班节次存在交集
func (s Shift) IsNightShift(nightSessions []int32) bool {
	for _, session := range nightSessions {
		if s.ContainsSession(session) {
			return true
		}
	}
	return false
}

// Spec 返回班次的配置字符串，例如 "MONDAY,1,2"，与 ParseShiftSpec 互逆
func (s Shift) Spec() string {
	return fmt.Sprintf("%s,%d,%d", weekdaySpecNames[s.Weekday], s.StartSession, s.EndSession)
}

var weekdaySpecNames = map[time.Weekday]string{
	time.Monday:    "MONDAY",
	time.Tuesday:   "TUESDAY",
	time.Wednesday: "WEDNESDAY",
	time.Thursday:  "THURSDAY",
	time.Friday:    "FRIDAY",
	time.Saturday:  "SATURDAY",
	time.Sunday:    "SUNDAY",
}

var weekdaysBySpecName = map[string]time.Weekday{
	"MONDAY":    time.Monday,
	"TUESDAY":   time.Tuesday,
	"WEDNESDAY": time.Wednesday,
	"THURSDAY":  time.Thursday,
	"FRIDAY":    time.Friday,
	"SATURDAY":  time.Saturday,
	"SUNDAY":    time.Sunday,
}

// ParseShiftSpec 解析 "WEEKDAY,start,end" 形式的班次配置字符串
func ParseShiftSpec(spec string) (Shift, error) {
	parts := strings.Split(strings.TrimSpace(spec), ",")
	if len(parts) != 3 {
		return Shift{}, fmt.Errorf("班次配置 %q 的格式错误，应为 WEEKDAY,开始节次,结束节次", spec)
	}

	weekday, ok := weekdaysBySpecName[strings.ToUpper(strings.TrimSpace(parts[0]))]
	if !ok {
		return Shift{}, fmt.Errorf("班次配置 %q 中的星期 %q 非法", spec, parts[0])
	}

	start, err := strconv.ParseInt(strings.TrimSpace(parts[1]), 10, 32)
	if err != nil {
		return Shift{}, fmt.Errorf("班次配置 %q 中的开始节次非法", spec)
	}
	end, err := strconv.ParseInt(strings.TrimSpace(parts[2]), 10, 32)
	if err != nil {
		return Shift{}, fmt.Errorf("班次配置 %q 中的结束节次非法", spec)
	}

	if start < 1 {
		return Shift{}, fmt.Errorf("班次配置 %q 中的开始节次必须大于 0", spec)
	}
	if end < start {
		return Shift{}, fmt.Errorf("班次配置 %q 中的结束节次不能小于开始节次", spec)
	}

	return Shift{
		ID:           fmt.Sprintf("%s_%d_%d", weekdaySpecNames[weekday], start, end),
		Weekday:      weekday,
		StartSession: int32(start),
		EndSession:   int32(end),
	}, nil
}

// DefaultShiftSpecs 是默认的班次目录：周一至周五每天五个班次
var DefaultShiftSpecs = []string{
	"MONDAY,1,2", "MONDAY,3,5", "MONDAY,6,7", "MONDAY,8,9", "MONDAY,10,11",
	"TUESDAY,1,2", "TUESDAY,3,5", "TUESDAY,6,7", "TUESDAY,8,9", "TUESDAY,10,11",
	"WEDNESDAY,1,2", "WEDNESDAY,3,5", "WEDNESDAY,6,7", "WEDNESDAY,8,9", "WEDNESDAY,10,11",
	"THURSDAY,1,2", "THURSDAY,3,5", "THURSDAY,6,7", "THURSDAY,8,9", "THURSDAY,10,11",
	"FRIDAY,1,2", "FRIDAY,3,5", "FRIDAY,6,7", "FRIDAY,8,9", "FRIDAY,10,11",
}
