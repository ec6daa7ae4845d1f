package domain

import (
	"sort"
	"time"
)

// ScheduleEntry 是排班结果中的一条记录：一个班次以及按安排顺序排列的人员。
// 班次在阶段一中没有任何可用候选人时，People 为空列表。
type ScheduleEntry struct {
	Shift  Shift          `json:"shift"`
	People []*Participant `json:"people"`
}

// ScheduleResult 表示一次排班运行的完整结果，
// 以有序的 (班次, 人员列表) 对的形式存储，可以无损序列化为历史记录
type ScheduleResult []ScheduleEntry

// Lookup 返回某个班次的人员列表，不存在时返回 nil
func (r ScheduleResult) Lookup(shift Shift) []*Participant {
	for _, entry := range r {
		if entry.Shift == shift {
			return entry.People
		}
	}
	return nil
}

// Sort 按星期和开始节次对结果排序，用于展示和导出
func (r ScheduleResult) Sort() {
	sort.Slice(r, func(i, j int) bool {
		oi := WeekdayOrder(r[i].Shift.Weekday)*100 + r[i].Shift.StartSession
		oj := WeekdayOrder(r[j].Shift.Weekday)*100 + r[j].Shift.StartSession
		return oi < oj
	})
}

// ScheduleHistory 表示一条持久化的排班历史记录
type ScheduleHistory struct {
	ID        int64          `json:"id"`
	Result    ScheduleResult `json:"result"`
	CreatedAt time.Time      `json:"createdAt"`
	Version   int32          `json:"-"`
}
