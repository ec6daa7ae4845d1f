package domain

import (
	"encoding/json"
	"sort"
	"time"
)

// WeeklySlot 表示一周内循环出现的一个不可用时间点（星期 + 节次）
type WeeklySlot struct {
	Weekday time.Weekday `json:"weekday"`
	Session int32        `json:"session"`
}

// SlotSet 是 WeeklySlot 的集合，重复的时间点会自然合并
type SlotSet map[WeeklySlot]struct{}

func (s SlotSet) Add(slot WeeklySlot) {
	s[slot] = struct{}{}
}

func (s SlotSet) Contains(slot WeeklySlot) bool {
	_, ok := s[slot]
	return ok
}

// MarshalJSON 将集合序列化为稳定排序的数组，保证历史记录可以无损往返
func (s SlotSet) MarshalJSON() ([]byte, error) {
	slots := make([]WeeklySlot, 0, len(s))
	for slot := range s {
		slots = append(slots, slot)
	}
	sort.Slice(slots, func(i, j int) bool {
		if slots[i].Weekday != slots[j].Weekday {
			return WeekdayOrder(slots[i].Weekday) < WeekdayOrder(slots[j].Weekday)
		}
		return slots[i].Session < slots[j].Session
	})
	return json.Marshal(slots)
}

func (s *SlotSet) UnmarshalJSON(data []byte) error {
	var slots []WeeklySlot
	if err := json.Unmarshal(data, &slots); err != nil {
		return err
	}
	set := make(SlotSet, len(slots))
	for _, slot := range slots {
		set.Add(slot)
	}
	*s = set
	return nil
}

// WeekdayOrder 返回以周一为 1、周日为 7 的序号，用于排序和展示
func WeekdayOrder(d time.Weekday) int32 {
	if d == time.Sunday {
		return 7
	}
	return int32(d)
}

var weekdayDisplayNames = map[time.Weekday]string{
	time.Monday:    "星期一",
	time.Tuesday:   "星期二",
	time.Wednesday: "星期三",
	time.Thursday:  "星期四",
	time.Friday:    "星期五",
	time.Saturday:  "星期六",
	time.Sunday:    "星期日",
}

// WeekdayDisplayName 返回星期的中文名称
func WeekdayDisplayName(d time.Weekday) string {
	return weekdayDisplayNames[d]
}
