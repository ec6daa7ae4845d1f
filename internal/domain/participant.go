package domain

// Participant 表示一次排班运行中的参与者：人员加上其可用性与策略约束
type Participant struct {
	Person           *Person `json:"person"`
	UnavailableSlots SlotSet `json:"unavailableSlots"`
	Grade            string  `json:"grade"`
	Quota            int32   `json:"quota"` // 每周应被安排的班次数
	NeedsSeniorBuddy bool    `json:"needsSeniorBuddy"`
	CanDoNightShift  bool    `json:"canDoNightShift"`
}

// IsAvailableFor 判断参与者是否对整个班次都有空，
// 只要班次中有任何一节与不可用时间点冲突就视为没空
func (p *Participant) IsAvailableFor(shift Shift) bool {
	for session := shift.StartSession; session <= shift.EndSession; session++ {
		if p.UnavailableSlots.Contains(WeeklySlot{Weekday: shift.Weekday, Session: session}) {
			return false
		}
	}
	return true
}
