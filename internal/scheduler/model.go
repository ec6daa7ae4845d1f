package scheduler

import (
	"slices"
	"time"

	"github.com/apollomonasa/duty-roster/backend/internal/domain"
)

// Options 控制一次排班运行
type Options struct {
	Seed          int64   // 阶段一洗牌所用的随机种子，相同的种子加相同的输入可复现结果；为 0 时使用当前时间
	NightSessions []int32 // 夜班节次，为空时使用 domain.DefaultNightSessions
}

// EmergencyAssignment 记录一次紧急征用：
// 为了保证班次覆盖而放弃"每日一班"约束做出的安排
type EmergencyAssignment struct {
	ShiftID   string `json:"shiftID"`
	StudentID string `json:"studentID"`
	Name      string `json:"name"`
}

// QuotaShortfall 记录一位在优化结束后仍未排满配额的参与者
type QuotaShortfall struct {
	StudentID string `json:"studentID"`
	Name      string `json:"name"`
	Assigned  int32  `json:"assigned"`
	Quota     int32  `json:"quota"`
}

// Report 汇总一次排班运行中的所有软性失败。
// 它们只作为诊断信息返回给调用方，不会中断排班。
type Report struct {
	EmptyShifts          []string              `json:"emptyShifts"`
	EmergencyAssignments []EmergencyAssignment `json:"emergencyAssignments"`
	QuotaShortfalls      []QuotaShortfall      `json:"quotaShortfalls"`
	Iterations           int                   `json:"iterations"` // 阶段二实际执行的迭代次数
}

// runState 是一次运行独占的可变状态：进行中的排班表和每人的已排班计数。
// 它只在一次 Schedule 调用内部存在，从不跨运行共享。
type runState struct {
	assignments map[domain.Shift][]*domain.Participant
	counts      map[*domain.Participant]int32
}

func newRunState(shifts []domain.Shift) *runState {
	state := &runState{
		assignments: make(map[domain.Shift][]*domain.Participant, len(shifts)),
		counts:      make(map[*domain.Participant]int32),
	}
	for _, shift := range shifts {
		state.assignments[shift] = []*domain.Participant{}
	}
	return state
}

func (st *runState) assign(shift domain.Shift, p *domain.Participant) {
	st.assignments[shift] = append(st.assignments[shift], p)
	st.counts[p]++
}

// assignedOnWeekday 判断参与者在某个星期是否已经有班
func (st *runState) assignedOnWeekday(p *domain.Participant, weekday time.Weekday) bool {
	for shift, people := range st.assignments {
		if shift.Weekday == weekday && slices.Contains(people, p) {
			return true
		}
	}
	return false
}

// toResult 按班次目录的顺序将运行状态固化为不可变的排班结果
func (st *runState) toResult(shifts []domain.Shift) domain.ScheduleResult {
	result := make(domain.ScheduleResult, 0, len(shifts))
	for _, shift := range shifts {
		people := make([]*domain.Participant, len(st.assignments[shift]))
		copy(people, st.assignments[shift])
		result = append(result, domain.ScheduleEntry{Shift: shift, People: people})
	}
	return result
}
