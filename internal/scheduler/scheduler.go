package scheduler

import (
	"context"
	"log/slog"
	"math/rand"
	"time"

	"github.com/apollomonasa/duty-roster/backend/internal/domain"
)

// Scheduler 按两阶段贪心算法生成排班表：
// 阶段一以覆盖为最高优先级，保证每个班次只要存在可用候选人就至少有一人；
// 阶段二通过打分迭代将每个人的排班数推向配额，同时满足高年级陪同和均衡。
//
// 一次运行的所有可变状态都由 Schedule 调用内部独占，算法本身不可并行，
// 调用方需要保证响应性时应把整个 Schedule 放到单独的 goroutine 中执行。
type Scheduler struct {
	participants  []*domain.Participant
	shifts        []domain.Shift
	nightSessions []int32
	rng           *rand.Rand
}

func New(participants []*domain.Participant, shifts []domain.Shift, opts Options) *Scheduler {
	nightSessions := opts.NightSessions
	if len(nightSessions) == 0 {
		nightSessions = domain.DefaultNightSessions
	}

	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	return &Scheduler{
		participants:  participants,
		shifts:        shifts,
		nightSessions: nightSessions,
		rng:           rand.New(rand.NewSource(seed)),
	}
}

// Schedule 执行一次完整的排班运行并返回结果和诊断报告。
// 空的参与者列表或空的班次目录会直接返回空结果，不进入任何阶段。
// 算法中的所有失败（空班、配额缺口）都以报告数据的形式返回，
// 只有 ctx 被取消时才返回错误，此时整个结果会被放弃。
// 取消检查只发生在阶段二的迭代边界上，那里的排班状态是自洽的。
func (s *Scheduler) Schedule(ctx context.Context) (domain.ScheduleResult, *Report, error) {
	report := &Report{
		EmptyShifts:          []string{},
		EmergencyAssignments: []EmergencyAssignment{},
		QuotaShortfalls:      []QuotaShortfall{},
	}

	if len(s.participants) == 0 || len(s.shifts) == 0 {
		slog.Info("没有参与者或班次，返回空排班结果")
		return domain.ScheduleResult{}, report, nil
	}

	state := newRunState(s.shifts)

	// 高年级陪同的判定基准在运行开始时计算一次，之后显式传入打分函数
	threshold := highestGradeNeedingBuddy(s.participants)

	slog.Info("开始生成排班表",
		"participants", len(s.participants),
		"shifts", len(s.shifts),
		"buddyGradeThreshold", threshold,
	)

	s.coverageFill(state, report)

	if err := s.refineAndFill(ctx, state, threshold, report); err != nil {
		return nil, nil, err
	}

	// 统计配额缺口
	for _, p := range s.participants {
		if state.counts[p] < p.Quota {
			report.QuotaShortfalls = append(report.QuotaShortfalls, QuotaShortfall{
				StudentID: p.Person.StudentID,
				Name:      p.Person.Name,
				Assigned:  state.counts[p],
				Quota:     p.Quota,
			})
		}
	}

	result := state.toResult(s.shifts)
	s.logFinalSchedule(result, state)

	return result, report, nil
}

func (s *Scheduler) logFinalSchedule(result domain.ScheduleResult, state *runState) {
	for _, entry := range result {
		names := make([]string, 0, len(entry.People))
		for _, p := range entry.People {
			names = append(names, p.Person.Name+"("+p.Grade+")")
		}
		slog.Debug("班次人数统计", "shift", entry.Shift.ID, "count", len(entry.People), "people", names)
	}
	for _, p := range s.participants {
		slog.Debug("人员配额满足情况",
			"name", p.Person.Name,
			"assigned", state.counts[p],
			"quota", p.Quota,
			"satisfied", state.counts[p] >= p.Quota,
		)
	}
}
