package scheduler

import (
	"context"
	"log/slog"
	"math"
	"slices"
	"strconv"

	"github.com/apollomonasa/duty-roster/backend/internal/domain"
)

// coverageFill 阶段一：绝对保底覆盖。
// 按随机顺序处理班次，让"先挑人"的优势在多次运行之间分散到不同班次上。
// 对每个还没有人的班次：
//  1. 先找一个有空且今天还没有班的人；
//  2. 找不到就紧急征用：忽略"每日一班"，找任何一个有空的人；
//  3. 仍然没有候选人时，班次保持为空并记入报告。
func (s *Scheduler) coverageFill(state *runState, report *Report) {
	shuffled := slices.Clone(s.shifts)
	s.rng.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})

	for _, shift := range shuffled {
		if len(state.assignments[shift]) > 0 {
			continue
		}

		var candidate *domain.Participant
		for _, p := range s.participants {
			if p.IsAvailableFor(shift) && !state.assignedOnWeekday(p, shift.Weekday) {
				candidate = p
				break
			}
		}

		emergency := false
		if candidate == nil {
			slog.Warn("保底警告: 班次找不到今日无班的人, 尝试紧急征用", "shift", shift.ID)
			for _, p := range s.participants {
				if p.IsAvailableFor(shift) {
					candidate = p
					emergency = true
					break
				}
			}
		}

		if candidate == nil {
			slog.Error("班次没有任何可用的候选人", "shift", shift.ID)
			report.EmptyShifts = append(report.EmptyShifts, shift.ID)
			continue
		}

		state.assign(shift, candidate)
		if emergency {
			report.EmergencyAssignments = append(report.EmergencyAssignments, EmergencyAssignment{
				ShiftID:   shift.ID,
				StudentID: candidate.Person.StudentID,
				Name:      candidate.Person.Name,
			})
		}
		slog.Debug("保底安排", "shift", shift.ID, "name", candidate.Person.Name, "emergency", emergency)
	}
}

// refineAndFill 阶段二：迭代式打分优化。
// 每轮在所有 (未满配额的人, 班次) 对中找出得分最高的一次有效安排并提交，
// 相同分数时保留先遇到的那一对。迭代上限为总配额的两倍，防止死循环。
// 取消只在迭代边界上检查，此时排班状态是自洽的。
func (s *Scheduler) refineAndFill(ctx context.Context, state *runState, buddyGradeThreshold int32, report *Report) error {
	var totalQuota int32
	for _, p := range s.participants {
		totalQuota += p.Quota
	}
	maxIterations := int(totalQuota) * 2

	for iteration := 1; iteration <= maxIterations; iteration++ {
		if err := ctx.Err(); err != nil {
			return err
		}

		report.Iterations = iteration

		remaining := make([]*domain.Participant, 0)
		for _, p := range s.participants {
			if state.counts[p] < p.Quota {
				remaining = append(remaining, p)
			}
		}
		if len(remaining) == 0 {
			slog.Info("所有人员配额已满足，优化结束", "iteration", iteration)
			return nil
		}

		var bestPerson *domain.Participant
		var bestShift domain.Shift
		maxScore := math.Inf(-1)

		for _, p := range remaining {
			for _, shift := range s.shifts {
				if !s.isValidAssignment(p, shift, state) {
					continue
				}
				score := calculateScoreForAdding(p, shift, state, buddyGradeThreshold)
				if score > maxScore {
					maxScore = score
					bestPerson = p
					bestShift = shift
				}
			}
		}

		if bestPerson == nil {
			slog.Warn("找不到任何有效的加人操作，优化提前结束", "iteration", iteration)
			return nil
		}

		state.assign(bestShift, bestPerson)
		slog.Debug("优化安排", "iteration", iteration, "shift", bestShift.ID, "name", bestPerson.Person.Name, "score", maxScore)
	}

	slog.Warn("优化达到迭代上限", "maxIterations", maxIterations)
	return nil
}

// isValidAssignment 阶段二的硬约束检查，必须全部满足：
// 有空、不在该班次中、夜班需要夜班资格、当天没有其他班。
// 阶段二从不使用阶段一的紧急征用通道，"每日一班"在这里是硬约束。
func (s *Scheduler) isValidAssignment(candidate *domain.Participant, shift domain.Shift, state *runState) bool {
	if !candidate.IsAvailableFor(shift) {
		return false
	}
	if slices.Contains(state.assignments[shift], candidate) {
		return false
	}
	if shift.IsNightShift(s.nightSessions) && !candidate.CanDoNightShift {
		return false
	}
	if state.assignedOnWeekday(candidate, shift.Weekday) {
		return false
	}
	return true
}

// calculateScoreForAdding 为一次有效安排打分，基础分 1000：
//   - 需要陪同的人进入已有高年级的班次：+200
//   - 高年级进入有未被陪同的低年级的班次：+150
//   - 每名已有人员 -50，人越少的班次得分越高，均衡由此产生
func calculateScoreForAdding(person *domain.Participant, shift domain.Shift, state *runState, buddyGradeThreshold int32) float64 {
	score := 1000.0
	occupants := state.assignments[shift]

	if person.NeedsSeniorBuddy {
		for _, occupant := range occupants {
			if isSenior(occupant, buddyGradeThreshold) {
				score += 200.0
				break
			}
		}
	} else if isSenior(person, buddyGradeThreshold) {
		juniors := make([]*domain.Participant, 0)
		for _, occupant := range occupants {
			if occupant.NeedsSeniorBuddy {
				juniors = append(juniors, occupant)
			}
		}
		if len(juniors) > 0 && !anyJuniorPaired(juniors, occupants) {
			score += 150.0
		}
	}

	score -= float64(len(occupants)) * 50.0

	return score
}

// anyJuniorPaired 判断班次中是否已有任何低年级被某位更高年级的成员陪同
func anyJuniorPaired(juniors, occupants []*domain.Participant) bool {
	for _, junior := range juniors {
		for _, occupant := range occupants {
			if isSeniorTo(occupant, junior) {
				return true
			}
		}
	}
	return false
}

// highestGradeNeedingBuddy 计算运行级的陪同判定基准：
// 所有需要陪同的参与者中数值最大（最低年级）的年级，没有时为 0
func highestGradeNeedingBuddy(participants []*domain.Participant) int32 {
	var highest int32
	for _, p := range participants {
		if !p.NeedsSeniorBuddy {
			continue
		}
		grade, err := strconv.ParseInt(p.Grade, 10, 32)
		if err != nil {
			continue
		}
		if int32(grade) > highest {
			highest = int32(grade)
		}
	}
	return highest
}

// parseGrade 将年级标签解析为数值，无法解析时返回 fallback
func parseGrade(grade string, fallback int32) int32 {
	n, err := strconv.ParseInt(grade, 10, 32)
	if err != nil {
		return fallback
	}
	return int32(n)
}

// isSenior 判断参与者相对于陪同基准是否算高年级。
// 年级数值严格小于基准才算高年级；无法解析的年级按最低年级（99）处理；
// 基准为 0 表示没有人需要陪同，此时没有人算高年级。
func isSenior(p *domain.Participant, buddyGradeThreshold int32) bool {
	if buddyGradeThreshold == 0 {
		return false
	}
	return parseGrade(p.Grade, 99) < buddyGradeThreshold
}

// isSeniorTo 判断 p 的年级是否严格高于 other
func isSeniorTo(p, other *domain.Participant) bool {
	return parseGrade(p.Grade, 99) < parseGrade(other.Grade, 0)
}
