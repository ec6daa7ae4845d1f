package scheduler

import (
	"github.com/apollomonasa/duty-roster/backend/internal/domain"
	"github.com/apollomonasa/duty-roster/backend/internal/timeparse"
)

// 没有匹配到年级规则时的默认策略
const (
	defaultQuota            = int32(1)
	defaultNeedsSeniorBuddy = false
	defaultCanDoNightShift  = true
)

// PrepareParticipants 将花名册与年级规则结合，生成参与排班的 Participant 列表。
// 年级取学号的前两位，与规则按字符串精确匹配；没有匹配规则时使用默认策略。
// 上课时间字符串由 timeparse 解析为不可用时间点集合。纯函数，无 I/O。
func PrepareParticipants(people []*domain.Person, rules []*domain.GradeRule) []*domain.Participant {
	participants := make([]*domain.Participant, 0, len(people))

	for _, person := range people {
		grade := person.StudentID
		if len(grade) > 2 {
			grade = grade[:2]
		}

		var rule *domain.GradeRule
		for _, r := range rules {
			if r.Grade == grade {
				rule = r
				break
			}
		}

		quota := defaultQuota
		needsSeniorBuddy := defaultNeedsSeniorBuddy
		canDoNightShift := defaultCanDoNightShift
		if rule != nil {
			quota = max(rule.ShiftsPerWeek, 0)
			needsSeniorBuddy = rule.NeedsSeniorBuddy
			canDoNightShift = rule.CanDoNightShift
		}

		participants = append(participants, &domain.Participant{
			Person:           person,
			UnavailableSlots: timeparse.ParseAll(person.AllClassTimes),
			Grade:            grade,
			Quota:            quota,
			NeedsSeniorBuddy: needsSeniorBuddy,
			CanDoNightShift:  canDoNightShift,
		})
	}

	return participants
}
