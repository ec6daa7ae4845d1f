// Package timeparse 将教务系统导出的原始上课时间字符串解析为
// 一周内的不可用时间点集合。
//
// 输入是分号分隔的片段，例如 "1-16周 星期一第1,2节;星期三第6-7节"。
// 片段中的周次信息会被忽略，因为排班只针对一个代表周。
package timeparse

import (
	"fmt"
	"log/slog"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/apollomonasa/duty-roster/backend/internal/domain"
)

// 正则表达式只捕获星期和节次，匹配到第一个"节"字为止，周次等前缀被跳过
var fragmentPattern = regexp.MustCompile(`星期([一二三四五六日]{1,7})第(.+?)节`)

var weekdayByGlyph = map[rune]time.Weekday{
	'一': time.Monday,
	'二': time.Tuesday,
	'三': time.Wednesday,
	'四': time.Thursday,
	'五': time.Friday,
	'六': time.Saturday,
	'日': time.Sunday,
}

// ParseAll 解析完整的上课时间字符串，返回不可用时间点的集合。
// 无法解析的片段会被跳过并记录一条警告，不会中断其余片段的解析。
func ParseAll(raw string) domain.SlotSet {
	slots := make(domain.SlotSet)

	for _, fragment := range strings.Split(raw, ";") {
		fragment = strings.TrimSpace(fragment)
		if fragment == "" {
			continue
		}

		if err := parseFragment(fragment, slots); err != nil {
			slog.Warn("跳过无法解析的上课时间片段", "fragment", fragment, "error", err)
		}
	}

	return slots
}

// parseFragment 解析单个片段并将星期 × 节次的笛卡尔积并入集合。
// 片段必须完整解析成功才会写入集合，避免留下部分结果。
func parseFragment(fragment string, slots domain.SlotSet) error {
	m := fragmentPattern.FindStringSubmatch(fragment)
	if m == nil {
		return fmt.Errorf("片段不符合 星期X第N节 的格式")
	}

	weekdays, err := parseWeekdays(m[1])
	if err != nil {
		return err
	}

	sessions, err := parseSessions(m[2])
	if err != nil {
		return err
	}

	for _, weekday := range weekdays {
		for _, session := range sessions {
			slots.Add(domain.WeeklySlot{Weekday: weekday, Session: session})
		}
	}

	return nil
}

func parseWeekdays(glyphs string) ([]time.Weekday, error) {
	weekdays := make([]time.Weekday, 0, len(glyphs))
	for _, glyph := range glyphs {
		weekday, ok := weekdayByGlyph[glyph]
		if !ok {
			return nil, fmt.Errorf("非法的星期字符 %q", glyph)
		}
		weekdays = append(weekdays, weekday)
	}
	return weekdays, nil
}

// parseSessions 解析节次列表，支持单节（"3"）和区间（"6-7"），逗号分隔
func parseSessions(raw string) ([]int32, error) {
	var sessions []int32

	for _, part := range strings.Split(raw, ",") {
		rangeParts := strings.SplitN(part, "-", 2)

		start, err := strconv.ParseInt(strings.TrimSpace(rangeParts[0]), 10, 32)
		if err != nil {
			return nil, fmt.Errorf("非法的节次 %q", part)
		}

		end := start
		if len(rangeParts) == 2 {
			end, err = strconv.ParseInt(strings.TrimSpace(rangeParts[1]), 10, 32)
			if err != nil {
				return nil, fmt.Errorf("非法的节次区间 %q", part)
			}
		}

		for session := start; session <= end; session++ {
			sessions = append(sessions, int32(session))
		}
	}

	return sessions, nil
}
