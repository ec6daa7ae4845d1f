package utils

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/apollomonasa/duty-roster/backend/internal/domain"
)

var commonSurnames = []string{
	"王", "李", "张", "刘", "陈", "杨", "赵", "黄", "周", "吴",
	"徐", "孙", "胡", "朱", "高", "林", "何", "郭", "马", "罗",
}
var commonNameCharacters = []string{
	"伟", "强", "芳", "敏", "静", "丽", "刚", "杰", "娟", "勇",
	"艳", "涛", "明", "军", "磊", "洋", "霞", "飞", "玲", "雪",
	"超", "华", "平", "辉", "梅", "鑫", "龙", "鹏", "玉", "斌",
	"庆", "建", "丹", "彬", "凤", "旭", "宁", "乐", "成", "欣",
}

func GenerateRandomChineseName() string {
	name := commonSurnames[rand.Intn(len(commonSurnames))]
	nameLength := rand.Intn(2) + 1
	for i := 0; i < nameLength; i++ {
		name += commonNameCharacters[rand.Intn(len(commonNameCharacters))]
	}
	return name
}

var digits = "0123456789"

// GenerateRandomStudentID 生成指定年级前缀的随机学号，例如 "23" -> "23030012345"
func GenerateRandomStudentID(grade string) string {
	id := grade
	for i := 0; i < 9; i++ {
		id += string(digits[rand.Intn(len(digits))])
	}
	return id
}

var weekdayGlyphs = []string{"一", "二", "三", "四", "五"}

// GenerateRandomClassTimes 生成随机的原始上课时间字符串，
// 与教务系统导出的格式一致，用于造测试数据
func GenerateRandomClassTimes() string {
	fragmentCount := rand.Intn(4) + 2
	fragments := make([]string, 0, fragmentCount)

	for i := 0; i < fragmentCount; i++ {
		day := weekdayGlyphs[rand.Intn(len(weekdayGlyphs))]
		start := rand.Intn(9) + 1
		length := rand.Intn(2) + 1

		weekPrefix := ""
		if rand.Intn(2) == 0 {
			weekPrefix = fmt.Sprintf("%d-%d周 ", rand.Intn(4)+1, rand.Intn(8)+9)
		}

		if length == 1 {
			fragments = append(fragments, fmt.Sprintf("%s星期%s第%d节", weekPrefix, day, start))
		} else {
			fragments = append(fragments, fmt.Sprintf("%s星期%s第%d-%d节", weekPrefix, day, start, start+length))
		}
	}

	return strings.Join(fragments, ";")
}

// GenerateRandomPerson 从给定的年级中随机生成一位人员
func GenerateRandomPerson(grades []string) *domain.Person {
	grade := grades[rand.Intn(len(grades))]
	return &domain.Person{
		StudentID:     GenerateRandomStudentID(grade),
		Name:          GenerateRandomChineseName(),
		AllClassTimes: GenerateRandomClassTimes(),
	}
}

func GenerateRandomOTP() string {
	return fmt.Sprintf("%06d", rand.Intn(1000000))
}
