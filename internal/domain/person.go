package domain

import "time"

// Person 表示花名册中的一位人员，学号唯一
type Person struct {
	StudentID     string    `json:"studentID"`
	Name          string    `json:"name"`
	AllClassTimes string    `json:"allClassTimes"` // 聚合后的原始上课时间字符串，分号分隔
	CreatedAt     time.Time `json:"createdAt"`
	Version       int32     `json:"-"`
}

// ImportResult 用于报告一次花名册导入的结果
type ImportResult struct {
	NewCount     int `json:"newCount"`
	UpdatedCount int `json:"updatedCount"`
}
