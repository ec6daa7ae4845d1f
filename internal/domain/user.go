package domain

import (
	"time"
)

type Role string

const (
	RoleScheduler Role = "排班员"
	RoleAdmin     Role = "管理员"
)

// User 表示排班系统的操作员账号
type User struct {
	ID           int64     `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	FullName     string    `json:"fullName"`
	Email        string    `json:"email"`
	Role         Role      `json:"role"`
	CreatedAt    time.Time `json:"createdAt"`
	Version      int32     `json:"-"`
}
