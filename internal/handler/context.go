package handler

type ContextKey string

var (
	RoleCtxKey         ContextKey = "role"
	SubCtxKey          ContextKey = "sub"
	MyInfoCtx          ContextKey = "myInfo"
	PersonCtx          ContextKey = "person"
	GradeRuleCtx       ContextKey = "gradeRule"
	ScheduleHistoryCtx ContextKey = "scheduleHistory"
)
