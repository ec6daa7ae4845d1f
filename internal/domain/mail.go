package domain

type MailMessage struct {
	Type string `json:"type"`
	To   string `json:"to"`
	Data any    `json:"data"`
}

type ResetPasswordMailData struct {
	FullName   string `json:"fullName"`
	OTP        string `json:"otp"`
	Expiration int    `json:"expiration"`
}

// SchedulePublishedMailData 是排班结果通知邮件的正文数据，
// Lines 中的每一项是一行已排好的班次描述
type SchedulePublishedMailData struct {
	GeneratedAt     string   `json:"generatedAt"`
	Lines           []string `json:"lines"`
	EmptyShiftCount int      `json:"emptyShiftCount"`
}
