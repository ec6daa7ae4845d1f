package handler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/apollomonasa/duty-roster/backend/internal/domain"
	"github.com/apollomonasa/duty-roster/backend/internal/excel"
	"github.com/apollomonasa/duty-roster/backend/internal/scheduler"
	"github.com/apollomonasa/duty-roster/backend/internal/utils"
)

// GenerateSchedule 根据当前的人员、年级规则和班次目录生成一份新的排班，
// 生成成功后会保存为一条排班记录
func (h *Handler) GenerateSchedule(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Seed int64 `json:"seed"`
	}

	// 请求体可以为空，此时使用随机种子
	if err := h.readJSON(r, &req); err != nil && !errors.Is(err, io.EOF) {
		h.badRequest(w, r, err)
		return
	}

	people, err := h.repository.GetAllPeople()
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}
	if len(people) == 0 {
		h.errorResponse(w, r, "请先导入花名册")
		return
	}

	rules, err := h.repository.GetAllGradeRules()
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	specs, err := h.repository.GetShiftSpecs()
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	shifts := make([]domain.Shift, 0, len(specs))
	for _, spec := range specs {
		shift, err := domain.ParseShiftSpec(spec)
		if err != nil {
			h.internalServerError(w, r, err)
			return
		}
		shifts = append(shifts, shift)
	}

	participants := scheduler.PrepareParticipants(people, rules)

	s := scheduler.New(participants, shifts, scheduler.Options{
		Seed:          req.Seed,
		NightSessions: h.config.Scheduler.NightSessions,
	})

	result, report, err := s.Schedule(r.Context())
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	if err := utils.ValidateScheduleResult(result); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	history := &domain.ScheduleHistory{
		Result: result,
	}
	if err := h.repository.InsertScheduleHistory(history); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "生成排班成功", map[string]any{
		"history": history,
		"report":  report,
	})
}

func (h *Handler) GetAllScheduleHistories(w http.ResponseWriter, r *http.Request) {
	histories, err := h.repository.GetAllScheduleHistories()
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "获取排班记录列表成功", histories)
}

func (h *Handler) GetScheduleHistory(w http.ResponseWriter, r *http.Request) {
	history := r.Context().Value(ScheduleHistoryCtx).(*domain.ScheduleHistory)
	h.successResponse(w, r, "获取排班记录成功", history)
}

func (h *Handler) DeleteScheduleHistory(w http.ResponseWriter, r *http.Request) {
	history := r.Context().Value(ScheduleHistoryCtx).(*domain.ScheduleHistory)

	if err := h.repository.DeleteScheduleHistory(history.ID); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "删除排班记录成功", nil)
}

// ExportScheduleHistory 将排班记录导出为 Excel 值班表
func (h *Handler) ExportScheduleHistory(w http.ResponseWriter, r *http.Request) {
	history := r.Context().Value(ScheduleHistoryCtx).(*domain.ScheduleHistory)

	buf, err := excel.ExportSchedule(history.Result)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	filename := fmt.Sprintf("值班表_%s.xlsx", history.CreatedAt.Format("20060102"))
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))

	if _, err := buf.WriteTo(w); err != nil {
		h.logInternalServerError(r, err)
	}
}

// NotifySchedulePublished 将排班记录以邮件形式发送给配置的收件人
func (h *Handler) NotifySchedulePublished(w http.ResponseWriter, r *http.Request) {
	history := r.Context().Value(ScheduleHistoryCtx).(*domain.ScheduleHistory)

	if len(h.config.Notify.Recipients) == 0 {
		h.errorResponse(w, r, "未配置排班通知的收件人")
		return
	}

	lines := make([]string, 0, len(history.Result))
	emptyShiftCount := 0
	for _, entry := range history.Result {
		names := make([]string, 0, len(entry.People))
		for _, p := range entry.People {
			names = append(names, p.Person.Name)
		}
		if len(names) == 0 {
			emptyShiftCount++
			names = append(names, "（空缺）")
		}
		utils.SortNamesByPinyin(names)
		lines = append(lines, fmt.Sprintf(
			"%s 第%d-%d节：%s",
			domain.WeekdayDisplayName(entry.Shift.Weekday),
			entry.Shift.StartSession,
			entry.Shift.EndSession,
			strings.Join(names, "、"),
		))
	}

	data := domain.SchedulePublishedMailData{
		GeneratedAt:     history.CreatedAt.Format("2006-01-02 15:04"),
		Lines:           lines,
		EmptyShiftCount: emptyShiftCount,
	}

	for _, recipient := range h.config.Notify.Recipients {
		mailMessage := domain.MailMessage{
			Type: "schedule_published",
			To:   recipient,
			Data: data,
		}

		mailData, err := json.Marshal(mailMessage)
		if err != nil {
			h.internalServerError(w, r, err)
			return
		}

		ctx, cancel := context.WithTimeout(context.Background(), time.Duration(h.config.RabbitMQ.PublishTimeout)*time.Second)
		err = h.mailChannel.PublishWithContext(
			ctx,
			"",
			"email_queue",
			true,
			false,
			amqp.Publishing{
				ContentType: "application/json",
				Body:        mailData,
			},
		)
		cancel()
		if err != nil {
			h.internalServerError(w, r, err)
			return
		}
	}

	h.successResponse(w, r, "排班通知邮件已发送", nil)
}
