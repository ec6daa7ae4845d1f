package handler

import (
	"database/sql"
	"errors"
	"net/http"

	"github.com/apollomonasa/duty-roster/backend/internal/domain"
)

func (h *Handler) GetAllGradeRules(w http.ResponseWriter, r *http.Request) {
	rules, err := h.repository.GetAllGradeRules()
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "获取年级规则列表成功", rules)
}

func (h *Handler) CreateGradeRule(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Grade            string `json:"grade" validate:"required,len=2"`
		ShiftsPerWeek    int32  `json:"shiftsPerWeek" validate:"min=0"`
		NeedsSeniorBuddy bool   `json:"needsSeniorBuddy"`
		CanDoNightShift  bool   `json:"canDoNightShift"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	rule := &domain.GradeRule{
		Grade:            req.Grade,
		ShiftsPerWeek:    req.ShiftsPerWeek,
		NeedsSeniorBuddy: req.NeedsSeniorBuddy,
		CanDoNightShift:  req.CanDoNightShift,
	}

	if err := h.repository.CreateGradeRule(rule); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "创建年级规则成功", rule)
}

func (h *Handler) GetGradeRule(w http.ResponseWriter, r *http.Request) {
	rule := r.Context().Value(GradeRuleCtx).(*domain.GradeRule)
	h.successResponse(w, r, "获取年级规则成功", rule)
}

func (h *Handler) UpdateGradeRule(w http.ResponseWriter, r *http.Request) {
	rule := r.Context().Value(GradeRuleCtx).(*domain.GradeRule)

	var req struct {
		Grade            *string `json:"grade" validate:"omitempty,len=2"`
		ShiftsPerWeek    *int32  `json:"shiftsPerWeek" validate:"omitempty,min=0"`
		NeedsSeniorBuddy *bool   `json:"needsSeniorBuddy"`
		CanDoNightShift  *bool   `json:"canDoNightShift"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	if req.Grade != nil {
		rule.Grade = *req.Grade
	}
	if req.ShiftsPerWeek != nil {
		rule.ShiftsPerWeek = *req.ShiftsPerWeek
	}
	if req.NeedsSeniorBuddy != nil {
		rule.NeedsSeniorBuddy = *req.NeedsSeniorBuddy
	}
	if req.CanDoNightShift != nil {
		rule.CanDoNightShift = *req.CanDoNightShift
	}

	if err := h.repository.UpdateGradeRule(rule); err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			h.errorResponse(w, r, "更新年级规则失败，请重试")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.successResponse(w, r, "更新年级规则成功", rule)
}

func (h *Handler) DeleteGradeRule(w http.ResponseWriter, r *http.Request) {
	rule := r.Context().Value(GradeRuleCtx).(*domain.GradeRule)

	if err := h.repository.DeleteGradeRule(rule.ID); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "删除年级规则成功", nil)
}
