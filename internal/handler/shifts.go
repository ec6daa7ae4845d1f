package handler

import (
	"net/http"

	"github.com/apollomonasa/duty-roster/backend/internal/utils"
)

func (h *Handler) GetShiftSpecs(w http.ResponseWriter, r *http.Request) {
	specs, err := h.repository.GetShiftSpecs()
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "获取班次目录成功", specs)
}

// ReplaceShiftSpecs 整体替换班次目录，替换前检验每条班次定义
func (h *Handler) ReplaceShiftSpecs(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Specs []string `json:"specs" validate:"required,min=1"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	if err := utils.ValidateShiftSpecs(req.Specs); err != nil {
		h.errorResponse(w, r, err.Error())
		return
	}

	if err := h.repository.ReplaceShiftSpecs(req.Specs); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "更新班次目录成功", req.Specs)
}
