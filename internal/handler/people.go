package handler

import (
	"database/sql"
	"errors"
	"net/http"

	"github.com/apollomonasa/duty-roster/backend/internal/domain"
	"github.com/apollomonasa/duty-roster/backend/internal/excel"
)

// 花名册文件大小上限
const maxRosterFileSize = 10 << 20

func (h *Handler) GetAllPeople(w http.ResponseWriter, r *http.Request) {
	people, err := h.repository.GetAllPeople()
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "获取人员列表成功", people)
}

// ImportRoster 接收 multipart 上传的花名册 Excel，
// 解析后按学号插入或更新人员信息
func (h *Handler) ImportRoster(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxRosterFileSize); err != nil {
		h.errorResponse(w, r, "无法解析上传的文件")
		return
	}

	file, _, err := r.FormFile("file")
	if err != nil {
		h.errorResponse(w, r, "请在 file 字段中上传花名册文件")
		return
	}
	defer file.Close()

	people, err := excel.ParseRoster(file)
	if err != nil {
		h.errorResponse(w, r, err.Error())
		return
	}

	if len(people) == 0 {
		h.errorResponse(w, r, "花名册中没有有效的人员记录")
		return
	}

	result, err := h.repository.UpsertPeople(people)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "导入花名册成功", result)
}

func (h *Handler) GetPerson(w http.ResponseWriter, r *http.Request) {
	person := r.Context().Value(PersonCtx).(*domain.Person)
	h.successResponse(w, r, "获取人员信息成功", person)
}

func (h *Handler) UpdatePerson(w http.ResponseWriter, r *http.Request) {
	person := r.Context().Value(PersonCtx).(*domain.Person)

	var req struct {
		Name          *string `json:"name"`
		AllClassTimes *string `json:"allClassTimes"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	if req.Name != nil {
		person.Name = *req.Name
	}
	if req.AllClassTimes != nil {
		person.AllClassTimes = *req.AllClassTimes
	}

	if err := h.repository.UpdatePerson(person); err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			h.errorResponse(w, r, "更新人员信息失败，请重试")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.successResponse(w, r, "更新人员信息成功", person)
}

func (h *Handler) DeletePerson(w http.ResponseWriter, r *http.Request) {
	person := r.Context().Value(PersonCtx).(*domain.Person)

	if err := h.repository.DeletePerson(person.StudentID); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "删除人员成功", nil)
}
