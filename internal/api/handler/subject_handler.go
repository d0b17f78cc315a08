package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"schedule-management/backend/internal/dto"
	"schedule-management/backend/internal/service"
	"schedule-management/backend/pkg/response"
)

// SubjectHandler 课程模块 HTTP 处理器
type SubjectHandler struct {
	subjectSvc service.SubjectService
	dupStatus  int
}

// NewSubjectHandler 创建 SubjectHandler
func NewSubjectHandler(subjectSvc service.SubjectService, dupStatus int) *SubjectHandler {
	return &SubjectHandler{subjectSvc: subjectSvc, dupStatus: dupStatus}
}

// CreateSubject 创建课程
// POST /api/v1/subjects
func (h *SubjectHandler) CreateSubject(c *gin.Context) {
	var req dto.CreateSubjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	subject, err := h.subjectSvc.Create(c.Request.Context(), &req)
	if err != nil {
		h.handleSubjectError(c, err)
		return
	}

	response.Created(c, subject)
}

// SearchSubjects 检索课程名称
// GET /api/v1/subjects/search?name=xxx&dept_id=1
func (h *SubjectHandler) SearchSubjects(c *gin.Context) {
	var req dto.NameSearchRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		bindError(c, err)
		return
	}

	result, err := h.subjectSvc.Search(c.Request.Context(), &req)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, result)
}

func (h *SubjectHandler) handleSubjectError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrSubjectExists):
		response.Duplicate(c, h.dupStatus, 16001, "课程名称已存在")
	case errors.Is(err, service.ErrDepartmentNotFound):
		response.NotFound(c, 16002, "院系不存在")
	case errors.Is(err, service.ErrSubjectTypeNotFound):
		response.NotFound(c, 16003, "课程类型不存在")
	default:
		response.InternalError(c)
	}
}
