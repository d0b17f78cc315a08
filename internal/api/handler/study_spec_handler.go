package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"schedule-management/backend/internal/dto"
	"schedule-management/backend/internal/service"
	"schedule-management/backend/pkg/response"
)

// StudySpecHandler 专业方向模块 HTTP 处理器
type StudySpecHandler struct {
	specSvc   service.StudySpecService
	dupStatus int
}

// NewStudySpecHandler 创建 StudySpecHandler
func NewStudySpecHandler(specSvc service.StudySpecService, dupStatus int) *StudySpecHandler {
	return &StudySpecHandler{specSvc: specSvc, dupStatus: dupStatus}
}

// CreateStudySpec 创建专业方向
// POST /api/v1/study-specializations
func (h *StudySpecHandler) CreateStudySpec(c *gin.Context) {
	var req dto.CreateStudySpecRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	spec, err := h.specSvc.Create(c.Request.Context(), &req)
	if err != nil {
		h.handleStudySpecError(c, err)
		return
	}

	response.Created(c, spec)
}

// SearchStudySpecs 检索专业方向名称
// GET /api/v1/study-specializations/search?name=xxx&dept_id=1
func (h *StudySpecHandler) SearchStudySpecs(c *gin.Context) {
	var req dto.StudySpecSearchRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		bindError(c, err)
		return
	}

	result, err := h.specSvc.Search(c.Request.Context(), &req)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, result)
}

func (h *StudySpecHandler) handleStudySpecError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrStudySpecExists):
		response.Duplicate(c, h.dupStatus, 14001, "专业方向名称或别名已存在")
	case errors.Is(err, service.ErrDepartmentNotFound):
		response.NotFound(c, 14002, "院系不存在")
	case errors.Is(err, service.ErrStudyTypeNotFound):
		response.NotFound(c, 14003, "学习形式不存在")
	case errors.Is(err, service.ErrStudyDegreeNotFound):
		response.NotFound(c, 14004, "学位层次不存在")
	default:
		response.InternalError(c)
	}
}
