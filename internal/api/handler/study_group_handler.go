package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"schedule-management/backend/internal/dto"
	"schedule-management/backend/internal/service"
	"schedule-management/backend/pkg/response"
)

// StudyGroupHandler 教学班模块 HTTP 处理器
type StudyGroupHandler struct {
	groupSvc  service.StudyGroupService
	dupStatus int
}

// NewStudyGroupHandler 创建 StudyGroupHandler
func NewStudyGroupHandler(groupSvc service.StudyGroupService, dupStatus int) *StudyGroupHandler {
	return &StudyGroupHandler{groupSvc: groupSvc, dupStatus: dupStatus}
}

// CreateStudyGroup 创建教学班
// POST /api/v1/study-groups
func (h *StudyGroupHandler) CreateStudyGroup(c *gin.Context) {
	var req dto.CreateStudyGroupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	group, err := h.groupSvc.Create(c.Request.Context(), &req)
	if err != nil {
		h.handleStudyGroupError(c, err)
		return
	}

	response.Created(c, group)
}

func (h *StudyGroupHandler) handleStudyGroupError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrStudyGroupExists):
		response.Duplicate(c, h.dupStatus, 17001, "教学班名称已存在")
	case errors.Is(err, service.ErrDepartmentNotFound):
		response.NotFound(c, 17002, "院系不存在")
	case errors.Is(err, service.ErrStudySpecNotFound):
		response.NotFound(c, 17003, "专业方向不存在")
	case errors.Is(err, service.ErrStudySpecNotInDepartment):
		response.BadRequest(c, 17004, "专业方向不属于该院系")
	case errors.Is(err, service.ErrSemesterNotFound):
		response.NotFound(c, 17005, "学期不存在")
	default:
		response.InternalError(c)
	}
}
