package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"schedule-management/backend/internal/dto"
	"schedule-management/backend/internal/service"
	"schedule-management/backend/pkg/response"
)

// DepartmentHandler 院系模块 HTTP 处理器
type DepartmentHandler struct {
	deptSvc   service.DepartmentService
	dupStatus int
}

// NewDepartmentHandler 创建 DepartmentHandler
func NewDepartmentHandler(deptSvc service.DepartmentService, dupStatus int) *DepartmentHandler {
	return &DepartmentHandler{deptSvc: deptSvc, dupStatus: dupStatus}
}

// CreateDepartment 创建院系
// POST /api/v1/departments
func (h *DepartmentHandler) CreateDepartment(c *gin.Context) {
	var req dto.CreateDepartmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	dept, err := h.deptSvc.Create(c.Request.Context(), &req)
	if err != nil {
		h.handleDepartmentError(c, err)
		return
	}

	response.Created(c, dept)
}

// ListDepartments 分页获取院系列表
// GET /api/v1/departments?page=1&page_size=10&name=xxx
func (h *DepartmentHandler) ListDepartments(c *gin.Context) {
	var req dto.DepartmentListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		bindError(c, err)
		return
	}

	list, total, err := h.deptSvc.List(c.Request.Context(), &req)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OKPage(c, list, total, req.GetPage(), req.GetPageSize())
}

// SearchDepartments 按名称检索院系名称
// GET /api/v1/departments/search?name=xxx
func (h *DepartmentHandler) SearchDepartments(c *gin.Context) {
	result, err := h.deptSvc.GetAllDepartmentsList(c.Request.Context(), c.Query("name"))
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, result)
}

// GetDepartment 获取院系详情
// GET /api/v1/departments/:id
func (h *DepartmentHandler) GetDepartment(c *gin.Context) {
	id, ok := MustGetIDParam(c)
	if !ok {
		return
	}

	dept, err := h.deptSvc.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleDepartmentError(c, err)
		return
	}

	response.OK(c, dept)
}

// handleDepartmentError 统一处理院系模块业务错误
func (h *DepartmentHandler) handleDepartmentError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrDepartmentExists):
		response.Duplicate(c, h.dupStatus, 13001, "院系名称或别名已存在")
	case errors.Is(err, service.ErrDepartmentNotFound):
		response.NotFound(c, 13002, "院系不存在")
	default:
		response.InternalError(c)
	}
}
