package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"schedule-management/backend/internal/dto"
	"schedule-management/backend/internal/model"
	"schedule-management/backend/internal/service"
	pkgerrors "schedule-management/backend/pkg/errors"
	"schedule-management/backend/pkg/response"
)

// HelperHandler 下拉框字典与名称/ID 互转 HTTP 处理器
type HelperHandler struct {
	helperSvc service.HelperService
}

// NewHelperHandler 创建 HelperHandler
func NewHelperHandler(helperSvc service.HelperService) *HelperHandler {
	return &HelperHandler{helperSvc: helperSvc}
}

// ── 字典 ──

// GetPaginationTypes GET /api/v1/helpers/pagination-types
func (h *HelperHandler) GetPaginationTypes(c *gin.Context) {
	response.OK(c, dto.AvailableDataResponse[int]{DataElements: h.helperSvc.GetAvailablePaginationTypes()})
}

// GetStudyTypes GET /api/v1/helpers/study-types
func (h *HelperHandler) GetStudyTypes(c *gin.Context) {
	result, err := h.helperSvc.GetAvailableStudyTypes(c.Request.Context())
	if err != nil {
		h.handleHelperError(c, err)
		return
	}
	response.OK(c, result)
}

// GetStudyDegreeTypes GET /api/v1/helpers/study-degree-types
func (h *HelperHandler) GetStudyDegreeTypes(c *gin.Context) {
	result, err := h.helperSvc.GetAvailableStudyDegreeTypes(c.Request.Context())
	if err != nil {
		h.handleHelperError(c, err)
		return
	}
	response.OK(c, result)
}

// GetSemesters GET /api/v1/helpers/semesters
func (h *HelperHandler) GetSemesters(c *gin.Context) {
	result, err := h.helperSvc.GetAvailableSemesters(c.Request.Context())
	if err != nil {
		h.handleHelperError(c, err)
		return
	}
	response.OK(c, result)
}

// GetSubjectTypes GET /api/v1/helpers/subject-types?name=xxx
func (h *HelperHandler) GetSubjectTypes(c *gin.Context) {
	result, err := h.helperSvc.GetAvailableSubjectTypes(c.Request.Context(), c.Query("name"))
	if err != nil {
		h.handleHelperError(c, err)
		return
	}
	response.OK(c, result)
}

// GetRoomTypes GET /api/v1/helpers/room-types
func (h *HelperHandler) GetRoomTypes(c *gin.Context) {
	result, err := h.helperSvc.GetAvailableRoomTypes(c.Request.Context())
	if err != nil {
		h.handleHelperError(c, err)
		return
	}
	response.OK(c, result)
}

// GetRoles GET /api/v1/helpers/roles
func (h *HelperHandler) GetRoles(c *gin.Context) {
	result, err := h.helperSvc.GetAvailableRoles(c.Request.Context())
	if err != nil {
		h.handleHelperError(c, err)
		return
	}
	response.OK(c, result)
}

// ── 范围下拉 ──

// GetStudySpecs 某院系下的专业方向
// GET /api/v1/helpers/study-specs?dept_id=1&type=ALL|ST|NS/Z
func (h *HelperHandler) GetStudySpecs(c *gin.Context) {
	var req dto.StudySpecsLookupRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		bindError(c, err)
		return
	}
	specType, ok := model.ParseStudySpecType(req.Type)
	if !ok {
		h.handleHelperError(c, service.ErrInvalidStudySpecType)
		return
	}

	elems, err := h.helperSvc.GetAvailableStudyDegreeBaseAllSpecs(c.Request.Context(), req.DepartmentID, specType)
	if err != nil {
		h.handleHelperError(c, err)
		return
	}
	response.OK(c, dto.AvailableDataResponse[dto.NameIDElement]{DataElements: elems})
}

// GetStudyGroupSemesters 某院系某专业方向下已开设教学班的学期
// GET /api/v1/helpers/study-groups-semesters?dept_id=1&spec_id=2
func (h *HelperHandler) GetStudyGroupSemesters(c *gin.Context) {
	var req dto.StudyGroupSemestersRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		bindError(c, err)
		return
	}

	elems, err := h.helperSvc.GetAvailableSemBaseStudyGroups(c.Request.Context(), req.DepartmentID, req.StudySpecID)
	if err != nil {
		h.handleHelperError(c, err)
		return
	}
	response.OK(c, dto.AvailableDataResponse[dto.NameIDElement]{DataElements: elems})
}

// ── 名称 / ID 互转 ──

// ConvertNamesToIds POST /api/v1/helpers/convert-names-to-ids
func (h *HelperHandler) ConvertNamesToIds(c *gin.Context) {
	var req dto.ConvertNamesToIdsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	result, err := h.helperSvc.ConvertNamesToIds(c.Request.Context(), &req)
	if err != nil {
		h.handleHelperError(c, err)
		return
	}
	response.OK(c, result)
}

// ConvertIdsToNames POST /api/v1/helpers/convert-ids-to-names
func (h *HelperHandler) ConvertIdsToNames(c *gin.Context) {
	var req dto.ConvertIdsToNamesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	result, err := h.helperSvc.ConvertIdsToNames(c.Request.Context(), &req)
	if err != nil {
		h.handleHelperError(c, err)
		return
	}
	response.OK(c, result)
}

func (h *HelperHandler) handleHelperError(c *gin.Context, err error) {
	var convErr *pkgerrors.ConversionError
	switch {
	case errors.Is(err, service.ErrDepartmentNotFound):
		response.NotFound(c, 18001, "院系不存在")
	case errors.Is(err, service.ErrStudySpecNotFound):
		response.NotFound(c, 18002, "专业方向不存在")
	case errors.Is(err, service.ErrInvalidStudySpecType):
		response.BadRequest(c, 18003, "学习形式筛选值只能是 ALL、ST 或 NS/Z")
	case errors.Is(err, service.ErrUnknownConversionType):
		response.BadRequest(c, 18004, "不支持的转换类型")
	case errors.As(err, &convErr):
		response.ErrorWithDetails(c, http.StatusNotFound, 18005, "存在无法解析的名称或 ID", convErr.Error())
	default:
		response.InternalError(c)
	}
}
