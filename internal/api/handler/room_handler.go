package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"schedule-management/backend/internal/dto"
	"schedule-management/backend/internal/service"
	"schedule-management/backend/pkg/response"
)

// RoomHandler 教室模块 HTTP 处理器
type RoomHandler struct {
	roomSvc   service.RoomService
	dupStatus int
}

// NewRoomHandler 创建 RoomHandler
func NewRoomHandler(roomSvc service.RoomService, dupStatus int) *RoomHandler {
	return &RoomHandler{roomSvc: roomSvc, dupStatus: dupStatus}
}

// CreateRoom 创建教室
// POST /api/v1/rooms
func (h *RoomHandler) CreateRoom(c *gin.Context) {
	var req dto.CreateRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	room, err := h.roomSvc.Create(c.Request.Context(), &req)
	if err != nil {
		h.handleRoomError(c, err)
		return
	}

	response.Created(c, room)
}

// SearchRooms 检索教室名称
// GET /api/v1/rooms/search?name=xxx&dept_id=1
func (h *RoomHandler) SearchRooms(c *gin.Context) {
	var req dto.NameSearchRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		bindError(c, err)
		return
	}

	result, err := h.roomSvc.Search(c.Request.Context(), &req)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, result)
}

func (h *RoomHandler) handleRoomError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrRoomExists):
		response.Duplicate(c, h.dupStatus, 15001, "教室名称已存在")
	case errors.Is(err, service.ErrDepartmentNotFound):
		response.NotFound(c, 15002, "院系不存在")
	case errors.Is(err, service.ErrRoomTypeNotFound):
		response.NotFound(c, 15003, "教室类型不存在")
	default:
		response.InternalError(c)
	}
}
