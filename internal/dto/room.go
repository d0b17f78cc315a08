package dto

// ── 教室模块 DTO ──

// CreateRoomRequest 创建教室请求
type CreateRoomRequest struct {
	Name         string `json:"name"          binding:"required,notblank,min=1,max=50"`
	Description  string `json:"description"   binding:"omitempty,max=300"`
	Capacity     int    `json:"capacity"      binding:"min=0,max=2000"`
	RoomTypeID   int64  `json:"room_type_id"  binding:"required,min=1"`
	DepartmentID int64  `json:"department_id" binding:"required,min=1"`
}

// RoomResponse 教室信息响应
type RoomResponse struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	Description  string `json:"description,omitempty"`
	Capacity     int    `json:"capacity"`
	RoomTypeID   int64  `json:"room_type_id"`
	DepartmentID int64  `json:"department_id"`
}

// NameSearchRequest 教室 / 课程按名称检索参数，dept_id 为 0 时不限院系
type NameSearchRequest struct {
	Name         string `form:"name"    binding:"omitempty,max=100"`
	DepartmentID int64  `form:"dept_id" binding:"omitempty,min=1"`
}
