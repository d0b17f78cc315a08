package dto

// ── 院系模块 DTO ──

// CreateDepartmentRequest 创建院系请求
type CreateDepartmentRequest struct {
	Name  string `json:"name"  binding:"required,notblank,min=2,max=100"`
	Alias string `json:"alias" binding:"required,notblank,min=1,max=20"`
}

// DepartmentListRequest 院系分页列表查询参数
type DepartmentListRequest struct {
	PaginationRequest
	Name string `form:"name" binding:"omitempty,max=100"`
}

// DepartmentResponse 院系基本信息（创建后返回，含数据库分配的 ID）
type DepartmentResponse struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Alias string `json:"alias"`
}

// DepartmentDetailResponse 院系详细信息
type DepartmentDetailResponse struct {
	ID             int64  `json:"id"`
	Name           string `json:"name"`
	Alias          string `json:"alias"`
	StudySpecCount int64  `json:"study_spec_count"`
	CreatedAt      string `json:"created_at"`
	UpdatedAt      string `json:"updated_at"`
}
