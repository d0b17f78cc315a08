package dto

// ── 课程模块 DTO ──

// CreateSubjectRequest 创建课程请求
type CreateSubjectRequest struct {
	Name          string `json:"name"            binding:"required,notblank,min=2,max=100"`
	Alias         string `json:"alias"           binding:"omitempty,max=20"`
	Description   string `json:"description"     binding:"omitempty,max=1000"`
	SubjectTypeID int64  `json:"subject_type_id" binding:"required,min=1"`
	DepartmentID  int64  `json:"department_id"   binding:"required,min=1"`
}

// SubjectResponse 课程信息响应
type SubjectResponse struct {
	ID            int64  `json:"id"`
	Name          string `json:"name"`
	Alias         string `json:"alias,omitempty"`
	Description   string `json:"description,omitempty"`
	SubjectTypeID int64  `json:"subject_type_id"`
	DepartmentID  int64  `json:"department_id"`
}
