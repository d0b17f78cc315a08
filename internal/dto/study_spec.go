package dto

// ── 专业方向模块 DTO ──

// CreateStudySpecRequest 创建专业方向请求
type CreateStudySpecRequest struct {
	Name          string `json:"name"            binding:"required,notblank,min=2,max=100"`
	Alias         string `json:"alias"           binding:"required,notblank,min=1,max=20"`
	DepartmentID  int64  `json:"department_id"   binding:"required,min=1"`
	StudyTypeID   int64  `json:"study_type_id"   binding:"required,min=1"`
	StudyDegreeID int64  `json:"study_degree_id" binding:"required,min=1"`
}

// StudySpecSearchRequest 专业方向检索参数，dept_id 为 0 时不限院系
type StudySpecSearchRequest struct {
	Name         string `form:"name"    binding:"omitempty,max=100"`
	DepartmentID int64  `form:"dept_id" binding:"omitempty,min=1"`
}

// StudySpecResponse 专业方向信息响应
type StudySpecResponse struct {
	ID            int64  `json:"id"`
	Name          string `json:"name"`
	Alias         string `json:"alias"`
	DepartmentID  int64  `json:"department_id"`
	StudyTypeID   int64  `json:"study_type_id"`
	StudyDegreeID int64  `json:"study_degree_id"`
}
