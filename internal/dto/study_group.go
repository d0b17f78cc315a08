package dto

// ── 教学班模块 DTO ──

// CreateStudyGroupRequest 创建教学班请求
type CreateStudyGroupRequest struct {
	Name                  string `json:"name"                    binding:"required,notblank,min=1,max=100"`
	DepartmentID          int64  `json:"department_id"           binding:"required,min=1"`
	StudySpecializationID int64  `json:"study_specialization_id" binding:"required,min=1"`
	SemesterID            int64  `json:"semester_id"             binding:"required,min=1"`
}

// StudyGroupResponse 教学班信息响应
type StudyGroupResponse struct {
	ID                    int64  `json:"id"`
	Name                  string `json:"name"`
	DepartmentID          int64  `json:"department_id"`
	StudySpecializationID int64  `json:"study_specialization_id"`
	SemesterID            int64  `json:"semester_id"`
}
