package dto

// ── 辅助查询模块 DTO ──

// ConvertNamesToIdsRequest 名称批量转 ID 请求
type ConvertNamesToIdsRequest struct {
	Type  string   `json:"type"  binding:"required"`
	Names []string `json:"names" binding:"required,min=1,max=500,dive,required"`
}

// ConvertIdsToNamesRequest ID 批量转名称请求
type ConvertIdsToNamesRequest struct {
	Type string  `json:"type" binding:"required"`
	IDs  []int64 `json:"ids"  binding:"required,min=1,max=500,dive,min=1"`
}

// ConvertToNameWithIdResponse 名称与 ID 互转响应，顺序与请求一致
type ConvertToNameWithIdResponse struct {
	Results []NameIDElement `json:"results"`
}

// StudySpecsLookupRequest 按院系获取专业方向下拉参数
type StudySpecsLookupRequest struct {
	DepartmentID int64  `form:"dept_id" binding:"required,min=1"`
	Type         string `form:"type"`
}

// StudyGroupSemestersRequest 按院系 + 专业方向获取学期下拉参数
type StudyGroupSemestersRequest struct {
	DepartmentID int64 `form:"dept_id" binding:"required,min=1"`
	StudySpecID  int64 `form:"spec_id" binding:"required,min=1"`
}
