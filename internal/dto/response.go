package dto

// ── 通用响应 ──

// NameIDElement 下拉选项 / 名称与 ID 互转元素
type NameIDElement struct {
	Name string `json:"name"`
	ID   int64  `json:"id"`
}

// AvailableDataResponse 字典数据响应，列表永不为 null
type AvailableDataResponse[T any] struct {
	DataElements []T `json:"data_elements"`
}

// SearchQueryResponse 名称检索响应，无匹配时为空数组
type SearchQueryResponse struct {
	Results []string `json:"results"`
}

// ── 分页请求 ──

// PaginationRequest 通用分页参数
type PaginationRequest struct {
	Page     int `form:"page"      binding:"omitempty,min=1"`
	PageSize int `form:"page_size" binding:"omitempty,min=1,max=100"`
}

// GetPage 获取页码（含默认值）
func (p *PaginationRequest) GetPage() int {
	if p.Page <= 0 {
		return 1
	}
	return p.Page
}

// GetPageSize 获取每页数量（含默认值）
func (p *PaginationRequest) GetPageSize() int {
	if p.PageSize <= 0 {
		return 10
	}
	return p.PageSize
}

// GetOffset 计算偏移量
func (p *PaginationRequest) GetOffset() int {
	return (p.GetPage() - 1) * p.GetPageSize()
}
