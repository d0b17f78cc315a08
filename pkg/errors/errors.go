package errors

import (
	"errors"
	"fmt"
)

// 领域错误基类：各业务模块的哨兵错误以 %w 包装这些错误，
// Handler 层据此区分 4xx 与 5xx
var (
	// ErrDuplicateEntity 名称或别名已存在
	ErrDuplicateEntity = errors.New("实体已存在")
	// ErrNotFound 引用的实体不存在
	ErrNotFound = errors.New("实体不存在")
	// ErrConversionFailure 名称/ID 批量互转时存在无法解析的元素
	ErrConversionFailure = errors.New("名称与 ID 转换失败")
)

// ConversionError 描述首个无法解析的元素
type ConversionError struct {
	Type string
	Name string // 名称转 ID 时设置
	ID   int64  // ID 转名称时设置
}

func (e *ConversionError) Error() string {
	if e.Name != "" {
		return fmt.Sprintf("%s: 无法解析名称 %q", e.Type, e.Name)
	}
	return fmt.Sprintf("%s: 无法解析 ID %d", e.Type, e.ID)
}

// Unwrap 使 errors.Is(err, ErrConversionFailure) 成立
func (e *ConversionError) Unwrap() error { return ErrConversionFailure }
