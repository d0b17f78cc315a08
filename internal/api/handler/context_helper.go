package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"schedule-management/backend/internal/api/middleware"
	"schedule-management/backend/internal/dto"
	"schedule-management/backend/pkg/response"
)

func init() {
	dto.RegisterValidators()
}

// idURI 路径参数 :id
type idURI struct {
	ID int64 `uri:"id" binding:"required,min=1"`
}

// MustGetIDParam 解析路径中的正整数 ID。
// 解析失败时写入 400 响应，调用方应在 ok=false 时直接 return。
func MustGetIDParam(c *gin.Context) (int64, bool) {
	var uri idURI
	if err := c.ShouldBindUri(&uri); err != nil {
		response.BadRequest(c, 10001, "ID 必须是正整数")
		return 0, false
	}
	return uri.ID, true
}

// bindError 参数校验失败的统一响应
func bindError(c *gin.Context, err error) {
	if middleware.IsBodyTooLarge(err) {
		response.Error(c, http.StatusRequestEntityTooLarge, 10005, "请求体过大")
		return
	}
	response.ErrorWithDetails(c, http.StatusBadRequest, 10001, "参数校验失败", err.Error())
}
