// Package ctxutil 在 gin.Context 和标准 context.Context 之间传递请求信息
package ctxutil

import (
	"context"
	"strconv"

	"layerit/api/response"
	"layerit/infrastructure/persistence"
	"layerit/pkg/errors"

	"github.com/gin-gonic/gin"
)

// WithRequestID 返回带 request id 的请求 context，供应用层和存储层日志使用
func WithRequestID(c *gin.Context) context.Context {
	return persistence.ContextWithRequestID(c.Request.Context(), response.GetRequestID(c))
}

// ParamID 解析路径中的正整数 id
func ParamID(c *gin.Context, name string) (int, error) {
	id, err := strconv.Atoi(c.Param(name))
	if err != nil || id <= 0 {
		return 0, errors.Validation(name + " must be a positive integer")
	}
	return id, nil
}
