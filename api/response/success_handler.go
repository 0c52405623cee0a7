package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func HandleSuccess(c *gin.Context, data interface{}, message string) {
	c.JSON(http.StatusOK, &Response{
		Success:   true,
		Data:      data,
		Message:   message,
		Code:      http.StatusOK,
		RequestID: getRequestID(c),
	})
}

func HandleCreated(c *gin.Context, data interface{}, message string) {
	c.JSON(http.StatusCreated, &Response{
		Success:   true,
		Data:      data,
		Message:   message,
		Code:      http.StatusCreated,
		RequestID: getRequestID(c),
	})
}

func HandleNoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

// HandleList 列表响应，total 为条目数
func HandleList(c *gin.Context, data interface{}, total int, message string) {
	c.JSON(http.StatusOK, &ListResponse{
		Success:   true,
		Data:      data,
		Total:     total,
		Message:   message,
		Code:      http.StatusOK,
		RequestID: getRequestID(c),
	})
}
