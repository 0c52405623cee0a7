package compat

import (
	"net/http"

	"layerit/api/ctxutil"
	"layerit/api/response"
	catalogapp "layerit/application/catalog"

	"github.com/gin-gonic/gin"
)

// Controller Compatibility check controller
type Controller struct {
	catalogService *catalogapp.ApplicationService
}

func NewController(catalogService *catalogapp.ApplicationService) *Controller {
	return &Controller{catalogService: catalogService}
}

func (c *Controller) RegisterRoutes(router *gin.RouterGroup) {
	router.POST("/compatibility", c.Check)
	router.GET("/compatibility/rules", c.Rules)
}

// Check 比较两个商品，不影响会话中的选择
func (c *Controller) Check(ctx *gin.Context) {
	var req catalogapp.CompatibilityRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.HandleError(ctx, err, "Invalid request parameters", http.StatusBadRequest)
		return
	}

	result, err := c.catalogService.CheckCompatibility(ctxutil.WithRequestID(ctx), req)
	if err != nil {
		response.HandleAppError(ctx, err)
		return
	}

	response.HandleSuccess(ctx, result, result.Message)
}

// Rules 冲突规则表
func (c *Controller) Rules(ctx *gin.Context) {
	rules := c.catalogService.ConflictRules()
	response.HandleList(ctx, rules, len(rules), "Conflict rules retrieved successfully")
}
