package session

import (
	"net/http"

	"layerit/api/ctxutil"
	"layerit/api/response"
	sessionapp "layerit/application/session"

	"github.com/gin-gonic/gin"
)

// Controller Session controller
// 进程内只有一个会话，所有路由操作同一个会话
type Controller struct {
	sessionService *sessionapp.ApplicationService
}

// NewController Create session controller
func NewController(sessionService *sessionapp.ApplicationService) *Controller {
	return &Controller{
		sessionService: sessionService,
	}
}

// RegisterRoutes Register session routes
func (c *Controller) RegisterRoutes(router *gin.RouterGroup) {
	sessionGroup := router.Group("/session")
	{
		sessionGroup.GET("", c.GetSession)
		sessionGroup.PUT("/view", c.Navigate)
		sessionGroup.POST("/quiz/answers", c.AnswerQuiz)
		sessionGroup.POST("/selection/:id", c.ToggleSelection)
		sessionGroup.POST("/comparison", c.Compare)
		sessionGroup.DELETE("/comparison", c.ClearComparison)
		sessionGroup.GET("/routine", c.GetRoutine)
		sessionGroup.POST("/routine/:id", c.AddToRoutine)
		sessionGroup.DELETE("/routine/:id", c.RemoveFromRoutine)
		sessionGroup.GET("/results", c.Results)
	}
}

// GetSession 当前会话快照
func (c *Controller) GetSession(ctx *gin.Context) {
	snapshot := c.sessionService.Snapshot(ctxutil.WithRequestID(ctx))
	response.HandleSuccess(ctx, snapshot, "Session retrieved successfully")
}

// Navigate 切换视图；进入 quiz 会重置进度
func (c *Controller) Navigate(ctx *gin.Context) {
	var req sessionapp.NavigateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.HandleError(ctx, err, "Invalid request parameters", http.StatusBadRequest)
		return
	}

	snapshot, err := c.sessionService.Navigate(ctxutil.WithRequestID(ctx), req)
	if err != nil {
		response.HandleAppError(ctx, err)
		return
	}

	response.HandleSuccess(ctx, snapshot, "View changed successfully")
}

func (c *Controller) AnswerQuiz(ctx *gin.Context) {
	var req sessionapp.AnswerRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.HandleError(ctx, err, "Invalid request parameters", http.StatusBadRequest)
		return
	}

	result, err := c.sessionService.AnswerQuiz(ctxutil.WithRequestID(ctx), req)
	if err != nil {
		response.HandleAppError(ctx, err)
		return
	}

	message := "Answer recorded"
	if result.Done {
		message = "Quiz completed"
	}
	response.HandleSuccess(ctx, result, message)
}

func (c *Controller) ToggleSelection(ctx *gin.Context) {
	id, err := ctxutil.ParamID(ctx, "id")
	if err != nil {
		response.HandleAppError(ctx, err)
		return
	}

	snapshot, err := c.sessionService.ToggleSelection(ctxutil.WithRequestID(ctx), id)
	if err != nil {
		response.HandleAppError(ctx, err)
		return
	}

	response.HandleSuccess(ctx, snapshot, "Selection updated")
}

// Compare 比较已选中的两个商品
func (c *Controller) Compare(ctx *gin.Context) {
	result, err := c.sessionService.Compare(ctxutil.WithRequestID(ctx))
	if err != nil {
		response.HandleAppError(ctx, err)
		return
	}

	response.HandleSuccess(ctx, result, result.Message)
}

func (c *Controller) ClearComparison(ctx *gin.Context) {
	c.sessionService.ClearComparison(ctxutil.WithRequestID(ctx))
	response.HandleNoContent(ctx)
}

// GetRoutine routine 及两两兼容性报告
func (c *Controller) GetRoutine(ctx *gin.Context) {
	routine := c.sessionService.Routine(ctxutil.WithRequestID(ctx))
	response.HandleSuccess(ctx, routine, "Routine retrieved successfully")
}

func (c *Controller) AddToRoutine(ctx *gin.Context) {
	id, err := ctxutil.ParamID(ctx, "id")
	if err != nil {
		response.HandleAppError(ctx, err)
		return
	}

	routine, err := c.sessionService.AddToRoutine(ctxutil.WithRequestID(ctx), id)
	if err != nil {
		response.HandleAppError(ctx, err)
		return
	}

	response.HandleCreated(ctx, routine, "Product added to routine")
}

func (c *Controller) RemoveFromRoutine(ctx *gin.Context) {
	id, err := ctxutil.ParamID(ctx, "id")
	if err != nil {
		response.HandleAppError(ctx, err)
		return
	}

	routine, err := c.sessionService.RemoveFromRoutine(ctxutil.WithRequestID(ctx), id)
	if err != nil {
		response.HandleAppError(ctx, err)
		return
	}

	response.HandleSuccess(ctx, routine, "Product removed from routine")
}

// Results 肤质结果；还没做测验时 404
func (c *Controller) Results(ctx *gin.Context) {
	result, err := c.sessionService.Results(ctxutil.WithRequestID(ctx))
	if err != nil {
		response.HandleAppError(ctx, err)
		return
	}

	response.HandleSuccess(ctx, result, "Results retrieved successfully")
}
