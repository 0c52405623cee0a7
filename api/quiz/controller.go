package quiz

import (
	"net/http"

	"layerit/api/ctxutil"
	"layerit/api/response"
	catalogapp "layerit/application/catalog"

	"github.com/gin-gonic/gin"
)

// Controller Stateless quiz controller
type Controller struct {
	catalogService *catalogapp.ApplicationService
}

func NewController(catalogService *catalogapp.ApplicationService) *Controller {
	return &Controller{catalogService: catalogService}
}

func (c *Controller) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/quiz/questions", c.Questions)
	router.POST("/quiz/score", c.Score)
	router.GET("/skin-types/:type/routine", c.RecommendedRoutine)
}

func (c *Controller) Questions(ctx *gin.Context) {
	questions := c.catalogService.Questions()
	response.HandleList(ctx, questions, len(questions), "Questions retrieved successfully")
}

// Score 对一组完整答案评分
func (c *Controller) Score(ctx *gin.Context) {
	var req catalogapp.ScoreRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.HandleError(ctx, err, "Invalid request parameters", http.StatusBadRequest)
		return
	}

	result, err := c.catalogService.ScoreQuiz(ctxutil.WithRequestID(ctx), req)
	if err != nil {
		response.HandleAppError(ctx, err)
		return
	}

	response.HandleSuccess(ctx, result, "Quiz scored successfully")
}

func (c *Controller) RecommendedRoutine(ctx *gin.Context) {
	result, err := c.catalogService.RecommendedRoutine(ctxutil.WithRequestID(ctx), ctx.Param("type"))
	if err != nil {
		response.HandleAppError(ctx, err)
		return
	}

	response.HandleSuccess(ctx, result, "Recommended routine retrieved successfully")
}
