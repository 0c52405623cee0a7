package catalog

import (
	"net/http"

	"layerit/api/ctxutil"
	"layerit/api/response"
	catalogapp "layerit/application/catalog"

	"github.com/gin-gonic/gin"
)

// Controller Product catalog controller
type Controller struct {
	catalogService *catalogapp.ApplicationService
}

// NewController Create product catalog controller
func NewController(catalogService *catalogapp.ApplicationService) *Controller {
	return &Controller{
		catalogService: catalogService,
	}
}

// RegisterRoutes Register product routes
func (c *Controller) RegisterRoutes(router *gin.RouterGroup) {
	productGroup := router.Group("/products")
	{
		productGroup.GET("", c.ListProducts)
		productGroup.GET("/:id", c.GetProduct)
	}
}

// ListProducts 按肤质、成分、品牌过滤商品
func (c *Controller) ListProducts(ctx *gin.Context) {
	var q catalogapp.ListProductsQuery
	if err := ctx.ShouldBindQuery(&q); err != nil {
		response.HandleError(ctx, err, "Invalid query parameters", http.StatusBadRequest)
		return
	}

	products, err := c.catalogService.ListProducts(ctxutil.WithRequestID(ctx), q)
	if err != nil {
		response.HandleAppError(ctx, err)
		return
	}

	response.HandleList(ctx, products, len(products), "Products retrieved successfully")
}

// GetProduct Get one product
func (c *Controller) GetProduct(ctx *gin.Context) {
	id, err := ctxutil.ParamID(ctx, "id")
	if err != nil {
		response.HandleAppError(ctx, err)
		return
	}

	product, err := c.catalogService.GetProduct(ctxutil.WithRequestID(ctx), id)
	if err != nil {
		response.HandleAppError(ctx, err)
		return
	}

	response.HandleSuccess(ctx, product, "Product retrieved successfully")
}
