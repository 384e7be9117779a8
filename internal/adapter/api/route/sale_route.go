package route

import (
	"github.com/dividazero/dividazero-api/internal/adapter/api/controller"
	"github.com/dividazero/dividazero-api/pkg/auth"
	"github.com/gin-gonic/gin"
)

// RegisterSaleRoutes regista as rotas do módulo de vendas
func RegisterSaleRoutes(r *gin.RouterGroup, saleController *controller.SaleController) {
	sales := r.Group("/sales")
	sales.Use(auth.JWTAuthMiddleware())
	{
		sales.POST("", saleController.Create)
		sales.GET("", saleController.List)
		sales.DELETE("/:id", saleController.Delete)
	}
}
