package route

import (
	"github.com/dividazero/dividazero-api/internal/adapter/api/controller"
	"github.com/dividazero/dividazero-api/pkg/auth"
	"github.com/gin-gonic/gin"
)

// RegisterCustomerRoutes regista as rotas do módulo de clientes
func RegisterCustomerRoutes(r *gin.RouterGroup, customerController *controller.CustomerController) {
	customers := r.Group("/customers")
	customers.Use(auth.JWTAuthMiddleware())
	{
		customers.POST("", customerController.Create)
		customers.GET("", customerController.List)
		customers.GET("/debtors", customerController.ListDebtors)
		customers.GET("/:id", customerController.Get)
		customers.GET("/:id/sales", customerController.ListOpenSales)
		customers.POST("/:id/payments", customerController.RecordPayment)
		customers.GET("/:id/notify", customerController.Notify)
		customers.DELETE("/:id", customerController.Delete)
	}
}
