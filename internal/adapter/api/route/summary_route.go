package route

import (
	"github.com/dividazero/dividazero-api/internal/adapter/api/controller"
	"github.com/dividazero/dividazero-api/pkg/auth"
	"github.com/gin-gonic/gin"
)

// RegisterSummaryRoutes regista a rota do painel de resumo
func RegisterSummaryRoutes(r *gin.RouterGroup, summaryController *controller.SummaryController) {
	summary := r.Group("/summary")
	summary.Use(auth.JWTAuthMiddleware())
	{
		summary.GET("", summaryController.Get)
	}
}
