package route

import (
	"github.com/dividazero/dividazero-api/internal/adapter/api/controller"
	"github.com/dividazero/dividazero-api/pkg/auth"
	"github.com/gin-gonic/gin"
)

// RegisterAuthRoutes regista as rotas de autenticação
func RegisterAuthRoutes(r *gin.RouterGroup, authController *controller.AuthController) {
	authRouter := r.Group("/auth")
	{
		authRouter.POST("/login", authController.Login)
		authRouter.POST("/register", authController.Register)
		authRouter.GET("/me", auth.JWTAuthMiddleware(), authController.Me)
	}
}
