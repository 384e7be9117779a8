package main

import (
	"net/http"
	"os"
	"time"

	"github.com/dividazero/dividazero-api/internal/adapter/api/controller"
	"github.com/dividazero/dividazero-api/internal/adapter/api/route"
	"github.com/dividazero/dividazero-api/internal/adapter/repository"
	"github.com/dividazero/dividazero-api/internal/infrastructure/database"
	"github.com/dividazero/dividazero-api/pkg/auth"
	"github.com/dividazero/dividazero-api/pkg/logger"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
)

// App representa a aplicação e suas dependências
type App struct {
	router             *gin.Engine
	db                 *pgxpool.Pool
	logger             logger.Logger
	authController     *controller.AuthController
	customerController *controller.CustomerController
	saleController     *controller.SaleController
	summaryController  *controller.SummaryController
}

// NewApp cria uma nova instância do aplicativo
func NewApp() (*App, error) {
	log := logger.NewLogger()

	db, err := database.NewPostgresDB()
	if err != nil {
		return nil, err
	}

	// Criar repositórios
	profileRepo := repository.NewProfileRepository(db)
	customerRepo := repository.NewCustomerRepository(db)
	saleRepo := repository.NewSaleRepository(db)

	// Criar controllers
	authConfig := auth.NewConfigFromEnv()
	authController := controller.NewAuthController(profileRepo, authConfig, log)
	customerController := controller.NewCustomerController(customerRepo, saleRepo, log)
	saleController := controller.NewSaleController(saleRepo, customerRepo, log)
	summaryController := controller.NewSummaryController(saleRepo, customerRepo, log)

	router := gin.Default()
	router.Use(gin.Recovery())

	// O cliente é uma SPA no navegador
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, "Authorization")
	router.Use(cors.New(corsConfig))

	app := &App{
		router:             router,
		db:                 db,
		logger:             log,
		authController:     authController,
		customerController: customerController,
		saleController:     saleController,
		summaryController:  summaryController,
	}
	app.setupRoutes("/api/v1")

	return app, nil
}

// setupRoutes configura as rotas da aplicação
func (a *App) setupRoutes(basePath string) {
	api := a.router.Group(basePath)

	// Health check
	api.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"version": "1.0.0",
		})
	})

	route.RegisterAuthRoutes(api, a.authController)
	route.RegisterCustomerRoutes(api, a.customerController)
	route.RegisterSaleRoutes(api, a.saleController)
	route.RegisterSummaryRoutes(api, a.summaryController)
}

// Start inicia o servidor HTTP
func (a *App) Start() error {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	srv := &http.Server{
		Addr:         ":" + port,
		Handler:      a.router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
	}

	a.logger.Info("servidor iniciado", "port", port)
	return srv.ListenAndServe()
}

// Close libera os recursos da aplicação
func (a *App) Close() {
	if a.db != nil {
		a.db.Close()
	}
}
