package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/rafabene/workout-api/docs"
	"github.com/rafabene/workout-api/internal/handlers/dto"
	httphandlers "github.com/rafabene/workout-api/internal/handlers/http"
	"github.com/rafabene/workout-api/internal/handlers/middleware"
	"github.com/rafabene/workout-api/internal/infrastructure/config"
	"github.com/rafabene/workout-api/internal/infrastructure/i18n"
	"github.com/rafabene/workout-api/internal/infrastructure/logging"
	"github.com/rafabene/workout-api/internal/infrastructure/persistence/postgres"
	"github.com/rafabene/workout-api/internal/services"
)

//	@title			Workout API
//	@version		1.0
//	@description	API de gerenciamento de atletas, categorias e centros de treinamento
//	@BasePath		/

func main() {
	// Carregar configurações
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load config:", err)
	}

	// Inicializar logger
	logger := logging.NewSlogLogger(cfg.Logging.Level)
	logger.Info("starting workout api",
		"env", cfg.Env,
		"version", "dev",
	)

	// Conectar ao banco de dados
	db, err := postgres.NewDatabaseConnection(&cfg.Database, logger)
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		log.Fatal(err)
	}

	// Aplicar schema
	if err := postgres.Migrate(db); err != nil {
		logger.Error("failed to run migrations", "error", err)
		log.Fatal(err)
	}

	// Inicializar i18n
	i18nService, err := i18n.NewService("./internal/infrastructure/i18n/locales", "pt-BR")
	if err != nil {
		logger.Error("failed to initialize i18n", "error", err)
		log.Fatal(err)
	}
	logger.Info("i18n initialized",
		"default_language", i18nService.GetDefaultLanguage(),
		"supported_languages", i18nService.GetSupportedLanguages(),
	)

	// Registrar validações customizadas (cpf)
	if err := dto.RegisterCustomValidations(); err != nil {
		logger.Error("failed to register validations", "error", err)
		log.Fatal(err)
	}

	// Inicializar repositories
	athleteRepo := postgres.NewAthleteRepository(db)
	categoryRepo := postgres.NewCategoryRepository(db)
	centerRepo := postgres.NewTrainingCenterRepository(db)
	uow := postgres.NewUnitOfWork(db)

	// Inicializar services
	athleteService := services.NewAthleteService(athleteRepo, categoryRepo, centerRepo, uow, logger)
	categoryService := services.NewCategoryService(categoryRepo, uow, logger)
	centerService := services.NewTrainingCenterService(centerRepo, uow, logger)

	// Inicializar handlers
	athleteHandler := httphandlers.NewAthleteHandler(athleteService)
	categoryHandler := httphandlers.NewCategoryHandler(categoryService)
	centerHandler := httphandlers.NewTrainingCenterHandler(centerService)

	// Setup Gin
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.Default()

	// Middleware global para adicionar base URL ao contexto
	router.Use(func(c *gin.Context) {
		c.Set("base_url", cfg.Server.BaseURL)
		c.Next()
	})

	// Middleware de request id
	router.Use(middleware.RequestID())

	// Middleware i18n
	i18nMiddleware := middleware.NewI18nMiddleware(i18nService)
	router.Use(i18nMiddleware.DetectLanguage())

	// Middleware CORS
	corsConfig := cors.DefaultConfig()
	if cfg.CORS.AllowedOrigins == "*" {
		corsConfig.AllowAllOrigins = true
	} else {
		corsConfig.AllowOrigins = strings.Split(cfg.CORS.AllowedOrigins, ",")
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "Accept-Language"}
	router.Use(cors.New(corsConfig))

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
			"env":    cfg.Env,
		})
	})

	// Swagger
	docs.SwaggerInfo.BasePath = "/"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// API routes
	v1 := router.Group("/api/v1")
	{
		// Atletas
		atletas := v1.Group("/atletas")
		{
			atletas.POST("", athleteHandler.CreateAthlete)
			atletas.GET("", athleteHandler.ListAthletes)
			atletas.GET("/:id", athleteHandler.GetAthlete)
			atletas.PATCH("/:id", athleteHandler.UpdateAthlete)
			atletas.DELETE("/:id", athleteHandler.DeleteAthlete)
		}

		// Categorias
		categorias := v1.Group("/categorias")
		{
			categorias.POST("", categoryHandler.CreateCategory)
			categorias.GET("", categoryHandler.ListCategories)
			categorias.GET("/:id", categoryHandler.GetCategory)
		}

		// Centros de treinamento
		centros := v1.Group("/centros_treinamento")
		{
			centros.POST("", centerHandler.CreateTrainingCenter)
			centros.GET("", centerHandler.ListTrainingCenters)
			centros.GET("/:id", centerHandler.GetTrainingCenter)
		}
	}

	// HTTP Server
	srv := &http.Server{
		Addr:              cfg.Server.Host + ":" + cfg.Server.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Graceful shutdown
	go func() {
		logger.Info("server starting",
			"host", cfg.Server.Host,
			"port", cfg.Server.Port,
		)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server failed", "error", err)
			log.Fatal(err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
	}

	logger.Info("server exited")
}
