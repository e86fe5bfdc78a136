package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"go.uber.org/zap"

	"pm-ajay/monitoring-backend/internal/agencies"
	"pm-ajay/monitoring-backend/internal/alerts"
	"pm-ajay/monitoring-backend/internal/auth"
	"pm-ajay/monitoring-backend/internal/config"
	"pm-ajay/monitoring-backend/internal/documents"
	"pm-ajay/monitoring-backend/internal/funds"
	"pm-ajay/monitoring-backend/internal/inspections"
	"pm-ajay/monitoring-backend/internal/milestones"
	"pm-ajay/monitoring-backend/internal/projects"
	"pm-ajay/monitoring-backend/internal/reports"
	"pm-ajay/monitoring-backend/internal/users"
)

func main() {
	// .env is optional, real deployments set the environment directly
	_ = godotenv.Load()

	cfg, err := config.LoadConfig(os.Getenv("CONFIG_PATH"))
	if err != nil {
		panic(err)
	}

	logger := newLogger(cfg.Logging.Level)
	defer logger.Sync()

	db, err := sqlx.Connect("postgres", cfg.Database.GetDatabaseURL())
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	db.SetMaxOpenConns(cfg.Database.MaxConnections)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)

	store, err := documents.NewDiskStore(cfg.Uploads.Dir, cfg.Uploads.MaxSizeBytes)
	if err != nil {
		logger.Fatal("Failed to initialize upload store", zap.Error(err))
	}

	// Services
	projectsService := projects.NewService(projects.NewRepository(db), logger)
	fundsService := funds.NewService(funds.NewRepository(db), projectsService, logger)
	milestonesService := milestones.NewService(milestones.NewRepository(db), projectsService, logger)
	agenciesService := agencies.NewService(agencies.NewRepository(db), logger)
	inspectionsService := inspections.NewService(inspections.NewRepository(db), logger)
	alertsService := alerts.NewService(alerts.NewRepository(db), logger)
	usersService := users.NewService(users.NewRepository(db), logger)
	documentsService := documents.NewService(documents.NewRepository(db), store, logger)
	reportsService := reports.NewService(reports.NewRepository(db), logger)
	authService := auth.NewService(usersService, cfg.Security.JWTSecret, cfg.Security.TokenTTL, logger)

	// Router
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(corsMiddleware())

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":    "healthy",
			"timestamp": time.Now(),
		})
	})
	router.Static("/uploads", store.Dir())

	authHandler := auth.NewHandler(authService, usersService)

	public := router.Group("/api/v1")
	authHandler.RegisterPublicRoutes(public)

	api := router.Group("/api/v1", auth.Middleware(authService))
	{
		authHandler.RegisterRoutes(api)
		projects.NewHandler(projectsService).RegisterRoutes(api)
		funds.NewHandler(fundsService).RegisterRoutes(api)
		milestones.NewHandler(milestonesService).RegisterRoutes(api)
		agencies.NewHandler(agenciesService).RegisterRoutes(api)
		inspections.NewHandler(inspectionsService).RegisterRoutes(api)
		alerts.NewHandler(alertsService).RegisterRoutes(api)
		documents.NewHandler(documentsService).RegisterRoutes(api)
		reports.NewHandler(reportsService).RegisterRoutes(api)

		admin := api.Group("", auth.RequireRoles(authService, users.RoleAdmin, users.RoleMinistry))
		users.NewHandler(usersService).RegisterRoutes(admin)
	}

	srv := &http.Server{
		Addr:         cfg.Server.GetServerAddr(),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("listen failed", zap.Error(err))
		}
	}()

	logger.Info("Server started", zap.String("addr", srv.Addr))

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Fatal("Server forced to shutdown", zap.Error(err))
	}

	logger.Info("Server exiting")
}

func newLogger(level string) *zap.Logger {
	if level == "debug" {
		logger, _ := zap.NewDevelopment()
		return logger
	}
	logger, _ := zap.NewProduction()
	return logger
}

func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}
