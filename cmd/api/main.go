package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"carbonpath/well-portal/well-portal-backend/internal/config"
	"carbonpath/well-portal/well-portal-backend/internal/credits"
	"carbonpath/well-portal/well-portal-backend/internal/finance"
	"carbonpath/well-portal/well-portal-backend/internal/reports"
	"carbonpath/well-portal/well-portal-backend/internal/scenario"
)

func main() {
	// .env is optional; real deployments set the environment directly
	_ = godotenv.Load()

	cfg, err := config.LoadConfig("config.json")
	if err != nil {
		panic("invalid configuration: " + err.Error())
	}

	logger := newLogger(cfg.Logging.Level)
	defer logger.Sync()

	registry := credits.NewRegistry()
	defaults := finance.Assumptions{
		TokenPrice:     cfg.Defaults.TokenPrice,
		PathFee:        cfg.Defaults.PathFee,
		GWP:            cfg.Defaults.GWP,
		CreditingYears: cfg.Defaults.CreditingYears,
		DiscountRate:   cfg.Defaults.DiscountRate,
	}

	store := scenario.NewStore(cfg.Session.TTL, logger)
	store.Start()
	defer store.Stop()

	scenarioService := scenario.NewService(store, registry, defaults, logger)
	scenarioHandler := scenario.NewHandler(scenarioService, logger)
	reportsService := reports.NewService(logger)
	reportsHandler := reports.NewHandler(scenarioService, reportsService, logger)
	creditsHandler := credits.NewHandler(registry)
	financeHandler := finance.NewHandler()

	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())

	api := router.Group("/api/v1")
	{
		scenarioHandler.RegisterRoutes(api)
		reportsHandler.RegisterRoutes(api)
		creditsHandler.RegisterRoutes(api)
		financeHandler.RegisterRoutes(api)
	}

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":    "healthy",
			"timestamp": time.Now(),
		})
	})

	srv := &http.Server{
		Addr:         cfg.Server.GetServerAddr(),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("listen failed", zap.Error(err))
		}
	}()

	logger.Info("Server started", zap.String("addr", srv.Addr))

	// Graceful Shutdown
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
	cfg := zap.NewProductionConfig()
	if parsed, err := zap.ParseAtomicLevel(level); err == nil {
		cfg.Level = parsed
	}
	logger, err := cfg.Build()
	if err != nil {
		panic("failed to build logger: " + err.Error())
	}
	return logger
}
