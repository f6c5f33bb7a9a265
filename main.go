// File: homeconnect/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"homeconnect/config"
	"homeconnect/cron"
	"homeconnect/database"
	providerRepo "homeconnect/database/repository/provider"
	"homeconnect/handlers"
	"homeconnect/middleware"
	"homeconnect/routes"
	"homeconnect/services/matching"
	"homeconnect/services/provider"
	"homeconnect/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()
	if config.AppConfig.AuthMode == middleware.AuthModeFirebase {
		utils.FirebaseInit()
	}

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	provRepo := providerRepo.NewMongoProviderRepo()

	// services.
	matchingServiceInstance := &matching.DefaultMatchingService{
		ProviderRepo: provRepo,
		CacheClient:  utils.GetCacheClient(),
		Policy:       matching.NewPolicy(config.AppConfig.AvailabilityPolicy),
		Tuning:       matching.TuningFromConfig(),
		Logger:       logger,
	}
	providerService := &provider.DefaultProviderService{
		Repo:   provRepo,
		Logger: logger,
	}

	matchingHandler := handlers.NewMatchingHandler(matchingServiceInstance, logger)
	providerHandler := handlers.NewProviderHandler(providerService, logger)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		RecommendProviders: matchingHandler.RecommendProviders,

		RegisterProviderHandler:     providerHandler.RegisterProviderHandler,
		AuthenticateProviderHandler: providerHandler.AuthenticateProviderHandler,
		GetProviderByIDHandler:      providerHandler.GetProviderByIDHandler,
		UpdateProviderHandler:       providerHandler.UpdateProviderHandler,
		DeleteProviderHandler:       providerHandler.DeleteProviderHandler,
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Background workers and health monitoring.
	cron.InitAvailabilityWorker(provRepo, logger)
	utils.StartHealthMonitor(utils.GetCacheClient(), database.MongoClient)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
