package routes

import (
	"net/http"
	"time"

	"homeconnect/config"
	"homeconnect/handlers"
	"homeconnect/middleware"
	"homeconnect/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterMatchingRoutes registers the recommendation endpoint.
func RegisterMatchingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/matching")
	{
		api.Use(middleware.AuthMiddleware(config.AppConfig.AuthMode))
		api.POST("/recommend", hb.RecommendProviders)
	}
}

// RegisterProviderRoutes registers provider management endpoints.
func RegisterProviderRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/providers")
	{
		// Public provider endpoints (registration, login, public lookup).
		api.POST("/register", hb.RegisterProviderHandler)
		api.POST("/login", hb.AuthenticateProviderHandler)
		api.GET("/id/:id", hb.GetProviderByIDHandler)

		// Endpoints that modify provider data require caller identity.
		protected := api.Group("")
		protected.Use(middleware.AuthMiddleware(config.AppConfig.AuthMode))
		protected.PATCH("/update/:id", hb.UpdateProviderHandler)
		protected.DELETE("/delete/:id", hb.DeleteProviderHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "dependencies": utils.GetHealthStatus()})
	})
}

// RegisterRoutes wires CORS and all route groups onto the engine.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	RegisterHealthRoute(r)
	RegisterMatchingRoutes(r, hb)
	RegisterProviderRoutes(r, hb)
}
