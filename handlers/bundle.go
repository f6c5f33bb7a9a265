package handlers

import "github.com/gin-gonic/gin"

// HandlerBundle groups the handlers the router needs.
type HandlerBundle struct {
	// Matching endpoints.
	RecommendProviders gin.HandlerFunc

	// Provider endpoints.
	RegisterProviderHandler     gin.HandlerFunc
	AuthenticateProviderHandler gin.HandlerFunc
	GetProviderByIDHandler      gin.HandlerFunc
	UpdateProviderHandler       gin.HandlerFunc
	DeleteProviderHandler       gin.HandlerFunc
}
