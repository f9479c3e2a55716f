package rest

import (
	"github.com/gin-gonic/gin"

	"github.com/shopwalk/aisle-engine/internal/api/middleware"
)

// SetupRoutes configures all REST API routes
func SetupRoutes(router *gin.Engine, handler Handler, authCfg middleware.AuthConfig, limiter gin.HandlerFunc) {
	// Health check endpoint (no auth, no rate limit, no version prefix)
	router.GET("/health", handler.HealthCheck)

	v1 := router.Group("/api/v1")
	if limiter != nil {
		v1.Use(limiter)
	}
	{
		// Shopping lists
		v1.POST("/lists/:id/complete", handler.CompleteList)
		v1.GET("/lists/:id/shopping-order", handler.GetShoppingOrder)

		// Ordering
		v1.POST("/ordering/hierarchical", handler.ResolveHierarchicalOrder)
		v1.GET("/ordering/categories", handler.GetCategoryOrder)
		v1.GET("/stores/:id/category-order", handler.GetStoreCategoryOrder)

		// Learning re-trigger (requires authentication)
		v1.POST("/trips/:id/learn", middleware.Auth(authCfg), handler.TriggerTripLearning)
	}
}
