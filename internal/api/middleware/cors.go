package middleware

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/shopwalk/aisle-engine/internal/api/shared/constants"
)

// SetupCORS configures CORS middleware for the shopping apps
func SetupCORS() gin.HandlerFunc {
	config := cors.Config{
		AllowAllOrigins:  true,
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", constants.HEADER_RATE_LIMIT_LIMIT, constants.HEADER_RATE_LIMIT_REMAINING, constants.HEADER_RETRY_AFTER},
		AllowCredentials: false,
		MaxAge:           time.Hour,
	}
	return cors.New(config)
}
