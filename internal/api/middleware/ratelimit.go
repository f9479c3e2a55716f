package middleware

import (
	"math"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/shopwalk/aisle-engine/internal/api/shared/constants"
	apierrors "github.com/shopwalk/aisle-engine/internal/api/shared/errors"
	"github.com/shopwalk/aisle-engine/internal/logger"
	"github.com/shopwalk/aisle-engine/internal/ratelimit"
)

// RateLimit returns a gin middleware limiting requests per client IP.
// Requests pass when the limiter itself fails.
func RateLimit(limiter ratelimit.Limiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := "ip:" + c.ClientIP()

		decision, err := limiter.Allow(c.Request.Context(), key)
		if err != nil {
			logger.WarnCtx(c.Request.Context(), "Rate limiter unavailable, letting request through",
				zap.Error(err),
				zap.String("key", key),
			)
			c.Next()
			return
		}

		c.Header(constants.HEADER_RATE_LIMIT_LIMIT, strconv.Itoa(decision.Limit))
		c.Header(constants.HEADER_RATE_LIMIT_REMAINING, strconv.Itoa(decision.Remaining))

		if !decision.Allowed {
			retryAfter := int(math.Ceil(decision.RetryAfter.Seconds()))
			if retryAfter < 1 {
				retryAfter = 1
			}
			c.Header(constants.HEADER_RETRY_AFTER, strconv.Itoa(retryAfter))

			logger.DebugCtx(c.Request.Context(), "Request rate limited",
				zap.String("key", key),
				zap.String("path", c.Request.URL.Path),
			)
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"error": apierrors.NewTooManyRequestsError("Rate limit exceeded"),
			})
			return
		}

		c.Next()
	}
}
