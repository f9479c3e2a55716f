package rest

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	apierrors "github.com/shopwalk/aisle-engine/internal/api/shared/errors"
	"github.com/shopwalk/aisle-engine/internal/logger"
)

// respondWithError sends a standardized error response
func respondWithError(c *gin.Context, statusCode int, apiErr *apierrors.APIError) {
	c.JSON(statusCode, gin.H{"error": apiErr})
}

// respondBadRequest sends a 400 Bad Request response
func respondBadRequest(c *gin.Context, message string, details ...string) {
	respondWithError(c, http.StatusBadRequest, apierrors.NewBadRequestError(message, details...))
}

// respondValidationError sends a 400 Bad Request with validation error
func respondValidationError(c *gin.Context, details string) {
	respondWithError(c, http.StatusBadRequest, apierrors.NewValidationError(details))
}

// respondExecutorError maps an executor error to its HTTP status.
// Server side failures are logged and their details are not exposed.
func respondExecutorError(c *gin.Context, err error, message string, fields ...zap.Field) {
	var apiErr *apierrors.APIError
	if !errors.As(err, &apiErr) {
		respondInternalError(c, err, message, fields...)
		return
	}

	status := apiErr.StatusCode()
	if status >= http.StatusInternalServerError {
		logger.ErrorCtx(c.Request.Context(), err, fields...)
		respondWithError(c, status, &apierrors.APIError{Code: apiErr.Code, Message: message})
		return
	}

	respondWithError(c, status, apiErr)
}

// respondInternalError sends a 500 Internal Server Error response and logs the error
func respondInternalError(c *gin.Context, err error, message string, fields ...zap.Field) {
	logger.ErrorCtx(c.Request.Context(), err, fields...)
	respondWithError(c, http.StatusInternalServerError, apierrors.NewInternalError(message))
}
