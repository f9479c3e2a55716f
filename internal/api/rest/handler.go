package rest

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/shopwalk/aisle-engine/internal/api/shared/dto"
	"github.com/shopwalk/aisle-engine/internal/api/shared/executor"
)

// Handler defines the interface for REST API handlers
//
//go:generate mockgen -source=handler.go -destination=../../mocks/api_handler.go -package=mocks -mock_names=Handler=MockAPIHandler
type Handler interface {
	// CompleteList archives a shopping list into a trip and schedules learning
	// POST /api/v1/lists/:id/complete
	CompleteList(c *gin.Context)

	// GetShoppingOrder sorts a shopping list into walking order
	// GET /api/v1/lists/:id/shopping-order?store_id=<store>
	GetShoppingOrder(c *gin.Context)

	// ResolveHierarchicalOrder resolves group, sub-group and product orders
	// POST /api/v1/ordering/hierarchical
	ResolveHierarchicalOrder(c *gin.Context)

	// GetCategoryOrder returns the cross-store flat category order
	// GET /api/v1/ordering/categories
	GetCategoryOrder(c *gin.Context)

	// GetStoreCategoryOrder returns the flat category order of a store
	// GET /api/v1/stores/:id/category-order
	GetStoreCategoryOrder(c *gin.Context)

	// TriggerTripLearning starts the learning workflow of a trip (requires authentication)
	// POST /api/v1/trips/:id/learn
	TriggerTripLearning(c *gin.Context)

	// HealthCheck returns the health status of the API
	// GET /health
	HealthCheck(c *gin.Context)
}

// handler implements the Handler interface
type handler struct {
	executor executor.Executor
}

// NewHandler creates a new REST API handler using the shared executor
func NewHandler(exec executor.Executor) Handler {
	return &handler{
		executor: exec,
	}
}

// CompleteList archives a shopping list into a trip
func (h *handler) CompleteList(c *gin.Context) {
	listID := c.Param("id")
	if listID == "" {
		respondBadRequest(c, "List ID is required")
		return
	}

	response, err := h.executor.CompleteList(c.Request.Context(), listID)
	if err != nil {
		respondExecutorError(c, err, "Failed to complete list", zap.String("listID", listID))
		return
	}

	c.JSON(http.StatusOK, response)
}

// GetShoppingOrder sorts a shopping list into walking order
func (h *handler) GetShoppingOrder(c *gin.Context) {
	listID := c.Param("id")
	if listID == "" {
		respondBadRequest(c, "List ID is required")
		return
	}

	response, err := h.executor.GetShoppingOrder(c.Request.Context(), listID, storeIDQuery(c))
	if err != nil {
		respondExecutorError(c, err, "Failed to sort list", zap.String("listID", listID))
		return
	}

	c.JSON(http.StatusOK, response)
}

// ResolveHierarchicalOrder resolves group, sub-group and product orders
func (h *handler) ResolveHierarchicalOrder(c *gin.Context) {
	var req dto.HierarchicalOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, fmt.Sprintf("Invalid request body: %v", err))
		return
	}

	if err := req.Validate(); err != nil {
		respondExecutorError(c, err, "Invalid request body")
		return
	}

	response, err := h.executor.ResolveHierarchicalOrder(c.Request.Context(), &req)
	if err != nil {
		respondExecutorError(c, err, "Failed to resolve order")
		return
	}

	c.JSON(http.StatusOK, response)
}

// GetCategoryOrder returns the cross-store flat category order
func (h *handler) GetCategoryOrder(c *gin.Context) {
	response, err := h.executor.GetCategoryOrder(c.Request.Context(), nil)
	if err != nil {
		respondExecutorError(c, err, "Failed to resolve category order")
		return
	}

	c.JSON(http.StatusOK, response)
}

// GetStoreCategoryOrder returns the flat category order of a store
func (h *handler) GetStoreCategoryOrder(c *gin.Context) {
	storeID := strings.TrimSpace(c.Param("id"))
	if storeID == "" {
		respondBadRequest(c, "Store ID is required")
		return
	}

	response, err := h.executor.GetCategoryOrder(c.Request.Context(), &storeID)
	if err != nil {
		respondExecutorError(c, err, "Failed to resolve category order", zap.String("storeID", storeID))
		return
	}

	c.JSON(http.StatusOK, response)
}

// TriggerTripLearning starts the learning workflow of a trip
func (h *handler) TriggerTripLearning(c *gin.Context) {
	tripID := c.Param("id")
	if tripID == "" {
		respondBadRequest(c, "Trip ID is required")
		return
	}

	response, err := h.executor.TriggerTripLearning(c.Request.Context(), tripID)
	if err != nil {
		respondExecutorError(c, err, "Failed to trigger learning", zap.String("tripID", tripID))
		return
	}

	c.JSON(http.StatusAccepted, response)
}

// HealthCheck returns the health status of the API
func (h *handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"service": "aisle-engine-api",
	})
}

// storeIDQuery returns the store_id query parameter, nil when absent or blank
func storeIDQuery(c *gin.Context) *string {
	storeID := strings.TrimSpace(c.Query("store_id"))
	if storeID == "" {
		return nil
	}
	return &storeID
}
