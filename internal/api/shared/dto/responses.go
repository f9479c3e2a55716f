package dto

import (
	"github.com/shopwalk/aisle-engine/internal/ordering"
)

// CompleteListResponse represents the response for completing a shopping list.
// TripID is nil when the list had no items and no trip was archived.
type CompleteListResponse struct {
	ListID string  `json:"list_id"`
	TripID *string `json:"trip_id"`
}

// TriggerLearningResponse represents the response for re-triggering the learning of a trip
type TriggerLearningResponse struct {
	WorkflowID string `json:"workflow_id"`
	RunID      string `json:"run_id"`
}

// OrderedSubgroup is a sub-group with its products in resolved order
type OrderedSubgroup struct {
	Name     string   `json:"name"`
	Products []string `json:"products"`
}

// OrderedGroup is a group with its sub-groups in resolved order
type OrderedGroup struct {
	Name      string            `json:"name"`
	Subgroups []OrderedSubgroup `json:"subgroups"`
}

// HierarchicalOrderResponse represents a resolved hierarchical order
type HierarchicalOrderResponse struct {
	StoreID *string                     `json:"store_id"`
	Groups  []OrderedGroup              `json:"groups"`
	Weights map[string]ordering.Weights `json:"weights"`
}

// ShoppingOrderItem is one item of a sorted shopping list
type ShoppingOrderItem struct {
	ID           uint64  `json:"id"`
	ProductID    *string `json:"product_id"`
	Name         string  `json:"name"`
	CategoryID   *int64  `json:"category_id"`
	CategoryName *string `json:"category_name"`
	Quantity     int     `json:"quantity"`
	Checked      bool    `json:"checked"`
}

// ShoppingOrderSection is one demand group of a sorted shopping list
type ShoppingOrderSection struct {
	Group *string             `json:"group"`
	Items []ShoppingOrderItem `json:"items"`
}

// ShoppingOrderResponse represents a shopping list sorted into walking order
type ShoppingOrderResponse struct {
	ListID   string                      `json:"list_id"`
	StoreID  *string                     `json:"store_id"`
	Sections []ShoppingOrderSection      `json:"sections"`
	Weights  map[string]ordering.Weights `json:"weights,omitempty"`
}

// CategoryPosition is the display position of one category
type CategoryPosition struct {
	CategoryID int64 `json:"category_id"`
	Position   int   `json:"position"`
}

// CategoryOrderResponse represents the flat category order of a store
type CategoryOrderResponse struct {
	StoreID    *string            `json:"store_id"`
	Categories []CategoryPosition `json:"categories"`
}
