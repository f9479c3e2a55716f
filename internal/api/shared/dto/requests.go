package dto

import (
	"fmt"
	"strings"

	"github.com/shopwalk/aisle-engine/internal/api/shared/constants"
	apierrors "github.com/shopwalk/aisle-engine/internal/api/shared/errors"
	"github.com/shopwalk/aisle-engine/internal/types"
)

// HierarchyProductGroup is one demand group of a hierarchical order request
type HierarchyProductGroup struct {
	Name      string                     `json:"name"`
	Subgroups []HierarchyProductSubgroup `json:"subgroups"`
}

// HierarchyProductSubgroup is one demand sub-group of a hierarchical order request
type HierarchyProductSubgroup struct {
	Name     string   `json:"name"`
	Products []string `json:"products"`
}

// HierarchicalOrderRequest represents the request body for resolving a hierarchical order.
// The order of groups, sub-groups and products in the request is their fallback order.
type HierarchicalOrderRequest struct {
	StoreID *string                 `json:"store_id"`
	Groups  []HierarchyProductGroup `json:"groups"`
}

// Validate validates the request body
func (r *HierarchicalOrderRequest) Validate() error {
	if len(r.Groups) == 0 {
		return apierrors.NewValidationError("groups is required")
	}

	if len(r.Groups) > constants.MAX_GROUPS_PER_REQUEST {
		return apierrors.NewValidationError(fmt.Sprintf("maximum %d groups allowed", constants.MAX_GROUPS_PER_REQUEST))
	}

	if r.StoreID != nil && strings.TrimSpace(*r.StoreID) == "" {
		return apierrors.NewValidationError("store_id must not be blank")
	}

	groups := make(map[string]bool, len(r.Groups))
	for _, group := range r.Groups {
		if err := validateName("group", group.Name, groups); err != nil {
			return err
		}

		if len(group.Subgroups) > constants.MAX_SUBGROUPS_PER_GROUP {
			return apierrors.NewValidationError(fmt.Sprintf("maximum %d subgroups allowed per group", constants.MAX_SUBGROUPS_PER_GROUP))
		}

		subgroups := make(map[string]bool, len(group.Subgroups))
		for _, subgroup := range group.Subgroups {
			if err := validateName("subgroup", subgroup.Name, subgroups); err != nil {
				return err
			}

			if len(subgroup.Products) > constants.MAX_PRODUCTS_PER_SUBGROUP {
				return apierrors.NewValidationError(fmt.Sprintf("maximum %d products allowed per subgroup", constants.MAX_PRODUCTS_PER_SUBGROUP))
			}

			products := make(map[string]bool, len(subgroup.Products))
			for _, product := range subgroup.Products {
				if err := validateName("product", product, products); err != nil {
					return err
				}
			}
		}
	}

	return nil
}

// validateName rejects empty names, names containing the scope separator and duplicates
func validateName(kind, name string, seen map[string]bool) error {
	if types.StringNilOrEmpty(&name) {
		return apierrors.NewValidationError(fmt.Sprintf("%s name is required", kind))
	}
	if strings.Contains(name, "|") {
		return apierrors.NewValidationError(fmt.Sprintf("invalid %s name: %s", kind, name))
	}
	if seen[name] {
		return apierrors.NewValidationError(fmt.Sprintf("duplicate %s: %s", kind, name))
	}
	seen[name] = true
	return nil
}
