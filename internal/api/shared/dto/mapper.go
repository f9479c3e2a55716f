package dto

import (
	"sort"

	"github.com/shopwalk/aisle-engine/internal/domain"
	"github.com/shopwalk/aisle-engine/internal/listorder"
	"github.com/shopwalk/aisle-engine/internal/ordering"
)

// HierarchyInput converts the request into resolver input.
// Fallback orders follow the request order.
func (r *HierarchicalOrderRequest) HierarchyInput() ordering.HierarchyInput {
	input := ordering.HierarchyInput{
		StoreID:          r.StoreID,
		SubgroupsByGroup: make(map[string][]string, len(r.Groups)),
		ProductsByScope:  make(map[domain.Scope][]string),
	}

	for _, group := range r.Groups {
		input.Groups = append(input.Groups, group.Name)
		for _, subgroup := range group.Subgroups {
			input.SubgroupsByGroup[group.Name] = append(input.SubgroupsByGroup[group.Name], subgroup.Name)
			if len(subgroup.Products) > 0 {
				input.ProductsByScope[domain.ProductScope(group.Name, subgroup.Name)] = subgroup.Products
			}
		}
	}

	input.DefaultGroupOrder = input.Groups
	input.DefaultSubgroupOrder = func(group string, _ []string) []string {
		return input.SubgroupsByGroup[group]
	}
	input.DefaultProductOrder = func(scope domain.Scope, _ []string) []string {
		return input.ProductsByScope[scope]
	}

	return input
}

// MapHierarchicalOrderToDTO maps a resolved order to its response
func MapHierarchicalOrderToDTO(storeID *string, order *ordering.HierarchicalOrder) *HierarchicalOrderResponse {
	response := &HierarchicalOrderResponse{
		StoreID: storeID,
		Groups:  make([]OrderedGroup, 0, len(order.GroupOrder)),
		Weights: mapWeights(order.Weights),
	}

	for _, group := range order.GroupOrder {
		orderedGroup := OrderedGroup{Name: group, Subgroups: []OrderedSubgroup{}}
		for _, subgroup := range order.SubgroupOrder[group] {
			products := order.ProductOrder[domain.ProductScope(group, subgroup)]
			if products == nil {
				products = []string{}
			}
			orderedGroup.Subgroups = append(orderedGroup.Subgroups, OrderedSubgroup{Name: subgroup, Products: products})
		}
		response.Groups = append(response.Groups, orderedGroup)
	}

	return response
}

// MapShoppingOrderToDTO maps a sorted shopping list to its response
func MapShoppingOrderToDTO(order *listorder.ShoppingOrder) *ShoppingOrderResponse {
	response := &ShoppingOrderResponse{
		ListID:   order.ListID.String(),
		StoreID:  order.StoreID,
		Sections: make([]ShoppingOrderSection, 0, len(order.Sections)),
	}
	if order.Order != nil {
		response.Weights = mapWeights(order.Order.Weights)
	}

	for _, section := range order.Sections {
		items := make([]ShoppingOrderItem, 0, len(section.Items))
		for _, item := range section.Items {
			items = append(items, ShoppingOrderItem{
				ID:           item.ID,
				ProductID:    item.ProductID,
				Name:         item.Name,
				CategoryID:   item.CategoryID,
				CategoryName: item.CategoryName,
				Quantity:     item.Quantity,
				Checked:      item.CheckedAt != nil,
			})
		}
		response.Sections = append(response.Sections, ShoppingOrderSection{Group: section.Group, Items: items})
	}

	return response
}

// MapCategoryOrderToDTO maps category positions to a response sorted by position
func MapCategoryOrderToDTO(storeID *string, positions map[int64]int) *CategoryOrderResponse {
	categories := make([]CategoryPosition, 0, len(positions))
	for categoryID, position := range positions {
		categories = append(categories, CategoryPosition{CategoryID: categoryID, Position: position})
	}
	sort.Slice(categories, func(i, j int) bool {
		if categories[i].Position != categories[j].Position {
			return categories[i].Position < categories[j].Position
		}
		return categories[i].CategoryID < categories[j].CategoryID
	})

	return &CategoryOrderResponse{StoreID: storeID, Categories: categories}
}

func mapWeights(weights map[domain.Level]ordering.Weights) map[string]ordering.Weights {
	if len(weights) == 0 {
		return nil
	}
	result := make(map[string]ordering.Weights, len(weights))
	for level, w := range weights {
		result[string(level)] = w
	}
	return result
}
