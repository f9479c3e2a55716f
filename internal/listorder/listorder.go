package listorder

import (
	"context"
	"fmt"
	"math"
	"slices"

	"github.com/google/uuid"

	"github.com/shopwalk/aisle-engine/internal/catalog"
	"github.com/shopwalk/aisle-engine/internal/domain"
	"github.com/shopwalk/aisle-engine/internal/ordering"
	"github.com/shopwalk/aisle-engine/internal/store"
	"github.com/shopwalk/aisle-engine/internal/store/schema"
	"github.com/shopwalk/aisle-engine/internal/types"
)

// Section is one demand group of a sorted list
type Section struct {
	// Group is nil for the trailing section of items without a known group
	Group *string
	Items []schema.ListItem
}

// ShoppingOrder is a list sorted into walking order
type ShoppingOrder struct {
	ListID   uuid.UUID
	StoreID  *string
	Sections []Section
	Order    *ordering.HierarchicalOrder
}

//go:generate mockgen -source=listorder.go -destination=../mocks/listorder.go -package=mocks -mock_names=Sorter=MockListSorter

// Sorter sorts the items of a shopping list into the learned walking order of a store
type Sorter interface {
	// ShoppingOrder sorts the list for the store, the list's own store when storeID is nil
	ShoppingOrder(ctx context.Context, listID uuid.UUID, storeID *string) (*ShoppingOrder, error)
}

type sorter struct {
	store    store.Store
	catalog  catalog.Catalog
	resolver ordering.Resolver
}

// NewSorter creates a new list sorter
func NewSorter(st store.Store, cat catalog.Catalog, resolver ordering.Resolver) Sorter {
	return &sorter{store: st, catalog: cat, resolver: resolver}
}

// classifiedItem is a list item with its resolved level membership
type classifiedItem struct {
	item     schema.ListItem
	group    string
	subgroup string
	product  string
}

// ShoppingOrder sorts the list for the store
func (s *sorter) ShoppingOrder(ctx context.Context, listID uuid.UUID, storeID *string) (*ShoppingOrder, error) {
	list, err := s.store.GetList(ctx, listID)
	if err != nil {
		return nil, fmt.Errorf("failed to get list: %w", err)
	}
	if list == nil {
		return nil, domain.ErrListNotFound
	}
	if types.StringNilOrEmpty(storeID) {
		storeID = list.StoreID
	}

	items, err := s.store.GetListItems(ctx, listID)
	if err != nil {
		return nil, fmt.Errorf("failed to get list items: %w", err)
	}

	var productIDs []string
	for _, item := range items {
		if !types.StringNilOrEmpty(item.ProductID) {
			productIDs = append(productIDs, *item.ProductID)
		}
	}
	products, err := s.catalog.GetProducts(ctx, productIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to get catalog products: %w", err)
	}
	categories, err := s.catalog.GetCategories(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get categories: %w", err)
	}

	classified := classify(items, products)
	input := buildHierarchyInput(storeID, classified, products, categories)

	order, err := s.resolver.ResolveHierarchicalOrder(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve hierarchical order: %w", err)
	}

	return &ShoppingOrder{
		ListID:   listID,
		StoreID:  storeID,
		Sections: arrange(classified, order),
		Order:    order,
	}, nil
}

// classify resolves the group, sub-group and product key of every item
func classify(items []schema.ListItem, products map[string]catalog.Product) []classifiedItem {
	classified := make([]classifiedItem, len(items))
	for i, item := range items {
		var product *catalog.Product
		if item.ProductID != nil {
			if p, ok := products[*item.ProductID]; ok {
				product = &p
			}
		}

		group, subgroup := catalog.ResolveGroup(product, item.CategoryName)
		classified[i] = classifiedItem{
			item:     item,
			group:    types.SafeString(group),
			subgroup: types.SafeString(subgroup),
			product:  types.SafeString(item.ProductID),
		}
	}
	return classified
}

// buildHierarchyInput groups the items by level membership and derives the default orders:
// groups by the lowest default sort position of their categories then name,
// sub-groups alphabetically and products by popularity.
func buildHierarchyInput(storeID *string, items []classifiedItem, products map[string]catalog.Product, categories []catalog.Category) ordering.HierarchyInput {
	categoryPositions := make(map[int64]int, len(categories))
	for _, c := range categories {
		categoryPositions[c.ID] = c.DefaultSortPosition
	}

	input := ordering.HierarchyInput{
		StoreID:          storeID,
		SubgroupsByGroup: make(map[string][]string),
		ProductsByScope:  make(map[domain.Scope][]string),
	}

	groupPositions := make(map[string]int)
	popularity := make(map[string]float64)
	for _, ci := range items {
		if ci.group == "" {
			continue
		}

		position := math.MaxInt
		if ci.item.CategoryID != nil {
			if p, ok := categoryPositions[*ci.item.CategoryID]; ok {
				position = p
			}
		}
		current, seen := groupPositions[ci.group]
		if !seen {
			input.Groups = append(input.Groups, ci.group)
			groupPositions[ci.group] = position
		} else if position < current {
			groupPositions[ci.group] = position
		}

		if ci.subgroup == "" {
			continue
		}
		if !slices.Contains(input.SubgroupsByGroup[ci.group], ci.subgroup) {
			input.SubgroupsByGroup[ci.group] = append(input.SubgroupsByGroup[ci.group], ci.subgroup)
		}

		if ci.product == "" {
			continue
		}
		scope := domain.ProductScope(ci.group, ci.subgroup)
		if !slices.Contains(input.ProductsByScope[scope], ci.product) {
			input.ProductsByScope[scope] = append(input.ProductsByScope[scope], ci.product)
		}
		if p, ok := products[ci.product]; ok && p.PopularityScore != nil {
			popularity[ci.product] = *p.PopularityScore
		}
	}

	input.DefaultGroupOrder = slices.Clone(input.Groups)
	slices.SortStableFunc(input.DefaultGroupOrder, func(a, b string) int {
		if groupPositions[a] != groupPositions[b] {
			if groupPositions[a] < groupPositions[b] {
				return -1
			}
			return 1
		}
		switch {
		case a < b:
			return -1
		case a > b:
			return 1
		}
		return 0
	})
	input.DefaultSubgroupOrder = func(_ string, subgroups []string) []string {
		return ordering.Alphabetical(subgroups)
	}
	input.DefaultProductOrder = func(_ domain.Scope, products []string) []string {
		return ordering.ByPopularity(products, popularity)
	}

	return input
}

// arrange lays the items out by the resolved order. Within a group, items of
// ordered sub-groups come first, then items without a sub-group. Within a
// sub-group, ordered products come first, then free-text items. Items without
// a group form the trailing section. Ties keep the list's sort order.
func arrange(items []classifiedItem, order *ordering.HierarchicalOrder) []Section {
	rank := func(list []string, key string) int {
		if i := slices.Index(list, key); i >= 0 {
			return i
		}
		return len(list)
	}

	byGroup := make(map[string][]classifiedItem)
	var ungrouped []schema.ListItem
	for _, ci := range items {
		if ci.group == "" {
			ungrouped = append(ungrouped, ci.item)
			continue
		}
		byGroup[ci.group] = append(byGroup[ci.group], ci)
	}

	sections := make([]Section, 0, len(order.GroupOrder)+1)
	for _, group := range order.GroupOrder {
		members := byGroup[group]
		if len(members) == 0 {
			continue
		}

		subgroupOrder := order.SubgroupOrder[group]
		slices.SortStableFunc(members, func(a, b classifiedItem) int {
			ra, rb := rank(subgroupOrder, a.subgroup), rank(subgroupOrder, b.subgroup)
			if a.subgroup == "" {
				ra = len(subgroupOrder) + 1
			}
			if b.subgroup == "" {
				rb = len(subgroupOrder) + 1
			}
			if ra != rb {
				return ra - rb
			}
			if a.subgroup == "" {
				return 0
			}

			productOrder := order.ProductOrder[domain.ProductScope(group, a.subgroup)]
			pa, pb := rank(productOrder, a.product), rank(productOrder, b.product)
			if a.product == "" {
				pa = len(productOrder) + 1
			}
			if b.product == "" {
				pb = len(productOrder) + 1
			}
			return pa - pb
		})

		section := Section{Group: types.StringPtr(group), Items: make([]schema.ListItem, len(members))}
		for i, ci := range members {
			section.Items[i] = ci.item
		}
		sections = append(sections, section)
	}

	if len(ungrouped) > 0 {
		sections = append(sections, Section{Items: ungrouped})
	}
	return sections
}
