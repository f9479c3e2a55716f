package catalog

import (
	"context"
	"fmt"

	"github.com/shopwalk/aisle-engine/internal/store"
	"github.com/shopwalk/aisle-engine/internal/store/schema"
	"github.com/shopwalk/aisle-engine/internal/types"
)

// Product is the catalog metadata of a product used for ordering
type Product struct {
	ID              string
	Name            string
	CategoryID      *int64
	DemandGroup     *string
	DemandSubGroup  *string
	PopularityScore *float64
}

// Category is the display category metadata
type Category struct {
	ID                  int64
	Name                string
	DefaultSortPosition int
}

//go:generate mockgen -source=catalog.go -destination=../mocks/catalog.go -package=mocks -mock_names=Catalog=MockCatalog

// Catalog is the read-only product catalog and category metadata
type Catalog interface {
	// GetProducts returns the products with the given ids keyed by id. Unknown ids are omitted.
	GetProducts(ctx context.Context, ids []string) (map[string]Product, error)
	// GetCategories returns every category ordered by default sort position
	GetCategories(ctx context.Context) ([]Category, error)
}

type storeCatalog struct {
	store store.Store
}

// NewStoreCatalog creates a catalog backed by the products and categories tables
func NewStoreCatalog(store store.Store) Catalog {
	return &storeCatalog{store: store}
}

// GetProducts returns the products with the given ids keyed by id
func (c *storeCatalog) GetProducts(ctx context.Context, ids []string) (map[string]Product, error) {
	products := make(map[string]Product, len(ids))
	if len(ids) == 0 {
		return products, nil
	}

	rows, err := c.store.GetProductsByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to get products: %w", err)
	}

	for _, row := range rows {
		products[row.ID] = productFromSchema(row)
	}
	return products, nil
}

// GetCategories returns every category ordered by default sort position
func (c *storeCatalog) GetCategories(ctx context.Context) ([]Category, error) {
	rows, err := c.store.GetCategories(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get categories: %w", err)
	}

	categories := make([]Category, len(rows))
	for i, row := range rows {
		categories[i] = Category{
			ID:                  row.ID,
			Name:                row.Name,
			DefaultSortPosition: row.DefaultSortPosition,
		}
	}
	return categories, nil
}

func productFromSchema(p schema.Product) Product {
	return Product{
		ID:              p.ID,
		Name:            p.Name,
		CategoryID:      p.CategoryID,
		DemandGroup:     p.DemandGroup,
		DemandSubGroup:  p.DemandSubGroup,
		PopularityScore: p.PopularityScore,
	}
}

// ResolveGroup returns the demand group and sub-group of an item.
// A product without a catalog group falls back to the item's display category
// name, with no sub-group. Both are nil when neither is known.
func ResolveGroup(product *Product, categoryName *string) (group *string, subgroup *string) {
	if product != nil && !types.StringNilOrEmpty(product.DemandGroup) {
		if !types.StringNilOrEmpty(product.DemandSubGroup) {
			return product.DemandGroup, product.DemandSubGroup
		}
		return product.DemandGroup, nil
	}
	if !types.StringNilOrEmpty(categoryName) {
		return categoryName, nil
	}
	return nil, nil
}
