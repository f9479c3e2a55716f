package ordering

import (
	"context"
	"fmt"
	"sort"

	"go.uber.org/zap"

	"github.com/shopwalk/aisle-engine/internal/catalog"
	"github.com/shopwalk/aisle-engine/internal/logger"
	"github.com/shopwalk/aisle-engine/internal/types"
)

//go:generate mockgen -source=flat.go -destination=../mocks/category_positions.go -package=mocks -mock_names=CategoryPositionSource=MockCategoryPositionSource,FlatResolver=MockFlatResolver

// CategoryPositionSource provides the learned category position tables
type CategoryPositionSource interface {
	// GetStoreCategoryPositions returns the average learned position per category of a store
	GetStoreCategoryPositions(ctx context.Context, storeID string) (map[int64]float64, error)
	// GetAveragedCategoryPositions returns the average learned position per category across all stores
	GetAveragedCategoryPositions(ctx context.Context) (map[int64]float64, error)
}

// FlatResolver resolves the single-level category order
type FlatResolver interface {
	// ResolveFlatCategoryOrder returns the 1-based display position of every category
	ResolveFlatCategoryOrder(ctx context.Context, storeID *string) (map[int64]int, error)
}

type flatResolver struct {
	positions CategoryPositionSource
	catalog   catalog.Catalog
}

// NewFlatResolver creates a new flat category order resolver
func NewFlatResolver(positions CategoryPositionSource, catalog catalog.Catalog) FlatResolver {
	return &flatResolver{positions: positions, catalog: catalog}
}

// ResolveFlatCategoryOrder returns the 1-based display position of every category.
// The store's learned table is used when it has entries, then the cross-store
// average, then the catalog default sort positions. Categories missing from the
// chosen table follow the learned ones in default order.
func (r *flatResolver) ResolveFlatCategoryOrder(ctx context.Context, storeID *string) (map[int64]int, error) {
	categories, err := r.catalog.GetCategories(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get categories: %w", err)
	}

	sort.SliceStable(categories, func(i, j int) bool {
		if categories[i].DefaultSortPosition != categories[j].DefaultSortPosition {
			return categories[i].DefaultSortPosition < categories[j].DefaultSortPosition
		}
		return categories[i].ID < categories[j].ID
	})

	learned := r.learnedPositions(ctx, storeID)

	sort.SliceStable(categories, func(i, j int) bool {
		pi, okI := learned[categories[i].ID]
		pj, okJ := learned[categories[j].ID]
		switch {
		case okI && okJ:
			return pi < pj
		default:
			return okI && !okJ
		}
	})

	order := make(map[int64]int, len(categories))
	for i, c := range categories {
		order[c.ID] = i + 1
	}
	return order, nil
}

// learnedPositions returns the first non-empty learned position table, or nil
func (r *flatResolver) learnedPositions(ctx context.Context, storeID *string) map[int64]float64 {
	if !types.StringNilOrEmpty(storeID) {
		positions, err := r.positions.GetStoreCategoryPositions(ctx, *storeID)
		if err != nil {
			logger.WarnCtx(ctx, "Failed to get store category positions",
				zap.String("storeID", *storeID),
				zap.Error(err))
		} else if len(positions) > 0 {
			return positions
		}
	}

	positions, err := r.positions.GetAveragedCategoryPositions(ctx)
	if err != nil {
		logger.WarnCtx(ctx, "Failed to get averaged category positions", zap.Error(err))
		return nil
	}
	if len(positions) > 0 {
		return positions
	}

	return nil
}
