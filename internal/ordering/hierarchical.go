package ordering

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/shopwalk/aisle-engine/internal/domain"
	"github.com/shopwalk/aisle-engine/internal/logger"
	"github.com/shopwalk/aisle-engine/internal/types"
)

const defaultReadParallelism = 8

//go:generate mockgen -source=hierarchical.go -destination=../mocks/evidence_source.go -package=mocks -mock_names=EvidenceSource=MockEvidenceSource,Resolver=MockResolver

// EvidenceSource provides the learned pairwise state read by the resolver
type EvidenceSource interface {
	// CountValidSequences returns the number of valid checkoff sequences recorded for a store
	CountValidSequences(ctx context.Context, storeID string) (int64, error)
	// GetPairwiseCounts returns the counts of a store for the pairs among the given items
	GetPairwiseCounts(ctx context.Context, storeID string, scope domain.Scope, items []string) ([]domain.PairCount, error)
	// GetAggregatedPairwiseCounts returns the counts summed across all stores for the pairs among the given items
	GetAggregatedPairwiseCounts(ctx context.Context, scope domain.Scope, items []string) ([]domain.PairCount, error)
}

// HierarchyInput describes the items of a list grouped by level membership
type HierarchyInput struct {
	// StoreID is the store the list is being sorted for, nil when unknown
	StoreID *string
	// Groups are the demand groups present in the list
	Groups []string
	// SubgroupsByGroup lists the sub-groups present within each group
	SubgroupsByGroup map[string][]string
	// ProductsByScope lists the products present within each product scope
	ProductsByScope map[domain.Scope][]string
	// DefaultGroupOrder is the fallback group order
	DefaultGroupOrder []string
	// DefaultSubgroupOrder returns the fallback sub-group order of a group, alphabetical when nil
	DefaultSubgroupOrder func(group string, subgroups []string) []string
	// DefaultProductOrder returns the fallback product order of a product scope, alphabetical when nil
	DefaultProductOrder func(scope domain.Scope, products []string) []string
}

// HierarchicalOrder is the resolved order of every level and scope
type HierarchicalOrder struct {
	GroupOrder    []string
	SubgroupOrder map[string][]string
	ProductOrder  map[domain.Scope][]string
	// Weights holds the blending weights used per level
	Weights map[domain.Level]Weights
}

// Resolver resolves display orders from learned pairwise evidence
type Resolver interface {
	// ResolveHierarchicalOrder resolves the group, sub-group and product orders of a list
	ResolveHierarchicalOrder(ctx context.Context, input HierarchyInput) (*HierarchicalOrder, error)
}

type resolver struct {
	source      EvidenceSource
	parallelism int
}

// NewResolver creates a new hierarchical order resolver.
// parallelism bounds the number of concurrent evidence reads.
func NewResolver(source EvidenceSource, parallelism int) Resolver {
	if parallelism <= 0 {
		parallelism = defaultReadParallelism
	}
	return &resolver{source: source, parallelism: parallelism}
}

// scopeTask is the ranking work of one scope
type scopeTask struct {
	scope        domain.Scope
	items        []string
	defaultOrder []string
	result       []string
}

// ResolveHierarchicalOrder resolves the group, sub-group and product orders of a list.
// Reads of the different scopes are independent and run concurrently. A failed
// read degrades the affected scope to its default order.
func (r *resolver) ResolveHierarchicalOrder(ctx context.Context, input HierarchyInput) (*HierarchicalOrder, error) {
	weights := r.levelWeights(ctx, input.StoreID)

	defaultSubgroupOrder := input.DefaultSubgroupOrder
	if defaultSubgroupOrder == nil {
		defaultSubgroupOrder = func(_ string, subgroups []string) []string {
			return Alphabetical(subgroups)
		}
	}
	defaultProductOrder := input.DefaultProductOrder
	if defaultProductOrder == nil {
		defaultProductOrder = func(_ domain.Scope, products []string) []string {
			return Alphabetical(products)
		}
	}

	tasks := []*scopeTask{{
		scope:        domain.GroupScope(),
		items:        input.Groups,
		defaultOrder: input.DefaultGroupOrder,
	}}
	for group, subgroups := range input.SubgroupsByGroup {
		tasks = append(tasks, &scopeTask{
			scope:        domain.SubgroupScope(group),
			items:        subgroups,
			defaultOrder: defaultSubgroupOrder(group, subgroups),
		})
	}
	for scope, products := range input.ProductsByScope {
		if scope.Level() != domain.LevelProduct {
			return nil, fmt.Errorf("invalid product scope: %s", scope)
		}
		tasks = append(tasks, &scopeTask{
			scope:        scope,
			items:        products,
			defaultOrder: defaultProductOrder(scope, products),
		})
	}

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(r.parallelism)
	for _, task := range tasks {
		g.Go(func() error {
			if err := gCtx.Err(); err != nil {
				return err
			}
			task.result = r.rankScope(gCtx, input.StoreID, task, weights[task.scope.Level()])
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("failed to resolve hierarchical order: %w", err)
	}

	order := &HierarchicalOrder{
		SubgroupOrder: make(map[string][]string, len(input.SubgroupsByGroup)),
		ProductOrder:  make(map[domain.Scope][]string, len(input.ProductsByScope)),
		Weights:       weights,
	}
	for _, task := range tasks {
		switch task.scope.Level() {
		case domain.LevelGroup:
			order.GroupOrder = task.result
		case domain.LevelSubgroup:
			order.SubgroupOrder[task.scope.Group()] = task.result
		case domain.LevelProduct:
			order.ProductOrder[task.scope] = task.result
		}
	}

	return order, nil
}

// levelWeights computes the blending weights of every level for the store
func (r *resolver) levelWeights(ctx context.Context, storeID *string) map[domain.Level]Weights {
	var validCount int64
	if !types.StringNilOrEmpty(storeID) {
		count, err := r.source.CountValidSequences(ctx, *storeID)
		if err != nil {
			logger.WarnCtx(ctx, "Failed to count valid sequences, using store-less weights",
				zap.String("storeID", *storeID),
				zap.Error(err))
		} else {
			validCount = count
		}
	}

	weights := make(map[domain.Level]Weights, len(domain.Levels))
	for _, level := range domain.Levels {
		weights[level] = CurveFor(level).Weights(validCount)
	}
	return weights
}

// rankScope reads the evidence of one scope and ranks its items
func (r *resolver) rankScope(ctx context.Context, storeID *string, task *scopeTask, weights Weights) []string {
	in := RankInput{
		Items:        task.items,
		DefaultOrder: task.defaultOrder,
		Weights:      weights,
	}
	if len(effectiveDefaultOrder(task.items, nil)) < 2 {
		return Rank(in)
	}

	if weights.Store > 0 && !types.StringNilOrEmpty(storeID) {
		counts, err := r.source.GetPairwiseCounts(ctx, *storeID, task.scope, task.items)
		if err != nil {
			logger.WarnCtx(ctx, "Failed to read store pairwise counts, using default order",
				zap.String("storeID", *storeID),
				zap.Stringer("scope", task.scope),
				zap.Error(err))
			return Rank(RankInput{Items: task.items, DefaultOrder: task.defaultOrder})
		}
		in.Store = counts
	}

	if weights.Aggregate > 0 {
		counts, err := r.source.GetAggregatedPairwiseCounts(ctx, task.scope, task.items)
		if err != nil {
			logger.WarnCtx(ctx, "Failed to read aggregated pairwise counts, using default order",
				zap.Stringer("scope", task.scope),
				zap.Error(err))
			return Rank(RankInput{Items: task.items, DefaultOrder: task.defaultOrder})
		}
		in.Aggregate = counts
	}

	return Rank(in)
}
