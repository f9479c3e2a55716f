package ordering

import (
	"slices"
	"sort"

	"github.com/shopwalk/aisle-engine/internal/domain"
)

// RankInput holds everything needed to rank the items of one scope
type RankInput struct {
	// Items are the keys to order. Duplicates are ignored.
	Items []string
	// DefaultOrder is the fallback order. Items missing from it follow alphabetically.
	DefaultOrder []string
	// Store holds the pairwise counts learned for the target store
	Store []domain.PairCount
	// Aggregate holds the pairwise counts summed across all stores
	Aggregate []domain.PairCount
	Weights   Weights
}

type effectiveCount struct {
	aBeforeB float64
	bBeforeA float64
}

func (c effectiveCount) total() float64 {
	return c.aBeforeB + c.bBeforeA
}

// Rank orders the items of one scope by their summed pairwise preference.
//
// For every canonical pair the store counts, the aggregated counts and a prior
// on adjacent items of the default order are blended with the given weights.
// An item X scores the sum over all other items Y of P(X before Y); pairs with
// no evidence contribute nothing. Items are sorted by descending score with
// ties broken by default position. Items that were never observed in store or
// aggregated evidence are appended in default order.
func Rank(in RankInput) []string {
	defaults := effectiveDefaultOrder(in.Items, in.DefaultOrder)
	if len(defaults) < 2 {
		return defaults
	}

	position := make(map[string]int, len(defaults))
	for i, item := range defaults {
		position[item] = i
	}

	counts := make(map[domain.Pair]effectiveCount)
	observed := make(map[string]bool)

	addEvidence := func(source []domain.PairCount, weight float64) {
		if weight <= 0 {
			return
		}
		for _, pc := range source {
			pair, swapped := domain.NewPair(pc.Pair.A, pc.Pair.B)
			if pair.A == pair.B {
				continue
			}
			if _, ok := position[pair.A]; !ok {
				continue
			}
			if _, ok := position[pair.B]; !ok {
				continue
			}

			aBeforeB, bBeforeA := pc.ABeforeB, pc.BBeforeA
			if swapped {
				aBeforeB, bBeforeA = bBeforeA, aBeforeB
			}
			if aBeforeB+bBeforeA <= 0 {
				continue
			}

			c := counts[pair]
			c.aBeforeB += weight * aBeforeB
			c.bBeforeA += weight * bBeforeA
			counts[pair] = c

			observed[pair.A] = true
			observed[pair.B] = true
		}
	}

	addEvidence(in.Store, in.Weights.Store)
	addEvidence(in.Aggregate, in.Weights.Aggregate)

	// prior nudges each item ahead of its default successor
	if in.Weights.Default > 0 {
		for i := 0; i+1 < len(defaults); i++ {
			pair, swapped := domain.NewPair(defaults[i], defaults[i+1])
			c := counts[pair]
			if swapped {
				c.bBeforeA += in.Weights.Default
			} else {
				c.aBeforeB += in.Weights.Default
			}
			counts[pair] = c
		}
	}

	scores := make(map[string]float64, len(defaults))
	for i, x := range defaults {
		for _, y := range defaults[i+1:] {
			pair, swapped := domain.NewPair(x, y)
			c := counts[pair]
			if c.total() <= 0 {
				continue
			}

			pA := c.aBeforeB / c.total()
			pB := c.bBeforeA / c.total()
			if swapped {
				scores[x] += pB
				scores[y] += pA
			} else {
				scores[x] += pA
				scores[y] += pB
			}
		}
	}

	var ranked, unobserved []string
	for _, item := range defaults {
		if observed[item] {
			ranked = append(ranked, item)
		} else {
			unobserved = append(unobserved, item)
		}
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		si, sj := scores[ranked[i]], scores[ranked[j]]
		if si != sj {
			return si > sj
		}
		return position[ranked[i]] < position[ranked[j]]
	})

	return append(ranked, unobserved...)
}

// effectiveDefaultOrder returns the distinct items in default order,
// followed alphabetically by items the default order does not mention
func effectiveDefaultOrder(items, defaultOrder []string) []string {
	present := make(map[string]bool, len(items))
	for _, item := range items {
		present[item] = true
	}

	ordered := make([]string, 0, len(present))
	placed := make(map[string]bool, len(present))
	for _, item := range defaultOrder {
		if present[item] && !placed[item] {
			placed[item] = true
			ordered = append(ordered, item)
		}
	}

	var rest []string
	for item := range present {
		if !placed[item] {
			rest = append(rest, item)
		}
	}
	slices.Sort(rest)

	return append(ordered, rest...)
}
