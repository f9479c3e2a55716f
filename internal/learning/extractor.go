package learning

import (
	"slices"
	"time"

	"github.com/shopwalk/aisle-engine/internal/domain"
	"github.com/shopwalk/aisle-engine/internal/types"
)

// SortEntries returns a copy of the entries in check-off order.
// Entries checked at the same instant keep their check position order.
func SortEntries(entries []domain.SequenceEntry) []domain.SequenceEntry {
	sorted := slices.Clone(entries)
	slices.SortStableFunc(sorted, func(a, b domain.SequenceEntry) int {
		if c := a.CheckedAt.Compare(b.CheckedAt); c != 0 {
			return c
		}
		return a.CheckPosition - b.CheckPosition
	})
	return sorted
}

// Timestamps returns the check-off timestamps of the entries in check-off order
func Timestamps(entries []domain.SequenceEntry) []time.Time {
	sorted := SortEntries(entries)
	timestamps := make([]time.Time, len(sorted))
	for i, e := range sorted {
		timestamps[i] = e.CheckedAt
	}
	return timestamps
}

// ExtractPairwise turns one validated trip into "seen before" evidence at the
// group, subgroup and product levels. Every pair of distinct keys within a
// scope contributes exactly one unit, so a scope with n distinct keys yields
// C(n,2) deltas. The result only depends on the input.
func ExtractPairwise(entries []domain.SequenceEntry) []domain.PairDelta {
	sorted := SortEntries(entries)

	groups := distinctKeys(sorted, func(e domain.SequenceEntry) string {
		return optionalKey(e.DemandGroup)
	})
	deltas := pairDeltas(domain.GroupScope(), groups)

	for _, group := range groups {
		inGroup := filterEntries(sorted, func(e domain.SequenceEntry) bool {
			return optionalKey(e.DemandGroup) == group
		})
		subgroups := distinctKeys(inGroup, func(e domain.SequenceEntry) string {
			return optionalKey(e.DemandSubGroup)
		})
		deltas = append(deltas, pairDeltas(domain.SubgroupScope(group), subgroups)...)

		for _, subgroup := range subgroups {
			inSubgroup := filterEntries(inGroup, func(e domain.SequenceEntry) bool {
				return optionalKey(e.DemandSubGroup) == subgroup
			})
			products := distinctKeys(inSubgroup, func(e domain.SequenceEntry) string {
				return optionalKey(e.ProductID)
			})
			deltas = append(deltas, pairDeltas(domain.ProductScope(group, subgroup), products)...)
		}
	}

	return deltas
}

// CategoryRanks returns the first-seen position of every category in the trip
func CategoryRanks(entries []domain.SequenceEntry) []domain.CategoryRank {
	var ranks []domain.CategoryRank
	seen := make(map[int64]bool)
	for _, e := range SortEntries(entries) {
		if e.CategoryID == nil || seen[*e.CategoryID] {
			continue
		}
		seen[*e.CategoryID] = true
		ranks = append(ranks, domain.CategoryRank{
			CategoryID: *e.CategoryID,
			Position:   len(ranks) + 1,
		})
	}
	return ranks
}

// distinctKeys returns the non-empty keys of the entries in first-occurrence order
func distinctKeys(entries []domain.SequenceEntry, key func(domain.SequenceEntry) string) []string {
	var keys []string
	seen := make(map[string]bool)
	for _, e := range entries {
		k := key(e)
		if k == "" || seen[k] {
			continue
		}
		seen[k] = true
		keys = append(keys, k)
	}
	return keys
}

func filterEntries(entries []domain.SequenceEntry, keep func(domain.SequenceEntry) bool) []domain.SequenceEntry {
	var filtered []domain.SequenceEntry
	for _, e := range entries {
		if keep(e) {
			filtered = append(filtered, e)
		}
	}
	return filtered
}

// pairDeltas emits one delta for every ordered pair (i before j) of keys
func pairDeltas(scope domain.Scope, keys []string) []domain.PairDelta {
	if len(keys) < 2 {
		return nil
	}

	deltas := make([]domain.PairDelta, 0, len(keys)*(len(keys)-1)/2)
	for i := 0; i < len(keys); i++ {
		for j := i + 1; j < len(keys); j++ {
			pair, swapped := domain.NewPair(keys[i], keys[j])
			delta := domain.PairDelta{Scope: scope, Pair: pair}
			if swapped {
				delta.BBeforeA = 1
			} else {
				delta.ABeforeB = 1
			}
			deltas = append(deltas, delta)
		}
	}
	return deltas
}

// optionalKey returns the key of a nullable field, empty when missing
func optionalKey(s *string) string {
	if types.StringNilOrEmpty(s) {
		return ""
	}
	return *s
}
