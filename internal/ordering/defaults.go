package ordering

import (
	"slices"
	"sort"
)

// Alphabetical returns the items sorted by name
func Alphabetical(items []string) []string {
	sorted := slices.Clone(items)
	slices.Sort(sorted)
	return sorted
}

// ByPopularity returns the items sorted by descending popularity score.
// Items without a score follow the scored ones, ties are broken by name.
func ByPopularity(items []string, popularity map[string]float64) []string {
	sorted := slices.Clone(items)
	sort.SliceStable(sorted, func(i, j int) bool {
		pi, okI := popularity[sorted[i]]
		pj, okJ := popularity[sorted[j]]
		switch {
		case okI && !okJ:
			return true
		case !okI && okJ:
			return false
		case okI && okJ && pi != pj:
			return pi > pj
		default:
			return sorted[i] < sorted[j]
		}
	})
	return sorted
}
