package learning

import (
	"slices"
	"time"
)

const (
	// MinSequenceItems is the minimum number of checked items a trip needs
	MinSequenceItems = 5

	minTotalDuration    = 60 * time.Second
	minAverageGap       = 5 * time.Second
	minWalkDuration     = 3 * time.Minute
	minWalkAverageGap   = 15 * time.Second
	instantGap          = 5 * time.Second
	maxInstantGapsRatio = 0.5
)

// ValidateSequence decides whether the check-off timestamps of one trip look
// like an in-store walk rather than items bulk-checked at the register.
// The rules are applied in order and the first failing rule rejects the trip.
func ValidateSequence(timestamps []time.Time) bool {
	if len(timestamps) < MinSequenceItems {
		return false
	}

	sorted := slices.Clone(timestamps)
	slices.SortStableFunc(sorted, func(a, b time.Time) int {
		return a.Compare(b)
	})

	duration := sorted[len(sorted)-1].Sub(sorted[0])
	averageGap := duration / time.Duration(len(sorted)-1)

	if duration < minTotalDuration {
		return false
	}
	if averageGap < minAverageGap {
		return false
	}
	if duration < minWalkDuration {
		return false
	}
	if averageGap < minWalkAverageGap {
		return false
	}

	instant := 0
	for i := 1; i < len(sorted); i++ {
		if sorted[i].Sub(sorted[i-1]) < instantGap {
			instant++
		}
	}

	return float64(instant)/float64(len(sorted)-1) <= maxInstantGapsRatio
}
