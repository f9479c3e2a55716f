package domain

const (
	// Learning thresholds: number of valid checkoff sequences a store needs
	// before its own evidence dominates the ranking of a level
	GROUP_CONFIDENCE_THRESHOLD    = 5
	SUBGROUP_CONFIDENCE_THRESHOLD = 12
	PRODUCT_CONFIDENCE_THRESHOLD  = 25

	// Messaging subjects
	TRIP_COMPLETED_SUBJECT_PREFIX = "trips.completed"
)
