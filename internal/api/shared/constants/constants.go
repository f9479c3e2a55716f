package constants

const (
	MAX_GROUPS_PER_REQUEST      = 200
	MAX_SUBGROUPS_PER_GROUP     = 200
	MAX_PRODUCTS_PER_SUBGROUP   = 500
	HEADER_RATE_LIMIT_LIMIT     = "X-RateLimit-Limit"
	HEADER_RATE_LIMIT_REMAINING = "X-RateLimit-Remaining"
	HEADER_RETRY_AFTER          = "Retry-After"
)
