package cache

import "time"

const (
	// Cached available listing: foods:available:{gen}:{search}:{order}
	KeyAvailableFoods = "foods:available:%s:%s:%s"

	// Generation counter bumped on every food write; stale generations age
	// out through the TTL.
	KeyFoodsGeneration = "foods:gen"
)

var (
	TTLAvailableFoods = 5 * time.Minute
)
