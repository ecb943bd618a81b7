package cache

import (
	"context"
	"fmt"

	"github.com/smashlog/smashlog/internal/logging"
)

// GetOrCreate returns the cached value for key, or computes and caches it via
// create. Concurrent callers for the same key wait for the first one instead
// of computing the value again. Returns data, created, error.
func GetOrCreate[T any](ctx context.Context, cache Cache[T], key string, create func() (T, error)) (T, bool, error) {
	// Clean up the cache if we claim an entry, but don't set it
	// This allows other callers to try again
	claimed := false
	set := false
	defer func() {
		if claimed && !set {
			cache.delete(key)
		}
	}()

	for {
		result := cache.getOrClaim(key)

		if result.claimed {
			claimed = true

			logging.FromContext(ctx).InfoContext(ctx, "Computing derived session data", "cache", "miss", "key", key)

			data, err := create()
			if err != nil {
				var empty T
				return empty, false, fmt.Errorf("failed to create cache entry: %w", err)
			}

			cache.set(key, data)
			set = true

			return data, true, nil
		}

		if result.valid {
			// Cache hit
			logging.FromContext(ctx).InfoContext(ctx, "Computing derived session data", "cache", "hit", "key", key)
			return result.data, false, nil
		}

		logging.FromContext(ctx).InfoContext(ctx, "Waiting for cache", "key", key)
		cache.wait()
	}
}
