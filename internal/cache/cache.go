// Package cache provides a small read-through cache for rendered
// settlement views, keyed by split ID. Implementations must tolerate
// being a pure optimization: a miss or a failed Set is never an error
// the caller needs to act on.
package cache

import "context"

// Cache is the interface shared by the Redis and in-memory
// implementations.
type Cache interface {
	// Get returns the cached value and whether it was present.
	Get(ctx context.Context, key string) (string, bool)

	// Set stores a value under the key, replacing any previous value.
	Set(ctx context.Context, key, value string) error

	// Delete removes the key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error
}
