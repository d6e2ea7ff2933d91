// Package cache stores finished plan results keyed by their full input,
// so repeated runs with identical parameters skip the dimension search.
package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"time"
)

// Cache is the storage interface for serialized plan results.
type Cache interface {
	// Get retrieves a value. The second return reports a hit.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a value with an optional TTL (zero means no expiry).
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes a value. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases any resources held by the cache.
	Close() error
}

// PlanKey derives the cache key for a plan run from its complete input:
// the frame parameters and the active configuration. Any change to either
// produces a different key.
func PlanKey(params, cfg any) string {
	return hashKey("plan", params, cfg)
}

// hashKey builds a prefixed SHA-256 key over the JSON encoding of the
// components. The full 256-bit hash is kept to rule out collisions.
func hashKey(prefix string, components ...any) string {
	data, _ := json.Marshal(components)
	sum := sha256.Sum256(data)
	return fmt.Sprintf("%s:%s", prefix, hex.EncodeToString(sum[:]))
}

// Hash returns the hex SHA-256 of data.
func Hash(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}
