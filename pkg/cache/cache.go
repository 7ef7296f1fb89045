// Package cache stores derived render artifacts: option trees produced by
// the transformer and the files rendered from them. Chart data itself is
// never cached.
//
// Three backends implement [Cache]:
//
//   - [NullCache] never stores anything (caching disabled)
//   - [FileCache] keeps entries on local disk for the CLI
//   - [RedisCache] shares entries between HTTP service replicas
//
// Keys come from a [Keyer], which hashes every input that affects the
// cached value so that a changed config or option never hits a stale entry.
package cache

import (
	"context"
	"time"
)

// Default entry lifetimes.
const (
	OptionsTTL  = 24 * time.Hour
	ArtifactTTL = 7 * 24 * time.Hour
)

// Cache is a byte-oriented key/value store with optional expiry.
type Cache interface {
	// Get returns the value for key and whether it was found.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores data under key. A ttl of zero never expires.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes key. Missing keys are not an error.
	Delete(ctx context.Context, key string) error

	// Close releases backend resources.
	Close() error
}
