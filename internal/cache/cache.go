// Package cache provides the response cache for the API layer. The engine
// itself stays stateless; only the boundary caches, keyed by request hash.
package cache

import "time"

// Cache stores serialized analysis responses.
type Cache interface {
	Get(key string) (string, bool)
	Set(key string, value string, ttl time.Duration) error
}
