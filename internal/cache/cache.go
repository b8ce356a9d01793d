// Package cache provides the in-memory store used to memoize
// translation results.
package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"time"
)

// Cache defines the interface for caching translated text
type Cache interface {
	Get(key string) (string, bool)
	Set(key string, value string, ttl time.Duration)
	Delete(key string)
	Clear()
}

// Key generates a cache key from arbitrary input text
func Key(input string) string {
	hash := sha256.Sum256([]byte(input))
	return "truthlens:v1:" + hex.EncodeToString(hash[:])
}
