package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"time"
)

// Cache defines the interface for caching
type Cache interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte, ttl time.Duration) error
	Delete(key string) error
	Clear() error
}

// ResponseKey generates a cache key for a reasoning-gateway response from
// the role and full prompt contents.
func ResponseKey(role, system, prompt string) string {
	hash := sha256.Sum256([]byte(role + "\x00" + system + "\x00" + prompt))
	return "crucible:v1:" + hex.EncodeToString(hash[:])
}
