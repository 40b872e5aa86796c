package redis

import (
	"time"

	"github.com/gomodule/redigo/redis"

	"github.com/cryptobazaar/goapi/base/ctx"
)

// Forever means the key has no associated expire
const Forever = time.Duration(-1)

var (
	// ErrNotFound is returned when the key does not exist
	ErrNotFound = redis.ErrNil

	// ErrNoTTL is returned by TTL when the key exists but has no associated expire
	ErrNoTTL = redis.Error("key has no ttl")
)

// Service provides interface of redis operations
type Service interface {
	// Get gets the value of key. Returns ErrNotFound if the key does not exist
	Get(context ctx.Ctx, key string) (val []byte, err error)

	// Set sets key to hold value, expire Forever means no expiration
	Set(context ctx.Ctx, key string, val []byte, expire time.Duration) error

	// Del removes the specified keys and returns the number of keys removed
	Del(context ctx.Ctx, ks ...string) (int, error)

	// TTL returns the remaining time to live of a key in seconds.
	// Returns ErrNotFound if the key does not exist, ErrNoTTL if the key has
	// no associated expire
	TTL(context ctx.Ctx, key string) (int, error)
}
