package redis

import (
	"errors"
	"time"

	"github.com/gomodule/redigo/redis"

	"github.com/x-xyz/storefront/base/ctx"
)

// Forever is passed as expire to store a key without ttl.
const Forever = time.Duration(0)

var (
	// ErrNotFound is returned when the key does not exist
	ErrNotFound = redis.ErrNil
	// ErrNoTTL is returned by PTTL when the key exists but never expires
	ErrNoTTL = errors.New("key has no ttl")
	// ErrNoPool is returned when the service was built without a pool
	ErrNoPool = errors.New("no redis pool available")
)

// Service is the subset of redis commands the L2 cache and health check use.
type Service interface {
	Get(context ctx.Ctx, key string) ([]byte, error)
	Set(context ctx.Ctx, key string, val []byte, expire time.Duration) error
	Del(context ctx.Ctx, key string) error
	// PTTL reports the remaining lifetime of key with millisecond precision.
	PTTL(context ctx.Ctx, key string) (time.Duration, error)
	Ping(context ctx.Ctx) error
}
