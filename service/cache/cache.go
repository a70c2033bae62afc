// Package cache layers typed values over a byte provider. Name and token
// metadata lookups go through it so that each key is read from chain at most
// once per process, and once across pods when redis is configured.
package cache

import (
	"encoding/json"
	"time"

	"github.com/x-xyz/storefront/base/ctx"
	"github.com/x-xyz/storefront/service/cache/provider"
)

// ErrNotFound is the provider's miss error, surfaced unchanged by Get.
var ErrNotFound = provider.ErrNotFound

// OneTimeGetter produces the value on a miss. It may return a pointer or a value
// of the container's element type, optionally wrapped by Fallback.
type OneTimeGetter func() (interface{}, error)

type fallback struct {
	v interface{}
}

// Fallback wraps a getter result that stands in for a value which could not be
// read. It is handed to the caller as usual but stored for FallbackTtl only.
func Fallback(v interface{}) interface{} {
	return fallback{v}
}

// Codec turns values into provider bytes and back.
type Codec interface {
	Marshal(interface{}) ([]byte, error)
	Unmarshal([]byte, interface{}) error
}

type jsonCodec struct{}

func (jsonCodec) Marshal(v interface{}) ([]byte, error)      { return json.Marshal(v) }
func (jsonCodec) Unmarshal(data []byte, v interface{}) error { return json.Unmarshal(data, v) }

type Service interface {
	// GetByFunc fills container from cache, or from getter on a miss.
	// Concurrent misses on one key share a single getter call.
	GetByFunc(c ctx.Ctx, key string, container interface{}, getter OneTimeGetter) error
	Get(c ctx.Ctx, key string, container interface{}) error
	Set(c ctx.Ctx, key string, value interface{}) error
	Del(c ctx.Ctx, key string) error
}

type ServiceConfig struct {
	// Ttl of 0 keeps entries until the provider evicts them
	Ttl time.Duration
	// FallbackTtl is how long Fallback results are kept, 0 does not store them
	FallbackTtl time.Duration
	Pfx         string
	Cache       provider.Provider
	// Codec defaults to encoding/json
	Codec Codec
}
