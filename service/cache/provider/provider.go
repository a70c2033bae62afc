// Package provider holds the byte level cache layers: primitive (in-process
// freecache), redis (shared between pods) and compound, which stacks them and
// backfills the faster layers on a hit further down.
package provider

import (
	"errors"
	"time"

	"github.com/x-xyz/storefront/base/ctx"
)

// ErrNotFound is returned by every layer on a miss or an expired entry.
var ErrNotFound = errors.New("cache entry not found")

// Provider stores raw bytes. A ttl of 0 stores the entry without expiry and
// Get reports a remaining ttl of 0 for such entries.
type Provider interface {
	Get(c ctx.Ctx, key string) ([]byte, time.Duration, error)
	Set(c ctx.Ctx, key string, value []byte, ttl time.Duration) error
	Del(c ctx.Ctx, key string) error
}
