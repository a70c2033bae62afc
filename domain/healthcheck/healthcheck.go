package healthcheck

import (
	"github.com/x-xyz/storefront/base/ctx"
)

// Probe names a dependency the service needs to answer requests.
type Probe string

const (
	ProbeChain Probe = "chain"
	ProbeCache Probe = "cache"
)

// HealthCheckUsecase runs every probe. The returned error wraps the first
// failing probe's error and reads "<probe>: <cause>".
type HealthCheckUsecase interface {
	Check(context ctx.Ctx) error
}

type HealthCheckRepo interface {
	// PingChain reads the chain head through the throttled rpc client.
	PingChain(context ctx.Ctx) error
	// PingCache writes a short lived key to redis. It is a no-op without redis.
	PingCache(context ctx.Ctx) error
}
