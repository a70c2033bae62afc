package redis

import (
	"time"

	"github.com/gomodule/redigo/redis"

	"github.com/x-xyz/storefront/base/ctx"
	"github.com/x-xyz/storefront/base/log"
	"github.com/x-xyz/storefront/base/metrics"
	"github.com/x-xyz/storefront/domain/keys"
)

// PTTL replies for a missing key and for a key without expiry
const (
	pttlNoKey    = -2
	pttlNoExpire = -1
)

type redImpl struct {
	name string
	met  metrics.Service
	pool *redis.Pool
}

// Pools holds the connection pools of one logical redis.
type Pools struct {
	Src *redis.Pool
}

// New wraps pools.Src. name tags every metric so that several redis
// deployments can share a dashboard.
func New(name string, met metrics.Service, pools *Pools) Service {
	im := &redImpl{name: name, met: met}
	if pools != nil {
		im.pool = pools.Src
	}
	return im
}

// do runs one command on a pooled connection and records its latency under
// the command name and key prefix.
func (r *redImpl) do(context ctx.Ctx, cmd, key string, args ...interface{}) (interface{}, error) {
	tags := []string{"cmd", cmd, "cluster", r.name, "prefix", keys.GetPrefix(key)}
	defer r.met.BumpTime("time", tags...).End()

	if r.pool == nil {
		return nil, ErrNoPool
	}
	conn, err := r.pool.GetContext(context)
	if err != nil {
		r.met.BumpSum("getconn.err", 1, "cluster", r.name)
		return nil, err
	}

	if key != "" {
		args = append([]interface{}{key}, args...)
	}
	reply, err := conn.Do(cmd, args...)

	// return the connection right away, holding it grows the pool under load
	if cerr := conn.Close(); cerr != nil {
		r.met.BumpSum("conn.close.err", 1, "cluster", r.name)
	}
	if err != nil {
		r.met.BumpSum("err", 1, tags...)
		context.WithFields(log.Fields{
			"err": err,
			"cmd": cmd,
			"key": key,
		}).Warn("redis command failed")
	}
	return reply, err
}

func (r *redImpl) Get(context ctx.Ctx, key string) ([]byte, error) {
	val, err := redis.Bytes(r.do(context, "GET", key))
	if err != nil {
		return nil, err
	}
	r.met.BumpHistogram("bytes", float64(len(val)), "cluster", r.name, "prefix", keys.GetPrefix(key))
	return val, nil
}

func (r *redImpl) Set(context ctx.Ctx, key string, val []byte, expire time.Duration) error {
	if expire <= Forever {
		_, err := r.do(context, "SET", key, val)
		return err
	}
	_, err := r.do(context, "SET", key, val, "PX", expire.Milliseconds())
	return err
}

func (r *redImpl) Del(context ctx.Ctx, key string) error {
	_, err := r.do(context, "DEL", key)
	return err
}

func (r *redImpl) PTTL(context ctx.Ctx, key string) (time.Duration, error) {
	ms, err := redis.Int64(r.do(context, "PTTL", key))
	if err != nil {
		return 0, err
	}
	switch ms {
	case pttlNoKey:
		return 0, ErrNotFound
	case pttlNoExpire:
		return 0, ErrNoTTL
	}
	return time.Duration(ms) * time.Millisecond, nil
}

func (r *redImpl) Ping(context ctx.Ctx) error {
	_, err := redis.String(r.do(context, "PING", ""))
	return err
}
