package redisclient

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/x-xyz/storefront/base/ctx"
)

func TestNewPoolSizes(t *testing.T) {
	req := require.New(t)

	p := NewPool("localhost:6379", "")
	req.Equal(16, p.MaxIdle)
	req.Equal(64, p.MaxActive)
	req.True(p.Wait)
}

func TestConnectRedisUnreachable(t *testing.T) {
	req := require.New(t)

	p, err := ConnectRedis(ctx.Background(), "127.0.0.1:1", "", RedisParam{Retries: 0})
	req.Error(err)
	req.Nil(p)
}
