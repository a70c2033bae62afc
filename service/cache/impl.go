package cache

import (
	"reflect"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/x-xyz/storefront/base/ctx"
	"github.com/x-xyz/storefront/domain/keys"
	"github.com/x-xyz/storefront/service/cache/provider"
)

type impl struct {
	ttl         time.Duration
	fallbackTtl time.Duration
	pfx         string
	cache       provider.Provider
	codec       Codec
	fills       singleflight.Group
}

func New(config ServiceConfig) Service {
	if config.Codec == nil {
		config.Codec = jsonCodec{}
	}

	return &impl{
		ttl:         config.Ttl,
		fallbackTtl: config.FallbackTtl,
		pfx:         config.Pfx,
		cache:       config.Cache,
		codec:       config.Codec,
	}
}

func (im *impl) GetByFunc(c ctx.Ctx, key string, container interface{}, getter OneTimeGetter) error {
	err := im.Get(c, key, container)
	if err != nil && err != ErrNotFound {
		c.WithField("err", err).WithField("key", key).Error("Get failed")
		return err
	} else if err == nil {
		// hit cache, early return
		return nil
	}

	// no cache, get and fill cache
	val, err, _ := im.fills.Do(key, func() (interface{}, error) {
		val, err := getter()
		if err != nil {
			return nil, err
		}
		ttl := im.ttl
		if fb, ok := val.(fallback); ok {
			val, ttl = fb.v, im.fallbackTtl
			// a zero ttl would keep the fallback forever
			if ttl <= 0 {
				return val, nil
			}
		}
		if err := im.set(c, key, val, ttl); err != nil {
			c.WithField("err", err).WithField("key", key).Error("Set failed")
		}
		return val, nil
	})
	if err != nil {
		c.WithField("err", err).WithField("key", key).Error("GetByFunc getter failed")
		return err
	}

	dst := reflect.ValueOf(container).Elem()
	src := reflect.ValueOf(val)
	if src.Kind() == reflect.Ptr && src.Type() != dst.Type() {
		src = src.Elem()
	}
	dst.Set(src)

	return nil
}

func (im *impl) Get(c ctx.Ctx, key string, container interface{}) error {
	key = keys.RedisKey(im.pfx, key)

	if val, _, err := im.cache.Get(c, key); err == ErrNotFound {
		return err
	} else if err != nil {
		c.WithField("err", err).WithField("key", key).Error("cache.Get failed")
		return err
	} else if err := im.codec.Unmarshal(val, container); err != nil {
		c.WithField("err", err).WithField("key", key).Error("deserialize failed")
		return err
	}

	return nil
}

func (im *impl) Set(c ctx.Ctx, key string, value interface{}) error {
	return im.set(c, key, value, im.ttl)
}

func (im *impl) set(c ctx.Ctx, key string, value interface{}, ttl time.Duration) error {
	key = keys.RedisKey(im.pfx, key)

	if val, err := im.codec.Marshal(value); err != nil {
		c.WithField("err", err).WithField("key", key).Error("serialize failed")
		return err
	} else if err := im.cache.Set(c, key, val, ttl); err != nil {
		c.WithField("err", err).WithField("key", key).Error("cache.Set failed")
		return err
	}

	return nil
}

func (im *impl) Del(c ctx.Ctx, key string) error {
	key = keys.RedisKey(im.pfx, key)

	if err := im.cache.Del(c, key); err != nil {
		c.WithField("err", err).WithField("key", key).Error("cache.Del failed")
		return err
	}

	return nil
}
