package compound

import (
	"time"

	"github.com/x-xyz/storefront/base/ctx"
	"github.com/x-xyz/storefront/service/cache/provider"
)

type impl struct {
	layers []provider.Provider
}

// NewCompound stacks layers from fastest to slowest. Get returns on the first
// hit and back-fills the layers in front of it. A layer that errors is logged
// and skipped, so an unreachable redis degrades to the in-process layer.
func NewCompound(layers []provider.Provider) provider.Provider {
	return &impl{layers}
}

func (im *impl) Get(c ctx.Ctx, key string) ([]byte, time.Duration, error) {
	var (
		val     []byte
		ttl     time.Duration
		err     error
		lastErr error
		hitIdx  = -1
	)

	for idx, lyr := range im.layers {
		if val, ttl, err = lyr.Get(c, key); err == provider.ErrNotFound {
			continue
		} else if err != nil {
			c.WithField("err", err).WithField("layer", idx).Warn("layer.Get failed, skipped")
			lastErr = err
			continue
		}
		hitIdx = idx
		break
	}

	if hitIdx == -1 {
		if lastErr != nil && len(im.layers) == 1 {
			return nil, time.Duration(0), lastErr
		}
		return nil, time.Duration(0), provider.ErrNotFound
	}

	// fill layers which missing cache
	for idx := 0; idx < hitIdx; idx++ {
		if err := im.layers[idx].Set(c, key, val, ttl); err != nil {
			c.WithField("err", err).WithField("layer", idx).Warn("layer.Set failed on back-fill")
		}
	}

	return val, ttl, nil
}

// Set writes every layer and fails only when all of them fail.
func (im *impl) Set(c ctx.Ctx, key string, value []byte, ttl time.Duration) error {
	var lastErr error
	ok := 0
	for idx, lyr := range im.layers {
		if err := lyr.Set(c, key, value, ttl); err != nil {
			c.WithField("err", err).WithField("layer", idx).Warn("layer.Set failed")
			lastErr = err
			continue
		}
		ok++
	}
	if ok == 0 {
		return lastErr
	}
	return nil
}

func (im *impl) Del(c ctx.Ctx, key string) error {
	for _, lyr := range im.layers {
		if err := lyr.Del(c, key); err != nil {
			return err
		}
	}
	return nil
}
