package usecase

import (
	"golang.org/x/xerrors"

	"github.com/x-xyz/storefront/base/ctx"
	"github.com/x-xyz/storefront/base/log"
	"github.com/x-xyz/storefront/base/metrics"
	"github.com/x-xyz/storefront/domain"
	"github.com/x-xyz/storefront/service/cache"
)

type NameResolverCfg struct {
	NftContract domain.NftContractRepo
	Cache       cache.Service
	Metrics     metrics.Service
}

type nameResolver struct {
	nft   domain.NftContractRepo
	cache cache.Service
	met   metrics.Service
}

func NewNameResolver(cfg *NameResolverCfg) domain.CollectionNameUseCase {
	met := cfg.Metrics
	if met == nil {
		met = metrics.New("collection")
	}
	return &nameResolver{
		nft:   cfg.NftContract,
		cache: cfg.Cache,
		met:   met,
	}
}

// Resolve returns the on-chain name of the collection, cached as returned even
// when empty. A failed read settles on the truncated address, which is kept
// for the cache's fallback ttl. Reads cut short by c are not cached.
func (r *nameResolver) Resolve(c ctx.Ctx, address domain.Address) string {
	var name string
	err := r.cache.GetByFunc(c, address.ToLowerStr(), &name, func() (interface{}, error) {
		return r.lookup(c, address)
	})
	if err != nil {
		c.WithFields(log.Fields{
			"err":        err,
			"collection": address,
		}).Warn("cache.GetByFunc failed")
		return address.Truncate()
	}
	return name
}

func (r *nameResolver) lookup(c ctx.Ctx, address domain.Address) (interface{}, error) {
	name, err := r.nft.Name(c, address)
	if err != nil {
		if cerr := c.Err(); cerr != nil {
			return nil, xerrors.Errorf("name of %s: %w", address, cerr)
		}
		c.WithFields(log.Fields{
			"err":        xerrors.Errorf("%w: %v", domain.ErrNameResolutionFailed, err),
			"collection": address,
		}).Warn("nft.Name failed")
		r.met.BumpSum("name.fallback", 1)
		return cache.Fallback(address.Truncate()), nil
	}
	return name, nil
}
