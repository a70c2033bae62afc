package usecase

import (
	"sort"
	"strings"
	"time"

	"github.com/samber/lo"

	"github.com/x-xyz/storefront/base/ctx"
	"github.com/x-xyz/storefront/base/snapshot"
	"github.com/x-xyz/storefront/domain"
)

type ListingUseCaseCfg struct {
	Aggregator domain.ListingAggregator
	Registry   domain.OrderRegistryRepo
	ChainId    domain.ChainId
	Ttl        time.Duration
	// RefreshTimeout bounds one rebuild, zero leaves it unbounded
	RefreshTimeout time.Duration
}

type impl struct {
	aggregator domain.ListingAggregator
	registry   domain.OrderRegistryRepo
	chainId    domain.ChainId
	slot       *snapshot.Slot[*domain.ListingsSnapshot]
}

func NewListingUseCase(cfg *ListingUseCaseCfg) domain.ListingUseCase {
	return &impl{
		aggregator: cfg.Aggregator,
		registry:   cfg.Registry,
		chainId:    cfg.ChainId,
		slot: snapshot.New(cfg.Ttl,
			snapshot.WithClock[*domain.ListingsSnapshot](func() time.Time {
				return timeNow()
			}),
			snapshot.WithRefreshTimeout[*domain.ListingsSnapshot](cfg.RefreshTimeout),
		),
	}
}

func (im *impl) GetListings(c ctx.Ctx) (*domain.ListingsSnapshot, error) {
	snap, err := im.slot.Get(c, im.refresh)
	if err != nil {
		c.WithField("err", err).Error("slot.Get failed")
		return nil, err
	}
	return snap, nil
}

func (im *impl) Refresh(c ctx.Ctx) (*domain.ListingsSnapshot, error) {
	snap, err := im.slot.Refresh(c, im.refresh)
	if err != nil {
		c.WithField("err", err).Error("slot.Refresh failed")
		return nil, err
	}
	return snap, nil
}

func (im *impl) refresh(c ctx.Ctx) (*domain.ListingsSnapshot, error) {
	agg, err := im.aggregator.Aggregate(c)
	if err != nil {
		c.WithField("err", err).Error("aggregator.Aggregate failed")
		return nil, err
	}
	return &domain.ListingsSnapshot{
		Listings:      agg.Listings,
		Collections:   agg.Collections,
		TotalExecuted: len(agg.ExecutedIndices),
		FetchedAt:     timeNow().UnixMilli(),
	}, nil
}

// GetCollectionListings returns the collection summary and its listings,
// cheapest first.
func (im *impl) GetCollectionListings(c ctx.Ctx, address domain.Address) (*domain.CollectionListings, error) {
	snap, err := im.GetListings(c)
	if err != nil {
		return nil, err
	}

	summary, ok := lo.Find(snap.Collections, func(s domain.CollectionSummary) bool {
		return s.Address.Equals(address)
	})
	if !ok {
		return nil, domain.ErrNotFound
	}

	// copy, the snapshot is shared
	listings := lo.Filter(snap.Listings, func(l domain.Listing, _ int) bool {
		return l.Collection.Equals(address)
	})
	sort.SliceStable(listings, func(i, j int) bool {
		return listings[i].PriceWei.Cmp(listings[j].PriceWei) < 0
	})
	return &domain.CollectionListings{
		Collection: summary,
		Listings:   listings,
	}, nil
}

func (im *impl) SearchCollections(c ctx.Ctx, q string) ([]domain.CollectionSummary, error) {
	snap, err := im.GetListings(c)
	if err != nil {
		return nil, err
	}
	q = strings.ToLower(strings.TrimSpace(q))
	if q == "" {
		return snap.Collections, nil
	}
	return lo.Filter(snap.Collections, func(s domain.CollectionSummary, _ int) bool {
		return strings.Contains(strings.ToLower(s.Name), q) || strings.Contains(s.Address.ToLowerStr(), q)
	}), nil
}
