package usecase

import (
	"sort"
	"time"

	"github.com/samber/lo"
	"github.com/viney-shih/goroutines"
	"golang.org/x/xerrors"

	"github.com/x-xyz/storefront/base/counter"
	"github.com/x-xyz/storefront/base/ctx"
	"github.com/x-xyz/storefront/base/log"
	"github.com/x-xyz/storefront/base/metrics"
	pricefomatter "github.com/x-xyz/storefront/base/price_fomatter"
	"github.com/x-xyz/storefront/domain"
)

var timeNow = time.Now

const (
	defaultWindow    = 800
	defaultBatchSize = 20
)

type AggregatorCfg struct {
	Registry domain.OrderRegistryRepo
	NameUC   domain.CollectionNameUseCase
	// Window is how many of the most recent orders are scanned
	Window    uint64
	BatchSize int
	Metrics   metrics.Service
}

type aggregator struct {
	registry  domain.OrderRegistryRepo
	nameUC    domain.CollectionNameUseCase
	window    uint64
	batchSize int
	met       metrics.Service
}

func NewAggregator(cfg *AggregatorCfg) domain.ListingAggregator {
	a := &aggregator{
		registry:  cfg.Registry,
		nameUC:    cfg.NameUC,
		window:    cfg.Window,
		batchSize: cfg.BatchSize,
		met:       cfg.Metrics,
	}
	if a.window == 0 {
		a.window = defaultWindow
	}
	if a.batchSize <= 0 {
		a.batchSize = defaultBatchSize
	}
	if a.met == nil {
		a.met = metrics.New("listing")
	}
	return a
}

// Aggregate scans [max(0, total-window), total) in batches. Batches run one
// after another, the reads inside a batch run concurrently. Orders that fail
// to read are skipped. If c ends mid scan the result is dropped and c.Err()
// is returned.
func (a *aggregator) Aggregate(c ctx.Ctx) (*domain.Aggregation, error) {
	defer a.met.BumpTime("aggregate").End()

	total, err := a.registry.TotalOrders(c)
	if err != nil {
		c.WithField("err", err).Error("registry.TotalOrders failed")
		return nil, xerrors.Errorf("total orders: %w", err)
	}

	start := uint64(0)
	if total > a.window {
		start = total - a.window
	}

	res := &domain.Aggregation{
		Listings:        []domain.Listing{},
		ExecutedIndices: []uint64{},
	}
	skipped := counter.NewCounter()
	now := timeNow()

	for from := start; from < total; from += uint64(a.batchSize) {
		to := from + uint64(a.batchSize)
		if to > total {
			to = total
		}

		orders := a.readBatch(c, from, to, skipped)
		// reads failing because c ended are not skips, the scan is incomplete
		if err := c.Err(); err != nil {
			c.WithFields(log.Fields{"err": err, "batch": from}).Warn("aggregate aborted")
			return nil, xerrors.Errorf("aggregate orders [%d, %d): %w", start, total, err)
		}

		active := make([]*domain.Order, 0, len(orders))
		for _, o := range orders {
			if o.IsExecuted {
				res.ExecutedIndices = append(res.ExecutedIndices, o.Index)
			} else if o.IsActive(now) {
				active = append(active, o)
			}
		}

		names := a.resolveNames(c, active)
		for _, o := range active {
			res.Listings = append(res.Listings, toListing(o, names[o.Collection]))
		}
	}

	res.Skipped = skipped.Count()
	if res.Skipped > 0 {
		c.WithFields(log.Fields{
			"skipped": res.Skipped,
			"from":    start,
			"to":      total,
		}).Warn("orders skipped")
		a.met.BumpSum("skipped", float64(res.Skipped))
	}
	res.Collections = Summarize(res.Listings)
	return res, nil
}

// readBatch reads [from, to) concurrently and returns the orders that were read,
// ordered by index.
func (a *aggregator) readBatch(c ctx.Ctx, from, to uint64, skipped *counter.Counter) []*domain.Order {
	size := int(to - from)
	b := goroutines.NewBatch(size, goroutines.WithBatchSize(size))
	defer b.Close()
	for i := from; i < to; i++ {
		idx := i
		b.Queue(func() (interface{}, error) {
			return a.registry.GetSignedOrder(c, idx)
		})
	}
	b.QueueComplete()

	orders := make([]*domain.Order, 0, size)
	for ret := range b.Results() {
		if ret.Error() != nil {
			c.WithField("err", ret.Error()).Warn("registry.GetSignedOrder failed")
			skipped.Inc()
			continue
		}
		orders = append(orders, ret.Value().(*domain.Order))
	}
	sort.Slice(orders, func(i, j int) bool {
		return orders[i].Index < orders[j].Index
	})
	return orders
}

func (a *aggregator) resolveNames(c ctx.Ctx, orders []*domain.Order) map[domain.Address]string {
	collections := lo.Uniq(lo.Map(orders, func(o *domain.Order, _ int) domain.Address {
		return o.Collection
	}))
	names := make(map[domain.Address]string, len(collections))
	if len(collections) == 0 {
		return names
	}

	type named struct {
		address domain.Address
		name    string
	}
	b := goroutines.NewBatch(len(collections), goroutines.WithBatchSize(len(collections)))
	defer b.Close()
	for _, addr := range collections {
		addr := addr
		b.Queue(func() (interface{}, error) {
			return named{addr, a.nameUC.Resolve(c, addr)}, nil
		})
	}
	b.QueueComplete()

	for ret := range b.Results() {
		n := ret.Value().(named)
		names[n.address] = n.name
	}
	return names
}

func toListing(o *domain.Order, collectionName string) domain.Listing {
	return domain.Listing{
		Index:          o.Index,
		Collection:     o.Collection.ToLower(),
		CollectionName: collectionName,
		TokenId:        o.TokenId.String(),
		Price:          pricefomatter.FormatEther(o.PriceWei),
		PriceRaw:       o.PriceWei.String(),
		Seller:         o.Seller.ToLower(),
		PaymentMethod:  o.PaymentMethod.ToLower(),
		Expiration:     o.Expiration,
		PriceWei:       o.PriceWei,
	}
}
