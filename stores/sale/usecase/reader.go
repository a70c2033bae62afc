package usecase

import (
	"math/big"
	"sort"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/viney-shih/goroutines"
	"golang.org/x/sync/errgroup"
	"golang.org/x/xerrors"

	"github.com/x-xyz/storefront/base/counter"
	"github.com/x-xyz/storefront/base/ctx"
	"github.com/x-xyz/storefront/base/log"
	"github.com/x-xyz/storefront/base/metrics"
	pricefomatter "github.com/x-xyz/storefront/base/price_fomatter"
	"github.com/x-xyz/storefront/domain"
	"github.com/x-xyz/storefront/service/chain"
)

const (
	defaultBlockWindow = 50000
	defaultMaxEvents   = 15
)

type SaleReaderCfg struct {
	Chain    chain.Client
	Registry domain.OrderRegistryRepo
	NameUC   domain.CollectionNameUseCase
	// BlockWindow is how far back from head OrderExecuted logs are searched
	BlockWindow uint64
	MaxEvents   int
	Metrics     metrics.Service
}

type reader struct {
	chain       chain.Client
	registry    domain.OrderRegistryRepo
	nameUC      domain.CollectionNameUseCase
	blockWindow uint64
	maxEvents   int
	met         metrics.Service
}

func NewSaleReader(cfg *SaleReaderCfg) domain.SaleReader {
	r := &reader{
		chain:       cfg.Chain,
		registry:    cfg.Registry,
		nameUC:      cfg.NameUC,
		blockWindow: cfg.BlockWindow,
		maxEvents:   cfg.MaxEvents,
		met:         cfg.Metrics,
	}
	if r.blockWindow == 0 {
		r.blockWindow = defaultBlockWindow
	}
	if r.maxEvents <= 0 {
		r.maxEvents = defaultMaxEvents
	}
	if r.met == nil {
		r.met = metrics.New("sale")
	}
	return r
}

// FetchRecentSales returns the sales behind the latest OrderExecuted logs,
// newest first. A sale whose order, transaction or block can not be read is
// dropped. If c ends while sales are assembled c.Err() is returned.
func (r *reader) FetchRecentSales(c ctx.Ctx) ([]domain.Sale, error) {
	defer r.met.BumpTime("fetch").End()

	head, err := r.chain.BlockNumber(c)
	if err != nil {
		c.WithField("err", err).Error("chain.BlockNumber failed")
		return nil, xerrors.Errorf("block number: %w: %v", domain.ErrChainUnavailable, err)
	}
	from := uint64(0)
	if head > r.blockWindow {
		from = head - r.blockWindow
	}

	events, err := r.registry.FilterOrderExecuted(c, from, head)
	if err != nil {
		c.WithFields(log.Fields{
			"err":  err,
			"from": from,
			"to":   head,
		}).Error("registry.FilterOrderExecuted failed")
		return nil, err
	}
	if len(events) > r.maxEvents {
		events = events[len(events)-r.maxEvents:]
	}
	if len(events) == 0 {
		return []domain.Sale{}, nil
	}

	type assembled struct {
		pos  int
		sale *domain.Sale
	}
	dropped := counter.NewCounter()
	b := goroutines.NewBatch(len(events), goroutines.WithBatchSize(len(events)))
	defer b.Close()
	for i := range events {
		pos := i
		b.Queue(func() (interface{}, error) {
			sale, err := r.assemble(c, events[pos])
			if err != nil {
				return nil, err
			}
			return assembled{pos, sale}, nil
		})
	}
	b.QueueComplete()

	byPos := make([]*domain.Sale, len(events))
	for ret := range b.Results() {
		if ret.Error() != nil {
			c.WithField("err", ret.Error()).Warn("sale dropped")
			dropped.Inc()
			continue
		}
		a := ret.Value().(assembled)
		byPos[a.pos] = a.sale
	}
	// sales dropped because c ended would make the list look shorter than it is
	if err := c.Err(); err != nil {
		c.WithField("err", err).Warn("fetch recent sales aborted")
		return nil, xerrors.Errorf("fetch recent sales: %w", err)
	}
	if n := dropped.Count(); n > 0 {
		r.met.BumpSum("dropped", float64(n))
	}

	// latest log first, so a stable sort keeps later logs ahead on equal timestamps
	sales := make([]domain.Sale, 0, len(events))
	for i := len(byPos) - 1; i >= 0; i-- {
		if byPos[i] != nil {
			sales = append(sales, *byPos[i])
		}
	}
	sort.SliceStable(sales, func(i, j int) bool {
		return sales[i].Timestamp > sales[j].Timestamp
	})
	return sales, nil
}

func (r *reader) assemble(c ctx.Ctx, ev domain.OrderExecutedEvent) (*domain.Sale, error) {
	var (
		order  *domain.Order
		tx     *types.Transaction
		header *types.Header
	)
	g, gctx := errgroup.WithContext(c)
	gc := ctx.Ctx{Context: gctx, Logger: c.Logger}
	g.Go(func() (err error) {
		order, err = r.registry.GetSignedOrder(gc, ev.Index)
		return err
	})
	g.Go(func() (err error) {
		tx, err = r.chain.TransactionByHash(gc, common.HexToHash(string(ev.TxHash)))
		return err
	})
	g.Go(func() (err error) {
		header, err = r.chain.HeaderByNumber(gc, new(big.Int).SetUint64(ev.BlockNumber))
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, xerrors.Errorf("sale %d in %s: %w: %v", ev.Index, ev.TxHash, domain.ErrSaleAssemblyFailed, err)
	}

	buyer, err := r.buyerOf(tx)
	if err != nil {
		return nil, xerrors.Errorf("sale %d buyer: %w: %v", ev.Index, domain.ErrSaleAssemblyFailed, err)
	}

	return &domain.Sale{
		Index:          ev.Index,
		Collection:     order.Collection.ToLower(),
		CollectionName: r.nameUC.Resolve(c, order.Collection),
		TokenId:        order.TokenId.String(),
		Price:          pricefomatter.FormatEther(order.PriceWei),
		PriceRaw:       order.PriceWei.String(),
		Seller:         order.Seller.ToLower(),
		Buyer:          buyer,
		Timestamp:      int64(header.Time),
		TxHash:         ev.TxHash,
	}, nil
}

// buyerOf reads the buyer argument of fulfillListing and falls back to the
// signer when the input is some other call, e.g. through a router.
func (r *reader) buyerOf(tx *types.Transaction) (domain.Address, error) {
	if buyer, _, err := r.registry.ParseFulfillListing(tx.Data()); err == nil {
		return buyer.ToLower(), nil
	}
	sender, err := r.chain.TransactionSender(tx)
	if err != nil {
		return "", err
	}
	return domain.Address(sender.Hex()).ToLower(), nil
}
