package usecase

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"golang.org/x/xerrors"

	"github.com/x-xyz/storefront/base/ctx"
	"github.com/x-xyz/storefront/base/metrics"
	"github.com/x-xyz/storefront/domain"
	"github.com/x-xyz/storefront/domain/mocks"
)

var (
	mockCtx = ctx.Background()
	now     = time.Unix(1700000000, 0)
	oneApe  = big.NewInt(1000000000000000000)
)

func collectionOf(idx uint64) domain.Address {
	return domain.Address(fmt.Sprintf("0x%040x", idx%3+1))
}

func activeOrder(idx uint64) *domain.Order {
	return &domain.Order{
		Index:         idx,
		Collection:    collectionOf(idx),
		TokenId:       new(big.Int).SetUint64(idx),
		Seller:        "0x00000000000000000000000000000000000000bb",
		PaymentMethod: domain.EmptyAddress,
		PriceWei:      new(big.Int).Mul(oneApe, new(big.Int).SetUint64(idx%5+1)),
	}
}

type aggregatorSuite struct {
	suite.Suite
	registry *mocks.OrderRegistryRepo
	names    *mocks.CollectionNameUseCase
	im       domain.ListingAggregator
}

func TestAggregator(t *testing.T) {
	suite.Run(t, new(aggregatorSuite))
}

func (s *aggregatorSuite) SetupTest() {
	timeNow = func() time.Time { return now }
	s.registry = &mocks.OrderRegistryRepo{}
	s.names = &mocks.CollectionNameUseCase{}
	s.names.On("Resolve", mock.Anything, mock.Anything).Return(func(_ ctx.Ctx, addr domain.Address) string {
		return "name-" + addr.Truncate()
	}).Maybe()
	s.im = NewAggregator(&AggregatorCfg{
		Registry:  s.registry,
		NameUC:    s.names,
		Window:    800,
		BatchSize: 20,
		Metrics:   metrics.Nop{},
	})
}

func (s *aggregatorSuite) TearDownTest() {
	timeNow = time.Now
	s.registry.AssertExpectations(s.T())
}

func (s *aggregatorSuite) TestScansWindow() {
	var (
		mu   sync.Mutex
		read []uint64
	)
	s.registry.On("TotalOrders", mock.Anything).Return(uint64(1000), nil).Once()
	s.registry.On("GetSignedOrder", mock.Anything, mock.Anything).Return(
		func(_ ctx.Ctx, idx uint64) *domain.Order {
			mu.Lock()
			read = append(read, idx)
			mu.Unlock()
			return activeOrder(idx)
		},
		func(ctx.Ctx, uint64) error { return nil },
	)

	agg, err := s.im.Aggregate(mockCtx)
	s.Require().NoError(err)

	sort.Slice(read, func(i, j int) bool { return read[i] < read[j] })
	s.Len(read, 800)
	s.Equal(uint64(200), read[0])
	s.Equal(uint64(999), read[len(read)-1])

	s.Len(agg.Listings, 800)
	for i, l := range agg.Listings {
		s.Equal(uint64(200+i), l.Index)
	}
	s.Len(agg.Collections, 3)
	s.Equal(0, agg.Skipped)
}

func (s *aggregatorSuite) TestSmallRegistryStartsAtZero() {
	s.registry.On("TotalOrders", mock.Anything).Return(uint64(3), nil).Once()
	s.registry.On("GetSignedOrder", mock.Anything, mock.Anything).Return(
		func(_ ctx.Ctx, idx uint64) *domain.Order { return activeOrder(idx) },
		func(ctx.Ctx, uint64) error { return nil },
	).Times(3)

	agg, err := s.im.Aggregate(mockCtx)
	s.Require().NoError(err)
	s.Len(agg.Listings, 3)
	s.Equal(uint64(0), agg.Listings[0].Index)
}

func (s *aggregatorSuite) TestSkipsFailedReads() {
	s.registry.On("TotalOrders", mock.Anything).Return(uint64(50), nil).Once()
	s.registry.On("GetSignedOrder", mock.Anything, uint64(42)).Return(nil, domain.ErrOrderReadFailed).Once()
	s.registry.On("GetSignedOrder", mock.Anything, mock.MatchedBy(func(idx uint64) bool { return idx != 42 })).Return(
		func(_ ctx.Ctx, idx uint64) *domain.Order { return activeOrder(idx) },
		func(ctx.Ctx, uint64) error { return nil },
	)

	agg, err := s.im.Aggregate(mockCtx)
	s.Require().NoError(err)
	s.Len(agg.Listings, 49)
	s.Equal(1, agg.Skipped)
	for _, l := range agg.Listings {
		s.NotEqual(uint64(42), l.Index)
	}
}

func (s *aggregatorSuite) TestClassifiesOrders() {
	orders := map[uint64]*domain.Order{
		0: activeOrder(0),
		1: activeOrder(1),
		2: activeOrder(2),
		3: activeOrder(3),
		4: activeOrder(4),
	}
	orders[0].PriceWei = oneApe
	orders[0].Collection = collectionOf(0)
	orders[1].IsExecuted = true
	orders[2].Expiration = uint64(now.Unix()) - 1
	orders[3].Expiration = 0
	orders[4].Expiration = uint64(now.Unix()) + 100
	for _, o := range orders {
		o.Collection = collectionOf(0)
	}

	s.registry.On("TotalOrders", mock.Anything).Return(uint64(5), nil).Once()
	s.registry.On("GetSignedOrder", mock.Anything, mock.Anything).Return(
		func(_ ctx.Ctx, idx uint64) *domain.Order { return orders[idx] },
		func(ctx.Ctx, uint64) error { return nil },
	).Times(5)

	agg, err := s.im.Aggregate(mockCtx)
	s.Require().NoError(err)
	s.Equal([]uint64{1}, agg.ExecutedIndices)
	s.Require().Len(agg.Listings, 3)
	s.Equal(uint64(0), agg.Listings[0].Index)
	s.Equal(uint64(3), agg.Listings[1].Index)
	s.Equal(uint64(4), agg.Listings[2].Index)
	s.Equal("1.0", agg.Listings[0].Price)
	s.Equal("1000000000000000000", agg.Listings[0].PriceRaw)
	s.Equal("name-"+collectionOf(0).Truncate(), agg.Listings[0].CollectionName)

	s.Require().Len(agg.Collections, 1)
	s.Equal(3, agg.Collections[0].Listings)
	s.Equal("1.0", agg.Collections[0].Floor)
}

func (s *aggregatorSuite) TestTotalOrdersUnavailable() {
	s.registry.On("TotalOrders", mock.Anything).Return(uint64(0), xerrors.Errorf("totalOrders: %w", domain.ErrChainUnavailable)).Once()

	_, err := s.im.Aggregate(mockCtx)
	s.True(errors.Is(err, domain.ErrChainUnavailable))
}

func (s *aggregatorSuite) TestCancelledScanReturnsError() {
	c, cancel := ctx.WithCancel(mockCtx)
	defer cancel()

	s.registry.On("TotalOrders", mock.Anything).Return(uint64(40), nil).Once()
	// the first batch succeeds, the caller goes away while the second is read
	s.registry.On("GetSignedOrder", mock.Anything, mock.MatchedBy(func(idx uint64) bool { return idx < 20 })).Return(
		func(_ ctx.Ctx, idx uint64) *domain.Order { return activeOrder(idx) },
		func(ctx.Ctx, uint64) error { return nil },
	)
	s.registry.On("GetSignedOrder", mock.Anything, mock.MatchedBy(func(idx uint64) bool { return idx >= 20 })).Return(
		func(ctx.Ctx, uint64) *domain.Order { return nil },
		func(rc ctx.Ctx, _ uint64) error {
			cancel()
			return rc.Err()
		},
	)

	agg, err := s.im.Aggregate(c)
	s.Nil(agg)
	s.True(errors.Is(err, context.Canceled))
}
