package usecase

import (
	"context"
	"crypto/ecdsa"
	"errors"
	"fmt"
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/x-xyz/storefront/base/ctx"
	"github.com/x-xyz/storefront/base/metrics"
	"github.com/x-xyz/storefront/domain"
	"github.com/x-xyz/storefront/domain/mocks"
	"github.com/x-xyz/storefront/service/chain"
)

var (
	mockCtx  = ctx.Background()
	buyer    = domain.Address("0x00000000000000000000000000000000000000cc")
	registry = common.HexToAddress("0x0E22dc442f31b423b4Ca2A563D33690d342d9196")
)

func txHash(idx uint64) domain.TxHash {
	return domain.TxHash(common.BigToHash(new(big.Int).SetUint64(idx + 1000)).Hex())
}

func event(idx, block uint64) domain.OrderExecutedEvent {
	return domain.OrderExecutedEvent{
		Index:       idx,
		BlockNumber: block,
		TxHash:      txHash(idx),
	}
}

func order(idx uint64) *domain.Order {
	return &domain.Order{
		Index:      idx,
		Collection: "0x000000000000000000000000000000000000000A",
		TokenId:    new(big.Int).SetUint64(idx),
		Seller:     "0x00000000000000000000000000000000000000bb",
		PriceWei:   big.NewInt(1500000000000000000),
	}
}

type readerSuite struct {
	suite.Suite
	eth      *mocks.EthClientRepo
	registry *mocks.OrderRegistryRepo
	names    *mocks.CollectionNameUseCase
	key      *ecdsa.PrivateKey
	im       domain.SaleReader
}

func TestSaleReader(t *testing.T) {
	suite.Run(t, new(readerSuite))
}

func (s *readerSuite) SetupTest() {
	key, err := crypto.GenerateKey()
	s.Require().NoError(err)
	s.key = key
	s.eth = &mocks.EthClientRepo{}
	s.registry = &mocks.OrderRegistryRepo{}
	s.names = &mocks.CollectionNameUseCase{}
	s.names.On("Resolve", mock.Anything, mock.Anything).Return("Otherside Koda").Maybe()
	s.im = NewSaleReader(&SaleReaderCfg{
		Chain:       chain.NewClient(33139, s.eth),
		Registry:    s.registry,
		NameUC:      s.names,
		BlockWindow: 50000,
		MaxEvents:   15,
		Metrics:     metrics.Nop{},
	})
}

func (s *readerSuite) TearDownTest() {
	s.eth.AssertExpectations(s.T())
	s.registry.AssertExpectations(s.T())
}

func (s *readerSuite) signedTx(data []byte) *types.Transaction {
	tx, err := types.SignTx(types.NewTx(&types.LegacyTx{
		To:       &registry,
		Gas:      100000,
		GasPrice: big.NewInt(1),
		Value:    big.NewInt(0),
		Data:     data,
	}), types.LatestSignerForChainID(big.NewInt(33139)), s.key)
	s.Require().NoError(err)
	return tx
}

// mockChain answers every tx and header lookup, block timestamps are 1000+block.
func (s *readerSuite) mockChain() {
	tx := s.signedTx([]byte{0x01})
	s.eth.On("TransactionByHash", mock.Anything, mock.Anything).Return(tx, false, nil)
	s.eth.On("HeaderByNumber", mock.Anything, mock.Anything).Return(
		func(_ context.Context, n *big.Int) *types.Header {
			return &types.Header{Number: n, Time: 1000 + n.Uint64()}
		},
		func(context.Context, *big.Int) error { return nil },
	)
	s.registry.On("GetSignedOrder", mock.Anything, mock.Anything).Return(
		func(_ ctx.Ctx, idx uint64) *domain.Order { return order(idx) },
		func(ctx.Ctx, uint64) error { return nil },
	)
}

func (s *readerSuite) TestFetchRecentSales() {
	events := make([]domain.OrderExecutedEvent, 0, 20)
	for i := uint64(0); i < 20; i++ {
		events = append(events, event(i, 60000+i))
	}
	s.eth.On("BlockNumber", mock.Anything).Return(uint64(100000), nil).Once()
	s.registry.On("FilterOrderExecuted", mock.Anything, uint64(50000), uint64(100000)).Return(events, nil).Once()
	s.registry.On("ParseFulfillListing", mock.Anything).Return(buyer, []uint64{1}, nil)
	s.mockChain()

	sales, err := s.im.FetchRecentSales(mockCtx)
	s.Require().NoError(err)
	s.Require().Len(sales, 15)
	s.Equal(uint64(19), sales[0].Index)
	s.Equal(uint64(5), sales[14].Index)

	first := sales[0]
	s.Equal(domain.Address("0x000000000000000000000000000000000000000a"), first.Collection)
	s.Equal("Otherside Koda", first.CollectionName)
	s.Equal("19", first.TokenId)
	s.Equal("1.5", first.Price)
	s.Equal("1500000000000000000", first.PriceRaw)
	s.Equal(buyer, first.Buyer)
	s.Equal(int64(1000+60019), first.Timestamp)
	s.Equal(txHash(19), first.TxHash)
}

func (s *readerSuite) TestBuyerFallsBackToSender() {
	s.eth.On("BlockNumber", mock.Anything).Return(uint64(10), nil).Once()
	s.registry.On("FilterOrderExecuted", mock.Anything, uint64(0), uint64(10)).Return([]domain.OrderExecutedEvent{event(1, 5)}, nil).Once()
	s.registry.On("ParseFulfillListing", mock.Anything).Return(domain.Address(""), nil, errors.New("no method with id")).Once()
	s.mockChain()

	sales, err := s.im.FetchRecentSales(mockCtx)
	s.Require().NoError(err)
	s.Require().Len(sales, 1)
	sender := crypto.PubkeyToAddress(s.key.PublicKey)
	s.Equal(domain.Address(sender.Hex()).ToLower(), sales[0].Buyer)
}

func (s *readerSuite) TestDropsUnassembledSales() {
	s.eth.On("BlockNumber", mock.Anything).Return(uint64(10), nil).Once()
	s.registry.On("FilterOrderExecuted", mock.Anything, uint64(0), uint64(10)).Return([]domain.OrderExecutedEvent{
		event(1, 5),
		event(2, 6),
		event(3, 7),
	}, nil).Once()
	s.registry.On("ParseFulfillListing", mock.Anything).Return(buyer, []uint64{1}, nil)
	s.registry.On("GetSignedOrder", mock.Anything, uint64(2)).Return(nil, domain.ErrOrderReadFailed)
	s.mockChain()

	sales, err := s.im.FetchRecentSales(mockCtx)
	s.Require().NoError(err)
	s.Require().Len(sales, 2)
	s.Equal(uint64(3), sales[0].Index)
	s.Equal(uint64(1), sales[1].Index)
}

func (s *readerSuite) TestEqualTimestampsKeepLaterLogFirst() {
	s.eth.On("BlockNumber", mock.Anything).Return(uint64(10), nil).Once()
	s.registry.On("FilterOrderExecuted", mock.Anything, uint64(0), uint64(10)).Return([]domain.OrderExecutedEvent{
		event(1, 5),
		event(2, 5),
		event(3, 4),
	}, nil).Once()
	s.registry.On("ParseFulfillListing", mock.Anything).Return(buyer, []uint64{1}, nil)
	s.mockChain()

	sales, err := s.im.FetchRecentSales(mockCtx)
	s.Require().NoError(err)
	s.Require().Len(sales, 3)
	s.Equal([]uint64{2, 1, 3}, []uint64{sales[0].Index, sales[1].Index, sales[2].Index})
}

func (s *readerSuite) TestNoEvents() {
	s.eth.On("BlockNumber", mock.Anything).Return(uint64(10), nil).Once()
	s.registry.On("FilterOrderExecuted", mock.Anything, uint64(0), uint64(10)).Return([]domain.OrderExecutedEvent{}, nil).Once()

	sales, err := s.im.FetchRecentSales(mockCtx)
	s.Require().NoError(err)
	s.NotNil(sales)
	s.Empty(sales)
}

func (s *readerSuite) TestBlockNumberUnavailable() {
	s.eth.On("BlockNumber", mock.Anything).Return(uint64(0), fmt.Errorf("dial tcp")).Once()

	_, err := s.im.FetchRecentSales(mockCtx)
	s.ErrorIs(err, domain.ErrChainUnavailable)
}

func (s *readerSuite) TestCancelledFetchReturnsError() {
	c, cancel := ctx.WithCancel(mockCtx)
	defer cancel()

	s.eth.On("BlockNumber", mock.Anything).Return(uint64(10), nil).Once()
	s.registry.On("FilterOrderExecuted", mock.Anything, uint64(0), uint64(10)).Return([]domain.OrderExecutedEvent{
		event(1, 5),
		event(2, 6),
	}, nil).Run(func(mock.Arguments) { cancel() }).Once()
	s.registry.On("GetSignedOrder", mock.Anything, mock.Anything).Return(
		func(ctx.Ctx, uint64) *domain.Order { return nil },
		func(rc ctx.Ctx, _ uint64) error { return rc.Err() },
	).Maybe()
	s.eth.On("TransactionByHash", mock.Anything, mock.Anything).Return(nil, false, context.Canceled).Maybe()
	s.eth.On("HeaderByNumber", mock.Anything, mock.Anything).Return(nil, context.Canceled).Maybe()

	sales, err := s.im.FetchRecentSales(c)
	s.Nil(sales)
	s.ErrorIs(err, context.Canceled)
}
