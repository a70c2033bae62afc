package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/x-xyz/storefront/base/ctx"
	"github.com/x-xyz/storefront/domain"
	"github.com/x-xyz/storefront/domain/mocks"
)

func TestGetRecentSales(t *testing.T) {
	req := require.New(t)

	now := time.Unix(1700000000, 0)
	timeNow = func() time.Time { return now }
	defer func() { timeNow = time.Now }()

	reader := &mocks.SaleReader{}
	reader.On("FetchRecentSales", mock.Anything).Return([]domain.Sale{{Index: 3}}, nil).Once()
	im := NewSaleUseCase(&SaleUseCaseCfg{Reader: reader, Ttl: 2 * time.Minute})

	snap, err := im.GetRecentSales(mockCtx)
	req.NoError(err)
	req.Len(snap.Sales, 1)
	req.Equal(now.UnixMilli(), snap.FetchedAt)

	now = now.Add(2*time.Minute - time.Millisecond)
	again, err := im.GetRecentSales(mockCtx)
	req.NoError(err)
	req.Same(snap, again)

	now = now.Add(2 * time.Millisecond)
	boom := errors.New("rpc down")
	reader.On("FetchRecentSales", mock.Anything).Return(nil, boom).Once()
	_, err = im.GetRecentSales(mockCtx)
	req.Equal(boom, err)

	reader.AssertExpectations(t)
}

func TestRefreshRecentSales(t *testing.T) {
	req := require.New(t)

	now := time.Unix(1700000000, 0)
	timeNow = func() time.Time { return now }
	defer func() { timeNow = time.Now }()

	reader := &mocks.SaleReader{}
	reader.On("FetchRecentSales", mock.Anything).Return([]domain.Sale{{Index: 3}}, nil).Once()
	reader.On("FetchRecentSales", mock.Anything).Return([]domain.Sale{{Index: 4}, {Index: 3}}, nil).Once()
	im := NewSaleUseCase(&SaleUseCaseCfg{Reader: reader, Ttl: 2 * time.Minute})

	_, err := im.GetRecentSales(mockCtx)
	req.NoError(err)

	// still fresh, Refresh reads again anyway
	refreshed, err := im.Refresh(mockCtx)
	req.NoError(err)
	req.Len(refreshed.Sales, 2)

	got, err := im.GetRecentSales(mockCtx)
	req.NoError(err)
	req.Same(refreshed, got)

	reader.AssertExpectations(t)
}

func TestCancelledCallerDoesNotEmptySales(t *testing.T) {
	req := require.New(t)

	reader := &mocks.SaleReader{}
	release := make(chan struct{})
	c, cancel := ctx.WithCancel(mockCtx)
	reader.On("FetchRecentSales", mock.Anything).Return(
		func(rc ctx.Ctx) []domain.Sale {
			cancel()
			<-release
			if rc.Err() != nil {
				return nil
			}
			return []domain.Sale{{Index: 9}}
		},
		func(rc ctx.Ctx) error { return rc.Err() },
	).Once()
	im := NewSaleUseCase(&SaleUseCaseCfg{Reader: reader, Ttl: 2 * time.Minute})

	_, err := im.GetRecentSales(c)
	req.ErrorIs(err, context.Canceled)

	close(release)
	snap, err := im.GetRecentSales(mockCtx)
	req.NoError(err)
	req.Len(snap.Sales, 1)

	reader.AssertExpectations(t)
}
