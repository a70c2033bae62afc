package usecase

import (
	"time"

	"github.com/x-xyz/storefront/base/ctx"
	"github.com/x-xyz/storefront/base/snapshot"
	"github.com/x-xyz/storefront/domain"
)

var timeNow = time.Now

type SaleUseCaseCfg struct {
	Reader domain.SaleReader
	Ttl    time.Duration
	// RefreshTimeout bounds one rebuild, zero leaves it unbounded
	RefreshTimeout time.Duration
}

type impl struct {
	reader domain.SaleReader
	slot   *snapshot.Slot[*domain.SalesSnapshot]
}

func NewSaleUseCase(cfg *SaleUseCaseCfg) domain.SaleUseCase {
	return &impl{
		reader: cfg.Reader,
		slot: snapshot.New(cfg.Ttl,
			snapshot.WithClock[*domain.SalesSnapshot](func() time.Time {
				return timeNow()
			}),
			snapshot.WithRefreshTimeout[*domain.SalesSnapshot](cfg.RefreshTimeout),
		),
	}
}

func (im *impl) GetRecentSales(c ctx.Ctx) (*domain.SalesSnapshot, error) {
	snap, err := im.slot.Get(c, im.refresh)
	if err != nil {
		c.WithField("err", err).Error("slot.Get failed")
		return nil, err
	}
	return snap, nil
}

func (im *impl) Refresh(c ctx.Ctx) (*domain.SalesSnapshot, error) {
	snap, err := im.slot.Refresh(c, im.refresh)
	if err != nil {
		c.WithField("err", err).Error("slot.Refresh failed")
		return nil, err
	}
	return snap, nil
}

func (im *impl) refresh(c ctx.Ctx) (*domain.SalesSnapshot, error) {
	sales, err := im.reader.FetchRecentSales(c)
	if err != nil {
		c.WithField("err", err).Error("reader.FetchRecentSales failed")
		return nil, err
	}
	return &domain.SalesSnapshot{
		Sales:     sales,
		FetchedAt: timeNow().UnixMilli(),
	}, nil
}
