package usecase

import (
	"github.com/x-xyz/storefront/base/ctx"
	"github.com/x-xyz/storefront/domain"
)

type StatsUseCaseCfg struct {
	ListingUC domain.ListingUseCase
}

type statsImpl struct {
	listingUC domain.ListingUseCase
}

func NewStatsUseCase(cfg *StatsUseCaseCfg) domain.StatsUseCase {
	return &statsImpl{
		listingUC: cfg.ListingUC,
	}
}

// GetStats is derived from the listings snapshot alone. TotalSales counts the
// executed orders in the scanned window, not the recent sales feed which is
// capped.
func (im *statsImpl) GetStats(c ctx.Ctx) (*domain.Stats, error) {
	listings, err := im.listingUC.GetListings(c)
	if err != nil {
		c.WithField("err", err).Error("listingUC.GetListings failed")
		return nil, err
	}

	return &domain.Stats{
		TotalListings:    len(listings.Listings),
		TotalCollections: len(listings.Collections),
		TotalSales:       listings.TotalExecuted,
	}, nil
}
