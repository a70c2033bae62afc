package usecase

import (
	"sort"

	"github.com/samber/lo"

	pricefomatter "github.com/x-xyz/storefront/base/price_fomatter"
	"github.com/x-xyz/storefront/domain"
)

// Summarize groups listings by collection. The result is ordered by listing
// count, descending, and collections with equal counts keep the order in which
// they first appear in listings.
func Summarize(listings []domain.Listing) []domain.CollectionSummary {
	groups := lo.GroupBy(listings, func(l domain.Listing) domain.Address {
		return l.Collection
	})
	order := lo.Uniq(lo.Map(listings, func(l domain.Listing, _ int) domain.Address {
		return l.Collection
	}))

	summaries := make([]domain.CollectionSummary, 0, len(order))
	for _, addr := range order {
		group := groups[addr]
		floor := lo.MinBy(group, func(a, b domain.Listing) bool {
			return a.PriceWei.Cmp(b.PriceWei) < 0
		})
		summaries = append(summaries, domain.CollectionSummary{
			Address:  addr,
			Name:     group[0].CollectionName,
			Listings: len(group),
			Floor:    pricefomatter.FormatEther(floor.PriceWei),
			FloorRaw: floor.PriceWei.String(),
			FloorWei: floor.PriceWei,
		})
	}

	sort.SliceStable(summaries, func(i, j int) bool {
		return summaries[i].Listings > summaries[j].Listings
	})
	return summaries
}
