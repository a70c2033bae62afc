package usecase

import (
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/samber/lo"
	"golang.org/x/xerrors"

	"github.com/x-xyz/storefront/base/ctx"
	"github.com/x-xyz/storefront/base/log"
	"github.com/x-xyz/storefront/domain"
)

// BuildPurchase prepares the unsigned fulfillListing call for one listing of
// the current snapshot. Native listings carry their price as value, erc20
// listings are paid through allowance and carry none.
func (im *impl) BuildPurchase(c ctx.Ctx, idx uint64, buyer domain.Address) (*domain.PurchaseTx, error) {
	if !buyer.IsValid() {
		return nil, xerrors.Errorf("buyer %q: %w", buyer, domain.ErrInvalidAddress)
	}

	snap, err := im.GetListings(c)
	if err != nil {
		return nil, err
	}
	listing, ok := lo.Find(snap.Listings, func(l domain.Listing) bool {
		return l.Index == idx
	})
	if !ok {
		return nil, domain.ErrNotFound
	}

	buyer = buyer.ToLower()
	orderIds := []uint64{idx}
	data, err := im.registry.PackFulfillListing(buyer, orderIds)
	if err != nil {
		c.WithFields(log.Fields{
			"err":   err,
			"idx":   idx,
			"buyer": buyer,
		}).Error("registry.PackFulfillListing failed")
		return nil, err
	}

	value := "0"
	if listing.IsNativePayment() {
		value = listing.PriceRaw
	}
	return &domain.PurchaseTx{
		To:      im.registry.Address(),
		Data:    hexutil.Encode(data),
		Value:   value,
		ChainId: im.chainId,
		Buyer:   buyer,
		Orders:  orderIds,
	}, nil
}
