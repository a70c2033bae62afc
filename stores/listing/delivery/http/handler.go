package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/x-xyz/storefront/base/ctx"
	"github.com/x-xyz/storefront/base/delivery"
	"github.com/x-xyz/storefront/base/log"
	"github.com/x-xyz/storefront/domain"
	"github.com/x-xyz/storefront/middleware"
)

type handler struct {
	listing domain.ListingUseCase
	stats   domain.StatsUseCase
}

type searchParams struct {
	Query string `query:"q" validate:"max=100"`
}

type purchaseParams struct {
	Idx   uint64 `param:"idx"`
	Buyer string `query:"buyer" validate:"required,address"`
}

func New(e *echo.Echo, listing domain.ListingUseCase, stats domain.StatsUseCase) {
	h := &handler{listing, stats}

	e.GET("/listings", h.getListings)
	e.GET("/listings/:idx/purchase", h.getPurchase)
	e.GET("/collections", h.searchCollections)
	e.GET("/collections/:address/listings", h.getCollectionListings, middleware.IsValidAddress("address"))
	e.GET("/stats", h.getStats)
}

// getListings
//
//	@Description	Get every active listing and the per-collection summaries
//	@Tags			listings
//	@Produce		json
//	@Success		200	{object}	domain.ListingsSnapshot
//	@Failure		500
//	@Router			/listings [get]
func (h *handler) getListings(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	snapshot, err := h.listing.GetListings(ctx)
	if err != nil {
		ctx.WithField("err", err).Error("listing.GetListings failed")
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, snapshot)
}

// searchCollections
//
//	@Description	Get the collection summaries whose name or address contains q, ignoring case
//	@Tags			listings
//	@Produce		json
//	@Param			q	query	string	false	"name or address fragment, empty returns every collection"
//	@Success		200	{array}	domain.CollectionSummary
//	@Failure		400
//	@Failure		500
//	@Router			/collections [get]
func (h *handler) searchCollections(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	p := &searchParams{}
	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid params")
	}
	if err := c.Validate(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid q")
	}

	res, err := h.listing.SearchCollections(ctx, p.Query)
	if err != nil {
		ctx.WithFields(log.Fields{
			"err": err,
			"q":   p.Query,
		}).Error("listing.SearchCollections failed")
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, res)
}

// getCollectionListings
//
//	@Description	Get one collection's summary and its listings, cheapest first
//	@Tags			listings
//	@Produce		json
//	@Param			address	path		string	true	"collection address"
//	@Success		200		{object}	domain.CollectionListings
//	@Failure		400
//	@Failure		404
//	@Failure		500
//	@Router			/collections/{address}/listings [get]
func (h *handler) getCollectionListings(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	address := domain.Address(c.Param("address")).ToLower()

	res, err := h.listing.GetCollectionListings(ctx, address)
	if err != nil {
		ctx.WithFields(log.Fields{
			"err":     err,
			"address": address,
		}).Warn("listing.GetCollectionListings failed")
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, res)
}

// getPurchase
//
//	@Description	Build the unsigned fulfillListing transaction for a listing
//	@Tags			listings
//	@Produce		json
//	@Param			idx		path		int		true	"order index"
//	@Param			buyer	query		string	true	"buyer address"
//	@Success		200		{object}	domain.PurchaseTx
//	@Failure		400
//	@Failure		404
//	@Failure		500
//	@Router			/listings/{idx}/purchase [get]
func (h *handler) getPurchase(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	p := &purchaseParams{}
	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid params")
	}
	if err := c.Validate(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid buyer")
	}

	tx, err := h.listing.BuildPurchase(ctx, p.Idx, domain.Address(p.Buyer))
	if err != nil {
		ctx.WithFields(log.Fields{
			"err":   err,
			"idx":   p.Idx,
			"buyer": p.Buyer,
		}).Warn("listing.BuildPurchase failed")
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, tx)
}

// getStats
//
//	@Description	Get listing, collection and sale counts for the stats bar
//	@Tags			listings
//	@Produce		json
//	@Success		200	{object}	domain.Stats
//	@Failure		500
//	@Router			/stats [get]
func (h *handler) getStats(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	stats, err := h.stats.GetStats(ctx)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, stats)
}
