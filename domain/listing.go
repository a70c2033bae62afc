package domain

import (
	"math/big"

	"github.com/x-xyz/storefront/base/ctx"
)

// Listing is an order that can currently be bought. Price is for display only,
// PriceRaw is the exact wei amount and must be used for any computation.
type Listing struct {
	Index          uint64   `json:"idx"`
	Collection     Address  `json:"collection"`
	CollectionName string   `json:"collectionName"`
	TokenId        string   `json:"tokenId"`
	Price          string   `json:"price"`
	PriceRaw       string   `json:"priceRaw"`
	Seller         Address  `json:"seller"`
	PaymentMethod  Address  `json:"paymentMethod"`
	Expiration     uint64   `json:"expiration"`
	PriceWei       *big.Int `json:"-"`
}

// IsNativePayment reports whether the listing is paid in APE.
func (l *Listing) IsNativePayment() bool {
	return l.PaymentMethod.IsEmpty() || l.PaymentMethod.Equals(EmptyAddress)
}

type CollectionSummary struct {
	Address  Address  `json:"address"`
	Name     string   `json:"name"`
	Listings int      `json:"listings"`
	Floor    string   `json:"floor"`
	FloorRaw string   `json:"floorRaw"`
	FloorWei *big.Int `json:"-"`
}

// Aggregation is the result of one scan over the registry window.
type Aggregation struct {
	Listings        []Listing
	Collections     []CollectionSummary
	ExecutedIndices []uint64
	Skipped         int
}

// ListingsSnapshot is shared by every request until it expires and is never
// modified after it has been published.
type ListingsSnapshot struct {
	Listings      []Listing           `json:"listings"`
	Collections   []CollectionSummary `json:"collections"`
	TotalExecuted int                 `json:"totalExecuted"`
	FetchedAt     int64               `json:"fetchedAt"`
}

type CollectionListings struct {
	Collection CollectionSummary `json:"collection"`
	Listings   []Listing         `json:"listings"`
}

// PurchaseTx is an unsigned fulfillListing call, ready for a wallet to sign.
type PurchaseTx struct {
	To      Address  `json:"to"`
	Data    string   `json:"data"`
	Value   string   `json:"value"`
	ChainId ChainId  `json:"chainId"`
	Buyer   Address  `json:"buyer"`
	Orders  []uint64 `json:"orderIds"`
}

type Stats struct {
	TotalListings    int `json:"totalListings"`
	TotalCollections int `json:"totalCollections"`
	TotalSales       int `json:"totalSales"`
}

type ListingAggregator interface {
	Aggregate(ctx.Ctx) (*Aggregation, error)
}

type ListingUseCase interface {
	GetListings(ctx.Ctx) (*ListingsSnapshot, error)
	// Refresh rebuilds the snapshot even if the held one is still fresh.
	Refresh(ctx.Ctx) (*ListingsSnapshot, error)
	GetCollectionListings(ctx.Ctx, Address) (*CollectionListings, error)
	// SearchCollections matches q against collection names and addresses,
	// ignoring case. An empty q matches every collection.
	SearchCollections(c ctx.Ctx, q string) ([]CollectionSummary, error)
	BuildPurchase(c ctx.Ctx, idx uint64, buyer Address) (*PurchaseTx, error)
}

type StatsUseCase interface {
	GetStats(ctx.Ctx) (*Stats, error)
}
