package domain

import "github.com/x-xyz/storefront/base/ctx"

type Sale struct {
	Index          uint64  `json:"idx"`
	Collection     Address `json:"collection"`
	CollectionName string  `json:"collectionName"`
	TokenId        string  `json:"tokenId"`
	Price          string  `json:"price"`
	PriceRaw       string  `json:"priceRaw"`
	Seller         Address `json:"seller"`
	Buyer          Address `json:"buyer"`
	Timestamp      int64   `json:"timestamp"`
	TxHash         TxHash  `json:"txHash"`
}

type SalesSnapshot struct {
	Sales     []Sale `json:"sales"`
	FetchedAt int64  `json:"fetchedAt"`
}

type SaleReader interface {
	FetchRecentSales(ctx.Ctx) ([]Sale, error)
}

type SaleUseCase interface {
	GetRecentSales(ctx.Ctx) (*SalesSnapshot, error)
	// Refresh rebuilds the snapshot even if the held one is still fresh.
	Refresh(ctx.Ctx) (*SalesSnapshot, error)
}
