package domain

import (
	"math/big"
	"time"

	"github.com/x-xyz/storefront/base/ctx"
)

// Order is one signed sale order read from the registry. Index is assigned
// sequentially by the registry and is never reused.
type Order struct {
	Index         uint64
	Collection    Address
	TokenId       *big.Int
	Seller        Address
	Beneficiary   Address
	Marketplace   Address
	PaymentMethod Address
	PriceWei      *big.Int
	Amount        *big.Int
	Nonce         *big.Int
	// Expiration is a unix timestamp, 0 means the order never expires
	Expiration uint64
	IsExecuted bool
}

func (o *Order) IsExpired(now time.Time) bool {
	return o.Expiration != 0 && o.Expiration < uint64(now.Unix())
}

func (o *Order) IsActive(now time.Time) bool {
	return !o.IsExecuted && !o.IsExpired(now)
}

// IsNativePayment reports whether the order is paid in APE rather than an erc20.
func (o *Order) IsNativePayment() bool {
	return o.PaymentMethod.IsEmpty() || o.PaymentMethod.Equals(EmptyAddress)
}

type OrderExecutedEvent struct {
	Index       uint64
	BlockNumber uint64
	TxHash      TxHash
	LogIndex    uint
}

type OrderRegistryRepo interface {
	Address() Address
	TotalOrders(ctx.Ctx) (uint64, error)
	GetSignedOrder(ctx.Ctx, uint64) (*Order, error)
	FilterOrderExecuted(c ctx.Ctx, fromBlock, toBlock uint64) ([]OrderExecutedEvent, error)
	PackFulfillListing(buyer Address, orderIds []uint64) ([]byte, error)
	ParseFulfillListing(data []byte) (Address, []uint64, error)
}

// NftContractRepo reads the collection level views of erc721 and erc1155 contracts.
type NftContractRepo interface {
	Name(ctx.Ctx, Address) (string, error)
	TokenURI(ctx.Ctx, Address, *big.Int) (string, error)
	Uri(ctx.Ctx, Address, *big.Int) (string, error)
}
