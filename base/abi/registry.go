package abi

import (
	"errors"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
)

var OrderRegistryABI abi.ABI

// OrderExecutedTopic is topic[0] of OrderExecuted(uint256 indexed idx)
var OrderExecutedTopic common.Hash

const saleDetailsComponents = `[
{"name":"protocol","type":"uint256"},
{"name":"maker","type":"address"},
{"name":"beneficiary","type":"address"},
{"name":"marketplace","type":"address"},
{"name":"fallbackRoyaltyRecipient","type":"address"},
{"name":"paymentMethod","type":"address"},
{"name":"tokenAddress","type":"address"},
{"name":"tokenId","type":"uint256"},
{"name":"amount","type":"uint256"},
{"name":"itemPrice","type":"uint256"},
{"name":"nonce","type":"uint256"},
{"name":"expiration","type":"uint256"},
{"name":"marketplaceFeeNumerator","type":"uint256"},
{"name":"maxRoyaltyFeeNumerator","type":"uint256"},
{"name":"requestedFillAmount","type":"uint256"},
{"name":"minimumFillAmount","type":"uint256"},
{"name":"protocolFeeVersion","type":"uint256"}
]`

const orderRegistryABI = `[
{"type":"function","name":"totalOrders","stateMutability":"view","inputs":[],"outputs":[{"name":"","type":"uint256"}]},
{"type":"function","name":"getSignedOrder","stateMutability":"view",
 "inputs":[{"name":"idx","type":"uint256"}],
 "outputs":[
  {"name":"signedOrder","type":"tuple","components":[
   {"name":"saleDetails","type":"tuple","components":` + saleDetailsComponents + `},
   {"name":"sellerSignature","type":"tuple","components":[
    {"name":"v","type":"uint256"},{"name":"r","type":"bytes32"},{"name":"s","type":"bytes32"}]},
   {"name":"cosignature","type":"tuple","components":[
    {"name":"signer","type":"address"},{"name":"taker","type":"address"},
    {"name":"expiration","type":"uint256"},{"name":"v","type":"uint256"},
    {"name":"r","type":"bytes32"},{"name":"s","type":"bytes32"}]},
   {"name":"feeOnTop","type":"tuple","components":[
    {"name":"recipient","type":"address"},{"name":"amount","type":"uint256"}]}
  ]},
  {"name":"isExecuted","type":"bool"}
 ]},
{"type":"function","name":"fulfillListing","stateMutability":"payable",
 "inputs":[{"name":"buyer","type":"address"},{"name":"orderIds","type":"uint256[]"}],"outputs":[]},
{"type":"event","name":"OrderExecuted","anonymous":false,
 "inputs":[{"name":"idx","type":"uint256","indexed":true}]}
]`

func init() {
	_abi, err := abi.JSON(strings.NewReader(orderRegistryABI))
	if err != nil {
		panic("Failed to parse order registry abi")
	}
	OrderRegistryABI = _abi
	OrderExecutedTopic = _abi.Events["OrderExecuted"].ID
}

type RegistrySaleDetails struct {
	Protocol                 *big.Int
	Maker                    common.Address
	Beneficiary              common.Address
	Marketplace              common.Address
	FallbackRoyaltyRecipient common.Address
	PaymentMethod            common.Address
	TokenAddress             common.Address
	TokenId                  *big.Int
	Amount                   *big.Int
	ItemPrice                *big.Int
	Nonce                    *big.Int
	Expiration               *big.Int
	MarketplaceFeeNumerator  *big.Int
	MaxRoyaltyFeeNumerator   *big.Int
	RequestedFillAmount      *big.Int
	MinimumFillAmount        *big.Int
	ProtocolFeeVersion       *big.Int
}

type RegistrySignature struct {
	V *big.Int
	R [32]byte
	S [32]byte
}

type RegistryCosignature struct {
	Signer     common.Address
	Taker      common.Address
	Expiration *big.Int
	V          *big.Int
	R          [32]byte
	S          [32]byte
}

type RegistryFeeOnTop struct {
	Recipient common.Address
	Amount    *big.Int
}

type RegistrySignedOrder struct {
	SaleDetails     RegistrySaleDetails
	SellerSignature RegistrySignature
	Cosignature     RegistryCosignature
	FeeOnTop        RegistryFeeOnTop
}

type OrderExecutedLog struct {
	Idx         *big.Int // indexed
	BlockNumber uint64
	TxHash      common.Hash
	LogIndex    uint
}

var ErrUnexpectedLog = errors.New("unexpected log")

func ToOrderExecutedLog(log *types.Log) (*OrderExecutedLog, error) {
	if len(log.Topics) < 2 || log.Topics[0] != OrderExecutedTopic {
		return nil, ErrUnexpectedLog
	}
	return &OrderExecutedLog{
		Idx:         new(big.Int).SetBytes(log.Topics[1].Bytes()),
		BlockNumber: log.BlockNumber,
		TxHash:      log.TxHash,
		LogIndex:    log.Index,
	}, nil
}
