package contract

import (
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum"
	ethabi "github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"golang.org/x/xerrors"

	baseabi "github.com/x-xyz/storefront/base/abi"
	bCtx "github.com/x-xyz/storefront/base/ctx"
	"github.com/x-xyz/storefront/base/log"
	"github.com/x-xyz/storefront/domain"
	"github.com/x-xyz/storefront/service/chain"
)

// Registry reads the signed order registry.
type Registry struct {
	chainService chain.Client
	abi          ethabi.ABI
	address      common.Address
}

func NewRegistry(chainService chain.Client, address domain.Address) domain.OrderRegistryRepo {
	return &Registry{
		chainService: chainService,
		abi:          baseabi.OrderRegistryABI,
		address:      common.HexToAddress(string(address)),
	}
}

func (r *Registry) Address() domain.Address {
	return toAddress(r.address)
}

func (r *Registry) TotalOrders(ctx bCtx.Ctx) (uint64, error) {
	unpacked, err := r.chainService.Call(ctx, r.address, nil, r.abi, "totalOrders")
	if err != nil {
		return 0, xerrors.Errorf("totalOrders: %w: %v", domain.ErrChainUnavailable, err)
	}
	total, ok := unpacked[0].(*big.Int)
	if !ok || !total.IsUint64() {
		return 0, xerrors.Errorf("totalOrders: %w", domain.ErrUnexpectedContractResults)
	}
	return total.Uint64(), nil
}

func (r *Registry) GetSignedOrder(ctx bCtx.Ctx, idx uint64) (*domain.Order, error) {
	unpacked, err := r.chainService.Call(ctx, r.address, nil, r.abi, "getSignedOrder", new(big.Int).SetUint64(idx))
	if err != nil {
		return nil, xerrors.Errorf("getSignedOrder(%d): %w: %v", idx, domain.ErrOrderReadFailed, err)
	}
	if len(unpacked) != 2 {
		return nil, xerrors.Errorf("getSignedOrder(%d): %w", idx, domain.ErrUnexpectedContractResults)
	}
	signed, err := toSignedOrder(unpacked[0])
	if err != nil {
		return nil, xerrors.Errorf("getSignedOrder(%d): %w: %v", idx, domain.ErrOrderReadFailed, err)
	}
	executed, ok := unpacked[1].(bool)
	if !ok {
		return nil, xerrors.Errorf("getSignedOrder(%d): %w", idx, domain.ErrUnexpectedContractResults)
	}

	sd := signed.SaleDetails
	expiration := uint64(0)
	if sd.Expiration != nil {
		if !sd.Expiration.IsUint64() {
			// far future, treat as never expiring
			expiration = 0
		} else {
			expiration = sd.Expiration.Uint64()
		}
	}
	return &domain.Order{
		Index:         idx,
		Collection:    toAddress(sd.TokenAddress),
		TokenId:       sd.TokenId,
		Seller:        toAddress(sd.Maker),
		Beneficiary:   toAddress(sd.Beneficiary),
		Marketplace:   toAddress(sd.Marketplace),
		PaymentMethod: toAddress(sd.PaymentMethod),
		PriceWei:      sd.ItemPrice,
		Amount:        sd.Amount,
		Nonce:         sd.Nonce,
		Expiration:    expiration,
		IsExecuted:    executed,
	}, nil
}

func toSignedOrder(v interface{}) (signed *baseabi.RegistrySignedOrder, err error) {
	defer func() {
		if p := recover(); p != nil {
			err = fmt.Errorf("convert signed order: %v", p)
		}
	}()
	return ethabi.ConvertType(v, new(baseabi.RegistrySignedOrder)).(*baseabi.RegistrySignedOrder), nil
}

func (r *Registry) FilterOrderExecuted(ctx bCtx.Ctx, fromBlock, toBlock uint64) ([]domain.OrderExecutedEvent, error) {
	logs, err := r.chainService.FilterLogs(ctx, ethereum.FilterQuery{
		FromBlock: new(big.Int).SetUint64(fromBlock),
		ToBlock:   new(big.Int).SetUint64(toBlock),
		Addresses: []common.Address{r.address},
		Topics:    [][]common.Hash{{baseabi.OrderExecutedTopic}},
	})
	if err != nil {
		return nil, xerrors.Errorf("filter OrderExecuted: %w: %v", domain.ErrChainUnavailable, err)
	}

	events := make([]domain.OrderExecutedEvent, 0, len(logs))
	for i := range logs {
		if logs[i].Removed {
			continue
		}
		parsed, err := baseabi.ToOrderExecutedLog(&logs[i])
		if err != nil {
			ctx.WithFields(log.Fields{
				"err":    err,
				"txHash": logs[i].TxHash.Hex(),
			}).Warn("baseabi.ToOrderExecutedLog failed")
			continue
		}
		if !parsed.Idx.IsUint64() {
			continue
		}
		events = append(events, domain.OrderExecutedEvent{
			Index:       parsed.Idx.Uint64(),
			BlockNumber: parsed.BlockNumber,
			TxHash:      domain.TxHash(parsed.TxHash.Hex()),
			LogIndex:    parsed.LogIndex,
		})
	}
	return events, nil
}

func (r *Registry) PackFulfillListing(buyer domain.Address, orderIds []uint64) ([]byte, error) {
	ids := make([]*big.Int, len(orderIds))
	for i, id := range orderIds {
		ids[i] = new(big.Int).SetUint64(id)
	}
	return r.abi.Pack("fulfillListing", common.HexToAddress(string(buyer)), ids)
}

func (r *Registry) ParseFulfillListing(data []byte) (domain.Address, []uint64, error) {
	if len(data) < 4 {
		return "", nil, domain.ErrUnexpectedContractResults
	}
	method, err := r.abi.MethodById(data[:4])
	if err != nil {
		return "", nil, err
	}
	if method.Name != "fulfillListing" {
		return "", nil, xerrors.Errorf("unexpected method %s: %w", method.Name, domain.ErrUnexpectedContractResults)
	}
	args, err := method.Inputs.Unpack(data[4:])
	if err != nil {
		return "", nil, err
	}
	buyer, ok := args[0].(common.Address)
	if !ok {
		return "", nil, domain.ErrUnexpectedContractResults
	}
	raw, ok := args[1].([]*big.Int)
	if !ok {
		return "", nil, domain.ErrUnexpectedContractResults
	}
	ids := make([]uint64, 0, len(raw))
	for _, id := range raw {
		ids = append(ids, id.Uint64())
	}
	return toAddress(buyer), ids, nil
}

func toAddress(a common.Address) domain.Address {
	return domain.Address(a.Hex()).ToLower()
}
