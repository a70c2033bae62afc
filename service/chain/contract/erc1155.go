package contract

import (
	"math/big"

	ethabi "github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"

	baseabi "github.com/x-xyz/storefront/base/abi"
	bCtx "github.com/x-xyz/storefront/base/ctx"
	"github.com/x-xyz/storefront/domain"
	"github.com/x-xyz/storefront/service/chain"
)

type Erc1155 struct {
	chainService       chain.Client
	abi                ethabi.ABI
	erc1155InterfaceId [4]byte
}

func NewErc1155(chainService chain.Client) *Erc1155 {
	var interfaceId [4]byte
	copy(interfaceId[:], common.Hex2Bytes("d9b67a26"))
	return &Erc1155{
		abi:                baseabi.ERC1155TokenABI,
		chainService:       chainService,
		erc1155InterfaceId: interfaceId,
	}
}

func (e *Erc1155) Supports1155Interface(ctx bCtx.Ctx, addr domain.Address) (bool, error) {
	unpacked, err := e.chainService.Call(ctx, common.HexToAddress(string(addr)), nil, e.abi, "supportsInterface", e.erc1155InterfaceId)
	if err != nil {
		return false, err
	}
	return unpacked[0].(bool), nil
}

// Uri returns the raw uri template, which may still contain {id}.
func (e *Erc1155) Uri(ctx bCtx.Ctx, addr domain.Address, id *big.Int) (string, error) {
	unpacked, err := e.chainService.Call(ctx, common.HexToAddress(string(addr)), nil, e.abi, "uri", id)
	if err != nil {
		return "", err
	}
	s, ok := unpacked[0].(string)
	if !ok {
		return "", domain.ErrUnexpectedContractResults
	}
	return s, nil
}
