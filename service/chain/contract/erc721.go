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

type Erc721 struct {
	chainService      chain.Client
	abi               ethabi.ABI
	erc721InterfaceId [4]byte
}

func NewErc721(chainService chain.Client) *Erc721 {
	var interfaceId [4]byte
	copy(interfaceId[:], common.Hex2Bytes("80ac58cd"))
	return &Erc721{
		abi:               baseabi.ERC721TokenABI,
		chainService:      chainService,
		erc721InterfaceId: interfaceId,
	}
}

func (e *Erc721) Supports721Interface(ctx bCtx.Ctx, addr domain.Address) (bool, error) {
	unpacked, err := e.chainService.Call(ctx, common.HexToAddress(string(addr)), nil, e.abi, "supportsInterface", e.erc721InterfaceId)
	if err != nil {
		return false, err
	}
	return unpacked[0].(bool), nil
}

func (e *Erc721) Name(ctx bCtx.Ctx, addr domain.Address) (string, error) {
	return e.callString(ctx, addr, "name")
}

func (e *Erc721) Symbol(ctx bCtx.Ctx, addr domain.Address) (string, error) {
	return e.callString(ctx, addr, "symbol")
}

func (e *Erc721) TokenURI(ctx bCtx.Ctx, addr domain.Address, tokenId *big.Int) (string, error) {
	return e.callString(ctx, addr, "tokenURI", tokenId)
}

func (e *Erc721) callString(ctx bCtx.Ctx, addr domain.Address, method string, params ...interface{}) (string, error) {
	unpacked, err := e.chainService.Call(ctx, common.HexToAddress(string(addr)), nil, e.abi, method, params...)
	if err != nil {
		return "", err
	}
	s, ok := unpacked[0].(string)
	if !ok {
		return "", domain.ErrUnexpectedContractResults
	}
	return s, nil
}
