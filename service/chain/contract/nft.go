package contract

import (
	"math/big"

	bCtx "github.com/x-xyz/storefront/base/ctx"
	"github.com/x-xyz/storefront/domain"
	"github.com/x-xyz/storefront/service/chain"
)

// Nft serves the erc721 views from Erc721 and uri from Erc1155.
type Nft struct {
	*Erc721
	erc1155 *Erc1155
}

func NewNft(chainService chain.Client) domain.NftContractRepo {
	return &Nft{
		Erc721:  NewErc721(chainService),
		erc1155: NewErc1155(chainService),
	}
}

var _ domain.NftContractRepo = (*Nft)(nil)

func (n *Nft) Uri(ctx bCtx.Ctx, addr domain.Address, id *big.Int) (string, error) {
	return n.erc1155.Uri(ctx, addr, id)
}
