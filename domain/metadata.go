package domain

import (
	"github.com/x-xyz/storefront/base/ctx"
)

// TokenMetadata fields are nil when they could not be resolved.
type TokenMetadata struct {
	Image       *string `json:"image"`
	Name        *string `json:"name"`
	Description *string `json:"description"`
}

type MetadataUseCase interface {
	GetTokenMetadata(c ctx.Ctx, collection Address, tokenId TokenId) *TokenMetadata
}
