package domain

import (
	"github.com/x-xyz/storefront/base/ctx"
)

type WebResourceReaderRepository interface {
	Get(ctx.Ctx, string) ([]byte, error)
}

type WebResourceUseCase interface {
	// ResolveUri rewrites ipfs:// and ar:// uris to their http gateways.
	ResolveUri(string) string
	Get(ctx.Ctx, string) ([]byte, error)
}
