package domain

import "github.com/x-xyz/storefront/base/ctx"

// CollectionNameUseCase maps a collection address to a display name. It never
// fails: a lookup error yields the truncated address for a while.
type CollectionNameUseCase interface {
	Resolve(ctx.Ctx, Address) string
}
