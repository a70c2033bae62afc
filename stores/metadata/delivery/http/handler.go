package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/x-xyz/storefront/base/ctx"
	"github.com/x-xyz/storefront/base/delivery"
	"github.com/x-xyz/storefront/domain"
	"github.com/x-xyz/storefront/middleware"
)

const cacheControl = "public, max-age=86400"

type handler struct {
	metadata domain.MetadataUseCase
}

type metadataParams struct {
	Collection string `query:"collection"`
	TokenId    string `query:"tokenId"`
}

func New(e *echo.Echo, metadata domain.MetadataUseCase) {
	h := &handler{metadata}
	e.GET("/metadata", h.getMetadata, middleware.CacheControl(cacheControl))
}

// getMetadata answers 200 even when nothing could be resolved, in which case
// every field is null.
//
//	@Description	Get image, name and description of a token
//	@Tags			metadata
//	@Produce		json
//	@Param			collection	query		string	true	"collection address"
//	@Param			tokenId		query		string	true	"token id"
//	@Success		200			{object}	domain.TokenMetadata
//	@Router			/metadata [get]
func (h *handler) getMetadata(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	p := &metadataParams{}
	if err := c.Bind(p); err != nil {
		ctx.WithField("err", err).Warn("c.Bind failed")
		return delivery.MakeJsonResp(c, http.StatusOK, &domain.TokenMetadata{})
	}

	res := h.metadata.GetTokenMetadata(ctx, domain.Address(p.Collection), domain.TokenId(p.TokenId))
	if res == nil {
		res = &domain.TokenMetadata{}
	}
	return delivery.MakeJsonResp(c, http.StatusOK, res)
}
