package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/x-xyz/storefront/base/ctx"
	"github.com/x-xyz/storefront/base/delivery"
	"github.com/x-xyz/storefront/domain"
)

type handler struct {
	sale domain.SaleUseCase
}

func New(e *echo.Echo, sale domain.SaleUseCase) {
	h := &handler{sale}
	e.GET("/sales", h.getSales)
}

// getSales
//
//	@Description	Get the most recent sales, newest first
//	@Tags			sales
//	@Produce		json
//	@Success		200	{object}	domain.SalesSnapshot
//	@Failure		500	{object}	domain.SalesSnapshot
//	@Router			/sales [get]
func (h *handler) getSales(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	snapshot, err := h.sale.GetRecentSales(ctx)
	if err != nil {
		ctx.WithField("err", err).Error("sale.GetRecentSales failed")
		return delivery.MakeJsonFail(c, http.StatusInternalServerError, &domain.SalesSnapshot{Sales: []domain.Sale{}})
	}
	return delivery.MakeJsonResp(c, http.StatusOK, snapshot)
}
