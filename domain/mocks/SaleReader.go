package mocks

import (
	mock "github.com/stretchr/testify/mock"
	ctx "github.com/x-xyz/storefront/base/ctx"
	domain "github.com/x-xyz/storefront/domain"
)

// SaleReader is a mock type for the SaleReader type
type SaleReader struct {
	mock.Mock
}

// FetchRecentSales provides a mock function with given fields: _a0
func (_m *SaleReader) FetchRecentSales(_a0 ctx.Ctx) ([]domain.Sale, error) {
	ret := _m.Called(_a0)

	var r0 []domain.Sale
	if rf, ok := ret.Get(0).(func(ctx.Ctx) []domain.Sale); ok {
		r0 = rf(_a0)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).([]domain.Sale)
		}
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(ctx.Ctx) error); ok {
		r1 = rf(_a0)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}
