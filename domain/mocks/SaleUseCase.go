package mocks

import (
	mock "github.com/stretchr/testify/mock"
	ctx "github.com/x-xyz/storefront/base/ctx"
	domain "github.com/x-xyz/storefront/domain"
)

// SaleUseCase is a mock type for the SaleUseCase type
type SaleUseCase struct {
	mock.Mock
}

// GetRecentSales provides a mock function with given fields: _a0
func (_m *SaleUseCase) GetRecentSales(_a0 ctx.Ctx) (*domain.SalesSnapshot, error) {
	ret := _m.Called(_a0)

	var r0 *domain.SalesSnapshot
	if rf, ok := ret.Get(0).(func(ctx.Ctx) *domain.SalesSnapshot); ok {
		r0 = rf(_a0)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*domain.SalesSnapshot)
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

// Refresh provides a mock function with given fields: _a0
func (_m *SaleUseCase) Refresh(_a0 ctx.Ctx) (*domain.SalesSnapshot, error) {
	ret := _m.Called(_a0)

	var r0 *domain.SalesSnapshot
	if rf, ok := ret.Get(0).(func(ctx.Ctx) *domain.SalesSnapshot); ok {
		r0 = rf(_a0)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*domain.SalesSnapshot)
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
