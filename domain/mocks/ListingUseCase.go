package mocks

import (
	mock "github.com/stretchr/testify/mock"
	ctx "github.com/x-xyz/storefront/base/ctx"
	domain "github.com/x-xyz/storefront/domain"
)

// ListingUseCase is a mock type for the ListingUseCase type
type ListingUseCase struct {
	mock.Mock
}

// BuildPurchase provides a mock function with given fields: c, idx, buyer
func (_m *ListingUseCase) BuildPurchase(c ctx.Ctx, idx uint64, buyer domain.Address) (*domain.PurchaseTx, error) {
	ret := _m.Called(c, idx, buyer)

	var r0 *domain.PurchaseTx
	if rf, ok := ret.Get(0).(func(ctx.Ctx, uint64, domain.Address) *domain.PurchaseTx); ok {
		r0 = rf(c, idx, buyer)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*domain.PurchaseTx)
		}
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(ctx.Ctx, uint64, domain.Address) error); ok {
		r1 = rf(c, idx, buyer)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// GetCollectionListings provides a mock function with given fields: _a0, _a1
func (_m *ListingUseCase) GetCollectionListings(_a0 ctx.Ctx, _a1 domain.Address) (*domain.CollectionListings, error) {
	ret := _m.Called(_a0, _a1)

	var r0 *domain.CollectionListings
	if rf, ok := ret.Get(0).(func(ctx.Ctx, domain.Address) *domain.CollectionListings); ok {
		r0 = rf(_a0, _a1)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*domain.CollectionListings)
		}
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(ctx.Ctx, domain.Address) error); ok {
		r1 = rf(_a0, _a1)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// GetListings provides a mock function with given fields: _a0
func (_m *ListingUseCase) GetListings(_a0 ctx.Ctx) (*domain.ListingsSnapshot, error) {
	ret := _m.Called(_a0)

	var r0 *domain.ListingsSnapshot
	if rf, ok := ret.Get(0).(func(ctx.Ctx) *domain.ListingsSnapshot); ok {
		r0 = rf(_a0)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*domain.ListingsSnapshot)
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
func (_m *ListingUseCase) Refresh(_a0 ctx.Ctx) (*domain.ListingsSnapshot, error) {
	ret := _m.Called(_a0)

	var r0 *domain.ListingsSnapshot
	if rf, ok := ret.Get(0).(func(ctx.Ctx) *domain.ListingsSnapshot); ok {
		r0 = rf(_a0)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*domain.ListingsSnapshot)
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

// SearchCollections provides a mock function with given fields: c, q
func (_m *ListingUseCase) SearchCollections(c ctx.Ctx, q string) ([]domain.CollectionSummary, error) {
	ret := _m.Called(c, q)

	var r0 []domain.CollectionSummary
	if rf, ok := ret.Get(0).(func(ctx.Ctx, string) []domain.CollectionSummary); ok {
		r0 = rf(c, q)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).([]domain.CollectionSummary)
		}
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(ctx.Ctx, string) error); ok {
		r1 = rf(c, q)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}
