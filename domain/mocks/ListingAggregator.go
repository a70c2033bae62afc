package mocks

import (
	mock "github.com/stretchr/testify/mock"
	ctx "github.com/x-xyz/storefront/base/ctx"
	domain "github.com/x-xyz/storefront/domain"
)

// ListingAggregator is a mock type for the ListingAggregator type
type ListingAggregator struct {
	mock.Mock
}

// Aggregate provides a mock function with given fields: _a0
func (_m *ListingAggregator) Aggregate(_a0 ctx.Ctx) (*domain.Aggregation, error) {
	ret := _m.Called(_a0)

	var r0 *domain.Aggregation
	if rf, ok := ret.Get(0).(func(ctx.Ctx) *domain.Aggregation); ok {
		r0 = rf(_a0)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*domain.Aggregation)
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
