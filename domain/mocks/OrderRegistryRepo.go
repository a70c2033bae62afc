package mocks

import (
	mock "github.com/stretchr/testify/mock"
	ctx "github.com/x-xyz/storefront/base/ctx"
	domain "github.com/x-xyz/storefront/domain"
)

// OrderRegistryRepo is a mock type for the OrderRegistryRepo type
type OrderRegistryRepo struct {
	mock.Mock
}

// Address provides a mock function with given fields: 
func (_m *OrderRegistryRepo) Address() domain.Address {
	ret := _m.Called()

	var r0 domain.Address
	if rf, ok := ret.Get(0).(func() domain.Address); ok {
		r0 = rf()
	} else {
		r0 = ret.Get(0).(domain.Address)
	}

	return r0
}

// FilterOrderExecuted provides a mock function with given fields: c, fromBlock, toBlock
func (_m *OrderRegistryRepo) FilterOrderExecuted(c ctx.Ctx, fromBlock uint64, toBlock uint64) ([]domain.OrderExecutedEvent, error) {
	ret := _m.Called(c, fromBlock, toBlock)

	var r0 []domain.OrderExecutedEvent
	if rf, ok := ret.Get(0).(func(ctx.Ctx, uint64, uint64) []domain.OrderExecutedEvent); ok {
		r0 = rf(c, fromBlock, toBlock)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).([]domain.OrderExecutedEvent)
		}
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(ctx.Ctx, uint64, uint64) error); ok {
		r1 = rf(c, fromBlock, toBlock)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// GetSignedOrder provides a mock function with given fields: _a0, _a1
func (_m *OrderRegistryRepo) GetSignedOrder(_a0 ctx.Ctx, _a1 uint64) (*domain.Order, error) {
	ret := _m.Called(_a0, _a1)

	var r0 *domain.Order
	if rf, ok := ret.Get(0).(func(ctx.Ctx, uint64) *domain.Order); ok {
		r0 = rf(_a0, _a1)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*domain.Order)
		}
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(ctx.Ctx, uint64) error); ok {
		r1 = rf(_a0, _a1)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// PackFulfillListing provides a mock function with given fields: buyer, orderIds
func (_m *OrderRegistryRepo) PackFulfillListing(buyer domain.Address, orderIds []uint64) ([]byte, error) {
	ret := _m.Called(buyer, orderIds)

	var r0 []byte
	if rf, ok := ret.Get(0).(func(domain.Address, []uint64) []byte); ok {
		r0 = rf(buyer, orderIds)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).([]byte)
		}
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(domain.Address, []uint64) error); ok {
		r1 = rf(buyer, orderIds)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// ParseFulfillListing provides a mock function with given fields: data
func (_m *OrderRegistryRepo) ParseFulfillListing(data []byte) (domain.Address, []uint64, error) {
	ret := _m.Called(data)

	var r0 domain.Address
	if rf, ok := ret.Get(0).(func([]byte) domain.Address); ok {
		r0 = rf(data)
	} else {
		r0 = ret.Get(0).(domain.Address)
	}

	var r1 []uint64
	if rf, ok := ret.Get(1).(func([]byte) []uint64); ok {
		r1 = rf(data)
	} else {
		if ret.Get(1) != nil {
			r1 = ret.Get(1).([]uint64)
		}
	}

	var r2 error
	if rf, ok := ret.Get(2).(func([]byte) error); ok {
		r2 = rf(data)
	} else {
		r2 = ret.Error(2)
	}

	return r0, r1, r2
}

// TotalOrders provides a mock function with given fields: _a0
func (_m *OrderRegistryRepo) TotalOrders(_a0 ctx.Ctx) (uint64, error) {
	ret := _m.Called(_a0)

	var r0 uint64
	if rf, ok := ret.Get(0).(func(ctx.Ctx) uint64); ok {
		r0 = rf(_a0)
	} else {
		r0 = ret.Get(0).(uint64)
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(ctx.Ctx) error); ok {
		r1 = rf(_a0)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}
