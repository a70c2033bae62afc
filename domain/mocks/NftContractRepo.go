package mocks

import (
	big "math/big"

	mock "github.com/stretchr/testify/mock"
	ctx "github.com/x-xyz/storefront/base/ctx"
	domain "github.com/x-xyz/storefront/domain"
)

// NftContractRepo is a mock type for the NftContractRepo type
type NftContractRepo struct {
	mock.Mock
}

// Name provides a mock function with given fields: _a0, _a1
func (_m *NftContractRepo) Name(_a0 ctx.Ctx, _a1 domain.Address) (string, error) {
	ret := _m.Called(_a0, _a1)

	var r0 string
	if rf, ok := ret.Get(0).(func(ctx.Ctx, domain.Address) string); ok {
		r0 = rf(_a0, _a1)
	} else {
		r0 = ret.Get(0).(string)
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(ctx.Ctx, domain.Address) error); ok {
		r1 = rf(_a0, _a1)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// TokenURI provides a mock function with given fields: _a0, _a1, _a2
func (_m *NftContractRepo) TokenURI(_a0 ctx.Ctx, _a1 domain.Address, _a2 *big.Int) (string, error) {
	ret := _m.Called(_a0, _a1, _a2)

	var r0 string
	if rf, ok := ret.Get(0).(func(ctx.Ctx, domain.Address, *big.Int) string); ok {
		r0 = rf(_a0, _a1, _a2)
	} else {
		r0 = ret.Get(0).(string)
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(ctx.Ctx, domain.Address, *big.Int) error); ok {
		r1 = rf(_a0, _a1, _a2)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// Uri provides a mock function with given fields: _a0, _a1, _a2
func (_m *NftContractRepo) Uri(_a0 ctx.Ctx, _a1 domain.Address, _a2 *big.Int) (string, error) {
	ret := _m.Called(_a0, _a1, _a2)

	var r0 string
	if rf, ok := ret.Get(0).(func(ctx.Ctx, domain.Address, *big.Int) string); ok {
		r0 = rf(_a0, _a1, _a2)
	} else {
		r0 = ret.Get(0).(string)
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(ctx.Ctx, domain.Address, *big.Int) error); ok {
		r1 = rf(_a0, _a1, _a2)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}
