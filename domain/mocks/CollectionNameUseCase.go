package mocks

import (
	mock "github.com/stretchr/testify/mock"
	ctx "github.com/x-xyz/storefront/base/ctx"
	domain "github.com/x-xyz/storefront/domain"
)

// CollectionNameUseCase is a mock type for the CollectionNameUseCase type
type CollectionNameUseCase struct {
	mock.Mock
}

// Resolve provides a mock function with given fields: _a0, _a1
func (_m *CollectionNameUseCase) Resolve(_a0 ctx.Ctx, _a1 domain.Address) string {
	ret := _m.Called(_a0, _a1)

	var r0 string
	if rf, ok := ret.Get(0).(func(ctx.Ctx, domain.Address) string); ok {
		r0 = rf(_a0, _a1)
	} else {
		r0 = ret.Get(0).(string)
	}

	return r0
}
