package mocks

import (
	mock "github.com/stretchr/testify/mock"
	ctx "github.com/x-xyz/storefront/base/ctx"
	domain "github.com/x-xyz/storefront/domain"
)

// StatsUseCase is a mock type for the StatsUseCase type
type StatsUseCase struct {
	mock.Mock
}

// GetStats provides a mock function with given fields: _a0
func (_m *StatsUseCase) GetStats(_a0 ctx.Ctx) (*domain.Stats, error) {
	ret := _m.Called(_a0)

	var r0 *domain.Stats
	if rf, ok := ret.Get(0).(func(ctx.Ctx) *domain.Stats); ok {
		r0 = rf(_a0)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*domain.Stats)
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
