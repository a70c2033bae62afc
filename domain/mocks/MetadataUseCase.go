package mocks

import (
	mock "github.com/stretchr/testify/mock"
	ctx "github.com/x-xyz/storefront/base/ctx"
	domain "github.com/x-xyz/storefront/domain"
)

// MetadataUseCase is a mock type for the MetadataUseCase type
type MetadataUseCase struct {
	mock.Mock
}

// GetTokenMetadata provides a mock function with given fields: c, collection, tokenId
func (_m *MetadataUseCase) GetTokenMetadata(c ctx.Ctx, collection domain.Address, tokenId domain.TokenId) *domain.TokenMetadata {
	ret := _m.Called(c, collection, tokenId)

	var r0 *domain.TokenMetadata
	if rf, ok := ret.Get(0).(func(ctx.Ctx, domain.Address, domain.TokenId) *domain.TokenMetadata); ok {
		r0 = rf(c, collection, tokenId)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*domain.TokenMetadata)
		}
	}

	return r0
}
