package domain

import "errors"

var (
	// ErrNotFound will throw if the requested item is not exists
	ErrNotFound = errors.New("Your requested Item is not found")
	// ErrBadParamInput will throw if the given request-body or params is not valid
	ErrBadParamInput     = errors.New("Given Param is not valid")
	ErrUnsupportedSchema = errors.New("Unsupported schema")
	ErrInvalidJsonFormat = errors.New("invalid JSON format")

	// request error
	ErrInvalidAddress = errors.New("Invalid address")
	ErrInvalidTokenId = errors.New("Invalid token id")

	// chain errors
	ErrChainUnavailable          = errors.New("chain unavailable")
	ErrOrderReadFailed           = errors.New("order read failed")
	ErrNameResolutionFailed      = errors.New("name resolution failed")
	ErrSaleAssemblyFailed        = errors.New("sale assembly failed")
	ErrMetadataResolutionFailed  = errors.New("metadata resolution failed")
	ErrEmptyTokenUri             = errors.New("empty token uri")
	ErrUnexpectedContractResults = errors.New("unexpected contract results")
)
