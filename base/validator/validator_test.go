package validator

import (
	"testing"

	"github.com/stretchr/testify/suite"
)

type ValidatorTestSuite struct {
	suite.Suite
}

func TestValidatorTestSuite(t *testing.T) {
	suite.Run(t, new(ValidatorTestSuite))
}

func (s *ValidatorTestSuite) TestIsValidAddress() {
	tests := []struct {
		desc    string
		address string
		valid   bool
	}{
		{desc: "registry checksummed", address: "0x0E22dc442f31b423b4Ca2A563D33690d342d9196", valid: true},
		{desc: "registry lower case", address: "0x0e22dc442f31b423b4ca2a563d33690d342d9196", valid: true},
		{desc: "upper case hex", address: "0x0E22DC442F31B423B4CA2A563D33690D342D9196", valid: true},
		{desc: "too short", address: "0x000", valid: false},
		{desc: "too long", address: "0x0e22dc442f31b423b4ca2a563d33690d342d919600", valid: false},
		{desc: "missing prefix", address: "0e22dc442f31b423b4ca2a563d33690d342d9196", valid: false},
		{desc: "not hex", address: "0x0e22dc442f31b423b4ca2a563d33690d342d91zz", valid: false},
		{desc: "empty", address: "", valid: false},
	}
	for _, t := range tests {
		s.Equal(t.valid, IsValidAddress(t.address), t.desc)
	}
}

func (s *ValidatorTestSuite) TestAddressTag() {
	type purchase struct {
		Buyer string `validate:"required,address"`
	}
	v := NewCustomValidator(New())
	s.NoError(v.Validate(&purchase{Buyer: "0x939ae6A4C8dfDBB1f7085189574F0A938013952A"}))
	s.Error(v.Validate(&purchase{Buyer: "0x1234"}))
	s.Error(v.Validate(&purchase{}))
}
