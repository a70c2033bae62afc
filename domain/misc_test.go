package domain

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAddressTruncate(t *testing.T) {
	req := require.New(t)

	req.Equal("0x0E22...9196", Address("0x0E22dc442f31b423b4Ca2A563D33690d342d9196").Truncate())
	req.Equal("0xabc", Address("0xabc").Truncate())
}

func TestAddressIsValid(t *testing.T) {
	req := require.New(t)

	req.True(Address("0x0E22dc442f31b423b4Ca2A563D33690d342d9196").IsValid())
	req.False(Address("0x0E22").IsValid())
	req.False(Address("0E22dc442f31b423b4Ca2A563D33690d342d9196ab").IsValid())
	req.True(Address("0xABC0000000000000000000000000000000000000").Equals("0xabc0000000000000000000000000000000000000"))
}

func TestTokenIdToHexString(t *testing.T) {
	req := require.New(t)

	s, err := TokenId("255").ToHexString()
	req.NoError(err)
	req.Equal("00000000000000000000000000000000000000000000000000000000000000ff", s)
	req.Len(s, 64)

	_, err = TokenId("0x1").ToHexString()
	req.ErrorIs(err, ErrInvalidTokenId)
	_, err = TokenId("-1").ToBigInt()
	req.ErrorIs(err, ErrInvalidTokenId)
}
