package pricefomatter

import (
	"math/big"
	"strings"

	"github.com/shopspring/decimal"
)

// NativeDecimals is the number of decimals of APE.
const NativeDecimals = 18

// FormatUnits renders value / 10^decimals as a plain decimal string. Trailing
// zeros are trimmed but at least one fractional digit is kept, so 10^18 with 18
// decimals gives "1.0". The result is for display only.
func FormatUnits(value *big.Int, decimals int32) string {
	if value == nil {
		return "0.0"
	}
	s := decimal.NewFromBigInt(value, -decimals).String()
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

// FormatEther formats a wei amount with 18 decimals.
func FormatEther(wei *big.Int) string {
	return FormatUnits(wei, NativeDecimals)
}
