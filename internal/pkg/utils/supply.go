package utils

import (
	"math/big"
	"strings"

	"github.com/nftshinessy/montoks/internal/entity"
)

// FormatSupply converts a raw integer-string token supply in smallest units
// into a human-readable decimal string, dividing by 10^decimals with exact
// integer arithmetic. The fractional part is zero-padded to the full number
// of decimals and then stripped of trailing zeros; a zero remainder yields
// just the whole part. Returns "Error" if the raw supply does not parse.
func FormatSupply(rawSupply string, decimals int) string {
	supply, ok := new(big.Int).SetString(rawSupply, 10)
	if !ok || supply.Sign() < 0 || decimals < 0 {
		return entity.ErrorValue
	}

	if decimals == 0 {
		return supply.String()
	}

	divisor := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(decimals)), nil)
	whole, frac := new(big.Int).QuoRem(supply, divisor, new(big.Int))

	if frac.Sign() == 0 {
		return whole.String()
	}

	fracStr := frac.String()
	if pad := decimals - len(fracStr); pad > 0 {
		fracStr = strings.Repeat("0", pad) + fracStr
	}
	fracStr = strings.TrimRight(fracStr, "0")

	return whole.String() + "." + fracStr
}
