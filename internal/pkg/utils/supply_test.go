package utils

import (
	"math/big"
	"strings"
	"testing"
)

func TestFormatSupply(t *testing.T) {
	cases := []struct {
		raw      string
		decimals int
		want     string
	}{
		{"0", 18, "0"},
		{"1000000000000000000", 18, "1"},
		{"2000000000000000000", 18, "2"},
		{"1500000000000000000", 18, "1.5"},
		{"1000000000000000000000", 18, "1000"},
		{"123456789012345678901", 18, "123.456789012345678901"},
		{"123456", 6, "0.123456"},
		{"123456", 0, "123456"},
		{"1", 18, "0.000000000000000001"},
	}

	for _, tc := range cases {
		if got := FormatSupply(tc.raw, tc.decimals); got != tc.want {
			t.Errorf("FormatSupply(%q, %d) = %q, want %q", tc.raw, tc.decimals, got, tc.want)
		}
	}
}

func TestFormatSupplyInvalid(t *testing.T) {
	for _, raw := range []string{"", "abc", "12.5", "-1"} {
		if got := FormatSupply(raw, 18); got != "Error" {
			t.Errorf("FormatSupply(%q, 18) = %q, want Error", raw, got)
		}
	}
}

// Reconstructing whole*10^decimals+fractional from the formatted output must
// recover the original raw supply exactly.
func TestFormatSupplyRoundTrip(t *testing.T) {
	raws := []string{"0", "1000000000000000000", "123456789012345678901"}
	decimalsSet := []int{0, 6, 18}

	for _, raw := range raws {
		for _, decimals := range decimalsSet {
			formatted := FormatSupply(raw, decimals)

			wholeStr, fracStr := formatted, ""
			if i := strings.IndexByte(formatted, '.'); i >= 0 {
				wholeStr, fracStr = formatted[:i], formatted[i+1:]
			}
			for len(fracStr) < decimals {
				fracStr += "0"
			}

			whole, ok := new(big.Int).SetString(wholeStr, 10)
			if !ok {
				t.Fatalf("bad whole part %q from FormatSupply(%q, %d)", wholeStr, raw, decimals)
			}
			frac := big.NewInt(0)
			if fracStr != "" {
				if frac, ok = new(big.Int).SetString(fracStr, 10); !ok {
					t.Fatalf("bad fractional part %q from FormatSupply(%q, %d)", fracStr, raw, decimals)
				}
			}

			divisor := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(decimals)), nil)
			got := new(big.Int).Add(new(big.Int).Mul(whole, divisor), frac)
			if got.String() != raw {
				t.Errorf("round trip of FormatSupply(%q, %d) = %q reconstructed %s", raw, decimals, formatted, got)
			}
		}
	}
}
