package core

import (
	"fmt"
	"math/big"

	"github.com/jackc/pgx/v5/pgtype"
)

// parseDecimal parses a plain decimal literal into an exact numeric.
// NaN and infinities are rejected.
func parseDecimal(s string) (pgtype.Numeric, error) {
	if !decimalRegex.MatchString(s) {
		return pgtype.Numeric{}, fmt.Errorf("invalid number %q", s)
	}
	var n pgtype.Numeric
	if err := n.Scan(s); err != nil {
		return pgtype.Numeric{}, fmt.Errorf("invalid number %q: %w", s, err)
	}
	return n, nil
}

// numericRat converts a valid finite numeric to an exact rational.
func numericRat(n pgtype.Numeric) *big.Rat {
	r := new(big.Rat).SetInt(n.Int)
	if n.Exp == 0 {
		return r
	}
	scale := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(abs32(n.Exp))), nil)
	if n.Exp > 0 {
		return r.Mul(r, new(big.Rat).SetInt(scale))
	}
	return r.Quo(r, new(big.Rat).SetInt(scale))
}

// compareDecimal returns -1, 0 or +1 as a is less than, equal to or greater than b.
func compareDecimal(a, b pgtype.Numeric) int {
	return numericRat(a).Cmp(numericRat(b))
}

// FormatDecimal renders a numeric with its own scale: 9068e-2 is "90.68".
func FormatDecimal(n pgtype.Numeric) string {
	if !n.Valid || n.Int == nil {
		return ""
	}
	places := 0
	if n.Exp < 0 {
		places = int(-n.Exp)
	}
	return numericRat(n).FloatString(places)
}

// decimalFloat returns the float64 closest to n, for statistics.
func decimalFloat(n pgtype.Numeric) float64 {
	f, _ := numericRat(n).Float64()
	return f
}

func abs32(v int32) int32 {
	if v < 0 {
		return -v
	}
	return v
}
