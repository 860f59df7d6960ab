// Package units converts between display amounts shown to users and the integer
// base units the contract accounts in.
package units

import (
	"errors"
	"fmt"
	"math"
	"math/big"
	"strconv"
	"strings"
)

// Scale is the number of ledger base units in one display unit.
const Scale = 10_000_000

var ErrInvalidAmount error = errors.New("invalid amount")

var scaleRat = new(big.Rat).SetInt64(Scale)

// MaxLedgerAmount is the largest amount the contract's int128 fields hold.
var MaxLedgerAmount = new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 127), big.NewInt(1))

// ToLedgerUnits converts a display amount into base units, truncating any
// precision finer than one base unit.
func ToLedgerUnits(display float64) (*big.Int, error) {
	if math.IsNaN(display) || math.IsInf(display, 0) {
		return nil, fmt.Errorf("%w: %v is not finite", ErrInvalidAmount, display)
	}
	if display < 0 {
		return nil, fmt.Errorf("%w: %v is negative", ErrInvalidAmount, display)
	}

	// shortest decimal form, so 0.1 scales as 0.1 and not as its binary neighbour
	return ParseDisplay(strconv.FormatFloat(display, 'f', -1, 64))
}

// ParseDisplay converts a decimal string such as "12.50" into base units.
func ParseDisplay(s string) (*big.Int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, fmt.Errorf("%w: empty", ErrInvalidAmount)
	}

	r, ok := new(big.Rat).SetString(s)
	if !ok {
		return nil, fmt.Errorf("%w: %q is not a number", ErrInvalidAmount, s)
	}
	if r.Sign() < 0 {
		return nil, fmt.Errorf("%w: %q is negative", ErrInvalidAmount, s)
	}

	r.Mul(r, scaleRat)
	// Quo truncates toward zero, which is floor for non-negative values
	ledger := new(big.Int).Quo(r.Num(), r.Denom())
	if ledger.Cmp(MaxLedgerAmount) > 0 {
		return nil, fmt.Errorf("%w: %q exceeds the largest ledger amount", ErrInvalidAmount, s)
	}
	return ledger, nil
}

// ToDisplayUnits converts base units back into a display amount.
func ToDisplayUnits(ledger *big.Int) float64 {
	if ledger == nil {
		return 0
	}
	f, _ := new(big.Rat).SetFrac(ledger, big.NewInt(Scale)).Float64()
	return f
}

// FormatDisplay renders base units as an exact decimal string.
func FormatDisplay(ledger *big.Int) string {
	if ledger == nil {
		return "0"
	}
	return new(big.Rat).SetFrac(ledger, big.NewInt(Scale)).FloatString(7)
}
