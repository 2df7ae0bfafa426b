// Package stable implements horse record creation and the update
// reconciliation that recomputes derived balances and appends audit
// histories. It is pure: callers commit results to a store themselves.
package stable

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"
)

var (
	// ErrValidation marks malformed history entries in an update payload.
	ErrValidation = errors.New("invalid history entry")
	// ErrConstruct marks a creation payload that cannot form a valid record.
	ErrConstruct = errors.New("cannot construct horse record")
)

var two = decimal.NewFromInt(2)

// fixed3Stripped renders v with exactly 3 fractional digits, then strips
// trailing zeros and a dangling decimal point: "0.100" -> "0.1",
// "1.000" -> "1". Downstream display logic depends on this exact shape.
func fixed3Stripped(v decimal.Decimal) string {
	s := v.StringFixed(3)
	s = strings.TrimRight(s, "0")
	s = strings.TrimRight(s, ".")
	return s
}

// parseDecimal parses a string-encoded decimal, treating empty as the
// given fallback.
func parseDecimal(s, fallback string) (decimal.Decimal, error) {
	if s == "" {
		s = fallback
	}
	return decimal.NewFromString(s)
}
