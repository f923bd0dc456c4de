package domain

import (
	"strings"

	"github.com/shopspring/decimal"
)

// ParseOperand converts raw textual input into a decimal value. Returns
// a ValidationError if raw cannot be parsed as a number or if its
// magnitude exceeds maxAbs. Pure function, no side effects.
func ParseOperand(raw string, maxAbs decimal.Decimal) (decimal.Decimal, error) {
	trimmed := strings.TrimSpace(raw)
	value, err := decimal.NewFromString(trimmed)
	if err != nil {
		return decimal.Decimal{}, NewValidationError("invalid number format: %s", raw)
	}
	if value.Abs().GreaterThan(maxAbs) {
		return decimal.Decimal{}, NewValidationError("value exceeds maximum allowed: %s", maxAbs)
	}
	return value, nil
}
