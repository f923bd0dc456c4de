// Package operation defines the arithmetic operations the calculator
// can perform and the catalog resolving operation names to instances.
package operation

import (
	"github.com/shopspring/decimal"
)

// Operation is a stateless binary arithmetic operation. Validate
// enforces the operation's domain rules and Execute computes the
// result. Execute re-runs validation defensively; the check is
// idempotent and side-effect free.
type Operation interface {
	// Name returns the operation's display name (e.g. "Addition")
	Name() string

	// Validate checks the operands against the operation's domain
	// rules, returning a domain.ValidationError on violation
	Validate(a, b decimal.Decimal) error

	// Execute validates and computes the result
	Execute(a, b decimal.Decimal) (decimal.Decimal, error)
}
