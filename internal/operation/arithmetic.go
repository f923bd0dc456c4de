package operation

import (
	"math"

	"github.com/shopspring/decimal"

	"github.com/simaogato/calctrail/internal/domain"
)

var oneHundred = decimal.NewFromInt(100)

// Addition computes a + b.
type Addition struct{}

func (Addition) Name() string { return "Addition" }

func (Addition) Validate(a, b decimal.Decimal) error { return nil }

func (op Addition) Execute(a, b decimal.Decimal) (decimal.Decimal, error) {
	if err := op.Validate(a, b); err != nil {
		return decimal.Decimal{}, err
	}
	return a.Add(b), nil
}

// Subtraction computes a - b.
type Subtraction struct{}

func (Subtraction) Name() string { return "Subtraction" }

func (Subtraction) Validate(a, b decimal.Decimal) error { return nil }

func (op Subtraction) Execute(a, b decimal.Decimal) (decimal.Decimal, error) {
	if err := op.Validate(a, b); err != nil {
		return decimal.Decimal{}, err
	}
	return a.Sub(b), nil
}

// Multiplication computes a * b.
type Multiplication struct{}

func (Multiplication) Name() string { return "Multiplication" }

func (Multiplication) Validate(a, b decimal.Decimal) error { return nil }

func (op Multiplication) Execute(a, b decimal.Decimal) (decimal.Decimal, error) {
	if err := op.Validate(a, b); err != nil {
		return decimal.Decimal{}, err
	}
	return a.Mul(b), nil
}

// Division computes a / b in decimal arithmetic. Division by zero is a
// validation error.
type Division struct{}

func (Division) Name() string { return "Division" }

func (Division) Validate(a, b decimal.Decimal) error {
	if b.IsZero() {
		return domain.NewValidationError("division by zero is not allowed")
	}
	return nil
}

func (op Division) Execute(a, b decimal.Decimal) (decimal.Decimal, error) {
	if err := op.Validate(a, b); err != nil {
		return decimal.Decimal{}, err
	}
	return a.Div(b), nil
}

// Power computes a raised to b via float64 exponentiation, converted
// back to decimal. Callers must tolerate floating-point rounding at
// high precision. Negative exponents are a validation error.
type Power struct{}

func (Power) Name() string { return "Power" }

func (Power) Validate(a, b decimal.Decimal) error {
	if b.IsNegative() {
		return domain.NewValidationError("negative exponents not supported")
	}
	return nil
}

func (op Power) Execute(a, b decimal.Decimal) (decimal.Decimal, error) {
	if err := op.Validate(a, b); err != nil {
		return decimal.Decimal{}, err
	}
	result := math.Pow(a.InexactFloat64(), b.InexactFloat64())
	if math.IsNaN(result) || math.IsInf(result, 0) {
		return decimal.Decimal{}, domain.NewOperationError("power computation overflowed", nil)
	}
	return decimal.NewFromFloat(result), nil
}

// Root computes the b-th root of a via float64 exponentiation. The
// radicand must be non-negative and the degree non-zero.
type Root struct{}

func (Root) Name() string { return "Root" }

func (Root) Validate(a, b decimal.Decimal) error {
	if a.IsNegative() {
		return domain.NewValidationError("cannot calculate root of negative number")
	}
	if b.IsZero() {
		return domain.NewValidationError("zero root is undefined")
	}
	return nil
}

func (op Root) Execute(a, b decimal.Decimal) (decimal.Decimal, error) {
	if err := op.Validate(a, b); err != nil {
		return decimal.Decimal{}, err
	}
	result := math.Pow(a.InexactFloat64(), 1/b.InexactFloat64())
	if math.IsNaN(result) || math.IsInf(result, 0) {
		return decimal.Decimal{}, domain.NewOperationError("root computation overflowed", nil)
	}
	return decimal.NewFromFloat(result), nil
}

// Modulus computes the remainder of a divided by b. The result carries
// the sign of the dividend. Modulus by zero is a validation error.
type Modulus struct{}

func (Modulus) Name() string { return "Modulus" }

func (Modulus) Validate(a, b decimal.Decimal) error {
	if b.IsZero() {
		return domain.NewValidationError("modulus by zero is not allowed")
	}
	return nil
}

func (op Modulus) Execute(a, b decimal.Decimal) (decimal.Decimal, error) {
	if err := op.Validate(a, b); err != nil {
		return decimal.Decimal{}, err
	}
	return a.Mod(b), nil
}

// IntegerDivision computes the integer quotient of a / b, truncated
// toward zero (not floored; -7 / 2 yields -3, not -4). Division by
// zero is a validation error.
type IntegerDivision struct{}

func (IntegerDivision) Name() string { return "IntegerDivision" }

func (IntegerDivision) Validate(a, b decimal.Decimal) error {
	if b.IsZero() {
		return domain.NewValidationError("integer division by zero is not allowed")
	}
	return nil
}

func (op IntegerDivision) Execute(a, b decimal.Decimal) (decimal.Decimal, error) {
	if err := op.Validate(a, b); err != nil {
		return decimal.Decimal{}, err
	}
	return decimal.NewFromInt(a.Div(b).IntPart()), nil
}

// Percent computes a percent of b, i.e. (a / 100) * b.
type Percent struct{}

func (Percent) Name() string { return "Percent" }

func (Percent) Validate(a, b decimal.Decimal) error { return nil }

func (op Percent) Execute(a, b decimal.Decimal) (decimal.Decimal, error) {
	if err := op.Validate(a, b); err != nil {
		return decimal.Decimal{}, err
	}
	return a.Div(oneHundred).Mul(b), nil
}

// AbsoluteDifference computes |a - b|.
type AbsoluteDifference struct{}

func (AbsoluteDifference) Name() string { return "AbsoluteDifference" }

func (AbsoluteDifference) Validate(a, b decimal.Decimal) error { return nil }

func (op AbsoluteDifference) Execute(a, b decimal.Decimal) (decimal.Decimal, error) {
	if err := op.Validate(a, b); err != nil {
		return decimal.Decimal{}, err
	}
	return a.Sub(b).Abs(), nil
}
