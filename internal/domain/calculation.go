package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Record field names used by ToRecord/CalculationFromRecord and by the
// persisted history table. The column order is fixed.
const (
	FieldOperation = "operation"
	FieldOperand1  = "operand1"
	FieldOperand2  = "operand2"
	FieldResult    = "result"
	FieldTimestamp = "timestamp"
)

// RecordColumns is the persisted column order for history rows.
var RecordColumns = []string{FieldOperation, FieldOperand1, FieldOperand2, FieldResult, FieldTimestamp}

// Calculation represents one completed arithmetic computation in the
// domain layer. Immutable once created.
type Calculation struct {
	ID        uuid.UUID
	Operation string
	Operand1  decimal.Decimal
	Operand2  decimal.Decimal
	Result    decimal.Decimal
	Timestamp time.Time
}

// NewCalculation creates a Calculation stamped with the current time.
func NewCalculation(operation string, operand1, operand2, result decimal.Decimal) Calculation {
	return Calculation{
		ID:        uuid.New(),
		Operation: operation,
		Operand1:  operand1,
		Operand2:  operand2,
		Result:    result,
		Timestamp: time.Now(),
	}
}

// Equal reports whether two calculations describe the same computation.
// Identity and timestamp are not part of calculation equality.
func (c Calculation) Equal(other Calculation) bool {
	return c.Operation == other.Operation &&
		c.Operand1.Equal(other.Operand1) &&
		c.Operand2.Equal(other.Operand2) &&
		c.Result.Equal(other.Result)
}

// String formats the calculation for history display.
func (c Calculation) String() string {
	return fmt.Sprintf("%s(%s, %s) = %s", c.Operation, c.Operand1, c.Operand2, c.Result)
}

// ToRecord serializes the calculation to a flat mapping of stringified
// fields. Operands and result are decimal strings to preserve precision
// across reload; the timestamp is ISO-8601.
func (c Calculation) ToRecord() map[string]string {
	return map[string]string{
		FieldOperation: c.Operation,
		FieldOperand1:  c.Operand1.String(),
		FieldOperand2:  c.Operand2.String(),
		FieldResult:    c.Result.String(),
		FieldTimestamp: c.Timestamp.Format(time.RFC3339Nano),
	}
}

// Row projects the calculation into the persisted column order.
func (c Calculation) Row() []string {
	rec := c.ToRecord()
	row := make([]string, 0, len(RecordColumns))
	for _, col := range RecordColumns {
		row = append(row, rec[col])
	}
	return row
}

// CalculationFromRecord reconstructs a Calculation from its flat record
// form. Returns a ValidationError if the operation name is missing or
// any numeric field is not a valid decimal string. An unparsable
// timestamp falls back to the current time; the computation itself is
// what must survive a reload.
func CalculationFromRecord(rec map[string]string) (Calculation, error) {
	operation := rec[FieldOperation]
	if operation == "" {
		return Calculation{}, NewValidationError("invalid calculation record: missing operation name")
	}

	operand1, err := decimal.NewFromString(rec[FieldOperand1])
	if err != nil {
		return Calculation{}, NewValidationError("invalid calculation record: operand1 %q is not a valid decimal", rec[FieldOperand1])
	}
	operand2, err := decimal.NewFromString(rec[FieldOperand2])
	if err != nil {
		return Calculation{}, NewValidationError("invalid calculation record: operand2 %q is not a valid decimal", rec[FieldOperand2])
	}
	result, err := decimal.NewFromString(rec[FieldResult])
	if err != nil {
		return Calculation{}, NewValidationError("invalid calculation record: result %q is not a valid decimal", rec[FieldResult])
	}

	timestamp, err := time.Parse(time.RFC3339Nano, rec[FieldTimestamp])
	if err != nil {
		timestamp = time.Now()
	}

	return Calculation{
		ID:        uuid.New(),
		Operation: operation,
		Operand1:  operand1,
		Operand2:  operand2,
		Result:    result,
		Timestamp: timestamp,
	}, nil
}
