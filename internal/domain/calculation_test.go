package domain

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCalculation(t *testing.T) {
	calc := NewCalculation("Addition", decimal.NewFromInt(2), decimal.NewFromInt(3), decimal.NewFromInt(5))

	assert.Equal(t, "Addition", calc.Operation)
	assert.True(t, calc.Operand1.Equal(decimal.NewFromInt(2)))
	assert.True(t, calc.Operand2.Equal(decimal.NewFromInt(3)))
	assert.True(t, calc.Result.Equal(decimal.NewFromInt(5)))
	assert.NotZero(t, calc.ID)
	assert.WithinDuration(t, time.Now(), calc.Timestamp, time.Second)
}

func TestCalculationString(t *testing.T) {
	calc := NewCalculation("Division", decimal.NewFromInt(10), decimal.NewFromInt(4), decimal.RequireFromString("2.5"))

	assert.Equal(t, "Division(10, 4) = 2.5", calc.String())
}

func TestCalculationEqual(t *testing.T) {
	a := NewCalculation("Addition", decimal.NewFromInt(2), decimal.NewFromInt(3), decimal.NewFromInt(5))
	b := NewCalculation("Addition", decimal.NewFromInt(2), decimal.NewFromInt(3), decimal.NewFromInt(5))
	c := NewCalculation("Subtraction", decimal.NewFromInt(2), decimal.NewFromInt(3), decimal.NewFromInt(-1))

	// Identity and timestamps differ but the computation is the same
	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
}

func TestCalculationRecordRoundTrip(t *testing.T) {
	original := NewCalculation("Multiplication", decimal.RequireFromString("1.5"), decimal.NewFromInt(4), decimal.NewFromInt(6))

	restored, err := CalculationFromRecord(original.ToRecord())
	require.NoError(t, err)

	assert.True(t, original.Equal(restored))
	assert.True(t, original.Timestamp.Equal(restored.Timestamp))
}

func TestCalculationFromRecordErrors(t *testing.T) {
	valid := map[string]string{
		FieldOperation: "Addition",
		FieldOperand1:  "2",
		FieldOperand2:  "3",
		FieldResult:    "5",
		FieldTimestamp: time.Now().Format(time.RFC3339Nano),
	}

	tests := []struct {
		name  string
		field string
		value string
	}{
		{name: "missing operation", field: FieldOperation, value: ""},
		{name: "bad operand1", field: FieldOperand1, value: "not-a-number"},
		{name: "bad operand2", field: FieldOperand2, value: "12..3"},
		{name: "bad result", field: FieldResult, value: "five"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := make(map[string]string, len(valid))
			for k, v := range valid {
				rec[k] = v
			}
			rec[tt.field] = tt.value

			_, err := CalculationFromRecord(rec)
			require.Error(t, err)

			var vErr *ValidationError
			assert.ErrorAs(t, err, &vErr)
		})
	}
}

func TestCalculationFromRecordBadTimestampFallsBack(t *testing.T) {
	rec := map[string]string{
		FieldOperation: "Addition",
		FieldOperand1:  "2",
		FieldOperand2:  "3",
		FieldResult:    "5",
		FieldTimestamp: "not-a-timestamp",
	}

	calc, err := CalculationFromRecord(rec)
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now(), calc.Timestamp, time.Second)
}

func TestCalculationRowFollowsColumnOrder(t *testing.T) {
	calc := NewCalculation("Percent", decimal.NewFromInt(25), decimal.NewFromInt(200), decimal.NewFromInt(50))

	row := calc.Row()
	require.Len(t, row, len(RecordColumns))
	assert.Equal(t, "Percent", row[0])
	assert.Equal(t, "25", row[1])
	assert.Equal(t, "200", row[2])
	assert.Equal(t, "50", row[3])

	_, err := time.Parse(time.RFC3339Nano, row[4])
	assert.NoError(t, err)
}
