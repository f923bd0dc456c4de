package csvfile

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/simaogato/calctrail/internal/domain"
)

func TestSaveAndLoadRoundTrip(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "history", "calculator_history.csv")
	repo := NewHistoryRepository(path)

	history := []domain.Calculation{
		domain.NewCalculation("Addition", decimal.NewFromInt(2), decimal.NewFromInt(3), decimal.NewFromInt(5)),
		domain.NewCalculation("Division", decimal.NewFromInt(10), decimal.NewFromInt(4), decimal.RequireFromString("2.5")),
		domain.NewCalculation("Percent", decimal.NewFromInt(25), decimal.NewFromInt(200), decimal.NewFromInt(50)),
	}

	require.NoError(t, repo.Save(ctx, history))

	loaded, found, err := repo.Load(ctx)
	require.NoError(t, err)
	require.True(t, found)
	require.Len(t, loaded, len(history))

	for i := range history {
		assert.True(t, history[i].Equal(loaded[i]), "record %d: want %s, got %s", i, history[i], loaded[i])
	}
}

func TestSavePreservesDecimalPrecision(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "history.csv")
	repo := NewHistoryRepository(path)

	value := decimal.RequireFromString("0.12345678901234567890123456789")
	history := []domain.Calculation{
		domain.NewCalculation("Multiplication", value, decimal.NewFromInt(1), value),
	}

	require.NoError(t, repo.Save(ctx, history))

	loaded, _, err := repo.Load(ctx)
	require.NoError(t, err)
	require.Len(t, loaded, 1)
	assert.True(t, value.Equal(loaded[0].Result))
}

func TestSaveEmptyHistoryWritesHeaderOnly(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "history.csv")
	repo := NewHistoryRepository(path)

	require.NoError(t, repo.Save(ctx, nil))

	loaded, found, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Empty(t, loaded)
}

func TestLoadMissingFile(t *testing.T) {
	repo := NewHistoryRepository(filepath.Join(t.TempDir(), "does-not-exist.csv"))

	history, found, err := repo.Load(context.Background())
	require.NoError(t, err)
	assert.False(t, found)
	assert.Empty(t, history)
}

func TestLoadMalformedFile(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{
			name:    "bad decimal field",
			content: "operation,operand1,operand2,result,timestamp\nAddition,two,3,5,2024-01-01T00:00:00Z\n",
		},
		{
			name:    "missing operation name",
			content: "operation,operand1,operand2,result,timestamp\n,2,3,5,2024-01-01T00:00:00Z\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "history.csv")
			require.NoError(t, os.WriteFile(path, []byte(tt.content), 0o644))

			_, _, err := NewHistoryRepository(path).Load(context.Background())
			assert.Error(t, err)
		})
	}
}

func TestSaveOverwritesPreviousContents(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "history.csv")
	repo := NewHistoryRepository(path)

	first := []domain.Calculation{
		domain.NewCalculation("Addition", decimal.NewFromInt(1), decimal.NewFromInt(1), decimal.NewFromInt(2)),
		domain.NewCalculation("Addition", decimal.NewFromInt(2), decimal.NewFromInt(2), decimal.NewFromInt(4)),
	}
	require.NoError(t, repo.Save(ctx, first))

	second := []domain.Calculation{
		domain.NewCalculation("Subtraction", decimal.NewFromInt(9), decimal.NewFromInt(4), decimal.NewFromInt(5)),
	}
	require.NoError(t, repo.Save(ctx, second))

	loaded, _, err := repo.Load(ctx)
	require.NoError(t, err)
	require.Len(t, loaded, 1)
	assert.Equal(t, "Subtraction", loaded[0].Operation)
}
