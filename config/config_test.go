package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("PEOPLE", "")
	t.Setenv("SHARED_LABEL", "")
	t.Setenv("MORTGAGE_TOTAL", "")
	t.Setenv("SPLITS", "")
	t.Setenv("TABLE_NAME", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, []string{"Person1", "Person2"}, cfg.People)
	assert.Equal(t, "Los 2", cfg.SharedLabel)
	assert.Equal(t, 26000.0, cfg.MortgageTotal)
	assert.Equal(t, []float64{0.5, 0.5}, cfg.Splits)
	assert.Equal(t, "Movimientos", cfg.TableName)
}

func TestLoadCustomValues(t *testing.T) {
	t.Setenv("PEOPLE", "Ana, Luis ,Sofia")
	t.Setenv("SHARED_LABEL", "Todos")
	t.Setenv("MORTGAGE_TOTAL", "18500.75")
	t.Setenv("SPLITS", "50,30,20")
	t.Setenv("TABLE_NAME", "Gastos")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, []string{"Ana", "Luis", "Sofia"}, cfg.People)
	assert.Equal(t, "Todos", cfg.SharedLabel)
	assert.Equal(t, 18500.75, cfg.MortgageTotal)
	assert.InDeltaSlice(t, []float64{0.5, 0.3, 0.2}, cfg.Splits, 1e-9)
	assert.Equal(t, "Gastos", cfg.TableName)
}

func TestLoadEvenSplitForThreePeople(t *testing.T) {
	t.Setenv("PEOPLE", "A,B,C")
	t.Setenv("SPLITS", "")

	cfg, err := Load()
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{1.0 / 3, 1.0 / 3, 1.0 / 3}, cfg.Splits, 1e-9)
}

func TestLoadSplitCountMismatch(t *testing.T) {
	t.Setenv("PEOPLE", "Ana,Luis")
	t.Setenv("SPLITS", "50,30,20")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "SPLITS")
}

func TestLoadSplitsMustSumToOne(t *testing.T) {
	t.Setenv("PEOPLE", "Ana,Luis")
	t.Setenv("SPLITS", "60,60")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "sum to 100%")
}

func TestLoadInvalidNumbers(t *testing.T) {
	t.Setenv("PEOPLE", "Ana,Luis")
	t.Setenv("SPLITS", "fifty,50")
	_, err := Load()
	require.Error(t, err)

	t.Setenv("SPLITS", "50,50")
	t.Setenv("MORTGAGE_TOTAL", "mucho")
	_, err = Load()
	require.Error(t, err)
}

func TestSplitFor(t *testing.T) {
	cfg := &Config{
		People: []string{"Ana", "Luis"},
		Splits: []float64{0.6, 0.4},
	}
	assert.Equal(t, 0.6, cfg.SplitFor("Ana"))
	assert.Equal(t, 0.4, cfg.SplitFor("Luis"))
	assert.Equal(t, 0.0, cfg.SplitFor("Nadie"))
}
