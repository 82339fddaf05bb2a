// Package config loads the shared-expense settings used by the summary
// sheet: who splits the card, what the split is, and the monthly mortgage
// amount folded into each person's total.
package config

import (
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// splitEpsilon is the slack allowed when checking that splits sum to 1.
const splitEpsilon = 1e-6

// Config holds the expense-splitting configuration.
type Config struct {
	// People are the labels that can be assigned in the "De quien" column.
	People []string

	// SharedLabel marks an expense split between everyone.
	SharedLabel string

	// MortgageTotal is the monthly mortgage amount, divided by Splits.
	MortgageTotal float64

	// Splits holds each person's fraction, aligned with People. The
	// fractions sum to 1.
	Splits []float64

	// TableName is the Excel named table the summary formulas reference.
	// The user creates it over the consolidated sheet after import.
	TableName string
}

// Load reads configuration from environment variables, with a .env file in
// the working directory loaded first when present.
//
// Variables:
//
//	PEOPLE         comma-separated person labels (default "Person1,Person2")
//	SHARED_LABEL   label for shared expenses (default "Los 2")
//	MORTGAGE_TOTAL monthly mortgage amount (default 26000)
//	SPLITS         comma-separated percentages matching PEOPLE (default even)
//	TABLE_NAME     named table for summary formulas (default "Movimientos")
func Load() (*Config, error) {
	// Missing .env is fine; real environment variables still apply.
	_ = godotenv.Load()

	cfg := &Config{
		People:      splitList(getEnv("PEOPLE", "Person1,Person2")),
		SharedLabel: getEnv("SHARED_LABEL", "Los 2"),
		TableName:   getEnv("TABLE_NAME", "Movimientos"),
	}
	if len(cfg.People) == 0 {
		return nil, fmt.Errorf("PEOPLE must name at least one person")
	}

	mortgage, err := strconv.ParseFloat(getEnv("MORTGAGE_TOTAL", "26000"), 64)
	if err != nil {
		return nil, fmt.Errorf("invalid MORTGAGE_TOTAL: %w", err)
	}
	cfg.MortgageTotal = mortgage

	splits, err := parseSplits(os.Getenv("SPLITS"), len(cfg.People))
	if err != nil {
		return nil, err
	}
	cfg.Splits = splits

	return cfg, nil
}

// SplitFor returns the configured fraction for a person, or 0 when the
// person is not configured.
func (c *Config) SplitFor(person string) float64 {
	for i, p := range c.People {
		if p == person {
			return c.Splits[i]
		}
	}
	return 0
}

// parseSplits turns a comma-separated percentage list into fractions.
// An empty value yields an even split.
func parseSplits(raw string, people int) ([]float64, error) {
	if strings.TrimSpace(raw) == "" {
		out := make([]float64, people)
		for i := range out {
			out[i] = 1.0 / float64(people)
		}
		return out, nil
	}

	parts := splitList(raw)
	if len(parts) != people {
		return nil, fmt.Errorf("SPLITS lists %d percentages for %d people", len(parts), people)
	}

	out := make([]float64, len(parts))
	sum := 0.0
	for i, p := range parts {
		pct, err := strconv.ParseFloat(p, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid SPLITS entry %q: %w", p, err)
		}
		out[i] = pct / 100.0
		sum += out[i]
	}
	if math.Abs(sum-1.0) > splitEpsilon {
		return nil, fmt.Errorf("SPLITS must sum to 100%%, got %g%%", sum*100)
	}
	return out, nil
}

func splitList(raw string) []string {
	var out []string
	for _, p := range strings.Split(raw, ",") {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
