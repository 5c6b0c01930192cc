package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoundCents(t *testing.T) {
	tests := []struct {
		name     string
		in       float64
		expected float64
	}{
		{name: "zero", in: 0, expected: 0},
		{name: "arredonda para cima", in: 20.006, expected: 20.01},
		{name: "negativo", in: -9.999, expected: -10},
		{name: "erro de ponto flutuante", in: 120.0 - 100.1, expected: 19.9},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, RoundCents(tt.in))
		})
	}
}

func TestParseDate(t *testing.T) {
	date, err := ParseDate("2025-01-06")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 1, 6, 0, 0, 0, 0, time.UTC), date)

	date, err = ParseDate("")
	require.NoError(t, err)
	assert.True(t, date.IsZero())

	_, err = ParseDate("06/01/2025")
	assert.Error(t, err)
}

func TestGenerateID(t *testing.T) {
	first := GenerateID()
	second := GenerateID()

	assert.Len(t, first, 12)
	assert.NotEqual(t, first, second)
}
