package unitz

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatNumber(t *testing.T) {
	// variables, so the sum is rounded at run time
	tenth, fifth := 0.1, 0.2
	tests := []struct {
		in   float64
		want string
	}{
		{0, "0"},
		{1, "1"},
		{-2.5, "-2.5"},
		{tenth + fifth, "0.30000000000000004"},
		{1e21, "1e+21"},
		{1.5e-7, "1.5e-7"},
		{123456789, "123456789"},
		{math.NaN(), "NaN"},
		{math.Inf(1), "Infinity"},
		{math.Inf(-1), "-Infinity"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, formatNumber(tt.in))
		})
	}
}

func TestFormatFixed(t *testing.T) {
	tests := []struct {
		in     float64
		digits int
		want   string
	}{
		{6.4000001, 2, "6.4"},
		{100, 2, "100"},
		{100, 0, "100"},
		{0.6520385, 1, "0.7"},
		{-0.01, 1, "0"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, formatFixed(tt.in, tt.digits), "%v to %d places", tt.in, tt.digits)
	}
}

func TestGCD(t *testing.T) {
	assert.Equal(t, 4.0, gcd(8, 12))
	assert.Equal(t, 4.0, gcd(-8, 12))
	assert.Equal(t, 1.0, gcd(0, 0))
	assert.Equal(t, 5.0, gcd(0, 5))
	assert.Equal(t, 1.0, gcd(1.5, 3))
}

func TestPredicates(t *testing.T) {
	assert.True(t, isZero(0.000001))
	assert.False(t, isZero(0.0001))
	assert.True(t, isEqual(1, 1.000001))
	assert.True(t, isWhole(-3))
	assert.False(t, isWhole(math.Inf(1)))
	assert.True(t, isSingular(-1))
	assert.False(t, isSingular(2))
	assert.Equal(t, -1, sign(-0.5))
	assert.Equal(t, 0, sign(0))
}
