package unitz

import (
	"math"
	"strconv"
	"strings"
)

// Epsilon is the tolerance used for zero, equality and fraction snapping.
const Epsilon = 0.00001

func isZero(x float64) bool { return math.Abs(x) < Epsilon }

func isEqual(a, b float64) bool { return math.Abs(a-b) < Epsilon }

func isFinite(x float64) bool { return !math.IsNaN(x) && !math.IsInf(x, 0) }

func isWhole(x float64) bool { return isFinite(x) && math.Trunc(x) == x }

func isSingular(x float64) bool { return isFinite(x) && math.Abs(math.Abs(x)-1) < Epsilon }

func sign(x float64) int {
	switch {
	case x < 0:
		return -1
	case x > 0:
		return 1
	}
	return 0
}

// gcd returns the greatest common divisor of two whole numbers, or 1 when
// either is fractional.
func gcd(a, b float64) float64 {
	if !isWhole(a) || !isWhole(b) {
		return 1
	}
	a, b = math.Abs(a), math.Abs(b)
	for b != 0 {
		a, b = b, math.Mod(a, b)
	}
	if a == 0 {
		return 1
	}
	return a
}

// formatNumber renders x the way most programming environments print a
// double: shortest round-trip digits, switching to exponent notation for
// very large and very small magnitudes.
func formatNumber(x float64) string {
	switch {
	case math.IsNaN(x):
		return "NaN"
	case math.IsInf(x, 1):
		return "Infinity"
	case math.IsInf(x, -1):
		return "-Infinity"
	case x == 0:
		return "0"
	}
	abs := math.Abs(x)
	if abs >= 1e21 || abs < 1e-6 {
		s := strconv.FormatFloat(x, 'e', -1, 64)
		mant, exp, _ := strings.Cut(s, "e")
		expSign := exp[:1]
		exp = strings.TrimLeft(exp[1:], "0")
		return mant + "e" + expSign + exp
	}
	return strconv.FormatFloat(x, 'f', -1, 64)
}

// formatFixed renders x with at most digits decimal places, dropping
// trailing zeros and a trailing decimal point.
func formatFixed(x float64, digits int) string {
	s := strconv.FormatFloat(x, 'f', digits, 64)
	if strings.Contains(s, ".") {
		s = strings.TrimRight(s, "0")
		s = strings.TrimSuffix(s, ".")
	}
	if s == "-0" {
		s = "0"
	}
	return s
}
