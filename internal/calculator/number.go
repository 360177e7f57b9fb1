package calculator

import (
	"errors"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// Results whose text carries more than this many characters from the decimal
// point onward are rounded to roundDigits fractional digits.
const (
	maxFractionText = 10
	roundDigits     = 8
)

var numericPrefix = regexp.MustCompile(`^[+-]?(?:Infinity|\d+\.?\d*(?:[eE][+-]?\d+)?|\.\d+(?:[eE][+-]?\d+)?)`)

// parseNumber reads the longest numeric prefix of s. Text with no numeric
// prefix, such as the error token, yields NaN.
func parseNumber(s string) float64 {
	m := numericPrefix.FindString(strings.TrimSpace(s))
	if m == "" {
		return math.NaN()
	}
	switch strings.TrimLeft(m, "+-") {
	case "Infinity":
		if strings.HasPrefix(m, "-") {
			return math.Inf(-1)
		}
		return math.Inf(1)
	}
	v, err := strconv.ParseFloat(m, 64)
	if err != nil {
		// Out of range literals still carry their sign.
		if errors.Is(err, strconv.ErrRange) {
			return v
		}
		return math.NaN()
	}
	return v
}

// formatNumber renders v with the shortest round-trip digits, switching to
// exponent form ("1e+21", "1.5e-7") outside [1e-6, 1e21).
func formatNumber(v float64) string {
	switch {
	case math.IsNaN(v):
		return "NaN"
	case math.IsInf(v, 1):
		return "Infinity"
	case math.IsInf(v, -1):
		return "-Infinity"
	case v == 0:
		return "0"
	}

	abs := math.Abs(v)
	if abs >= 1e21 || abs < 1e-6 {
		s := strconv.FormatFloat(v, 'e', -1, 64)
		mant, exp, _ := strings.Cut(s, "e")
		sign := exp[:1]
		digits := strings.TrimLeft(exp[1:], "0")
		if digits == "" {
			digits = "0"
		}
		return mant + "e" + sign + digits
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// roundResult applies the precision rule to a freshly computed value.
func roundResult(v float64) float64 {
	text := formatNumber(v)
	idx := strings.Index(text, ".")
	if idx == -1 || len(text)-idx <= maxFractionText {
		return v
	}
	rounded, err := strconv.ParseFloat(strconv.FormatFloat(v, 'f', roundDigits, 64), 64)
	if err != nil {
		return v
	}
	return rounded
}
