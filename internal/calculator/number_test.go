package calculator

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

// Variables keep the sum out of exact constant arithmetic.
var pointOne, pointTwo = 0.1, 0.2

func TestParseNumber(t *testing.T) {
	tests := []struct {
		in   string
		want float64
	}{
		{"0", 0},
		{"42", 42},
		{"0.", 0},
		{"5.", 5},
		{"3.25", 3.25},
		{"-7", -7},
		{"1e+21", 1e21},
		{"1e+", 1},
		{"1.5e-7", 1.5e-7},
		{"12abc", 12},
		{"Infinity", math.Inf(1)},
		{"-Infinity", math.Inf(-1)},
		{"1e400", math.Inf(1)},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, parseNumber(tt.in))
		})
	}
}

func TestParseNumberNaN(t *testing.T) {
	for _, in := range []string{"Error", "Erro", "", "NaN", "Infinit", "-"} {
		assert.True(t, math.IsNaN(parseNumber(in)), "parseNumber(%q)", in)
	}
}

func TestFormatNumber(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "0"},
		{math.Copysign(0, -1), "0"},
		{5, "5"},
		{-5, "-5"},
		{3.5, "3.5"},
		{pointOne + pointTwo, "0.30000000000000004"},
		{123456789012, "123456789012"},
		{1e20, "100000000000000000000"},
		{1e21, "1e+21"},
		{1.5e300, "1.5e+300"},
		{0.000001, "0.000001"},
		{1.5e-7, "1.5e-7"},
		{math.Inf(1), "Infinity"},
		{math.Inf(-1), "-Infinity"},
		{math.NaN(), "NaN"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, formatNumber(tt.in))
		})
	}
}

func TestRoundResult(t *testing.T) {
	tests := []struct {
		name string
		in   float64
		want float64
	}{
		{"integer untouched", 8, 8},
		{"short fraction untouched", 0.125, 0.125},
		{"nine fraction digits untouched", 0.123456789, 0.123456789},
		{"ten fraction digits rounded", 0.1234567891, 0.12345679},
		{"float noise removed", pointOne + pointTwo, 0.3},
		{"tiny value rounds to zero", 1.23456789e-9, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, roundResult(tt.in))
		})
	}
}
