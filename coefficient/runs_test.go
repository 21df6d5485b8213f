package coefficient_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/hackpuzzles/coefficient"
)

// TestCondense covers the run-length encoding and its sum invariant.
func TestCondense(t *testing.T) {
	cases := []struct {
		in   string
		want coefficient.Runs
	}{
		{"", coefficient.Runs{}},
		{"0", coefficient.Runs{1}},
		{"1111", coefficient.Runs{4}},
		{"110100100", coefficient.Runs{2, 1, 1, 2, 1, 2}},
		{"010", coefficient.Runs{1, 1, 1}},
	}
	for _, tc := range cases {
		got := coefficient.Condense(coefficient.MustParse(tc.in))
		assert.Equal(t, tc.want, got, "Condense(%q)", tc.in)
		assert.Equal(t, len(tc.in), got.Sum(), "run lengths must sum to n")
	}
}

// TestRuns_InteriorAndStrip checks edge trimming, including short inputs.
func TestRuns_InteriorAndStrip(t *testing.T) {
	r := coefficient.Runs{2, 1, 1, 2, 1, 2}
	assert.Equal(t, coefficient.Runs{1, 1, 2, 1}, r.Interior())
	assert.Equal(t, coefficient.Runs{1, 2}, r.Strip(2))
	assert.Empty(t, r.Strip(3))
	assert.Empty(t, coefficient.Runs{5, 5}.Interior())
	assert.Empty(t, coefficient.Runs{}.Interior())
}

// TestCoefficient_Direct checks the no-flip coefficient.
func TestCoefficient_Direct(t *testing.T) {
	cases := map[string]int{
		"":                  0,
		"1":                 0,
		"11":                0,
		"10":                0,
		"010":               1,
		"110100100":         5,
		"10101010101010101": 15,
	}
	for in, want := range cases {
		assert.Equal(t, want, coefficient.Coefficient(coefficient.MustParse(in)), "Coefficient(%q)", in)
	}
}
