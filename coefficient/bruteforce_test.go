package coefficient_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hackpuzzles/coefficient"
)

// TestBruteForce_BaseCases covers the recursion floor.
func TestBruteForce_BaseCases(t *testing.T) {
	for p := 0; p <= 5; p++ {
		v, err := coefficient.BruteForce("", p)
		require.NoError(t, err)
		assert.Zero(t, v, "empty input, p=%d", p)
	}
	cases := map[string]int{"0": 0, "01": 0, "010": 1, "0000": 0, "110100100": 5}
	for in, want := range cases {
		v, err := coefficient.BruteForce(in, 0)
		require.NoError(t, err)
		assert.Equal(t, want, v, "BruteForce(%q, 0)", in)
	}
}

// TestBruteForce_Small pins a few flip results.
func TestBruteForce_Small(t *testing.T) {
	cases := []struct {
		in   string
		p    int
		want int
	}{
		{"010", 1, 0},
		{"1011010", 1, 2},
		{"1011010", 2, 0},
		{"110100100", 1, 2},
		{"01111101000001", 1, 2},
	}
	for _, tc := range cases {
		v, err := coefficient.BruteForce(tc.in, tc.p)
		require.NoError(t, err)
		assert.Equal(t, tc.want, v, "BruteForce(%q, %d)", tc.in, tc.p)
	}
}

// TestAgreement_Exhaustive compares the estimator with the oracle on every
// string up to length 8 for p ≤ 2, and up to length 5 for p = 3.
func TestAgreement_Exhaustive(t *testing.T) {
	maxLen := 8
	if testing.Short() {
		maxLen = 6
	}
	for n := 0; n <= maxLen; n++ {
		for _, s := range allStrings(n) {
			for p := 0; p <= 2; p++ {
				assertAgree(t, s, p)
			}
			if n <= 5 {
				assertAgree(t, s, 3)
			}
		}
	}
}

// TestAgreement_Random16 samples 16-bit strings, the largest size the oracle
// handles comfortably at p = 2.
func TestAgreement_Random16(t *testing.T) {
	cases := 40
	if testing.Short() {
		cases = 5
	}
	rng := rand.New(rand.NewSource(16))
	for i := 0; i < cases; i++ {
		s := randomString(rng, 16)
		assertAgree(t, s, 1)
		assertAgree(t, s, 2)
	}
}

func assertAgree(t *testing.T, s string, p int) {
	t.Helper()
	got, err := coefficient.Estimate(s, p)
	require.NoError(t, err)
	want, err := coefficient.BruteForce(s, p)
	require.NoError(t, err)
	assert.Equal(t, want, got, "Estimate(%q, %d)", s, p)
}
