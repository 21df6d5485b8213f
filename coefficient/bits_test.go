package coefficient_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hackpuzzles/coefficient"
)

// TestParse_RoundTrip checks that valid inputs render back unchanged.
func TestParse_RoundTrip(t *testing.T) {
	for _, s := range []string{"", "0", "1", "110100100", "0000000011111111", "101"} {
		b, err := coefficient.Parse(s)
		require.NoError(t, err, "Parse(%q)", s)
		assert.Equal(t, len(s), b.Len(), "Len(%q)", s)
		assert.Equal(t, s, b.String())
	}
}

// TestParse_InvalidSymbol rejects anything outside {'0','1'}.
func TestParse_InvalidSymbol(t *testing.T) {
	for _, s := range []string{"2", "10a1", " 01", "01\n"} {
		_, err := coefficient.Parse(s)
		assert.ErrorIs(t, err, coefficient.ErrInvalidSymbol, "Parse(%q)", s)
	}
	_, err := coefficient.Estimate("10x", 1)
	assert.ErrorIs(t, err, coefficient.ErrInvalidSymbol)
	_, err = coefficient.BruteForce("10x", 1)
	assert.ErrorIs(t, err, coefficient.ErrInvalidSymbol)
}

// TestFlip_ReturnsCopy verifies the receiver is never mutated.
func TestFlip_ReturnsCopy(t *testing.T) {
	b := coefficient.MustParse("110100")
	f, err := b.Flip(1, 3)
	require.NoError(t, err)
	assert.Equal(t, "101010", f.String())
	assert.Equal(t, "110100", b.String(), "original must stay intact")

	whole, err := b.Flip(0, 5)
	require.NoError(t, err)
	assert.Equal(t, "001011", whole.String())
}

// TestFlip_OutOfRange covers every invalid bound.
func TestFlip_OutOfRange(t *testing.T) {
	b := coefficient.MustParse("0101")
	for _, r := range [][2]int{{-1, 2}, {2, 1}, {0, 4}, {4, 4}} {
		_, err := b.Flip(r[0], r[1])
		assert.ErrorIs(t, err, coefficient.ErrFlipOutOfRange, "Flip(%d, %d)", r[0], r[1])
	}
	_, err := coefficient.MustParse("").Flip(0, 0)
	assert.ErrorIs(t, err, coefficient.ErrFlipOutOfRange)
}

// TestMustParse_Panics guards the literal helper.
func TestMustParse_Panics(t *testing.T) {
	assert.Panics(t, func() { coefficient.MustParse("012") })
}
