package coefficient

import (
	"fmt"
	"strings"

	"github.com/OffchainLabs/go-bitfield"
)

// BinaryString is an immutable sequence of bits. Flip returns a new value
// and never touches the receiver, so a BinaryString can be shared freely.
type BinaryString struct {
	bits bitfield.Bitlist
}

// Parse converts a string over {'0','1'} into a BinaryString.
// Any other byte yields ErrInvalidSymbol. The empty string is valid.
func Parse(s string) (BinaryString, error) {
	bits := bitfield.NewBitlist(uint64(len(s)))
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '0':
			// bits start cleared
		case '1':
			bits.SetBitAt(uint64(i), true)
		default:
			return BinaryString{}, fmt.Errorf("%w: %q at index %d", ErrInvalidSymbol, s[i], i)
		}
	}

	return BinaryString{bits: bits}, nil
}

// MustParse is like Parse but panics on invalid input. Meant for literals.
func MustParse(s string) BinaryString {
	b, err := Parse(s)
	if err != nil {
		panic(err)
	}

	return b
}

// Len returns the number of bits.
func (b BinaryString) Len() int {
	if len(b.bits) == 0 {
		return 0
	}

	return int(b.bits.Len())
}

// At reports whether bit i is set. i must be in [0, Len()).
func (b BinaryString) At(i int) bool {
	return b.bits.BitAt(uint64(i))
}

// Flip returns a copy of b with every bit in [start, end] inverted.
//
// Complexity: O(n).
func (b BinaryString) Flip(start, end int) (BinaryString, error) {
	n := b.Len()
	if start < 0 || start > end || end >= n {
		return BinaryString{}, fmt.Errorf("%w: [%d, %d] for length %d", ErrFlipOutOfRange, start, end, n)
	}
	cp := make(bitfield.Bitlist, len(b.bits))
	copy(cp, b.bits)
	for i := start; i <= end; i++ {
		cp.SetBitAt(uint64(i), !cp.BitAt(uint64(i)))
	}

	return BinaryString{bits: cp}, nil
}

// String renders the bits as '0' and '1'.
func (b BinaryString) String() string {
	n := b.Len()
	var sb strings.Builder
	sb.Grow(n)
	for i := 0; i < n; i++ {
		if b.At(i) {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}

	return sb.String()
}
