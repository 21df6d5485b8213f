package coefficient_test

import "math/rand"

// randomString draws n uniform bits from rng.
func randomString(rng *rand.Rand, n int) string {
	buf := make([]byte, n)
	for i := range buf {
		buf[i] = byte('0' + rng.Intn(2))
	}

	return string(buf)
}

// allStrings enumerates every binary string of length n in numeric order.
func allStrings(n int) []string {
	out := make([]string, 0, 1<<n)
	for v := 0; v < 1<<n; v++ {
		buf := make([]byte, n)
		for i := 0; i < n; i++ {
			if v&(1<<(n-1-i)) != 0 {
				buf[i] = '1'
			} else {
				buf[i] = '0'
			}
		}
		out = append(out, string(buf))
	}

	return out
}
