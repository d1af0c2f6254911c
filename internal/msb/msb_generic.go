//go:build (!amd64 && !arm64 && !riscv64) || purego

package msb

// EvenIndex returns the index of the highest set bit of val rounded down
// to an even number. val must be non-zero.
//
// This is the portable bit-halving search: each step tests whether the
// upper half of the remaining window holds a set bit and, if so, masks the
// lower half away. Window widths of 16, 8, 4 and 2 bits accumulate an even
// index directly, so no final parity correction is needed.
func EvenIndex(val uint32) int {
	idx := 0

	if val&0xFFFF0000 != 0 {
		val &= 0xFFFF0000
		idx += 16
	}

	if val&0xFF00FF00 != 0 {
		val &= 0xFF00FF00
		idx += 8
	}

	if val&0xF0F0F0F0 != 0 {
		val &= 0xF0F0F0F0
		idx += 4
	}

	if val&0xCCCCCCCC != 0 {
		idx += 2
	}

	return idx
}
