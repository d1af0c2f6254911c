//go:build (amd64 || arm64 || riscv64) && !purego

package msb

import "math/bits"

// EvenIndex returns the index of the highest set bit of val rounded down
// to an even number. val must be non-zero.
func EvenIndex(val uint32) int {
	return (bits.Len32(val) - 1) &^ 1
}
