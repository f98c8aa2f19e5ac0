package mathx

import "golang.org/x/exp/constraints"

// LowMask returns a value with the low bits bits set.
// bits >= the width of T yields all ones.
func LowMask[T constraints.Unsigned](bits uint8) T {
	var zero T
	all := ^zero
	if int(bits) >= bitWidth(all) {
		return all
	}
	return ^(all << bits)
}

func bitWidth[T constraints.Unsigned](all T) int {
	n := 0
	for all != 0 {
		all >>= 1
		n++
	}
	return n
}
