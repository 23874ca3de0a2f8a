package wavelet

import "math/bits"

// maxDyadicLevels caps the dyadic schedule regardless of axis length.
const maxDyadicLevels = 6

// DyadicLevels returns the number of dyadic decomposition levels for an
// axis of n samples: min(6, floor(log2(n/8))+1). Axes shorter than eight
// samples contribute no levels.
func DyadicLevels(n int) int {
	if n < 8 {
		return 0
	}
	levels := bits.Len(uint(n)) - 3
	if levels > maxDyadicLevels {
		levels = maxDyadicLevels
	}
	return levels
}

// PacketPartitions returns how many times an axis of n samples halves
// before the remainder is a single sample.
func PacketPartitions(n int) int {
	count := 0
	for n > 1 {
		n -= n / 2
		count++
	}
	return count
}

// LowSize returns the low-pass length after one split of an n-sample axis.
func LowSize(n int) int {
	return (n + 1) / 2
}

// SubbandLengths returns the axis decomposition (a_k, d_k, ..., d_1) after
// the given number of splits of an n-sample axis: the final approximation
// length followed by the detail lengths from coarsest to finest.
func SubbandLengths(n, levels int) []int {
	details := make([]int, levels)
	a := n
	for i := 0; i < levels; i++ {
		d := a / 2
		details[i] = d
		a -= d
	}
	out := make([]int, 0, levels+1)
	out = append(out, a)
	for i := levels - 1; i >= 0; i-- {
		out = append(out, details[i])
	}
	return out
}
