package wavelet

// gather copies src into dst with the even-indexed samples packed into the
// low half and the odd-indexed samples into the high half, preserving
// relative order. The split point (len(src)+1)/2 covers both parities.
func gather(dst, src []float64) {
	half := (len(src) + 1) / 2
	for i := 0; i < half; i++ {
		dst[i] = src[2*i]
	}
	for i := half; i < len(src); i++ {
		dst[i] = src[2*(i-half)+1]
	}
}

// scatter is the exact inverse of gather: the low half of src returns to
// the even indices of dst, the high half to the odd indices.
func scatter(dst, src []float64) {
	half := (len(src) + 1) / 2
	for i := 0; i < half; i++ {
		dst[2*i] = src[i]
	}
	for i := half; i < len(src); i++ {
		dst[2*(i-half)+1] = src[i]
	}
}
