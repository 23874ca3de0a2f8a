package wavelet

// ForwardPlane applies one analysis level to the (lx, ly) corner of a
// plane whose rows sit stride samples apart in data: every row along x
// first, then every column along y. Columns move through scratch, which
// must hold at least 2*max(lx, ly) samples.
func ForwardPlane(data []float64, lx, ly, stride int, scratch []float64) {
	if lx > 1 {
		for y := 0; y < ly; y++ {
			Forward1D(data[y*stride:y*stride+lx], scratch)
		}
	}
	if ly > 1 {
		for x := 0; x < lx; x++ {
			forwardPencil(data, x, stride, ly, scratch)
		}
	}
}

// InversePlane reverses ForwardPlane: columns first, then rows.
func InversePlane(data []float64, lx, ly, stride int, scratch []float64) {
	if ly > 1 {
		for x := 0; x < lx; x++ {
			inversePencil(data, x, stride, ly, scratch)
		}
	}
	if lx > 1 {
		for y := 0; y < ly; y++ {
			Inverse1D(data[y*stride:y*stride+lx], scratch)
		}
	}
}
