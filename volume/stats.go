package volume

import "math"

// MaxError returns the largest per-sample deviation between got and want,
// normalized per sample by max(|want|, 1). Slices of different lengths
// return +Inf.
func MaxError(got, want []float64) float64 {
	if len(got) != len(want) {
		return math.Inf(1)
	}
	maxErr := 0.0
	for i := range got {
		scale := math.Abs(want[i])
		if scale < 1 {
			scale = 1
		}
		if e := math.Abs(got[i]-want[i]) / scale; e > maxErr {
			maxErr = e
		}
	}
	return maxErr
}

// CornerEnergy returns the share of total signal energy held by the
// (cx, cy, cz) prefix box of v. After analysis this measures how much of
// the signal the low-pass corner has captured.
func (v *Volume) CornerEnergy(cx, cy, cz int) float64 {
	total := 0.0
	corner := 0.0
	for z := 0; z < v.dz; z++ {
		for y := 0; y < v.dy; y++ {
			row := v.data[z*v.dx*v.dy+y*v.dx:]
			for x := 0; x < v.dx; x++ {
				e := row[x] * row[x]
				total += e
				if x < cx && y < cy && z < cz {
					corner += e
				}
			}
		}
	}
	if total == 0 {
		return 0
	}
	return corner / total
}
