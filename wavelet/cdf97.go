// Package wavelet implements the multi-resolution CDF 9/7 discrete wavelet
// transform the volume engine is built on: in-place lifting kernels with
// whole-sample symmetric extension, polyphase reordering, and one-level
// passes over 1D runs, 2D planes, and 3D sub-volumes.
package wavelet

import "math"

// CDF 9/7 analysis low-pass filter taps (Cohen-Daubechies-Feauveau).
const (
	h0 = 0.602949018236
	h1 = 0.266864118443
	h2 = -0.078223266529
	h3 = -0.016864118443
	h4 = 0.026748757411
)

// Lifting coefficients, derived from the filter taps in closed form at
// initialization so every decomposition level uses identical constants.
var (
	r0 = h0 - 2*h4*h1/h3
	r1 = h2 - h4 - h4*h1/h3
	s0 = h1 - h3 - h3*r0/r1
	t0 = h0 - 2*(h2-h4)

	alpha97   = h4 / h3
	beta97    = h3 / r1
	gamma97   = r1 / s0
	delta97   = s0 / t0
	epsilon97 = math.Sqrt2 * t0
)

// analyzeEven applies the four lifting steps and the scaling step to an
// even-length signal in place. Low-pass results land on even indices,
// high-pass results on odd indices. len(s) must be even and >= 2.
func analyzeEven(s []float64) {
	n := len(s)

	// Predict 1: the last odd sample reflects across the boundary.
	for i := 1; i < n-2; i += 2 {
		s[i] += alpha97 * (s[i-1] + s[i+1])
	}
	s[n-1] += 2 * alpha97 * s[n-2]

	// Update 1
	s[0] += 2 * beta97 * s[1]
	for i := 2; i < n-1; i += 2 {
		s[i] += beta97 * (s[i-1] + s[i+1])
	}

	// Predict 2
	for i := 1; i < n-2; i += 2 {
		s[i] += gamma97 * (s[i-1] + s[i+1])
	}
	s[n-1] += 2 * gamma97 * s[n-2]

	// Update 2
	s[0] += 2 * delta97 * s[1]
	for i := 2; i < n-1; i += 2 {
		s[i] += delta97 * (s[i-1] + s[i+1])
	}

	// Scale
	for i := 0; i < n; i += 2 {
		s[i] *= epsilon97
	}
	for i := 1; i < n; i += 2 {
		s[i] /= -epsilon97
	}
}

// analyzeOdd is the odd-length analysis variant: the stencil mirrors at
// both ends, so both the first and last even samples take the doubled
// boundary update. len(s) must be odd and >= 3.
func analyzeOdd(s []float64) {
	n := len(s)

	// Predict 1: every odd index has two valid even neighbors.
	for i := 1; i < n-1; i += 2 {
		s[i] += alpha97 * (s[i-1] + s[i+1])
	}

	// Update 1
	s[0] += 2 * beta97 * s[1]
	for i := 2; i < n-1; i += 2 {
		s[i] += beta97 * (s[i-1] + s[i+1])
	}
	s[n-1] += 2 * beta97 * s[n-2]

	// Predict 2
	for i := 1; i < n-1; i += 2 {
		s[i] += gamma97 * (s[i-1] + s[i+1])
	}

	// Update 2
	s[0] += 2 * delta97 * s[1]
	for i := 2; i < n-1; i += 2 {
		s[i] += delta97 * (s[i-1] + s[i+1])
	}
	s[n-1] += 2 * delta97 * s[n-2]

	// Scale
	for i := 0; i < n; i += 2 {
		s[i] *= epsilon97
	}
	for i := 1; i < n; i += 2 {
		s[i] /= -epsilon97
	}
}

// synthesizeEven inverts analyzeEven: unscale, then undo the lifting steps
// in reverse order with flipped signs. len(s) must be even and >= 2.
func synthesizeEven(s []float64) {
	n := len(s)

	// Unscale
	for i := 0; i < n; i += 2 {
		s[i] /= epsilon97
	}
	for i := 1; i < n; i += 2 {
		s[i] *= -epsilon97
	}

	// Undo update 2
	s[0] -= 2 * delta97 * s[1]
	for i := 2; i < n-1; i += 2 {
		s[i] -= delta97 * (s[i-1] + s[i+1])
	}

	// Undo predict 2
	for i := 1; i < n-2; i += 2 {
		s[i] -= gamma97 * (s[i-1] + s[i+1])
	}
	s[n-1] -= 2 * gamma97 * s[n-2]

	// Undo update 1
	s[0] -= 2 * beta97 * s[1]
	for i := 2; i < n-1; i += 2 {
		s[i] -= beta97 * (s[i-1] + s[i+1])
	}

	// Undo predict 1
	for i := 1; i < n-2; i += 2 {
		s[i] -= alpha97 * (s[i-1] + s[i+1])
	}
	s[n-1] -= 2 * alpha97 * s[n-2]
}

// synthesizeOdd inverts analyzeOdd. len(s) must be odd and >= 3.
func synthesizeOdd(s []float64) {
	n := len(s)

	// Unscale
	for i := 0; i < n; i += 2 {
		s[i] /= epsilon97
	}
	for i := 1; i < n; i += 2 {
		s[i] *= -epsilon97
	}

	// Undo update 2
	s[0] -= 2 * delta97 * s[1]
	for i := 2; i < n-1; i += 2 {
		s[i] -= delta97 * (s[i-1] + s[i+1])
	}
	s[n-1] -= 2 * delta97 * s[n-2]

	// Undo predict 2
	for i := 1; i < n-1; i += 2 {
		s[i] -= gamma97 * (s[i-1] + s[i+1])
	}

	// Undo update 1
	s[0] -= 2 * beta97 * s[1]
	for i := 2; i < n-1; i += 2 {
		s[i] -= beta97 * (s[i-1] + s[i+1])
	}
	s[n-1] -= 2 * beta97 * s[n-2]

	// Undo predict 1
	for i := 1; i < n-1; i += 2 {
		s[i] -= alpha97 * (s[i-1] + s[i+1])
	}
}
