package volume

import (
	"golang.org/x/exp/constraints"
)

// Volume owns a flat, contiguous sample buffer of shape (dx, dy, dz) laid
// out x-major (x fastest, then y, then z), together with the scratch space
// its transforms use. A 2D grid is expressed as (dx, dy, 1) and a 1D signal
// as (dx, 1, 1).
//
// The buffer belongs exclusively to the Volume between ingest and release.
// A Volume is not safe for concurrent use; distinct Volumes are independent.
type Volume struct {
	data       []float64
	dx, dy, dz int

	// lift holds one pencil plus a working copy for a single lifting
	// invocation: 2*max(dx, dy, dz) samples, grown on ingest, never shrunk.
	lift []float64

	// plane materializes whole planes for the wavelet-packet y and z
	// passes; allocated lazily on the first packet call.
	plane []float64
}

// New returns an empty Volume. Load samples with CopyData or TakeData.
func New() *Volume {
	return &Volume{}
}

// CopyData loads a typed sample buffer into v, value-converting every
// sample to float64. Any previous contents, shape, and scratch sizing are
// replaced. Returns ErrWrongDims when len(src) != dx*dy*dz.
func CopyData[T constraints.Integer | constraints.Float](v *Volume, src []T, dx, dy, dz int) error {
	if err := checkDims(len(src), dx, dy, dz); err != nil {
		return err
	}
	if cap(v.data) < len(src) {
		v.data = make([]float64, len(src))
	} else {
		v.data = v.data[:len(src)]
	}
	for i, s := range src {
		v.data[i] = float64(s)
	}
	v.install(dx, dy, dz)
	return nil
}

// TakeData adopts buf without copying; the caller gives up ownership until
// ReleaseData. Returns ErrWrongDims when len(buf) != dx*dy*dz.
func (v *Volume) TakeData(buf []float64, dx, dy, dz int) error {
	if err := checkDims(len(buf), dx, dy, dz); err != nil {
		return err
	}
	v.data = buf
	v.install(dx, dy, dz)
	return nil
}

// ViewData returns the current sample buffer. The slice remains owned by
// the Volume and must not be modified by the caller.
func (v *Volume) ViewData() []float64 {
	return v.data
}

// ReleaseData hands the sample buffer back to the caller and clears the
// shape and scratch state, leaving v empty.
func (v *Volume) ReleaseData() []float64 {
	buf := v.data
	v.data = nil
	v.dx, v.dy, v.dz = 0, 0, 0
	v.lift = nil
	v.plane = nil
	return buf
}

// Dims returns the current shape.
func (v *Volume) Dims() (dx, dy, dz int) {
	return v.dx, v.dy, v.dz
}

func (v *Volume) install(dx, dy, dz int) {
	v.dx, v.dy, v.dz = dx, dy, dz
	need := 2 * max(dx, dy, dz)
	if cap(v.lift) < need {
		v.lift = make([]float64, need)
	} else {
		v.lift = v.lift[:need]
	}
}

// planeScratch sizes the plane buffer for packet passes on first use. The
// z pass materializes an x-z plane, so the buffer covers the larger of the
// two non-x extents.
func (v *Volume) planeScratch() []float64 {
	need := v.dx * max(v.dy, v.dz)
	if cap(v.plane) < need {
		v.plane = make([]float64, need)
	}
	return v.plane[:need]
}

func checkDims(n, dx, dy, dz int) error {
	if dx <= 0 || dy <= 0 || dz <= 0 || n != dx*dy*dz {
		return ErrWrongDims
	}
	return nil
}
