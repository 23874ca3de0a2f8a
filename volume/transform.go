package volume

import (
	"github.com/cocosip/go-wavelet3d/wavelet"
)

// Transform methods assume a loaded buffer whose length matches the shape;
// calling them on an empty Volume is a contract violation, not a reported
// error. All transforms run in place and leave shape and length unchanged.

// DWT1D runs the full dyadic analysis schedule along the x axis.
func (v *Volume) DWT1D() {
	lx := v.dx
	for level := 0; level < wavelet.DyadicLevels(v.dx); level++ {
		wavelet.Forward1D(v.data[:lx], v.lift)
		lx = wavelet.LowSize(lx)
	}
}

// IDWT1D reverses DWT1D.
func (v *Volume) IDWT1D() {
	sizes := lowSchedule(v.dx, wavelet.DyadicLevels(v.dx))
	for level := len(sizes) - 1; level >= 0; level-- {
		wavelet.Inverse1D(v.data[:sizes[level]], v.lift)
	}
}

// DWT2D runs min(f(dx), f(dy)) dyadic levels on the shared low-pass corner
// of the (dx, dy) plane.
func (v *Volume) DWT2D() {
	levels := min(wavelet.DyadicLevels(v.dx), wavelet.DyadicLevels(v.dy))
	lx, ly := v.dx, v.dy
	for level := 0; level < levels; level++ {
		wavelet.ForwardPlane(v.data, lx, ly, v.dx, v.lift)
		lx, ly = wavelet.LowSize(lx), wavelet.LowSize(ly)
	}
}

// IDWT2D reverses DWT2D.
func (v *Volume) IDWT2D() {
	levels := min(wavelet.DyadicLevels(v.dx), wavelet.DyadicLevels(v.dy))
	xs := lowSchedule(v.dx, levels)
	ys := lowSchedule(v.dy, levels)
	for level := levels - 1; level >= 0; level-- {
		wavelet.InversePlane(v.data, xs[level], ys[level], v.dx, v.lift)
	}
}

// DWT3DDyadic runs min(f(dx), f(dy), f(dz)) dyadic levels on the shared
// low-pass corner of the volume. When the shortest axis runs out of levels
// the whole schedule stops.
func (v *Volume) DWT3DDyadic() {
	levels := dyadicLevels3(v.dx, v.dy, v.dz)
	lx, ly, lz := v.dx, v.dy, v.dz
	for level := 0; level < levels; level++ {
		wavelet.ForwardCube(v.data, lx, ly, lz, v.dx, v.dy, v.lift)
		lx, ly, lz = wavelet.LowSize(lx), wavelet.LowSize(ly), wavelet.LowSize(lz)
	}
}

// IDWT3DDyadic reverses DWT3DDyadic.
func (v *Volume) IDWT3DDyadic() {
	levels := dyadicLevels3(v.dx, v.dy, v.dz)
	xs := lowSchedule(v.dx, levels)
	ys := lowSchedule(v.dy, levels)
	zs := lowSchedule(v.dz, levels)
	for level := levels - 1; level >= 0; level-- {
		wavelet.InverseCube(v.data, xs[level], ys[level], zs[level], v.dx, v.dy, v.lift)
	}
}

// DWT3DWaveletPacket runs max-partition levels, transforming at each level
// every axis whose current length still exceeds one sample. Axis lengths
// advance independently, so long axes keep decomposing after short ones
// have retired.
func (v *Volume) DWT3DWaveletPacket() {
	plane := v.planeScratch()
	levels := packetLevels3(v.dx, v.dy, v.dz)
	lx, ly, lz := v.dx, v.dy, v.dz
	for level := 0; level < levels; level++ {
		v.packetForward(lx, ly, lz, plane)
		lx, ly, lz = wavelet.LowSize(lx), wavelet.LowSize(ly), wavelet.LowSize(lz)
	}
}

// IDWT3DWaveletPacket reverses DWT3DWaveletPacket.
func (v *Volume) IDWT3DWaveletPacket() {
	plane := v.planeScratch()
	levels := packetLevels3(v.dx, v.dy, v.dz)
	xs := lowSchedule(v.dx, levels)
	ys := lowSchedule(v.dy, levels)
	zs := lowSchedule(v.dz, levels)
	for level := levels - 1; level >= 0; level-- {
		v.packetInverse(xs[level], ys[level], zs[level], plane)
	}
}

// packetForward applies one packet analysis level to the (lx, ly, lz)
// prefix box: x rows in place, y and z through transposed planes in the
// plane scratch so every pencil lifts contiguously.
func (v *Volume) packetForward(lx, ly, lz int, plane []float64) {
	sliceStride := v.dx * v.dy
	if lx > 1 {
		for z := 0; z < lz; z++ {
			for y := 0; y < ly; y++ {
				off := z*sliceStride + y*v.dx
				wavelet.Forward1D(v.data[off:off+lx], v.lift)
			}
		}
	}
	if ly > 1 {
		for z := 0; z < lz; z++ {
			base := z * sliceStride
			for y := 0; y < ly; y++ {
				for x := 0; x < lx; x++ {
					plane[x*ly+y] = v.data[base+y*v.dx+x]
				}
			}
			for x := 0; x < lx; x++ {
				wavelet.Forward1D(plane[x*ly:x*ly+ly], v.lift)
			}
			for y := 0; y < ly; y++ {
				for x := 0; x < lx; x++ {
					v.data[base+y*v.dx+x] = plane[x*ly+y]
				}
			}
		}
	}
	if lz > 1 {
		for y := 0; y < ly; y++ {
			rowBase := y * v.dx
			for z := 0; z < lz; z++ {
				for x := 0; x < lx; x++ {
					plane[x*lz+z] = v.data[z*sliceStride+rowBase+x]
				}
			}
			for x := 0; x < lx; x++ {
				wavelet.Forward1D(plane[x*lz:x*lz+lz], v.lift)
			}
			for z := 0; z < lz; z++ {
				for x := 0; x < lx; x++ {
					v.data[z*sliceStride+rowBase+x] = plane[x*lz+z]
				}
			}
		}
	}
}

// packetInverse reverses packetForward: z, then y, then x.
func (v *Volume) packetInverse(lx, ly, lz int, plane []float64) {
	sliceStride := v.dx * v.dy
	if lz > 1 {
		for y := 0; y < ly; y++ {
			rowBase := y * v.dx
			for z := 0; z < lz; z++ {
				for x := 0; x < lx; x++ {
					plane[x*lz+z] = v.data[z*sliceStride+rowBase+x]
				}
			}
			for x := 0; x < lx; x++ {
				wavelet.Inverse1D(plane[x*lz:x*lz+lz], v.lift)
			}
			for z := 0; z < lz; z++ {
				for x := 0; x < lx; x++ {
					v.data[z*sliceStride+rowBase+x] = plane[x*lz+z]
				}
			}
		}
	}
	if ly > 1 {
		for z := 0; z < lz; z++ {
			base := z * sliceStride
			for y := 0; y < ly; y++ {
				for x := 0; x < lx; x++ {
					plane[x*ly+y] = v.data[base+y*v.dx+x]
				}
			}
			for x := 0; x < lx; x++ {
				wavelet.Inverse1D(plane[x*ly:x*ly+ly], v.lift)
			}
			for y := 0; y < ly; y++ {
				for x := 0; x < lx; x++ {
					v.data[base+y*v.dx+x] = plane[x*ly+y]
				}
			}
		}
	}
	if lx > 1 {
		for z := 0; z < lz; z++ {
			for y := 0; y < ly; y++ {
				off := z*sliceStride + y*v.dx
				wavelet.Inverse1D(v.data[off:off+lx], v.lift)
			}
		}
	}
}

// lowSchedule returns the axis length entering each analysis level:
// sizes[0] is the full length, sizes[k] the low-pass length after k splits.
// Synthesis replays the same schedule backwards.
func lowSchedule(n, levels int) []int {
	sizes := make([]int, levels)
	for k := range sizes {
		sizes[k] = n
		n = wavelet.LowSize(n)
	}
	return sizes
}

func dyadicLevels3(dx, dy, dz int) int {
	return min(wavelet.DyadicLevels(dx), wavelet.DyadicLevels(dy), wavelet.DyadicLevels(dz))
}

func packetLevels3(dx, dy, dz int) int {
	return max(wavelet.PacketPartitions(dx), wavelet.PacketPartitions(dy), wavelet.PacketPartitions(dz))
}
