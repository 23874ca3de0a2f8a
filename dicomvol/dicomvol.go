// Package dicomvol bridges native DICOM pixel data and wavelet volumes:
// it stacks multi-frame grayscale pixel data into a (columns, rows, frames)
// volume of doubles and writes transformed volumes back into frames.
package dicomvol

import (
	"encoding/binary"
	"fmt"

	"github.com/cocosip/go-dicom/pkg/imaging/imagetypes"

	"github.com/cocosip/go-wavelet3d/volume"
)

// FromPixelData stacks every native frame of pd into a volume, one frame
// per z slice, value-converting samples to float64. Signed data follows
// PixelRepresentation. Only single-component 8- and 16-bit native pixel
// data is supported.
func FromPixelData(pd imagetypes.PixelData) (*volume.Volume, error) {
	info := pd.GetFrameInfo()
	if info == nil {
		return nil, fmt.Errorf("pixel data has no frame info")
	}
	if pd.IsEncapsulated() {
		return nil, fmt.Errorf("encapsulated pixel data must be decoded before stacking")
	}
	if int(info.SamplesPerPixel) != 1 {
		return nil, fmt.Errorf("unsupported samples per pixel: %d", int(info.SamplesPerPixel))
	}

	width := int(info.Width)
	height := int(info.Height)
	frames := pd.FrameCount()
	if width <= 0 || height <= 0 || frames <= 0 {
		return nil, fmt.Errorf("invalid frame geometry %dx%d x %d frames", width, height, frames)
	}

	signed := info.PixelRepresentation != 0
	plane := width * height
	samples := make([]float64, 0, plane*frames)

	for f := 0; f < frames; f++ {
		raw, err := pd.GetFrame(f)
		if err != nil {
			return nil, fmt.Errorf("frame %d: %w", f, err)
		}
		switch int(info.BitsAllocated) {
		case 8:
			if len(raw) < plane {
				return nil, fmt.Errorf("frame %d: %d bytes, need %d", f, len(raw), plane)
			}
			for i := 0; i < plane; i++ {
				if signed {
					samples = append(samples, float64(int8(raw[i])))
				} else {
					samples = append(samples, float64(raw[i]))
				}
			}
		case 16:
			if len(raw) < 2*plane {
				return nil, fmt.Errorf("frame %d: %d bytes, need %d", f, len(raw), 2*plane)
			}
			for i := 0; i < plane; i++ {
				u := binary.LittleEndian.Uint16(raw[2*i : 2*i+2])
				if signed {
					samples = append(samples, float64(int16(u)))
				} else {
					samples = append(samples, float64(u))
				}
			}
		default:
			return nil, fmt.Errorf("unsupported bits allocated: %d", int(info.BitsAllocated))
		}
	}

	v := volume.New()
	if err := v.TakeData(samples, width, height, frames); err != nil {
		return nil, err
	}
	return v, nil
}

// WriteFrames rounds the samples of v back to the destination's stored bit
// depth and appends one native frame per z slice to dst. The destination
// frame info must match the volume's x and y extents.
func WriteFrames(v *volume.Volume, dst imagetypes.PixelData) error {
	info := dst.GetFrameInfo()
	if info == nil {
		return fmt.Errorf("destination pixel data has no frame info")
	}
	dx, dy, dz := v.Dims()
	if dx != int(info.Width) || dy != int(info.Height) {
		return fmt.Errorf("volume extent %dx%d does not match frame info %dx%d",
			dx, dy, int(info.Width), int(info.Height))
	}

	signed := info.PixelRepresentation != 0
	lo, hi := sampleRange(int(info.BitsStored), signed)
	data := v.ViewData()
	plane := dx * dy

	for z := 0; z < dz; z++ {
		slice := data[z*plane : (z+1)*plane]
		var raw []byte
		switch int(info.BitsAllocated) {
		case 8:
			raw = make([]byte, plane)
			for i, s := range slice {
				raw[i] = byte(clampRound(s, lo, hi))
			}
		case 16:
			raw = make([]byte, 2*plane)
			for i, s := range slice {
				binary.LittleEndian.PutUint16(raw[2*i:2*i+2], uint16(clampRound(s, lo, hi)))
			}
		default:
			return fmt.Errorf("unsupported bits allocated: %d", int(info.BitsAllocated))
		}
		if err := dst.AddFrame(raw); err != nil {
			return fmt.Errorf("frame %d: %w", z, err)
		}
	}
	return nil
}

// clampRound rounds half away from zero and clamps to [lo, hi].
func clampRound(s float64, lo, hi int) int {
	var r int
	if s >= 0 {
		r = int(s + 0.5)
	} else {
		r = int(s - 0.5)
	}
	if r < lo {
		return lo
	}
	if r > hi {
		return hi
	}
	return r
}

func sampleRange(bitsStored int, signed bool) (lo, hi int) {
	if bitsStored <= 0 || bitsStored > 16 {
		bitsStored = 16
	}
	if signed {
		return -(1 << (bitsStored - 1)), 1<<(bitsStored-1) - 1
	}
	return 0, 1<<bitsStored - 1
}
