package dicomvol

import (
	"encoding/binary"
	"testing"

	"github.com/cocosip/go-dicom/pkg/imaging/imagetypes"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cocosip/go-wavelet3d/volume"
)

// stackPixelData is a minimal in-memory PixelData for tests.
type stackPixelData struct {
	frames    [][]byte
	frameInfo *imagetypes.FrameInfo
}

func newStackPixelData(info *imagetypes.FrameInfo) *stackPixelData {
	return &stackPixelData{frameInfo: info}
}

func (p *stackPixelData) GetFrame(frameIndex int) ([]byte, error) {
	if frameIndex < 0 || frameIndex >= len(p.frames) {
		return nil, nil
	}
	return p.frames[frameIndex], nil
}

func (p *stackPixelData) AddFrame(frameData []byte) error {
	p.frames = append(p.frames, frameData)
	return nil
}

func (p *stackPixelData) FrameCount() int {
	return len(p.frames)
}

func (p *stackPixelData) GetFrameInfo() *imagetypes.FrameInfo {
	return p.frameInfo
}

func (p *stackPixelData) IsEncapsulated() bool {
	return false
}

func TestFromPixelData8Bit(t *testing.T) {
	src := newStackPixelData(&imagetypes.FrameInfo{
		Width:           2,
		Height:          2,
		BitsAllocated:   8,
		BitsStored:      8,
		HighBit:         7,
		SamplesPerPixel: 1,
	})
	require.NoError(t, src.AddFrame([]byte{0, 1, 2, 3}))
	require.NoError(t, src.AddFrame([]byte{10, 11, 12, 13}))

	v, err := FromPixelData(src)
	require.NoError(t, err)

	dx, dy, dz := v.Dims()
	assert.Equal(t, [3]int{2, 2, 2}, [3]int{dx, dy, dz})
	assert.Equal(t, []float64{0, 1, 2, 3, 10, 11, 12, 13}, v.ViewData())
}

func TestFromPixelData16BitSigned(t *testing.T) {
	src := newStackPixelData(&imagetypes.FrameInfo{
		Width:               2,
		Height:              1,
		BitsAllocated:       16,
		BitsStored:          16,
		HighBit:             15,
		SamplesPerPixel:     1,
		PixelRepresentation: 1,
	})
	raw := make([]byte, 4)
	var negValue int16 = -300
	binary.LittleEndian.PutUint16(raw[0:2], uint16(negValue))
	binary.LittleEndian.PutUint16(raw[2:4], 1024)
	require.NoError(t, src.AddFrame(raw))

	v, err := FromPixelData(src)
	require.NoError(t, err)
	assert.Equal(t, []float64{-300, 1024}, v.ViewData())
}

func TestFromPixelDataRejectsMultiComponent(t *testing.T) {
	src := newStackPixelData(&imagetypes.FrameInfo{
		Width:           2,
		Height:          2,
		BitsAllocated:   8,
		BitsStored:      8,
		HighBit:         7,
		SamplesPerPixel: 3,
	})
	_, err := FromPixelData(src)
	assert.Error(t, err)
}

func TestWriteFramesRoundsAndClamps(t *testing.T) {
	v := volume.New()
	require.NoError(t, v.TakeData([]float64{-4.2, 0.4, 254.5, 300}, 2, 2, 1))

	dst := newStackPixelData(&imagetypes.FrameInfo{
		Width:           2,
		Height:          2,
		BitsAllocated:   8,
		BitsStored:      8,
		HighBit:         7,
		SamplesPerPixel: 1,
	})
	require.NoError(t, WriteFrames(v, dst))
	require.Equal(t, 1, dst.FrameCount())

	raw, err := dst.GetFrame(0)
	require.NoError(t, err)
	assert.Equal(t, []byte{0, 0, 255, 255}, raw)
}

func TestStackTransformRoundTrip(t *testing.T) {
	const width, height, frames = 16, 8, 8

	info := &imagetypes.FrameInfo{
		Width:           width,
		Height:          height,
		BitsAllocated:   16,
		BitsStored:      12,
		HighBit:         11,
		SamplesPerPixel: 1,
	}
	src := newStackPixelData(info)
	for f := 0; f < frames; f++ {
		raw := make([]byte, 2*width*height)
		for i := 0; i < width*height; i++ {
			binary.LittleEndian.PutUint16(raw[2*i:2*i+2], uint16((i*37+f*211)%4096))
		}
		require.NoError(t, src.AddFrame(raw))
	}

	v, err := FromPixelData(src)
	require.NoError(t, err)
	original := make([]float64, len(v.ViewData()))
	copy(original, v.ViewData())

	v.DWT3DDyadic()
	v.IDWT3DDyadic()
	require.Less(t, volume.MaxError(v.ViewData(), original), 1e-10)

	dst := newStackPixelData(info)
	require.NoError(t, WriteFrames(v, dst))
	require.Equal(t, frames, dst.FrameCount())

	for f := 0; f < frames; f++ {
		want, err := src.GetFrame(f)
		require.NoError(t, err)
		got, err := dst.GetFrame(f)
		require.NoError(t, err)
		assert.Equal(t, want, got, "frame %d", f)
	}
}

func TestWriteFramesShapeMismatch(t *testing.T) {
	v := volume.New()
	require.NoError(t, v.TakeData(make([]float64, 12), 4, 3, 1))

	dst := newStackPixelData(&imagetypes.FrameInfo{
		Width:           3,
		Height:          4,
		BitsAllocated:   8,
		BitsStored:      8,
		HighBit:         7,
		SamplesPerPixel: 1,
	})
	assert.Error(t, WriteFrames(v, dst))
}
