package render

import (
	"image"

	"softpt/internal/mathutil"
)

// FrameBuffer holds linear radiance as a flat RGB slice for cache locality.
type FrameBuffer struct {
	Width  int
	Height int
	Pix    []float64 // RGB interleaved, len = W*H*3
}

// NewFrameBuffer allocates a zeroed radiance buffer.
func NewFrameBuffer(w, h int) *FrameBuffer {
	return &FrameBuffer{
		Width:  w,
		Height: h,
		Pix:    make([]float64, w*h*3),
	}
}

// Set stores the radiance for pixel (x, y).
func (fb *FrameBuffer) Set(x, y int, c mathutil.Vec3) {
	i := (y*fb.Width + x) * 3
	fb.Pix[i] = c[0]
	fb.Pix[i+1] = c[1]
	fb.Pix[i+2] = c[2]
}

// At returns the radiance stored for pixel (x, y).
func (fb *FrameBuffer) At(x, y int) mathutil.Vec3 {
	i := (y*fb.Width + x) * 3
	return mathutil.Vec3{fb.Pix[i], fb.Pix[i+1], fb.Pix[i+2]}
}

// RGB8 tone-maps the buffer to 8-bit RGB triples: each channel is
// saturated to [0,1] and scaled to 255. NaN saturates to 0 (black).
func (fb *FrameBuffer) RGB8() []uint8 {
	out := make([]uint8, len(fb.Pix))
	for i, v := range fb.Pix {
		s := mathutil.Saturate(v)
		if s != s { // NaN
			s = 0
		}
		out[i] = uint8(s * 255.0)
	}
	return out
}

// ToNRGBA converts the tone-mapped buffer to an opaque NRGBA image.
func (fb *FrameBuffer) ToNRGBA() *image.NRGBA {
	rgb := fb.RGB8()
	img := image.NewNRGBA(image.Rect(0, 0, fb.Width, fb.Height))
	for p := 0; p < fb.Width*fb.Height; p++ {
		img.Pix[p*4] = rgb[p*3]
		img.Pix[p*4+1] = rgb[p*3+1]
		img.Pix[p*4+2] = rgb[p*3+2]
		img.Pix[p*4+3] = 255
	}
	return img
}
