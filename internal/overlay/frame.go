// Package overlay draws text and simple shapes straight into a 0x00RRGGBB
// frame buffer.
package overlay

import (
	"image"
	"image/color"
)

// Frame adapts a packed 0x00RRGGBB pixel slice to draw.Image so the image
// and font packages can draw into it.
type Frame struct {
	Pix    []uint32
	Width  int
	Height int
}

// NewFrame wraps pix, which must hold width*height pixels.
func NewFrame(pix []uint32, width, height int) *Frame {
	return &Frame{Pix: pix, Width: width, Height: height}
}

func (f *Frame) ColorModel() color.Model { return color.RGBAModel }

func (f *Frame) Bounds() image.Rectangle { return image.Rect(0, 0, f.Width, f.Height) }

func (f *Frame) At(x, y int) color.Color {
	if !image.Pt(x, y).In(f.Bounds()) {
		return color.RGBA{}
	}
	return Unpack(f.Pix[y*f.Width+x])
}

func (f *Frame) Set(x, y int, c color.Color) {
	if !image.Pt(x, y).In(f.Bounds()) {
		return
	}
	f.Pix[y*f.Width+x] = Pack(c)
}

// Fill sets every pixel in r to px.
func (f *Frame) Fill(r image.Rectangle, px uint32) {
	r = r.Intersect(f.Bounds())
	for y := r.Min.Y; y < r.Max.Y; y++ {
		row := f.Pix[y*f.Width+r.Min.X : y*f.Width+r.Max.X]
		for i := range row {
			row[i] = px
		}
	}
}

// Pack converts c to 0x00RRGGBB, dropping alpha.
func Pack(c color.Color) uint32 {
	r, g, b, _ := c.RGBA()
	return (r>>8)<<16 | (g>>8)<<8 | b>>8
}

// Unpack converts a 0x00RRGGBB pixel to an opaque color.
func Unpack(px uint32) color.RGBA {
	return color.RGBA{R: uint8(px >> 16), G: uint8(px >> 8), B: uint8(px), A: 0xff}
}
