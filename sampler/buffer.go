// Package sampler reads averaged colors out of decoded pixel buffers.
package sampler

import (
	"fmt"
	"image"

	"golang.org/x/image/draw"
)

// Buffer is a row-major, non-premultiplied pixel buffer with 4 bytes (R, G, B,
// A) per pixel. Alpha is carried but never sampled.
type Buffer struct {
	Pix    []uint8
	Width  int
	Height int
}

// NewBuffer wraps pix, which must hold exactly width*height*4 bytes.
func NewBuffer(pix []uint8, width, height int) (*Buffer, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid buffer size %dx%d", width, height)
	}
	if len(pix) != width*height*4 {
		return nil, fmt.Errorf("buffer of %d bytes does not match %dx%d", len(pix), width, height)
	}
	return &Buffer{Pix: pix, Width: width, Height: height}, nil
}

// FromImage copies img into a Buffer anchored at (0, 0).
func FromImage(img image.Image) *Buffer {
	b := img.Bounds()
	o := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(o, o.Bounds(), img, b.Min, draw.Src)
	return &Buffer{Pix: o.Pix, Width: b.Dx(), Height: b.Dy()}
}

// Image returns an image view over the buffer's pixels.
func (b *Buffer) Image() *image.NRGBA {
	return &image.NRGBA{Pix: b.Pix, Stride: b.Width * 4, Rect: image.Rect(0, 0, b.Width, b.Height)}
}

func (b *Buffer) offset(x, y int) int {
	return (y*b.Width + x) * 4
}
