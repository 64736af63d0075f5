package sampler

import (
	"errors"
	"fmt"
	"image"
	"math"

	"github.com/mmuldo/colorlab/colorspace"
)

const (
	MinWindow     = 1
	MaxWindow     = 15
	DefaultWindow = 5
)

// ErrWindowSize is returned by ValidateWindow for sizes that are not odd or
// fall outside [MinWindow, MaxWindow].
var ErrWindowSize = errors.New("window size must be odd and within range")

// ValidateWindow checks a user supplied window size.
func ValidateWindow(size int) error {
	if size < MinWindow || size > MaxWindow || size%2 == 0 {
		return fmt.Errorf("%w: got %d, want odd %d..%d", ErrWindowSize, size, MinWindow, MaxWindow)
	}
	return nil
}

// ClampPoint restricts (x, y) to valid pixel coordinates of the buffer.
func (b *Buffer) ClampPoint(x, y int) (int, int) {
	return clamp(x, 0, b.Width-1), clamp(y, 0, b.Height-1)
}

// Window returns the sampling rectangle of size centered on (cx, cy),
// truncated at the buffer edges. The rectangle is empty when nothing remains.
func (b *Buffer) Window(cx, cy, size int) image.Rectangle {
	if size < 1 {
		return image.Rectangle{}
	}
	half := int(math.Floor(float64(size) / 2))
	r := image.Rect(cx-half, cy-half, cx+half+1, cy+half+1)
	return r.Intersect(image.Rect(0, 0, b.Width, b.Height))
}

// AverageColor returns the mean RGB of the size x size window around
// (cx, cy), each channel rounded independently. The window is clamped to the
// buffer, never wrapped or padded. An empty window yields black.
//
// Callers clamp the center with ClampPoint first.
func (b *Buffer) AverageColor(cx, cy, size int) colorspace.RGB {
	w := b.Window(cx, cy, size)
	if w.Empty() {
		return colorspace.RGB{}
	}

	var tr, tg, tb uint64
	for y := w.Min.Y; y < w.Max.Y; y++ {
		i := b.offset(w.Min.X, y)
		for x := w.Min.X; x < w.Max.X; x++ {
			tr += uint64(b.Pix[i])
			tg += uint64(b.Pix[i+1])
			tb += uint64(b.Pix[i+2])
			i += 4
		}
	}

	n := float64(w.Dx() * w.Dy())
	return colorspace.RGB{
		R: roundChannel(float64(tr) / n),
		G: roundChannel(float64(tg) / n),
		B: roundChannel(float64(tb) / n),
	}
}

// AverageColor is the functional form of Buffer.AverageColor over a raw
// RGBA slice.
func AverageColor(pix []uint8, width, height, cx, cy, size int) colorspace.RGB {
	if width <= 0 || height <= 0 || len(pix) < width*height*4 {
		return colorspace.RGB{}
	}
	b := Buffer{Pix: pix, Width: width, Height: height}
	return b.AverageColor(cx, cy, size)
}

// half-up rounding, matching Math.round for non-negative means
func roundChannel(v float64) uint8 {
	return uint8(math.Floor(v + 0.5))
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
