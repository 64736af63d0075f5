package sampler

import (
	"image"

	"golang.org/x/image/draw"
)

// ZoomArea is the side of the magnified preview around a sampled point.
const ZoomArea = 21

// ZoomRect returns the preview region around (x, y): its top-left corner is
// clamped to the buffer and it is truncated at the right and bottom edges.
func (b *Buffer) ZoomRect(x, y int) image.Rectangle {
	half := ZoomArea / 2
	x0, y0 := max(0, x-half), max(0, y-half)
	r := image.Rect(x0, y0, x0+ZoomArea, y0+ZoomArea)
	return r.Intersect(image.Rect(0, 0, b.Width, b.Height))
}

// Zoom magnifies the preview region around (x, y) to a side x side image
// using nearest neighbour scaling. A region truncated at an edge is stretched
// to fill the whole preview.
func (b *Buffer) Zoom(x, y, side int) *image.NRGBA {
	dst := image.NewNRGBA(image.Rect(0, 0, side, side))
	r := b.ZoomRect(x, y)
	if r.Empty() {
		return dst
	}

	draw.NearestNeighbor.Scale(dst, dst.Bounds(), b.Image(), r, draw.Src, nil)
	return dst
}
