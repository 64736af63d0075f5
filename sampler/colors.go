package sampler

import (
	"errors"
	"image"
	"sort"

	"github.com/esimov/colorquant"
	"github.com/mmuldo/colorlab/colorspace"
)

// ColorCount is a color and the number of pixels it covers.
type ColorCount struct {
	Color colorspace.RGB
	Count int
}

type byCount []ColorCount

func (ccl byCount) Len() int { return len(ccl) }
func (ccl byCount) Less(i, j int) bool {
	if ccl[i].Count != ccl[j].Count {
		return ccl[i].Count > ccl[j].Count
	}
	return ccl[i].Color.Hex() < ccl[j].Color.Hex()
}
func (ccl byCount) Swap(i, j int) { ccl[i], ccl[j] = ccl[j], ccl[i] }

// Colors returns every distinct opaque color of the buffer with its pixel
// count, most common first.
func (b *Buffer) Colors() []ColorCount {
	m := make(map[colorspace.RGB]int)
	for i := 0; i+3 < len(b.Pix); i += 4 {
		if b.Pix[i+3] == 0 {
			continue
		}
		m[colorspace.RGB{R: b.Pix[i], G: b.Pix[i+1], B: b.Pix[i+2]}]++
	}
	return rank(m)
}

var errNoOpaque = errors.New("image has no opaque pixels")

// Dominant returns at most num colors of the buffer, most common first. An
// image with no more than num distinct colors is returned exactly; otherwise
// it is quantized. Fully transparent pixels are not counted.
func (b *Buffer) Dominant(num int) ([]ColorCount, error) {
	if num < 1 {
		return nil, errors.New("number of colors must be positive")
	}
	if cc := b.Colors(); len(cc) <= num {
		if len(cc) == 0 {
			return nil, errNoOpaque
		}
		return cc, nil
	}

	o := image.NewNRGBA(image.Rect(0, 0, b.Width, b.Height))
	colorquant.NoDither.Quantize(b.Image(), o, num, false, true)

	m := make(map[colorspace.RGB]int)
	for i := 0; i+3 < len(o.Pix); i += 4 {
		if b.Pix[i+3] == 0 {
			continue
		}
		m[colorspace.RGB{R: o.Pix[i], G: o.Pix[i+1], B: o.Pix[i+2]}]++
	}
	if len(m) == 0 {
		return nil, errNoOpaque
	}

	return rank(m), nil
}

func rank(m map[colorspace.RGB]int) []ColorCount {
	cc := make([]ColorCount, 0, len(m))
	for k, v := range m {
		cc = append(cc, ColorCount{k, v})
	}
	sort.Sort(byCount(cc))
	return cc
}
