package palette

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/mmuldo/colorlab/compare"
)

// ErrIndex is returned for palette positions that do not exist.
var ErrIndex = errors.New("palette index out of range")

// Palette is an ordered list of reference colors without duplicate hex values.
type Palette []Color

// Add appends c unless a color with the same hex is already present. It
// reports whether c was added.
func (p *Palette) Add(c Color) bool {
	if p.Index(c.Hex) >= 0 {
		return false
	}
	*p = append(*p, c)
	return true
}

// Remove deletes and returns the color at i.
func (p *Palette) Remove(i int) (Color, error) {
	if i < 0 || i >= len(*p) {
		return Color{}, fmt.Errorf("%w: %d of %d", ErrIndex, i, len(*p))
	}
	c := (*p)[i]
	*p = append((*p)[:i], (*p)[i+1:]...)
	return c, nil
}

// Index returns the position of the color with the given hex, or -1.
func (p Palette) Index(hex string) int {
	for i, c := range p {
		if strings.EqualFold(c.Hex, hex) {
			return i
		}
	}
	return -1
}

// Nearest returns the palette color closest to c by CIE76 distance, with the
// distance. ok is false for an empty palette.
func (p Palette) Nearest(c Color) (nearest Color, deltaE float64, ok bool) {
	for i, pc := range p {
		d := compare.DeltaE(c.Lab, pc.Lab)
		if i == 0 || d < deltaE {
			nearest, deltaE = pc, d
		}
	}
	return nearest, deltaE, len(p) > 0
}

type byLightness []Color

func (cs byLightness) Len() int           { return len(cs) }
func (cs byLightness) Less(i, j int) bool { return cs[i].Lab.L < cs[j].Lab.L }
func (cs byLightness) Swap(i, j int)      { cs[i], cs[j] = cs[j], cs[i] }

// SortByLightness returns a copy of p ordered from darkest to lightest.
func (p Palette) SortByLightness() Palette {
	s := make(Palette, len(p))
	copy(s, p)
	sort.Stable(byLightness(s))
	return s
}
