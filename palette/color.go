// Package palette holds sampled colors and the reference palette built from
// them.
package palette

import (
	"fmt"
	"strings"

	"github.com/mmuldo/colorlab/colorspace"
)

// Color is a sampled color: its RGB triple, the Lab value derived from it and
// its #rrggbb form. Build one with New so the three always agree.
type Color struct {
	colorspace.RGB
	Lab colorspace.Lab `json:"lab"`
	Hex string         `json:"hex"`
}

// New derives the Lab and hex forms of rgb.
func New(rgb colorspace.RGB) Color {
	return Color{
		RGB: rgb,
		Lab: colorspace.RGBToLab(rgb.R, rgb.G, rgb.B),
		Hex: colorspace.RGBToHex(rgb.R, rgb.G, rgb.B),
	}
}

// FromHex parses a hex string into a Color.
func FromHex(s string) (Color, error) {
	rgb, e := colorspace.ParseHex(s)
	if e != nil {
		return Color{}, e
	}
	return New(rgb), nil
}

// Same reports whether two colors have the same hex form.
func (c Color) Same(o Color) bool {
	return strings.EqualFold(c.Hex, o.Hex)
}

// RGBString formats the channels as "(r, g, b)".
func (c Color) RGBString() string {
	return fmt.Sprintf("(%d, %d, %d)", c.R, c.G, c.B)
}

// LabString formats the Lab value with one decimal, as "L*:x a*:y b*:z".
func (c Color) LabString() string {
	return fmt.Sprintf("L*:%.1f a*:%.1f b*:%.1f", c.Lab.L, c.Lab.A, c.Lab.B)
}

func (c Color) String() string {
	return strings.ToUpper(c.Hex)
}
