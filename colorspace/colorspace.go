// Package colorspace converts device sRGB colors to CIE L*a*b* under the D65
// reference illuminant.
package colorspace

import (
	"math"

	"github.com/jkl1337/go-chromath"
)

// D65 reference white, scaled so that Y = 100.
const (
	whiteX = 95.047
	whiteY = 100.0
	whiteZ = 108.883
)

// CIE Lab transfer constants. labK is (29/3)^3 rounded as published by the CIE.
// labK is a variable so labK/116 is rounded at run time rather than folded
// from the exact decimal.
const labE = 0.008856

var labK = 903.3

// RGB is an 8 bit per channel sRGB color.
type RGB struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}

// Lab is a CIE L*a*b* color.
type Lab struct {
	L float64 `json:"l"`
	A float64 `json:"a"`
	B float64 `json:"b"`
}

// RGBToLab converts an sRGB triple to Lab through linear-light XYZ.
func RGBToLab(r, g, b uint8) Lab {
	rl := linearize(float64(r) / 255)
	gl := linearize(float64(g) / 255)
	bl := linearize(float64(b) / 255)

	// float64() rounds each product and blocks FMA fusion.
	x := (float64(rl*0.4124) + float64(gl*0.3576) + float64(bl*0.1805)) * 100
	y := (float64(rl*0.2126) + float64(gl*0.7152) + float64(bl*0.0722)) * 100
	z := (float64(rl*0.0193) + float64(gl*0.1192) + float64(bl*0.9505)) * 100

	fx := labF(x / whiteX)
	fy := labF(y / whiteY)
	fz := labF(z / whiteZ)

	// float64() blocks FMA fusion so black lands exactly on L = 0.
	return Lab{
		L: float64(116*fy) - 16,
		A: 500 * (fx - fy),
		B: 200 * (fy - fz),
	}
}

// Lab returns the Lab equivalent of c.
func (c RGB) Lab() Lab {
	return RGBToLab(c.R, c.G, c.B)
}

// Hex returns c as a lowercase #rrggbb string.
func (c RGB) Hex() string {
	return RGBToHex(c.R, c.G, c.B)
}

// ToChromath returns l as a go-chromath Lab value.
func (l Lab) ToChromath() chromath.Lab {
	return chromath.Lab{l.L, l.A, l.B}
}

// sRGB inverse companding
func linearize(v float64) float64 {
	if v > 0.04045 {
		return math.Pow((v+0.055)/1.055, 2.4)
	}
	return v / 12.92
}

func labF(t float64) float64 {
	if t > labE {
		return math.Pow(t, 1.0/3)
	}
	return float64(labK/116*t) + 16.0/116
}
