// Copyright (c) 2026, The Palette Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package colormodel implements an immutable color value that can live
// in any of nine color spaces: RGB, CMYK, HSB, HSI, HSL, HSP, CIE-LAB,
// Oklab, and CIE-XYZ. Each value carries its space tag, its
// space-specific channels, and an alpha channel; conversion between
// spaces goes through an explicit sRGB hub so no runtime type
// inspection is needed.
//
// Channel ranges: RGB channels are 0-255; CMYK channels are 0-100;
// the HSB/HSI/HSL/HSP hue is 0-360 with the remaining channels 0-100;
// LAB has L 0-100 and a,b within about +/-128; Oklab has L 0-1 and a,b
// within about +/-0.5; XYZ channels are nominally 0-100 with the D65
// white point at (95.047, 100, 108.883). Alpha is always 0-1.
package colormodel

import (
	"fmt"
	"image/color"

	"github.com/chewxy/math32"
)

// Space identifies one of the nine supported color spaces.
type Space int32

const (
	SpaceRGB Space = iota
	SpaceCMYK
	SpaceHSB
	SpaceHSI
	SpaceHSL
	SpaceHSP
	SpaceLab
	SpaceOklab
	SpaceXYZ
)

func (s Space) String() string {
	switch s {
	case SpaceRGB:
		return "rgb"
	case SpaceCMYK:
		return "cmyk"
	case SpaceHSB:
		return "hsb"
	case SpaceHSI:
		return "hsi"
	case SpaceHSL:
		return "hsl"
	case SpaceHSP:
		return "hsp"
	case SpaceLab:
		return "lab"
	case SpaceOklab:
		return "oklab"
	case SpaceXYZ:
		return "xyz"
	}
	return fmt.Sprintf("Space(%d)", int32(s))
}

// hasHue reports whether the space carries a hue as its first channel.
func (s Space) hasHue() bool {
	switch s {
	case SpaceHSB, SpaceHSI, SpaceHSL, SpaceHSP:
		return true
	}
	return false
}

// channels returns the number of channels the space carries,
// not counting alpha.
func (s Space) channels() int {
	if s == SpaceCMYK {
		return 4
	}
	return 3
}

// Color is an immutable color value in one of the nine spaces.
// It is a comparable value type: two Colors are equal (==) when they
// have the same space, the same channel values, and the same alpha.
// Color implements [color.Color].
type Color struct {
	space Space
	alpha float32
	ch    [4]float32
}

// RGB returns a color in the RGB space. Channels must be within
// [0, 255].
func RGB(r, g, b float32) Color {
	return RGBA(r, g, b, 1)
}

// RGBA is [RGB] with an explicit alpha in [0, 1].
func RGBA(r, g, b, a float32) Color {
	assertRange("red", r, 0, 255)
	assertRange("green", g, 0, 255)
	assertRange("blue", b, 0, 255)
	assertAlpha(a)
	return Color{space: SpaceRGB, alpha: a, ch: [4]float32{r, g, b}}
}

// CMYK returns a color in the CMYK space. Channels must be within
// [0, 100].
func CMYK(c, m, y, k float32) Color {
	return CMYKA(c, m, y, k, 1)
}

// CMYKA is [CMYK] with an explicit alpha in [0, 1].
func CMYKA(c, m, y, k, a float32) Color {
	assertRange("cyan", c, 0, 100)
	assertRange("magenta", m, 0, 100)
	assertRange("yellow", y, 0, 100)
	assertRange("black", k, 0, 100)
	assertAlpha(a)
	return Color{space: SpaceCMYK, alpha: a, ch: [4]float32{c, m, y, k}}
}

// HSB returns a color in the HSB (a.k.a. HSV) space. Hue must be
// within [0, 360]; saturation and brightness within [0, 100].
func HSB(h, s, b float32) Color {
	return HSBA(h, s, b, 1)
}

// HSBA is [HSB] with an explicit alpha in [0, 1].
func HSBA(h, s, b, a float32) Color {
	assertHue(h)
	assertRange("saturation", s, 0, 100)
	assertRange("brightness", b, 0, 100)
	assertAlpha(a)
	return Color{space: SpaceHSB, alpha: a, ch: [4]float32{h, s, b}}
}

// HSI returns a color in the HSI space. Hue must be within [0, 360];
// saturation and intensity within [0, 100].
func HSI(h, s, i float32) Color {
	return HSIA(h, s, i, 1)
}

// HSIA is [HSI] with an explicit alpha in [0, 1].
func HSIA(h, s, i, a float32) Color {
	assertHue(h)
	assertRange("saturation", s, 0, 100)
	assertRange("intensity", i, 0, 100)
	assertAlpha(a)
	return Color{space: SpaceHSI, alpha: a, ch: [4]float32{h, s, i}}
}

// HSL returns a color in the HSL space. Hue must be within [0, 360];
// saturation and lightness within [0, 100].
func HSL(h, s, l float32) Color {
	return HSLA(h, s, l, 1)
}

// HSLA is [HSL] with an explicit alpha in [0, 1].
func HSLA(h, s, l, a float32) Color {
	assertHue(h)
	assertRange("saturation", s, 0, 100)
	assertRange("lightness", l, 0, 100)
	assertAlpha(a)
	return Color{space: SpaceHSL, alpha: a, ch: [4]float32{h, s, l}}
}

// HSP returns a color in the HSP space, where P is perceived
// brightness weighting the RGB channels by human luminance perception.
// Hue must be within [0, 360]; saturation and perceived brightness
// within [0, 100].
func HSP(h, s, p float32) Color {
	return HSPA(h, s, p, 1)
}

// HSPA is [HSP] with an explicit alpha in [0, 1].
func HSPA(h, s, p, a float32) Color {
	assertHue(h)
	assertRange("saturation", s, 0, 100)
	assertRange("perceived brightness", p, 0, 100)
	assertAlpha(a)
	return Color{space: SpaceHSP, alpha: a, ch: [4]float32{h, s, p}}
}

// Lab returns a color in the CIE-LAB space. L must be within [0, 100];
// a and b within [-128, 128].
func Lab(l, a, b float32) Color {
	return LabA(l, a, b, 1)
}

// LabA is [Lab] with an explicit alpha in [0, 1].
func LabA(l, a, b, alpha float32) Color {
	assertRange("lightness", l, 0, 100)
	assertRange("a", a, -128, 128)
	assertRange("b", b, -128, 128)
	assertAlpha(alpha)
	return Color{space: SpaceLab, alpha: alpha, ch: [4]float32{l, a, b}}
}

// Oklab returns a color in the Oklab space. L must be within [0, 1];
// a and b within [-1, 1].
func Oklab(l, a, b float32) Color {
	return OklabA(l, a, b, 1)
}

// OklabA is [Oklab] with an explicit alpha in [0, 1].
func OklabA(l, a, b, alpha float32) Color {
	assertRange("lightness", l, 0, 1)
	assertRange("a", a, -1, 1)
	assertRange("b", b, -1, 1)
	assertAlpha(alpha)
	return Color{space: SpaceOklab, alpha: alpha, ch: [4]float32{l, a, b}}
}

// XYZ returns a color in the CIE-XYZ space. Channels are nominally
// 0-100 (the D65 white point is X 95.047, Y 100, Z 108.883); values up
// to 150 are accepted.
func XYZ(x, y, z float32) Color {
	return XYZA(x, y, z, 1)
}

// XYZA is [XYZ] with an explicit alpha in [0, 1].
func XYZA(x, y, z, a float32) Color {
	assertRange("x", x, 0, 150)
	assertRange("y", y, 0, 150)
	assertRange("z", z, 0, 150)
	assertAlpha(a)
	return Color{space: SpaceXYZ, alpha: a, ch: [4]float32{x, y, z}}
}

// Space returns the color space the value is expressed in.
func (c Color) Space() Space { return c.space }

// Alpha returns the alpha channel in [0, 1].
func (c Color) Alpha() float32 { return c.alpha }

// WithAlpha returns the same color with the given alpha in [0, 1].
func (c Color) WithAlpha(a float32) Color {
	assertAlpha(a)
	c.alpha = a
	return c
}

// Channels returns a copy of the space-specific channel values:
// three values for every space except CMYK, which has four.
func (c Color) Channels() []float32 {
	n := c.space.channels()
	out := make([]float32, n)
	copy(out, c.ch[:n])
	return out
}

// Hue returns the color's hue in [0, 360). For spaces without a native
// hue channel the color is measured in HSB. Monochromatic colors (zero
// chroma) have no meaningful hue and report 0.
func (c Color) Hue() float32 {
	if c.space.hasHue() {
		if c.ch[0] == 360 {
			return 0
		}
		return c.ch[0]
	}
	return c.To(SpaceHSB).Hue()
}

// Saturation returns the HSB saturation in [0, 100].
func (c Color) Saturation() float32 {
	if c.space == SpaceHSB {
		return c.ch[1]
	}
	return c.To(SpaceHSB).ch[1]
}

// Brightness returns the HSB brightness in [0, 100].
func (c Color) Brightness() float32 {
	if c.space == SpaceHSB {
		return c.ch[2]
	}
	return c.To(SpaceHSB).ch[2]
}

// PerceivedBrightness returns the HSP perceived brightness in [0, 100].
func (c Color) PerceivedBrightness() float32 {
	if c.space == SpaceHSP {
		return c.ch[2]
	}
	return c.To(SpaceHSP).ch[2]
}

// Lightness returns the HSL lightness in [0, 100].
func (c Color) Lightness() float32 {
	if c.space == SpaceHSL {
		return c.ch[2]
	}
	return c.To(SpaceHSL).ch[2]
}

// Intensity returns the HSI intensity in [0, 100].
func (c Color) Intensity() float32 {
	if c.space == SpaceHSI {
		return c.ch[2]
	}
	return c.To(SpaceHSI).ch[2]
}

// IsMonochromatic reports whether the color has zero chroma
// (equal RGB channels, i.e. black, white, or a gray).
func (c Color) IsMonochromatic() bool {
	r, g, b := c.rgb()
	const eps = 1e-4
	return math32.Abs(r-g) < eps && math32.Abs(g-b) < eps
}

// Equal reports whether the two colors have the same space, channel
// values, and alpha. It is equivalent to ==.
func (c Color) Equal(o Color) bool { return c == o }

// RGBA implements [color.Color], premultiplying by alpha.
func (c Color) RGBA() (r, g, b, a uint32) {
	fr, fg, fb := c.rgb()
	r = uint32(fr/255*c.alpha*65535 + 0.5)
	g = uint32(fg/255*c.alpha*65535 + 0.5)
	b = uint32(fb/255*c.alpha*65535 + 0.5)
	a = uint32(c.alpha*65535 + 0.5)
	return
}

// AsRGBA returns the color as a standard [color.RGBA] value.
func (c Color) AsRGBA() color.RGBA {
	fr, fg, fb := c.rgb()
	return color.RGBA{
		R: uint8(fr/255*c.alpha*255 + 0.5),
		G: uint8(fg/255*c.alpha*255 + 0.5),
		B: uint8(fb/255*c.alpha*255 + 0.5),
		A: uint8(c.alpha*255 + 0.5),
	}
}

// FromColor converts any [color.Color] into the given space.
func FromColor(ci color.Color, space Space) Color {
	r, g, b, a := ci.RGBA()
	if a == 0 {
		return Color{space: SpaceRGB, alpha: 0}.To(space)
	}
	fa := float32(a) / 65535
	fr := float32(r) / 65535 / fa * 255
	fg := float32(g) / 65535 / fa * 255
	fb := float32(b) / 65535 / fa * 255
	c := Color{space: SpaceRGB, alpha: fa, ch: [4]float32{
		math32.Min(fr, 255), math32.Min(fg, 255), math32.Min(fb, 255),
	}}
	return c.To(space)
}

func (c Color) String() string {
	if c.space == SpaceCMYK {
		return fmt.Sprintf("cmyk(%g, %g, %g, %g)", c.ch[0], c.ch[1], c.ch[2], c.ch[3])
	}
	return fmt.Sprintf("%s(%g, %g, %g)", c.space, c.ch[0], c.ch[1], c.ch[2])
}

func assertRange(name string, v, lo, hi float32) {
	if v < lo || v > hi || math32.IsNaN(v) {
		panic(fmt.Sprintf("colormodel: %s must be within [%g, %g], got %g", name, lo, hi, v))
	}
}

func assertHue(h float32) {
	assertRange("hue", h, 0, 360)
}

func assertAlpha(a float32) {
	assertRange("alpha", a, 0, 1)
}

func clamp(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
