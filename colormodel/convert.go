// Copyright (c) 2026, The Palette Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colormodel

import (
	"math"

	"github.com/chewxy/math32"
	colorful "github.com/lucasb-eyer/go-colorful"
)

// Conversion between any two spaces goes through an sRGB hub: one
// closed switch decodes the source space to sRGB, a second encodes
// sRGB into the target space. go-colorful supplies the HSB, HSL, XYZ,
// and LAB legs as well as the sRGB transfer function; CMYK, HSI, HSP,
// and Oklab are implemented here.

// To converts the color to the given space. Converting to the color's
// own space returns it unchanged; alpha is always preserved.
func (c Color) To(space Space) Color {
	if space == c.space {
		return c
	}
	r, g, b := c.rgb()
	return fromRGB(space, r, g, b, c.alpha)
}

// rgb decodes the color's channels to sRGB in [0, 255].
func (c Color) rgb() (r, g, b float32) {
	switch c.space {
	case SpaceRGB:
		return c.ch[0], c.ch[1], c.ch[2]
	case SpaceCMYK:
		fr, fg, fb := cmykToRGB(c.ch[0]/100, c.ch[1]/100, c.ch[2]/100, c.ch[3]/100)
		return fr * 255, fg * 255, fb * 255
	case SpaceHSB:
		cf := colorful.Hsv(float64(normHue(c.ch[0])), float64(c.ch[1]/100), float64(c.ch[2]/100))
		return rgb255(cf)
	case SpaceHSI:
		fr, fg, fb := hsiToRGB(normHue(c.ch[0]), c.ch[1]/100, c.ch[2]/100)
		return fr * 255, fg * 255, fb * 255
	case SpaceHSL:
		cf := colorful.Hsl(float64(normHue(c.ch[0])), float64(c.ch[1]/100), float64(c.ch[2]/100))
		return rgb255(cf)
	case SpaceHSP:
		fr, fg, fb := hspToRGB(normHue(c.ch[0])/360, c.ch[1]/100, c.ch[2]/100)
		return fr * 255, fg * 255, fb * 255
	case SpaceLab:
		cf := colorful.Lab(float64(c.ch[0]/100), float64(c.ch[1]/100), float64(c.ch[2]/100)).Clamped()
		return rgb255(cf)
	case SpaceOklab:
		fr, fg, fb := oklabToRGB(c.ch[0], c.ch[1], c.ch[2])
		return fr * 255, fg * 255, fb * 255
	case SpaceXYZ:
		cf := colorful.Xyz(float64(c.ch[0]/100), float64(c.ch[1]/100), float64(c.ch[2]/100)).Clamped()
		return rgb255(cf)
	}
	panic("colormodel: unknown space " + c.space.String())
}

// fromRGB encodes sRGB channels in [0, 255] into the given space.
// It builds the value directly so that floating point edges (e.g. a
// lightness of 100.0001) cannot trip the public constructor asserts.
func fromRGB(space Space, r, g, b, alpha float32) Color {
	out := Color{space: space, alpha: alpha}
	fr, fg, fb := clamp(r/255, 0, 1), clamp(g/255, 0, 1), clamp(b/255, 0, 1)
	cf := colorful.Color{R: float64(fr), G: float64(fg), B: float64(fb)}
	switch space {
	case SpaceRGB:
		out.ch = [4]float32{r, g, b}
	case SpaceCMYK:
		c, m, y, k := rgbToCMYK(fr, fg, fb)
		out.ch = [4]float32{c * 100, m * 100, y * 100, k * 100}
	case SpaceHSB:
		h, s, v := cf.Hsv()
		out.ch = [4]float32{normHue(float32(h)), float32(s) * 100, float32(v) * 100}
	case SpaceHSI:
		h, s, i := rgbToHSI(fr, fg, fb)
		out.ch = [4]float32{h, s * 100, i * 100}
	case SpaceHSL:
		h, s, l := cf.Hsl()
		out.ch = [4]float32{normHue(float32(h)), float32(s) * 100, float32(l) * 100}
	case SpaceHSP:
		h, s, p := rgbToHSP(fr, fg, fb)
		out.ch = [4]float32{h * 360, s * 100, p * 100}
	case SpaceLab:
		l, a, bb := cf.Lab()
		out.ch = [4]float32{float32(l) * 100, float32(a) * 100, float32(bb) * 100}
	case SpaceOklab:
		l, a, bb := rgbToOklab(fr, fg, fb)
		out.ch = [4]float32{l, a, bb}
	case SpaceXYZ:
		x, y, z := cf.Xyz()
		out.ch = [4]float32{float32(x) * 100, float32(y) * 100, float32(z) * 100}
	default:
		panic("colormodel: unknown space " + space.String())
	}
	return out
}

func rgb255(cf colorful.Color) (r, g, b float32) {
	return clamp(float32(cf.R), 0, 1) * 255,
		clamp(float32(cf.G), 0, 1) * 255,
		clamp(float32(cf.B), 0, 1) * 255
}

// normHue wraps a hue into [0, 360).
func normHue(h float32) float32 {
	return math32.Mod(math32.Mod(h, 360)+360, 360)
}

// cmykToRGB converts CMYK channels in [0, 1] to sRGB in [0, 1].
func cmykToRGB(c, m, y, k float32) (r, g, b float32) {
	r = (1 - c) * (1 - k)
	g = (1 - m) * (1 - k)
	b = (1 - y) * (1 - k)
	return
}

// rgbToCMYK converts sRGB channels in [0, 1] to CMYK in [0, 1].
func rgbToCMYK(r, g, b float32) (c, m, y, k float32) {
	k = 1 - math32.Max(r, math32.Max(g, b))
	if k >= 1 {
		return 0, 0, 0, 1
	}
	c = (1 - r - k) / (1 - k)
	m = (1 - g - k) / (1 - k)
	y = (1 - b - k) / (1 - k)
	return
}

// rgbHue returns the polar hue of sRGB channels in [0, 1], in
// [0, 360). Monochromatic inputs report 0.
func rgbHue(r, g, b float32) float32 {
	max := math32.Max(r, math32.Max(g, b))
	min := math32.Min(r, math32.Min(g, b))
	if max == min {
		return 0
	}
	d := max - min
	var h float32
	switch max {
	case r:
		h = (g - b) / d
	case g:
		h = (b-r)/d + 2
	default:
		h = (r-g)/d + 4
	}
	h *= 60
	if h < 0 {
		h += 360
	}
	return h
}

// rgbToHSI converts sRGB channels in [0, 1] to HSI with hue in
// [0, 360) and saturation/intensity in [0, 1].
func rgbToHSI(r, g, b float32) (h, s, i float32) {
	i = (r + g + b) / 3
	if i <= 0 {
		return 0, 0, 0
	}
	min := math32.Min(r, math32.Min(g, b))
	s = clamp(1-min/i, 0, 1)
	h = rgbHue(r, g, b)
	return
}

// hsiToRGB converts HSI (hue in degrees, saturation and intensity in
// [0, 1]) to sRGB in [0, 1] using the 120 degree sector form.
func hsiToRGB(h, s, i float32) (r, g, b float32) {
	rad := func(deg float32) float32 { return deg * math32.Pi / 180 }
	sector := func(hh float32) (primary, tertiary float32) {
		primary = i * (1 + s*math32.Cos(rad(hh))/math32.Cos(rad(60-hh)))
		tertiary = i * (1 - s)
		return
	}
	switch {
	case h < 120:
		r, b = sector(h)
		g = 3*i - (r + b)
	case h < 240:
		g, r = sector(h - 120)
		b = 3*i - (r + g)
	default:
		b, g = sector(h - 240)
		r = 3*i - (g + b)
	}
	return clamp(r, 0, 1), clamp(g, 0, 1), clamp(b, 0, 1)
}

// Perceived brightness weights per ITU-R BT.601, shared by the HSP
// round trip below.
const (
	hspPr = 0.299
	hspPg = 0.587
	hspPb = 0.114
)

// rgbToHSP converts sRGB channels in [0, 1] to HSP with all three
// outputs in [0, 1] (hue as a fraction of the wheel). Follows the
// Weyler HSP reference algorithm.
func rgbToHSP(r, g, b float32) (h, s, p float32) {
	p = math32.Sqrt(r*r*hspPr + g*g*hspPg + b*b*hspPb)
	if r == g && r == b {
		return 0, 0, p
	}
	switch {
	case r >= g && r >= b: // red largest
		if b >= g {
			h = 1 - (b-g)/(r-g)/6
			s = 1 - g/r
		} else {
			h = (g - b) / (r - b) / 6
			s = 1 - b/r
		}
	case g >= r && g >= b: // green largest
		if r >= b {
			h = 2.0/6 - (r-b)/(g-b)/6
			s = 1 - b/g
		} else {
			h = 2.0/6 + (b-r)/(g-r)/6
			s = 1 - r/g
		}
	default: // blue largest
		if g >= r {
			h = 4.0/6 - (g-r)/(b-r)/6
			s = 1 - r/b
		} else {
			h = 4.0/6 + (r-g)/(b-g)/6
			s = 1 - g/b
		}
	}
	if h >= 1 {
		h -= 1
	}
	return
}

// hspToRGB converts HSP with all inputs in [0, 1] to sRGB in [0, 1],
// inverting the Weyler algorithm sector by sector.
func hspToRGB(h, s, p float32) (r, g, b float32) {
	minOverMax := 1 - s
	if minOverMax > 0 {
		part := func(hh float32) float32 { return 1 + hh*(1/minOverMax-1) }
		switch {
		case h < 1.0/6: // r > g > b
			hh := 6 * h
			pt := part(hh)
			b = p / math32.Sqrt(hspPr/(minOverMax*minOverMax)+hspPg*pt*pt+hspPb)
			r = b / minOverMax
			g = b + hh*(r-b)
		case h < 2.0/6: // g > r > b
			hh := 6 * (2.0/6 - h)
			pt := part(hh)
			b = p / math32.Sqrt(hspPg/(minOverMax*minOverMax)+hspPr*pt*pt+hspPb)
			g = b / minOverMax
			r = b + hh*(g-b)
		case h < 3.0/6: // g > b > r
			hh := 6 * (h - 2.0/6)
			pt := part(hh)
			r = p / math32.Sqrt(hspPg/(minOverMax*minOverMax)+hspPb*pt*pt+hspPr)
			g = r / minOverMax
			b = r + hh*(g-r)
		case h < 4.0/6: // b > g > r
			hh := 6 * (4.0/6 - h)
			pt := part(hh)
			r = p / math32.Sqrt(hspPb/(minOverMax*minOverMax)+hspPg*pt*pt+hspPr)
			b = r / minOverMax
			g = r + hh*(b-r)
		case h < 5.0/6: // b > r > g
			hh := 6 * (h - 4.0/6)
			pt := part(hh)
			g = p / math32.Sqrt(hspPb/(minOverMax*minOverMax)+hspPr*pt*pt+hspPg)
			b = g / minOverMax
			r = g + hh*(b-g)
		default: // r > b > g
			hh := 6 * (1 - h)
			pt := part(hh)
			g = p / math32.Sqrt(hspPr/(minOverMax*minOverMax)+hspPb*pt*pt+hspPg)
			r = g / minOverMax
			b = g + hh*(r-g)
		}
	} else {
		switch {
		case h < 1.0/6:
			hh := 6 * h
			r = math32.Sqrt(p * p / (hspPr + hspPg*hh*hh))
			g = r * hh
			b = 0
		case h < 2.0/6:
			hh := 6 * (2.0/6 - h)
			g = math32.Sqrt(p * p / (hspPg + hspPr*hh*hh))
			r = g * hh
			b = 0
		case h < 3.0/6:
			hh := 6 * (h - 2.0/6)
			g = math32.Sqrt(p * p / (hspPg + hspPb*hh*hh))
			b = g * hh
			r = 0
		case h < 4.0/6:
			hh := 6 * (4.0/6 - h)
			b = math32.Sqrt(p * p / (hspPb + hspPg*hh*hh))
			g = b * hh
			r = 0
		case h < 5.0/6:
			hh := 6 * (h - 4.0/6)
			b = math32.Sqrt(p * p / (hspPb + hspPr*hh*hh))
			r = b * hh
			g = 0
		default:
			hh := 6 * (1 - h)
			r = math32.Sqrt(p * p / (hspPr + hspPb*hh*hh))
			b = r * hh
			g = 0
		}
	}
	return clamp(r, 0, 1), clamp(g, 0, 1), clamp(b, 0, 1)
}

// Oklab forward (M1/M2) and inverse matrices, operating on linear RGB.
// go-colorful supplies the sRGB transfer function legs.

// rgbToOklab converts sRGB channels in [0, 1] to Oklab.
func rgbToOklab(r, g, b float32) (okl, oka, okb float32) {
	lr, lg, lb := colorful.Color{R: float64(r), G: float64(g), B: float64(b)}.LinearRgb()

	l := 0.4122214708*lr + 0.5363325363*lg + 0.0514459929*lb
	m := 0.2119034982*lr + 0.6806995451*lg + 0.1073969566*lb
	s := 0.0883024619*lr + 0.2817188376*lg + 0.6299787005*lb

	lp, mp, sp := math.Cbrt(l), math.Cbrt(m), math.Cbrt(s)

	okl = float32(0.2104542553*lp + 0.7936177850*mp - 0.0040720468*sp)
	oka = float32(1.9779984951*lp - 2.4285922050*mp + 0.4505937099*sp)
	okb = float32(0.0259040371*lp + 0.7827717662*mp - 0.8086757660*sp)
	return
}

// oklabToRGB converts Oklab to sRGB channels in [0, 1].
func oklabToRGB(okl, oka, okb float32) (r, g, b float32) {
	l64, a64, b64 := float64(okl), float64(oka), float64(okb)

	lp := l64 + 0.3963377774*a64 + 0.2158037573*b64
	mp := l64 - 0.1055613458*a64 - 0.0638541728*b64
	sp := l64 - 0.0894841775*a64 - 1.2914855480*b64

	l, m, s := lp*lp*lp, mp*mp*mp, sp*sp*sp

	lr := 4.0767416621*l - 3.3077115913*m + 0.2309699292*s
	lg := -1.2684380046*l + 2.6097574011*m - 0.3413193965*s
	lb := -0.0041960863*l - 0.7034186147*m + 1.7076147010*s

	cf := colorful.LinearRgb(lr, lg, lb).Clamped()
	return float32(cf.R), float32(cf.G), float32(cf.B)
}
