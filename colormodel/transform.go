// Copyright (c) 2026, The Palette Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colormodel

import (
	"github.com/chewxy/math32"

	"github.com/james-alex/palette/hues"
)

// Inverted returns the color with each channel inverted within its own
// space: RGB channels flip within 0-255, CMYK within 0-100, the
// HSB/HSI/HSL/HSP spaces rotate hue by 180 degrees and flip the
// remaining channels within 0-100, LAB and Oklab flip lightness and
// negate a/b, and XYZ flips within the nominal 0-100 range. Applying
// it twice returns the original color.
func (c Color) Inverted() Color {
	out := c
	switch c.space {
	case SpaceRGB:
		for i := 0; i < 3; i++ {
			out.ch[i] = 255 - c.ch[i]
		}
	case SpaceCMYK:
		for i := 0; i < 4; i++ {
			out.ch[i] = 100 - c.ch[i]
		}
	case SpaceHSB, SpaceHSI, SpaceHSL, SpaceHSP:
		out.ch[0] = math32.Mod(c.ch[0]+180, 360)
		out.ch[1] = 100 - c.ch[1]
		out.ch[2] = 100 - c.ch[2]
	case SpaceLab:
		out.ch[0] = 100 - c.ch[0]
		out.ch[1] = -c.ch[1]
		out.ch[2] = -c.ch[2]
	case SpaceOklab:
		out.ch[0] = 1 - c.ch[0]
		out.ch[1] = -c.ch[1]
		out.ch[2] = -c.ch[2]
	case SpaceXYZ:
		for i := 0; i < 3; i++ {
			out.ch[i] = 100 - c.ch[i]
		}
	}
	return out
}

// Opposite returns the color rotated 180 degrees around the hue wheel.
func (c Color) Opposite() Color {
	return c.RotateHue(180)
}

// RotateHue returns the color with its hue rotated by the given number
// of degrees, wrapped into [0, 360). Spaces without a native hue
// channel are rotated through HSB and converted back.
func (c Color) RotateHue(degrees float32) Color {
	return c.withHue(normHue(c.Hue() + degrees))
}

// Warmer moves the color's hue toward 90 degrees, the warmest point on
// the wheel. When relative is true, amount is a percentage (0-100) of
// the remaining angular distance to 90; otherwise amount is degrees.
// Hues already between 270 and 360 wrap through 0 without capping;
// all other hues cap at 90.
func (c Color) Warmer(amount float32, relative bool) Color {
	if relative {
		assertRange("amount", amount, 0, 100)
	} else if amount < 0 {
		panic("colormodel: Warmer amount must be >= 0")
	}
	hue := c.Hue()
	adjustment := amount
	if relative {
		adjustment = hues.Distance(hue, 90) * (amount / 100)
	}
	switch {
	case hue >= 0 && hue <= 90:
		hue = math32.Min(hue+adjustment, 90)
	case hue >= 270:
		hue = normHue(hue + adjustment)
	default:
		hue = math32.Max(hue-adjustment, 90)
	}
	return c.withHue(hue)
}

// Cooler moves the color's hue toward 270 degrees, the coolest point
// on the wheel. When relative is true, amount is a percentage (0-100)
// of the remaining angular distance to 270; otherwise amount is
// degrees. Hues between 0 and 90 wrap through 0 without capping; all
// other hues cap at 270.
func (c Color) Cooler(amount float32, relative bool) Color {
	if relative {
		assertRange("amount", amount, 0, 100)
	} else if amount < 0 {
		panic("colormodel: Cooler amount must be >= 0")
	}
	hue := c.Hue()
	adjustment := amount
	if relative {
		adjustment = hues.Distance(hue, 270) * (amount / 100)
	}
	switch {
	case hue >= 0 && hue <= 90:
		hue = normHue(hue - adjustment)
	case hue >= 270:
		hue = math32.Max(hue-adjustment, 270)
	default:
		hue = math32.Min(hue+adjustment, 270)
	}
	return c.withHue(hue)
}

// Interpolate returns steps+2 colors forming a linear ramp from this
// color to end in this color's space, including both endpoints. The
// channels, including hue and alpha, are interpolated linearly; end is
// converted to this color's space first. steps must be >= 0.
func (c Color) Interpolate(end Color, steps int) []Color {
	if steps < 0 {
		panic("colormodel: Interpolate steps must be >= 0")
	}
	e := end.To(c.space)
	out := make([]Color, steps+2)
	out[0] = c
	for i := 1; i <= steps; i++ {
		t := float32(i) / float32(steps+1)
		mid := Color{space: c.space, alpha: c.alpha + (e.alpha-c.alpha)*t}
		for j := 0; j < c.space.channels(); j++ {
			mid.ch[j] = c.ch[j] + (e.ch[j]-c.ch[j])*t
		}
		out[i] = mid
	}
	out[steps+1] = e
	return out
}

// withHue returns the color with its hue replaced. Hue-bearing spaces
// are written directly; the rest round trip through HSB.
func (c Color) withHue(hue float32) Color {
	if c.space.hasHue() {
		c.ch[0] = hue
		return c
	}
	hsb := c.To(SpaceHSB)
	hsb.ch[0] = hue
	return hsb.To(c.space)
}
