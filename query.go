// Copyright (c) 2026, The Palette Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package palette

import (
	"github.com/chewxy/math32"

	"github.com/james-alex/palette/colormodel"
	"github.com/james-alex/palette/hues"
)

// The query methods are single-pass reductions over the palette. They
// panic on an empty palette; ties resolve to the earliest element.

// Brightest returns the color with the highest perceived brightness.
func (p *Palette) Brightest() colormodel.Color {
	return p.reduceMax(colormodel.Color.PerceivedBrightness)
}

// Dimmest returns the color with the lowest perceived brightness.
func (p *Palette) Dimmest() colormodel.Color {
	return p.reduceMin(colormodel.Color.PerceivedBrightness)
}

// Lightest returns the color with the highest HSL lightness.
func (p *Palette) Lightest() colormodel.Color {
	return p.reduceMax(colormodel.Color.Lightness)
}

// Darkest returns the color with the lowest HSL lightness.
func (p *Palette) Darkest() colormodel.Color {
	return p.reduceMin(colormodel.Color.Lightness)
}

// MostIntense returns the color with the highest HSI intensity.
func (p *Palette) MostIntense() colormodel.Color {
	return p.reduceMax(colormodel.Color.Intensity)
}

// LeastIntense returns the color with the lowest HSI intensity.
func (p *Palette) LeastIntense() colormodel.Color {
	return p.reduceMin(colormodel.Color.Intensity)
}

// Deepest returns the color with the highest saturation.
func (p *Palette) Deepest() colormodel.Color {
	return p.reduceMax(colormodel.Color.Saturation)
}

// Dullest returns the color with the lowest saturation.
func (p *Palette) Dullest() colormodel.Color {
	return p.reduceMin(colormodel.Color.Saturation)
}

// Richest returns the color with the highest combined saturation and
// brightness.
func (p *Palette) Richest() colormodel.Color {
	return p.reduceMax(richness)
}

// Muted returns the color with the lowest combined saturation and
// brightness.
func (p *Palette) Muted() colormodel.Color {
	return p.reduceMin(richness)
}

// ClosestToHue returns the color whose hue is angularly closest to the
// given hue, which must be within [0, 360].
func (p *Palette) ClosestToHue(hue float32) colormodel.Color {
	assertInRange("hue", hue, 0, 360)
	return p.reduceMin(func(c colormodel.Color) float32 {
		return hues.Distance(c.Hue(), hue)
	})
}

// The twelve named hue accessors return the palette color closest to
// a fixed point every 30 degrees around the wheel.

func (p *Palette) Red() colormodel.Color          { return p.ClosestToHue(0) }
func (p *Palette) RedOrange() colormodel.Color    { return p.ClosestToHue(30) }
func (p *Palette) Orange() colormodel.Color       { return p.ClosestToHue(60) }
func (p *Palette) YellowOrange() colormodel.Color { return p.ClosestToHue(90) }
func (p *Palette) Yellow() colormodel.Color       { return p.ClosestToHue(120) }
func (p *Palette) YellowGreen() colormodel.Color  { return p.ClosestToHue(150) }
func (p *Palette) Green() colormodel.Color        { return p.ClosestToHue(180) }
func (p *Palette) Cyan() colormodel.Color         { return p.ClosestToHue(210) }
func (p *Palette) Blue() colormodel.Color         { return p.ClosestToHue(240) }
func (p *Palette) BlueViolet() colormodel.Color   { return p.ClosestToHue(270) }
func (p *Palette) Violet() colormodel.Color       { return p.ClosestToHue(300) }
func (p *Palette) Magenta() colormodel.Color      { return p.ClosestToHue(330) }

// Closest returns the palette color most similar to c under the
// weighted HSP difference metric: hue distance plus the averaged
// saturation and perceived-brightness differences.
func (p *Palette) Closest(c colormodel.Color) colormodel.Color {
	return p.reduceMin(func(o colormodel.Color) float32 {
		return colorDifference(o, c)
	})
}

// Furthest returns the palette color least similar to c under the
// same metric as [Palette.Closest].
func (p *Palette) Furthest(c colormodel.Color) colormodel.Color {
	return p.reduceMax(func(o colormodel.Color) float32 {
		return colorDifference(o, c)
	})
}

// colorDifference measures two colors in the HSP basis: the hue
// difference carries double weight relative to the averaged
// saturation and perceived-brightness differences.
func colorDifference(a, b colormodel.Color) float32 {
	ac := a.To(colormodel.SpaceHSP).Channels()
	bc := b.To(colormodel.SpaceHSP).Channels()
	return hues.Distance(ac[0], bc[0]) +
		(math32.Abs(ac[1]-bc[1])+math32.Abs(ac[2]-bc[2]))/2
}

func richness(c colormodel.Color) float32 {
	return c.Saturation() + c.Brightness()
}

func (p *Palette) reduceMax(key func(colormodel.Color) float32) colormodel.Color {
	p.assertNotEmpty()
	best := p.colors[0]
	bestKey := key(best)
	for _, c := range p.colors[1:] {
		if k := key(c); k > bestKey {
			best, bestKey = c, k
		}
	}
	return best
}

func (p *Palette) reduceMin(key func(colormodel.Color) float32) colormodel.Color {
	p.assertNotEmpty()
	best := p.colors[0]
	bestKey := key(best)
	for _, c := range p.colors[1:] {
		if k := key(c); k < bestKey {
			best, bestKey = c, k
		}
	}
	return best
}
