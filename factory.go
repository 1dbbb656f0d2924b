// Copyright (c) 2026, The Palette Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package palette

import (
	"github.com/chewxy/math32"

	"github.com/james-alex/palette/colormodel"
	"github.com/james-alex/palette/hues"
)

// Adjacent returns a palette of colors adjacent to the seed's hue,
// alternating to both sides of it at growing multiples of the
// configured distance: +d, -d, +2d, -2d, and so on. When
// numberOfColors is odd the seed itself occupies the first slot and
// numberOfColors-1 colors are generated; when even the seed is
// excluded and all the colors are generated.
func Adjacent(seed colormodel.Color, numberOfColors int, opts *GenerateOptions) *Palette {
	if opts == nil {
		opts = DefaultGenerateOptions()
	}
	assertCount(numberOfColors)
	opts.validate()

	colors := make([]colormodel.Color, 0, numberOfColors)
	n := numberOfColors
	if n%2 == 1 {
		colors = append(colors, seed)
		n--
	}
	for i := 1; i <= n; i++ {
		offset := float32((i+1)/2) * opts.Distance
		if i%2 == 0 {
			offset = -offset
		}
		colors = append(colors, deriveColor(opts.Rand, seed, offset,
			opts.HueVariability, opts.SaturationVariability, opts.BrightnessVariability,
			opts.PerceivedBrightness))
	}
	return newFromFactory(colors, opts.Growable, opts.Unique)
}

// Polyad returns a palette of colors evenly spaced around the hue
// wheel from the seed: the seed occupies the first slot and the
// remaining numberOfColors-1 colors sit at 360/numberOfColors degree
// increments, advancing counterclockwise when opts.Clockwise is
// false.
func Polyad(seed colormodel.Color, numberOfColors int, opts *GenerateOptions) *Palette {
	if opts == nil {
		opts = DefaultGenerateOptions()
	}
	assertCount(numberOfColors)
	opts.validate()

	step := 360 / float32(numberOfColors)
	if !opts.Clockwise {
		step = -step
	}
	colors := make([]colormodel.Color, 0, numberOfColors)
	colors = append(colors, seed)
	for i := 1; i < numberOfColors; i++ {
		colors = append(colors, deriveColor(opts.Rand, seed, step*float32(i),
			opts.HueVariability, opts.SaturationVariability, opts.BrightnessVariability,
			opts.PerceivedBrightness))
	}
	return newFromFactory(colors, opts.Growable, opts.Unique)
}

// SplitComplementary returns a palette built around the seed's
// hue-wheel opposite: the seed occupies the first slot, and the
// remaining colors alternate to both sides of the opposite at growing
// multiples of the configured distance, exactly as [Adjacent] does
// around the seed. When numberOfColors is even the opposite itself
// occupies the second slot.
func SplitComplementary(seed colormodel.Color, numberOfColors int, opts *GenerateOptions) *Palette {
	if opts == nil {
		opts = DefaultGenerateOptions()
	}
	assertCount(numberOfColors)
	opts.validate()

	opposite := seed.Opposite()
	colors := make([]colormodel.Color, 0, numberOfColors)
	colors = append(colors, seed)
	n := numberOfColors - 1
	if numberOfColors%2 == 0 {
		colors = append(colors, opposite)
		n--
	}
	for i := 1; i <= n; i++ {
		offset := float32((i+1)/2) * opts.Distance
		if i%2 == 0 {
			offset = -offset
		}
		colors = append(colors, deriveColor(opts.Rand, opposite, offset,
			opts.HueVariability, opts.SaturationVariability, opts.BrightnessVariability,
			opts.PerceivedBrightness))
	}
	return newFromFactory(colors, opts.Growable, opts.Unique)
}

// Random returns a palette of randomly generated colors. With
// distribution disabled and the full default hue, saturation, and
// brightness ranges in effect, every color is sampled independently.
// Otherwise one seed color is sampled within the bounded ranges and
// the remaining hues advance from it in (MinHue-MaxHue)/numberOfColors
// degree steps, each re-sampled within DistributionVariability/2 of
// its position.
func Random(numberOfColors int, opts *RandomOptions) *Palette {
	if opts == nil {
		opts = DefaultRandomOptions()
	}
	assertCount(numberOfColors)
	opts.validate()

	colors := make([]colormodel.Color, 0, numberOfColors)

	fullRanges := opts.MinHue == 0 && opts.MaxHue == 360 &&
		opts.MinSaturation == 0 && opts.MaxSaturation == 100 &&
		opts.MinBrightness == 0 && opts.MaxBrightness == 100
	if !opts.DistributeHues && fullRanges {
		for i := 0; i < numberOfColors; i++ {
			colors = append(colors, colormodel.Random(opts.Rand, opts.Space,
				0, 360, 0, 100, 0, 100, opts.PerceivedBrightness))
		}
		return newFromFactory(colors, opts.Growable, opts.Unique)
	}

	step := (opts.MinHue - opts.MaxHue) / float32(numberOfColors)
	if !opts.Clockwise {
		step = -step
	}
	variability := opts.DistributionVariability
	if variability < 0 {
		variability = math32.Abs(step) / 4
	}

	seed := colormodel.Random(opts.Rand, opts.Space,
		opts.MinHue, opts.MaxHue,
		opts.MinSaturation, opts.MaxSaturation,
		opts.MinBrightness, opts.MaxBrightness,
		opts.PerceivedBrightness)
	colors = append(colors, seed)

	cursor := seed.Hue()
	for i := 1; i < numberOfColors; i++ {
		cursor = hues.Normalize(cursor + step)
		minHue, maxHue := cursor, cursor
		if variability > 0 {
			minHue = hues.Normalize(cursor - variability/2)
			maxHue = hues.Normalize(cursor + variability/2)
		}
		colors = append(colors, colormodel.Random(opts.Rand, opts.Space,
			minHue, maxHue,
			opts.MinSaturation, opts.MaxSaturation,
			opts.MinBrightness, opts.MaxBrightness,
			opts.PerceivedBrightness))
	}
	return newFromFactory(colors, opts.Growable, opts.Unique)
}

// Opposites returns a palette twice the length of the input: when
// insertOpposites is set each color is immediately followed by its
// hue-wheel opposite, and otherwise all original colors come first
// with their opposites appended after in the same order. The input
// palette is not modified.
func Opposites(p *Palette, insertOpposites, growable, unique bool) *Palette {
	colors := make([]colormodel.Color, 0, 2*len(p.colors))
	if insertOpposites {
		for _, c := range p.colors {
			colors = append(colors, c, c.Opposite())
		}
	} else {
		colors = append(colors, p.colors...)
		for _, c := range p.colors {
			colors = append(colors, c.Opposite())
		}
	}
	return newFromFactory(colors, growable, unique)
}
