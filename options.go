// Copyright (c) 2026, The Palette Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package palette

import (
	"fmt"
	"math/rand"

	"github.com/james-alex/palette/colormodel"
)

// GenerateOptions configures the seed-based factories ([Adjacent],
// [Polyad], [SplitComplementary]). A nil options value means
// [DefaultGenerateOptions].
type GenerateOptions struct {
	// Distance is the hue offset in degrees between neighboring
	// generated colors. Used by Adjacent and SplitComplementary.
	Distance float32

	// HueVariability is the magnitude in degrees (0-360) of the
	// random jitter applied to each generated hue; 0 disables it.
	HueVariability float32

	// SaturationVariability is the magnitude (0-100) of the random
	// jitter applied to each generated saturation; 0 disables it.
	SaturationVariability float32

	// BrightnessVariability is the magnitude (0-100) of the random
	// jitter applied to each generated brightness; 0 disables it.
	BrightnessVariability float32

	// PerceivedBrightness selects the HSP basis for generation;
	// when false the HSB basis is used.
	PerceivedBrightness bool

	// Clockwise sets the direction colors are distributed around
	// the wheel. Used by Polyad.
	Clockwise bool

	// Growable and Unique set the resulting palette's modes.
	Growable bool
	Unique   bool

	// Rand is the random source for jitter; nil draws from the
	// process-wide source.
	Rand *rand.Rand
}

// DefaultGenerateOptions returns the factory defaults: distance 30,
// no variability, HSP basis, clockwise, growable, non-unique.
func DefaultGenerateOptions() *GenerateOptions {
	return &GenerateOptions{
		Distance:            30,
		PerceivedBrightness: true,
		Clockwise:           true,
		Growable:            true,
	}
}

func (o *GenerateOptions) validate() {
	assertInRange("HueVariability", o.HueVariability, 0, 360)
	assertInRange("SaturationVariability", o.SaturationVariability, 0, 100)
	assertInRange("BrightnessVariability", o.BrightnessVariability, 0, 100)
}

// RandomOptions configures the [Random] factory. A nil options value
// means [DefaultRandomOptions].
type RandomOptions struct {
	// Space is the color space of the generated colors.
	Space colormodel.Space

	// MinHue and MaxHue bound the sampled hues, each within
	// [0, 360]. MinHue greater than MaxHue is a wraparound range
	// walked through the 360/0 seam.
	MinHue, MaxHue float32

	// MinSaturation and MaxSaturation bound the sampled
	// saturations, within [0, 100] with min <= max.
	MinSaturation, MaxSaturation float32

	// MinBrightness and MaxBrightness bound the sampled
	// brightnesses, within [0, 100] with min <= max.
	MinBrightness, MaxBrightness float32

	// PerceivedBrightness selects the HSP basis; when false the
	// HSB basis is used.
	PerceivedBrightness bool

	// DistributeHues spreads the colors around the bounded hue
	// range instead of sampling each hue independently. Bounding
	// any range below its full extent forces distribution.
	DistributeHues bool

	// DistributionVariability is the width of the hue band
	// re-sampled around each distributed hue position. Negative
	// means automatic (a quarter of the distribution step); 0
	// pins each color to its exact position.
	DistributionVariability float32

	// Clockwise sets the direction distributed hues advance.
	Clockwise bool

	// Growable and Unique set the resulting palette's modes.
	Growable bool
	Unique   bool

	// Rand is the random source; nil draws from the process-wide
	// source.
	Rand *rand.Rand
}

// DefaultRandomOptions returns the factory defaults: RGB space, full
// hue/saturation/brightness ranges, HSP basis, distributed hues with
// automatic variability, clockwise, growable, non-unique.
func DefaultRandomOptions() *RandomOptions {
	return &RandomOptions{
		MaxHue:                  360,
		MaxSaturation:           100,
		MaxBrightness:           100,
		PerceivedBrightness:     true,
		DistributeHues:          true,
		DistributionVariability: -1,
		Clockwise:               true,
		Growable:                true,
	}
}

func (o *RandomOptions) validate() {
	assertInRange("MinHue", o.MinHue, 0, 360)
	assertInRange("MaxHue", o.MaxHue, 0, 360)
	assertOrdered("Saturation", o.MinSaturation, o.MaxSaturation, 0, 100)
	assertOrdered("Brightness", o.MinBrightness, o.MaxBrightness, 0, 100)
}

func assertCount(n int) {
	if n <= 0 {
		panic(fmt.Sprintf("palette: numberOfColors must be > 0, got %d", n))
	}
}

func assertInRange(name string, v, lo, hi float32) {
	if v < lo || v > hi {
		panic(fmt.Sprintf("palette: %s must be within [%g, %g], got %g", name, lo, hi, v))
	}
}

func assertOrdered(name string, min, max, lo, hi float32) {
	assertInRange("Min"+name, min, lo, hi)
	assertInRange("Max"+name, max, lo, hi)
	if min > max {
		panic(fmt.Sprintf("palette: Min%s (%g) must be <= Max%s (%g)", name, min, name, max))
	}
}
