// Copyright (c) 2026, The Palette Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colormodel

import (
	"fmt"
	"math/rand"

	"github.com/james-alex/palette/hues"
)

// Random returns a random color in the given space, sampled uniformly
// within the given hue, saturation, and brightness ranges. The color
// is built in the HSP basis when perceivedBrightness is true and in
// HSB otherwise, then converted to space.
//
// Hue bounds must be within [0, 360]; a minHue greater than maxHue is
// a wraparound range walked ascending through 360/0 (e.g. 300..60).
// Saturation and brightness bounds must be within [0, 100] with
// min <= max. Violations panic. A nil rng draws from [hues.Rand].
func Random(rng *rand.Rand, space Space, minHue, maxHue, minSaturation, maxSaturation, minBrightness, maxBrightness float32, perceivedBrightness bool) Color {
	assertHue(minHue)
	assertHue(maxHue)
	assertOrderedRange("saturation", minSaturation, maxSaturation, 0, 100)
	assertOrderedRange("brightness", minBrightness, maxBrightness, 0, 100)
	if rng == nil {
		rng = hues.Rand
	}

	span := maxHue - minHue
	if span < 0 {
		span += 360
	}
	h := hues.Normalize(minHue + rng.Float32()*span)
	s := minSaturation + rng.Float32()*(maxSaturation-minSaturation)
	b := minBrightness + rng.Float32()*(maxBrightness-minBrightness)

	var c Color
	if perceivedBrightness {
		c = HSP(h, s, b)
	} else {
		c = HSB(h, s, b)
	}
	return c.To(space)
}

func assertOrderedRange(name string, min, max, lo, hi float32) {
	assertRange("min "+name, min, lo, hi)
	assertRange("max "+name, max, lo, hi)
	if min > max {
		panic(fmt.Sprintf("colormodel: min %s (%g) must be <= max %s (%g)", name, min, name, max))
	}
}
