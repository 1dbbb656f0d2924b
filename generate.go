// Copyright (c) 2026, The Palette Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package palette

import (
	"math/rand"

	"github.com/james-alex/palette/colormodel"
	"github.com/james-alex/palette/hues"
)

// deriveColor produces a new color from seed: the seed is measured in
// the HSP basis (or HSB when perceived is false), the hue offset and
// optional jitter are applied, and the result is cast back to the
// seed's space. The output hue always wraps into [0, 360), jittered
// saturation and brightness clamp into [0, 100], and alpha is carried
// over from the seed.
func deriveColor(rng *rand.Rand, seed colormodel.Color, hueOffset, hueVar, satVar, brightVar float32, perceived bool) colormodel.Color {
	basis := colormodel.SpaceHSB
	if perceived {
		basis = colormodel.SpaceHSP
	}
	ch := seed.To(basis).Channels()
	h, s, b := ch[0], ch[1], ch[2]

	h += hueOffset
	if hueVar > 0 {
		h += hues.Jitter(rng, hueVar)
	}
	h = hues.Normalize(h)
	if satVar > 0 {
		s = clampChannel(s + hues.Jitter(rng, satVar))
	}
	if brightVar > 0 {
		b = clampChannel(b + hues.Jitter(rng, brightVar))
	}

	var c colormodel.Color
	if perceived {
		c = colormodel.HSPA(h, s, b, seed.Alpha())
	} else {
		c = colormodel.HSBA(h, s, b, seed.Alpha())
	}
	return c.To(seed.Space())
}

func clampChannel(v float32) float32 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
