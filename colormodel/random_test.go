// Copyright (c) 2026, The Palette Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colormodel

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRandomHonorsRanges(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 200; i++ {
		c := Random(rng, SpaceHSB, 100, 200, 30, 60, 40, 80, false)
		ch := c.Channels()
		assert.GreaterOrEqual(t, ch[0], float32(100))
		assert.Less(t, ch[0], float32(200))
		assert.GreaterOrEqual(t, ch[1], float32(30))
		assert.Less(t, ch[1], float32(60))
		assert.GreaterOrEqual(t, ch[2], float32(40))
		assert.Less(t, ch[2], float32(80))
	}
}

func TestRandomWraparoundHueRange(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	for i := 0; i < 200; i++ {
		c := Random(rng, SpaceHSP, 300, 60, 100, 100, 100, 100, true)
		h := c.Channels()[0]
		inHigh := h >= 300 && h < 360
		inLow := h >= 0 && h < 60
		assert.True(t, inHigh || inLow, "hue %g outside 300..60", h)
	}
}

func TestRandomPinnedRanges(t *testing.T) {
	c := Random(rand.New(rand.NewSource(3)), SpaceHSB, 120, 120, 50, 50, 70, 70, false)
	assert.Equal(t, HSB(120, 50, 70), c)
}

func TestRandomDeterministic(t *testing.T) {
	a := Random(rand.New(rand.NewSource(7)), SpaceRGB, 0, 360, 0, 100, 0, 100, true)
	b := Random(rand.New(rand.NewSource(7)), SpaceRGB, 0, 360, 0, 100, 0, 100, true)
	assert.Equal(t, a, b)
}

func TestRandomConvertsToSpace(t *testing.T) {
	c := Random(rand.New(rand.NewSource(4)), SpaceLab, 0, 360, 0, 100, 0, 100, true)
	assert.Equal(t, SpaceLab, c.Space())
}

func TestRandomValidation(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	assert.Panics(t, func() { Random(rng, SpaceHSB, -1, 360, 0, 100, 0, 100, false) })
	assert.Panics(t, func() { Random(rng, SpaceHSB, 0, 361, 0, 100, 0, 100, false) })
	assert.Panics(t, func() { Random(rng, SpaceHSB, 0, 360, 60, 30, 0, 100, false) })
	assert.Panics(t, func() { Random(rng, SpaceHSB, 0, 360, 0, 100, 80, 40, false) })
	assert.Panics(t, func() { Random(rng, SpaceHSB, 0, 360, 0, 101, 0, 100, false) })
}
