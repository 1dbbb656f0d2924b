// Copyright (c) 2026, The Palette Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package palette

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/james-alex/palette/colormodel"
)

func sortFixture(t *testing.T) *Palette {
	t.Helper()
	return mustNew(t, []colormodel.Color{
		colormodel.HSB(200, 60, 30),
		colormodel.HSB(10, 100, 100),
		colormodel.HSB(120, 20, 80),
		colormodel.HSB(300, 80, 60),
	}, true, false)
}

func TestSortByPerceptualProperties(t *testing.T) {
	descending := []SortProperty{
		SortBrightest, SortLightest, SortMostIntense, SortDeepest, SortRichest,
	}
	keys := []func(colormodel.Color) float32{
		colormodel.Color.PerceivedBrightness,
		colormodel.Color.Lightness,
		colormodel.Color.Intensity,
		colormodel.Color.Saturation,
		richness,
	}
	for i, prop := range descending {
		p := sortFixture(t)
		p.SortBy(prop)
		for j := 1; j < p.Len(); j++ {
			assert.GreaterOrEqual(t, keys[i](p.At(j-1)), keys[i](p.At(j)), prop.String())
		}
	}

	ascending := []SortProperty{
		SortDimmest, SortDarkest, SortLeastIntense, SortDullest, SortMuted,
	}
	for i, prop := range ascending {
		p := sortFixture(t)
		p.SortBy(prop)
		for j := 1; j < p.Len(); j++ {
			assert.LessOrEqual(t, keys[i](p.At(j-1)), keys[i](p.At(j)), prop.String())
		}
	}
}

func TestSortByHueProperty(t *testing.T) {
	p := sortFixture(t)
	p.SortBy(SortRed)
	// Ascending distance to hue 0: 10, 300 (60 away), 120, 200.
	assert.Equal(t, float32(10), p.At(0).Hue())
	assert.Equal(t, float32(300), p.At(1).Hue())
	assert.Equal(t, float32(120), p.At(2).Hue())
	assert.Equal(t, float32(200), p.At(3).Hue())

	p.SortBy(SortGreen)
	// Ascending distance to hue 180: 200, 120, 300, 10.
	assert.Equal(t, float32(200), p.At(0).Hue())
	assert.Equal(t, float32(120), p.At(1).Hue())
	assert.Equal(t, float32(300), p.At(2).Hue())
	assert.Equal(t, float32(10), p.At(3).Hue())
}

func TestSortByHue(t *testing.T) {
	build := func() *Palette {
		return mustNew(t, []colormodel.Color{
			colormodel.HSB(10, 100, 100),
			colormodel.HSB(350, 100, 100),
			colormodel.HSB(100, 100, 100),
			colormodel.HSB(200, 100, 100),
		}, true, false)
	}

	p := build()
	p.SortByHue(90, true)
	// Hues below 90 shift up a turn; clockwise descends: 370, 350, 200, 100.
	assert.Equal(t, float32(10), p.At(0).Hue())
	assert.Equal(t, float32(350), p.At(1).Hue())
	assert.Equal(t, float32(200), p.At(2).Hue())
	assert.Equal(t, float32(100), p.At(3).Hue())

	p = build()
	p.SortByHue(90, false)
	// Counterclockwise ascends over -350, 100, 200, 350.
	assert.Equal(t, float32(10), p.At(0).Hue())
	assert.Equal(t, float32(100), p.At(1).Hue())
	assert.Equal(t, float32(200), p.At(2).Hue())
	assert.Equal(t, float32(350), p.At(3).Hue())

	assert.Panics(t, func() { p.SortByHue(400, true) })
}

func TestSortBySimilarity(t *testing.T) {
	p := mustNew(t, []colormodel.Color{
		colormodel.HSB(0, 100, 100),
		colormodel.HSB(10, 100, 100),
		colormodel.HSB(180, 100, 100),
		colormodel.HSB(190, 100, 100),
	}, true, false)
	p.SortBySimilarity()
	assert.Equal(t, float32(0), p.At(0).Hue())
	assert.Equal(t, float32(10), p.At(1).Hue())
	assert.Equal(t, float32(180), p.At(2).Hue())
	assert.Equal(t, float32(190), p.At(3).Hue())
}

func TestSortByDifference(t *testing.T) {
	p := mustNew(t, []colormodel.Color{
		colormodel.HSB(0, 100, 100),
		colormodel.HSB(10, 100, 100),
		colormodel.HSB(180, 100, 100),
		colormodel.HSB(190, 100, 100),
	}, true, false)
	p.SortByDifference()
	// Greedy farthest tour: 0, then 180 (its farthest), then 10, then 190.
	assert.Equal(t, float32(0), p.At(0).Hue())
	assert.Equal(t, float32(180), p.At(1).Hue())
	assert.Equal(t, float32(10), p.At(2).Hue())
	assert.Equal(t, float32(190), p.At(3).Hue())
}

func TestSortByDispatchesTours(t *testing.T) {
	a := mustNew(t, []colormodel.Color{vividRed, darkBlue, paleGreen, yellow}, true, false)
	b := a.Clone()
	a.SortBy(SortSimilarity)
	b.SortBySimilarity()
	assert.Equal(t, b.Colors(), a.Colors())

	a = mustNew(t, []colormodel.Color{vividRed, darkBlue, paleGreen, yellow}, true, false)
	b = a.Clone()
	a.SortBy(SortDifference)
	b.SortByDifference()
	assert.Equal(t, b.Colors(), a.Colors())
}

func TestSortIsStable(t *testing.T) {
	// Two distinct colors with identical sort keys keep their order.
	first := colormodel.HSB(100, 100, 50)
	second := colormodel.HSB(260, 100, 50)
	p := mustNew(t, []colormodel.Color{first, second}, true, false)
	p.SortBy(SortGreen) // both 80 degrees from 180
	assert.Equal(t, first, p.At(0))
	assert.Equal(t, second, p.At(1))
}

func TestTourSortSmallPalettes(t *testing.T) {
	p := Empty(true, false)
	assert.NotPanics(t, func() { p.SortBySimilarity() })

	p = mustNew(t, []colormodel.Color{vividRed}, true, false)
	p.SortByDifference()
	assert.Equal(t, vividRed, p.At(0))
}

func TestSortPropertyString(t *testing.T) {
	assert.Equal(t, "brightest", SortBrightest.String())
	assert.Equal(t, "magenta", SortMagenta.String())
	assert.Equal(t, "difference", SortDifference.String())
	assert.Equal(t, "SortProperty(99)", SortProperty(99).String())
}

func TestSortByUnknownPropertyPanics(t *testing.T) {
	p := sortFixture(t)
	assert.Panics(t, func() { p.SortBy(SortProperty(99)) })
}
