// Copyright (c) 2026, The Palette Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package palette

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/james-alex/palette/colormodel"
	"github.com/james-alex/palette/hues"
)

// SortProperty selects the ordering applied by [Palette.SortBy]. The
// ten perceptual properties sort from most to least of the named
// quality; the twelve hue properties sort by ascending angular
// distance to their fixed hue; SortSimilarity and SortDifference run
// the greedy neighbor tour.
type SortProperty int32

const (
	SortBrightest SortProperty = iota
	SortDimmest
	SortLightest
	SortDarkest
	SortMostIntense
	SortLeastIntense
	SortDeepest
	SortDullest
	SortRichest
	SortMuted
	SortRed
	SortRedOrange
	SortOrange
	SortYellowOrange
	SortYellow
	SortYellowGreen
	SortGreen
	SortCyan
	SortBlue
	SortBlueViolet
	SortViolet
	SortMagenta
	SortSimilarity
	SortDifference
)

var sortPropertyNames = [...]string{
	"brightest", "dimmest", "lightest", "darkest",
	"mostIntense", "leastIntense", "deepest", "dullest",
	"richest", "muted",
	"red", "redOrange", "orange", "yellowOrange", "yellow",
	"yellowGreen", "green", "cyan", "blue", "blueViolet",
	"violet", "magenta",
	"similarity", "difference",
}

func (s SortProperty) String() string {
	if s < 0 || int(s) >= len(sortPropertyNames) {
		return fmt.Sprintf("SortProperty(%d)", int32(s))
	}
	return sortPropertyNames[s]
}

// SortBy reorders the palette in place by the given property with a
// stable sort.
func (p *Palette) SortBy(property SortProperty) {
	switch property {
	case SortSimilarity:
		p.SortBySimilarity()
		return
	case SortDifference:
		p.SortByDifference()
		return
	}
	key, descending := sortKey(property)
	p.stableSortByKey(key, descending)
}

// SortByHue reorders the palette in place into a single directional
// traversal of the hue wheel starting at the given hue, which must be
// within [0, 360]. Hues below the starting point are shifted a full
// turn so the comparison range is contiguous; the traversal descends
// (clockwise) or ascends (counterclockwise) over the shifted hues.
func (p *Palette) SortByHue(startingFrom float32, clockwise bool) {
	assertInRange("startingFrom", startingFrom, 0, 360)
	adjusted := func(c colormodel.Color) float32 {
		h := c.Hue()
		if h < startingFrom {
			if clockwise {
				h += 360
			} else {
				h -= 360
			}
		}
		return h
	}
	p.stableSortByKey(adjusted, clockwise)
}

// SortBySimilarity reorders the palette in place into a greedy
// nearest-neighbor tour: it starts from the color with the smallest
// difference to any other (ties broken by the largest difference to
// any other) and repeatedly appends the unplaced color closest to the
// last placed one. The tour is a heuristic, not a globally optimal
// ordering.
func (p *Palette) SortBySimilarity() { p.tourSort(true) }

// SortByDifference reorders the palette in place into a greedy
// farthest-neighbor tour, the mirror image of
// [Palette.SortBySimilarity]: it starts from the color with the
// largest difference to any other (ties broken by the smallest
// difference to any other) and repeatedly appends the unplaced color
// farthest from the last placed one.
func (p *Palette) SortByDifference() { p.tourSort(false) }

func sortKey(property SortProperty) (key func(colormodel.Color) float32, descending bool) {
	switch property {
	case SortBrightest:
		return colormodel.Color.PerceivedBrightness, true
	case SortDimmest:
		return colormodel.Color.PerceivedBrightness, false
	case SortLightest:
		return colormodel.Color.Lightness, true
	case SortDarkest:
		return colormodel.Color.Lightness, false
	case SortMostIntense:
		return colormodel.Color.Intensity, true
	case SortLeastIntense:
		return colormodel.Color.Intensity, false
	case SortDeepest:
		return colormodel.Color.Saturation, true
	case SortDullest:
		return colormodel.Color.Saturation, false
	case SortRichest:
		return richness, true
	case SortMuted:
		return richness, false
	}
	if property >= SortRed && property <= SortMagenta {
		hue := float32(property-SortRed) * 30
		return func(c colormodel.Color) float32 {
			return hues.Distance(c.Hue(), hue)
		}, false
	}
	panic(fmt.Sprintf("palette: unknown sort property %s", property))
}

// stableSortByKey decorates the colors with their keys, sorts the
// pairs stably, and writes the order back.
func (p *Palette) stableSortByKey(key func(colormodel.Color) float32, descending bool) {
	type entry struct {
		color colormodel.Color
		key   float32
	}
	entries := make([]entry, len(p.colors))
	for i, c := range p.colors {
		entries[i] = entry{color: c, key: key(c)}
	}
	slices.SortStableFunc(entries, func(a, b entry) int {
		if descending {
			return cmp.Compare(b.key, a.key)
		}
		return cmp.Compare(a.key, b.key)
	})
	for i, e := range entries {
		p.colors[i] = e.color
	}
}

// tourSort implements the greedy similarity/difference tour: a full
// pairwise difference matrix, a start element chosen by its
// nearest/farthest neighbor distances, then repeated greedy extension
// from the last placed element. Ties resolve to the earliest index at
// every step so the order is reproducible.
func (p *Palette) tourSort(similar bool) {
	n := len(p.colors)
	if n < 2 {
		return
	}

	diff := make([][]float32, n)
	for i := range diff {
		diff[i] = make([]float32, n)
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			d := colorDifference(p.colors[i], p.colors[j])
			diff[i][j], diff[j][i] = d, d
		}
	}

	nearest := make([]float32, n)
	farthest := make([]float32, n)
	for i := 0; i < n; i++ {
		first := 0
		if i == 0 {
			first = 1
		}
		nearest[i], farthest[i] = diff[i][first], diff[i][first]
		for j := 0; j < n; j++ {
			if j == i {
				continue
			}
			if diff[i][j] < nearest[i] {
				nearest[i] = diff[i][j]
			}
			if diff[i][j] > farthest[i] {
				farthest[i] = diff[i][j]
			}
		}
	}

	start := 0
	for i := 1; i < n; i++ {
		if similar {
			if nearest[i] < nearest[start] ||
				(nearest[i] == nearest[start] && farthest[i] > farthest[start]) {
				start = i
			}
		} else {
			if farthest[i] > farthest[start] ||
				(farthest[i] == farthest[start] && nearest[i] < nearest[start]) {
				start = i
			}
		}
	}

	placed := make([]bool, n)
	order := make([]int, 0, n)
	order = append(order, start)
	placed[start] = true
	last := start
	for len(order) < n {
		next := -1
		var nextD float32
		for j := 0; j < n; j++ {
			if placed[j] {
				continue
			}
			d := diff[last][j]
			if next == -1 || (similar && d < nextD) || (!similar && d > nextD) {
				next, nextD = j, d
			}
		}
		order = append(order, next)
		placed[next] = true
		last = next
	}

	sorted := make([]colormodel.Color, n)
	for i, idx := range order {
		sorted[i] = p.colors[idx]
	}
	p.colors = sorted
}
