// Copyright (c) 2026, The Palette Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package palette

import "github.com/james-alex/palette/colormodel"

// Invert replaces every color with its per-space inverted value.
// Applying it twice restores the original palette.
func (p *Palette) Invert() {
	for i := range p.colors {
		p.colors[i] = p.colors[i].Inverted()
	}
}

// Opposite replaces every color with its hue-wheel opposite.
func (p *Palette) Opposite() {
	for i := range p.colors {
		p.colors[i] = p.colors[i].Opposite()
	}
}

// RotateHue rotates every color's hue by the given number of degrees,
// wrapped into [0, 360).
func (p *Palette) RotateHue(degrees float32) {
	for i := range p.colors {
		p.colors[i] = p.colors[i].RotateHue(degrees)
	}
}

// Warmer moves every color's hue toward 90 degrees. When relative is
// true, amount is a percentage (0-100) of each color's remaining
// angular distance to 90; otherwise amount is degrees.
func (p *Palette) Warmer(amount float32, relative bool) {
	for i := range p.colors {
		p.colors[i] = p.colors[i].Warmer(amount, relative)
	}
}

// Cooler moves every color's hue toward 270 degrees. When relative is
// true, amount is a percentage (0-100) of each color's remaining
// angular distance to 270; otherwise amount is degrees.
func (p *Palette) Cooler(amount float32, relative bool) {
	for i := range p.colors {
		p.colors[i] = p.colors[i].Cooler(amount, relative)
	}
}

// ToSpace converts every color to the given space in place.
func (p *Palette) ToSpace(space colormodel.Space) {
	for i := range p.colors {
		p.colors[i] = p.colors[i].To(space)
	}
}
