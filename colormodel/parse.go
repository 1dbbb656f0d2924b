// Copyright (c) 2026, The Palette Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colormodel

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
)

// FromHex parses a hex color string into the given space. Accepted
// forms are rgb, rrggbb, and rrggbbaa, with or without a leading #.
func FromHex(hex string, space Space) (Color, error) {
	h := strings.TrimPrefix(strings.TrimSpace(hex), "#")
	var r, g, b uint8
	a := uint8(0xff)
	switch len(h) {
	case 3:
		v, err := strconv.ParseUint(h, 16, 16)
		if err != nil {
			return Color{}, fmt.Errorf("colormodel: invalid hex color %q: %w", hex, err)
		}
		r = uint8(v >> 8 & 0xf)
		g = uint8(v >> 4 & 0xf)
		b = uint8(v & 0xf)
		r, g, b = r|r<<4, g|g<<4, b|b<<4
	case 6, 8:
		v, err := strconv.ParseUint(h, 16, 32)
		if err != nil {
			return Color{}, fmt.Errorf("colormodel: invalid hex color %q: %w", hex, err)
		}
		if len(h) == 8 {
			a = uint8(v & 0xff)
			v >>= 8
		}
		r = uint8(v >> 16 & 0xff)
		g = uint8(v >> 8 & 0xff)
		b = uint8(v & 0xff)
	default:
		return Color{}, fmt.Errorf("colormodel: invalid hex color %q: length must be 3, 6, or 8", hex)
	}
	c := RGBA(float32(r), float32(g), float32(b), float32(a)/255)
	return c.To(space), nil
}

// Hex returns the color as a lowercase #rrggbb hex string, with an
// aa suffix when alpha is not 1.
func (c Color) Hex() string {
	r, g, b := c.rgb()
	if c.alpha == 1 {
		return fmt.Sprintf("#%02x%02x%02x", uint8(r+0.5), uint8(g+0.5), uint8(b+0.5))
	}
	return fmt.Sprintf("#%02x%02x%02x%02x", uint8(r+0.5), uint8(g+0.5), uint8(b+0.5), uint8(c.alpha*255+0.5))
}

// FromName looks up an SVG 1.1 color name (case-insensitive) and
// returns it in the given space.
func FromName(name string, space Space) (Color, error) {
	c, ok := colornames.Map[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return Color{}, fmt.Errorf("colormodel: unknown color name %q", name)
	}
	return RGBA(float32(c.R), float32(c.G), float32(c.B), float32(c.A)/255).To(space), nil
}
