// Copyright (c) 2026, The Palette Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package palette generates, transforms, queries, and sorts color
// palettes: ordered collections of [colormodel.Color] values. Palettes
// are built by the factory functions ([New], [Adjacent], [Polyad],
// [Random], [SplitComplementary], [Opposites]) and then operated on in
// place.
//
// A palette owns its colors exclusively: construction copies the
// caller's slice and accessors return copies. Two optional modes are
// set at construction: unique palettes reject inserts of colors that
// compare equal to an existing element, and non-growable palettes
// reject any length-changing operation. Both conditions are reported
// as recoverable errors; out-of-range parameters are programmer errors
// and panic.
package palette

import (
	"errors"
	"fmt"
	"strings"

	"github.com/james-alex/palette/colormodel"
)

// ErrDuplicateColor is returned when inserting a color that already
// exists in a unique-mode palette.
var ErrDuplicateColor = errors.New("palette: duplicate color")

// ErrFixedLength is returned when a length-changing operation is
// applied to a non-growable palette.
var ErrFixedLength = errors.New("palette: palette is not growable")

// Palette is an owned, ordered, mutable sequence of colors.
type Palette struct {
	colors []colormodel.Color
	unique bool
	fixed  bool
}

// New returns a palette owning a copy of the given colors. If unique
// is set and the input contains two equal colors, it returns a
// [ErrDuplicateColor] error naming the conflicting value.
func New(colors []colormodel.Color, growable, unique bool) (*Palette, error) {
	owned := make([]colormodel.Color, len(colors))
	copy(owned, colors)
	if unique {
		for i, c := range owned {
			for _, prev := range owned[:i] {
				if c == prev {
					return nil, fmt.Errorf("%w: %s", ErrDuplicateColor, c)
				}
			}
		}
	}
	return &Palette{colors: owned, unique: unique, fixed: !growable}, nil
}

// Empty returns a palette with no colors. A non-growable empty palette
// is permanently empty, which is rarely useful but allowed.
func Empty(growable, unique bool) *Palette {
	return &Palette{colors: []colormodel.Color{}, unique: unique, fixed: !growable}
}

// newFromFactory wraps generated colors without the uniqueness scan:
// generation strategies may legitimately produce equal colors (e.g. a
// polyad whose offsets wrap onto each other); the unique mode then
// governs subsequent mutation only.
func newFromFactory(colors []colormodel.Color, growable, unique bool) *Palette {
	return &Palette{colors: colors, unique: unique, fixed: !growable}
}

// Len returns the number of colors.
func (p *Palette) Len() int { return len(p.colors) }

// Growable reports whether length-changing operations are allowed.
func (p *Palette) Growable() bool { return !p.fixed }

// Unique reports whether the palette rejects duplicate inserts.
func (p *Palette) Unique() bool { return p.unique }

// At returns the color at index i. The index must be within bounds.
func (p *Palette) At(i int) colormodel.Color {
	p.assertIndex(i)
	return p.colors[i]
}

// Set replaces the color at index i. In unique mode, setting a value
// equal to a color at another index returns [ErrDuplicateColor].
func (p *Palette) Set(i int, c colormodel.Color) error {
	p.assertIndex(i)
	if p.unique {
		for j, prev := range p.colors {
			if j != i && prev == c {
				return fmt.Errorf("%w: %s", ErrDuplicateColor, c)
			}
		}
	}
	p.colors[i] = c
	return nil
}

// Add appends a color. It returns [ErrFixedLength] for non-growable
// palettes and [ErrDuplicateColor] for duplicate inserts in unique
// mode.
func (p *Palette) Add(c colormodel.Color) error {
	return p.Insert(len(p.colors), c)
}

// Insert inserts a color at index i, which may equal [Palette.Len] to
// append. It returns [ErrFixedLength] for non-growable palettes and
// [ErrDuplicateColor] for duplicate inserts in unique mode.
func (p *Palette) Insert(i int, c colormodel.Color) error {
	if i < 0 || i > len(p.colors) {
		panic(fmt.Sprintf("palette: index %d out of range [0, %d]", i, len(p.colors)))
	}
	if p.fixed {
		return ErrFixedLength
	}
	if p.unique && p.contains(c) {
		return fmt.Errorf("%w: %s", ErrDuplicateColor, c)
	}
	p.colors = append(p.colors, colormodel.Color{})
	copy(p.colors[i+1:], p.colors[i:])
	p.colors[i] = c
	return nil
}

// RemoveAt removes and returns the color at index i. It returns
// [ErrFixedLength] for non-growable palettes.
func (p *Palette) RemoveAt(i int) (colormodel.Color, error) {
	p.assertIndex(i)
	if p.fixed {
		return colormodel.Color{}, ErrFixedLength
	}
	c := p.colors[i]
	p.colors = append(p.colors[:i], p.colors[i+1:]...)
	return c, nil
}

// Contains reports whether the palette holds a color equal to c.
func (p *Palette) Contains(c colormodel.Color) bool { return p.contains(c) }

// IndexOf returns the index of the first color equal to c, or -1.
func (p *Palette) IndexOf(c colormodel.Color) int {
	for i, prev := range p.colors {
		if prev == c {
			return i
		}
	}
	return -1
}

// Colors returns a copy of the palette's colors in order.
func (p *Palette) Colors() []colormodel.Color {
	out := make([]colormodel.Color, len(p.colors))
	copy(out, p.colors)
	return out
}

// Clone returns a deep copy of the palette with the same modes.
func (p *Palette) Clone() *Palette {
	return &Palette{colors: p.Colors(), unique: p.unique, fixed: p.fixed}
}

// Reverse reverses the order of the colors in place.
func (p *Palette) Reverse() {
	for i, j := 0, len(p.colors)-1; i < j; i, j = i+1, j-1 {
		p.colors[i], p.colors[j] = p.colors[j], p.colors[i]
	}
}

// Reversed returns a reversed copy of the palette with the same modes.
func (p *Palette) Reversed() *Palette {
	out := p.Clone()
	out.Reverse()
	return out
}

func (p *Palette) String() string {
	var b strings.Builder
	b.WriteByte('[')
	for i, c := range p.colors {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(c.String())
	}
	b.WriteByte(']')
	return b.String()
}

func (p *Palette) contains(c colormodel.Color) bool {
	for _, prev := range p.colors {
		if prev == c {
			return true
		}
	}
	return false
}

func (p *Palette) assertIndex(i int) {
	if i < 0 || i >= len(p.colors) {
		panic(fmt.Sprintf("palette: index %d out of range [0, %d)", i, len(p.colors)))
	}
}

func (p *Palette) assertNotEmpty() {
	if len(p.colors) == 0 {
		panic("palette: operation requires a non-empty palette")
	}
}
