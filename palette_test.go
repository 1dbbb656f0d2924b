// Copyright (c) 2026, The Palette Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package palette

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/james-alex/palette/colormodel"
)

var (
	red   = colormodel.RGB(255, 0, 0)
	green = colormodel.RGB(0, 255, 0)
	blue  = colormodel.RGB(0, 0, 255)
	white = colormodel.RGB(255, 255, 255)
	black = colormodel.RGB(0, 0, 0)
)

func mustNew(t *testing.T, colors []colormodel.Color, growable, unique bool) *Palette {
	t.Helper()
	p, err := New(colors, growable, unique)
	assert.NoError(t, err)
	return p
}

func TestNewOwnsColors(t *testing.T) {
	input := []colormodel.Color{red, green}
	p := mustNew(t, input, true, false)

	// Mutating the caller's slice must not affect the palette.
	input[0] = blue
	assert.Equal(t, red, p.At(0))

	// Colors returns a copy, not the backing slice.
	out := p.Colors()
	out[1] = blue
	assert.Equal(t, green, p.At(1))
}

func TestNewUniqueRejectsDuplicates(t *testing.T) {
	_, err := New([]colormodel.Color{red, green, red}, true, true)
	assert.ErrorIs(t, err, ErrDuplicateColor)

	// The same channels in different spaces are distinct colors.
	p, err := New([]colormodel.Color{red, red.To(colormodel.SpaceHSB)}, true, true)
	assert.NoError(t, err)
	assert.Equal(t, 2, p.Len())
}

func TestEmpty(t *testing.T) {
	p := Empty(true, false)
	assert.Equal(t, 0, p.Len())
	assert.NoError(t, p.Add(red))
	assert.Equal(t, 1, p.Len())
}

func TestAddInsertRemove(t *testing.T) {
	p := mustNew(t, []colormodel.Color{red, blue}, true, false)

	assert.NoError(t, p.Insert(1, green))
	assert.Equal(t, []colormodel.Color{red, green, blue}, p.Colors())

	assert.NoError(t, p.Add(white))
	assert.Equal(t, white, p.At(3))

	removed, err := p.RemoveAt(1)
	assert.NoError(t, err)
	assert.Equal(t, green, removed)
	assert.Equal(t, []colormodel.Color{red, blue, white}, p.Colors())

	assert.Panics(t, func() { p.Insert(5, green) })
	assert.Panics(t, func() { p.At(3) })
}

func TestFixedLength(t *testing.T) {
	p := mustNew(t, []colormodel.Color{red, green}, false, false)
	assert.False(t, p.Growable())

	assert.ErrorIs(t, p.Add(blue), ErrFixedLength)
	assert.ErrorIs(t, p.Insert(0, blue), ErrFixedLength)
	_, err := p.RemoveAt(0)
	assert.ErrorIs(t, err, ErrFixedLength)
	assert.Equal(t, 2, p.Len())

	// Replacement does not change the length and is allowed.
	assert.NoError(t, p.Set(0, blue))
	assert.Equal(t, blue, p.At(0))
}

func TestUniqueMode(t *testing.T) {
	p := mustNew(t, []colormodel.Color{red, green}, true, true)
	assert.True(t, p.Unique())

	assert.ErrorIs(t, p.Add(red), ErrDuplicateColor)
	assert.ErrorIs(t, p.Insert(0, green), ErrDuplicateColor)
	assert.ErrorIs(t, p.Set(0, green), ErrDuplicateColor)

	// Setting an index to its current value is not a duplicate.
	assert.NoError(t, p.Set(0, red))

	assert.NoError(t, p.Add(blue))
	assert.Equal(t, 3, p.Len())
}

func TestContainsIndexOf(t *testing.T) {
	p := mustNew(t, []colormodel.Color{red, green, red}, true, false)
	assert.True(t, p.Contains(red))
	assert.False(t, p.Contains(blue))
	assert.Equal(t, 0, p.IndexOf(red))
	assert.Equal(t, 1, p.IndexOf(green))
	assert.Equal(t, -1, p.IndexOf(blue))
}

func TestCloneIsIndependent(t *testing.T) {
	p := mustNew(t, []colormodel.Color{red, green}, false, true)
	q := p.Clone()
	assert.Equal(t, p.Colors(), q.Colors())
	assert.False(t, q.Growable())
	assert.True(t, q.Unique())

	assert.NoError(t, q.Set(0, blue))
	assert.Equal(t, red, p.At(0))
}

func TestReverse(t *testing.T) {
	p := mustNew(t, []colormodel.Color{red, green, blue}, true, false)
	p.Reverse()
	assert.Equal(t, []colormodel.Color{blue, green, red}, p.Colors())

	q := p.Reversed()
	assert.Equal(t, []colormodel.Color{red, green, blue}, q.Colors())
	assert.Equal(t, []colormodel.Color{blue, green, red}, p.Colors())
}

func TestString(t *testing.T) {
	p := mustNew(t, []colormodel.Color{red, green}, true, false)
	assert.Equal(t, "[rgb(255, 0, 0), rgb(0, 255, 0)]", p.String())
	assert.Equal(t, "[]", Empty(true, false).String())
}

func TestErrorsAreWrapped(t *testing.T) {
	p := mustNew(t, []colormodel.Color{red}, true, true)
	err := p.Add(red)
	assert.True(t, errors.Is(err, ErrDuplicateColor))
	assert.Contains(t, err.Error(), "rgb(255, 0, 0)")
}
