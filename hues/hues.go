// Copyright (c) 2026, The Palette Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package hues provides circular math over the 0-360 degree hue wheel:
// shortest angular distance, wrap normalization, and bounded uniform
// jitter sampling for color generation.
package hues

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/chewxy/math32"
)

// Rand is the process-wide random source used when a caller does not
// inject its own. Callers needing deterministic output should pass a
// seeded *rand.Rand to the functions that sample, rather than mutating
// this variable.
var Rand = rand.New(rand.NewSource(time.Now().UnixNano()))

// Distance returns the shortest angular distance between two hues on
// the 360 degree wheel. Both hues must be within [0, 360]; values
// outside that range are a programmer error and panic.
func Distance(h1, h2 float32) float32 {
	if h1 < 0 || h1 > 360 || h2 < 0 || h2 > 360 {
		panic(fmt.Sprintf("hues: Distance inputs must be within [0, 360], got %g and %g", h1, h2))
	}
	d := math32.Abs(h1 - h2)
	return math32.Min(d, 360-d)
}

// Normalize wraps a hue of any magnitude or sign into [0, 360).
func Normalize(h float32) float32 {
	return math32.Mod(math32.Mod(h, 360)+360, 360)
}

// Jitter returns a uniformly sampled value in [-magnitude/2, +magnitude/2].
// The magnitude must be greater than zero. A nil rng draws from [Rand].
func Jitter(rng *rand.Rand, magnitude float32) float32 {
	if magnitude <= 0 {
		panic(fmt.Sprintf("hues: Jitter magnitude must be > 0, got %g", magnitude))
	}
	if rng == nil {
		rng = Rand
	}
	return (rng.Float32() - 0.5) * magnitude
}
