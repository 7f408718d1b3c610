// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package perlin adapts classic gradient noise from
// github.com/aquilax/go-perlin to the fbm.Sampler contract.
//
// Each generator runs a single octave; octave summation is left to the fbm
// package. Generators are built once per seed and shared, so Sample stays a
// pure function of its coordinates and seed.
package perlin

import (
	"fmt"
	stdmath "math"
	"sync"

	goperlin "github.com/aquilax/go-perlin"

	"github.com/go-highway/noise/hwy"
)

// alpha and beta only affect octaves after the first, which are never run.
const (
	alpha = 2
	beta  = 2
)

var generators sync.Map // int64 -> *goperlin.Perlin

// Generator returns the shared single-octave generator for seed.
func Generator(seed int64) *goperlin.Perlin {
	if g, ok := generators.Load(seed); ok {
		return g.(*goperlin.Perlin)
	}
	g, _ := generators.LoadOrStore(seed, goperlin.NewPerlin(alpha, beta, 1, seed))
	return g.(*goperlin.Perlin)
}

// Noise1D returns Perlin noise at x, clamped to [-1, 1].
func Noise1D(x float64, seed int64) float64 {
	return clamp(Generator(seed).Noise1D(x))
}

// Noise2D returns Perlin noise at (x, y), clamped to [-1, 1].
func Noise2D(x, y float64, seed int64) float64 {
	return clamp(Generator(seed).Noise2D(x, y))
}

// Noise3D returns Perlin noise at (x, y, z), clamped to [-1, 1].
// go-perlin folds negative z onto the 2D field, so callers wanting a true
// volume should keep z non-negative.
func Noise3D(x, y, z float64, seed int64) float64 {
	return clamp(Generator(seed).Noise3D(x, y, z))
}

func clamp(v float64) float64 {
	return stdmath.Max(-1, stdmath.Min(1, v))
}

// Sampler evaluates Perlin noise for 1 to 3 coordinate axes.
// It satisfies fbm.Sampler. Four or more axes panic.
type Sampler[T hwy.Floats] struct{}

// Sample dispatches on the number of axes.
func (Sampler[T]) Sample(axes []hwy.Vec[T], seed int64) hwy.Vec[T] {
	if len(axes) < 1 || len(axes) > 3 {
		panic(fmt.Sprintf("perlin: unsupported axis count %d (want 1..3)", len(axes)))
	}

	n := axes[0].NumLanes()
	for _, a := range axes[1:] {
		n = min(n, a.NumLanes())
	}
	lanes := make([][]T, len(axes))
	for d, a := range axes {
		lanes[d] = make([]T, n)
		hwy.Store(a, lanes[d])
	}

	g := Generator(seed)
	out := make([]T, n)
	for i := range n {
		var v float64
		switch len(axes) {
		case 1:
			v = g.Noise1D(float64(lanes[0][i]))
		case 2:
			v = g.Noise2D(float64(lanes[0][i]), float64(lanes[1][i]))
		case 3:
			v = g.Noise3D(float64(lanes[0][i]), float64(lanes[1][i]), float64(lanes[2][i]))
		}
		out[i] = T(clamp(v))
	}
	return hwy.LoadN(n, out)
}

// SupportsAxes reports whether Sample accepts n axes. It satisfies
// fbm.AxisChecker.
func (Sampler[T]) SupportsAxes(n int) bool {
	return n >= 1 && n <= 3
}
