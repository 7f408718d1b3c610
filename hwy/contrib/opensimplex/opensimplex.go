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

// Package opensimplex adapts github.com/ojrac/opensimplex-go to the
// fbm.Sampler contract.
//
// OpenSimplex has no 1D kernel; one axis is sampled along the line y = 0 of
// the 2D field. Generators are built once per seed and shared.
package opensimplex

import (
	"fmt"
	stdmath "math"
	"sync"

	osx "github.com/ojrac/opensimplex-go"

	"github.com/go-highway/noise/hwy"
)

var generators sync.Map // int64 -> osx.Noise

// Generator returns the shared generator for seed.
func Generator(seed int64) osx.Noise {
	if g, ok := generators.Load(seed); ok {
		return g.(osx.Noise)
	}
	g, _ := generators.LoadOrStore(seed, osx.New(seed))
	return g.(osx.Noise)
}

// Sampler evaluates OpenSimplex noise for 1 to 4 coordinate axes.
// It satisfies fbm.Sampler.
type Sampler[T hwy.Floats] struct{}

// Sample dispatches on the number of axes. Any other axis count panics.
func (Sampler[T]) Sample(axes []hwy.Vec[T], seed int64) hwy.Vec[T] {
	if len(axes) < 1 || len(axes) > 4 {
		panic(fmt.Sprintf("opensimplex: unsupported axis count %d (want 1..4)", len(axes)))
	}

	n := axes[0].NumLanes()
	for _, a := range axes[1:] {
		n = min(n, a.NumLanes())
	}
	var c [4][]float64
	for d, a := range axes {
		lanes := make([]T, n)
		hwy.Store(a, lanes)
		c[d] = make([]float64, n)
		for i, v := range lanes {
			c[d][i] = float64(v)
		}
	}

	g := Generator(seed)
	out := make([]T, n)
	for i := range n {
		var v float64
		switch len(axes) {
		case 1:
			v = g.Eval2(c[0][i], 0)
		case 2:
			v = g.Eval2(c[0][i], c[1][i])
		case 3:
			v = g.Eval3(c[0][i], c[1][i], c[2][i])
		case 4:
			v = g.Eval4(c[0][i], c[1][i], c[2][i], c[3][i])
		}
		out[i] = T(stdmath.Max(-1, stdmath.Min(1, v)))
	}
	return hwy.LoadN(n, out)
}

// SupportsAxes reports whether Sample accepts n axes. It satisfies
// fbm.AxisChecker.
func (Sampler[T]) SupportsAxes(n int) bool {
	return n >= 1 && n <= 4
}
