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

package simplex

import (
	"fmt"

	"github.com/go-highway/noise/hwy"
)

// The vector kernels spill their lanes, evaluate the scalar kernel per lane
// and reload. Lane count follows the shortest coordinate vector.

// BaseSimplex1DVec evaluates Noise1D for every lane of x.
func BaseSimplex1DVec[T hwy.Floats](x hwy.Vec[T], seed int64) hwy.Vec[T] {
	n := x.NumLanes()
	xs := make([]T, n)
	hwy.Store(x, xs)
	for i, v := range xs {
		xs[i] = T(Noise1D(float64(v), seed))
	}
	return hwy.LoadN(n, xs)
}

// BaseSimplex2DVec evaluates Noise2D for every lane of (x, y).
func BaseSimplex2DVec[T hwy.Floats](x, y hwy.Vec[T], seed int64) hwy.Vec[T] {
	n := min(x.NumLanes(), y.NumLanes())
	xs, ys := make([]T, n), make([]T, n)
	hwy.Store(x, xs)
	hwy.Store(y, ys)
	for i := range n {
		xs[i] = T(Noise2D(float64(xs[i]), float64(ys[i]), seed))
	}
	return hwy.LoadN(n, xs)
}

// BaseSimplex3DVec evaluates Noise3D for every lane of (x, y, z).
func BaseSimplex3DVec[T hwy.Floats](x, y, z hwy.Vec[T], seed int64) hwy.Vec[T] {
	n := min(x.NumLanes(), y.NumLanes(), z.NumLanes())
	xs, ys, zs := make([]T, n), make([]T, n), make([]T, n)
	hwy.Store(x, xs)
	hwy.Store(y, ys)
	hwy.Store(z, zs)
	for i := range n {
		xs[i] = T(Noise3D(float64(xs[i]), float64(ys[i]), float64(zs[i]), seed))
	}
	return hwy.LoadN(n, xs)
}

// BaseSimplex4DVec evaluates Noise4D for every lane of (x, y, z, w).
func BaseSimplex4DVec[T hwy.Floats](x, y, z, w hwy.Vec[T], seed int64) hwy.Vec[T] {
	n := min(x.NumLanes(), y.NumLanes(), z.NumLanes(), w.NumLanes())
	xs, ys, zs, ws := make([]T, n), make([]T, n), make([]T, n), make([]T, n)
	hwy.Store(x, xs)
	hwy.Store(y, ys)
	hwy.Store(z, zs)
	hwy.Store(w, ws)
	for i := range n {
		xs[i] = T(Noise4D(float64(xs[i]), float64(ys[i]), float64(zs[i]), float64(ws[i]), seed))
	}
	return hwy.LoadN(n, xs)
}

// Sampler evaluates simplex noise for 1 to 4 coordinate axes.
// It satisfies fbm.Sampler.
type Sampler[T hwy.Floats] struct{}

// Sample dispatches on the number of axes. Any other axis count panics.
func (Sampler[T]) Sample(axes []hwy.Vec[T], seed int64) hwy.Vec[T] {
	switch len(axes) {
	case 1:
		return BaseSimplex1DVec(axes[0], seed)
	case 2:
		return BaseSimplex2DVec(axes[0], axes[1], seed)
	case 3:
		return BaseSimplex3DVec(axes[0], axes[1], axes[2], seed)
	case 4:
		return BaseSimplex4DVec(axes[0], axes[1], axes[2], axes[3], seed)
	default:
		panic(fmt.Sprintf("simplex: unsupported axis count %d (want 1..4)", len(axes)))
	}
}

// SupportsAxes reports whether Sample accepts n axes. It satisfies
// fbm.AxisChecker.
func (Sampler[T]) SupportsAxes(n int) bool {
	return n >= 1 && n <= 4
}
