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

// Package contrib holds the noise kernels built on the hwy vector layer.
//
// # Subpackages
//
//   - fbm: fractal Brownian motion over any Sampler, with slice and grid helpers
//   - simplex: seeded simplex noise in 1 to 4 dimensions
//   - opensimplex: OpenSimplex noise in 1 to 4 dimensions
//   - perlin: classic Perlin noise in 1 to 3 dimensions
//   - workerpool: persistent worker pool used for grid generation
//
// # Fractal Brownian motion (hwy/contrib/fbm)
//
//	import "github.com/go-highway/noise/hwy/contrib/fbm"
//
//	x := hwy.Load(xs)
//	y := hwy.Load(ys)
//	v := fbm.BaseFBM2D(x, y, 2, 0.5, 5, seed)
//
//	// Checked bulk form
//	err := fbm.FBM2DSlice(xs, ys, out, fbm.DefaultParams[float32]())
//
// # Custom primitives
//
// Any type with a Sample(axes []hwy.Vec[T], seed int64) hwy.Vec[T] method can
// drive the accumulator:
//
//	v := fbm.BaseFBM2DWith[float32](perlin.Sampler[float32]{}, x, y, 2, 0.5, 5, seed)
//
// # Grids
//
//	pool := workerpool.New(0)
//	defer pool.Close()
//	g := fbm.Grid[float32]{Dims: []int{512, 512}, Frequency: 0.01}
//	data, lo, hi, err := fbm.GenerateGrid[float32](pool, simplex.Sampler[float32]{}, g, p)
package contrib
