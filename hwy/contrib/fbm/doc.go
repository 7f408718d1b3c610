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

// Package fbm provides SIMD fractal Brownian motion (FBM) noise.
//
// FBM sums successive octaves of a base noise function. Each octave scales
// the coordinates by the lacunarity and the amplitude by the gain, and the
// sum is divided by the total amplitude used:
//
//	result = (n(p) + g·n(l·p) + g²·n(l²·p) + ...) / (1 + g + g² + ...)
//
// All lanes of the coordinate vectors are independent sample points and are
// processed with identical control flow.
//
// # Vector Kernels
//
// One function per dimensionality, using simplex noise as the base:
//
//	BaseFBM1D(x, lacunarity, gain, octaves, seed)
//	BaseFBM2D(x, y, lacunarity, gain, octaves, seed)
//	BaseFBM3D(x, y, z, lacunarity, gain, octaves, seed)
//	BaseFBM4D(x, y, z, w, lacunarity, gain, octaves, seed)
//
// The ...With forms take any Sampler, and BaseFBM is the axis-generic
// algorithm all of them share. The lane count is the coordinates' lane
// count, so vectors built from any width tag work unchanged.
//
// # Octave Weighting
//
// The weighted form above is the canonical one. BaseFBM1DUnweighted and
// BaseFBMUnweighted keep the older 1D behavior in which octaves after the
// first are summed at full strength but the result is still divided by the
// amplitude sum.
//
// # Parameters
//
// The vector kernels do not validate their parameters: octaves 0 and 1 both
// return the base noise, and gain <= 0 can zero the divisor and yield Inf or
// NaN. Non-finite inputs propagate. The slice and grid APIs validate through
// Params.Validate and report ErrInvalidParameter instead.
//
// # Bulk Generation
//
//	FBM2DSlice(xs, ys, out, params)                   // structure-of-arrays input
//	GenerateGrid(pool, sampler, grid, params)         // regular grid, row-parallel
//	ScaleToRange(data, min, max, lo, hi)              // remap to an output range
package fbm
