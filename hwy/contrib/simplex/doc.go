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

// Package simplex provides seeded simplex noise over 1 to 4 dimensions.
//
// It is the base noise primitive layered by package fbm: a smooth,
// deterministic function of (coordinates, seed) with output in [-1, 1].
//
// # Scalar and Vector Forms
//
// The scalar kernels evaluate one point:
//
//	v := simplex.Noise3D(x, y, z, seed)
//
// The vector kernels evaluate every lane of the coordinate vectors
// independently and return one value per lane:
//
//	n := simplex.BaseSimplex3DVec(vx, vy, vz, seed)
//
// Sampler adapts the vector kernels to the fbm.Sampler contract, choosing
// the kernel from the number of axes.
//
// # Seeding
//
// Lattice gradients are picked by hashing the integer corner coordinates
// together with the 64-bit seed, so every seed selects an independent
// noise field without per-seed tables.
package simplex
