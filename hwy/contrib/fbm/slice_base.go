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

package fbm

import (
	"fmt"

	"github.com/go-highway/noise/hwy"
	"github.com/go-highway/noise/hwy/contrib/simplex"
)

// BaseFBMSlice fills out with FBM samples over structure-of-arrays
// coordinates: coords[d][i] is axis d of sample i. Samples beyond the
// shortest coordinate slice are left untouched.
//
// Full vectors are loaded directly; the remainder is processed with a tail
// mask, so every sample sees the same per-lane computation.
func BaseFBMSlice[T hwy.Floats](s Sampler[T], coords [][]T, out []T, p Params[T]) {
	size := len(out)
	for _, c := range coords {
		size = min(size, len(c))
	}
	if size == 0 || len(coords) == 0 {
		return
	}

	axes := make([]hwy.Vec[T], len(coords))
	hwy.ProcessWithTail[T](size,
		func(offset int) {
			for d, c := range coords {
				axes[d] = hwy.Load(c[offset:])
			}
			result := BaseFBM(s, axes, p.Lacunarity, p.Gain, p.Octaves, p.Seed)
			hwy.Store(result, out[offset:])
		},
		func(offset, count int) {
			mask := hwy.TailMask[T](count)
			for d, c := range coords {
				axes[d] = hwy.MaskLoad(mask, c[offset:])
			}
			result := BaseFBM(s, axes, p.Lacunarity, p.Gain, p.Octaves, p.Seed)
			hwy.MaskStore(mask, result, out[offset:])
		},
	)
}

// BaseFBM1DSlice fills out[i] with 1D simplex FBM at xs[i].
func BaseFBM1DSlice[T hwy.Floats](xs, out []T, p Params[T]) {
	BaseFBMSlice[T](simplex.Sampler[T]{}, [][]T{xs}, out, p)
}

// BaseFBM2DSlice fills out[i] with 2D simplex FBM at (xs[i], ys[i]).
func BaseFBM2DSlice[T hwy.Floats](xs, ys, out []T, p Params[T]) {
	BaseFBMSlice[T](simplex.Sampler[T]{}, [][]T{xs, ys}, out, p)
}

// BaseFBM3DSlice fills out[i] with 3D simplex FBM at (xs[i], ys[i], zs[i]).
func BaseFBM3DSlice[T hwy.Floats](xs, ys, zs, out []T, p Params[T]) {
	BaseFBMSlice[T](simplex.Sampler[T]{}, [][]T{xs, ys, zs}, out, p)
}

// BaseFBM4DSlice fills out[i] with 4D simplex FBM at (xs[i], ys[i], zs[i], ws[i]).
func BaseFBM4DSlice[T hwy.Floats](xs, ys, zs, ws, out []T, p Params[T]) {
	BaseFBMSlice[T](simplex.Sampler[T]{}, [][]T{xs, ys, zs, ws}, out, p)
}

// FBMSlice validates p and the coordinate lengths, then calls BaseFBMSlice.
// Nothing is written to out when an error is returned.
func FBMSlice[T hwy.Floats](s Sampler[T], coords [][]T, out []T, p Params[T]) error {
	if err := p.Validate(); err != nil {
		return err
	}
	if len(coords) < 1 || len(coords) > 4 {
		return fmt.Errorf("%w: %d axes, want 1..4", ErrInvalidParameter, len(coords))
	}
	if err := checkAxes(s, len(coords)); err != nil {
		return err
	}
	for d, c := range coords {
		if len(c) < len(out) {
			return fmt.Errorf("%w: axis %d has %d values for %d outputs", ErrLengthMismatch, d, len(c), len(out))
		}
	}
	BaseFBMSlice(s, coords, out, p)
	return nil
}

// FBM1DSlice is the validating form of BaseFBM1DSlice.
func FBM1DSlice[T hwy.Floats](xs, out []T, p Params[T]) error {
	return FBMSlice[T](simplex.Sampler[T]{}, [][]T{xs}, out, p)
}

// FBM2DSlice is the validating form of BaseFBM2DSlice.
func FBM2DSlice[T hwy.Floats](xs, ys, out []T, p Params[T]) error {
	return FBMSlice[T](simplex.Sampler[T]{}, [][]T{xs, ys}, out, p)
}

// FBM3DSlice is the validating form of BaseFBM3DSlice.
func FBM3DSlice[T hwy.Floats](xs, ys, zs, out []T, p Params[T]) error {
	return FBMSlice[T](simplex.Sampler[T]{}, [][]T{xs, ys, zs}, out, p)
}

// FBM4DSlice is the validating form of BaseFBM4DSlice.
func FBM4DSlice[T hwy.Floats](xs, ys, zs, ws, out []T, p Params[T]) error {
	return FBMSlice[T](simplex.Sampler[T]{}, [][]T{xs, ys, zs, ws}, out, p)
}
