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
	"slices"

	"github.com/go-highway/noise/hwy"
)

//go:generate go run ../../../cmd/fbmgen -output z_fbm_dims.go -pkg fbm -dims 1,2,3,4 -unweighted 1

// BaseFBM computes weighted fractal Brownian motion over any number of axes.
//
// Octave 0 samples the coordinates as given, with amplitude 1. Each of the
// following max(octaves-1, 0) octaves multiplies every axis by lacunarity and
// the amplitude by gain, and adds amplitude times the sample. The sum is
// divided lane-wise by the sum of the amplitudes used, so octaves 0 and 1
// both return s.Sample(axes, seed) unchanged.
//
// The caller's vectors are not modified. gain <= 0 is not rejected; see the
// package documentation.
func BaseFBM[T hwy.Floats](s Sampler[T], axes []hwy.Vec[T], lacunarity, gain T, octaves uint8, seed int64) hwy.Vec[T] {
	return accumulate(s, axes, lacunarity, gain, octaves, seed, true)
}

// BaseFBMUnweighted is BaseFBM with octaves after the first added at full
// strength. The divisor is still the amplitude sum, so the result is not
// bounded by [-1, 1].
func BaseFBMUnweighted[T hwy.Floats](s Sampler[T], axes []hwy.Vec[T], lacunarity, gain T, octaves uint8, seed int64) hwy.Vec[T] {
	return accumulate(s, axes, lacunarity, gain, octaves, seed, false)
}

func accumulate[T hwy.Floats](s Sampler[T], axes []hwy.Vec[T], lacunarity, gain T, octaves uint8, seed int64, weighted bool) hwy.Vec[T] {
	lanes := laneCount(axes)
	vLac := hwy.SetN(lanes, lacunarity)
	vGain := hwy.SetN(lanes, gain)
	amp := hwy.SetN(lanes, T(1))
	scale := amp

	result := s.Sample(axes, seed)

	scaled := slices.Clone(axes)
	for range max(int(octaves)-1, 0) {
		for d := range scaled {
			scaled[d] = hwy.Mul(scaled[d], vLac)
		}
		amp = hwy.Mul(amp, vGain)
		scale = hwy.Add(scale, amp)

		n := s.Sample(scaled, seed)
		if weighted {
			result = hwy.MulAdd(n, amp, result)
		} else {
			result = hwy.Add(result, n)
		}
	}

	return hwy.Div(result, scale)
}

// laneCount returns the lane count shared by all axes.
func laneCount[T hwy.Floats](axes []hwy.Vec[T]) int {
	if len(axes) == 0 {
		return 0
	}
	n := axes[0].NumLanes()
	for _, a := range axes[1:] {
		n = min(n, a.NumLanes())
	}
	return n
}
