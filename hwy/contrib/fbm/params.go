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
	"errors"
	"fmt"
	stdmath "math"

	"github.com/go-highway/noise/hwy"
)

// ErrInvalidParameter is returned when noise parameters are outside the
// domain the bulk APIs accept.
var ErrInvalidParameter = errors.New("fbm: invalid parameter")

// ErrLengthMismatch is returned when coordinate slices are shorter than the
// output they are meant to fill.
var ErrLengthMismatch = errors.New("fbm: coordinate length mismatch")

// Params bundles the scalar controls shared by every lane.
type Params[T hwy.Floats] struct {
	// Lacunarity is the per-octave frequency multiplier, usually > 1.
	Lacunarity T
	// Gain is the per-octave amplitude multiplier, usually in (0, 1].
	Gain T
	// Octaves is the number of octaves summed; 0 behaves like 1.
	Octaves uint8
	// Seed selects the noise field.
	Seed int64
}

// DefaultParams returns lacunarity 2, gain 0.5, 3 octaves and seed 1.
func DefaultParams[T hwy.Floats]() Params[T] {
	return Params[T]{
		Lacunarity: 2,
		Gain:       0.5,
		Octaves:    3,
		Seed:       1,
	}
}

// Validate reports whether p can be evaluated without a degenerate divisor.
// Gain must be positive and both multipliers must be finite. Octaves and
// Seed accept every value.
func (p Params[T]) Validate() error {
	if !isFinite(p.Lacunarity) {
		return fmt.Errorf("%w: lacunarity %v is not finite", ErrInvalidParameter, p.Lacunarity)
	}
	if !isFinite(p.Gain) {
		return fmt.Errorf("%w: gain %v is not finite", ErrInvalidParameter, p.Gain)
	}
	if p.Gain <= 0 {
		return fmt.Errorf("%w: gain %v must be positive", ErrInvalidParameter, p.Gain)
	}
	return nil
}

// AmplitudeSum returns the divisor the kernels use for p:
// 1 + gain + gain² + ... over max(octaves, 1) terms.
func (p Params[T]) AmplitudeSum() T {
	amp, sum := T(1), T(1)
	for range max(int(p.Octaves)-1, 0) {
		amp *= p.Gain
		sum += amp
	}
	return sum
}

func isFinite[T hwy.Floats](v T) bool {
	f := float64(v)
	return !stdmath.IsNaN(f) && !stdmath.IsInf(f, 0)
}
