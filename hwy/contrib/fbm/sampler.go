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
)

// Sampler is the base noise primitive layered by the FBM kernels.
//
// Sample must be a pure, deterministic function of its arguments, continuous
// in the coordinates and bounded for bounded inputs. axes holds one vector
// per coordinate axis; the result has one lane per sample point.
type Sampler[T hwy.Floats] interface {
	Sample(axes []hwy.Vec[T], seed int64) hwy.Vec[T]
}

// SamplerFunc adapts a function to the Sampler interface.
type SamplerFunc[T hwy.Floats] func(axes []hwy.Vec[T], seed int64) hwy.Vec[T]

// Sample calls f(axes, seed).
func (f SamplerFunc[T]) Sample(axes []hwy.Vec[T], seed int64) hwy.Vec[T] {
	return f(axes, seed)
}

// AxisChecker is implemented by samplers that accept only some axis counts.
// FBMSlice and GenerateGrid consult it so an unsupported count is returned
// as an error instead of panicking inside Sample.
type AxisChecker interface {
	SupportsAxes(n int) bool
}

func checkAxes[T hwy.Floats](s Sampler[T], n int) error {
	if c, ok := s.(AxisChecker); ok && !c.SupportsAxes(n) {
		return fmt.Errorf("%w: sampler %T does not support %d axes", ErrInvalidParameter, s, n)
	}
	return nil
}
