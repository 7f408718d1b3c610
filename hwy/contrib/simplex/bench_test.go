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
	"testing"

	"github.com/go-highway/noise/hwy"
)

var sink float64

func BenchmarkNoise(b *testing.B) {
	for _, k := range kernels {
		b.Run(k.name, func(b *testing.B) {
			c := []float64{0.3, 1.7, -2.2, 4.1}[:k.dims]
			for i := 0; i < b.N; i++ {
				c[0] += 0.001
				sink += k.fn(c, 1)
			}
		})
	}
}

func BenchmarkSampler(b *testing.B) {
	lanes := hwy.MaxLanes[float32]()
	for dims := 1; dims <= 4; dims++ {
		b.Run(fmt.Sprintf("%dD", dims), func(b *testing.B) {
			axes := make([]hwy.Vec[float32], dims)
			for d := range axes {
				axes[d] = hwy.SetN(lanes, float32(d)+0.5)
			}
			var s Sampler[float32]
			for i := 0; i < b.N; i++ {
				_ = s.Sample(axes, int64(i))
			}
		})
	}
}
