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
	stdmath "math"
	"testing"

	"github.com/go-highway/noise/hwy"
)

// samplePoints returns n deterministic coordinates spread over [-span, span].
func samplePoints(n int, span float64) []float64 {
	pts := make([]float64, n)
	for i := range pts {
		pts[i] = -span + 2*span*float64(i)/float64(n-1) + 0.0137*float64(i%7)
	}
	return pts
}

type noiseFunc func(c []float64, seed int64) float64

var kernels = []struct {
	name string
	dims int
	fn   noiseFunc
}{
	{"1D", 1, func(c []float64, seed int64) float64 { return Noise1D(c[0], seed) }},
	{"2D", 2, func(c []float64, seed int64) float64 { return Noise2D(c[0], c[1], seed) }},
	{"3D", 3, func(c []float64, seed int64) float64 { return Noise3D(c[0], c[1], c[2], seed) }},
	{"4D", 4, func(c []float64, seed int64) float64 { return Noise4D(c[0], c[1], c[2], c[3], seed) }},
}

// coordsAt builds a point whose axes are decorrelated views of pts.
func coordsAt(pts []float64, i, dims int) []float64 {
	c := make([]float64, dims)
	for d := range dims {
		c[d] = pts[(i*(d+3)+d*11)%len(pts)]
	}
	return c
}

func TestNoiseRange(t *testing.T) {
	pts := samplePoints(257, 40)
	for _, k := range kernels {
		t.Run(k.name, func(t *testing.T) {
			var maxAbs float64
			for i := range 2000 {
				v := k.fn(coordsAt(pts, i, k.dims), 7)
				if v < -1 || v > 1 || stdmath.IsNaN(v) {
					t.Fatalf("value %v out of [-1, 1] at sample %d", v, i)
				}
				maxAbs = stdmath.Max(maxAbs, stdmath.Abs(v))
			}
			if maxAbs < 0.1 {
				t.Errorf("max |noise| = %v, field looks flat", maxAbs)
			}
		})
	}
}

func TestNoiseDeterministic(t *testing.T) {
	pts := samplePoints(101, 10)
	for _, k := range kernels {
		t.Run(k.name, func(t *testing.T) {
			for i := range 200 {
				c := coordsAt(pts, i, k.dims)
				a, b := k.fn(c, -99), k.fn(c, -99)
				if stdmath.Float64bits(a) != stdmath.Float64bits(b) {
					t.Fatalf("sample %d: %v != %v", i, a, b)
				}
			}
		})
	}
}

func TestNoiseSeedSelectsField(t *testing.T) {
	pts := samplePoints(101, 10)
	for _, k := range kernels {
		t.Run(k.name, func(t *testing.T) {
			differ := 0
			for i := range 200 {
				c := coordsAt(pts, i, k.dims)
				if k.fn(c, 1) != k.fn(c, 2) {
					differ++
				}
			}
			if differ < 100 {
				t.Errorf("seeds 1 and 2 differ at %d/200 points, want most", differ)
			}
		})
	}
}

func TestNoiseContinuous(t *testing.T) {
	const eps = 1e-7
	pts := samplePoints(97, 5)
	for _, k := range kernels {
		t.Run(k.name, func(t *testing.T) {
			for i := range 200 {
				c := coordsAt(pts, i, k.dims)
				shifted := append([]float64(nil), c...)
				for d := range shifted {
					shifted[d] += eps
				}
				if diff := stdmath.Abs(k.fn(c, 3) - k.fn(shifted, 3)); diff > 1e-3 {
					t.Fatalf("sample %d: jump of %v for a step of %v", i, diff, eps)
				}
			}
		})
	}
}

func TestNoise1DZeroAtIntegers(t *testing.T) {
	for _, x := range []float64{-3, -1, 0, 1, 2, 1000} {
		if v := Noise1D(x, 42); v != 0 {
			t.Errorf("Noise1D(%v) = %v, want 0", x, v)
		}
	}
}

func TestNoise2DZeroAtOrigin(t *testing.T) {
	if v := Noise2D(0, 0, 42); v != 0 {
		t.Errorf("Noise2D(0, 0) = %v, want 0", v)
	}
}

func TestNoiseNaNPropagates(t *testing.T) {
	nan := stdmath.NaN()
	if v := Noise2D(nan, 0.5, 1); !stdmath.IsNaN(v) {
		t.Errorf("Noise2D(NaN, 0.5) = %v, want NaN", v)
	}
	if v := Noise1D(nan, 1); !stdmath.IsNaN(v) {
		t.Errorf("Noise1D(NaN) = %v, want NaN", v)
	}
}

func TestFastFloor(t *testing.T) {
	tests := []struct {
		in   float64
		want int64
	}{
		{0, 0}, {0.5, 0}, {1, 1}, {-0.5, -1}, {-1, -1}, {-1.5, -2}, {2.9999, 2},
	}
	for _, tt := range tests {
		if got := fastFloor(tt.in); got != tt.want {
			t.Errorf("fastFloor(%v) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestVecMatchesScalar(t *testing.T) {
	xs := []float64{0.1, -2.3, 5.5, 7.25, -0.75, 3.3, 9.1, -4.4}
	ys := []float64{1.2, 0.4, -3.1, 2.2, 8.8, -6.5, 0.05, 2.5}
	zs := []float64{-0.3, 4.4, 1.1, -7.7, 2.6, 0.9, -1.8, 6.2}
	ws := []float64{2.2, -1.1, 0.6, 3.9, -5.2, 7.4, 1.3, -0.2}
	n := len(xs)
	x, y, z, w := hwy.LoadN(n, xs), hwy.LoadN(n, ys), hwy.LoadN(n, zs), hwy.LoadN(n, ws)
	const seed = 1234

	tests := []struct {
		name string
		got  hwy.Vec[float64]
		want func(i int) float64
	}{
		{"1D", BaseSimplex1DVec(x, seed), func(i int) float64 { return Noise1D(xs[i], seed) }},
		{"2D", BaseSimplex2DVec(x, y, seed), func(i int) float64 { return Noise2D(xs[i], ys[i], seed) }},
		{"3D", BaseSimplex3DVec(x, y, z, seed), func(i int) float64 { return Noise3D(xs[i], ys[i], zs[i], seed) }},
		{"4D", BaseSimplex4DVec(x, y, z, w, seed), func(i int) float64 { return Noise4D(xs[i], ys[i], zs[i], ws[i], seed) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.got.Data()
			if len(got) != n {
				t.Fatalf("lanes = %d, want %d", len(got), n)
			}
			for i := range n {
				if got[i] != tt.want(i) {
					t.Errorf("lane %d: got %v, want %v", i, got[i], tt.want(i))
				}
			}
		})
	}
}

func TestVecFloat32(t *testing.T) {
	xs := []float32{0.5, 1.25, -3.75, 2}
	got := BaseSimplex1DVec(hwy.LoadN(4, xs), 9).Data()
	for i, x := range xs {
		if want := float32(Noise1D(float64(x), 9)); got[i] != want {
			t.Errorf("lane %d: got %v, want %v", i, got[i], want)
		}
	}
}

func TestSampler(t *testing.T) {
	var s Sampler[float64]
	x := hwy.LoadN(2, []float64{0.3, 1.7})
	y := hwy.LoadN(2, []float64{-0.4, 2.1})

	got := s.Sample([]hwy.Vec[float64]{x, y}, 5).Data()
	for i := range 2 {
		want := Noise2D(x.Data()[i], y.Data()[i], 5)
		if got[i] != want {
			t.Errorf("Sample lane %d: got %v, want %v", i, got[i], want)
		}
	}

	defer func() {
		if recover() == nil {
			t.Error("Sample with 5 axes did not panic")
		}
	}()
	s.Sample([]hwy.Vec[float64]{x, x, x, x, x}, 5)
}

func TestSamplerSupportsAxes(t *testing.T) {
	var s Sampler[float32]
	for n := range 6 {
		want := n >= 1 && n <= 4
		if got := s.SupportsAxes(n); got != want {
			t.Errorf("SupportsAxes(%d) = %v, want %v", n, got, want)
		}
	}
}
