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

package perlin_test

import (
	stdmath "math"
	"testing"

	goperlin "github.com/aquilax/go-perlin"
	"github.com/stretchr/testify/require"

	"github.com/go-highway/noise/hwy"
	"github.com/go-highway/noise/hwy/contrib/fbm"
	"github.com/go-highway/noise/hwy/contrib/perlin"
	"github.com/go-highway/noise/hwy/contrib/workerpool"
)

func clamp(v float64) float64 {
	return stdmath.Max(-1, stdmath.Min(1, v))
}

func TestMatchesGoPerlin(t *testing.T) {
	ref := goperlin.NewPerlin(2, 2, 1, 5)
	for i := range 50 {
		x := -7 + 0.31*float64(i)
		y := 3 - 0.17*float64(i)
		z := 0.05 * float64(i)
		require.Equal(t, clamp(ref.Noise1D(x)), perlin.Noise1D(x, 5))
		require.Equal(t, clamp(ref.Noise2D(x, y)), perlin.Noise2D(x, y, 5))
		require.Equal(t, clamp(ref.Noise3D(x, y, z)), perlin.Noise3D(x, y, z, 5))
	}
}

func TestGeneratorCached(t *testing.T) {
	require.Same(t, perlin.Generator(9), perlin.Generator(9))
	require.NotSame(t, perlin.Generator(9), perlin.Generator(10))
}

func TestSamplerMatchesScalar(t *testing.T) {
	xs := []float64{0.1, 1.7, -2.3, 4.45}
	ys := []float64{3.3, -0.9, 0.6, 2.05}
	zs := []float64{0.2, 0.4, 1.6, 3.2}
	s := perlin.Sampler[float64]{}

	x, y, z := hwy.LoadN(4, xs), hwy.LoadN(4, ys), hwy.LoadN(4, zs)
	one := s.Sample([]hwy.Vec[float64]{x}, 3).Data()
	two := s.Sample([]hwy.Vec[float64]{x, y}, 3).Data()
	three := s.Sample([]hwy.Vec[float64]{x, y, z}, 3).Data()
	for i := range xs {
		require.Equal(t, perlin.Noise1D(xs[i], 3), one[i], "1D lane %d", i)
		require.Equal(t, perlin.Noise2D(xs[i], ys[i], 3), two[i], "2D lane %d", i)
		require.Equal(t, perlin.Noise3D(xs[i], ys[i], zs[i], 3), three[i], "3D lane %d", i)
	}
}

func TestSamplerBounded(t *testing.T) {
	s := perlin.Sampler[float32]{}
	for i := range 200 {
		v := float32(i)*0.173 - 17
		out := s.Sample([]hwy.Vec[float32]{hwy.SetN(2, v), hwy.SetN(2, -v)}, int64(i))
		for _, got := range out.Data() {
			require.LessOrEqual(t, stdmath.Abs(float64(got)), 1.0)
		}
	}
}

func TestSamplerRejectsFourAxes(t *testing.T) {
	x := hwy.SetN(2, 0.5)
	require.PanicsWithValue(t, "perlin: unsupported axis count 4 (want 1..3)", func() {
		perlin.Sampler[float64]{}.Sample([]hwy.Vec[float64]{x, x, x, x}, 0)
	})
}

func TestSupportsAxes(t *testing.T) {
	s := perlin.Sampler[float64]{}
	for n, want := range []bool{false, true, true, true, false} {
		require.Equal(t, want, s.SupportsAxes(n), "axes=%d", n)
	}
}

func TestFourAxesReturnError(t *testing.T) {
	pool := workerpool.New(4)
	defer pool.Close()
	s := perlin.Sampler[float64]{}

	xs := []float64{0.1, 0.2, 0.3}
	err := fbm.FBMSlice[float64](s, [][]float64{xs, xs, xs, xs}, make([]float64, 3), fbm.DefaultParams[float64]())
	require.ErrorIs(t, err, fbm.ErrInvalidParameter)

	g := fbm.Grid[float64]{Dims: []int{128, 128, 1, 1}, Frequency: 0.1}
	out, _, _, err := fbm.GenerateGrid[float64](pool, s, g, fbm.DefaultParams[float64]())
	require.ErrorIs(t, err, fbm.ErrInvalidParameter)
	require.Nil(t, out)
}

func TestFBMOverPerlin(t *testing.T) {
	s := perlin.Sampler[float64]{}
	x := hwy.LoadN(3, []float64{0.3, 1.3, 2.3})
	y := hwy.LoadN(3, []float64{0.7, 0.2, 5.1})

	got := fbm.BaseFBM2DWith[float64](s, x, y, 2, 0.5, 3, 21).Data()
	for i := range 3 {
		xi, yi := x.Data()[i], y.Data()[i]
		want := (perlin.Noise2D(xi, yi, 21) +
			0.5*perlin.Noise2D(2*xi, 2*yi, 21) +
			0.25*perlin.Noise2D(4*xi, 4*yi, 21)) / 1.75
		require.InDelta(t, want, got[i], 1e-12, "lane %d", i)
	}
}
