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
	"context"
	"fmt"
	"slices"

	"github.com/go-highway/noise/hwy"
	"github.com/go-highway/noise/hwy/contrib/workerpool"
)

// MinParallelGridSamples is the grid size below which GenerateGrid does not
// use the pool.
const MinParallelGridSamples = 16384

// GridRowBatch is the number of rows a worker claims at a time.
const GridRowBatch = 4

// Grid describes a regular lattice of sample points. Sample (i0, i1, ...)
// sits at Start[d] + i_d*Frequency on axis d.
type Grid[T hwy.Floats] struct {
	// Dims holds the number of samples per axis, x first. 1 to 4 entries.
	Dims []int
	// Start is the coordinate of sample (0, 0, ...). Nil means the origin.
	Start []T
	// Frequency is the coordinate step between neighboring samples.
	Frequency T
}

// Len returns the number of samples in g.
func (g Grid[T]) Len() int {
	n := 1
	for _, d := range g.Dims {
		n *= d
	}
	return n
}

func (g Grid[T]) validate() error {
	if len(g.Dims) < 1 || len(g.Dims) > 4 {
		return fmt.Errorf("%w: grid has %d axes, want 1..4", ErrInvalidParameter, len(g.Dims))
	}
	for d, n := range g.Dims {
		if n <= 0 {
			return fmt.Errorf("%w: grid axis %d has size %d", ErrInvalidParameter, d, n)
		}
	}
	if g.Start != nil && len(g.Start) != len(g.Dims) {
		return fmt.Errorf("%w: grid start has %d axes for %d dims", ErrLengthMismatch, len(g.Start), len(g.Dims))
	}
	if !isFinite(g.Frequency) {
		return fmt.Errorf("%w: grid frequency %v is not finite", ErrInvalidParameter, g.Frequency)
	}
	for d, v := range g.Start {
		if !isFinite(v) {
			return fmt.Errorf("%w: grid start %v on axis %d is not finite", ErrInvalidParameter, v, d)
		}
	}
	return nil
}

// GenerateGrid samples FBM over every point of g and returns the values in
// row-major order with x varying fastest, together with their minimum and
// maximum. Rows are spread over pool; a nil pool or a grid smaller than
// MinParallelGridSamples is filled on the calling goroutine. The result does
// not depend on how the rows were scheduled.
func GenerateGrid[T hwy.Floats](pool *workerpool.Pool, s Sampler[T], g Grid[T], p Params[T]) ([]T, T, T, error) {
	return GenerateGridCtx(context.Background(), pool, s, g, p)
}

// GenerateGridCtx is GenerateGrid with cancellation between row batches.
func GenerateGridCtx[T hwy.Floats](ctx context.Context, pool *workerpool.Pool, s Sampler[T], g Grid[T], p Params[T]) ([]T, T, T, error) {
	if err := p.Validate(); err != nil {
		return nil, 0, 0, err
	}
	if err := g.validate(); err != nil {
		return nil, 0, 0, err
	}
	if err := checkAxes(s, len(g.Dims)); err != nil {
		return nil, 0, 0, err
	}

	width := g.Dims[0]
	rows := g.Len() / width
	out := make([]T, g.Len())

	fillRows := func(start, end int) error {
		coords := make([][]T, len(g.Dims))
		for d := range coords {
			coords[d] = make([]T, width)
		}
		for r := start; r < end; r++ {
			g.rowCoords(r, coords)
			BaseFBMSlice(s, coords, out[r*width:(r+1)*width], p)
		}
		return nil
	}

	var err error
	if pool == nil || len(out) < MinParallelGridSamples {
		err = sequentialRows(ctx, rows, fillRows)
	} else {
		err = pool.ParallelForBatchedCtx(ctx, rows, GridRowBatch, fillRows)
	}
	if err != nil {
		return nil, 0, 0, err
	}

	return out, slices.Min(out), slices.Max(out), nil
}

func sequentialRows(ctx context.Context, rows int, fill func(start, end int) error) error {
	for r := 0; r < rows; r += GridRowBatch {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := fill(r, min(r+GridRowBatch, rows)); err != nil {
			return err
		}
	}
	return nil
}

// rowCoords writes the coordinates of row r into coords. Axis 0 runs along
// the row; the remaining axes are constant within it.
func (g Grid[T]) rowCoords(r int, coords [][]T) {
	start := func(d int) T {
		if g.Start == nil {
			return 0
		}
		return g.Start[d]
	}

	x0 := start(0)
	for i := range coords[0] {
		coords[0][i] = x0 + T(i)*g.Frequency
	}
	for d := 1; d < len(g.Dims); d++ {
		v := start(d) + T(r%g.Dims[d])*g.Frequency
		r /= g.Dims[d]
		for i := range coords[d] {
			coords[d][i] = v
		}
	}
}

// ScaleToRange linearly maps data from [min, max] onto [lo, hi] in place.
// When min == max every value becomes lo.
func ScaleToRange[T hwy.Floats](data []T, min, max, lo, hi T) {
	if max == min {
		for i := range data {
			data[i] = lo
		}
		return
	}

	k := (hi - lo) / (max - min)
	b := lo - min*k
	vk := hwy.Set(k)
	vb := hwy.Set(b)
	hwy.ProcessWithTail[T](len(data),
		func(offset int) {
			v := hwy.Load(data[offset:])
			hwy.Store(hwy.MulAdd(v, vk, vb), data[offset:])
		},
		func(offset, count int) {
			mask := hwy.TailMask[T](count)
			v := hwy.MaskLoad(mask, data[offset:])
			hwy.MaskStore(mask, hwy.MulAdd(v, vk, vb), data[offset:])
		},
	)
}
