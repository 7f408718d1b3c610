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

package hwy

// TailMask creates a mask with the first 'count' lanes active.
// This is useful for handling the tail (remainder) of an array
// when the size is not a multiple of the vector width.
//
// Example:
//
//	maxLanes := hwy.MaxLanes[float32]()
//	remaining := len(data) % maxLanes
//	if remaining > 0 {
//	    mask := hwy.TailMask[float32](remaining)
//	    v := hwy.MaskLoad(mask, data[len(data)-remaining:])
//	    // ... process tail
//	    hwy.MaskStore(mask, result, output[len(output)-remaining:])
//	}
func TailMask[T Lanes](count int) Mask[T] {
	return TailMaskN[T](MaxLanes[T](), count)
}

// TailMaskN is TailMask for an explicit lane count.
func TailMaskN[T Lanes](lanes, count int) Mask[T] {
	count = max(0, min(count, lanes))
	bits := make([]bool, lanes)
	for i := range count {
		bits[i] = true
	}
	return Mask[T]{bits: bits}
}

// ProcessWithTail is a helper for processing arrays with SIMD that handles
// both full vectors and the tail (remainder) automatically.
//
// It calls:
//   - fullFn(offset) for each full vector (offset is the starting index)
//   - tailFn(offset, count) once for the tail if size is not a multiple of vector width
func ProcessWithTail[T Lanes](size int, fullFn func(offset int), tailFn func(offset, count int)) {
	ProcessWithTailN(MaxLanes[T](), size, fullFn, tailFn)
}

// ProcessWithTailN is ProcessWithTail for an explicit lane count.
func ProcessWithTailN(lanes, size int, fullFn func(offset int), tailFn func(offset, count int)) {
	if lanes <= 0 {
		return
	}

	fullVectors := size / lanes
	for i := range fullVectors {
		fullFn(i * lanes)
	}

	remaining := size % lanes
	if remaining > 0 {
		tailFn(fullVectors*lanes, remaining)
	}
}

// AlignedSize rounds up size to the next multiple of vector width.
// This is useful for allocating buffers that will be processed with SIMD.
func AlignedSize[T Lanes](size int) int {
	maxLanes := MaxLanes[T]()
	if maxLanes == 0 {
		return size
	}
	return ((size + maxLanes - 1) / maxLanes) * maxLanes
}
