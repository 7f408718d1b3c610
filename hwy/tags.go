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

// Tag represents a vector size tag that determines how many lanes
// are used in SIMD operations.
type Tag interface {
	// Width returns the width in bytes (16 for 128-bit, 32 for 256-bit, etc.)
	Width() int

	// Name returns a human-readable name for this tag ("sse2", "avx2", etc.)
	Name() string
}

// ScalableTag adapts to the widest SIMD available at runtime.
// This is the recommended tag for most use cases.
//
// Usage:
//
//	tag := hwy.ScalableTag[float32]{}
//	maxLanes := tag.MaxLanes()
type ScalableTag[T Lanes] struct{}

// Width returns the current runtime SIMD width in bytes.
func (ScalableTag[T]) Width() int {
	return currentWidth
}

// Name returns the current runtime SIMD target name.
func (ScalableTag[T]) Name() string {
	return currentLevel.String()
}

// MaxLanes returns the maximum number of lanes for type T
// with the current SIMD width.
func (t ScalableTag[T]) MaxLanes() int {
	return MaxLanes[T]()
}

// FixedTag128 forces 128-bit vectors (SSE, NEON).
type FixedTag128[T Lanes] struct{}

// Width returns 16 bytes (128 bits).
func (FixedTag128[T]) Width() int {
	return 16
}

// Name returns "128bit".
func (FixedTag128[T]) Name() string {
	return "128bit"
}

// MaxLanes returns the number of T values that fit in 128 bits.
func (t FixedTag128[T]) MaxLanes() int {
	return lanesIn[T](16)
}

// FixedTag256 forces 256-bit vectors (AVX2).
type FixedTag256[T Lanes] struct{}

// Width returns 32 bytes (256 bits).
func (FixedTag256[T]) Width() int {
	return 32
}

// Name returns "256bit".
func (FixedTag256[T]) Name() string {
	return "256bit"
}

// MaxLanes returns the number of T values that fit in 256 bits.
func (t FixedTag256[T]) MaxLanes() int {
	return lanesIn[T](32)
}

// FixedTag512 forces 512-bit vectors (AVX-512).
type FixedTag512[T Lanes] struct{}

// Width returns 64 bytes (512 bits).
func (FixedTag512[T]) Width() int {
	return 64
}

// Name returns "512bit".
func (FixedTag512[T]) Name() string {
	return "512bit"
}

// MaxLanes returns the number of T values that fit in 512 bits.
func (t FixedTag512[T]) MaxLanes() int {
	return lanesIn[T](64)
}

// LanesFor returns the number of T lanes that fit in the tag's width.
func LanesFor[T Lanes](tag Tag) int {
	return lanesIn[T](tag.Width())
}

// LoadTag loads LanesFor(tag) values from src.
// Missing trailing values are zero.
func LoadTag[T Lanes](tag Tag, src []T) Vec[T] {
	return LoadN(LanesFor[T](tag), src)
}

// SetTag broadcasts value to every lane of a tag-sized vector.
func SetTag[T Lanes](tag Tag, value T) Vec[T] {
	return SetN(LanesFor[T](tag), value)
}

// ZeroTag returns a tag-sized vector of zeros.
func ZeroTag[T Lanes](tag Tag) Vec[T] {
	return ZeroN[T](LanesFor[T](tag))
}
