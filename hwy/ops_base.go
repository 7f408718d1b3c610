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

import (
	"math"
	"slices"
)

// This file provides the pure Go implementations of the vector operations.
// Every operation works lane by lane over however many lanes its inputs
// carry; binary operations use the shorter of the two inputs.

// Load creates a vector by loading data from a slice.
// At most MaxLanes values are read; a shorter src yields a shorter vector.
func Load[T Lanes](src []T) Vec[T] {
	n := min(len(src), MaxLanes[T]())
	data := make([]T, n)
	copy(data, src[:n])
	return Vec[T]{data: data}
}

// LoadN creates an n-lane vector from src. Lanes past len(src) are zero.
func LoadN[T Lanes](n int, src []T) Vec[T] {
	data := make([]T, n)
	copy(data, src)
	return Vec[T]{data: data}
}

// Store writes a vector's data to a slice.
func Store[T Lanes](v Vec[T], dst []T) {
	n := min(len(dst), len(v.data))
	copy(dst[:n], v.data[:n])
}

// Set creates a vector with all lanes set to the same value.
func Set[T Lanes](value T) Vec[T] {
	return SetN(MaxLanes[T](), value)
}

// SetN creates an n-lane vector with all lanes set to value.
func SetN[T Lanes](n int, value T) Vec[T] {
	data := make([]T, n)
	for i := range data {
		data[i] = value
	}
	return Vec[T]{data: data}
}

// Const creates a vector with all lanes set to the given float32 constant.
// This allows writing generic code without T(constant) conversions.
// Usage: hwy.Const[T](1.0) creates a Vec[T] with all lanes set to 1.0
func Const[T Lanes](val float32) Vec[T] {
	return Set(T(val))
}

// Zero creates a vector with all lanes set to zero.
func Zero[T Lanes]() Vec[T] {
	return ZeroN[T](MaxLanes[T]())
}

// ZeroN creates an n-lane vector of zeros.
func ZeroN[T Lanes](n int) Vec[T] {
	return Vec[T]{data: make([]T, n)}
}

func binary[T Lanes](a, b Vec[T], op func(x, y T) T) Vec[T] {
	n := min(len(a.data), len(b.data))
	result := make([]T, n)
	for i := range n {
		result[i] = op(a.data[i], b.data[i])
	}
	return Vec[T]{data: result}
}

func unary[T Lanes](v Vec[T], op func(x T) T) Vec[T] {
	result := make([]T, len(v.data))
	for i, x := range v.data {
		result[i] = op(x)
	}
	return Vec[T]{data: result}
}

// Add performs element-wise addition.
func Add[T Lanes](a, b Vec[T]) Vec[T] {
	return binary(a, b, func(x, y T) T { return x + y })
}

// Sub performs element-wise subtraction.
func Sub[T Lanes](a, b Vec[T]) Vec[T] {
	return binary(a, b, func(x, y T) T { return x - y })
}

// Mul performs element-wise multiplication.
func Mul[T Lanes](a, b Vec[T]) Vec[T] {
	return binary(a, b, func(x, y T) T { return x * y })
}

// Div performs element-wise division.
// Division by zero follows IEEE 754 and yields ±Inf or NaN.
func Div[T Floats](a, b Vec[T]) Vec[T] {
	return binary(a, b, func(x, y T) T { return x / y })
}

// MulAdd computes a*b + c element-wise.
func MulAdd[T Floats](a, b, c Vec[T]) Vec[T] {
	n := min(len(a.data), len(b.data), len(c.data))
	result := make([]T, n)
	for i := range n {
		result[i] = a.data[i]*b.data[i] + c.data[i]
	}
	return Vec[T]{data: result}
}

// Neg negates each lane.
func Neg[T Lanes](v Vec[T]) Vec[T] {
	return unary(v, func(x T) T { return -x })
}

// Abs returns the absolute value of each lane.
func Abs[T Lanes](v Vec[T]) Vec[T] {
	return unary(v, func(x T) T {
		if x < 0 {
			return -x
		}
		return x
	})
}

// Min returns the element-wise minimum.
func Min[T Lanes](a, b Vec[T]) Vec[T] {
	return binary(a, b, func(x, y T) T { return min(x, y) })
}

// Max returns the element-wise maximum.
func Max[T Lanes](a, b Vec[T]) Vec[T] {
	return binary(a, b, func(x, y T) T { return max(x, y) })
}

// Floor rounds each lane toward negative infinity.
func Floor[T Floats](v Vec[T]) Vec[T] {
	return unary(v, func(x T) T { return T(math.Floor(float64(x))) })
}

// ReduceSum returns the sum of all lanes.
func ReduceSum[T Lanes](v Vec[T]) T {
	var sum T
	for _, x := range v.data {
		sum += x
	}
	return sum
}

// ReduceMin returns the minimum lane value. An empty vector yields zero.
func ReduceMin[T Lanes](v Vec[T]) T {
	if len(v.data) == 0 {
		var zero T
		return zero
	}
	return slices.Min(v.data)
}

// ReduceMax returns the maximum lane value. An empty vector yields zero.
func ReduceMax[T Lanes](v Vec[T]) T {
	if len(v.data) == 0 {
		var zero T
		return zero
	}
	return slices.Max(v.data)
}

func compare[T Lanes](a, b Vec[T], op func(x, y T) bool) Mask[T] {
	n := min(len(a.data), len(b.data))
	bits := make([]bool, n)
	for i := range n {
		bits[i] = op(a.data[i], b.data[i])
	}
	return Mask[T]{bits: bits}
}

// LessThan returns a mask of lanes where a < b.
func LessThan[T Lanes](a, b Vec[T]) Mask[T] {
	return compare(a, b, func(x, y T) bool { return x < y })
}

// GreaterThan returns a mask of lanes where a > b.
func GreaterThan[T Lanes](a, b Vec[T]) Mask[T] {
	return compare(a, b, func(x, y T) bool { return x > y })
}

// IsFinite returns a mask of lanes that are neither NaN nor ±Inf.
func IsFinite[T Floats](v Vec[T]) Mask[T] {
	bits := make([]bool, len(v.data))
	for i, x := range v.data {
		f := float64(x)
		bits[i] = !math.IsNaN(f) && !math.IsInf(f, 0)
	}
	return Mask[T]{bits: bits}
}

// IfThenElse selects a where mask is set and b elsewhere.
func IfThenElse[T Lanes](mask Mask[T], a, b Vec[T]) Vec[T] {
	n := min(len(mask.bits), len(a.data), len(b.data))
	result := make([]T, n)
	for i := range n {
		if mask.bits[i] {
			result[i] = a.data[i]
		} else {
			result[i] = b.data[i]
		}
	}
	return Vec[T]{data: result}
}

// MaskLoad loads the active lanes of mask from src; inactive lanes are zero.
func MaskLoad[T Lanes](mask Mask[T], src []T) Vec[T] {
	data := make([]T, len(mask.bits))
	for i, bit := range mask.bits {
		if bit && i < len(src) {
			data[i] = src[i]
		}
	}
	return Vec[T]{data: data}
}

// MaskStore writes the active lanes of v to dst.
func MaskStore[T Lanes](mask Mask[T], v Vec[T], dst []T) {
	for i, bit := range mask.bits {
		if bit && i < len(v.data) && i < len(dst) {
			dst[i] = v.data[i]
		}
	}
}
