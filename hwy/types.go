// Package hwy provides the portable vector layer used by the noise kernels.
//
// It follows the Highway design philosophy: kernels are written once against
// Vec[T] and run with whatever lane count the current CPU offers. The lane
// count is detected at startup (AVX-512, AVX2, SSE2, NEON) or chosen
// explicitly through a width tag (FixedTag128, FixedTag256, FixedTag512).
//
// Basic usage:
//
//	import "github.com/go-highway/noise/hwy"
//
//	x := hwy.Load(xs)
//	y := hwy.MulAdd(x, hwy.Set[float32](2), hwy.Set[float32](1))
//	hwy.Store(y, out)
package hwy

// Floats is a constraint for floating-point types.
type Floats interface {
	~float32 | ~float64
}

// SignedInts is a constraint for signed integer types.
type SignedInts interface {
	~int8 | ~int16 | ~int32 | ~int64
}

// Lanes is a constraint for all types that can be stored in SIMD lanes.
type Lanes interface {
	Floats | SignedInts
}

// Vec is a portable vector handle. It wraps one value per lane.
//
// Vec instances should not be created directly; use Load, Set, Zero or one of
// their N/Tag variants instead.
type Vec[T Lanes] struct {
	data []T
}

// NumLanes returns the number of lanes (elements) in this vector.
func (v Vec[T]) NumLanes() int {
	return len(v.data)
}

// Data returns the underlying slice representation of the vector.
// This is primarily for testing and should not be used in performance-critical code.
func (v Vec[T]) Data() []T {
	return v.data
}

// Store writes the vector's data to a slice.
// This is the method form of the hwy.Store function.
func (v Vec[T]) Store(dst []T) {
	n := min(len(dst), len(v.data))
	copy(dst[:n], v.data[:n])
}

// Mask represents the result of a comparison operation.
// It can be used with IfThenElse, MaskLoad, and MaskStore to perform
// conditional operations.
type Mask[T Lanes] struct {
	bits []bool
}

// NumLanes returns the number of lanes in this mask.
func (m Mask[T]) NumLanes() int {
	return len(m.bits)
}

// AllTrue returns true if all lanes in the mask are active.
func (m Mask[T]) AllTrue() bool {
	for _, bit := range m.bits {
		if !bit {
			return false
		}
	}
	return true
}

// AnyTrue returns true if at least one lane in the mask is active.
func (m Mask[T]) AnyTrue() bool {
	for _, bit := range m.bits {
		if bit {
			return true
		}
	}
	return false
}

// CountTrue returns the number of active lanes in the mask.
func (m Mask[T]) CountTrue() int {
	count := 0
	for _, bit := range m.bits {
		if bit {
			count++
		}
	}
	return count
}

// GetBit returns whether lane i is active.
func (m Mask[T]) GetBit(i int) bool {
	if i < 0 || i >= len(m.bits) {
		return false
	}
	return m.bits[i]
}
