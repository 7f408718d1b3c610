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

import stdmath "math"

// fastFloor rounds toward negative infinity.
func fastFloor(x float64) int64 {
	i := int64(x)
	if float64(i) > x {
		return i - 1
	}
	return i
}

// fmix is the 64-bit murmur finalizer.
func fmix(h uint64) uint8 {
	h ^= h >> 33
	h *= 0xff51afd7ed558ccd
	h ^= h >> 33
	h *= 0xc4ceb9fe1a85ec53
	h ^= h >> 33
	return uint8(h)
}

func hash1(seed, i int64) uint8 {
	return fmix(uint64(seed)*seedMul ^ uint64(i)*primeX)
}

func hash2(seed, i, j int64) uint8 {
	return fmix(uint64(seed)*seedMul ^ uint64(i)*primeX ^ uint64(j)*primeY)
}

func hash3(seed, i, j, k int64) uint8 {
	return fmix(uint64(seed)*seedMul ^ uint64(i)*primeX ^ uint64(j)*primeY ^ uint64(k)*primeZ)
}

func hash4(seed, i, j, k, l int64) uint8 {
	return fmix(uint64(seed)*seedMul ^ uint64(i)*primeX ^ uint64(j)*primeY ^ uint64(k)*primeZ ^ uint64(l)*primeW)
}

func pick(cond bool, a, b float64) float64 {
	if cond {
		return a
	}
	return b
}

// grad1 uses gradients 1..8 with a random sign.
func grad1(hash uint8, x float64) float64 {
	h := hash & 15
	g := float64(1 + h&7)
	if h&8 != 0 {
		g = -g
	}
	return g * x
}

// grad2 uses 8 gradient directions.
func grad2(hash uint8, x, y float64) float64 {
	h := hash & 7
	u := pick(h < 4, x, y)
	v := pick(h < 4, y, x)
	return pick(h&1 != 0, -u, u) + pick(h&2 != 0, -2*v, 2*v)
}

// grad3 uses the 12 cube-edge directions; hashes 12..15 repeat four of them.
func grad3(hash uint8, x, y, z float64) float64 {
	h := hash & 15
	u := pick(h < 8, x, y)
	v := pick(h < 4, y, pick(h == 12 || h == 14, x, z))
	return pick(h&1 != 0, -u, u) + pick(h&2 != 0, -v, v)
}

// grad4 uses the 32 tesseract-edge directions.
func grad4(hash uint8, x, y, z, w float64) float64 {
	h := hash & 31
	u := pick(h < 24, x, y)
	v := pick(h < 16, y, z)
	t := pick(h < 8, z, w)
	return pick(h&1 != 0, -u, u) + pick(h&2 != 0, -v, v) + pick(h&4 != 0, -t, t)
}

// clamp keeps the result in [-1, 1]; NaN passes through.
func clamp(v float64) float64 {
	return stdmath.Max(-1, stdmath.Min(1, v))
}

// falloff returns t^4 for t > 0 and 0 otherwise.
func falloff(t float64) float64 {
	if t < 0 {
		return 0
	}
	t *= t
	return t * t
}

// Noise1D returns 1D simplex noise at x for the given seed.
// The value is 0 at every integer x.
func Noise1D(x float64, seed int64) float64 {
	i0 := fastFloor(x)
	x0 := x - float64(i0)
	x1 := x0 - 1

	n0 := falloff(1-x0*x0) * grad1(hash1(seed, i0), x0)
	n1 := falloff(1-x1*x1) * grad1(hash1(seed, i0+1), x1)

	return clamp(scale1 * (n0 + n1))
}

// Noise2D returns 2D simplex noise at (x, y) for the given seed.
func Noise2D(x, y float64, seed int64) float64 {
	// Skew the input space to find the simplex cell.
	s := (x + y) * f2
	i := fastFloor(x + s)
	j := fastFloor(y + s)

	t := float64(i+j) * g2
	x0 := x - (float64(i) - t)
	y0 := y - (float64(j) - t)

	// Lower triangle (x0 > y0) steps x first, upper triangle steps y first.
	var i1, j1 int64
	if x0 > y0 {
		i1 = 1
	} else {
		j1 = 1
	}

	x1 := x0 - float64(i1) + g2
	y1 := y0 - float64(j1) + g2
	x2 := x0 - 1 + 2*g2
	y2 := y0 - 1 + 2*g2

	n0 := falloff(radius2-x0*x0-y0*y0) * grad2(hash2(seed, i, j), x0, y0)
	n1 := falloff(radius2-x1*x1-y1*y1) * grad2(hash2(seed, i+i1, j+j1), x1, y1)
	n2 := falloff(radius2-x2*x2-y2*y2) * grad2(hash2(seed, i+1, j+1), x2, y2)

	return clamp(scale2 * (n0 + n1 + n2))
}

// Noise3D returns 3D simplex noise at (x, y, z) for the given seed.
func Noise3D(x, y, z float64, seed int64) float64 {
	s := (x + y + z) * f3
	i := fastFloor(x + s)
	j := fastFloor(y + s)
	k := fastFloor(z + s)

	t := float64(i+j+k) * g3
	x0 := x - (float64(i) - t)
	y0 := y - (float64(j) - t)
	z0 := z - (float64(k) - t)

	// Offsets of the second and third corners, from the axis order of x0, y0, z0.
	var i1, j1, k1, i2, j2, k2 int64
	if x0 >= y0 {
		switch {
		case y0 >= z0:
			i1, i2, j2 = 1, 1, 1
		case x0 >= z0:
			i1, i2, k2 = 1, 1, 1
		default:
			k1, i2, k2 = 1, 1, 1
		}
	} else {
		switch {
		case y0 < z0:
			k1, j2, k2 = 1, 1, 1
		case x0 < z0:
			j1, j2, k2 = 1, 1, 1
		default:
			j1, i2, j2 = 1, 1, 1
		}
	}

	x1 := x0 - float64(i1) + g3
	y1 := y0 - float64(j1) + g3
	z1 := z0 - float64(k1) + g3
	x2 := x0 - float64(i2) + 2*g3
	y2 := y0 - float64(j2) + 2*g3
	z2 := z0 - float64(k2) + 2*g3
	x3 := x0 - 1 + 3*g3
	y3 := y0 - 1 + 3*g3
	z3 := z0 - 1 + 3*g3

	n0 := falloff(radius3-x0*x0-y0*y0-z0*z0) * grad3(hash3(seed, i, j, k), x0, y0, z0)
	n1 := falloff(radius3-x1*x1-y1*y1-z1*z1) * grad3(hash3(seed, i+i1, j+j1, k+k1), x1, y1, z1)
	n2 := falloff(radius3-x2*x2-y2*y2-z2*z2) * grad3(hash3(seed, i+i2, j+j2, k+k2), x2, y2, z2)
	n3 := falloff(radius3-x3*x3-y3*y3-z3*z3) * grad3(hash3(seed, i+1, j+1, k+1), x3, y3, z3)

	return clamp(scale3 * (n0 + n1 + n2 + n3))
}

// Noise4D returns 4D simplex noise at (x, y, z, w) for the given seed.
func Noise4D(x, y, z, w float64, seed int64) float64 {
	s := (x + y + z + w) * f4
	i := fastFloor(x + s)
	j := fastFloor(y + s)
	k := fastFloor(z + s)
	l := fastFloor(w + s)

	t := float64(i+j+k+l) * g4
	x0 := x - (float64(i) - t)
	y0 := y - (float64(j) - t)
	z0 := z - (float64(k) - t)
	w0 := w - (float64(l) - t)

	// Rank each axis by how many other axes it exceeds; the simplex corners
	// step the highest-ranked axes first.
	var rx, ry, rz, rw int64
	rankPair(x0 > y0, &rx, &ry)
	rankPair(x0 > z0, &rx, &rz)
	rankPair(x0 > w0, &rx, &rw)
	rankPair(y0 > z0, &ry, &rz)
	rankPair(y0 > w0, &ry, &rw)
	rankPair(z0 > w0, &rz, &rw)

	i1, j1, k1, l1 := step(rx, 3), step(ry, 3), step(rz, 3), step(rw, 3)
	i2, j2, k2, l2 := step(rx, 2), step(ry, 2), step(rz, 2), step(rw, 2)
	i3, j3, k3, l3 := step(rx, 1), step(ry, 1), step(rz, 1), step(rw, 1)

	x1 := x0 - float64(i1) + g4
	y1 := y0 - float64(j1) + g4
	z1 := z0 - float64(k1) + g4
	w1 := w0 - float64(l1) + g4
	x2 := x0 - float64(i2) + 2*g4
	y2 := y0 - float64(j2) + 2*g4
	z2 := z0 - float64(k2) + 2*g4
	w2 := w0 - float64(l2) + 2*g4
	x3 := x0 - float64(i3) + 3*g4
	y3 := y0 - float64(j3) + 3*g4
	z3 := z0 - float64(k3) + 3*g4
	w3 := w0 - float64(l3) + 3*g4
	x4 := x0 - 1 + 4*g4
	y4 := y0 - 1 + 4*g4
	z4 := z0 - 1 + 4*g4
	w4 := w0 - 1 + 4*g4

	n0 := falloff(radius4-x0*x0-y0*y0-z0*z0-w0*w0) *
		grad4(hash4(seed, i, j, k, l), x0, y0, z0, w0)
	n1 := falloff(radius4-x1*x1-y1*y1-z1*z1-w1*w1) *
		grad4(hash4(seed, i+i1, j+j1, k+k1, l+l1), x1, y1, z1, w1)
	n2 := falloff(radius4-x2*x2-y2*y2-z2*z2-w2*w2) *
		grad4(hash4(seed, i+i2, j+j2, k+k2, l+l2), x2, y2, z2, w2)
	n3 := falloff(radius4-x3*x3-y3*y3-z3*z3-w3*w3) *
		grad4(hash4(seed, i+i3, j+j3, k+k3, l+l3), x3, y3, z3, w3)
	n4 := falloff(radius4-x4*x4-y4*y4-z4*z4-w4*w4) *
		grad4(hash4(seed, i+1, j+1, k+1, l+1), x4, y4, z4, w4)

	return clamp(scale4 * (n0 + n1 + n2 + n3 + n4))
}

func rankPair(aWins bool, a, b *int64) {
	if aWins {
		*a++
	} else {
		*b++
	}
}

func step(rank, threshold int64) int64 {
	if rank >= threshold {
		return 1
	}
	return 0
}
