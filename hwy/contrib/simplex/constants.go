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

// Skew and unskew factors: F = (sqrt(n+1)-1)/n, G = (1-1/sqrt(n+1))/n.
const (
	f2 = 0.36602540378443865
	g2 = 0.21132486540518713
	f3 = 1.0 / 3.0
	g3 = 1.0 / 6.0
	f4 = 0.30901699437494745
	g4 = 0.1381966011250105
)

// Output scale per dimension, bringing the corner sums into [-1, 1].
const (
	scale1 = 0.395
	scale2 = 40.0
	scale3 = 66.0
	scale4 = 56.0
)

// Squared radius of the kernel falloff per dimension. Keeping it at 0.5
// confines each corner's kernel to its neighboring simplices, so the field
// has no seams along cell boundaries.
const (
	radius2 = 0.5
	radius3 = 0.5
	radius4 = 0.5
)

// Hash multipliers decorrelating the axes and the seed.
const (
	seedMul = 0x9e3779b97f4a7c15
	primeX  = 0x5205402b9270c86f
	primeY  = 0x598cd327003817b5
	primeZ  = 0x5bcc226e9fa0bacb
	primeW  = 0x56cc5227e58f554b
)
