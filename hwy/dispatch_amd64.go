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

//go:build amd64

package hwy

import "golang.org/x/sys/cpu"

// CPU feature flags consulted when picking the lane width.
var (
	hasAVX2    bool
	hasAVX512F bool
	hasFMA     bool
)

func init() {
	hasAVX2 = cpu.X86.HasAVX2
	hasAVX512F = cpu.X86.HasAVX512F
	hasFMA = cpu.X86.HasFMA

	// Check if SIMD is disabled via environment variable
	if NoSimdEnv() {
		setLevel(DispatchScalar)
		return
	}

	setLevel(detectLevel())
}

func detectLevel() DispatchLevel {
	switch {
	case hasAVX512F:
		return DispatchAVX512
	case hasAVX2:
		return DispatchAVX2
	case cpu.X86.HasSSE2:
		return DispatchSSE2
	default:
		return DispatchScalar
	}
}

// HasFMA returns true if the CPU supports fused multiply-add instructions.
func HasFMA() bool {
	return hasFMA
}
