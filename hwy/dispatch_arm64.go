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

//go:build arm64

package hwy

import "golang.org/x/sys/cpu"

func init() {
	// Check for HWY_NO_SIMD environment variable first
	if NoSimdEnv() {
		setLevel(DispatchScalar)
		return
	}

	// ARM64 (AArch64) always has NEON (ASIMD) available; it is part of the
	// ARMv8-A base architecture. The check is kept for consistency.
	if cpu.ARM64.HasASIMD {
		setLevel(DispatchNEON)
	} else {
		setLevel(DispatchScalar)
	}
}

// HasFMA returns true if the CPU supports fused multiply-add instructions.
// FMA is part of the ARMv8 ASIMD baseline.
func HasFMA() bool {
	return cpu.ARM64.HasASIMD
}
