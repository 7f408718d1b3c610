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
	"errors"
	stdmath "math"
	"testing"
)

func TestDefaultParams(t *testing.T) {
	p := DefaultParams[float32]()
	if p.Lacunarity != 2 || p.Gain != 0.5 || p.Octaves != 3 || p.Seed != 1 {
		t.Errorf("DefaultParams() = %+v, want {2 0.5 3 1}", p)
	}
	if err := p.Validate(); err != nil {
		t.Errorf("DefaultParams().Validate() = %v, want nil", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		p       Params[float64]
		wantErr bool
	}{
		{"default", DefaultParams[float64](), false},
		{"zero octaves", Params[float64]{Lacunarity: 2, Gain: 0.5}, false},
		{"negative seed", Params[float64]{Lacunarity: 2, Gain: 0.5, Octaves: 255, Seed: -9}, false},
		{"lacunarity below one", Params[float64]{Lacunarity: 0.5, Gain: 0.5, Octaves: 3}, false},
		{"gain above one", Params[float64]{Lacunarity: 2, Gain: 1.2, Octaves: 3}, false},
		{"zero gain", Params[float64]{Lacunarity: 2, Gain: 0, Octaves: 3}, true},
		{"negative gain", Params[float64]{Lacunarity: 2, Gain: -0.5, Octaves: 3}, true},
		{"nan gain", Params[float64]{Lacunarity: 2, Gain: stdmath.NaN(), Octaves: 3}, true},
		{"inf lacunarity", Params[float64]{Lacunarity: stdmath.Inf(1), Gain: 0.5, Octaves: 3}, true},
		{"nan lacunarity", Params[float64]{Lacunarity: stdmath.NaN(), Gain: 0.5, Octaves: 3}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.p.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, ErrInvalidParameter) {
				t.Errorf("Validate() error = %v, want wrapping ErrInvalidParameter", err)
			}
		})
	}
}

func TestAmplitudeSum(t *testing.T) {
	tests := []struct {
		gain    float64
		octaves uint8
		want    float64
	}{
		{0.5, 0, 1},
		{0.5, 1, 1},
		{0.5, 3, 1.75},
		{1, 5, 5},
		{2, 3, 7},
	}
	for _, tt := range tests {
		p := Params[float64]{Lacunarity: 2, Gain: tt.gain, Octaves: tt.octaves}
		if got := p.AmplitudeSum(); stdmath.Abs(got-tt.want) > 1e-12 {
			t.Errorf("AmplitudeSum(gain=%v, octaves=%d) = %v, want %v", tt.gain, tt.octaves, got, tt.want)
		}
	}
}
