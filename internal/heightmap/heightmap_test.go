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

package heightmap

import (
	"bytes"
	"image"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestToGray(t *testing.T) {
	data := []float32{-1, -0.5, 0, 0.5, 1, 0.25}
	img, err := ToGray(data, 3, 2, -1, 1)
	require.NoError(t, err)
	require.Equal(t, image.Rect(0, 0, 3, 2), img.Bounds())
	require.Equal(t, []uint8{0, 64, 128, 191, 255, 159}, img.Pix)
	require.Equal(t, []float32{-1, -0.5, 0, 0.5, 1, 0.25}, data, "input modified")
}

func TestToGrayFlat(t *testing.T) {
	img, err := ToGray([]float64{0.3, 0.3}, 2, 1, 0.3, 0.3)
	require.NoError(t, err)
	require.Equal(t, []uint8{0, 0}, img.Pix)
}

func TestToGrayErrors(t *testing.T) {
	_, err := ToGray([]float64{1, 2, 3}, 2, 2, 0, 1)
	require.Error(t, err)
	_, err = ToGray([]float64{}, 0, 3, 0, 1)
	require.Error(t, err)
}

func TestBlur(t *testing.T) {
	img := image.NewGray(image.Rect(0, 0, 9, 9))
	img.Pix[4*img.Stride+4] = 255

	require.Same(t, img, Blur(img, 0))

	blurred := Blur(img, 1.5)
	require.Equal(t, img.Bounds(), blurred.Bounds())
	require.Less(t, blurred.GrayAt(4, 4).Y, uint8(255))
	require.Greater(t, blurred.GrayAt(5, 4).Y, uint8(0))
}

func TestEncodeRoundTrip(t *testing.T) {
	src, err := ToGray([]float64{0, 0.25, 0.5, 0.75, 1, 0.1, 0.2, 0.3}, 4, 2, 0, 1)
	require.NoError(t, err)

	for _, format := range Formats {
		t.Run(format, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, Encode(&buf, src, format))

			decoded, name, err := image.Decode(&buf)
			require.NoError(t, err)
			require.Equal(t, format, name)
			require.Equal(t, src.Bounds(), decoded.Bounds())
			for y := range 2 {
				for x := range 4 {
					r, _, _, _ := decoded.At(x, y).RGBA()
					require.Equal(t, uint32(src.GrayAt(x, y).Y), r>>8, "pixel (%d, %d)", x, y)
				}
			}
		})
	}
}

func TestEncodeUnknownFormat(t *testing.T) {
	err := Encode(&bytes.Buffer{}, image.NewGray(image.Rect(0, 0, 1, 1)), "gif")
	require.ErrorIs(t, err, ErrUnknownFormat)
}

func TestFormatFromPath(t *testing.T) {
	tests := map[string]string{
		"out.png":      "png",
		"OUT.BMP":      "bmp",
		"a/b/map.tif":  "tiff",
		"map.tiff":     "tiff",
		"map.jpeg":     "",
		"no-extension": "",
	}
	for path, want := range tests {
		require.Equal(t, want, FormatFromPath(path), path)
	}
}
