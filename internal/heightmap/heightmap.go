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

// Package heightmap turns sampled noise grids into grayscale images and
// writes them in the formats noisemap supports.
package heightmap

import (
	"errors"
	"fmt"
	"image"
	"image/png"
	"io"
	"path/filepath"
	"strings"

	"github.com/disintegration/gift"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"

	"github.com/go-highway/noise/hwy"
	"github.com/go-highway/noise/hwy/contrib/fbm"
)

// ErrUnknownFormat is returned for an image format other than png, bmp or tiff.
var ErrUnknownFormat = errors.New("heightmap: unknown image format")

// Formats lists the supported output formats.
var Formats = []string{"png", "bmp", "tiff"}

// ToGray maps a row-major w×h grid with values in [min, max] onto 0..255.
// data is not modified.
func ToGray[T hwy.Floats](data []T, w, h int, min, max T) (*image.Gray, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("heightmap: invalid size %dx%d", w, h)
	}
	if len(data) != w*h {
		return nil, fmt.Errorf("heightmap: %d samples for a %dx%d image", len(data), w, h)
	}

	scaled := make([]T, len(data))
	copy(scaled, data)
	fbm.ScaleToRange(scaled, min, max, 0, 255)

	img := image.NewGray(image.Rect(0, 0, w, h))
	for y := range h {
		row := img.Pix[y*img.Stride : y*img.Stride+w]
		for x, v := range scaled[y*w : (y+1)*w] {
			row[x] = uint8(clamp255(v) + 0.5)
		}
	}
	return img, nil
}

func clamp255[T hwy.Floats](v T) T {
	if v != v || v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return v
}

// Blur applies a Gaussian blur with the given sigma. sigma <= 0 returns img.
func Blur(img *image.Gray, sigma float32) *image.Gray {
	if sigma <= 0 {
		return img
	}
	g := gift.New(gift.GaussianBlur(sigma))
	dst := image.NewGray(g.Bounds(img.Bounds()))
	g.Draw(dst, img)
	return dst
}

// Encode writes img to w in format.
func Encode(w io.Writer, img image.Image, format string) error {
	switch strings.ToLower(format) {
	case "png":
		return png.Encode(w, img)
	case "bmp":
		return bmp.Encode(w, img)
	case "tiff", "tif":
		return tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

// FormatFromPath guesses the format from a file extension. It returns ""
// when the extension is not one of Formats.
func FormatFromPath(path string) string {
	switch strings.ToLower(strings.TrimPrefix(filepath.Ext(path), ".")) {
	case "png":
		return "png"
	case "bmp":
		return "bmp"
	case "tif", "tiff":
		return "tiff"
	default:
		return ""
	}
}
