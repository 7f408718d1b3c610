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

package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"slices"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/go-highway/noise/hwy/contrib/fbm"
	"github.com/go-highway/noise/hwy/contrib/opensimplex"
	"github.com/go-highway/noise/hwy/contrib/perlin"
	"github.com/go-highway/noise/hwy/contrib/simplex"
	"github.com/go-highway/noise/hwy/contrib/workerpool"
	"github.com/go-highway/noise/internal/heightmap"
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render a 2D noise heightmap",
	Long: `Render samples 2D fractal Brownian motion on a width×height grid and
writes it as an 8-bit grayscale image. Pixel (x, y) is sampled at
(x*frequency, y*frequency).`,
	Args: cobra.NoArgs,
	RunE: runRender,
}

// renderOptions holds the resolved render settings.
type renderOptions struct {
	Width      int
	Height     int
	Octaves    int
	Gain       float64
	Lacunarity float64
	Seed       int64
	Frequency  float64
	Primitive  string
	Blur       float64
	Format     string
	Out        string
	Workers    int
}

func init() {
	rootCmd.AddCommand(renderCmd)

	defaults := fbm.DefaultParams[float32]()
	renderCmd.Flags().Int("width", 512, "Image width in pixels")
	renderCmd.Flags().Int("height", 512, "Image height in pixels")
	renderCmd.Flags().Int("octaves", int(defaults.Octaves), "Number of octaves (0..255)")
	renderCmd.Flags().Float64("gain", float64(defaults.Gain), "Amplitude multiplier per octave")
	renderCmd.Flags().Float64("lacunarity", float64(defaults.Lacunarity), "Frequency multiplier per octave")
	renderCmd.Flags().Int64("seed", defaults.Seed, "Noise seed")
	renderCmd.Flags().Float64("frequency", 0.01, "Coordinate step between pixels")
	renderCmd.Flags().String("primitive", "simplex", "Base noise (simplex, opensimplex, perlin)")
	renderCmd.Flags().Float64("blur", 0, "Gaussian blur sigma applied after rendering (0 disables)")
	renderCmd.Flags().String("format", "", "Output format (png, bmp, tiff); default from --out extension")
	renderCmd.Flags().String("out", "noise.png", "Output image path")
	renderCmd.Flags().Int("workers", 0, "Worker goroutines (0 uses GOMAXPROCS)")

	bindFlags := []struct {
		key  string
		flag string
	}{
		{"render.width", "width"},
		{"render.height", "height"},
		{"render.octaves", "octaves"},
		{"render.gain", "gain"},
		{"render.lacunarity", "lacunarity"},
		{"render.seed", "seed"},
		{"render.frequency", "frequency"},
		{"render.primitive", "primitive"},
		{"render.blur", "blur"},
		{"render.format", "format"},
		{"render.out", "out"},
		{"render.workers", "workers"},
	}

	for _, bf := range bindFlags {
		if err := viper.BindPFlag(bf.key, renderCmd.Flags().Lookup(bf.flag)); err != nil {
			panic(fmt.Sprintf("failed to bind flag %s: %v", bf.flag, err))
		}
	}
}

func runRender(cmd *cobra.Command, args []string) error {
	if logger == nil {
		initLogging()
	}

	opts := renderOptions{
		Width:      viper.GetInt("render.width"),
		Height:     viper.GetInt("render.height"),
		Octaves:    viper.GetInt("render.octaves"),
		Gain:       viper.GetFloat64("render.gain"),
		Lacunarity: viper.GetFloat64("render.lacunarity"),
		Seed:       viper.GetInt64("render.seed"),
		Frequency:  viper.GetFloat64("render.frequency"),
		Primitive:  viper.GetString("render.primitive"),
		Blur:       viper.GetFloat64("render.blur"),
		Format:     viper.GetString("render.format"),
		Out:        viper.GetString("render.out"),
		Workers:    viper.GetInt("render.workers"),
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return render(ctx, opts, logger)
}

// validate fills in the output format and checks every option.
func (o *renderOptions) validate() error {
	if o.Width <= 0 || o.Height <= 0 {
		return fmt.Errorf("width and height must be positive, got %dx%d", o.Width, o.Height)
	}
	if o.Octaves < 0 || o.Octaves > 255 {
		return fmt.Errorf("octaves must be within [0,255], got %d", o.Octaves)
	}
	if o.Blur < 0 {
		return fmt.Errorf("blur must not be negative")
	}
	if !slices.Contains(primitives, o.Primitive) {
		return fmt.Errorf("unknown primitive %q (want one of %v)", o.Primitive, primitives)
	}
	if o.Out == "" {
		return fmt.Errorf("output path is required")
	}
	if o.Format == "" {
		o.Format = heightmap.FormatFromPath(o.Out)
	} else if f := heightmap.FormatFromPath("." + o.Format); f != "" {
		o.Format = f
	}
	if !slices.Contains(heightmap.Formats, o.Format) {
		return fmt.Errorf("%w: %q", heightmap.ErrUnknownFormat, o.Format)
	}
	return nil
}

func (o renderOptions) params() fbm.Params[float32] {
	return fbm.Params[float32]{
		Lacunarity: float32(o.Lacunarity),
		Gain:       float32(o.Gain),
		Octaves:    uint8(o.Octaves),
		Seed:       o.Seed,
	}
}

// primitives lists the accepted --primitive values.
var primitives = []string{"simplex", "opensimplex", "perlin"}

func (o renderOptions) sampler() fbm.Sampler[float32] {
	switch o.Primitive {
	case "opensimplex":
		return opensimplex.Sampler[float32]{}
	case "perlin":
		return perlin.Sampler[float32]{}
	default:
		return simplex.Sampler[float32]{}
	}
}

// render generates the heightmap described by opts and writes it to opts.Out.
func render(ctx context.Context, opts renderOptions, logger *slog.Logger) error {
	if err := opts.validate(); err != nil {
		return err
	}
	p := opts.params()
	if err := p.Validate(); err != nil {
		return err
	}

	logger.Info("Rendering heightmap",
		"width", opts.Width,
		"height", opts.Height,
		"primitive", opts.Primitive,
		"octaves", opts.Octaves,
		"seed", opts.Seed,
	)

	pool := workerpool.New(opts.Workers)
	defer pool.Close()

	start := time.Now()
	grid := fbm.Grid[float32]{
		Dims:      []int{opts.Width, opts.Height},
		Frequency: float32(opts.Frequency),
	}
	data, lo, hi, err := fbm.GenerateGridCtx(ctx, pool, opts.sampler(), grid, p)
	if err != nil {
		return fmt.Errorf("generating noise: %w", err)
	}
	logger.Debug("Noise sampled",
		"samples", len(data),
		"min", lo,
		"max", hi,
		"workers", pool.NumWorkers(),
		"elapsed", time.Since(start),
	)

	img, err := heightmap.ToGray(data, opts.Width, opts.Height, lo, hi)
	if err != nil {
		return err
	}
	img = heightmap.Blur(img, float32(opts.Blur))

	if dir := filepath.Dir(opts.Out); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create output dir: %w", err)
		}
	}
	f, err := os.Create(opts.Out)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	if err := heightmap.Encode(f, img, opts.Format); err != nil {
		f.Close()
		return fmt.Errorf("encoding %s: %w", opts.Format, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}

	logger.Info("Heightmap written", "path", opts.Out, "format", opts.Format)
	return nil
}
