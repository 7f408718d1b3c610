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

package main

import (
	"bytes"
	"fmt"
	"strings"
	"text/template"

	"golang.org/x/tools/imports"
)

// axisNames are the parameter names used for each coordinate axis.
var axisNames = []string{"x", "y", "z", "w"}

// Generator renders the adapter file.
type Generator struct {
	Package    string
	Dims       []int
	Unweighted []int
}

// adapter is one generated function pair.
type adapter struct {
	Name    string // e.g. BaseFBM2D
	Kernel  string // BaseFBM or BaseFBMUnweighted
	Dim     int
	Params  string // "x, y"
	Summary string // text after "fractal Brownian motion"
}

var fileTemplate = template.Must(template.New("dims").Parse(`// Copyright 2025 go-highway Authors
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

// Code generated by fbmgen. DO NOT EDIT.

package {{.Package}}

import (
	"github.com/go-highway/noise/hwy"
	"github.com/go-highway/noise/hwy/contrib/simplex"
)
{{range .Adapters}}
// {{.Name}} computes {{.Dim}}D fractal Brownian motion{{.Summary}} over simplex noise.
func {{.Name}}[T hwy.Floats]({{.Params}} hwy.Vec[T], lacunarity, gain T, octaves uint8, seed int64) hwy.Vec[T] {
	return {{.Kernel}}[T](simplex.Sampler[T]{}, []hwy.Vec[T]{ {{- .Params -}} }, lacunarity, gain, octaves, seed)
}

// {{.Name}}With computes {{.Dim}}D fractal Brownian motion{{.Summary}} over s.
func {{.Name}}With[T hwy.Floats](s Sampler[T], {{.Params}} hwy.Vec[T], lacunarity, gain T, octaves uint8, seed int64) hwy.Vec[T] {
	return {{.Kernel}}(s, []hwy.Vec[T]{ {{- .Params -}} }, lacunarity, gain, octaves, seed)
}
{{end}}`))

// Adapters lists the functions to emit: weighted adapters for every entry of
// Dims, followed by unweighted ones.
func (g *Generator) Adapters() []adapter {
	var out []adapter
	for _, d := range g.Dims {
		out = append(out, newAdapter(d, false))
	}
	for _, d := range g.Unweighted {
		out = append(out, newAdapter(d, true))
	}
	return out
}

func newAdapter(d int, unweighted bool) adapter {
	a := adapter{
		Name:   fmt.Sprintf("BaseFBM%dD", d),
		Kernel: "BaseFBM",
		Dim:    d,
		Params: strings.Join(axisNames[:d], ", "),
	}
	if unweighted {
		a.Name += "Unweighted"
		a.Kernel = "BaseFBMUnweighted"
		a.Summary = " with unweighted octaves"
	}
	return a
}

// Generate returns the formatted source.
func (g *Generator) Generate() ([]byte, error) {
	if g.Package == "" {
		return nil, fmt.Errorf("package name is required")
	}
	if len(g.Dims) == 0 && len(g.Unweighted) == 0 {
		return nil, fmt.Errorf("no dimensions to generate")
	}
	seen := make(map[string]bool)
	for _, a := range g.Adapters() {
		if seen[a.Name] {
			return nil, fmt.Errorf("duplicate adapter %s", a.Name)
		}
		seen[a.Name] = true
	}

	var buf bytes.Buffer
	err := fileTemplate.Execute(&buf, struct {
		Package  string
		Adapters []adapter
	}{g.Package, g.Adapters()})
	if err != nil {
		return nil, fmt.Errorf("executing template: %w", err)
	}

	formatted, err := imports.Process("z_fbm_dims.go", buf.Bytes(), &imports.Options{
		Comments:   true,
		TabIndent:  true,
		TabWidth:   8,
		FormatOnly: true,
	})
	if err != nil {
		return nil, fmt.Errorf("formatting generated code: %w", err)
	}
	return formatted, nil
}
