package main

import (
	"bytes"
	"go/ast"
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"slices"
	"testing"
)

func TestParseDims(t *testing.T) {
	tests := []struct {
		in      string
		want    []int
		wantErr bool
	}{
		{"1,2,3,4", []int{1, 2, 3, 4}, false},
		{" 2 , 3 ", []int{2, 3}, false},
		{"", nil, false},
		{"1,,2", []int{1, 2}, false},
		{"0", nil, true},
		{"5", nil, true},
		{"x", nil, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := parseDims(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("parseDims(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if !slices.Equal(got, tt.want) {
				t.Errorf("parseDims(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestGenerateFunctions(t *testing.T) {
	gen := &Generator{Package: "fbm", Dims: []int{1, 3}, Unweighted: []int{2}}
	src, err := gen.Generate()
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	fset := token.NewFileSet()
	file, err := parser.ParseFile(fset, "z_fbm_dims.go", src, parser.ParseComments)
	if err != nil {
		t.Fatalf("generated code does not parse: %v\n%s", err, src)
	}
	if file.Name.Name != "fbm" {
		t.Errorf("package = %q, want fbm", file.Name.Name)
	}

	var names []string
	params := map[string]int{}
	for _, decl := range file.Decls {
		fn, ok := decl.(*ast.FuncDecl)
		if !ok {
			continue
		}
		names = append(names, fn.Name.Name)
		if fn.Doc == nil {
			t.Errorf("%s has no doc comment", fn.Name.Name)
		}
		params[fn.Name.Name] = fn.Type.Params.NumFields()
	}

	want := []string{
		"BaseFBM1D", "BaseFBM1DWith",
		"BaseFBM3D", "BaseFBM3DWith",
		"BaseFBM2DUnweighted", "BaseFBM2DUnweightedWith",
	}
	if !slices.Equal(names, want) {
		t.Errorf("generated functions = %v, want %v", names, want)
	}

	// axes + lacunarity, gain + octaves + seed, plus the sampler for With.
	wantParams := map[string]int{
		"BaseFBM1D": 5, "BaseFBM1DWith": 6,
		"BaseFBM3D": 7, "BaseFBM3DWith": 8,
		"BaseFBM2DUnweighted": 6, "BaseFBM2DUnweightedWith": 7,
	}
	for name, n := range wantParams {
		if params[name] != n {
			t.Errorf("%s has %d params, want %d", name, params[name], n)
		}
	}

	if !bytes.Contains(src, []byte("// Code generated by fbmgen. DO NOT EDIT.")) {
		t.Error("missing generated-code marker")
	}
	if !bytes.Contains(src, []byte("return BaseFBMUnweighted[T](simplex.Sampler[T]{}, []hwy.Vec[T]{x, y}, lacunarity")) {
		t.Errorf("unexpected unweighted body:\n%s", src)
	}
}

func TestGenerateErrors(t *testing.T) {
	tests := []struct {
		name string
		gen  Generator
	}{
		{"no package", Generator{Dims: []int{1}}},
		{"no dims", Generator{Package: "fbm"}},
		{"duplicate", Generator{Package: "fbm", Dims: []int{2, 2}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := tt.gen.Generate(); err == nil {
				t.Error("Generate() error = nil, want error")
			}
		})
	}
}

func TestCheckedInFileUpToDate(t *testing.T) {
	path := filepath.Join("..", "..", "hwy", "contrib", "fbm", "z_fbm_dims.go")
	want, err := os.ReadFile(path)
	if err != nil {
		t.Skipf("reading %s: %v", path, err)
	}

	gen := &Generator{Package: "fbm", Dims: []int{1, 2, 3, 4}, Unweighted: []int{1}}
	got, err := gen.Generate()
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if !bytes.Equal(got, want) {
		t.Errorf("%s is stale; run go generate ./hwy/contrib/fbm", path)
	}
}
