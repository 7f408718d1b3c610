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

// Command fbmgen generates the per-dimension FBM adapters.
//
// Usage:
//
//	fbmgen -output z_fbm_dims.go -pkg fbm -dims 1,2,3,4 -unweighted 1
//
// Or via go:generate:
//
//	//go:generate go run ../../../cmd/fbmgen -output z_fbm_dims.go -pkg fbm -dims 1,2,3,4 -unweighted 1
//
// For every dimension d it emits BaseFBM{d}D, which samples simplex noise,
// and BaseFBM{d}DWith, which takes any fbm.Sampler. Dimensions listed in
// -unweighted also get BaseFBM{d}DUnweighted and BaseFBM{d}DUnweightedWith.
package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
)

var (
	outputFile = flag.String("output", "z_fbm_dims.go", "Output Go file")
	packageOut = flag.String("pkg", "fbm", "Output package name")
	dims       = flag.String("dims", "1,2,3,4", "Comma-separated dimensions (1..4)")
	unweighted = flag.String("unweighted", "1", "Comma-separated dimensions that also get unweighted adapters")
)

func main() {
	flag.Parse()

	dimList, err := parseDims(*dims)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: -dims: %v\n\n", err)
		flag.Usage()
		os.Exit(1)
	}
	unweightedList, err := parseDims(*unweighted)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: -unweighted: %v\n\n", err)
		flag.Usage()
		os.Exit(1)
	}

	gen := &Generator{
		Package:    *packageOut,
		Dims:       dimList,
		Unweighted: unweightedList,
	}
	src, err := gen.Generate()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if err := os.WriteFile(*outputFile, src, 0644); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Successfully generated %s for dims: %s\n", *outputFile, *dims)
}

// parseDims parses a comma-separated list of dimensions in 1..4. Empty
// entries are skipped.
func parseDims(s string) ([]int, error) {
	var result []int
	for _, p := range strings.Split(s, ",") {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		d, err := strconv.Atoi(p)
		if err != nil {
			return nil, err
		}
		if d < 1 || d > 4 {
			return nil, fmt.Errorf("dimension %d out of range 1..4", d)
		}
		result = append(result, d)
	}
	return result, nil
}
