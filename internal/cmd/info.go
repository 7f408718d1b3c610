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
	"fmt"

	"github.com/spf13/cobra"

	"github.com/go-highway/noise/hwy"
)

var infoCmd = &cobra.Command{
	Use:   "info",
	Short: "Show the detected vector width",
	Args:  cobra.NoArgs,
	RunE:  runInfo,
}

func init() {
	rootCmd.AddCommand(infoCmd)
}

func runInfo(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "level:   %s\n", hwy.CurrentName())
	fmt.Fprintf(out, "width:   %d bytes\n", hwy.CurrentWidth())
	fmt.Fprintf(out, "float32: %d lanes\n", hwy.MaxLanes[float32]())
	fmt.Fprintf(out, "float64: %d lanes\n", hwy.MaxLanes[float64]())
	fmt.Fprintf(out, "fma:     %t\n", hwy.HasFMA())
	fmt.Fprintf(out, "no-simd: %t\n", hwy.NoSimdEnv())
	return nil
}
