// Copyright 2025 walteh LLC
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

package commands

import (
	"github.com/spf13/cobra"
	"github.com/walteh/tmplrc/cmd/tmplrc/opts"
	"github.com/walteh/tmplrc/pkg/operation"
)

// NewScanCmd creates a new scan command
func NewScanCmd(ro *opts.RootOpts) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scan [dir]",
		Short: "Show the tokens a folder holds without changing it",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			scanArgs := operation.ScanArgs{Out: cmd.OutOrStdout()}
			if len(args) > 0 {
				scanArgs.Dir = args[0]
			}
			return ro.Runner.Run(cmd.Context(), operation.NewScanOperation(ro.Operation(nil), scanArgs))
		},
	}

	return cmd
}
