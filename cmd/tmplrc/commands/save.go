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

// NewSaveCmd creates a new save command
func NewSaveCmd(ro *opts.RootOpts) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "save [name]",
		Short: "Save the current directory as a template",
		Long: `Save copies the current directory into the template root under name.
Tokens are kept as written; an existing template is never replaced.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			saveArgs := operation.SaveArgs{}
			if len(args) > 0 {
				saveArgs.Name = args[0]
			}
			return ro.Runner.Run(cmd.Context(), operation.NewSaveOperation(ro.Operation(nil), saveArgs))
		},
	}

	return cmd
}
