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
	"strings"

	"github.com/spf13/cobra"
	"github.com/walteh/tmplrc/cmd/tmplrc/opts"
	"github.com/walteh/tmplrc/pkg/operation"
	"github.com/walteh/tmplrc/pkg/token"
	"gitlab.com/tozd/go/errors"
)

// NewLoadCmd creates a new load command
func NewLoadCmd(ro *opts.RootOpts) *cobra.Command {
	var (
		sets []string
		yes  bool
	)

	cmd := &cobra.Command{
		Use:   "load [template] [project]",
		Short: "Create a new project from a template",
		Long: `Load copies a stored template into a new project folder and fills in its tokens.
It will:
1. Ask for the template and project name when they are not given
2. Ask before replacing an existing project folder
3. Prompt once for every #{TOKEN} found in folder names, file names and contents
4. Rewrite contents, then file names, then folder names`,
		Example: `  tmplrc load go-service billing --set NAME=billing --set AUTHOR=jane`,
		Args:    cobra.MaximumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			presets, err := ParseSets(ro.Config.Presets(), sets)
			if err != nil {
				return err
			}

			loadArgs := operation.LoadArgs{Overwrite: yes}
			if len(args) > 0 {
				loadArgs.Template = args[0]
			}
			if len(args) > 1 {
				loadArgs.Project = args[1]
			}

			return ro.Runner.Run(cmd.Context(), operation.NewLoadOperation(ro.Operation(presets), loadArgs))
		},
	}

	cmd.Flags().StringArrayVar(&sets, "set", nil, "preset a token value as KEY=VALUE (repeatable)")
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "overwrite an existing project folder without asking")

	return cmd
}

// ParseSets layers KEY=VALUE pairs over base. Keys may be bare names or
// full tokens; the result is keyed by token.
func ParseSets(base map[string]string, sets []string) (map[string]string, error) {
	presets := make(map[string]string, len(base)+len(sets))
	for k, v := range base {
		presets[string(token.Normalize(k))] = v
	}

	for _, set := range sets {
		key, value, ok := strings.Cut(set, "=")
		if !ok || strings.TrimSpace(key) == "" {
			return nil, errors.Errorf("invalid --set %q, want KEY=VALUE", set)
		}
		t := token.Normalize(key)
		if !t.Valid() {
			return nil, errors.Errorf("invalid --set %q: %q is not a valid token name", set, key)
		}
		presets[string(t)] = value
	}

	return presets, nil
}
