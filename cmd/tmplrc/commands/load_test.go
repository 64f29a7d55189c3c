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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSets(t *testing.T) {
	tests := []struct {
		name        string
		base        map[string]string
		sets        []string
		want        map[string]string
		errContains string
	}{
		{
			name: "bare_and_full_keys",
			sets: []string{"NAME=Acme", "#{YEAR}=2025"},
			want: map[string]string{"#{NAME}": "Acme", "#{YEAR}": "2025"},
		},
		{
			name: "flag_overrides_config",
			base: map[string]string{"AUTHOR": "jane"},
			sets: []string{"AUTHOR=joe"},
			want: map[string]string{"#{AUTHOR}": "joe"},
		},
		{
			name: "empty_value_and_equals_in_value",
			sets: []string{"EMPTY=", "EXPR=a=b"},
			want: map[string]string{"#{EMPTY}": "", "#{EXPR}": "a=b"},
		},
		{
			name:        "missing_equals",
			sets:        []string{"NAME"},
			errContains: "want KEY=VALUE",
		},
		{
			name:        "empty_key",
			sets:        []string{"=x"},
			errContains: "want KEY=VALUE",
		},
		{
			name:        "brace_in_key",
			sets:        []string{"a}b=x"},
			errContains: "not a valid token name",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseSets(tt.base, tt.sets)
			if tt.errContains != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errContains)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCommandArgs(t *testing.T) {
	cmd := NewLoadCmd(nil)
	assert.Error(t, cmd.Args(cmd, []string{"a", "b", "c"}), "load takes at most two args")
	assert.NoError(t, cmd.Args(cmd, []string{"a", "b"}))

	require.NotNil(t, cmd.Flags().Lookup("set"))
	require.NotNil(t, cmd.Flags().Lookup("yes"))

	list := NewListCmd(nil)
	assert.Error(t, list.Args(list, []string{"x"}), "list takes no args")
}
