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

package host

import (
	"bytes"
	"context"
	"io"
	"os"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/walteh/tmplrc/pkg/log"
	"gitlab.com/tozd/go/errors"
)

// 🧪 newScriptedTerminal returns a non-interactive terminal fed with input
func newScriptedTerminal(t *testing.T, input string) (*Terminal, *bytes.Buffer, *bytes.Buffer) {
	t.Helper()
	console := &bytes.Buffer{}
	prompts := &bytes.Buffer{}
	interactive := false
	term := NewTerminal(log.NewWithZerolog(console, zerolog.New(io.Discard)), TerminalOptions{
		In:          strings.NewReader(input),
		Out:         prompts,
		Interactive: &interactive,
	})
	return term, console, prompts
}

func TestTerminalAsk(t *testing.T) {
	term, _, prompts := newScriptedTerminal(t, "Acme\n\nlast")
	ctx := context.Background()

	answer, err := term.Ask(ctx, "Enter the name of the project")
	require.NoError(t, err)
	assert.Equal(t, "Acme", answer)
	assert.Contains(t, prompts.String(), "Enter the name of the project> ")

	answer, err = term.Ask(ctx, "empty is fine")
	require.NoError(t, err)
	assert.Equal(t, "", answer)

	answer, err = term.Ask(ctx, "no trailing newline")
	require.NoError(t, err)
	assert.Equal(t, "last", answer)

	_, err = term.Ask(ctx, "input exhausted")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrCancelled))
}

func TestTerminalChoose(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		want      string
		wantErr   string
		cancelled bool
	}{
		{name: "by_index", input: "2\n", want: "web"},
		{name: "by_name", input: "cli\n", want: "cli"},
		{name: "out_of_range", input: "9\n", wantErr: "out of range"},
		{name: "unknown", input: "nope\n", wantErr: "unknown choice"},
		{name: "empty_cancels", input: "\n", cancelled: true},
		{name: "eof_cancels", input: "", cancelled: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			term, _, prompts := newScriptedTerminal(t, tt.input)

			got, err := term.Choose(context.Background(), []string{"cli", "web"}, "Pick a template")
			switch {
			case tt.cancelled:
				require.Error(t, err)
				assert.True(t, errors.Is(err, ErrCancelled))
			case tt.wantErr != "":
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
			default:
				require.NoError(t, err)
				assert.Equal(t, tt.want, got)
			}
			assert.Contains(t, prompts.String(), "  1) cli\n  2) web\n")
		})
	}
}

func TestTerminalChooseNothing(t *testing.T) {
	term, _, _ := newScriptedTerminal(t, "")
	_, err := term.Choose(context.Background(), nil, "Pick")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "nothing to choose from")
}

func TestTerminalConfirm(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{input: "y\n", want: true},
		{input: "Yes\n", want: true},
		{input: "n\n", want: false},
		{input: "\n", want: false},
		{input: "whatever\n", want: false},
	}

	for _, tt := range tests {
		t.Run(strings.TrimSpace(tt.input), func(t *testing.T) {
			term, _, prompts := newScriptedTerminal(t, tt.input)
			got, err := term.Confirm(context.Background(), "Overwrite?")
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Contains(t, prompts.String(), "Overwrite? (y/n)> ")
		})
	}
}

func TestTerminalNotify(t *testing.T) {
	color.NoColor = true
	defer func() { color.NoColor = false }()

	term, console, _ := newScriptedTerminal(t, "")
	ctx := context.Background()

	term.Notify(ctx, Notification{Level: LevelSuccess, Message: "loaded"})
	term.Notify(ctx, Notification{Level: LevelInfo, Message: "cancelled"})
	term.Notify(ctx, Notification{Level: LevelWarning, Message: "partial"})
	term.Notify(ctx, Notification{Level: LevelError, Message: "failed"})

	lines := strings.Split(strings.TrimSpace(console.String()), "\n")
	assert.Equal(t, []string{
		"✅ loaded",
		"ℹ️  cancelled",
		"⚠️  partial",
		"❌ failed",
	}, lines)
}

func TestTerminalWorkspace(t *testing.T) {
	term, _, _ := newScriptedTerminal(t, "")

	orig, err := term.Getwd()
	require.NoError(t, err)
	t.Cleanup(func() { _ = os.Chdir(orig) })

	dir := t.TempDir()
	require.NoError(t, term.Chdir(dir))

	wd, err := term.Getwd()
	require.NoError(t, err)
	assert.Equal(t, dir, wd)

	err = term.Chdir(dir + "/missing")
	require.Error(t, err)
}

func TestLevelString(t *testing.T) {
	assert.Equal(t, "success", LevelSuccess.String())
	assert.Equal(t, "info", LevelInfo.String())
	assert.Equal(t, "warning", LevelWarning.String())
	assert.Equal(t, "error", LevelError.String())
	assert.Equal(t, "unknown", Level(9).String())
}
