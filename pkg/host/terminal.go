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
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/pterm/pterm"
	"github.com/walteh/tmplrc/pkg/log"
	"gitlab.com/tozd/go/errors"
	"golang.org/x/term"
)

var _ Host = (*Terminal)(nil)

// 🖥️ Terminal drives tmplrc from a shell. On a TTY it uses pterm's
// interactive prompts; otherwise it reads one answer per line from in.
type Terminal struct {
	logger      *log.Logger
	interactive bool
	in          *bufio.Reader
	out         io.Writer
}

// TerminalOptions configures a Terminal
type TerminalOptions struct {
	// In is read line by line when not interactive. Defaults to os.Stdin.
	In io.Reader
	// Out receives prompts when not interactive. Defaults to os.Stderr.
	Out io.Writer
	// Interactive forces the prompt style. Nil detects a TTY on os.Stdin.
	Interactive *bool
}

// 🏭 NewTerminal creates a terminal host that notifies through logger
func NewTerminal(logger *log.Logger, opts TerminalOptions) *Terminal {
	in := opts.In
	if in == nil {
		in = os.Stdin
	}
	out := opts.Out
	if out == nil {
		out = os.Stderr
	}

	interactive := term.IsTerminal(int(os.Stdin.Fd()))
	if opts.Interactive != nil {
		interactive = *opts.Interactive
	}

	return &Terminal{
		logger:      logger,
		interactive: interactive,
		in:          bufio.NewReader(in),
		out:         out,
	}
}

// Choose implements Prompter.Choose
func (t *Terminal) Choose(ctx context.Context, options []string, prompt string) (string, error) {
	if len(options) == 0 {
		return "", errors.Errorf("nothing to choose from")
	}

	if t.interactive {
		interrupted := false
		choice, err := pterm.DefaultInteractiveSelect.
			WithOptions(options).
			WithDefaultText(prompt).
			WithOnInterruptFunc(func() { interrupted = true }).
			Show()
		if interrupted {
			return "", ErrCancelled
		}
		if err != nil {
			return "", errors.Errorf("showing selection: %w", err)
		}
		return choice, nil
	}

	for i, option := range options {
		fmt.Fprintf(t.out, "  %d) %s\n", i+1, option)
	}
	answer, err := t.readLine(prompt)
	if err != nil {
		return "", err
	}
	return pickOption(options, answer)
}

// pickOption accepts either a 1-based index or an exact option.
func pickOption(options []string, answer string) (string, error) {
	if answer == "" {
		return "", ErrCancelled
	}
	if n, err := strconv.Atoi(answer); err == nil {
		if n < 1 || n > len(options) {
			return "", errors.Errorf("choice %d out of range 1-%d", n, len(options))
		}
		return options[n-1], nil
	}
	for _, option := range options {
		if option == answer {
			return option, nil
		}
	}
	return "", errors.Errorf("unknown choice %q", answer)
}

// Ask implements Prompter.Ask
func (t *Terminal) Ask(ctx context.Context, prompt string) (string, error) {
	if t.interactive {
		interrupted := false
		answer, err := pterm.DefaultInteractiveTextInput.
			WithDefaultText(prompt).
			WithOnInterruptFunc(func() { interrupted = true }).
			Show()
		if interrupted {
			return "", ErrCancelled
		}
		if err != nil {
			return "", errors.Errorf("reading input: %w", err)
		}
		return answer, nil
	}

	return t.readLine(prompt)
}

// Confirm implements Prompter.Confirm
func (t *Terminal) Confirm(ctx context.Context, prompt string) (bool, error) {
	if t.interactive {
		interrupted := false
		ok, err := pterm.DefaultInteractiveConfirm.
			WithDefaultText(prompt).
			WithDefaultValue(false).
			WithOnInterruptFunc(func() { interrupted = true }).
			Show()
		if interrupted {
			return false, ErrCancelled
		}
		if err != nil {
			return false, errors.Errorf("reading confirmation: %w", err)
		}
		return ok, nil
	}

	answer, err := t.readLine(prompt + " (y/n)")
	if err != nil {
		return false, err
	}
	return strings.HasPrefix(strings.ToLower(answer), "y"), nil
}

// readLine prints prompt and returns the next line. End of input means the
// user had nothing more to say, which counts as a cancel.
func (t *Terminal) readLine(prompt string) (string, error) {
	fmt.Fprintf(t.out, "%s> ", prompt)
	line, err := t.in.ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) {
			return "", errors.Errorf("reading answer: %w", err)
		}
		if line == "" {
			return "", ErrCancelled
		}
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// Notify implements Notifier.Notify
func (t *Terminal) Notify(ctx context.Context, n Notification) {
	switch n.Level {
	case LevelSuccess:
		t.logger.Success(n.Message)
	case LevelWarning:
		t.logger.Warning(n.Message)
	case LevelError:
		t.logger.Error(n.Message)
	default:
		t.logger.Info(n.Message)
	}
}

// Getwd implements Workspace.Getwd
func (t *Terminal) Getwd() (string, error) {
	wd, err := os.Getwd()
	if err != nil {
		return "", errors.Errorf("getting working directory: %w", err)
	}
	return wd, nil
}

// Chdir implements Workspace.Chdir. It moves this process only; a parent
// shell stays where it was.
func (t *Terminal) Chdir(path string) error {
	if err := os.Chdir(path); err != nil {
		return errors.Errorf("changing directory: %w", err)
	}
	return nil
}
