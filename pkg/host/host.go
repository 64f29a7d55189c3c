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

// Package host defines what tmplrc needs from whoever drives it: prompts,
// notifications and a working directory. The terminal adapter lives here
// too; tests supply their own.
package host

import (
	"context"

	"gitlab.com/tozd/go/errors"
)

// ErrCancelled is returned by prompts the user backed out of. It is a
// neutral outcome, never a failure.
var ErrCancelled = errors.Base("cancelled by user")

// 💬 Prompter asks the user for input
type Prompter interface {
	// Choose returns one of options.
	Choose(ctx context.Context, options []string, prompt string) (string, error)
	// Ask returns free text, which may be empty.
	Ask(ctx context.Context, prompt string) (string, error)
	// Confirm returns the user's yes/no decision.
	Confirm(ctx context.Context, prompt string) (bool, error)
}

// 📢 Notifier shows the final status of a command
type Notifier interface {
	Notify(ctx context.Context, n Notification)
}

// 📂 Workspace is the host's notion of a current directory
type Workspace interface {
	Getwd() (string, error)
	Chdir(path string) error
}

// 🏠 Host bundles every capability a command may use
type Host interface {
	Prompter
	Notifier
	Workspace
}

// Level is the tone of a notification
type Level int

const (
	LevelSuccess Level = iota
	LevelInfo
	LevelWarning
	LevelError
)

// String returns a string representation of Level
func (l Level) String() string {
	switch l {
	case LevelSuccess:
		return "success"
	case LevelInfo:
		return "info"
	case LevelWarning:
		return "warning"
	case LevelError:
		return "error"
	default:
		return "unknown"
	}
}

// Notification is the single message a command ends with
type Notification struct {
	Level   Level
	Message string
}
