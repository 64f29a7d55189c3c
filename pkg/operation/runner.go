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

package operation

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/walteh/tmplrc/pkg/host"
	"gitlab.com/tozd/go/errors"
)

// 🏃 Runner executes operations and reports each outcome to the user exactly
// once.
type Runner struct {
	notifier host.Notifier
}

// 🏗️ NewRunner creates a new runner
func NewRunner(notifier host.Notifier) *Runner {
	return &Runner{notifier: notifier}
}

// 🏃 Run executes op and sends one notification. Cancellation and a declined
// overwrite are neutral and return nil; every other failure is returned.
func (r *Runner) Run(ctx context.Context, op Operation) error {
	logger := zerolog.Ctx(ctx)

	msg, err := op.Execute(ctx)
	n := outcome(op, msg, err)
	r.notifier.Notify(ctx, n)

	switch n.Level {
	case host.LevelSuccess, host.LevelInfo:
		logger.Debug().Str("operation", op.Name()).Str("level", n.Level.String()).Msg("operation finished")
		return nil
	default:
		logger.Debug().Err(err).Str("operation", op.Name()).Str("level", n.Level.String()).Msg("operation failed")
		return &reportedError{err: errors.Errorf("%s: %w", op.Name(), err)}
	}
}

// reportedError is a failure the user has already been notified of.
type reportedError struct {
	err error
}

func (e *reportedError) Error() string { return e.err.Error() }

func (e *reportedError) Unwrap() error { return e.err }

// Reported reports whether err was already shown to the user by a Runner.
func Reported(err error) bool {
	var r *reportedError
	return errors.As(err, &r)
}

func outcome(op Operation, msg string, err error) host.Notification {
	switch {
	case err == nil:
		return host.Notification{Level: host.LevelSuccess, Message: msg}
	case errors.Is(err, host.ErrCancelled):
		return host.Notification{Level: host.LevelInfo, Message: fmt.Sprintf("%s cancelled", op.Name())}
	case errors.Is(err, ErrDestinationExists):
		return host.Notification{Level: host.LevelInfo, Message: err.Error()}
	case errors.Is(err, ErrPartialSubstitution):
		return host.Notification{Level: host.LevelWarning, Message: err.Error()}
	default:
		return host.Notification{Level: host.LevelError, Message: fmt.Sprintf("%s failed: %v", op.Name(), err)}
	}
}
