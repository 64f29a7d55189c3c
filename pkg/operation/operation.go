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
	"strings"

	"github.com/walteh/tmplrc/pkg/host"
	"github.com/walteh/tmplrc/pkg/log"
	"github.com/walteh/tmplrc/pkg/store"
	"github.com/walteh/tmplrc/pkg/substitute"
	"github.com/walteh/tmplrc/pkg/token"
	"gitlab.com/tozd/go/errors"
)

var (
	// ErrDestinationExists is returned when the user declines to overwrite
	// an existing project folder. The folder is left untouched.
	ErrDestinationExists = errors.Base("destination already exists")
	// ErrPartialSubstitution marks a load that failed after the template was
	// copied; the project may hold a mix of substituted and raw tokens.
	ErrPartialSubstitution = errors.Base("template loaded but may be partially substituted")
)

// PartialSubstitutionError carries the failure that interrupted a load after
// the copy step.
type PartialSubstitutionError struct {
	Destination string
	Err         error
}

func (e *PartialSubstitutionError) Error() string {
	return fmt.Sprintf("template loaded into %s but may be partially substituted: %v", e.Destination, e.Err)
}

func (e *PartialSubstitutionError) Unwrap() error {
	return e.Err
}

func (e *PartialSubstitutionError) Is(target error) bool {
	return target == ErrPartialSubstitution
}

// 🎯 Operation is one tmplrc command. Execute returns the message shown
// when it succeeds.
type Operation interface {
	Name() string
	Execute(ctx context.Context) (string, error)
}

// 🔧 Options contains what every operation works with
type Options struct {
	// Host prompts the user and owns the working directory
	Host host.Host
	// Store holds the saved templates
	Store *store.Store
	// Logger prints one line per change
	Logger *log.Logger
	// Scanner finds tokens in a loaded project
	Scanner *token.Scanner
	// Resolver binds a value to each token
	Resolver *token.Resolver
	// Engine applies the bindings
	Engine *substitute.Engine
}

// 🔍 Validate checks that the options required by every operation are set
func (o Options) Validate() error {
	if o.Host == nil {
		return errors.Errorf("host is required")
	}
	if o.Store == nil {
		return errors.Errorf("store is required")
	}
	if o.Logger == nil {
		return errors.Errorf("logger is required")
	}
	return nil
}

// 📦 BaseOperation provides the shared plumbing
type BaseOperation struct {
	Options
}

// 🏭 NewBaseOperation fills in a scanner, resolver and engine when absent
func NewBaseOperation(opts Options) BaseOperation {
	if opts.Scanner == nil {
		opts.Scanner = token.NewScanner()
	}
	if opts.Resolver == nil {
		opts.Resolver = token.NewResolver(nil)
	}
	if opts.Engine == nil {
		opts.Engine = substitute.NewEngine()
	}
	return BaseOperation{Options: opts}
}

// chooseTemplate returns name, or asks the user to pick a stored template.
func (op *BaseOperation) chooseTemplate(ctx context.Context, name, prompt string) (string, error) {
	if name != "" {
		return name, nil
	}

	names, err := op.Store.List(ctx)
	if err != nil {
		return "", errors.Errorf("listing templates: %w", err)
	}
	if len(names) == 0 {
		return "", errors.Errorf("%w: no templates in %s", store.ErrTemplateNotFound, op.Store.Root())
	}

	choice, err := op.Host.Choose(ctx, names, prompt)
	if err != nil {
		return "", errors.Errorf("choosing template: %w", err)
	}
	return choice, nil
}

// askName returns name, or asks for one. An empty answer cancels.
func (op *BaseOperation) askName(ctx context.Context, name, prompt string) (string, error) {
	if name != "" {
		return name, nil
	}

	answer, err := op.Host.Ask(ctx, prompt)
	if err != nil {
		return "", errors.Errorf("asking name: %w", err)
	}
	answer = strings.TrimSpace(answer)
	if answer == "" {
		return "", errors.Errorf("%w: no name given", host.ErrCancelled)
	}
	return answer, nil
}
