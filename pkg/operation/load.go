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
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/walteh/tmplrc/pkg/fsutil"
	"github.com/walteh/tmplrc/pkg/log"
	"github.com/walteh/tmplrc/pkg/pathclass"
	"github.com/walteh/tmplrc/pkg/store"
	"github.com/walteh/tmplrc/pkg/substitute"
	"gitlab.com/tozd/go/errors"
)

// LoadArgs are the inputs of a load. Empty fields are prompted for.
type LoadArgs struct {
	Template string
	Project  string
	// Overwrite replaces an existing project folder without asking.
	Overwrite bool
}

// 📦 NewLoadOperation creates a new load operation
func NewLoadOperation(opts Options, args LoadArgs) Operation {
	return &loadOperation{
		BaseOperation: NewBaseOperation(opts),
		args:          args,
	}
}

// 📦 loadOperation instantiates a template as a new project
type loadOperation struct {
	BaseOperation
	args LoadArgs
}

func (op *loadOperation) Name() string { return "load" }

// 🏃 Execute runs the load operation
func (op *loadOperation) Execute(ctx context.Context) (string, error) {
	logger := zerolog.Ctx(ctx)

	name, err := op.chooseTemplate(ctx, op.args.Template, "Select a template to load")
	if err != nil {
		return "", err
	}

	exists, err := op.Store.Exists(name)
	if err != nil {
		return "", err
	}
	if !exists {
		return "", errors.Errorf("%w: %s", store.ErrTemplateNotFound, name)
	}

	project, err := op.askName(ctx, op.args.Project, "Enter the name of the new project")
	if err != nil {
		return "", err
	}

	dest, err := op.destination(project)
	if err != nil {
		return "", err
	}

	if err := op.clearDestination(ctx, dest); err != nil {
		return "", err
	}

	op.Logger.StartTemplateOperation(ctx, log.TemplateOperation{
		Command:     op.Name(),
		Template:    name,
		Destination: dest,
	})
	defer op.Logger.EndTemplateOperation(ctx)

	if err := op.Store.Copy(ctx, name, dest); err != nil {
		if rmErr := fsutil.RemoveTree(ctx, dest); rmErr != nil {
			logger.Warn().Err(rmErr).Str("dest", dest).Msg("removing partial copy")
		}
		return "", errors.Errorf("loading template: %w", err)
	}

	result, err := op.Scanner.Scan(ctx, dest)
	if err != nil {
		return "", &PartialSubstitutionError{Destination: dest, Err: err}
	}
	logger.Debug().Int("tokens", len(result.Tokens)).Str("dest", dest).Msg("scanned project")

	bindings, err := op.Resolver.Resolve(ctx, result.Tokens, op.Host.Ask)
	if err != nil {
		// nothing is substituted yet, so drop the fresh copy
		if rmErr := fsutil.RemoveTree(ctx, dest); rmErr != nil {
			logger.Warn().Err(rmErr).Str("dest", dest).Msg("removing unfinished project")
		}
		return "", err
	}

	report, err := op.Engine.Apply(ctx, result, bindings)
	op.logChanges(ctx, dest, report)
	if err != nil {
		return "", &PartialSubstitutionError{Destination: dest, Err: err}
	}

	if err := op.Host.Chdir(dest); err != nil {
		return "", errors.Errorf("changing directory to %s: %w", dest, err)
	}

	return fmt.Sprintf("loaded template %s into %s (%d tokens, %d changes)", name, dest, len(bindings), len(report.Changes)), nil
}

// destination resolves project against the host's working directory.
func (op *loadOperation) destination(project string) (string, error) {
	dest := project
	if !filepath.IsAbs(dest) {
		wd, err := op.Host.Getwd()
		if err != nil {
			return "", errors.Errorf("getting working directory: %w", err)
		}
		dest = filepath.Join(wd, project)
	}
	dest = filepath.Clean(dest)

	if pathclass.Within(op.Store.Root(), dest) || pathclass.Within(dest, op.Store.Root()) {
		return "", errors.Errorf("cannot load into %s: it overlaps the template root", dest)
	}
	return dest, nil
}

// clearDestination removes an existing dest once the user agrees. Declining
// leaves it untouched and returns ErrDestinationExists.
func (op *loadOperation) clearDestination(ctx context.Context, dest string) error {
	exists, err := fsutil.Exists(dest)
	if err != nil {
		return err
	}
	if !exists {
		return nil
	}

	if wd, err := op.Host.Getwd(); err == nil && pathclass.Within(dest, wd) {
		return errors.Errorf("cannot overwrite %s: it contains the working directory", dest)
	}

	if !op.args.Overwrite {
		ok, err := op.Host.Confirm(ctx, fmt.Sprintf("%s already exists. Overwrite it?", dest))
		if err != nil {
			return errors.Errorf("confirming overwrite: %w", err)
		}
		if !ok {
			return errors.Errorf("%w: %s left unchanged", ErrDestinationExists, dest)
		}
	}

	if err := fsutil.RemoveTree(ctx, dest); err != nil {
		return errors.Errorf("removing %s: %w", dest, err)
	}
	return nil
}

func (op *loadOperation) logChanges(ctx context.Context, dest string, report *substitute.Report) {
	if report == nil {
		return
	}
	for _, c := range report.Changes {
		entry := log.FileOperation{
			Path:         relOrAbs(dest, c.Path),
			Kind:         c.Kind.String(),
			Replacements: c.Replacements,
		}
		switch c.Kind {
		case substitute.ChangeContent:
			entry.IsModified = true
			entry.Status = fmt.Sprintf("%d replaced", c.Replacements)
		default:
			entry.IsRenamed = true
			entry.NewPath = filepath.Base(c.NewPath)
			entry.Status = "renamed"
		}
		op.Logger.LogFileOperation(ctx, entry)
	}
}

func relOrAbs(root, path string) string {
	rel, err := pathclass.Rel(root, path)
	if err != nil {
		return path
	}
	return rel
}
