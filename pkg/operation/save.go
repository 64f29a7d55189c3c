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

	"github.com/walteh/tmplrc/pkg/log"
	"gitlab.com/tozd/go/errors"
)

// SaveArgs are the inputs of a save.
type SaveArgs struct {
	Name string
}

// 💾 NewSaveOperation creates an operation that stores the host's working
// directory as a template
func NewSaveOperation(opts Options, args SaveArgs) Operation {
	return &saveOperation{
		BaseOperation: NewBaseOperation(opts),
		args:          args,
	}
}

type saveOperation struct {
	BaseOperation
	args SaveArgs
}

func (op *saveOperation) Name() string { return "save" }

// 🏃 Execute runs the save operation
func (op *saveOperation) Execute(ctx context.Context) (string, error) {
	name, err := op.askName(ctx, op.args.Name, "Enter a name for the template")
	if err != nil {
		return "", err
	}

	target, err := op.Store.Path(name)
	if err != nil {
		return "", err
	}

	src, err := op.Host.Getwd()
	if err != nil {
		return "", errors.Errorf("getting working directory: %w", err)
	}

	op.Logger.StartTemplateOperation(ctx, log.TemplateOperation{
		Command:     op.Name(),
		Template:    name,
		Destination: target,
	})
	defer op.Logger.EndTemplateOperation(ctx)

	if err := op.Store.Save(ctx, src, name); err != nil {
		return "", err
	}

	return fmt.Sprintf("saved %s as template %s", src, name), nil
}
