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

	"github.com/walteh/tmplrc/pkg/store"
	"gitlab.com/tozd/go/errors"
)

// DeleteArgs are the inputs of a delete.
type DeleteArgs struct {
	Name string
}

// 🗑️ NewDeleteOperation creates a new delete operation
func NewDeleteOperation(opts Options, args DeleteArgs) Operation {
	return &deleteOperation{
		BaseOperation: NewBaseOperation(opts),
		args:          args,
	}
}

type deleteOperation struct {
	BaseOperation
	args DeleteArgs
}

func (op *deleteOperation) Name() string { return "delete" }

// 🏃 Execute runs the delete operation. A template that does not exist is not
// an error.
func (op *deleteOperation) Execute(ctx context.Context) (string, error) {
	name, err := op.chooseTemplate(ctx, op.args.Name, "Select a template to delete")
	if errors.Is(err, store.ErrTemplateNotFound) {
		return "no templates to delete", nil
	}
	if err != nil {
		return "", err
	}

	deleted, err := op.Store.Delete(ctx, name)
	if err != nil {
		return "", err
	}
	if !deleted {
		return fmt.Sprintf("template %s does not exist, nothing deleted", name), nil
	}

	return fmt.Sprintf("deleted template %s", name), nil
}
