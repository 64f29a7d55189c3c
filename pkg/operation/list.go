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
	"io"
)

// 📋 NewListOperation creates an operation that writes one template name per
// line to out
func NewListOperation(opts Options, out io.Writer) Operation {
	return &listOperation{
		BaseOperation: NewBaseOperation(opts),
		out:           out,
	}
}

type listOperation struct {
	BaseOperation
	out io.Writer
}

func (op *listOperation) Name() string { return "list" }

// 🏃 Execute runs the list operation
func (op *listOperation) Execute(ctx context.Context) (string, error) {
	names, err := op.Store.List(ctx)
	if err != nil {
		return "", err
	}

	op.Logger.Header(fmt.Sprintf("templates in %s", op.Store.Root()))
	for _, name := range names {
		fmt.Fprintln(op.out, name)
	}

	return fmt.Sprintf("%d templates in %s", len(names), op.Store.Root()), nil
}
