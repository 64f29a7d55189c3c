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
	"path/filepath"

	"github.com/walteh/tmplrc/pkg/token"
	"gitlab.com/tozd/go/errors"
)

// ScanArgs are the inputs of a dry run.
type ScanArgs struct {
	// Dir is scanned; empty means the host's working directory.
	Dir string
	Out io.Writer
}

// 🔍 NewScanOperation creates an operation that reports the tokens under a
// folder without changing anything
func NewScanOperation(opts Options, args ScanArgs) Operation {
	return &scanOperation{
		BaseOperation: NewBaseOperation(opts),
		args:          args,
	}
}

type scanOperation struct {
	BaseOperation
	args ScanArgs
}

func (op *scanOperation) Name() string { return "scan" }

// 🏃 Execute runs the scan operation
func (op *scanOperation) Execute(ctx context.Context) (string, error) {
	wd, err := op.Host.Getwd()
	if err != nil {
		return "", errors.Errorf("getting working directory: %w", err)
	}

	dir := op.args.Dir
	switch {
	case dir == "":
		dir = wd
	case !filepath.IsAbs(dir):
		dir = filepath.Join(wd, dir)
	}

	result, err := op.Scanner.Scan(ctx, dir)
	if err != nil {
		return "", err
	}

	if result.Empty() {
		return fmt.Sprintf("no tokens in %s", dir), nil
	}

	op.Logger.Header(fmt.Sprintf("tokens under %s", dir))
	writeScanResult(op.args.Out, result)

	return fmt.Sprintf("found %d tokens in %s", len(result.Tokens), dir), nil
}

func writeScanResult(out io.Writer, result *token.ScanResult) {
	section := func(title string, items []string) {
		if len(items) == 0 {
			return
		}
		fmt.Fprintf(out, "%s:\n", title)
		for _, item := range items {
			fmt.Fprintf(out, "  %s\n", item)
		}
	}

	tokens := make([]string, len(result.Tokens))
	for i, t := range result.Tokens {
		tokens[i] = string(t)
	}

	section("tokens", tokens)
	section("contents", relAll(result.Root, result.ContentFiles))
	section("files", relAll(result.Root, result.NamedFilePaths))
	section("folders", relAll(result.Root, result.NamedFolders))
}

func relAll(root string, paths []string) []string {
	out := make([]string, len(paths))
	for i, p := range paths {
		out[i] = relOrAbs(root, p)
	}
	return out
}
