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

// Package substitute rewrites a scanned tree in place: file contents first,
// then file names, then folder names.
package substitute

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"sort"

	"github.com/google/renameio/v2"
	"github.com/rs/zerolog"
	"github.com/walteh/tmplrc/pkg/pathclass"
	"github.com/walteh/tmplrc/pkg/text"
	"github.com/walteh/tmplrc/pkg/token"
	"gitlab.com/tozd/go/errors"
)

// 📊 ChangeKind is the kind of change the engine made.
type ChangeKind int

const (
	ChangeContent      ChangeKind = iota // file contents rewritten
	ChangeFileRename                     // file renamed
	ChangeFolderRename                   // folder renamed
)

// String returns a string representation of ChangeKind
func (k ChangeKind) String() string {
	switch k {
	case ChangeContent:
		return "content"
	case ChangeFileRename:
		return "file"
	case ChangeFolderRename:
		return "folder"
	default:
		return "unknown"
	}
}

// 📝 Change is one completed filesystem change.
type Change struct {
	Kind         ChangeKind
	Path         string // path before the change
	NewPath      string // path after a rename, empty for content changes
	Replacements int    // token occurrences replaced
}

// 📋 Report lists the changes made by Apply, in the order they happened.
type Report struct {
	Changes []Change
}

// Count returns how many changes of kind k were made.
func (r *Report) Count(k ChangeKind) int {
	n := 0
	for _, c := range r.Changes {
		if c.Kind == k {
			n++
		}
	}
	return n
}

func (r *Report) add(c Change) {
	r.Changes = append(r.Changes, c)
}

// 🔧 Engine applies bindings to a scanned tree.
type Engine struct {
	replacer text.TextReplacer
	isBinary token.BinaryDetector
}

// EngineOption configures an Engine
type EngineOption func(*Engine)

// WithReplacer swaps the text replacer.
func WithReplacer(r text.TextReplacer) EngineOption {
	return func(e *Engine) {
		e.replacer = r
	}
}

// WithBinaryDetector replaces pathclass.IsBinary.
func WithBinaryDetector(fn token.BinaryDetector) EngineOption {
	return func(e *Engine) {
		e.isBinary = fn
	}
}

// 🏭 NewEngine creates an engine
func NewEngine(opts ...EngineOption) *Engine {
	e := &Engine{
		replacer: text.NewSimpleTextReplacer(),
		isBinary: pathclass.IsBinary,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Apply rewrites contents, then renames files, then renames folders
// deepest-first. Each rename step is planned and checked as a whole before
// anything in it is renamed. Nothing is rolled back: on error the returned
// report still lists every change already made.
func (e *Engine) Apply(ctx context.Context, result *token.ScanResult, bindings []token.Binding) (*Report, error) {
	report := &Report{}

	rules := token.Rules(bindings)
	if err := e.replacer.ValidateRules(rules); err != nil {
		return report, errors.Errorf("validating bindings: %w", err)
	}

	if err := e.rewriteContents(ctx, result.ContentFiles, rules, report); err != nil {
		return report, errors.Errorf("rewriting contents: %w", err)
	}

	if err := e.rename(ctx, ChangeFileRename, result.NamedFilePaths, rules, report); err != nil {
		return report, errors.Errorf("renaming files: %w", err)
	}

	if err := e.rename(ctx, ChangeFolderRename, deepestFirst(result.NamedFolders), rules, report); err != nil {
		return report, errors.Errorf("renaming folders: %w", err)
	}

	zerolog.Ctx(ctx).Debug().
		Int("contents", report.Count(ChangeContent)).
		Int("files", report.Count(ChangeFileRename)).
		Int("folders", report.Count(ChangeFolderRename)).
		Msg("substitution complete")

	return report, nil
}

func (e *Engine) rewriteContents(ctx context.Context, paths []string, rules []text.ReplacementRule, report *Report) error {
	logger := zerolog.Ctx(ctx)

	for _, path := range paths {
		binary, err := e.isBinary(path)
		if err != nil {
			return errors.Errorf("classifying %s: %w", path, err)
		}
		if binary {
			logger.Debug().Str("file", path).Msg("binary file, contents left untouched")
			continue
		}

		info, err := os.Stat(path)
		if err != nil {
			return errors.Errorf("checking %s: %w", path, err)
		}

		content, err := os.ReadFile(path)
		if err != nil {
			return errors.Errorf("reading %s: %w", path, err)
		}

		res, err := e.replacer.ReplaceText(ctx, bytes.NewReader(content), rules)
		if err != nil {
			return errors.Errorf("replacing in %s: %w", path, err)
		}
		if !res.WasModified {
			continue
		}

		// 💾 swap in through a temp file so a failed write keeps the original
		if err := renameio.WriteFile(path, res.ModifiedContent, info.Mode().Perm(), renameio.IgnoreUmask()); err != nil {
			return errors.Errorf("writing %s: %w", path, err)
		}

		logger.Debug().Str("file", path).Int("replacements", res.ReplacementCount).Msg("rewrote contents")
		report.add(Change{Kind: ChangeContent, Path: path, Replacements: res.ReplacementCount})
	}

	return nil
}

// move is one planned rename.
type move struct {
	from         string
	to           string
	replacements int
}

func (e *Engine) rename(ctx context.Context, kind ChangeKind, paths []string, rules []text.ReplacementRule, report *Report) error {
	moves, err := e.plan(kind, paths, rules)
	if err != nil {
		return err
	}

	logger := zerolog.Ctx(ctx)
	for _, m := range moves {
		if err := os.Rename(m.from, m.to); err != nil {
			return errors.Errorf("renaming %s: %w", m.from, err)
		}
		logger.Debug().Str("from", m.from).Str("to", m.to).Stringer("kind", kind).Msg("renamed")
		report.add(Change{Kind: kind, Path: m.from, NewPath: m.to, Replacements: m.replacements})
	}

	return nil
}

// plan computes every rename of one step and rejects the whole step if two
// sources share a target, a target is already taken on disk, or a new name
// is not a single path segment.
func (e *Engine) plan(kind ChangeKind, paths []string, rules []text.ReplacementRule) ([]move, error) {
	moves := make([]move, 0, len(paths))
	claims := make(map[string][]string)

	for _, path := range paths {
		base := filepath.Base(path)
		name, n := e.replacer.ReplaceString(base, rules)
		if name == base {
			continue
		}
		if name == "" || name == "." || name == ".." || filepath.Base(name) != name {
			return nil, errors.Errorf("invalid %s name %q for %s", kind, name, path)
		}

		target := pathclass.WithBase(path, name)
		moves = append(moves, move{from: path, to: target, replacements: n})
		claims[target] = append(claims[target], path)
	}

	targets := make([]string, 0, len(claims))
	for target := range claims {
		targets = append(targets, target)
	}
	sort.Strings(targets)

	for _, target := range targets {
		sources := claims[target]
		if len(sources) > 1 {
			return nil, &AmbiguousRenameError{Kind: kind.String(), Target: target, Sources: sources}
		}
		taken, err := occupied(sources[0], target)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, &AmbiguousRenameError{Kind: kind.String(), Target: target, Sources: sources, Exists: true}
		}
	}

	return moves, nil
}

// occupied reports whether target exists and is not source itself (a
// case-only rename on a case-insensitive filesystem).
func occupied(source, target string) (bool, error) {
	targetInfo, err := os.Lstat(target)
	if errors.Is(err, os.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, errors.Errorf("checking %s: %w", target, err)
	}
	sourceInfo, err := os.Lstat(source)
	if err != nil {
		return false, errors.Errorf("checking %s: %w", source, err)
	}
	return !os.SameFile(sourceInfo, targetInfo), nil
}

// deepestFirst orders folders so that a child is always renamed before any
// of its ancestors.
func deepestFirst(folders []string) []string {
	sorted := append([]string(nil), folders...)
	sort.SliceStable(sorted, func(i, j int) bool {
		di, dj := pathclass.Depth(sorted[i]), pathclass.Depth(sorted[j])
		if di != dj {
			return di > dj
		}
		if len(sorted[i]) != len(sorted[j]) {
			return len(sorted[i]) > len(sorted[j])
		}
		return sorted[i] < sorted[j]
	})
	return sorted
}
