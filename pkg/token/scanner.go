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

package token

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/walteh/tmplrc/pkg/pathclass"
	"gitlab.com/tozd/go/errors"
)

// BinaryDetector reports whether a file must be left out of content scanning.
type BinaryDetector func(path string) (bool, error)

// 🔍 Scanner walks a tree and records where placeholders appear.
// A Scanner holds configuration only, so one value can serve any number of scans.
type Scanner struct {
	ignore   *pathclass.Matcher
	isBinary BinaryDetector
}

// ScannerOption configures a Scanner
type ScannerOption func(*Scanner)

// WithIgnore skips every entry (and subtree) matched by m.
func WithIgnore(m *pathclass.Matcher) ScannerOption {
	return func(s *Scanner) {
		s.ignore = m
	}
}

// WithBinaryDetector replaces pathclass.IsBinary.
func WithBinaryDetector(fn BinaryDetector) ScannerOption {
	return func(s *Scanner) {
		s.isBinary = fn
	}
}

// 🏭 NewScanner creates a scanner
func NewScanner(opts ...ScannerOption) *Scanner {
	s := &Scanner{isBinary: pathclass.IsBinary}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Scan walks root in pre-order. Folder and file names are always checked;
// contents are read only for regular files that are not binary. The root
// folder's own name is never recorded.
func (s *Scanner) Scan(ctx context.Context, root string) (*ScanResult, error) {
	logger := zerolog.Ctx(ctx)

	absRoot, err := filepath.Abs(root)
	if err != nil {
		return nil, errors.Errorf("resolving root %s: %w", root, err)
	}

	info, err := os.Stat(absRoot)
	if err != nil {
		return nil, errors.Errorf("checking root: %w", err)
	}
	if !info.IsDir() {
		return nil, errors.Errorf("root %s is not a directory", absRoot)
	}

	tokens := newSet[Token]()
	contentFiles := newSet[string]()
	namedFiles := newSet[string]()
	namedFilePaths := newSet[string]()
	namedFolders := newSet[string]()

	err = filepath.WalkDir(absRoot, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return errors.Errorf("walking %s: %w", path, walkErr)
		}
		if err := ctx.Err(); err != nil {
			return errors.Errorf("scan cancelled: %w", err)
		}
		if path == absRoot {
			return nil
		}

		rel, err := pathclass.Rel(absRoot, path)
		if err != nil {
			return err
		}
		if s.ignore.Match(rel) {
			logger.Debug().Str("path", rel).Msg("ignored by pattern")
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}

		if d.IsDir() {
			if found := Find(d.Name()); len(found) > 0 {
				tokens.add(found...)
				namedFolders.add(path)
				logger.Debug().Str("folder", rel).Int("tokens", len(found)).Msg("tokenized folder name")
			}
			return nil
		}

		if found := Find(d.Name()); len(found) > 0 {
			tokens.add(found...)
			namedFiles.add(d.Name())
			namedFilePaths.add(path)
			logger.Debug().Str("file", rel).Int("tokens", len(found)).Msg("tokenized file name")
		}

		if !d.Type().IsRegular() {
			return nil
		}

		binary, err := s.isBinary(path)
		if err != nil {
			return errors.Errorf("classifying %s: %w", rel, err)
		}
		if binary {
			logger.Debug().Str("file", rel).Msg("binary file, contents not scanned")
			return nil
		}

		content, err := os.ReadFile(path)
		if err != nil {
			return errors.Errorf("reading %s: %w", rel, err)
		}
		if found := Find(string(content)); len(found) > 0 {
			tokens.add(found...)
			contentFiles.add(path)
			logger.Debug().Str("file", rel).Int("tokens", len(found)).Msg("tokenized file content")
		}

		return nil
	})
	if err != nil {
		return nil, errors.Errorf("scanning %s: %w", absRoot, err)
	}

	result := &ScanResult{
		Root:           absRoot,
		Tokens:         tokens.list(),
		ContentFiles:   contentFiles.list(),
		NamedFiles:     namedFiles.list(),
		NamedFilePaths: namedFilePaths.list(),
		NamedFolders:   namedFolders.list(),
	}

	logger.Debug().
		Int("tokens", len(result.Tokens)).
		Int("content_files", len(result.ContentFiles)).
		Int("named_files", len(result.NamedFilePaths)).
		Int("named_folders", len(result.NamedFolders)).
		Msg("scan complete")

	return result, nil
}
