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

// Package store keeps templates as plain folders below a single root. Each
// immediate subfolder is one template, named by its basename; there is no
// manifest.
package store

import (
	"context"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/rs/zerolog"
	"github.com/walteh/tmplrc/pkg/fsutil"
	"github.com/walteh/tmplrc/pkg/pathclass"
	"gitlab.com/tozd/go/errors"
)

var (
	ErrTemplateNotFound = errors.Base("template not found")
	ErrTemplateExists   = errors.Base("template already exists")
	ErrInvalidName      = errors.Base("invalid template name")
)

// 📦 Store manages the template root
type Store struct {
	root   string
	ignore *pathclass.Matcher
}

// Options configures a Store
type Options struct {
	// Ignore leaves matching entries out of saved templates.
	Ignore *pathclass.Matcher
}

// 🏭 New opens the store at root, creating the folder if it is absent.
func New(ctx context.Context, root string, opts Options) (*Store, error) {
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return nil, errors.Errorf("resolving template root: %w", err)
	}

	if err := os.MkdirAll(absRoot, 0755); err != nil {
		return nil, errors.Errorf("creating template root: %w", err)
	}

	zerolog.Ctx(ctx).Debug().Str("root", absRoot).Msg("opened template store")

	return &Store{root: absRoot, ignore: opts.Ignore}, nil
}

// Root returns the absolute template root.
func (s *Store) Root() string {
	return s.root
}

// ValidateName checks that name is usable as a single folder below the root.
func ValidateName(name string) error {
	switch {
	case strings.TrimSpace(name) == "":
		return errors.Errorf("%w: name is empty", ErrInvalidName)
	case name == "." || name == "..":
		return errors.Errorf("%w: %q", ErrInvalidName, name)
	case strings.ContainsAny(name, `/\`) || filepath.Base(name) != name:
		return errors.Errorf("%w: %q contains a path separator", ErrInvalidName, name)
	}
	return nil
}

// Path returns where the template called name lives.
func (s *Store) Path(name string) (string, error) {
	if err := ValidateName(name); err != nil {
		return "", err
	}
	return filepath.Join(s.root, name), nil
}

// Exists reports whether the template called name is stored.
func (s *Store) Exists(name string) (bool, error) {
	path, err := s.Path(name)
	if err != nil {
		return false, err
	}
	return fsutil.IsDir(path)
}

// 📋 List returns the stored template names, sorted.
func (s *Store) List(ctx context.Context) ([]string, error) {
	entries, err := os.ReadDir(s.root)
	if err != nil {
		return nil, errors.Errorf("reading template root: %w", err)
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			names = append(names, entry.Name())
		}
	}
	sort.Strings(names)

	return names, nil
}

// 💾 Save copies the folder src into the store as name. An existing template
// is never merged into or replaced.
func (s *Store) Save(ctx context.Context, src, name string) error {
	target, err := s.Path(name)
	if err != nil {
		return err
	}

	exists, err := fsutil.Exists(target)
	if err != nil {
		return err
	}
	if exists {
		return errors.Errorf("%w: %s", ErrTemplateExists, name)
	}

	absSrc, err := filepath.Abs(src)
	if err != nil {
		return errors.Errorf("resolving source: %w", err)
	}
	if pathclass.Within(s.root, absSrc) {
		return errors.Errorf("cannot save %s: it is inside the template root", absSrc)
	}

	err = fsutil.CopyTree(ctx, absSrc, target, fsutil.CopyOptions{
		Skip: func(path, rel string, info os.FileInfo) bool {
			// the store may live inside the folder being saved
			if path == s.root {
				return true
			}
			return s.ignore.Match(rel)
		},
	})
	if err != nil {
		// leave no half-written template behind
		if rmErr := fsutil.RemoveTree(ctx, target); rmErr != nil {
			zerolog.Ctx(ctx).Warn().Err(rmErr).Str("template", name).Msg("removing unfinished template")
		}
		return errors.Errorf("saving template %s: %w", name, err)
	}

	zerolog.Ctx(ctx).Info().Str("template", name).Str("src", absSrc).Msg("saved template")
	return nil
}

// 📤 Copy instantiates the template called name at dst, which must not exist.
func (s *Store) Copy(ctx context.Context, name, dst string) error {
	source, err := s.Path(name)
	if err != nil {
		return err
	}

	exists, err := fsutil.IsDir(source)
	if err != nil {
		return err
	}
	if !exists {
		return errors.Errorf("%w: %s", ErrTemplateNotFound, name)
	}

	if err := fsutil.CopyTree(ctx, source, dst, fsutil.CopyOptions{}); err != nil {
		return errors.Errorf("copying template %s: %w", name, err)
	}

	zerolog.Ctx(ctx).Info().Str("template", name).Str("dst", dst).Msg("copied template")
	return nil
}

// 🗑️ Delete removes the template called name. It reports false, without an
// error, when there was nothing to delete.
func (s *Store) Delete(ctx context.Context, name string) (bool, error) {
	target, err := s.Path(name)
	if err != nil {
		return false, err
	}

	exists, err := fsutil.IsDir(target)
	if err != nil {
		return false, err
	}
	if !exists {
		zerolog.Ctx(ctx).Debug().Str("template", name).Msg("nothing to delete")
		return false, nil
	}

	if err := fsutil.RemoveTree(ctx, target); err != nil {
		return false, errors.Errorf("deleting template %s: %w", name, err)
	}

	zerolog.Ctx(ctx).Info().Str("template", name).Msg("deleted template")
	return true, nil
}
