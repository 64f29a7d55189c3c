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

// Package fsutil holds the recursive copy and delete primitives used by the
// template store.
package fsutil

import (
	"context"
	"os"
	"path/filepath"

	cp "github.com/otiai10/copy"
	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

// SkipFunc reports whether the entry at src (rel is slash-separated and
// relative to the copy root) is left out. Skipping a folder skips its subtree.
type SkipFunc func(src, rel string, info os.FileInfo) bool

// CopyOptions tunes CopyTree
type CopyOptions struct {
	Skip SkipFunc
}

// 📁 CopyTree copies the folder src to dst, which must not exist yet.
// Files and folders keep their permission bits and symlinks are recreated
// as symlinks. Entries that are neither are left out.
func CopyTree(ctx context.Context, src, dst string, opts CopyOptions) error {
	logger := zerolog.Ctx(ctx)

	info, err := os.Stat(src)
	if err != nil {
		return errors.Errorf("checking source: %w", err)
	}
	if !info.IsDir() {
		return errors.Errorf("source %s is not a directory", src)
	}

	exists, err := Exists(dst)
	if err != nil {
		return err
	}
	if exists {
		return errors.Errorf("destination %s already exists", dst)
	}

	files := 0
	err = cp.Copy(src, dst, cp.Options{
		OnSymlink:         func(string) cp.SymlinkAction { return cp.Shallow },
		PermissionControl: cp.PerservePermission,
		Skip: func(srcinfo os.FileInfo, path, _ string) (bool, error) {
			if err := ctx.Err(); err != nil {
				return false, errors.Errorf("copy cancelled: %w", err)
			}

			rel, err := filepath.Rel(src, path)
			if err != nil {
				return false, errors.Errorf("relativizing %s: %w", path, err)
			}
			if rel == "." {
				return false, nil
			}
			rel = filepath.ToSlash(rel)

			if opts.Skip != nil && opts.Skip(path, rel, srcinfo) {
				logger.Debug().Str("path", rel).Msg("skipped while copying")
				return true, nil
			}

			mode := srcinfo.Mode()
			switch {
			case mode.IsRegular():
				files++
			case mode.IsDir(), mode&os.ModeSymlink != 0:
			default:
				logger.Debug().Str("path", rel).Msg("skipping irregular file")
				return true, nil
			}
			return false, nil
		},
	})
	if err != nil {
		return errors.Errorf("copying %s to %s: %w", src, dst, err)
	}

	logger.Debug().Str("src", src).Str("dst", dst).Int("files", files).Msg("copied tree")
	return nil
}

// 🗑️ RemoveTree deletes path and everything below it. A missing path is not
// an error.
func RemoveTree(ctx context.Context, path string) error {
	if err := os.RemoveAll(path); err != nil {
		return errors.Errorf("removing %s: %w", path, err)
	}
	zerolog.Ctx(ctx).Debug().Str("path", path).Msg("removed tree")
	return nil
}

// Exists reports whether anything is present at path (symlinks are not
// followed).
func Exists(path string) (bool, error) {
	_, err := os.Lstat(path)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, os.ErrNotExist) {
		return false, nil
	}
	return false, errors.Errorf("checking %s: %w", path, err)
}

// IsDir reports whether path is an existing folder.
func IsDir(path string) (bool, error) {
	info, err := os.Stat(path)
	if errors.Is(err, os.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, errors.Errorf("checking %s: %w", path, err)
	}
	return info.IsDir(), nil
}
