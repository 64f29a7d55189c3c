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

// Package pathclass classifies paths for the scanner and the template store:
// binary detection, ignore globs and a few path helpers.
package pathclass

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"gitlab.com/tozd/go/errors"
)

// 🔍 IsBinary reports whether the file at path looks like binary data.
//
// Empty files are text. Anything else is text only when its detected MIME
// type is text/plain or descends from it (json, xml, shell scripts, ...).
func IsBinary(path string) (bool, error) {
	f, err := os.Open(path)
	if err != nil {
		return false, errors.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return false, errors.Errorf("stat %s: %w", path, err)
	}
	if info.Size() == 0 {
		return false, nil
	}

	mtype, err := mimetype.DetectReader(f)
	if err != nil {
		return false, errors.Errorf("reading %s: %w", path, err)
	}
	return !isText(mtype), nil
}

func isText(mtype *mimetype.MIME) bool {
	for m := mtype; m != nil; m = m.Parent() {
		if m.Is("text/plain") {
			return true
		}
	}
	return false
}

// Depth counts the separators in a cleaned path. Deeper paths sort first when
// folders are renamed.
func Depth(path string) int {
	return strings.Count(filepath.Clean(path), string(filepath.Separator))
}

// Rel returns path relative to root using forward slashes, the form ignore
// globs are written in.
func Rel(root, path string) (string, error) {
	rel, err := filepath.Rel(root, path)
	if err != nil {
		return "", errors.Errorf("relativizing %s to %s: %w", path, root, err)
	}
	return filepath.ToSlash(rel), nil
}

// WithBase returns path with its last segment replaced by name.
func WithBase(path, name string) string {
	return filepath.Join(filepath.Dir(path), name)
}

// Within reports whether path equals root or sits below it.
func Within(root, path string) bool {
	rel, err := filepath.Rel(filepath.Clean(root), filepath.Clean(path))
	if err != nil {
		return false
	}
	return rel == "." || (rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator)))
}
