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

package substitute_test

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/walteh/tmplrc/pkg/substitute"
	"github.com/walteh/tmplrc/pkg/token"
	"gitlab.com/tozd/go/errors"
)

// 🧪 createTestEnv writes tree below a fresh root and returns a logging context
func createTestEnv(t *testing.T, tree map[string]string) (context.Context, string) {
	t.Helper()
	root := t.TempDir()
	for rel, content := range tree {
		path := filepath.Join(root, filepath.FromSlash(rel))
		if strings.HasSuffix(rel, "/") {
			require.NoError(t, os.MkdirAll(path, 0755))
			continue
		}
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	}
	logger := zerolog.New(zerolog.NewTestWriter(t))
	return logger.WithContext(context.Background()), root
}

// 📸 snapshot maps every relative path below root to its contents ("/" suffix for folders)
func snapshot(t *testing.T, root string) map[string]string {
	t.Helper()
	out := map[string]string{}
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		require.NoError(t, err)
		if path == root {
			return nil
		}
		rel, err := filepath.Rel(root, path)
		require.NoError(t, err)
		rel = filepath.ToSlash(rel)
		if d.IsDir() {
			out[rel+"/"] = ""
			return nil
		}
		content, err := os.ReadFile(path)
		require.NoError(t, err)
		out[rel] = string(content)
		return nil
	})
	require.NoError(t, err)
	return out
}

func scanAndApply(t *testing.T, ctx context.Context, root string, bindings []token.Binding) (*substitute.Report, error) {
	t.Helper()
	result, err := token.NewScanner().Scan(ctx, root)
	require.NoError(t, err)
	return substitute.NewEngine().Apply(ctx, result, bindings)
}

func TestApplyEndToEnd(t *testing.T) {
	ctx, root := createTestEnv(t, map[string]string{
		"#{NAME}.txt":   "Hello #{NAME}, welcome to #{NAME}!",
		"#{NAME}_data/": "",
	})

	report, err := scanAndApply(t, ctx, root, []token.Binding{{Token: "#{NAME}", Value: "Acme"}})
	require.NoError(t, err)

	assert.Equal(t, map[string]string{
		"Acme.txt":   "Hello Acme, welcome to Acme!",
		"Acme_data/": "",
	}, snapshot(t, root))

	assert.Equal(t, 1, report.Count(substitute.ChangeContent))
	assert.Equal(t, 1, report.Count(substitute.ChangeFileRename))
	assert.Equal(t, 1, report.Count(substitute.ChangeFolderRename))

	// contents are rewritten before the file is renamed
	require.Len(t, report.Changes, 3)
	assert.Equal(t, substitute.ChangeContent, report.Changes[0].Kind)
	assert.Equal(t, filepath.Join(root, "#{NAME}.txt"), report.Changes[0].Path)
	assert.Equal(t, 2, report.Changes[0].Replacements)
	assert.Equal(t, substitute.ChangeFileRename, report.Changes[1].Kind)
	assert.Equal(t, filepath.Join(root, "Acme.txt"), report.Changes[1].NewPath)
}

func TestApplyIdentityBindingIsNoOp(t *testing.T) {
	tree := map[string]string{
		"#{A}.txt":          "a #{A} b #{B}",
		"#{A}/":             "",
		"#{A}/#{B}/":        "",
		"#{A}/#{B}/#{C}.md": "#{C}#{C}",
		"plain/file.txt":    "nothing",
	}
	ctx, root := createTestEnv(t, tree)
	before := snapshot(t, root)

	report, err := scanAndApply(t, ctx, root, []token.Binding{
		{Token: "#{A}", Value: "#{A}"},
		{Token: "#{B}", Value: "#{B}"},
		{Token: "#{C}", Value: "#{C}"},
	})
	require.NoError(t, err)

	assert.Empty(t, report.Changes)
	assert.Equal(t, before, snapshot(t, root))
}

func TestApplyNestedFoldersDeepestFirst(t *testing.T) {
	ctx, root := createTestEnv(t, map[string]string{
		"#{A}/#{B}/#{B}.txt": "#{A}/#{B}",
		"#{A}/other/":        "",
	})

	report, err := scanAndApply(t, ctx, root, []token.Binding{
		{Token: "#{A}", Value: "x"},
		{Token: "#{B}", Value: "y"},
	})
	require.NoError(t, err)

	assert.Equal(t, map[string]string{
		"x/":        "",
		"x/y/":      "",
		"x/y/y.txt": "x/y",
		"x/other/":  "",
	}, snapshot(t, root))

	var folders []substitute.Change
	for _, c := range report.Changes {
		if c.Kind == substitute.ChangeFolderRename {
			folders = append(folders, c)
		}
	}
	require.Len(t, folders, 2)
	assert.Equal(t, filepath.Join(root, "#{A}", "#{B}"), folders[0].Path, "child renamed before parent")
	assert.Equal(t, filepath.Join(root, "#{A}"), folders[1].Path)
}

func TestApplyMultipleTokensInOneName(t *testing.T) {
	ctx, root := createTestEnv(t, map[string]string{
		"#{ORG}-#{NAME}.go": "package #{NAME}",
	})

	report, err := scanAndApply(t, ctx, root, []token.Binding{
		{Token: "#{ORG}", Value: "acme"},
		{Token: "#{NAME}", Value: "widget"},
	})
	require.NoError(t, err)

	assert.Equal(t, map[string]string{"acme-widget.go": "package widget"}, snapshot(t, root))
	assert.Equal(t, 1, report.Count(substitute.ChangeFileRename), "one rename per file")
}

func TestApplyAmbiguousFileRename(t *testing.T) {
	tree := map[string]string{
		"#{A}.txt": "first",
		"#{B}.txt": "second",
		"#{C}.txt": "third",
	}
	ctx, root := createTestEnv(t, tree)
	before := snapshot(t, root)

	_, err := scanAndApply(t, ctx, root, []token.Binding{
		{Token: "#{A}", Value: "same"},
		{Token: "#{B}", Value: "same"},
		{Token: "#{C}", Value: "other"},
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, substitute.ErrAmbiguousRename))

	var ambiguous *substitute.AmbiguousRenameError
	require.True(t, errors.As(err, &ambiguous))
	assert.Equal(t, "file", ambiguous.Kind)
	assert.Equal(t, filepath.Join(root, "same.txt"), ambiguous.Target)
	assert.ElementsMatch(t, []string{filepath.Join(root, "#{A}.txt"), filepath.Join(root, "#{B}.txt")}, ambiguous.Sources)

	assert.Equal(t, before, snapshot(t, root), "no file in the conflicting step is renamed")
}

func TestApplyRenameOntoExistingFile(t *testing.T) {
	tree := map[string]string{
		"#{A}.txt":     "templated",
		"existing.txt": "keep me",
	}
	ctx, root := createTestEnv(t, tree)
	before := snapshot(t, root)

	_, err := scanAndApply(t, ctx, root, []token.Binding{{Token: "#{A}", Value: "existing"}})
	require.Error(t, err)
	assert.True(t, errors.Is(err, substitute.ErrAmbiguousRename))
	assert.Contains(t, err.Error(), "already exists")
	assert.Equal(t, before, snapshot(t, root))
}

func TestApplyAmbiguousFolderRename(t *testing.T) {
	ctx, root := createTestEnv(t, map[string]string{
		"#{A}/a.txt": "a",
		"#{B}/b.txt": "b",
		"#{C}.txt":   "c",
	})

	report, err := scanAndApply(t, ctx, root, []token.Binding{
		{Token: "#{A}", Value: "dup"},
		{Token: "#{B}", Value: "dup"},
		{Token: "#{C}", Value: "c"},
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, substitute.ErrAmbiguousRename))
	assert.Contains(t, err.Error(), "renaming folders")

	// the file step finished before the folder step was rejected
	assert.Equal(t, 1, report.Count(substitute.ChangeFileRename))
	assert.Equal(t, 0, report.Count(substitute.ChangeFolderRename))
	assert.Equal(t, map[string]string{
		"#{A}/":      "",
		"#{A}/a.txt": "a",
		"#{B}/":      "",
		"#{B}/b.txt": "b",
		"c.txt":      "c",
	}, snapshot(t, root))
}

func TestApplyBinaryFileRenamedNotRewritten(t *testing.T) {
	ctx, root := createTestEnv(t, nil)
	binary := "\x89PNG\x00#{NAME}"
	require.NoError(t, os.WriteFile(filepath.Join(root, "#{NAME}.png"), []byte(binary), 0644))

	_, err := scanAndApply(t, ctx, root, []token.Binding{{Token: "#{NAME}", Value: "logo"}})
	require.NoError(t, err)

	assert.Equal(t, map[string]string{"logo.png": binary}, snapshot(t, root))
}

func TestApplyBinaryContentFileSkipped(t *testing.T) {
	ctx, root := createTestEnv(t, map[string]string{"data.bin": "#{A}"})
	path := filepath.Join(root, "data.bin")

	engine := substitute.NewEngine(substitute.WithBinaryDetector(func(string) (bool, error) { return true, nil }))
	report, err := engine.Apply(ctx, &token.ScanResult{Root: root, Tokens: []token.Token{"#{A}"}, ContentFiles: []string{path}},
		[]token.Binding{{Token: "#{A}", Value: "x"}})
	require.NoError(t, err)

	assert.Empty(t, report.Changes)
	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "#{A}", string(content))
}

func TestApplyPreservesFileMode(t *testing.T) {
	ctx, root := createTestEnv(t, nil)
	script := filepath.Join(root, "run.sh")
	require.NoError(t, os.WriteFile(script, []byte("echo #{NAME}"), 0755))

	_, err := scanAndApply(t, ctx, root, []token.Binding{{Token: "#{NAME}", Value: "hi"}})
	require.NoError(t, err)

	info, err := os.Stat(script)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0755), info.Mode().Perm())
	assert.Equal(t, map[string]string{"run.sh": "echo hi"}, snapshot(t, root), "no temp files left behind")
}

func TestApplyKeepsGroupWritableMode(t *testing.T) {
	ctx, root := createTestEnv(t, nil)
	shared := filepath.Join(root, "shared.txt")
	require.NoError(t, os.WriteFile(shared, []byte("#{NAME}"), 0644))
	require.NoError(t, os.Chmod(shared, 0664))

	_, err := scanAndApply(t, ctx, root, []token.Binding{{Token: "#{NAME}", Value: "hi"}})
	require.NoError(t, err)

	info, err := os.Stat(shared)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0664), info.Mode().Perm(), "the umask does not narrow the mode")
}

func TestApplyRejectsNamesWithSeparators(t *testing.T) {
	ctx, root := createTestEnv(t, map[string]string{"#{A}.txt": ""})

	_, err := scanAndApply(t, ctx, root, []token.Binding{{Token: "#{A}", Value: "../escape"}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid file name")
	assert.Equal(t, map[string]string{"#{A}.txt": ""}, snapshot(t, root))
}

func TestApplyEmptyValue(t *testing.T) {
	ctx, root := createTestEnv(t, map[string]string{"pre#{X}.txt": "a#{X}b"})

	_, err := scanAndApply(t, ctx, root, []token.Binding{{Token: "#{X}", Value: ""}})
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"pre.txt": "ab"}, snapshot(t, root))
}

func TestApplyRejectsDuplicateBindings(t *testing.T) {
	ctx, root := createTestEnv(t, map[string]string{"a.txt": "#{A}"})

	_, err := scanAndApply(t, ctx, root, []token.Binding{
		{Token: "#{A}", Value: "x"},
		{Token: "#{A}", Value: "y"},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "validating bindings")
	assert.Equal(t, map[string]string{"a.txt": "#{A}"}, snapshot(t, root))
}

func TestChangeKindString(t *testing.T) {
	assert.Equal(t, "content", substitute.ChangeContent.String())
	assert.Equal(t, "file", substitute.ChangeFileRename.String())
	assert.Equal(t, "folder", substitute.ChangeFolderRename.String())
	assert.Equal(t, "unknown", substitute.ChangeKind(42).String())
}
