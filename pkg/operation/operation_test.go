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

package operation_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/walteh/tmplrc/gen/mockery"
	"github.com/walteh/tmplrc/pkg/host"
	"github.com/walteh/tmplrc/pkg/log"
	"github.com/walteh/tmplrc/pkg/operation"
	"github.com/walteh/tmplrc/pkg/store"
)

// 🧪 testEnv is a template store, a working directory and a mocked host
type testEnv struct {
	ctx     context.Context
	host    *mockery.MockHost_host
	store   *store.Store
	console *bytes.Buffer
	wd      string
	opts    operation.Options
	runner  *operation.Runner

	notifications []host.Notification
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	zlog := zerolog.New(zerolog.NewTestWriter(t))
	ctx := zlog.WithContext(context.Background())

	st, err := store.New(ctx, filepath.Join(t.TempDir(), ".templates"), store.Options{})
	require.NoError(t, err, "creating store")

	env := &testEnv{
		ctx:     ctx,
		host:    mockery.NewMockHost_host(t),
		store:   st,
		console: &bytes.Buffer{},
		wd:      t.TempDir(),
	}

	env.opts = operation.Options{
		Host:   env.host,
		Store:  st,
		Logger: log.NewWithZerolog(env.console, zlog),
	}
	env.runner = operation.NewRunner(env.host)

	env.host.EXPECT().Getwd().Return(env.wd, nil).Maybe()
	env.host.EXPECT().Notify(mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
		env.notifications = append(env.notifications, args.Get(1).(host.Notification))
	}).Maybe()

	return env
}

// requireOneNotification checks that the command ended in exactly one
// notification at level.
func (e *testEnv) requireOneNotification(t *testing.T, level host.Level) host.Notification {
	t.Helper()
	require.Len(t, e.notifications, 1, "every command ends in exactly one notification")
	require.Equal(t, level.String(), e.notifications[0].Level.String(), "notification: %s", e.notifications[0].Message)
	return e.notifications[0]
}

// saveTemplate stores files as the template called name.
func (e *testEnv) saveTemplate(t *testing.T, name string, files map[string]string) {
	t.Helper()
	src := t.TempDir()
	writeTree(t, src, files)
	require.NoError(t, e.store.Save(e.ctx, src, name), "saving template %s", name)
}

// writeTree creates files below root. Keys ending in / are empty folders.
func writeTree(t *testing.T, root string, files map[string]string) {
	t.Helper()
	for rel, content := range files {
		path := filepath.Join(root, filepath.FromSlash(rel))
		if strings.HasSuffix(rel, "/") {
			require.NoError(t, os.MkdirAll(path, 0755))
			continue
		}
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	}
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err, "reading %s", path)
	return string(data)
}

func requireMissing(t *testing.T, path string) {
	t.Helper()
	_, err := os.Lstat(path)
	require.True(t, os.IsNotExist(err), "%s should not exist", path)
}
