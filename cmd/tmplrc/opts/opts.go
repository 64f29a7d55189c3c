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

package opts

import (
	"github.com/walteh/tmplrc/pkg/config"
	"github.com/walteh/tmplrc/pkg/host"
	"github.com/walteh/tmplrc/pkg/log"
	"github.com/walteh/tmplrc/pkg/operation"
	"github.com/walteh/tmplrc/pkg/pathclass"
	"github.com/walteh/tmplrc/pkg/store"
	"github.com/walteh/tmplrc/pkg/substitute"
	"github.com/walteh/tmplrc/pkg/token"
)

// RootOpts contains shared options used by all commands. It is filled in
// once flags are parsed.
type RootOpts struct {
	Config *config.Config
	Ignore *pathclass.Matcher
	Store  *store.Store
	Host   host.Host
	Logger *log.Logger
	Runner *operation.Runner
}

// Operation returns the options every operation is built from. presets
// answer tokens without prompting.
func (o *RootOpts) Operation(presets map[string]string) operation.Options {
	return operation.Options{
		Host:     o.Host,
		Store:    o.Store,
		Logger:   o.Logger,
		Scanner:  token.NewScanner(token.WithIgnore(o.Ignore)),
		Resolver: token.NewResolver(presets),
		Engine:   substitute.NewEngine(),
	}
}
