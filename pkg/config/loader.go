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

package config

import (
	"context"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

// defaultNames are tried, in order, inside DefaultDir.
var defaultNames = []string{"config.yaml", "config.yml", "config.json", "config.hcl"}

// DefaultDir is $XDG_CONFIG_HOME/tmplrc, or ~/.config/tmplrc.
func DefaultDir() (string, error) {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "tmplrc"), nil
	}
	home, err := ExpandHome("~")
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "tmplrc"), nil
}

// 🎯 Load loads the configuration from a file. The format is picked by
// extension: .json, .yaml/.yml or .hcl.
func Load(ctx context.Context, path string) (*Config, error) {
	logger := zerolog.Ctx(ctx)
	logger.Debug().Str("path", path).Msg("loading configuration")

	expanded, err := ExpandHome(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(expanded)
	if err != nil {
		return nil, errors.Errorf("reading config file: %w", err)
	}

	p := GetParser(expanded)
	if p == nil {
		return nil, errors.Errorf("unsupported file extension %q", filepath.Ext(expanded))
	}

	cfg, err := p.Parse(ctx, data, expanded)
	if err != nil {
		return nil, errors.Errorf("parsing config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, errors.Errorf("validating config: %w", err)
	}
	cfg.location = expanded

	return cfg, nil
}

// 🔎 Resolve loads path when it is set. Otherwise the first existing file in
// DefaultDir is loaded, and when there is none the defaults are returned.
func Resolve(ctx context.Context, path string) (*Config, error) {
	if path != "" {
		return Load(ctx, path)
	}

	dir, err := DefaultDir()
	if err != nil {
		return nil, err
	}

	for _, name := range defaultNames {
		candidate := filepath.Join(dir, name)
		if _, err := os.Stat(candidate); err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return nil, errors.Errorf("checking %s: %w", candidate, err)
		}
		return Load(ctx, candidate)
	}

	zerolog.Ctx(ctx).Debug().Str("dir", dir).Msg("no config file, using defaults")

	cfg := Default()
	if err := cfg.Validate(); err != nil {
		return nil, errors.Errorf("validating config: %w", err)
	}
	return cfg, nil
}
