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
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/rs/zerolog"
	"github.com/walteh/tmplrc/pkg/pathclass"
	"github.com/walteh/tmplrc/pkg/token"
	"gitlab.com/tozd/go/errors"
	"gopkg.in/yaml.v3"
)

// DefaultTemplateRoot is where templates live unless configured otherwise.
const DefaultTemplateRoot = "~/.templates"

// 🔌 Parser is the interface for config parsers
type Parser interface {
	// 📝 Parse parses the config from bytes
	Parse(ctx context.Context, data []byte, filename string) (*Config, error)

	// 🔍 CanParse checks if this parser can handle the given file
	CanParse(filename string) bool
}

var (
	// 🗺️ parsers is a list of available parsers
	parsers []Parser
)

// 📝 Register registers a parser
func Register(p Parser) {
	parsers = append(parsers, p)
}

// 🎯 GetParser returns a parser that can handle the given file
func GetParser(filename string) Parser {
	for _, p := range parsers {
		if p.CanParse(filename) {
			return p
		}
	}
	return nil
}

// 📚 Config represents the complete configuration
type Config struct {
	// TemplateRoot holds one folder per saved template.
	TemplateRoot string `json:"template_root,omitempty" yaml:"template_root,omitempty" hcl:"template_root,optional"`
	// Ignore lists doublestar globs, relative to the walked root, that are
	// neither scanned nor saved.
	Ignore []string `json:"ignore,omitempty" yaml:"ignore,omitempty" hcl:"ignore,optional"`
	// Values presets token values; keys are written with or without #{ }.
	Values map[string]string `json:"values,omitempty" yaml:"values,omitempty" hcl:"values,optional"`

	location string
}

// 🏭 Default returns the configuration used when no file exists.
func Default() *Config {
	return &Config{TemplateRoot: DefaultTemplateRoot}
}

// Location returns the file the config was read from, or "" for defaults.
func (cfg *Config) Location() string {
	return cfg.location
}

// 🔍 Validate checks the configuration and fills in defaults. The template
// root comes out absolute with ~ expanded.
func (cfg *Config) Validate() error {
	if strings.TrimSpace(cfg.TemplateRoot) == "" {
		cfg.TemplateRoot = DefaultTemplateRoot
	}

	root, err := ExpandHome(cfg.TemplateRoot)
	if err != nil {
		return errors.Errorf("template_root: %w", err)
	}
	root, err = filepath.Abs(root)
	if err != nil {
		return errors.Errorf("template_root: %w", err)
	}
	cfg.TemplateRoot = root

	if _, err := pathclass.NewMatcher(cfg.Ignore); err != nil {
		return errors.Errorf("ignore: %w", err)
	}

	for key := range cfg.Values {
		if strings.TrimSpace(key) == "" {
			return errors.Errorf("values: empty key")
		}
		if !token.Normalize(key).Valid() {
			return errors.Errorf("values: %q is not a valid token name", key)
		}
	}

	return nil
}

// Matcher compiles the ignore globs.
func (cfg *Config) Matcher() (*pathclass.Matcher, error) {
	return pathclass.NewMatcher(cfg.Ignore)
}

// Presets returns the preset values keyed by token.
func (cfg *Config) Presets() map[string]string {
	presets := make(map[string]string, len(cfg.Values))
	for k, v := range cfg.Values {
		presets[string(token.Normalize(k))] = v
	}
	return presets
}

// 📝 String returns a string representation of the config
func (cfg *Config) String() string {
	keys := make([]string, 0, len(cfg.Values))
	for k := range cfg.Values {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return fmt.Sprintf("root=%s ignore=%v values=%v", cfg.TemplateRoot, cfg.Ignore, keys)
}

// ExpandHome replaces a leading ~ with the user's home directory.
func ExpandHome(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") && !strings.HasPrefix(path, `~\`) {
		return path, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", errors.Errorf("finding home directory: %w", err)
	}
	if path == "~" {
		return home, nil
	}
	return filepath.Join(home, path[2:]), nil
}

// 🔧 YAMLParser implements the Parser interface for YAML files
type YAMLParser struct{}

func init() {
	Register(&YAMLParser{})
}

func (p *YAMLParser) CanParse(filename string) bool {
	return strings.HasSuffix(filename, ".yaml") || strings.HasSuffix(filename, ".yml")
}

func (p *YAMLParser) Parse(ctx context.Context, data []byte, filename string) (*Config, error) {
	var cfg Config
	if len(strings.TrimSpace(string(data))) == 0 {
		zerolog.Ctx(ctx).Debug().Str("file", filename).Msg("empty config file")
		return &cfg, nil
	}

	decoder := yaml.NewDecoder(strings.NewReader(string(data)))
	decoder.KnownFields(true)
	if err := decoder.Decode(&cfg); err != nil {
		return nil, errors.Errorf("parsing YAML: %w", err)
	}

	return &cfg, nil
}
