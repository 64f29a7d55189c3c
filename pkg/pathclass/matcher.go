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

package pathclass

import (
	"github.com/bmatcuk/doublestar/v4"
	"gitlab.com/tozd/go/errors"
)

// 🚫 Matcher decides whether a relative, slash-separated path is ignored.
type Matcher struct {
	patterns []string
}

// 🏭 NewMatcher validates the glob patterns up front so a typo fails loudly
// instead of silently matching nothing.
func NewMatcher(patterns []string) (*Matcher, error) {
	for i, pattern := range patterns {
		if pattern == "" {
			return nil, errors.Errorf("ignore pattern %d: empty pattern", i)
		}
		if !doublestar.ValidatePattern(pattern) {
			return nil, errors.Errorf("ignore pattern %d: invalid glob %q", i, pattern)
		}
	}
	return &Matcher{patterns: append([]string(nil), patterns...)}, nil
}

// Match reports whether rel is ignored. A nil Matcher ignores nothing.
func (m *Matcher) Match(rel string) bool {
	if m == nil || rel == "." || rel == "" {
		return false
	}
	for _, pattern := range m.patterns {
		// patterns are validated in NewMatcher
		if ok, _ := doublestar.Match(pattern, rel); ok {
			return true
		}
	}
	return false
}

// Patterns returns a copy of the configured globs.
func (m *Matcher) Patterns() []string {
	if m == nil {
		return nil
	}
	return append([]string(nil), m.patterns...)
}
