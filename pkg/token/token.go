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

// Package token discovers #{...} placeholders in a directory tree and
// resolves a value for each of them.
package token

import (
	"regexp"

	"github.com/walteh/tmplrc/pkg/text"
)

// 🎯 Pattern is the placeholder syntax: "#{" followed by one or more non-"}"
// characters and a closing "}". There is no escape for a literal "#{...}".
var Pattern = regexp.MustCompile(`#\{[^}]+\}`)

// 🔖 Token is the exact placeholder text, delimiters included.
type Token string

// Valid reports whether t is exactly one placeholder.
func (t Token) Valid() bool {
	loc := Pattern.FindStringIndex(string(t))
	return loc != nil && loc[0] == 0 && loc[1] == len(t)
}

// Normalize turns a bare name ("NAME") into its token ("#{NAME}"). Text that
// already is a token is returned unchanged.
func Normalize(s string) Token {
	if t := Token(s); t.Valid() {
		return t
	}
	return Token("#{" + s + "}")
}

// Find returns every placeholder occurrence in s, duplicates included.
func Find(s string) []Token {
	matches := Pattern.FindAllString(s, -1)
	if len(matches) == 0 {
		return nil
	}
	tokens := make([]Token, len(matches))
	for i, m := range matches {
		tokens[i] = Token(m)
	}
	return tokens
}

// 🔗 Binding pairs a token with the value that replaces it.
type Binding struct {
	Token Token
	Value string
}

// Rules converts bindings into replacement rules, preserving order.
func Rules(bindings []Binding) []text.ReplacementRule {
	rules := make([]text.ReplacementRule, 0, len(bindings))
	for _, b := range bindings {
		rules = append(rules, text.ReplacementRule{FromText: string(b.Token), ToText: b.Value})
	}
	return rules
}

// 📋 ScanResult is the output of one tree walk.
//
// Every location listed holds at least one entry of Tokens. The value is
// built fresh by each Scan and never shared between loads.
type ScanResult struct {
	// Root is the walked directory, never itself a rename target.
	Root string
	// Tokens are the distinct tokens in the order they were first seen.
	Tokens []Token
	// ContentFiles are absolute paths of files whose contents hold a token.
	ContentFiles []string
	// NamedFiles are the distinct file names that hold a token.
	NamedFiles []string
	// NamedFilePaths are the absolute paths of the files in NamedFiles.
	NamedFilePaths []string
	// NamedFolders are absolute folder paths whose last segment holds a token.
	NamedFolders []string
}

// Empty reports whether the scan found no tokens at all.
func (r *ScanResult) Empty() bool {
	return len(r.Tokens) == 0
}

// set is an insertion-ordered string set.
type set[T ~string] struct {
	seen  map[T]struct{}
	items []T
}

func newSet[T ~string]() *set[T] {
	return &set[T]{seen: make(map[T]struct{})}
}

func (s *set[T]) add(items ...T) {
	for _, item := range items {
		if _, ok := s.seen[item]; ok {
			continue
		}
		s.seen[item] = struct{}{}
		s.items = append(s.items, item)
	}
}

func (s *set[T]) list() []T {
	if len(s.items) == 0 {
		return nil
	}
	return append([]T(nil), s.items...)
}
