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

package token

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

// AskFunc obtains one value from the user.
type AskFunc func(ctx context.Context, prompt string) (string, error)

// 💬 Resolver turns discovered tokens into bindings.
type Resolver struct {
	presets map[Token]string
}

// 🏭 NewResolver creates a resolver. Preset keys may be bare names or full
// tokens; a preset answers its token without prompting.
func NewResolver(presets map[string]string) *Resolver {
	r := &Resolver{presets: make(map[Token]string, len(presets))}
	for k, v := range presets {
		r.presets[Normalize(k)] = v
	}
	return r
}

// Prompt is the question asked for t.
func Prompt(t Token) string {
	return fmt.Sprintf("Enter the value for the token %s", t)
}

// Resolve binds every distinct token once, in the order given. The first
// error from ask aborts resolution and no bindings are returned, so a
// cancelled prompt never leads to a partial substitution.
func (r *Resolver) Resolve(ctx context.Context, tokens []Token, ask AskFunc) ([]Binding, error) {
	logger := zerolog.Ctx(ctx)

	bindings := make([]Binding, 0, len(tokens))
	seen := make(map[Token]struct{}, len(tokens))

	for _, t := range tokens {
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}

		if value, ok := r.presets[t]; ok {
			logger.Debug().Str("token", string(t)).Msg("using preset value")
			bindings = append(bindings, Binding{Token: t, Value: value})
			continue
		}

		value, err := ask(ctx, Prompt(t))
		if err != nil {
			return nil, errors.Errorf("resolving %s: %w", t, err)
		}
		bindings = append(bindings, Binding{Token: t, Value: value})
	}

	return bindings, nil
}
