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

package substitute

import (
	"fmt"
	"sort"
	"strings"

	"gitlab.com/tozd/go/errors"
)

// ErrAmbiguousRename matches every *AmbiguousRenameError via errors.Is.
var ErrAmbiguousRename = errors.Base("ambiguous rename")

// ⚠️ AmbiguousRenameError reports a rename plan in which a target path is
// claimed by more than one source, or is already occupied on disk.
type AmbiguousRenameError struct {
	// Kind is "file" or "folder".
	Kind string
	// Target is the contested destination path.
	Target string
	// Sources are the paths that would be renamed onto Target.
	Sources []string
	// Exists is set when Target is already present on disk.
	Exists bool
}

func (e *AmbiguousRenameError) Error() string {
	sources := append([]string(nil), e.Sources...)
	sort.Strings(sources)
	if e.Exists {
		return fmt.Sprintf("ambiguous %s rename: %s already exists (renaming %s)", e.Kind, e.Target, strings.Join(sources, ", "))
	}
	return fmt.Sprintf("ambiguous %s rename: %s claimed by %s", e.Kind, e.Target, strings.Join(sources, ", "))
}

// Is lets errors.Is(err, ErrAmbiguousRename) match.
func (e *AmbiguousRenameError) Is(target error) bool {
	return target == ErrAmbiguousRename
}
