// Copyright 2025 Poiesic Systems
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

package core

import (
	"fmt"
	"strings"
)

// ValidateRawEntry checks the structural rules of a raw entry.
//
// Validation rules:
//   - ID must not be blank
//   - Kind must not be blank
//
// NOT validated (absence is normal):
//   - names and descriptions (fall back through translation tiers)
//   - Fields (attribute paths resolve to unset)
func ValidateRawEntry(raw *RawEntry) error {
	if raw == nil {
		return fmt.Errorf("%w: entry is nil", ErrStructural)
	}

	if strings.TrimSpace(raw.ID) == "" {
		return fmt.Errorf("%w: %w", ErrStructural, ErrMissingID)
	}

	if strings.TrimSpace(raw.Kind) == "" {
		return fmt.Errorf("%w: %w (id %s)", ErrStructural, ErrMissingKind, raw.ID)
	}

	return nil
}

// maxCollectionLen bounds every encoded slice and map in a snapshot.
const maxCollectionLen = 1 << 12

// validateCollectionLen rejects encoded collection lengths before the decoder
// allocates for them.
func validateCollectionLen(n int) error {
	if n > maxCollectionLen {
		return fmt.Errorf("%w: %d > %d", ErrLengthOutOfRange, n, maxCollectionLen)
	}
	return nil
}
