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

import "errors"

// Domain errors
var (
	// ErrStructural indicates a raw entry is missing its id or kind.
	// The entry is skipped; the rebuild continues.
	ErrStructural = errors.New("structurally invalid entry")

	// ErrMissingID indicates a raw entry has no id.
	ErrMissingID = errors.New("missing id")

	// ErrMissingKind indicates a raw entry has no kind.
	ErrMissingKind = errors.New("missing kind")

	// ErrSourceUnavailable indicates a translation source could not be read.
	ErrSourceUnavailable = errors.New("translation source unavailable")

	// ErrIntegrity indicates the same id appeared more than once in a corpus.
	ErrIntegrity = errors.New("corpus integrity violation")

	// ErrAmbiguousFilter indicates a filter value matched more than one
	// candidate, or none.
	ErrAmbiguousFilter = errors.New("ambiguous filter value")

	// ErrNoSources indicates no source entries could be enumerated.
	ErrNoSources = errors.New("no source entries")

	// ErrLengthOutOfRange indicates an encoded collection is longer than any
	// entry could carry.
	ErrLengthOutOfRange = errors.New("encoded length out of range")
)
