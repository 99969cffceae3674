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

package search

import "errors"

var (
	// ErrHolderRequired is returned when an index holder is not provided.
	ErrHolderRequired = errors.New("index holder required")

	// ErrParserRequired is returned when a nil parser is configured.
	ErrParserRequired = errors.New("query parser required")

	// ErrNoIndex is returned when no index has been published yet.
	ErrNoIndex = errors.New("no index loaded")

	// ErrNotFound is returned when an id names no entry.
	ErrNotFound = errors.New("entry not found")
)
