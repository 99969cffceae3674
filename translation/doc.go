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

// Package translation merges an original-language entry with its translations.
//
// Each translatable field (name, description) is resolved independently by
// walking an ordered list of strategies and stopping at the first non-empty
// candidate:
//
//  1. Tier1Strategy: the long-form translation document keyed by id and pack
//  2. Tier2Strategy: the flat language table keyed by id
//  3. OriginalStrategy: the original-language text
//
// A miss is a normal outcome. A source failure wraps core.ErrSourceUnavailable
// and aborts the entry. Attributes that are not translated (traits, rarity,
// traditions, stat blocks) are read straight from the raw fields.
package translation
