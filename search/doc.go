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

// Package search answers compendium queries against the current index.
//
// The Searcher type loads the published index snapshot once per call, parses
// the query string, executes it and truncates the ordered results. A query
// whose free text matches nothing as a phrase is retried, when it has more
// than one significant word, as a match on every word anywhere in the entry.
//
// A SearchMonitor observes each stage of a search.
package search
