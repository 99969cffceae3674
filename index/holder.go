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

package index

import "sync/atomic"

// Holder publishes the current Index. Load and Swap are lock-free.
type Holder struct {
	current atomic.Pointer[Index]
}

// NewHolder creates a holder publishing idx, which may be nil.
func NewHolder(idx *Index) *Holder {
	h := &Holder{}
	if idx != nil {
		h.current.Store(idx)
	}
	return h
}

// Load returns the current index, or nil before the first build.
func (h *Holder) Load() *Index {
	return h.current.Load()
}

// Swap publishes idx and returns the previous index.
func (h *Holder) Swap(idx *Index) *Index {
	return h.current.Swap(idx)
}
