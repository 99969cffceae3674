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

package ingestion

import (
	"context"
	"errors"

	"github.com/poiesic/compendium/core"
)

// Resolver merges one raw entry with its translations.
// *translation.Resolver satisfies it.
type Resolver interface {
	Resolve(ctx context.Context, raw *core.RawEntry) (*core.ResolvedEntry, error)
}

// outcome classifies the result of resolving one entry.
type outcome int

const (
	outcomeResolved outcome = iota
	outcomeStructural
	outcomeFailed
)

// slot holds the result for one corpus position.
type slot struct {
	entry   *core.ResolvedEntry
	err     error
	outcome outcome
}

// processor resolves single entries into slots.
type processor struct {
	resolver Resolver
}

func (p processor) process(ctx context.Context, raw *core.RawEntry) slot {
	if err := ctx.Err(); err != nil {
		return slot{err: err, outcome: outcomeFailed}
	}
	entry, err := p.resolver.Resolve(ctx, raw)
	switch {
	case err == nil:
		return slot{entry: entry, outcome: outcomeResolved}
	case errors.Is(err, core.ErrStructural):
		return slot{err: err, outcome: outcomeStructural}
	default:
		return slot{err: err, outcome: outcomeFailed}
	}
}
