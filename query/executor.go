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

package query

import (
	"cmp"
	"slices"
	"strings"

	"github.com/poiesic/compendium/core"
	"github.com/poiesic/compendium/index"
)

// Match ranks, best first.
const (
	rankExact = iota
	rankPrefix
	rankContains
)

type hit struct {
	entry *index.Entry
	rank  int
}

// Execute runs q against idx. Results are ordered by match rank (exact
// name, name prefix, any other substring), then kind, then corpus
// position. An empty query yields nothing. Execute only reads idx.
func Execute(q Query, idx *index.Index) []*core.ResolvedEntry {
	hits := execute(q, idx)
	out := make([]*core.ResolvedEntry, len(hits))
	for i, h := range hits {
		out[i] = h.entry.ResolvedEntry
	}
	return out
}

func execute(q Query, idx *index.Index) []hit {
	if idx == nil || q.Empty() {
		return nil
	}
	if q.Tradition != nil && q.Tradition.Err != nil {
		return nil
	}

	var (
		candidates index.Postings
		narrowed   bool
	)
	narrow := func(p index.Postings) {
		if !narrowed {
			candidates, narrowed = p, true
			return
		}
		candidates = index.Intersect(candidates, p)
	}

	if q.Kind != nil {
		narrow(idx.ByKind(*q.Kind))
	}
	if q.Tradition != nil {
		narrow(idx.ByTradition(q.Tradition.Tradition))
	}
	if q.Pack != nil {
		narrow(matchingBuckets(idx.Packs(), *q.Pack, idx.ByPack))
	}
	if q.Trait != nil {
		narrow(matchingBuckets(idx.Traits(), *q.Trait, idx.ByTrait))
	}

	var (
		phrase string
		words  []string
	)
	if q.FreeText != nil {
		phrase = *q.FreeText
		words = core.Tokens(phrase)
		// A whitespace-free fragment of a match lies inside one indexed word.
		for _, w := range words {
			narrow(idx.ContainingToken(w))
		}
	}
	if !narrowed {
		candidates = idx.All()
	}

	hits := make([]hit, 0, len(candidates))
	for _, pos := range candidates {
		e := idx.At(pos)
		rank := rankExact
		if q.FreeText != nil {
			var ok bool
			if rank, ok = matchText(e, phrase, words, q.AllWords); !ok {
				continue
			}
		}
		hits = append(hits, hit{entry: e, rank: rank})
	}

	slices.SortStableFunc(hits, func(a, b hit) int {
		return cmp.Or(
			cmp.Compare(a.rank, b.rank),
			strings.Compare(string(a.entry.Kind), string(b.entry.Kind)),
			cmp.Compare(a.entry.Position, b.entry.Position),
		)
	})
	return hits
}

// matchingBuckets unions the buckets whose key contains fragment.
func matchingBuckets(keys []string, fragment string, bucket func(string) index.Postings) index.Postings {
	var lists []index.Postings
	for _, key := range keys {
		if strings.Contains(key, fragment) {
			lists = append(lists, bucket(key))
		}
	}
	return index.Union(lists...)
}

func matchText(e *index.Entry, phrase string, words []string, allWords bool) (int, bool) {
	names := [2]string{e.NameNormalized, e.NameOriginalNormalized}
	for _, n := range names {
		if n == phrase {
			return rankExact, true
		}
	}
	for _, n := range names {
		if strings.HasPrefix(n, phrase) {
			return rankPrefix, true
		}
	}

	if allWords {
		for _, w := range words {
			if !contains(e, w) {
				return 0, false
			}
		}
		return rankContains, true
	}
	return rankContains, contains(e, phrase)
}

func contains(e *index.Entry, s string) bool {
	return strings.Contains(e.NameNormalized, s) ||
		strings.Contains(e.NameOriginalNormalized, s) ||
		strings.Contains(e.DescriptionNormalized, s)
}
