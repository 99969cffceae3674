package index

import (
	"log/slog"
	"slices"
	"strings"
	"time"

	"github.com/poiesic/compendium/core"
)

// Entry is a resolved entry with the normalized forms the executor matches
// against.
type Entry struct {
	*core.ResolvedEntry

	Position               int
	NameOriginalNormalized string
	DescriptionNormalized  string
	PackNormalized         string
	TraitsNormalized       []string
}

// Index is an immutable snapshot of the compendium. All methods are safe
// for concurrent use; returned Postings must not be modified.
type Index struct {
	entries    []*Entry
	byID       map[string]*Entry
	tokens     map[string]Postings
	vocabulary []string
	kinds      map[core.Kind]Postings
	packs      map[string]Postings
	traits     map[string]Postings
	traditions map[core.Tradition]Postings
	checksum   core.Checksum
	builtAt    time.Time
}

// BuildReport describes one index build.
type BuildReport struct {
	Entries    int
	// Duplicates lists each id seen more than once, in order of first
	// repetition. Only the first occurrence is indexed.
	Duplicates []string
	Checksum   core.Checksum
	Duration   time.Duration
}

type builder struct {
	logger *slog.Logger
	now    func() time.Time
}

// Option configures Build.
type Option func(*builder) error

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(b *builder) error {
		if logger == nil {
			logger = slog.Default()
		}
		b.logger = logger
		return nil
	}
}

// WithClock sets the time source used to stamp the index.
// Default is time.Now.
func WithClock(now func() time.Time) Option {
	return func(b *builder) error {
		if now == nil {
			now = time.Now
		}
		b.now = now
		return nil
	}
}

// Build indexes entries in order. A repeated id is an integrity warning:
// it is logged and reported once, and the first occurrence wins.
func Build(entries []*core.ResolvedEntry, opts ...Option) (*Index, *BuildReport, error) {
	b := &builder{logger: slog.Default(), now: time.Now}
	for _, opt := range opts {
		if err := opt(b); err != nil {
			return nil, nil, err
		}
	}
	start := b.now()

	idx := &Index{
		entries:    make([]*Entry, 0, len(entries)),
		byID:       make(map[string]*Entry, len(entries)),
		tokens:     make(map[string]Postings),
		kinds:      make(map[core.Kind]Postings),
		packs:      make(map[string]Postings),
		traits:     make(map[string]Postings),
		traditions: make(map[core.Tradition]Postings),
	}
	report := &BuildReport{}
	reported := make(map[string]bool)

	for _, re := range entries {
		if re == nil {
			continue
		}
		if _, dup := idx.byID[re.ID]; dup {
			if !reported[re.ID] {
				reported[re.ID] = true
				report.Duplicates = append(report.Duplicates, re.ID)
				b.logger.Warn("duplicate entry id", "id", re.ID, "err", core.ErrIntegrity)
			}
			continue
		}
		idx.add(re)
	}

	idx.vocabulary = make([]string, 0, len(idx.tokens))
	for tok := range idx.tokens {
		idx.vocabulary = append(idx.vocabulary, tok)
	}
	slices.Sort(idx.vocabulary)

	kept := make([]*core.ResolvedEntry, len(idx.entries))
	for i, e := range idx.entries {
		kept[i] = e.ResolvedEntry
	}
	idx.checksum = core.ChecksumOf(kept)
	idx.builtAt = b.now()

	report.Entries = len(idx.entries)
	report.Checksum = idx.checksum
	report.Duration = idx.builtAt.Sub(start)
	b.logger.Info("index built", "entries", report.Entries, "duplicates", len(report.Duplicates), "tokens", len(idx.vocabulary))
	return idx, report, nil
}

func (idx *Index) add(re *core.ResolvedEntry) {
	pos := len(idx.entries)
	e := &Entry{
		ResolvedEntry:          re,
		Position:               pos,
		NameOriginalNormalized: core.Normalize(re.NameOriginal),
		DescriptionNormalized:  core.Normalize(core.PlainText(re.DescriptionLocal)),
		PackNormalized:         core.Normalize(re.PackKey),
	}
	idx.entries = append(idx.entries, e)
	idx.byID[re.ID] = e

	idx.kinds[re.Kind] = append(idx.kinds[re.Kind], pos)
	idx.packs[e.PackNormalized] = append(idx.packs[e.PackNormalized], pos)

	seen := make(map[string]bool)
	for _, t := range re.Traits {
		nt := core.Normalize(t)
		if nt == "" || seen[nt] {
			continue
		}
		seen[nt] = true
		e.TraitsNormalized = append(e.TraitsNormalized, nt)
		idx.traits[nt] = append(idx.traits[nt], pos)
	}
	for _, t := range re.Traditions {
		idx.traditions[t] = append(idx.traditions[t], pos)
	}

	clear(seen)
	for _, text := range []string{re.NameNormalized, e.NameOriginalNormalized, e.DescriptionNormalized} {
		for _, tok := range core.Tokens(text) {
			if seen[tok] {
				continue
			}
			seen[tok] = true
			idx.tokens[tok] = append(idx.tokens[tok], pos)
		}
	}
}

// Len returns the number of indexed entries.
func (idx *Index) Len() int {
	return len(idx.entries)
}

// At returns the entry at a corpus position.
func (idx *Index) At(pos int) *Entry {
	return idx.entries[pos]
}

// Get returns the entry with the given id.
func (idx *Index) Get(id string) (*Entry, bool) {
	e, ok := idx.byID[id]
	return e, ok
}

// All returns every position in corpus order.
func (idx *Index) All() Postings {
	all := make(Postings, len(idx.entries))
	for i := range all {
		all[i] = i
	}
	return all
}

// Entries returns the resolved entries in corpus order.
func (idx *Index) Entries() []*core.ResolvedEntry {
	out := make([]*core.ResolvedEntry, len(idx.entries))
	for i, e := range idx.entries {
		out[i] = e.ResolvedEntry
	}
	return out
}

// ByKind returns the positions of entries of a kind.
func (idx *Index) ByKind(kind core.Kind) Postings {
	return idx.kinds[kind]
}

// ByPack returns the positions of entries in a pack, by normalized pack key.
func (idx *Index) ByPack(pack string) Postings {
	return idx.packs[pack]
}

// ByTrait returns the positions of entries carrying a normalized trait.
func (idx *Index) ByTrait(trait string) Postings {
	return idx.traits[trait]
}

// ByTradition returns the positions of entries of a tradition.
func (idx *Index) ByTradition(t core.Tradition) Postings {
	return idx.traditions[t]
}

// ByToken returns the positions of entries whose name or description
// contains the normalized word.
func (idx *Index) ByToken(token string) Postings {
	return idx.tokens[token]
}

// ContainingToken returns the positions of entries with any word that
// contains fragment. fragment must not contain whitespace.
func (idx *Index) ContainingToken(fragment string) Postings {
	var lists []Postings
	for _, tok := range idx.vocabulary {
		if strings.Contains(tok, fragment) {
			lists = append(lists, idx.tokens[tok])
		}
	}
	return Union(lists...)
}

// Kinds returns the indexed kinds in ascending order.
func (idx *Index) Kinds() []core.Kind {
	return sortedKeys(idx.kinds)
}

// Packs returns the normalized pack keys in ascending order.
func (idx *Index) Packs() []string {
	return sortedKeys(idx.packs)
}

// Traits returns the normalized traits in ascending order.
func (idx *Index) Traits() []string {
	return sortedKeys(idx.traits)
}

// Checksum returns the content checksum of the indexed entries.
func (idx *Index) Checksum() core.Checksum {
	return idx.checksum
}

// BuiltAt returns when the index was built.
func (idx *Index) BuiltAt() time.Time {
	return idx.builtAt
}

func sortedKeys[K ~string, V any](m map[K]V) []K {
	keys := make([]K, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}
