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

package source

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/poiesic/compendium/core"
	"golang.org/x/sync/errgroup"
)

// Corpus concatenates readers into one sequence, in reader order.
type Corpus struct {
	readers []Reader
	logger  *slog.Logger
}

// CorpusReport records what each reader contributed.
type CorpusReport struct {
	Counts   map[string]int
	Failures map[string]error
}

// NewCorpus creates a corpus over readers.
func NewCorpus(readers []Reader, opts ...Option) (*Corpus, error) {
	o, err := applyOptions(opts)
	if err != nil {
		return nil, err
	}
	return &Corpus{readers: readers, logger: o.logger}, nil
}

// Readers returns the readers of the corpus.
func (c *Corpus) Readers() []Reader {
	return c.readers
}

// Entries runs every reader concurrently and concatenates their entries in
// reader order. A failing reader is reported and skipped; the call fails with
// core.ErrNoSources only when no reader yields anything, and with the context
// error when ctx is cancelled.
func (c *Corpus) Entries(ctx context.Context) ([]*core.RawEntry, *CorpusReport, error) {
	results := make([][]*core.RawEntry, len(c.readers))
	errs := make([]error, len(c.readers))

	g, gctx := errgroup.WithContext(ctx)
	for i, r := range c.readers {
		g.Go(func() error {
			entries, err := r.Entries(gctx)
			if err != nil && ctx.Err() != nil {
				return ctx.Err()
			}
			results[i], errs[i] = entries, err
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}

	report := &CorpusReport{
		Counts:   make(map[string]int, len(c.readers)),
		Failures: make(map[string]error),
	}
	var all []*core.RawEntry
	for i, r := range c.readers {
		if errs[i] != nil {
			report.Failures[r.Name()] = errs[i]
			c.logger.Warn("source reader failed", "reader", r.Name(), "err", errs[i])
			continue
		}
		report.Counts[r.Name()] = len(results[i])
		all = append(all, results[i]...)
	}

	if len(all) == 0 {
		failures := make([]error, 0, len(report.Failures))
		for _, err := range report.Failures {
			failures = append(failures, err)
		}
		return nil, report, fmt.Errorf("%w: %w", core.ErrNoSources, errors.Join(failures...))
	}
	return all, report, nil
}

// Layout locates the inputs inside the two checkouts.
type Layout struct {
	FoundryRoot     string // Foundry pf2e system checkout
	TranslationRoot string // pf2-fr checkout
}

// EnglishTablePath returns the original-language localization file.
func (l Layout) EnglishTablePath() string {
	return filepath.Join(l.FoundryRoot, "static", "lang", "en.json")
}

// FrenchTablePath returns the translated localization file.
func (l Layout) FrenchTablePath() string {
	return filepath.Join(l.TranslationRoot, "lang", "fr.json")
}

// DataDir returns the translation document tree.
func (l Layout) DataDir() string {
	return filepath.Join(l.TranslationRoot, "data")
}

// Sources bundles the corpus and its translations for one rebuild.
type Sources struct {
	Corpus       *Corpus
	Translations *Translations
	docs         *DocumentStore
}

// Open loads the translation documents and both language tables
// concurrently and assembles the corpus readers. Missing translation inputs
// only narrow what can be translated; a missing Foundry checkout surfaces
// when the corpus is read.
func Open(ctx context.Context, layout Layout, opts ...Option) (*Sources, error) {
	o, err := applyOptions(opts)
	if err != nil {
		return nil, err
	}
	if layout.FoundryRoot == "" {
		return nil, fmt.Errorf("%w: no foundry checkout configured", core.ErrNoSources)
	}

	var (
		docs    *DocumentStore
		english *LanguageTable
		french  *LanguageTable
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		dataDir := ""
		if layout.TranslationRoot != "" {
			dataDir = layout.DataDir()
		}
		docs, err = LoadDocuments(gctx, dataDir, opts...)
		return err
	})
	g.Go(func() error {
		english = loadOptionalTable(layout.EnglishTablePath(), o.logger)
		return nil
	})
	g.Go(func() error {
		if layout.TranslationRoot != "" {
			french = loadOptionalTable(layout.FrenchTablePath(), o.logger)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		if docs != nil {
			docs.Close()
		}
		return nil, err
	}

	foundry, err := NewFoundryReader(layout.FoundryRoot, opts...)
	if err != nil {
		docs.Close()
		return nil, err
	}
	readers := []Reader{foundry}
	if docs.Len() > 0 {
		journals, err := NewJournalReader(docs, opts...)
		if err != nil {
			docs.Close()
			return nil, err
		}
		readers = append(readers, journals)
	}
	if english != nil {
		language, err := NewLanguageReader(english, opts...)
		if err != nil {
			docs.Close()
			return nil, err
		}
		readers = append(readers, language)
	}

	corpus, err := NewCorpus(readers, opts...)
	if err != nil {
		docs.Close()
		return nil, err
	}

	return &Sources{
		Corpus:       corpus,
		Translations: NewTranslations(docs, NewTableSource(french, DefaultRules)),
		docs:         docs,
	}, nil
}

func loadOptionalTable(path string, logger *slog.Logger) *LanguageTable {
	if _, err := os.Stat(path); err != nil {
		logger.Warn("language table not found", "path", path)
		return nil
	}
	table, err := LoadLanguageTable(path)
	if err != nil {
		logger.Warn("language table unreadable", "path", path, "err", err)
		return nil
	}
	return table
}

// Close releases the document cache.
func (s *Sources) Close() {
	if s.docs != nil {
		s.docs.Close()
	}
}
