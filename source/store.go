package source

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/dgraph-io/ristretto/v2"
	"github.com/gosimple/slug"
	"github.com/poiesic/compendium/core"
)

// journalPagePrefix marks the journal page folders of the translation tree.
const journalPagePrefix = "pages-"

type docRef struct {
	pack string
	id   string
	path string
}

// DocumentStore indexes the pf2-fr translation tree by (pack, id).
// Documents are read and parsed on first lookup and kept in a bounded cache,
// so a file that becomes unreadable after indexing surfaces as
// core.ErrSourceUnavailable rather than as a silent miss.
//
// DocumentStore is safe for concurrent use.
type DocumentStore struct {
	dir    string
	refs   map[string]docRef // pack + "/" + id
	pages  map[string]string // journal page id -> ref key
	cache  *ristretto.Cache[string, *Document]
	logger *slog.Logger
}

// LoadDocuments indexes every .htm file under dataDir. The pack of a file is
// its first directory below dataDir; journal pages (journals/pages-Xxx/) get
// the pack "journals-xxx". A missing dataDir yields an empty store.
func LoadDocuments(ctx context.Context, dataDir string, opts ...Option) (*DocumentStore, error) {
	o, err := applyOptions(opts)
	if err != nil {
		return nil, err
	}

	cache, err := ristretto.NewCache(&ristretto.Config[string, *Document]{
		NumCounters:        o.cacheSize * 10,
		MaxCost:            o.cacheSize,
		BufferItems:        64,
		IgnoreInternalCost: true,
	})
	if err != nil {
		return nil, err
	}

	s := &DocumentStore{
		dir:    dataDir,
		refs:   make(map[string]docRef),
		pages:  make(map[string]string),
		cache:  cache,
		logger: o.logger,
	}

	if info, err := os.Stat(dataDir); err != nil || !info.IsDir() {
		s.logger.Warn("translation data directory not found", "dir", dataDir)
		return s, nil
	}

	err = filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, walkErr error) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		if walkErr != nil {
			if path == dataDir {
				return walkErr
			}
			s.logger.Warn("skipping unreadable path", "path", path, "err", walkErr)
			return nil
		}
		if d.IsDir() || !strings.HasSuffix(d.Name(), ".htm") {
			return nil
		}
		s.add(path)
		return nil
	})
	if err != nil {
		cache.Close()
		return nil, err
	}

	s.logger.Info("indexed translation documents", "dir", dataDir, "documents", len(s.refs), "journal_pages", len(s.pages))
	return s, nil
}

func (s *DocumentStore) add(path string) {
	rel, err := filepath.Rel(s.dir, path)
	if err != nil {
		return
	}
	parts := strings.Split(filepath.ToSlash(rel), "/")
	if len(parts) < 2 {
		return
	}

	pack := parts[0]
	journalPage := false
	if pack == journalPack && len(parts) > 2 && strings.HasPrefix(parts[1], journalPagePrefix) {
		pack = journalPackKey(parts[1])
		journalPage = true
	}

	stem := strings.TrimSuffix(parts[len(parts)-1], ".htm")
	ref := docRef{pack: pack, id: DocumentID(stem), path: path}
	key := refKey(ref.pack, ref.id)
	if _, dup := s.refs[key]; dup {
		s.logger.Debug("duplicate translation document", "pack", ref.pack, "id", ref.id, "path", path)
		return
	}
	s.refs[key] = ref
	if journalPage {
		s.pages[ref.id] = key
	}
}

// journalPackKey maps a journal page folder such as "pages-Classes" to the
// pack key "journals-classes".
func journalPackKey(folder string) string {
	return journalPack + "-" + slug.Make(strings.TrimPrefix(folder, journalPagePrefix))
}

func refKey(pack, id string) string {
	return pack + "/" + id
}

// Len returns the number of indexed documents.
func (s *DocumentStore) Len() int {
	return len(s.refs)
}

// Lookup returns the document for (pack, id). A document that is not indexed
// is a miss, not an error; one that is indexed but unreadable wraps
// core.ErrSourceUnavailable.
func (s *DocumentStore) Lookup(pack, id string) (*Document, bool, error) {
	ref, ok := s.refs[refKey(pack, id)]
	if !ok {
		return nil, false, nil
	}
	return s.load(ref)
}

// JournalPage returns the journal page document with the given page id.
func (s *DocumentStore) JournalPage(id string) (*Document, bool, error) {
	key, ok := s.pages[id]
	if !ok {
		return nil, false, nil
	}
	return s.load(s.refs[key])
}

// journalPages lists the indexed journal pages ordered by pack then id.
func (s *DocumentStore) journalPages() []docRef {
	refs := make([]docRef, 0, len(s.pages))
	for _, key := range s.pages {
		refs = append(refs, s.refs[key])
	}
	slices.SortFunc(refs, func(a, b docRef) int {
		if c := strings.Compare(a.pack, b.pack); c != 0 {
			return c
		}
		return strings.Compare(a.id, b.id)
	})
	return refs
}

func (s *DocumentStore) load(ref docRef) (*Document, bool, error) {
	key := refKey(ref.pack, ref.id)
	if doc, ok := s.cache.Get(key); ok {
		return doc, doc != nil, nil
	}

	data, err := os.ReadFile(ref.path)
	if err != nil {
		return nil, false, fmt.Errorf("%w: %w", core.ErrSourceUnavailable, err)
	}

	doc, err := ParseDocument(ref.pack, strings.TrimSuffix(filepath.Base(ref.path), ".htm"), string(data))
	if err != nil {
		// An empty document is an intentional absence.
		s.cache.Set(key, nil, 1)
		return nil, false, nil
	}
	s.cache.Set(key, doc, 1)
	return doc, true, nil
}

// Close releases the document cache.
func (s *DocumentStore) Close() {
	s.cache.Close()
}
