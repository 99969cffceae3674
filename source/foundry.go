package source

import (
	"context"
	"encoding/json"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/poiesic/compendium/core"
)

// journalPack is read from the translation tree instead; the Foundry
// journal documents carry no type.
const journalPack = "journals"

// Reader enumerates raw entries from one source.
type Reader interface {
	// Name identifies the reader in reports and logs.
	Name() string

	// Entries returns every entry the source holds, in a deterministic order.
	Entries(ctx context.Context) ([]*core.RawEntry, error)
}

// FoundryReader walks a Foundry pf2e checkout.
type FoundryReader struct {
	root   string
	logger *slog.Logger
}

var _ Reader = (*FoundryReader)(nil)

// NewFoundryReader creates a reader rooted at a Foundry pf2e checkout.
func NewFoundryReader(root string, opts ...Option) (*FoundryReader, error) {
	o, err := applyOptions(opts)
	if err != nil {
		return nil, err
	}
	return &FoundryReader{root: root, logger: o.logger}, nil
}

// Name implements Reader.
func (r *FoundryReader) Name() string { return "foundry" }

// PacksDir locates the pack tree: packs/pf2e in current checkouts,
// packs in older ones.
func (r *FoundryReader) PacksDir() (string, error) {
	for _, dir := range []string{
		filepath.Join(r.root, "packs", "pf2e"),
		filepath.Join(r.root, "packs"),
	} {
		if info, err := os.Stat(dir); err == nil && info.IsDir() {
			return dir, nil
		}
	}
	return "", fmt.Errorf("%w: no packs directory under %s", core.ErrNoSources, r.root)
}

type foundryDocument struct {
	ID     string         `json:"_id"`
	Type   string         `json:"type"`
	Name   string         `json:"name"`
	System map[string]any `json:"system"`
}

// Entries implements Reader. Files whose name starts with an underscore
// (folder and source manifests) are ignored. A repeated id within one pack
// is read once; repeats across packs are passed through.
func (r *FoundryReader) Entries(ctx context.Context) ([]*core.RawEntry, error) {
	dir, err := r.PacksDir()
	if err != nil {
		return nil, err
	}

	var (
		entries []*core.RawEntry
		skipped int
		seen    = make(map[string]struct{})
	)

	err = filepath.WalkDir(dir, func(path string, d fs.DirEntry, walkErr error) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		if walkErr != nil {
			if path == dir {
				return walkErr
			}
			r.logger.Warn("skipping unreadable path", "path", path, "err", walkErr)
			return nil
		}
		if d.IsDir() || !strings.HasSuffix(d.Name(), ".json") || strings.HasPrefix(d.Name(), "_") {
			return nil
		}

		pack := packOf(dir, path)
		if pack == journalPack {
			return nil
		}

		entry, err := readFoundryFile(path, pack)
		if err != nil {
			skipped++
			r.logger.Warn("skipping invalid pack file", "path", path, "err", err)
			return nil
		}

		if entry.ID != "" {
			key := pack + ":" + entry.ID
			if _, dup := seen[key]; dup {
				return nil
			}
			seen[key] = struct{}{}
		}
		entries = append(entries, entry)
		return nil
	})
	if err != nil {
		return nil, err
	}

	r.logger.Info("read foundry packs", "dir", dir, "entries", len(entries), "skipped", skipped)
	return entries, nil
}

// packOf returns the first path component below the pack tree. Files lying
// directly in the tree are their own pack.
func packOf(dir, path string) string {
	rel, err := filepath.Rel(dir, path)
	if err != nil {
		return ""
	}
	rel = filepath.ToSlash(rel)
	if head, _, ok := strings.Cut(rel, "/"); ok {
		return head
	}
	return strings.TrimSuffix(rel, ".json")
}

func readFoundryFile(path, pack string) (*core.RawEntry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var doc foundryDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, err
	}

	fields := core.Fields(doc.System)
	description, _ := fields.String("description", "value")
	return &core.RawEntry{
		ID:                  doc.ID,
		Kind:                doc.Type,
		PackKey:             pack,
		NameOriginal:        doc.Name,
		DescriptionOriginal: description,
		Fields:              fields,
	}, nil
}
