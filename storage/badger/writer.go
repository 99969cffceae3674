package badger

import (
	"context"
	"sync"

	"github.com/dgraph-io/badger/v4"
	"github.com/poiesic/compendium/core"
	"github.com/poiesic/compendium/storage"
)

// generationWriter stages one generation through write batches.
type generationWriter struct {
	repo *EntryRepository
	gen  uint64

	mu   sync.Mutex
	next uint64 // position of the next entry
	done bool
}

var _ storage.GenerationWriter = (*generationWriter)(nil)

func newWriter(repo *EntryRepository, gen uint64) *generationWriter {
	return &generationWriter{repo: repo, gen: gen}
}

// Generation returns the number the staged generation will carry.
func (w *generationWriter) Generation() uint64 {
	return w.gen
}

// Write appends entries after those already written.
// A failed write leaves the position unchanged, so retrying the same
// batch overwrites whatever part of it was flushed.
func (w *generationWriter) Write(ctx context.Context, entries []*core.ResolvedEntry) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.done {
		return storage.ErrWriterFinished
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	err := w.repo.backend.WithBatch(func(wb *badger.WriteBatch) error {
		for i, entry := range entries {
			position := w.next + uint64(i)
			if err := wb.Set(makeEntryKey(w.gen, position), storage.MarshalEntry(entry)); err != nil {
				return err
			}
			if err := wb.Set(makeEntryIDKey(w.gen, entry.ID), encodeUint64(position)); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	w.next += uint64(len(entries))
	return nil
}

// Commit publishes the staged generation and drops the one it replaces.
func (w *generationWriter) Commit(ctx context.Context, meta *core.Metadata) (*core.Metadata, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.done {
		return nil, storage.ErrWriterFinished
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	committed := *meta
	committed.Generation = w.gen

	var previous uint64
	err := w.repo.backend.WithTx(func(tx *badger.Txn) error {
		var err error
		if previous, _, err = w.repo.lookupCurrent(tx); err != nil {
			return err
		}
		if err := tx.Set(makeMetadataKey(w.gen), storage.MarshalMetadata(&committed)); err != nil {
			return err
		}
		if err := tx.Set([]byte(currentGeneration), encodeUint64(w.gen)); err != nil {
			return err
		}
		return tx.Commit()
	}, true)
	if err != nil {
		return nil, err
	}
	w.done = true

	w.repo.logger.Info("committed generation",
		"generation", w.gen,
		"entries", w.next,
		"replaced", previous)

	if previous != 0 && previous != w.gen {
		// The new generation is already visible; a failed drop only leaves
		// garbage that the next Begin removes.
		if err := w.repo.backend.DropPrefix(generationPrefixes(previous)...); err != nil {
			w.repo.logger.Warn("failed to drop replaced generation", "generation", previous, "error", err)
		}
	}

	return &committed, nil
}

// Abort discards everything staged so far.
func (w *generationWriter) Abort(ctx context.Context) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.done {
		return nil
	}
	w.done = true
	w.repo.logger.Debug("aborting generation", "generation", w.gen)
	return w.repo.backend.DropPrefix(generationPrefixes(w.gen)...)
}
