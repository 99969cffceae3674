package badger

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"

	"github.com/dgraph-io/badger/v4"
	"github.com/poiesic/compendium/core"
	"github.com/poiesic/compendium/storage"
)

const defaultBatchSize = 500

// EntryRepository implements storage.EntryRepository for BadgerDB.
type EntryRepository struct {
	backend     *Backend
	genSeq      *badger.Sequence
	logger      *slog.Logger
	ownsBackend bool
}

var _ storage.EntryRepository = (*EntryRepository)(nil)

// NewEntryRepository creates a new EntryRepository over an open backend.
// The caller keeps ownership of the backend.
func NewEntryRepository(backend *Backend) (*EntryRepository, error) {
	genSeq, err := backend.GetSequence(generationSeq)
	if err != nil {
		return nil, err
	}

	return &EntryRepository{
		backend: backend,
		genSeq:  genSeq,
		logger:  backend.logger,
	}, nil
}

// NewRepository opens a BadgerDB database at path and returns a repository
// that closes the database on Close.
func NewRepository(path string, opts ...BackendOption) (storage.EntryRepository, error) {
	backend, err := OpenBackend(path, false, opts...)
	if err != nil {
		return nil, err
	}
	repo, err := NewEntryRepository(backend)
	if err != nil {
		backend.Close()
		return nil, err
	}
	repo.ownsBackend = true
	return repo, nil
}

// Close releases the generation sequence, and the backend when the
// repository opened it.
func (r *EntryRepository) Close() error {
	err := r.genSeq.Release()
	if r.ownsBackend {
		err = errors.Join(err, r.backend.Close())
	}
	return err
}

// Begin starts staging a new generation.
// Leftovers of generations that were staged but never committed are dropped first.
func (r *EntryRepository) Begin(ctx context.Context) (storage.GenerationWriter, error) {
	if r.backend.IsClosed() {
		return nil, storage.ErrStorageClosed
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if err := r.dropStale(); err != nil {
		return nil, fmt.Errorf("dropping stale generations: %w", err)
	}

	gen, err := r.genSeq.Next()
	if err != nil {
		return nil, err
	}
	// BadgerDB sequences can return 0 on first call, so we skip it
	if gen == 0 {
		if gen, err = r.genSeq.Next(); err != nil {
			return nil, err
		}
	}

	r.logger.Debug("staging generation", "generation", gen)
	return newWriter(r, gen), nil
}

// ReplaceAll stages entries in batches and commits them.
func (r *EntryRepository) ReplaceAll(ctx context.Context, entries []*core.ResolvedEntry, meta *core.Metadata, batchSize int) (*core.Metadata, error) {
	if batchSize < 1 {
		batchSize = defaultBatchSize
	}

	w, err := r.Begin(ctx)
	if err != nil {
		return nil, err
	}
	for start := 0; start < len(entries); start += batchSize {
		end := min(start+batchSize, len(entries))
		if err := w.Write(ctx, entries[start:end]); err != nil {
			return nil, errors.Join(err, w.Abort(ctx))
		}
	}
	return w.Commit(ctx, meta)
}

// Get retrieves a single entry of the current generation by ID.
func (r *EntryRepository) Get(ctx context.Context, id string) (*core.ResolvedEntry, error) {
	var result *core.ResolvedEntry
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		gen, err := r.readCurrent(tx)
		if err != nil {
			return err
		}

		item, err := tx.Get(makeEntryIDKey(gen, id))
		if err != nil {
			if errors.Is(err, badger.ErrKeyNotFound) {
				return fmt.Errorf("%w: %s", storage.ErrNotFound, id)
			}
			return err
		}
		var position uint64
		err = item.Value(func(val []byte) error {
			var ok bool
			if position, ok = decodeUint64(val); !ok {
				return fmt.Errorf("%w: position of %s", storage.ErrTruncatedData, id)
			}
			return nil
		})
		if err != nil {
			return err
		}

		result, err = r.readEntry(tx, makeEntryKey(gen, position))
		return err
	}, false)
	return result, err
}

// ForEach calls fn with batches of the current generation in corpus order.
func (r *EntryRepository) ForEach(ctx context.Context, batchSize int, fn func([]*core.ResolvedEntry) error) error {
	if batchSize < 1 {
		batchSize = defaultBatchSize
	}

	return r.backend.WithTx(func(tx *badger.Txn) error {
		gen, err := r.readCurrent(tx)
		if err != nil {
			return err
		}

		opts := badger.DefaultIteratorOptions
		opts.Prefix = makeGenerationPrefix(entryPrefix, gen)
		opts.PrefetchSize = batchSize
		iter := tx.NewIterator(opts)
		defer iter.Close()

		batch := make([]*core.ResolvedEntry, 0, batchSize)
		for iter.Rewind(); iter.Valid(); iter.Next() {
			var entry *core.ResolvedEntry
			err := iter.Item().Value(func(val []byte) error {
				var err error
				entry, err = storage.UnmarshalEntry(val)
				return err
			})
			if err != nil {
				return err
			}

			batch = append(batch, entry)
			if len(batch) == batchSize {
				if err := ctx.Err(); err != nil {
					return err
				}
				if err := fn(batch); err != nil {
					return err
				}
				batch = make([]*core.ResolvedEntry, 0, batchSize)
			}
		}

		if len(batch) > 0 {
			if err := ctx.Err(); err != nil {
				return err
			}
			return fn(batch)
		}
		return nil
	}, false)
}

// Metadata returns the current generation's metadata.
func (r *EntryRepository) Metadata(ctx context.Context) (*core.Metadata, error) {
	var meta *core.Metadata
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		gen, err := r.readCurrent(tx)
		if err != nil {
			return err
		}

		item, err := tx.Get(makeMetadataKey(gen))
		if err != nil {
			if errors.Is(err, badger.ErrKeyNotFound) {
				return storage.ErrNoSnapshot
			}
			return err
		}
		return item.Value(func(val []byte) error {
			var err error
			meta, err = storage.UnmarshalMetadata(val)
			return err
		})
	}, false)
	return meta, err
}

// readCurrent returns the committed generation.
// Returns ErrNoSnapshot if nothing was ever committed.
func (r *EntryRepository) readCurrent(tx *badger.Txn) (uint64, error) {
	gen, found, err := r.lookupCurrent(tx)
	if err != nil {
		return 0, err
	}
	if !found {
		return 0, storage.ErrNoSnapshot
	}
	return gen, nil
}

func (r *EntryRepository) lookupCurrent(tx *badger.Txn) (uint64, bool, error) {
	item, err := tx.Get([]byte(currentGeneration))
	if err != nil {
		if errors.Is(err, badger.ErrKeyNotFound) {
			return 0, false, nil
		}
		return 0, false, err
	}
	var gen uint64
	err = item.Value(func(val []byte) error {
		var ok bool
		if gen, ok = decodeUint64(val); !ok {
			return fmt.Errorf("%w: current generation", storage.ErrTruncatedData)
		}
		return nil
	})
	return gen, err == nil, err
}

// readEntry reads a single entry by key.
func (r *EntryRepository) readEntry(tx *badger.Txn, key []byte) (*core.ResolvedEntry, error) {
	item, err := tx.Get(key)
	if err != nil {
		if errors.Is(err, badger.ErrKeyNotFound) {
			return nil, storage.ErrNotFound
		}
		return nil, err
	}

	var entry *core.ResolvedEntry
	err = item.Value(func(val []byte) error {
		var err error
		entry, err = storage.UnmarshalEntry(val)
		return err
	})
	return entry, err
}

// dropStale removes every generation other than the current one.
func (r *EntryRepository) dropStale() error {
	var stale []uint64
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		current, _, err := r.lookupCurrent(tx)
		if err != nil {
			return err
		}
		for _, prefix := range []string{entryPrefix, entryIDPrefix} {
			for _, gen := range generationsUnder(tx, prefix) {
				if gen != current && !slices.Contains(stale, gen) {
					stale = append(stale, gen)
				}
			}
		}
		return nil
	}, false)
	if err != nil {
		return err
	}

	for _, gen := range stale {
		r.logger.Warn("dropping uncommitted generation", "generation", gen)
		if err := r.backend.DropPrefix(generationPrefixes(gen)...); err != nil {
			return err
		}
	}
	return nil
}

// generationsUnder lists the distinct generations stored under prefix.
// It seeks past each generation instead of visiting every key.
func generationsUnder(tx *badger.Txn, prefix string) []uint64 {
	opts := badger.DefaultIteratorOptions
	opts.PrefetchValues = false
	opts.Prefix = []byte(prefix)
	iter := tx.NewIterator(opts)
	defer iter.Close()

	var gens []uint64
	for iter.Rewind(); iter.Valid(); {
		key := iter.Item().Key()
		gen, ok := generationOf(prefix, key)
		if !ok {
			iter.Next()
			continue
		}
		gens = append(gens, gen)
		if gen == ^uint64(0) {
			break
		}
		iter.Seek(makeGenerationPrefix(prefix, gen+1))
	}
	return gens
}
