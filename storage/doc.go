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


// Package storage provides the storage abstraction layer for compendium.
//
// This package defines the repository interface that decouples snapshot
// persistence from the rebuild and search logic. A snapshot is the full
// list of resolved entries of one rebuild, stored as a numbered
// generation together with its metadata.
//
// # Constructor Return Type Pattern
//
// Public constructors return the interface:
//
//	repo, err := badger.NewRepository(path)  // returns storage.EntryRepository
//
// Internal constructors (newBackend, newWriter, etc.) may return concrete
// types since they're only used within the implementation package.
//
// # Generations
//
// A rebuild stages its entries under a fresh generation number:
//
//	w, err := repo.Begin(ctx)
//	if err != nil {
//	    return err
//	}
//	for _, batch := range batches {
//	    if err := w.Write(ctx, batch); err != nil {
//	        w.Abort(ctx)
//	        return err
//	    }
//	}
//	meta, err := w.Commit(ctx, core.NewMetadata(entries, time.Now()))
//
// Commit flips the current-generation pointer and the metadata in one
// transaction. Readers see either the old generation or the new one,
// never a mix. The replaced generation is dropped afterwards.
//
// Use in tests with in-memory storage:
//
//	repo, err := badger.NewMemoryRepository()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer repo.Close()
//
// # Serialization
//
// Entries and metadata are encoded with mus (see core.ResolvedEntryMUS).
// Decoding failures wrap ErrSerializationFailed.
//
// # Thread Safety
//
// All repository implementations must be thread-safe. Only one
// generation writer should be active at a time.
package storage
